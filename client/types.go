package client

import (
	"context"
	"sync"
	"time"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/schema"
	"github.com/enbility/wattpilot-go/ws"
)

const (
	// device type announcing the bcrypt based secret derivation
	DeviceTypeFlex = "wattpilot_flex"

	CloudAPIBaseURL = "https://app.wattpilot.io/app"

	cloudURLFormat = "wss://app.wattpilot.io/app/%s?version=1.2.9"
	localURLFormat = "ws://%s/ws"
)

const (
	DefaultConnectTimeout = 30 * time.Second
	DefaultInitTimeout    = 30 * time.Second

	defaultCloudAPITimeout = 10 * time.Second
	defaultFirmwareTimeout = 120 * time.Second

	cloudPollInterval     = time.Second
	firmwarePollInterval  = time.Second
	reconnectPollInterval = 2 * time.Second

	asyncErrorBufferSize = 16
)

// opens the transport to the device
type DialFunc func(ctx context.Context, url string) (api.WebsocketDataWriterInterface, error)

func defaultDial(ctx context.Context, url string) (api.WebsocketDataWriterInterface, error) {
	conn, err := ws.Dial(ctx, url)
	if err != nil {
		return nil, err
	}

	return ws.NewWebsocketConnection(conn, url), nil
}

type Option func(*Wattpilot)

// the serial is required for cloud connections, for local connections
// it is announced by the device
func WithSerial(serial string) Option {
	return func(w *Wattpilot) {
		w.device.Serial = serial
	}
}

// connect through the vendor cloud relay instead of the local network
func WithCloud() Option {
	return func(w *Wattpilot) {
		w.cloud = true
	}
}

func WithConnectTimeout(timeout time.Duration) Option {
	return func(w *Wattpilot) {
		w.connectTimeout = timeout
	}
}

func WithInitTimeout(timeout time.Duration) Option {
	return func(w *Wattpilot) {
		w.initTimeout = timeout
	}
}

// use the provided property definitions instead of the embedded ones
func WithDefinition(definition *schema.Definition) Option {
	return func(w *Wattpilot) {
		w.definition = definition
	}
}

// overrides the URL derived from the host or serial
func WithURL(url string) Option {
	return func(w *Wattpilot) {
		w.url = url
	}
}

func WithDialer(dial DialFunc) Option {
	return func(w *Wattpilot) {
		w.dial = dial
	}
}

// a binary flag which can be waited for
//
// Wait returns a channel that is closed once the flag is set,
// Clear arms a new channel
type event struct {
	ch  chan struct{}
	set bool

	mux sync.Mutex
}

func newEvent() *event {
	return &event{ch: make(chan struct{})}
}

func (e *event) Set() {
	e.mux.Lock()
	defer e.mux.Unlock()

	if e.set {
		return
	}
	e.set = true
	close(e.ch)
}

func (e *event) Clear() {
	e.mux.Lock()
	defer e.mux.Unlock()

	if !e.set {
		return
	}
	e.set = false
	e.ch = make(chan struct{})
}

func (e *event) IsSet() bool {
	e.mux.Lock()
	defer e.mux.Unlock()

	return e.set
}

func (e *event) Wait() <-chan struct{} {
	e.mux.Lock()
	defer e.mux.Unlock()

	return e.ch
}

type propertyListener struct {
	id uint64
	cb api.PropertyCallback
}

type asyncPropertyListener struct {
	id uint64
	cb api.AsyncPropertyCallback
}

type messageListener struct {
	id uint64
	cb api.MessageCallback
}

type disconnectListener struct {
	id uint64
	cb api.DisconnectCallback
}

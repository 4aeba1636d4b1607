package client

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/logging"
	"github.com/enbility/wattpilot-go/model"
	"github.com/enbility/wattpilot-go/schema"
	"github.com/enbility/wattpilot-go/store"
	"github.com/gorilla/websocket"
)

// A Wattpilot handles the connection to a single wallbox
//
// It authenticates against the device, keeps the property store in sync
// with the frames the device pushes and sends property changes
type Wattpilot struct {
	host     string
	password string
	cloud    bool
	url      string

	connectTimeout time.Duration
	initTimeout    time.Duration

	dial DialFunc

	// used for value coercion, may be nil
	definition *schema.Definition

	// identity announced by the hello frame
	device api.DeviceInfo

	hashType api.AuthHashType

	// the derived secret and the serial and hash type it was derived for
	secret    string
	secretFor string

	store *store.PropertyStore

	// the (web socket) handler for sending messages
	dataWriter api.WebsocketDataWriterInterface

	state       model.ConnectionState
	connected   bool
	initialized bool

	// captured on authError, must be set before connectedEvent
	authError error

	connectedEvent   *event
	initializedEvent *event

	// closed when the transport of the current session went away
	sessionDone chan struct{}
	sessionErr  error

	requestID int64
	pending   map[int64]chan error

	listenerID          uint64
	propertyListeners   []propertyListener
	asyncListeners      []asyncPropertyListener
	messageListeners    []messageListener
	disconnectListeners []disconnectListener
	asyncErrors         chan error

	cloudPollInterval     time.Duration
	firmwarePollInterval  time.Duration
	reconnectPollInterval time.Duration

	mux         sync.Mutex
	listenerMux sync.Mutex
	connectMux  sync.Mutex
}

var _ api.ClientInterface = (*Wattpilot)(nil)

// create a new client for the wallbox reachable at host
//
// without WithDefinition the embedded property definitions are used
func NewWattpilot(host, password string, opts ...Option) *Wattpilot {
	w := &Wattpilot{
		host:                  host,
		password:              password,
		connectTimeout:        DefaultConnectTimeout,
		initTimeout:           DefaultInitTimeout,
		dial:                  defaultDial,
		hashType:              api.AuthHashTypePBKDF2,
		store:                 store.NewPropertyStore(),
		state:                 model.StateDisconnected,
		connectedEvent:        newEvent(),
		initializedEvent:      newEvent(),
		pending:               make(map[int64]chan error),
		asyncErrors:           make(chan error, asyncErrorBufferSize),
		cloudPollInterval:     cloudPollInterval,
		firmwarePollInterval:  firmwarePollInterval,
		reconnectPollInterval: reconnectPollInterval,
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.definition == nil {
		definition, err := schema.Load(false)
		if err != nil {
			logging.Log().Error("Failed to load property definitions, values are sent without coercion: ", err)
		}
		w.definition = definition
	}

	if w.url == "" {
		if w.cloud {
			w.url = fmt.Sprintf(cloudURLFormat, w.device.Serial)
		} else {
			w.url = fmt.Sprintf(localURLFormat, w.host)
		}
	}

	return w
}

// the URL used for connecting
func (w *Wattpilot) URL() string {
	return w.url
}

func (w *Wattpilot) Definition() *schema.Definition {
	return w.definition
}

// the property store holding all received values
func (w *Wattpilot) Store() *store.PropertyStore {
	return w.store
}

// provides the current connection state
func (w *Wattpilot) State() model.ConnectionState {
	w.mux.Lock()
	defer w.mux.Unlock()

	return w.state
}

func (w *Wattpilot) setState(state model.ConnectionState) {
	w.mux.Lock()
	defer w.mux.Unlock()

	w.setStateLocked(state)
}

func (w *Wattpilot) setStateLocked(state model.ConnectionState) {
	if w.state == state {
		return
	}
	w.state = state
	logging.Log().Trace(w.device.Serial, "state changed to:", state)
}

// open the connection, authenticate and wait for the initial property set
//
// on failure the transport is already closed
func (w *Wattpilot) Connect() error {
	w.connectMux.Lock()
	defer w.connectMux.Unlock()

	if w.Connected() {
		if w.PropertiesInitialized() {
			return nil
		}

		return w.waitForInitialization()
	}

	w.connectedEvent.Clear()
	w.initializedEvent.Clear()

	w.mux.Lock()
	w.authError = nil
	w.initialized = false
	w.sessionDone = make(chan struct{})
	w.sessionErr = nil
	sessionDone := w.sessionDone
	w.setStateLocked(model.StateConnecting)
	w.mux.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), w.connectTimeout)
	dataWriter, err := w.dial(ctx, w.url)
	cancel()
	if err != nil {
		w.setState(model.StateDisconnected)
		return api.NewConnectionError(fmt.Sprintf("Failed to connect to %s", w.url), err)
	}

	w.mux.Lock()
	w.dataWriter = dataWriter
	w.mux.Unlock()

	dataWriter.InitDataProcessing(w)

	timer := time.NewTimer(w.connectTimeout)
	defer timer.Stop()

	select {
	case <-w.connectedEvent.Wait():
	case <-sessionDone:
		w.disconnect()
		// the device usually closes the connection right after an authError
		if authErr := w.getAuthError(); authErr != nil {
			return authErr
		}
		return api.NewConnectionError("Connection closed during authentication", w.getSessionErr())
	case <-timer.C:
		w.disconnect()
		return api.NewConnectionError("Timeout waiting for authentication", nil)
	}

	if authErr := w.getAuthError(); authErr != nil {
		w.disconnect()
		return authErr
	}

	if err := w.waitForInitialization(); err != nil {
		return err
	}

	logging.Log().Infof("Connected to Wattpilot %s", w.Serial())

	return nil
}

func (w *Wattpilot) waitForInitialization() error {
	timer := time.NewTimer(w.initTimeout)
	defer timer.Stop()

	w.mux.Lock()
	sessionDone := w.sessionDone
	w.mux.Unlock()

	select {
	case <-w.initializedEvent.Wait():
		return nil
	case <-sessionDone:
		w.disconnect()
		return api.NewConnectionError("Connection closed during property initialization", w.getSessionErr())
	case <-timer.C:
		w.disconnect()
		return api.NewConnectionError("Timeout waiting for property initialization", nil)
	}
}

// close the connection, safe to call when not connected
func (w *Wattpilot) Disconnect() {
	w.connectMux.Lock()
	defer w.connectMux.Unlock()

	w.disconnect()
}

func (w *Wattpilot) disconnect() {
	w.mux.Lock()
	dataWriter := w.dataWriter
	w.dataWriter = nil
	w.connected = false
	w.setStateLocked(model.StateDisconnected)
	w.mux.Unlock()

	if dataWriter != nil {
		dataWriter.CloseDataConnection(websocket.CloseNormalClosure, "")
	}

	w.connectedEvent.Clear()
	w.initializedEvent.Clear()

	w.failPendingRequests(api.NewConnectionError("Not connected", nil))
}

func (w *Wattpilot) getAuthError() error {
	w.mux.Lock()
	defer w.mux.Unlock()

	return w.authError
}

func (w *Wattpilot) getSessionErr() error {
	w.mux.Lock()
	defer w.mux.Unlock()

	return w.sessionErr
}

/* identity */

func (w *Wattpilot) DeviceInfo() api.DeviceInfo {
	w.mux.Lock()
	defer w.mux.Unlock()

	info := w.device
	info.Version = w.versionLocked()
	if fw := w.store.Fields().Firmware; fw != nil {
		info.Firmware = *fw
	}

	return info
}

func (w *Wattpilot) Serial() string {
	w.mux.Lock()
	defer w.mux.Unlock()

	return w.device.Serial
}

func (w *Wattpilot) Name() string {
	w.mux.Lock()
	defer w.mux.Unlock()

	return w.device.Name
}

func (w *Wattpilot) Hostname() string {
	w.mux.Lock()
	defer w.mux.Unlock()

	return w.device.Hostname
}

func (w *Wattpilot) FriendlyName() string {
	w.mux.Lock()
	defer w.mux.Unlock()

	return w.device.FriendlyName
}

func (w *Wattpilot) Manufacturer() string {
	w.mux.Lock()
	defer w.mux.Unlock()

	return w.device.Manufacturer
}

func (w *Wattpilot) DeviceType() string {
	w.mux.Lock()
	defer w.mux.Unlock()

	return w.device.DeviceType
}

func (w *Wattpilot) Protocol() int {
	w.mux.Lock()
	defer w.mux.Unlock()

	return w.device.Protocol
}

func (w *Wattpilot) Secured() int {
	w.mux.Lock()
	defer w.mux.Unlock()

	return w.device.Secured
}

// the version property if known, else the version of the hello frame
func (w *Wattpilot) Version() string {
	w.mux.Lock()
	defer w.mux.Unlock()

	return w.versionLocked()
}

func (w *Wattpilot) versionLocked() string {
	if version := w.store.Fields().Version; version != nil {
		return *version
	}
	return w.device.Version
}

// authenticated, the initial property set may still be pending
func (w *Wattpilot) Connected() bool {
	w.mux.Lock()
	defer w.mux.Unlock()

	return w.connected
}

func (w *Wattpilot) PropertiesInitialized() bool {
	w.mux.Lock()
	defer w.mux.Unlock()

	return w.initialized
}

func (w *Wattpilot) AllProperties() map[string]any {
	return w.store.All()
}

func (w *Wattpilot) Fields() store.Fields {
	return w.store.Fields()
}

/* rendering */

func (w *Wattpilot) String() string {
	if !w.Connected() {
		return "Not connected"
	}

	f := w.store.Fields()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Wattpilot: %s\n", w.Name())
	fmt.Fprintf(&sb, "Serial: %s\n", w.Serial())
	fmt.Fprintf(&sb, "Connected: %t\n", w.Connected())
	fmt.Fprintf(&sb, "Car Connected: %s\n", optional(f.CarConnected))
	fmt.Fprintf(&sb, "Charge Status: %s\n", optional(f.AllowCharging))
	fmt.Fprintf(&sb, "Mode: %s\n", optional(f.Mode))
	fmt.Fprintf(&sb, "Power: %s\n", optional(f.Amp))

	if f.Power != nil {
		fmt.Fprintf(&sb, "Charge: %.2fkW -- %sV/%sV/%sV -- %.2fA/%.2fA/%.2fA -- %.2fkW/%.2fkW/%.2fkW\n",
			*f.Power,
			optional(f.Voltage1), optional(f.Voltage2), optional(f.Voltage3),
			deref(f.Amps1), deref(f.Amps2), deref(f.Amps3),
			deref(f.Power1), deref(f.Power2), deref(f.Power3),
		)
	}

	return sb.String()
}

func optional[T any](v *T) string {
	if v == nil {
		return "unknown"
	}
	return fmt.Sprint(*v)
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

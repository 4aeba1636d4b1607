package hub

import (
	"errors"
	"sync"
	"time"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/logging"
)

var ErrNoTarget = errors.New("no host configured and no mDNS discovery available")

// used for randomizing the reconnection delay
// this avoids hammering a wallbox that is rebooting or out of reach
type connectionInitiationDelayTimeRange struct {
	// defines the minimum and maximum wait time for when to try to initate an connection
	min, max int
}

// defines the delay timeframes in seconds depening on the connection attempt counter
// the last item will be re-used for higher attempt counter values
var connectionInitiationDelayTimeRanges = []connectionInitiationDelayTimeRange{
	{min: 0, max: 3},
	{min: 3, max: 10},
	{min: 10, max: 20},
}

// creates a device client for a host
type ClientFactory func(host string) api.ClientInterface

// keeps the connection to a single wallbox alive
type Hub struct {
	factory ClientFactory

	// the supervised wallbox
	service *api.ServiceDetails

	// the current client and the host it was created for
	client           api.ClientInterface
	clientHost       string
	unsubscribeClose func()

	hubReader api.HubReaderInterface

	// Handling mDNS related tasks, optional
	mdns api.MdnsInterface

	// list of currently known/reported mDNS entries
	knownMdnsEntries []*api.MdnsEntry

	// which attempt is it to initate an connection
	connectionAttemptCounter int
	connectionAttemptRunning bool

	// the unit of the delay time ranges
	delayUnit time.Duration

	hasStarted bool
	isShutdown bool

	// closed on shutdown, ends pending connection attempts
	done chan struct{}
	// the running connection attempt goroutines
	attempts sync.WaitGroup

	muxClient     sync.Mutex
	muxConAttempt sync.Mutex
	muxMdns       sync.Mutex
	muxStarted    sync.Mutex
}

// Create a new hub
//
// Parameters:
//   - factory: creates the client whenever the connection target changes
//   - hubReader: receives the state updates
//   - mdns: optional, resolves the host of the wallbox
//   - service: the serial number and/or host of the wallbox
func NewHub(factory ClientFactory,
	hubReader api.HubReaderInterface,
	mdns api.MdnsInterface,
	service *api.ServiceDetails) *Hub {
	hub := &Hub{
		factory:          factory,
		service:          service,
		hubReader:        hubReader,
		mdns:             mdns,
		knownMdnsEntries: make([]*api.MdnsEntry, 0),
		delayUnit:        time.Second,

		connectionAttemptCounter: -1,
	}

	return hub
}

var _ api.HubInterface = (*Hub)(nil)

// Start mDNS and the connection handling
func (h *Hub) Start() error {
	if h.targetHost() == "" && h.mdns == nil {
		return ErrNoTarget
	}

	h.muxStarted.Lock()
	h.hasStarted = true
	h.isShutdown = false
	h.done = make(chan struct{})
	h.muxStarted.Unlock()

	if h.mdns != nil {
		if err := h.mdns.Start(h); err != nil {
			logging.Log().Debug("error during mdns setup:", err)

			if h.targetHost() == "" {
				return err
			}
		}
	}

	if h.targetHost() != "" {
		h.coordinateConnectionInitations()
	}

	return nil
}

// stop mDNS, close the connection and wait for pending connection attempts
func (h *Hub) Shutdown() {
	h.muxStarted.Lock()
	alreadyShutdown := h.isShutdown
	h.isShutdown = true
	if h.done != nil && !alreadyShutdown {
		close(h.done)
	}
	h.muxStarted.Unlock()

	if h.mdns != nil {
		h.mdns.Shutdown()
	}

	h.closeClient()

	h.attempts.Wait()

	// an attempt may have created a new client in the meantime
	h.closeClient()
}

func (h *Hub) closeClient() {
	h.muxClient.Lock()
	client := h.client
	unsubscribe := h.unsubscribeClose
	h.unsubscribeClose = nil
	h.muxClient.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if client != nil {
		client.Disconnect()
	}
}

// the current client, nil before the first connection attempt
func (h *Hub) Client() api.ClientInterface {
	h.muxClient.Lock()
	defer h.muxClient.Unlock()

	return h.client
}

func (h *Hub) ServiceDetails() *api.ServiceDetails {
	return h.service
}

func (h *Hub) isRunning() bool {
	h.muxStarted.Lock()
	defer h.muxStarted.Unlock()

	return h.hasStarted && !h.isShutdown
}

// the address used for connecting, a discovered address wins over the configured host
func (h *Hub) targetHost() string {
	if ipv4 := h.service.IPv4(); ipv4 != "" {
		return ipv4
	}

	return h.service.Host()
}

func (h *Hub) updateConnectionState(state api.ConnectionState, err error) {
	detail := h.service.ConnectionStateDetail()
	detail.SetState(state)
	detail.SetError(err)

	if h.hubReader == nil {
		return
	}

	h.hubReader.ConnectionStateUpdated(h.service.Serial(), api.NewConnectionStateDetail(state, err))
}

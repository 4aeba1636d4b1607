package api

import (
	"sync"
)

type ConnectionState uint

const (
	ConnectionStateNone         ConnectionState = iota // initial state, no connection attempt yet
	ConnectionStateConnecting                          // a connection attempt is running
	ConnectionStateConnected                           // authenticated and initialized
	ConnectionStateReconnecting                        // connection got lost, waiting for the next attempt
	ConnectionStateError                               // the last attempt failed, see the error
)

// the connection state and an optional error of the last transition
type ConnectionStateDetail struct {
	state ConnectionState
	err   error

	mux sync.Mutex
}

func NewConnectionStateDetail(state ConnectionState, err error) *ConnectionStateDetail {
	return &ConnectionStateDetail{
		state: state,
		err:   err,
	}
}

func (c *ConnectionStateDetail) State() ConnectionState {
	c.mux.Lock()
	defer c.mux.Unlock()

	return c.state
}

func (c *ConnectionStateDetail) SetState(state ConnectionState) {
	c.mux.Lock()
	defer c.mux.Unlock()

	c.state = state
}

func (c *ConnectionStateDetail) Error() error {
	c.mux.Lock()
	defer c.mux.Unlock()

	return c.err
}

func (c *ConnectionStateDetail) SetError(err error) {
	c.mux.Lock()
	defer c.mux.Unlock()

	c.err = err
}

// details about the supervised wallbox
type ServiceDetails struct {
	// The serial number of the wallbox
	serial string

	// The host name or address used for connecting
	host string

	// This is the IPv4 address of the device as reported by mDNS
	// It is used when the host name can not be resolved
	ipv4 string

	// The device type reported by the hello frame
	deviceType string

	// the current connection state details
	connectionStateDetail *ConnectionStateDetail

	mux sync.Mutex
}

// create a new ServiceDetails record for a serial number
func NewServiceDetails(serial, host string) *ServiceDetails {
	return &ServiceDetails{
		serial:                serial,
		host:                  host,
		connectionStateDetail: NewConnectionStateDetail(ConnectionStateNone, nil),
	}
}

func (s *ServiceDetails) Serial() string {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.serial
}

func (s *ServiceDetails) SetSerial(serial string) {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.serial = serial
}

func (s *ServiceDetails) Host() string {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.host
}

func (s *ServiceDetails) SetHost(host string) {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.host = host
}

func (s *ServiceDetails) IPv4() string {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.ipv4
}

func (s *ServiceDetails) SetIPv4(ipv4 string) {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.ipv4 = ipv4
}

func (s *ServiceDetails) DeviceType() string {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.deviceType
}

func (s *ServiceDetails) SetDeviceType(deviceType string) {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.deviceType = deviceType
}

func (s *ServiceDetails) ConnectionStateDetail() *ConnectionStateDetail {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.connectionStateDetail
}

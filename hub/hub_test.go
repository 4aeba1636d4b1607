package hub

import (
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestHubSuite(t *testing.T) {
	suite.Run(t, new(HubSuite))
}

type HubSuite struct {
	suite.Suite

	sut *Hub

	reader *mocks.HubReaderInterface
	mdns   *mocks.MdnsInterface
	client *mocks.ClientInterface

	connected    atomic.Bool
	connectCalls atomic.Int32
	disconnectCB api.DisconnectCallback
	hosts        []string
	states       chan api.ConnectionState

	mux sync.Mutex
}

func (s *HubSuite) BeforeTest(suiteName, testName string) {
	s.reader = mocks.NewHubReaderInterface(s.T())
	s.mdns = mocks.NewMdnsInterface(s.T())
	s.client = mocks.NewClientInterface(s.T())

	s.connected.Store(false)
	s.connectCalls.Store(0)
	s.disconnectCB = nil
	s.hosts = nil
	s.states = make(chan api.ConnectionState, 20)

	s.reader.EXPECT().ConnectionStateUpdated(mock.Anything, mock.Anything).Run(func(serial string, detail *api.ConnectionStateDetail) {
		select {
		case s.states <- detail.State():
		default:
		}
	}).Maybe()

	s.mdns.EXPECT().Shutdown().Return().Maybe()

	s.client.EXPECT().Connected().RunAndReturn(func() bool { return s.connected.Load() }).Maybe()
	s.client.EXPECT().Serial().Return("12345678").Maybe()
	s.client.EXPECT().DeviceType().Return("wattpilot").Maybe()
	s.client.EXPECT().Disconnect().Return().Maybe()
	s.client.EXPECT().OnDisconnect(mock.Anything).RunAndReturn(func(cb api.DisconnectCallback) func() {
		s.mux.Lock()
		s.disconnectCB = cb
		s.mux.Unlock()
		return func() {}
	}).Maybe()

	s.sut = s.newHub(api.NewServiceDetails("", "192.168.1.10"), s.mdns)
}

func (s *HubSuite) AfterTest(suiteName, testName string) {
	s.sut.Shutdown()
}

func (s *HubSuite) newHub(service *api.ServiceDetails, mdns api.MdnsInterface) *Hub {
	factory := func(host string) api.ClientInterface {
		s.mux.Lock()
		s.hosts = append(s.hosts, host)
		s.mux.Unlock()
		return s.client
	}

	hub := NewHub(factory, s.reader, mdns, service)
	hub.delayUnit = time.Millisecond

	return hub
}

func (s *HubSuite) expectMdns() {
	s.mdns.EXPECT().Start(s.sut).Return(nil).Once()
}

func (s *HubSuite) waitForState(state api.ConnectionState) {
	timeout := time.After(time.Second * 2)
	for {
		select {
		case current := <-s.states:
			if current == state {
				return
			}
		case <-timeout:
			s.T().Fatalf("connection state %d not reached", state)
		}
	}
}

func (s *HubSuite) Test_StartWithoutTarget() {
	s.sut = s.newHub(api.NewServiceDetails("", ""), nil)

	err := s.sut.Start()
	assert.ErrorIs(s.T(), err, ErrNoTarget)
	assert.Nil(s.T(), s.sut.Client())
}

func (s *HubSuite) Test_StartMdnsFailure() {
	s.sut = s.newHub(api.NewServiceDetails("12345678", ""), s.mdns)
	s.mdns.EXPECT().Start(s.sut).Return(errors.New("no provider")).Once()

	err := s.sut.Start()
	assert.NotNil(s.T(), err)
}

func (s *HubSuite) Test_Connect() {
	s.expectMdns()
	s.client.EXPECT().Connect().RunAndReturn(func() error {
		s.connected.Store(true)
		return nil
	}).Once()

	err := s.sut.Start()
	require.Nil(s.T(), err)

	s.waitForState(api.ConnectionStateConnected)

	assert.Equal(s.T(), s.client, s.sut.Client())
	assert.Equal(s.T(), "12345678", s.sut.ServiceDetails().Serial())
	assert.Equal(s.T(), "wattpilot", s.sut.ServiceDetails().DeviceType())
	assert.Equal(s.T(), api.ConnectionStateConnected, s.sut.ServiceDetails().ConnectionStateDetail().State())
	assert.Equal(s.T(), []string{"192.168.1.10"}, s.hosts)
}

func (s *HubSuite) Test_ShutdownEndsAttempts() {
	s.expectMdns()
	s.client.EXPECT().Connect().RunAndReturn(func() error {
		s.connectCalls.Add(1)
		return errors.New("connection refused")
	})

	err := s.sut.Start()
	require.Nil(s.T(), err)
	s.waitForState(api.ConnectionStateError)

	s.sut.Shutdown()

	calls := s.connectCalls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(s.T(), calls, s.connectCalls.Load())
	assert.False(s.T(), s.sut.isConnectionAttemptRunning())

	// a disconnect report after the shutdown starts nothing
	s.sut.coordinateConnectionInitations()
	assert.False(s.T(), s.sut.isConnectionAttemptRunning())
}

func (s *HubSuite) Test_RetryAfterFailure() {
	s.expectMdns()
	s.client.EXPECT().Connect().RunAndReturn(func() error {
		if s.connectCalls.Add(1) == 1 {
			return errors.New("connection refused")
		}
		s.connected.Store(true)
		return nil
	}).Times(2)

	err := s.sut.Start()
	require.Nil(s.T(), err)

	s.waitForState(api.ConnectionStateError)
	s.waitForState(api.ConnectionStateConnected)

	assert.Equal(s.T(), int32(2), s.connectCalls.Load())
	// the client is reused for the same host
	assert.Equal(s.T(), 1, len(s.hosts))
}

func (s *HubSuite) Test_ReconnectAfterDisconnect() {
	s.expectMdns()
	s.client.EXPECT().Connect().RunAndReturn(func() error {
		s.connectCalls.Add(1)
		s.connected.Store(true)
		return nil
	}).Times(2)

	err := s.sut.Start()
	require.Nil(s.T(), err)
	s.waitForState(api.ConnectionStateConnected)

	s.connected.Store(false)
	s.mux.Lock()
	cb := s.disconnectCB
	s.mux.Unlock()
	require.NotNil(s.T(), cb)
	cb(errors.New("connection lost"))

	s.waitForState(api.ConnectionStateReconnecting)
	s.waitForState(api.ConnectionStateConnected)

	assert.Equal(s.T(), int32(2), s.connectCalls.Load())
}

func (s *HubSuite) Test_DisconnectAfterShutdown() {
	s.sut.Shutdown()

	s.sut.handleDisconnect(errors.New("connection lost"))
	assert.False(s.T(), s.sut.isConnectionAttemptRunning())
}

func (s *HubSuite) Test_MdnsResolvesHost() {
	s.sut = s.newHub(api.NewServiceDetails("12345678", ""), s.mdns)
	s.expectMdns()
	s.client.EXPECT().Connect().RunAndReturn(func() error {
		s.connected.Store(true)
		return nil
	}).Once()

	var visible []*api.MdnsEntry
	s.reader.EXPECT().VisibleWallboxesUpdated(mock.Anything).Run(func(entries []*api.MdnsEntry) {
		visible = entries
	}).Twice()

	err := s.sut.Start()
	require.Nil(s.T(), err)

	// nothing to connect to yet
	assert.Nil(s.T(), s.sut.Client())

	entries := map[string]*api.MdnsEntry{
		"87654321": {
			Serial:    "87654321",
			Host:      "other.local",
			Addresses: []net.IP{net.ParseIP("192.168.1.30")},
		},
	}
	s.sut.ReportMdnsEntries(entries, true)
	assert.Equal(s.T(), 1, len(visible))
	assert.Equal(s.T(), "", s.sut.ServiceDetails().IPv4())

	entries["12345678"] = &api.MdnsEntry{
		Serial:    "12345678",
		Host:      "wattpilot.local",
		Addresses: []net.IP{net.ParseIP("fd00::1"), net.ParseIP("192.168.1.20")},
	}
	s.sut.ReportMdnsEntries(entries, true)
	assert.Equal(s.T(), 2, len(visible))
	assert.Equal(s.T(), "12345678", visible[0].Serial)
	assert.Equal(s.T(), 2, len(s.sut.MdnsEntries()))

	s.waitForState(api.ConnectionStateConnected)

	assert.Equal(s.T(), "192.168.1.20", s.sut.ServiceDetails().IPv4())
	assert.Equal(s.T(), "wattpilot.local", s.sut.ServiceDetails().Host())
	assert.Equal(s.T(), []string{"192.168.1.20"}, s.hosts)
}

func (s *HubSuite) Test_EntryForService() {
	entry := &api.MdnsEntry{Serial: "12345678"}
	entries := map[string]*api.MdnsEntry{"12345678": entry}

	// a configured host without serial does not adopt wallboxes
	assert.Nil(s.T(), s.sut.entryForService(entries))

	s.sut = s.newHub(api.NewServiceDetails("", ""), s.mdns)
	assert.Equal(s.T(), entry, s.sut.entryForService(entries))

	entries["87654321"] = &api.MdnsEntry{Serial: "87654321"}
	assert.Nil(s.T(), s.sut.entryForService(entries))

	s.sut = s.newHub(api.NewServiceDetails("87654321", ""), s.mdns)
	assert.Equal(s.T(), "87654321", s.sut.entryForService(entries).Serial)
}

func TestConnectionInitiationDelayTime(t *testing.T) {
	hub := NewHub(nil, nil, nil, api.NewServiceDetails("", "localhost"))

	expected := []struct {
		counter  int
		min, max time.Duration
	}{
		{0, 0, 3 * time.Second},
		{1, 3 * time.Second, 10 * time.Second},
		{2, 10 * time.Second, 20 * time.Second},
		{2, 10 * time.Second, 20 * time.Second},
	}

	for _, item := range expected {
		counter, duration := hub.getConnectionInitiationDelayTime()
		assert.Equal(t, item.counter, counter)
		assert.GreaterOrEqual(t, duration, item.min)
		assert.Less(t, duration, item.max)
	}

	hub.removeConnectionAttemptCounter()
	counter, _ := hub.getConnectionInitiationDelayTime()
	assert.Equal(t, 0, counter)
}

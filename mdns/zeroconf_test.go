package mdns

import (
	"net"
	"sync"
	"testing"
	"time"

	"github.com/enbility/zeroconf/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const testServiceType = "_wattpilottest._tcp"

func TestZeroconf(t *testing.T) {
	suite.Run(t, new(ZeroconfSuite))
}

type ZeroconfSuite struct {
	suite.Suite

	sut *ZeroconfProvider

	mux sync.Mutex
}

func (z *ZeroconfSuite) BeforeTest(suiteName, testName string) {
	z.sut = NewZeroconfProvider([]net.Interface{})
}

func (z *ZeroconfSuite) AfterTest(suiteName, testName string) {
	z.sut.Shutdown()
}

type mDNSEntry struct {
	elements   map[string]string
	name, host string
	addresses  []net.IP
	port       int
}

func searchElement(list []mDNSEntry, name string) (mDNSEntry, bool) {
	for _, item := range list {
		if item.name == name {
			return item, true
		}
	}
	return mDNSEntry{}, false
}

func (z *ZeroconfSuite) Test_ZeroConf() {
	boolV := z.sut.CheckAvailability()
	assert.Equal(z.T(), true, boolV)

	var addedEntries, removedEntries []mDNSEntry

	cb := func(elements map[string]string, name, host string, addresses []net.IP, port int, remove bool) {
		entry := mDNSEntry{
			elements:  elements,
			name:      name,
			host:      host,
			addresses: addresses,
			port:      port,
		}

		z.mux.Lock()
		if remove {
			removedEntries = append(removedEntries, entry)
		} else {
			addedEntries = append(addedEntries, entry)
		}
		z.mux.Unlock()
	}

	go z.sut.ResolveEntries(testServiceType, cb)

	server, err := zeroconf.Register("Wattpilot_12345678", testServiceType, zeroconfDomain, 8080, []string{"serial=12345678"}, nil, zeroconf.TTL(120))
	assert.Nil(z.T(), err)

	time.Sleep(time.Second * 2)

	z.mux.Lock()
	entry, found := searchElement(addedEntries, "Wattpilot_12345678")
	z.mux.Unlock()
	assert.Equal(z.T(), true, found)
	assert.Equal(z.T(), 8080, entry.port)
	assert.Equal(z.T(), "12345678", entry.elements["serial"])

	server.Shutdown()

	time.Sleep(time.Second * 2)

	z.mux.Lock()
	_, found = searchElement(removedEntries, "Wattpilot_12345678")
	z.mux.Unlock()
	assert.Equal(z.T(), true, found)
}

func (z *ZeroconfSuite) Test_Shutdown() {
	done := make(chan struct{})

	go func() {
		z.sut.ResolveEntries(testServiceType, func(map[string]string, string, string, []net.IP, int, bool) {})
		close(done)
	}()

	z.sut.Shutdown()
	z.sut.Shutdown()

	select {
	case <-done:
	case <-time.After(time.Second * 2):
		z.T().Fatal("resolving did not stop")
	}
}

func (z *ZeroconfSuite) Test_RemovalKeepsElements() {
	var removedElements map[string]string

	cb := func(elements map[string]string, name, host string, addresses []net.IP, port int, remove bool) {
		if remove {
			removedElements = elements
		}
	}

	z.sut.report(&zeroconf.ServiceEntry{
		ServiceRecord: zeroconf.ServiceRecord{Instance: "Wattpilot_12345678"},
		Text:          []string{"serial=12345678", "devicetype=wattpilot"},
		AddrIPv4:      []net.IP{net.ParseIP("192.168.1.10")},
		Port:          80,
	}, false, cb)

	z.sut.report(&zeroconf.ServiceEntry{
		ServiceRecord: zeroconf.ServiceRecord{Instance: "Wattpilot_12345678"},
	}, true, cb)

	assert.Equal(z.T(), "12345678", removedElements["serial"])
	assert.Equal(z.T(), "wattpilot", removedElements["devicetype"])
	assert.Len(z.T(), z.sut.elements, 0)
}

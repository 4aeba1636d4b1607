package mdns

import (
	"errors"
	"fmt"
	"net"
	"slices"
	"sync"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/logging"
	"github.com/godbus/dbus/v5"
	"github.com/holoplot/go-avahi"
)

var errAvahiUnavailable = errors.New("avahi server is not available")

// what is needed to report the removal of a resolved service,
// avahi only sends the name for removals
type avahiRecord struct {
	elements map[string]string
	host     string
}

// Browses through the avahi daemon of the system via D-Bus
type AvahiProvider struct {
	ifaceIndexes []int32

	server *avahi.Server

	// the resolved services by getServiceUniqueKey
	known map[string]avahiRecord

	done         chan struct{}
	shutdownOnce sync.Once

	mux sync.Mutex
}

func NewAvahiProvider(ifaceIndexes []int32) *AvahiProvider {
	return &AvahiProvider{
		ifaceIndexes: ifaceIndexes,
		known:        make(map[string]avahiRecord),
		done:         make(chan struct{}),
	}
}

var _ api.MdnsProviderInterface = (*AvahiProvider)(nil)

// Connect to the daemon and check that it can browse for wallboxes
func (a *AvahiProvider) CheckAvailability() bool {
	a.mux.Lock()
	defer a.mux.Unlock()

	if a.server == nil {
		server, err := connectAvahi()
		if err != nil {
			logging.Log().Debug("mdns: avahi not usable:", err)
			return false
		}
		a.server = server
	}

	browser, err := a.server.ServiceBrowserNew(avahi.InterfaceUnspec, avahi.ProtoUnspec, DefaultServiceType, avahiDomain, 0)
	if err != nil || browser == nil {
		return false
	}
	a.server.ServiceBrowserFree(browser)

	return true
}

func connectAvahi() (*avahi.Server, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, err
	}

	server, err := avahi.ServerNew(conn)
	if err != nil {
		return nil, err
	}

	if _, err := server.GetAPIVersion(); err != nil {
		server.Close()
		return nil, err
	}

	return server, nil
}

func (a *AvahiProvider) Shutdown() {
	a.shutdownOnce.Do(func() {
		close(a.done)

		a.mux.Lock()
		defer a.mux.Unlock()

		if a.server != nil {
			a.server.Close()
			a.server = nil
		}
	})
}

// Browse until Shutdown is called
//
// All interfaces are browsed, the results are filtered afterwards.
func (a *AvahiProvider) ResolveEntries(serviceType string, callback api.MdnsResolveCB) {
	a.mux.Lock()
	server := a.server
	a.mux.Unlock()

	if server == nil {
		return
	}

	browser, err := server.ServiceBrowserNew(avahi.InterfaceUnspec, avahi.ProtoUnspec, serviceType, avahiDomain, 0)
	if err != nil || browser == nil {
		logging.Log().Debug("mdns: avahi browser for", serviceType, "not available:", err)
		return
	}

	logging.Log().Debug("mdns: browsing for", serviceType, "via avahi")

	defer func() {
		a.mux.Lock()
		defer a.mux.Unlock()

		if a.server != nil {
			a.server.ServiceBrowserFree(browser)
		}
	}()

	for {
		var err error

		select {
		case <-a.done:
			return
		case service := <-browser.AddChannel:
			err = a.processService(service, false, callback)
		case service := <-browser.RemoveChannel:
			err = a.processService(service, true, callback)
		}

		if err != nil {
			logging.Log().Debug("mdns: avahi -", err)
		}
	}
}

func (a *AvahiProvider) allowsInterface(index int32) bool {
	if len(a.ifaceIndexes) == 1 && a.ifaceIndexes[0] == avahi.InterfaceUnspec {
		return true
	}

	return slices.Contains(a.ifaceIndexes, index)
}

// avahi reports a service once per interface and protocol, mdns merges them
func (a *AvahiProvider) processService(service avahi.Service, remove bool, cb api.MdnsResolveCB) error {
	if !a.allowsInterface(service.Interface) {
		return fmt.Errorf("%s is on interface %d, which is not allowed", service.Name, service.Interface)
	}

	if remove {
		return a.processRemovedService(service, cb)
	}

	a.mux.Lock()
	server := a.server
	a.mux.Unlock()

	if server == nil {
		return fmt.Errorf("resolving %s: %w", service.Name, errAvahiUnavailable)
	}

	resolved, err := server.ResolveService(service.Interface, service.Protocol, service.Name, service.Type, service.Domain, avahi.ProtoUnspec, 0)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", service.Name, err)
	}

	return a.processAddedService(resolved, cb)
}

func (a *AvahiProvider) processRemovedService(service avahi.Service, cb api.MdnsResolveCB) error {
	key := getServiceUniqueKey(service)

	a.mux.Lock()
	record, ok := a.known[key]
	delete(a.known, key)
	a.mux.Unlock()

	host := service.Host
	if ok && host == "" {
		host = record.host
	}

	cb(record.elements, service.Name, host, nil, -1, true)

	return nil
}

func (a *AvahiProvider) processAddedService(service avahi.Service, cb api.MdnsResolveCB) error {
	address := net.ParseIP(service.Address)
	if address == nil || address.IsUnspecified() {
		return fmt.Errorf("%s has no usable address: '%s'", service.Name, service.Address)
	}
	// the wallbox is only reachable via IPv4
	if address.To4() == nil {
		return fmt.Errorf("%s has no IPv4 address: %s", service.Name, service.Address)
	}

	txt := make([]string, 0, len(service.Txt))
	for _, item := range service.Txt {
		txt = append(txt, string(item))
	}
	elements := parseTxt(txt)

	a.mux.Lock()
	a.known[getServiceUniqueKey(service)] = avahiRecord{elements: elements, host: service.Host}
	a.mux.Unlock()

	cb(elements, service.Name, service.Host, []net.IP{address}, int(service.Port), false)

	return nil
}

// identifies the reports of a service on one interface and protocol
func getServiceUniqueKey(service avahi.Service) string {
	return fmt.Sprintf("%s-%s-%s-%d-%d", service.Name, service.Type, service.Domain, service.Protocol, service.Interface)
}

package mdns

import (
	"errors"
	"net"
	"sync"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/logging"
	"github.com/enbility/wattpilot-go/util"
	"github.com/holoplot/go-avahi"
)

var ErrNoProvider = errors.New("no mDNS provider available")

// Browses the local network for wallboxes
type MdnsManager struct {
	// the browsed service type
	serviceType string

	// Network interface to use for browsing
	// Optional, if not set all detected interfaces will be used
	ifaces []string

	// the currently available wallboxes with the serial number as the key in the map
	entries map[string]*api.MdnsEntry

	// the registered callback, only the hub is using this
	report api.MdnsReportInterface

	mdnsProvider api.MdnsProviderInterface

	shutdownOnce sync.Once

	providerSelection MdnsProviderSelection

	mux sync.Mutex
}

// Create a new mDNS manager
//
// Parameters:
//   - serviceType: the service type to browse, DefaultServiceType if empty
//   - providerSelection: the mDNS provider selection
//   - ifaces: the network interfaces to use, all if empty
func NewMDNS(serviceType string, providerSelection MdnsProviderSelection, ifaces ...string) *MdnsManager {
	if serviceType == "" {
		serviceType = DefaultServiceType
	}

	return &MdnsManager{
		serviceType:       serviceType,
		ifaces:            ifaces,
		providerSelection: providerSelection,
		entries:           make(map[string]*api.MdnsEntry),
	}
}

// Return allowed interfaces for mDNS
func (m *MdnsManager) interfaces() ([]net.Interface, []int32, error) {
	var ifaces []net.Interface
	var ifaceIndexes []int32

	if len(m.ifaces) > 0 {
		ifaces = make([]net.Interface, len(m.ifaces))
		ifaceIndexes = make([]int32, len(m.ifaces))
		for i, ifaceName := range m.ifaces {
			iface, err := net.InterfaceByName(ifaceName)
			if err != nil {
				return nil, nil, err
			}
			ifaces[i] = *iface
			// conversion is safe, as the index is always positive and not higher than int32
			ifaceIndexes[i] = int32(iface.Index) // #nosec G115
		}
	}

	if len(ifaces) == 0 {
		ifaces = nil
		ifaceIndexes = []int32{avahi.InterfaceUnspec}
	}

	return ifaces, ifaceIndexes, nil
}

var _ api.MdnsInterface = (*MdnsManager)(nil)

func (m *MdnsManager) Start(cb api.MdnsReportInterface) error {
	provider, err := m.selectProvider()
	if err != nil {
		return err
	}

	m.mux.Lock()
	m.mdnsProvider = provider
	m.report = cb
	m.mux.Unlock()

	go provider.ResolveEntries(m.serviceType, m.processMdnsEntry)

	return nil
}

func (m *MdnsManager) selectProvider() (api.MdnsProviderInterface, error) {
	m.mux.Lock()
	provider := m.mdnsProvider
	m.mux.Unlock()

	// already set up, e.g. a custom provider
	if provider != nil {
		if !provider.CheckAvailability() {
			return nil, ErrNoProvider
		}
		return provider, nil
	}

	ifaces, ifaceIndexes, err := m.interfaces()
	if err != nil {
		return nil, err
	}

	var candidates []api.MdnsProviderInterface
	switch m.providerSelection {
	case MdnsProviderSelectionAll:
		// First try avahi, if not available use zerconf
		candidates = append(candidates, NewAvahiProvider(ifaceIndexes), NewZeroconfProvider(ifaces))
	case MdnsProviderSelectionAvahiOnly:
		candidates = append(candidates, NewAvahiProvider(ifaceIndexes))
	case MdnsProviderSelectionGoZeroConfOnly:
		candidates = append(candidates, NewZeroconfProvider(ifaces))
	}

	for _, candidate := range candidates {
		if candidate.CheckAvailability() {
			return candidate, nil
		}
		candidate.Shutdown()
	}

	return nil, ErrNoProvider
}

// Shutdown all of mDNS
func (m *MdnsManager) Shutdown() {
	m.shutdownOnce.Do(func() {
		m.mux.Lock()
		provider := m.mdnsProvider
		m.mdnsProvider = nil
		m.mux.Unlock()

		if provider == nil {
			return
		}

		provider.Shutdown()
	})
}

func (m *MdnsManager) mdnsEntries() map[string]*api.MdnsEntry {
	m.mux.Lock()
	defer m.mux.Unlock()

	return m.entries
}

func (m *MdnsManager) copyMdnsEntries() map[string]*api.MdnsEntry {
	m.mux.Lock()
	defer m.mux.Unlock()

	mdnsEntries := make(map[string]*api.MdnsEntry)
	for k, v := range m.entries {
		newEntry := &api.MdnsEntry{}
		util.DeepCopy[*api.MdnsEntry](v, newEntry)
		mdnsEntries[k] = newEntry
	}

	return mdnsEntries
}

func (m *MdnsManager) mdnsEntry(serial string) (*api.MdnsEntry, bool) {
	m.mux.Lock()
	defer m.mux.Unlock()

	entry, ok := m.entries[serial]
	return entry, ok
}

func (m *MdnsManager) setMdnsEntry(serial string, entry *api.MdnsEntry) {
	m.mux.Lock()
	defer m.mux.Unlock()

	m.entries[serial] = entry
}

func (m *MdnsManager) removeMdnsEntry(serial string) {
	m.mux.Lock()
	defer m.mux.Unlock()

	delete(m.entries, serial)
}

// process an mDNS entry and manage mDNS entries map
func (m *MdnsManager) processMdnsEntry(elements map[string]string, name, host string, addresses []net.IP, port int, remove bool) {
	serial := util.NormalizeSerial(serialForService(elements, name))
	if serial == "" {
		return
	}

	// remove IPv6 local link addresses
	var newAddresses []net.IP
	for _, address := range addresses {
		if address.To4() == nil && address.IsLinkLocalUnicast() {
			continue
		}
		newAddresses = append(newAddresses, address)
	}
	addresses = newAddresses

	brand := elements["manufacturer"]
	if brand == "" {
		brand = elements["brand"]
	}
	model := elements["devicetype"]
	if model == "" {
		model = elements["model"]
	}
	firmware := elements["version"]

	updated := false

	entry, exists := m.mdnsEntry(serial)

	if remove && exists {
		updated = true
		// there will be a remove for each address with avahi, but we'll delete it right away
		m.removeMdnsEntry(serial)

		logging.Log().Debug("mdns: remove - serial:", serial, "name:", name, "host:", host, "port:", port)
	} else if exists {
		// avahi sends an item for each network address, merge them
		for _, address := range addresses {
			isNewElement := true

			for _, item := range entry.Addresses {
				if item.Equal(address) {
					isNewElement = false
					break
				}
			}

			if isNewElement {
				entry.Addresses = append(entry.Addresses, address)
				updated = true
			}
		}

		if updated {
			m.setMdnsEntry(serial, entry)

			logging.Log().Debug("mdns: update - serial:", serial, "name:", name, "host:", host, "port:", port, "addresses:", entry.Addresses)
		}
	} else if !exists && !remove {
		updated = true
		newEntry := &api.MdnsEntry{
			Name:      name,
			Serial:    serial,
			Host:      host,
			Port:      port,
			Addresses: addresses,
			Brand:     brand,
			Model:     model,
			Firmware:  firmware,
		}
		m.setMdnsEntry(serial, newEntry)

		logging.Log().Debug("mdns: new - serial:", serial, "name:", name, "brand:", brand, "model:", model, "firmware:", firmware, "host:", host, "port:", port, "addresses:", addresses)
	}

	m.mux.Lock()
	report := m.report
	m.mux.Unlock()

	if report == nil || !updated {
		return
	}

	entries := m.copyMdnsEntries()
	go report.ReportMdnsEntries(entries, true)
}

func (m *MdnsManager) RequestMdnsEntries() {
	m.mux.Lock()
	report := m.report
	m.mux.Unlock()

	if report == nil {
		return
	}

	entries := m.copyMdnsEntries()
	go report.ReportMdnsEntries(entries, false)
}

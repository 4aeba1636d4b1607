package hub

import (
	"sort"
	"strings"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/logging"
)

var _ api.MdnsReportInterface = (*Hub)(nil)

// Process reported mDNS services
func (h *Hub) ReportMdnsEntries(entries map[string]*api.MdnsEntry, newEntries bool) {
	h.muxMdns.Lock()

	var mdnsEntries []*api.MdnsEntry

	for _, entry := range entries {
		mdnsEntries = append(mdnsEntries, entry)
	}

	sort.Slice(mdnsEntries, func(i, j int) bool {
		item1 := mdnsEntries[i]
		item2 := mdnsEntries[j]
		a := strings.ToLower(item1.Brand + item1.Model + item1.Serial)
		b := strings.ToLower(item2.Brand + item2.Model + item2.Serial)
		return a < b
	})

	h.knownMdnsEntries = mdnsEntries

	h.muxMdns.Unlock()

	if h.hubReader != nil {
		h.hubReader.VisibleWallboxesUpdated(mdnsEntries)
	}

	entry := h.entryForService(entries)
	if entry == nil {
		return
	}

	if h.service.Serial() == "" {
		h.service.SetSerial(entry.Serial)
	}

	// patch the connection address if an IPv4 address was provided
	for _, address := range entry.Addresses {
		if ipv4 := address.To4(); ipv4 != nil {
			if h.service.IPv4() != ipv4.String() {
				logging.Log().Debug("mdns: wallbox", entry.Serial, "is reachable at", ipv4.String())
			}
			h.service.SetIPv4(ipv4.String())
			break
		}
	}
	if h.service.Host() == "" {
		h.service.SetHost(entry.Host)
	}

	if !h.isRunning() || h.isConnected() {
		return
	}

	h.coordinateConnectionInitations()
}

// the entry of the supervised wallbox, any wallbox if there is no
// configured target and exactly one is visible
func (h *Hub) entryForService(entries map[string]*api.MdnsEntry) *api.MdnsEntry {
	if serial := h.service.Serial(); serial != "" {
		return entries[serial]
	}

	if h.service.Host() != "" || len(entries) != 1 {
		return nil
	}

	for _, entry := range entries {
		return entry
	}

	return nil
}

// the currently visible wallboxes
func (h *Hub) MdnsEntries() []*api.MdnsEntry {
	h.muxMdns.Lock()
	defer h.muxMdns.Unlock()

	result := make([]*api.MdnsEntry, len(h.knownMdnsEntries))
	copy(result, h.knownMdnsEntries)

	return result
}

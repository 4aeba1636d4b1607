package mdns

import (
	"context"
	"net"
	"sync"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/logging"
	"github.com/enbility/zeroconf/v3"
)

// Browses with the Go native zeroconf implementation
type ZeroconfProvider struct {
	ifaces []net.Interface

	ctx    context.Context
	cancel context.CancelFunc

	// the TXT elements by instance name, goodbye packets usually come without them
	elements map[string]map[string]string

	shutdownOnce sync.Once
	mux          sync.Mutex
}

func NewZeroconfProvider(ifaces []net.Interface) *ZeroconfProvider {
	ctx, cancel := context.WithCancel(context.Background())

	return &ZeroconfProvider{
		ifaces:   ifaces,
		ctx:      ctx,
		cancel:   cancel,
		elements: make(map[string]map[string]string),
	}
}

var _ api.MdnsProviderInterface = (*ZeroconfProvider)(nil)

// always available, it only needs a multicast capable network
func (z *ZeroconfProvider) CheckAvailability() bool {
	return true
}

func (z *ZeroconfProvider) Shutdown() {
	z.shutdownOnce.Do(z.cancel)
}

// Browse until Shutdown is called
func (z *ZeroconfProvider) ResolveEntries(serviceType string, callback api.MdnsResolveCB) {
	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)

	go func() {
		if err := zeroconf.Browse(z.ctx, serviceType, zeroconfDomain, entries, removed, z.browserOptions()...); err != nil {
			logging.Log().Debug("mdns: zeroconf browse for", serviceType, "failed:", err)
		}
	}()

	logging.Log().Debug("mdns: browsing for", serviceType, "via zeroconf")

	for {
		select {
		case <-z.ctx.Done():
			return

		case entry, ok := <-entries:
			if !ok {
				return
			}
			// incomplete records happen while zeroconf merges the answers
			if entry == nil || len(entry.AddrIPv4) == 0 {
				continue
			}
			z.report(entry, false, callback)

		case entry, ok := <-removed:
			if !ok || entry == nil {
				continue
			}
			z.report(entry, true, callback)
		}
	}
}

func (z *ZeroconfProvider) report(entry *zeroconf.ServiceEntry, remove bool, callback api.MdnsResolveCB) {
	elements := parseTxt(entry.Text)

	z.mux.Lock()
	if remove {
		if len(elements) == 0 {
			elements = z.elements[entry.Instance]
		}
		delete(z.elements, entry.Instance)
	} else {
		z.elements[entry.Instance] = elements
	}
	z.mux.Unlock()

	// the wallbox is only reachable via IPv4
	callback(elements, entry.Instance, entry.HostName, entry.AddrIPv4, entry.Port, remove)
}

func (z *ZeroconfProvider) browserOptions() []zeroconf.ClientOption {
	var opts []zeroconf.ClientOption

	if len(z.ifaces) > 0 {
		opts = append(opts, zeroconf.SelectIfaces(z.ifaces))
	}

	return opts
}

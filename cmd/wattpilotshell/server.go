package main

import (
	"context"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/config"
	"github.com/enbility/wattpilot-go/hub"
	"github.com/enbility/wattpilot-go/logging"
	"github.com/enbility/wattpilot-go/mdns"
	"github.com/enbility/wattpilot-go/schema"
)

// receives the hub updates of the server mode
type serverReader struct {
	connected chan struct{}
}

func newServerReader() *serverReader {
	return &serverReader{
		connected: make(chan struct{}, 1),
	}
}

var _ api.HubReaderInterface = (*serverReader)(nil)

func (r *serverReader) VisibleWallboxesUpdated(entries []*api.MdnsEntry) {
	for _, entry := range entries {
		logging.Log().Debugf("Visible wallbox: %s (%s) %v", entry.Serial, entry.Name, entry.Addresses)
	}
}

func (r *serverReader) ConnectionStateUpdated(serial string, detail *api.ConnectionStateDetail) {
	switch detail.State() {
	case api.ConnectionStateConnected:
		logging.Log().Infof("Wallbox %s connected", serial)

		select {
		case r.connected <- struct{}{}:
		default:
		}

	case api.ConnectionStateReconnecting, api.ConnectionStateError:
		logging.Log().Warnf("Wallbox %s not connected: %v", serial, detail.Error())

	default:
		logging.Log().Debugf("Wallbox %s connection state: %v", serial, detail.State())
	}
}

// Keep the wallbox connected until ctx is done
//
// The bridges are set up again whenever the hub has to create a new
// client, e.g. because mDNS reported a new address.
func runServer(ctx context.Context, cfg *config.Config, definition *schema.Definition) error {
	var mdnsManager api.MdnsInterface
	if cfg.Discovery.Enabled {
		mdnsManager = mdns.NewMDNS(mdns.DefaultServiceType, cfg.Discovery.Provider)
	}

	reader := newServerReader()
	supervisor := hub.NewHub(func(host string) api.ClientInterface {
		return newClient(cfg, definition, host)
	}, reader, mdnsManager, api.NewServiceDetails(cfg.Wattpilot.Serial, cfg.Wattpilot.Host))

	sh := newShell(cfg, definition, supervisor.Client)

	if err := supervisor.Start(); err != nil {
		return err
	}

	logging.Log().Info("Server started.")

	var current api.ClientInterface
	for {
		select {
		case <-ctx.Done():
			logging.Log().Info("Server shutting down.")

			// the hub must not reconnect the closed client
			supervisor.Shutdown()
			sh.Close()
			return nil

		case <-reader.connected:
			client := supervisor.Client()
			if client == nil || client == current {
				continue
			}
			current = client

			sh.Autoconnect(ctx)
		}
	}
}

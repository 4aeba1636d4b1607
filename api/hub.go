package api

/* Hub */

// Used to pass information from the hub to the application
//
// Implemented by the shell server mode, used by Hub
type HubReaderInterface interface {
	// report the wallboxes currently visible via mDNS
	VisibleWallboxesUpdated(entries []*MdnsEntry)

	// report a changed connection state of the supervised wallbox
	ConnectionStateUpdated(serial string, detail *ConnectionStateDetail)
}

// keeps a single wallbox connection alive
type HubInterface interface {
	Start() error
	Shutdown()
	Client() ClientInterface
	ServiceDetails() *ServiceDetails
}

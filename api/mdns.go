package api

import "net"

/* Mdns */

type MdnsEntry struct {
	Name      string   // the mDNS service instance name
	Serial    string   // mandatory, the wallbox serial number
	Host      string   // mandatory, the host name
	Port      int      // mandatory, the port of the http/websocket service
	Addresses []net.IP // mandatory, the IP addresses used by the service
	Brand     string   // optional, the brand of the device
	Model     string   // optional, the model of the device
	Firmware  string   // optional, the firmware version
}

// implemented by Hub, used by mdns
type MdnsReportInterface interface {
	ReportMdnsEntries(entries map[string]*MdnsEntry, newEntries bool)
}

// implemented by mdns, used by Hub
type MdnsInterface interface {
	Start(cb MdnsReportInterface) error
	Shutdown()
	RequestMdnsEntries()
}

// implemented by mdns, used by Providers
type MdnsResolveCB func(elements map[string]string, name, host string, addresses []net.IP, port int, remove bool)

// implemented by mdns providers, used by mdns
type MdnsProviderInterface interface {
	CheckAvailability() bool
	Shutdown()
	ResolveEntries(serviceType string, callback MdnsResolveCB)
}

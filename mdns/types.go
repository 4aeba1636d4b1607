package mdns

import (
	"strings"
)

const (
	// wallboxes announce their web interface
	DefaultServiceType = "_http._tcp"

	// the instance name prefix used by the wallbox
	InstancePrefix = "Wattpilot_"

	avahiDomain    = "local"
	zeroconfDomain = "local."
)

type MdnsProviderSelection uint

const (
	MdnsProviderSelectionAll            MdnsProviderSelection = iota // Automatically use avahi if available, otherwise use Go native Zeroconf, default
	MdnsProviderSelectionAvahiOnly                                   // Only use avahi
	MdnsProviderSelectionGoZeroConfOnly                              // Only us Go native zeroconf
)

// Parse the provider selection of the configuration, all|avahi|zeroconf
func ParseProviderSelection(value string) MdnsProviderSelection {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "avahi":
		return MdnsProviderSelectionAvahiOnly
	case "zeroconf":
		return MdnsProviderSelectionGoZeroConfOnly
	}
	return MdnsProviderSelectionAll
}

// convert the TXT record strings into key value pairs,
// strings without a "=" are ignored
func parseTxt(txt []string) map[string]string {
	result := make(map[string]string, len(txt))

	for _, item := range txt {
		key, value, found := strings.Cut(item, "=")
		if !found || key == "" {
			continue
		}
		result[strings.ToLower(key)] = value
	}

	return result
}

// returns the wallbox serial of a service, empty if it is not a wallbox
func serialForService(elements map[string]string, name string) string {
	if serial, ok := elements["serial"]; ok && serial != "" {
		return serial
	}

	if strings.HasPrefix(strings.ToLower(name), strings.ToLower(InstancePrefix)) {
		return name[len(InstancePrefix):]
	}

	return ""
}

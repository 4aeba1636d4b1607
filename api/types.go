package api

import "fmt"

// Charging logic mode, property "lmo"
type LoadMode int

const (
	LoadModeDefault  LoadMode = 3
	LoadModeEco      LoadMode = 4
	LoadModeNextTrip LoadMode = 5
)

func (m LoadMode) String() string {
	switch m {
	case LoadModeDefault:
		return "Default"
	case LoadModeEco:
		return "Eco"
	case LoadModeNextTrip:
		return "NextTrip"
	}
	return fmt.Sprintf("LoadMode(%d)", int(m))
}

// Car connection and charging status, property "car"
type CarStatus int

const (
	CarStatusNoCar    CarStatus = 1
	CarStatusCharging CarStatus = 2
	CarStatusReady    CarStatus = 3
	CarStatusComplete CarStatus = 4
)

// Access control state, property "acs"
type AccessState int

const (
	AccessStateOpen AccessState = 0
	AccessStateWait AccessState = 1
)

// Device error state, property "err"
type ErrorState int

const (
	ErrorStateUnknown  ErrorState = 0
	ErrorStateIdle     ErrorState = 1
	ErrorStateCharging ErrorState = 2
	ErrorStateWaitCar  ErrorState = 3
	ErrorStateComplete ErrorState = 4
	ErrorStateError    ErrorState = 5
)

// Cable lock behaviour, property "ust"
type CableLockMode int

const (
	CableLockModeNormal     CableLockMode = 0
	CableLockModeAutoUnlock CableLockMode = 1
	CableLockModeAlwaysLock CableLockMode = 2
)

// The password hashing algorithm requested by the device
type AuthHashType string

const (
	AuthHashTypePBKDF2 AuthHashType = "pbkdf2"
	AuthHashTypeBcrypt AuthHashType = "bcrypt"
)

// Device identity as announced by the hello frame
type DeviceInfo struct {
	Serial       string
	Name         string
	Hostname     string
	FriendlyName string
	Manufacturer string
	DeviceType   string
	Protocol     int
	Secured      int
	Version      string
	Firmware     string
}

// Result of enabling the cloud API
type CloudInfo struct {
	Enabled bool
	APIKey  string
	URL     string
}

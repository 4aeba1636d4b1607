package store

import "github.com/enbility/wattpilot-go/util"

func (s *PropertyStore) intValue(key string) *int64 {
	value, ok := s.Get(key)
	if !ok {
		return nil
	}
	return intPtr(value)
}

func (s *PropertyStore) floatValue(key string) *float64 {
	value, ok := s.Get(key)
	if !ok {
		return nil
	}
	return floatPtr(value)
}

func (s *PropertyStore) stringValue(key string) *string {
	value, ok := s.Get(key)
	if !ok {
		return nil
	}
	return stringPtr(value)
}

func (s *PropertyStore) boolValue(key string) *bool {
	value, ok := s.Get(key)
	if !ok {
		return nil
	}
	return boolPtr(value)
}

func (s *PropertyStore) rawValue(key string) any {
	value, _ := s.Get(key)
	return value
}

/* device info */

// device variant, e.g. 11 or 22 kW
func (s *PropertyStore) Variant() any { return s.rawValue("var") }

func (s *PropertyStore) Model() *string { return s.stringValue("typ") }

/* charging state */

// see api.CarStatus
func (s *PropertyStore) CarState() *int64 { return s.intValue("car") }

func (s *PropertyStore) CableUnlockStatus() *int64 { return s.intValue("cus") }

func (s *PropertyStore) ChargingReason() *int64 { return s.intValue("modelStatus") }

func (s *PropertyStore) ForceState() *int64 { return s.intValue("frc") }

// the RFID chip of the running transaction, null without one
func (s *PropertyStore) ActiveTransactionChip() any { return s.rawValue("trx") }

/* configuration */

func (s *PropertyStore) ButtonLock() *int64 { return s.intValue("bac") }

func (s *PropertyStore) DaylightSaving() *int64 { return s.intValue("tds") }

func (s *PropertyStore) PhaseSwitchMode() *int64 { return s.intValue("psm") }

/* diagnostics */

func (s *PropertyStore) InverterInfo() any { return s.rawValue("cci") }

func (s *PropertyStore) WifiConnectionInfo() any { return s.rawValue("ccw") }

func (s *PropertyStore) LockFeedback() *int64 { return s.intValue("ffb") }

func (s *PropertyStore) EffectiveLockSetting() *int64 { return s.intValue("lck") }

func (s *PropertyStore) LocalTime() *string { return s.stringValue("loc") }

// RSSI in dBm
func (s *PropertyStore) WifiSignalStrength() *int64 { return s.intValue("rssi") }

func (s *PropertyStore) Temperature() any { return s.rawValue("tma") }

func (s *PropertyStore) UptimeMs() *int64 { return s.intValue("rbt") }

func (s *PropertyStore) RebootCount() *int64 { return s.intValue("rbc") }

func (s *PropertyStore) WebsocketQueueSize() *int64 { return s.intValue("qsw") }

func (s *PropertyStore) HttpClients() *int64 { return s.intValue("wcch") }

func (s *PropertyStore) WebsocketClients() *int64 { return s.intValue("wccw") }

func (s *PropertyStore) WifiStatus() *int64 { return s.intValue("wst") }

/* RFID */

func (s *PropertyStore) RfidCards() any { return s.rawValue("cards") }

/* PV surplus */

func (s *PropertyStore) PvSurplusEnabled() *bool { return s.boolValue("fup") }

// in W
func (s *PropertyStore) PvSurplusStartPower() *float64 { return s.floatValue("fst") }

func (s *PropertyStore) PvBatteryThreshold() *float64 { return s.floatValue("fam") }

// in seconds
func (s *PropertyStore) MinChargingTime() *int64 { return s.intValue("fmt") }

func (s *PropertyStore) NextTripEnergy() *float64 { return s.floatValue("fte") }

// seconds since midnight
func (s *PropertyStore) NextTripTime() *int64 { return s.intValue("ftt") }

/* firmware */

// The versions offered for installation
func (s *PropertyStore) AvailableFirmwareVersions() []string {
	switch value := s.rawValue("onv").(type) {
	case []any:
		result := make([]string, 0, len(value))
		for _, item := range value {
			result = append(result, util.FormatValue(item))
		}
		return result
	case string:
		if value != "" {
			return []string{value}
		}
	}

	return []string{}
}

func (s *PropertyStore) FirmwareUpdateAvailable() bool {
	available := s.AvailableFirmwareVersions()
	if len(available) == 0 {
		return false
	}

	installed := s.Fields().Firmware
	if installed == nil || *installed == "" {
		return true
	}

	for _, version := range available {
		if version != *installed {
			return true
		}
	}
	return false
}

package store

import (
	"sync"

	"github.com/enbility/wattpilot-go/util"
)

// the positions of the values in the nrg array
const (
	nrgVoltage1 = iota
	nrgVoltage2
	nrgVoltage3
	nrgVoltageN
	nrgAmps1
	nrgAmps2
	nrgAmps3
	nrgPower1
	nrgPower2
	nrgPower3
	nrgPowerN
	nrgPowerTotal
)

// power values are reported in W
const powerScale = 0.001

// Named views on frequently used properties
//
// A field is nil until its source key was received with a value of the
// expected type
type Fields struct {
	Voltage1 *float64
	Voltage2 *float64
	Voltage3 *float64
	VoltageN *float64
	Amps1    *float64
	Amps2    *float64
	Amps3    *float64
	Power1   *float64 // kW
	Power2   *float64 // kW
	Power3   *float64 // kW
	PowerN   *float64 // kW
	Power    *float64 // kW

	Amp           *int64
	Mode          *int64
	CarConnected  *int64
	AllowCharging *bool
	AccessState   *int64
	CableType     *int64
	CableLock     *int64
	ErrorState    *int64
	Frequency     *float64
	Phases        any

	EnergyCounterSinceStart *float64
	EnergyCounterTotal      *float64

	Version  *string
	Firmware *string
	WifiSSID *string

	CloudEnabled *bool
	CloudAPIKey  *string
}

type fieldUpdater func(f *Fields, value any)

func intField(target func(f *Fields) **int64) fieldUpdater {
	return func(f *Fields, value any) {
		*target(f) = intPtr(value)
	}
}

func floatField(target func(f *Fields) **float64) fieldUpdater {
	return func(f *Fields, value any) {
		*target(f) = floatPtr(value)
	}
}

func stringField(target func(f *Fields) **string) fieldUpdater {
	return func(f *Fields, value any) {
		*target(f) = stringPtr(value)
	}
}

func boolField(target func(f *Fields) **bool) fieldUpdater {
	return func(f *Fields, value any) {
		*target(f) = boolPtr(value)
	}
}

// keys with a named view, all other keys are only stored
var fieldUpdaters = map[string]fieldUpdater{
	"acs":     intField(func(f *Fields) **int64 { return &f.AccessState }),
	"ast":     intField(func(f *Fields) **int64 { return &f.AccessState }),
	"cbl":     intField(func(f *Fields) **int64 { return &f.CableType }),
	"fhz":     floatField(func(f *Fields) **float64 { return &f.Frequency }),
	"pha":     func(f *Fields, value any) { f.Phases = value },
	"wh":      floatField(func(f *Fields) **float64 { return &f.EnergyCounterSinceStart }),
	"err":     intField(func(f *Fields) **int64 { return &f.ErrorState }),
	"ust":     intField(func(f *Fields) **int64 { return &f.CableLock }),
	"eto":     floatField(func(f *Fields) **float64 { return &f.EnergyCounterTotal }),
	"cae":     boolField(func(f *Fields) **bool { return &f.CloudEnabled }),
	"cak":     stringField(func(f *Fields) **string { return &f.CloudAPIKey }),
	"lmo":     intField(func(f *Fields) **int64 { return &f.Mode }),
	"car":     intField(func(f *Fields) **int64 { return &f.CarConnected }),
	"alw":     boolField(func(f *Fields) **bool { return &f.AllowCharging }),
	"amp":     intField(func(f *Fields) **int64 { return &f.Amp }),
	"version": stringField(func(f *Fields) **string { return &f.Version }),
	"fwv":     stringField(func(f *Fields) **string { return &f.Firmware }),
	"wss":     stringField(func(f *Fields) **string { return &f.WifiSSID }),
	"nrg":     updateEnergy,
}

// decompose the nrg array, positions missing in a short array stay untouched
func updateEnergy(f *Fields, value any) {
	values, ok := value.([]any)
	if !ok {
		return
	}

	targets := []struct {
		field **float64
		scale float64
	}{
		nrgVoltage1:   {&f.Voltage1, 1},
		nrgVoltage2:   {&f.Voltage2, 1},
		nrgVoltage3:   {&f.Voltage3, 1},
		nrgVoltageN:   {&f.VoltageN, 1},
		nrgAmps1:      {&f.Amps1, 1},
		nrgAmps2:      {&f.Amps2, 1},
		nrgAmps3:      {&f.Amps3, 1},
		nrgPower1:     {&f.Power1, powerScale},
		nrgPower2:     {&f.Power2, powerScale},
		nrgPower3:     {&f.Power3, powerScale},
		nrgPowerN:     {&f.PowerN, powerScale},
		nrgPowerTotal: {&f.Power, powerScale},
	}

	for i, target := range targets {
		if i >= len(values) {
			break
		}
		number, ok := util.ToFloat(values[i])
		if !ok {
			continue
		}
		*target.field = util.Ptr(number * target.scale)
	}
}

// The last known value of every property reported by the device
type PropertyStore struct {
	values map[string]any
	fields Fields

	mux sync.RWMutex
}

func NewPropertyStore() *PropertyStore {
	return &PropertyStore{
		values: make(map[string]any),
	}
}

// Store a single value and update the named view derived from the key
func (s *PropertyStore) Apply(key string, value any) {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.values[key] = value
	if updater, ok := fieldUpdaters[key]; ok {
		updater(&s.fields, value)
	}
}

// Returns the last value of the key
func (s *PropertyStore) Get(key string) (any, bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	value, ok := s.values[key]
	return value, ok
}

// Returns a copy of all values
func (s *PropertyStore) All() map[string]any {
	s.mux.RLock()
	defer s.mux.RUnlock()

	result := make(map[string]any, len(s.values))
	for key, value := range s.values {
		result[key] = value
	}
	return result
}

func (s *PropertyStore) Len() int {
	s.mux.RLock()
	defer s.mux.RUnlock()

	return len(s.values)
}

// Returns a copy of the named views
func (s *PropertyStore) Fields() Fields {
	s.mux.RLock()
	defer s.mux.RUnlock()

	return s.fields
}

func intPtr(value any) *int64 {
	switch v := value.(type) {
	case bool:
		return nil
	case int64:
		return util.Ptr(v)
	}
	if number, ok := util.ToInt(value); ok {
		return util.Ptr(number)
	}
	return nil
}

func floatPtr(value any) *float64 {
	if number, ok := util.ToFloat(value); ok {
		return util.Ptr(number)
	}
	return nil
}

func stringPtr(value any) *string {
	if v, ok := value.(string); ok {
		return util.Ptr(v)
	}
	return nil
}

func boolPtr(value any) *bool {
	if v, ok := value.(bool); ok {
		return util.Ptr(v)
	}
	return nil
}

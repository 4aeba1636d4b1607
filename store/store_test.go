package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

type StoreSuite struct {
	suite.Suite

	sut *PropertyStore
}

func (s *StoreSuite) BeforeTest(suiteName, testName string) {
	s.sut = NewPropertyStore()
}

func nrgFixture() []any {
	return []any{
		int64(230), int64(231), int64(232), int64(0),
		10.5, int64(11), 10.8,
		int64(2415), int64(2541), int64(2506), int64(0), int64(7462),
		int64(0), int64(0), int64(0), int64(0),
	}
}

func (s *StoreSuite) Test_ApplyAndGet() {
	_, ok := s.sut.Get("amp")
	assert.False(s.T(), ok)

	s.sut.Apply("amp", int64(16))
	s.sut.Apply("fna", "Garage")

	value, ok := s.sut.Get("amp")
	assert.True(s.T(), ok)
	assert.Equal(s.T(), int64(16), value)
	assert.Equal(s.T(), 2, s.sut.Len())

	fields := s.sut.Fields()
	assert.NotNil(s.T(), fields.Amp)
	assert.Equal(s.T(), int64(16), *fields.Amp)

	s.sut.Apply("amp", int64(10))
	fields = s.sut.Fields()
	assert.Equal(s.T(), int64(10), *fields.Amp)

	all := s.sut.All()
	assert.Equal(s.T(), map[string]any{"amp": int64(10), "fna": "Garage"}, all)

	// the copy is detached from the store
	all["amp"] = int64(1)
	value, _ = s.sut.Get("amp")
	assert.Equal(s.T(), int64(10), value)
}

func (s *StoreSuite) Test_EnergyDecomposition() {
	s.sut.Apply("nrg", nrgFixture())

	fields := s.sut.Fields()
	assert.Equal(s.T(), 230.0, *fields.Voltage1)
	assert.Equal(s.T(), 231.0, *fields.Voltage2)
	assert.Equal(s.T(), 232.0, *fields.Voltage3)
	assert.Equal(s.T(), 0.0, *fields.VoltageN)
	assert.Equal(s.T(), 10.5, *fields.Amps1)
	assert.Equal(s.T(), 11.0, *fields.Amps2)
	assert.Equal(s.T(), 10.8, *fields.Amps3)
	assert.InDelta(s.T(), 2.415, *fields.Power1, 1e-9)
	assert.InDelta(s.T(), 2.541, *fields.Power2, 1e-9)
	assert.InDelta(s.T(), 2.506, *fields.Power3, 1e-9)
	assert.InDelta(s.T(), 0.0, *fields.PowerN, 1e-9)
	assert.InDelta(s.T(), 7.462, *fields.Power, 1e-9)
}

func (s *StoreSuite) Test_EnergyShortArray() {
	s.sut.Apply("nrg", nrgFixture())
	s.sut.Apply("nrg", []any{int64(220), int64(221)})

	fields := s.sut.Fields()
	assert.Equal(s.T(), 220.0, *fields.Voltage1)
	assert.Equal(s.T(), 221.0, *fields.Voltage2)
	assert.Equal(s.T(), 232.0, *fields.Voltage3)
	assert.InDelta(s.T(), 7.462, *fields.Power, 1e-9)

	// not an array, nothing derived
	s.sut.Apply("nrg", "invalid")
	fields = s.sut.Fields()
	assert.Equal(s.T(), 220.0, *fields.Voltage1)
}

func (s *StoreSuite) Test_NamedFields() {
	s.sut.Apply("acs", int64(1))
	s.sut.Apply("cbl", int64(32))
	s.sut.Apply("fhz", 50.02)
	s.sut.Apply("pha", []any{true, true, true})
	s.sut.Apply("wh", 1234.5)
	s.sut.Apply("err", int64(0))
	s.sut.Apply("ust", int64(2))
	s.sut.Apply("eto", int64(987654))
	s.sut.Apply("cae", true)
	s.sut.Apply("cak", "secret-key")
	s.sut.Apply("lmo", int64(4))
	s.sut.Apply("car", int64(2))
	s.sut.Apply("alw", true)
	s.sut.Apply("version", "1.2.3")
	s.sut.Apply("fwv", "40.7")
	s.sut.Apply("wss", "home")

	fields := s.sut.Fields()
	assert.Equal(s.T(), int64(1), *fields.AccessState)
	assert.Equal(s.T(), int64(32), *fields.CableType)
	assert.Equal(s.T(), 50.02, *fields.Frequency)
	assert.Equal(s.T(), []any{true, true, true}, fields.Phases)
	assert.Equal(s.T(), 1234.5, *fields.EnergyCounterSinceStart)
	assert.Equal(s.T(), int64(0), *fields.ErrorState)
	assert.Equal(s.T(), int64(2), *fields.CableLock)
	assert.Equal(s.T(), 987654.0, *fields.EnergyCounterTotal)
	assert.True(s.T(), *fields.CloudEnabled)
	assert.Equal(s.T(), "secret-key", *fields.CloudAPIKey)
	assert.Equal(s.T(), int64(4), *fields.Mode)
	assert.Equal(s.T(), int64(2), *fields.CarConnected)
	assert.True(s.T(), *fields.AllowCharging)
	assert.Equal(s.T(), "1.2.3", *fields.Version)
	assert.Equal(s.T(), "40.7", *fields.Firmware)
	assert.Equal(s.T(), "home", *fields.WifiSSID)

	// ast maps onto the same view as acs
	s.sut.Apply("ast", int64(0))
	assert.Equal(s.T(), int64(0), *s.sut.Fields().AccessState)

	// a value of the wrong type clears the view
	s.sut.Apply("amp", "sixteen")
	assert.Nil(s.T(), s.sut.Fields().Amp)
}

func (s *StoreSuite) Test_Getters() {
	assert.Nil(s.T(), s.sut.Model())
	assert.Nil(s.T(), s.sut.CarState())
	assert.Nil(s.T(), s.sut.Variant())

	s.sut.Apply("var", int64(11))
	s.sut.Apply("typ", "Wattpilot")
	s.sut.Apply("car", int64(2))
	s.sut.Apply("tds", int64(1))
	s.sut.Apply("rssi", int64(-61))
	s.sut.Apply("fup", true)
	s.sut.Apply("fst", int64(1400))
	s.sut.Apply("fte", 15.5)
	s.sut.Apply("ftt", int64(25200))
	s.sut.Apply("loc", "2026-10-17T10:00:00.000+02:00")
	s.sut.Apply("ccw", map[string]any{"ssid": "home"})

	assert.Equal(s.T(), int64(11), s.sut.Variant())
	assert.Equal(s.T(), "Wattpilot", *s.sut.Model())
	assert.Equal(s.T(), int64(2), *s.sut.CarState())
	assert.Equal(s.T(), int64(1), *s.sut.DaylightSaving())
	assert.Equal(s.T(), int64(-61), *s.sut.WifiSignalStrength())
	assert.True(s.T(), *s.sut.PvSurplusEnabled())
	assert.Equal(s.T(), 1400.0, *s.sut.PvSurplusStartPower())
	assert.Equal(s.T(), 15.5, *s.sut.NextTripEnergy())
	assert.Equal(s.T(), int64(25200), *s.sut.NextTripTime())
	assert.Equal(s.T(), "2026-10-17T10:00:00.000+02:00", *s.sut.LocalTime())
	assert.Equal(s.T(), map[string]any{"ssid": "home"}, s.sut.WifiConnectionInfo())
}

func (s *StoreSuite) Test_Firmware() {
	assert.Equal(s.T(), []string{}, s.sut.AvailableFirmwareVersions())
	assert.False(s.T(), s.sut.FirmwareUpdateAvailable())

	// versions without a known installed version
	s.sut.Apply("onv", "41.0")
	assert.Equal(s.T(), []string{"41.0"}, s.sut.AvailableFirmwareVersions())
	assert.True(s.T(), s.sut.FirmwareUpdateAvailable())

	s.sut.Apply("fwv", "41.0")
	assert.False(s.T(), s.sut.FirmwareUpdateAvailable())

	s.sut.Apply("onv", []any{"41.0", "42.1"})
	assert.Equal(s.T(), []string{"41.0", "42.1"}, s.sut.AvailableFirmwareVersions())
	assert.True(s.T(), s.sut.FirmwareUpdateAvailable())

	s.sut.Apply("onv", "")
	assert.Equal(s.T(), []string{}, s.sut.AvailableFirmwareVersions())
}

func (s *StoreSuite) Test_ConcurrentAccess() {
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.sut.Apply("amp", int64(i))
		}(i)
		go func() {
			defer wg.Done()
			_ = s.sut.All()
			_ = s.sut.Fields()
		}()
	}
	wg.Wait()

	_, ok := s.sut.Get("amp")
	assert.True(s.T(), ok)
}

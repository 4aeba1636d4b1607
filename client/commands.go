package client

import (
	"fmt"
	"time"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/auth"
	"github.com/enbility/wattpilot-go/logging"
	"github.com/enbility/wattpilot-go/model"
)

// daylight saving codes of property "tds" which shift the trip time
const (
	daylightSavingEU = 1
	daylightSavingUS = 2
)

// coerce the value to the declared type of the property and send it
//
// returns once the message is queued, a failure reported by the
// device is only logged
func (w *Wattpilot) SetProperty(key string, value any) error {
	_, _, err := w.setProperty(key, value, false)
	return err
}

// like SetProperty, but waits for the response of the device
//
// returns a CommandError if the device rejected the value
func (w *Wattpilot) SetPropertyAndWait(key string, value any, timeout time.Duration) error {
	requestID, ch, err := w.setProperty(key, value, true)
	if err != nil {
		return err
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-ch:
		return err
	case <-timer.C:
		w.unregisterRequest(requestID)
		return api.NewConnectionError(fmt.Sprintf("Timeout waiting for response to request %d", requestID), nil)
	}
}

func (w *Wattpilot) setProperty(key string, value any, correlate bool) (int64, chan error, error) {
	coerced, err := w.coerceValue(key, value)
	if err != nil {
		return 0, nil, err
	}

	requestID := w.nextRequestID()
	var ch chan error
	if correlate {
		ch = w.registerRequest(requestID)
	}

	msg := &model.SetValueFrame{
		Type:      model.MsgTypeSetValue,
		RequestID: requestID,
		Key:       key,
		Value:     coerced,
	}

	if err := w.sendSetValue(msg); err != nil {
		w.unregisterRequest(requestID)
		return 0, nil, err
	}

	return requestID, ch, nil
}

// wraps the message into a signed envelope if the device requires it
func (w *Wattpilot) sendSetValue(msg *model.SetValueFrame) error {
	w.mux.Lock()
	secured := w.device.Secured > 0
	secret := w.secret
	w.mux.Unlock()

	if !secured {
		return w.sendModel(msg)
	}

	envelope, err := auth.SignSecuredMessage(msg, secret)
	if err != nil {
		return err
	}

	return w.sendModel(envelope)
}

// set the charging current in ampere
func (w *Wattpilot) SetPower(amperage int) error {
	return w.SetProperty("amp", amperage)
}

func (w *Wattpilot) SetMode(mode api.LoadMode) error {
	return w.SetProperty("lmo", int(mode))
}

// set the departure time for the next trip mode, only the time of day is used
func (w *Wattpilot) SetNextTrip(departure time.Time) error {
	seconds := departure.Hour()*3600 + departure.Minute()*60 + departure.Second()

	if tds := w.store.DaylightSaving(); tds != nil && (*tds == daylightSavingEU || *tds == daylightSavingUS) {
		seconds += 3600
	}

	return w.SetProperty("ftt", seconds)
}

// set the energy to charge until the next trip
func (w *Wattpilot) SetNextTripEnergy(energyKWh float64) error {
	if err := w.SetProperty("esk", true); err != nil {
		return err
	}

	return w.SetProperty("fte", energyKWh)
}

// enable the cloud API and wait for the device to provide the API key
func (w *Wattpilot) EnableCloudAPI(timeout time.Duration) (*api.CloudInfo, error) {
	if timeout <= 0 {
		timeout = defaultCloudAPITimeout
	}

	if err := w.SetProperty("cae", true); err != nil {
		return nil, err
	}

	for elapsed := time.Duration(0); elapsed < timeout; elapsed += w.cloudPollInterval {
		if key := w.store.Fields().CloudAPIKey; key != nil && *key != "" {
			return &api.CloudInfo{
				Enabled: true,
				APIKey:  *key,
				URL:     fmt.Sprintf("%s/%s", CloudAPIBaseURL, w.Serial()),
			}, nil
		}

		time.Sleep(w.cloudPollInterval)
	}

	w.Disconnect()

	return nil, api.NewConnectionError("Timeout waiting for cloud API key", nil)
}

func (w *Wattpilot) DisableCloudAPI() error {
	return w.SetProperty("cae", false)
}

// the cloud API URL, empty if the cloud API is disabled
func (w *Wattpilot) CloudAPIURL() string {
	serial := w.Serial()
	enabled := w.store.Fields().CloudEnabled

	if serial == "" || enabled == nil || !*enabled {
		return ""
	}

	return fmt.Sprintf("%s/%s", CloudAPIBaseURL, serial)
}

// trigger a firmware update and wait for the device to come back
//
// without a version the first available one is installed
func (w *Wattpilot) InstallFirmwareUpdate(version string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = defaultFirmwareTimeout
	}

	if version == "" {
		versions := w.store.AvailableFirmwareVersions()
		if len(versions) == 0 {
			return api.NewPropertyError("No firmware updates available", nil)
		}
		version = versions[0]
	}

	logging.Log().Infof("Installing firmware update %s", version)

	if err := w.SetProperty("oct", version); err != nil {
		return err
	}

	elapsed := time.Duration(0)
	for w.Connected() && elapsed < timeout {
		time.Sleep(w.firmwarePollInterval)
		elapsed += w.firmwarePollInterval
	}

	if w.Connected() {
		w.Disconnect()
		return api.NewConnectionError("Charger did not disconnect for firmware update", nil)
	}

	w.Disconnect()

	for elapsed < timeout {
		err := w.Connect()
		if err == nil {
			return nil
		}
		logging.Log().Debug("Reconnect after firmware update failed: ", err)

		time.Sleep(w.reconnectPollInterval)
		elapsed += w.reconnectPollInterval
	}

	return api.NewConnectionError("Timeout reconnecting after firmware update", nil)
}

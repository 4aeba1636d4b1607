package api

import (
	"time"

	"github.com/enbility/wattpilot-go/model"
)

//go:generate mockery
//go:generate mockgen -destination=../mocks/mockgen_api.go -package=mocks github.com/enbility/wattpilot-go/api MdnsProviderInterface

// invoked with every property update, in frame arrival order
type PropertyCallback func(key string, value any)

// invoked on its own goroutine, a returned error never reaches the read loop
type AsyncPropertyCallback func(key string, value any) error

// invoked with every decoded frame before it is dispatched
type MessageCallback func(frame *model.Frame)

// invoked when an established connection is lost
type DisconnectCallback func(err error)

// read access to the device state and the property setter
//
// implemented by client.Wattpilot, used by mqtt.Bridge and hass.Discovery
type DeviceStateInterface interface {
	Serial() string
	Name() string
	Manufacturer() string
	DeviceType() string
	Version() string
	Connected() bool

	// a copy of all known property values
	AllProperties() map[string]any

	OnPropertyChange(cb PropertyCallback) (unsubscribe func())
	OnMessage(cb MessageCallback) (unsubscribe func())

	SetProperty(key string, value any) error
}

// the public surface of the device client
//
// implemented by client.Wattpilot, used by shell.Shell and hub.Hub
type ClientInterface interface {
	DeviceStateInterface

	// open the connection, authenticate and wait for the initial property set
	Connect() error
	// close the connection, safe to call when not connected
	Disconnect()

	Hostname() string
	FriendlyName() string
	Protocol() int
	Secured() int
	PropertiesInitialized() bool

	SetPropertyAndWait(key string, value any, timeout time.Duration) error
	SetPower(amperage int) error
	SetMode(mode LoadMode) error
	SetNextTrip(departure time.Time) error
	SetNextTripEnergy(energyKWh float64) error
	EnableCloudAPI(timeout time.Duration) (*CloudInfo, error)
	DisableCloudAPI() error
	InstallFirmwareUpdate(version string, timeout time.Duration) error

	OnPropertyChangeAsync(cb AsyncPropertyCallback) (unsubscribe func())
	OnDisconnect(cb DisconnectCallback) (unsubscribe func())

	String() string
}

/* MQTT */

// invoked for every message received on a subscribed topic
type MqttMessageHandler func(topic string, payload []byte)

// a connected message bus client
//
// implemented by mqtt.Client, used by mqtt.Bridge and hass.Discovery
type MqttClientInterface interface {
	Connect() error
	Disconnect()
	IsConnected() bool
	Publish(topic string, payload []byte, retain bool) error
	Subscribe(topic string, handler MqttMessageHandler) error
	Unsubscribe(topic string) error
}

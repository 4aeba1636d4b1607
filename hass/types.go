package hass

import "time"

const (
	ComponentSensor       = "sensor"
	ComponentBinarySensor = "binary_sensor"
	ComponentSelect       = "select"
	ComponentSwitch       = "switch"
	ComponentNumber       = "number"

	PlaceholderComponent = "component"
	PlaceholderUniqueID  = "uniqueId"

	suggestedArea = "Garage"
)

// Home Assistant discovery settings
type Config struct {
	Enabled bool

	// supports {component}, {uniqueId}, {propName}, {serialNumber} and {baseTopic}
	TopicConfig string

	// discovered properties, the properties with Home Assistant settings if empty
	Properties []string

	// also discover the entities disabled by default
	DisabledEntities bool

	// waiting time after the discovery before the initial values are
	// published, WaitProps is added per discovered property
	WaitInit  time.Duration
	WaitProps time.Duration
}

func DefaultConfig() Config {
	return Config{
		TopicConfig: "homeassistant/{component}/{uniqueId}/config",
	}
}

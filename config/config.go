package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/enbility/wattpilot-go/hass"
	"github.com/enbility/wattpilot-go/logging"
	"github.com/enbility/wattpilot-go/mdns"
	"github.com/enbility/wattpilot-go/mqtt"
	"github.com/enbility/wattpilot-go/util"
	"github.com/spf13/viper"
)

// the connection to the wallbox and the shell behaviour
type WattpilotConfig struct {
	Host     string
	Password string
	Serial   string

	// connect through the cloud relay, requires the serial number
	Cloud bool

	ConnectTimeout time.Duration
	InitTimeout    time.Duration

	Autoconnect     bool
	SplitProperties bool
}

// browsing the local network for the wallbox
type DiscoveryConfig struct {
	Enabled  bool
	Provider mdns.MdnsProviderSelection
}

type Config struct {
	Wattpilot     WattpilotConfig
	Mqtt          mqtt.Config
	HomeAssistant hass.Config
	Discovery     DiscoveryConfig
	Log           logging.Config
}

// configuration key and the environment variable it is bound to
var envBindings = [][2]string{
	{"wattpilot.host", "WATTPILOT_HOST"},
	{"wattpilot.password", "WATTPILOT_PASSWORD"},
	{"wattpilot.serial", "WATTPILOT_SERIAL"},
	{"wattpilot.cloud", "WATTPILOT_CLOUD"},
	{"wattpilot.connect_timeout", "WATTPILOT_CONNECT_TIMEOUT"},
	{"wattpilot.init_timeout", "WATTPILOT_INIT_TIMEOUT"},
	{"wattpilot.autoconnect", "WATTPILOT_AUTOCONNECT"},
	{"wattpilot.split_properties", "WATTPILOT_SPLIT_PROPERTIES"},

	{"log.level", "WATTPILOT_DEBUG_LEVEL"},
	{"log.file", "WATTPILOT_LOG_FILE"},
	{"log.format", "WATTPILOT_LOG_FORMAT"},

	{"mqtt.enabled", "MQTT_ENABLED"},
	{"mqtt.host", "MQTT_HOST"},
	{"mqtt.port", "MQTT_PORT"},
	{"mqtt.username", "MQTT_USERNAME"},
	{"mqtt.password", "MQTT_PASSWORD"},
	{"mqtt.client_id", "MQTT_CLIENT_ID"},
	{"mqtt.topic_base", "MQTT_TOPIC_BASE"},
	{"mqtt.topic_messages", "MQTT_TOPIC_MESSAGES"},
	{"mqtt.topic_property_base", "MQTT_TOPIC_PROPERTY_BASE"},
	{"mqtt.topic_property_set", "MQTT_TOPIC_PROPERTY_SET"},
	{"mqtt.topic_property_state", "MQTT_TOPIC_PROPERTY_STATE"},
	{"mqtt.topic_available", "MQTT_TOPIC_AVAILABLE"},
	{"mqtt.publish_messages", "MQTT_PUBLISH_MESSAGES"},
	{"mqtt.publish_properties", "MQTT_PUBLISH_PROPERTIES"},
	{"mqtt.properties", "MQTT_PROPERTIES"},
	{"mqtt.messages", "MQTT_MESSAGES"},

	{"ha.enabled", "HA_ENABLED"},
	{"ha.topic_config", "HA_TOPIC_CONFIG"},
	{"ha.properties", "HA_PROPERTIES"},
	{"ha.disabled_entities", "HA_DISABLED_ENTITIES"},
	{"ha.wait_init_s", "HA_WAIT_INIT_S"},
	{"ha.wait_props_ms", "HA_WAIT_PROPS_MS"},

	{"discovery.enabled", "WATTPILOT_DISCOVERY"},
	{"discovery.provider", "WATTPILOT_MDNS_PROVIDER"},
}

func setDefaults(v *viper.Viper) {
	mqttDefaults := mqtt.DefaultConfig()
	haDefaults := hass.DefaultConfig()

	v.SetDefault("wattpilot.connect_timeout", 30)
	v.SetDefault("wattpilot.init_timeout", 30)
	v.SetDefault("wattpilot.autoconnect", true)
	v.SetDefault("wattpilot.split_properties", true)

	v.SetDefault("log.level", "INFO")
	v.SetDefault("log.format", "text")

	v.SetDefault("mqtt.enabled", false)
	v.SetDefault("mqtt.port", mqttDefaults.Port)
	v.SetDefault("mqtt.client_id", mqttDefaults.ClientID)
	v.SetDefault("mqtt.topic_base", mqttDefaults.TopicBase)
	v.SetDefault("mqtt.topic_messages", mqttDefaults.TopicMessages)
	v.SetDefault("mqtt.topic_property_base", mqttDefaults.TopicPropertyBase)
	v.SetDefault("mqtt.topic_property_set", mqttDefaults.TopicPropertySet)
	v.SetDefault("mqtt.topic_property_state", mqttDefaults.TopicPropertyState)
	v.SetDefault("mqtt.topic_available", mqttDefaults.TopicAvailable)
	v.SetDefault("mqtt.publish_messages", mqttDefaults.PublishMessages)
	v.SetDefault("mqtt.publish_properties", mqttDefaults.PublishProperties)

	v.SetDefault("ha.enabled", false)
	v.SetDefault("ha.topic_config", haDefaults.TopicConfig)
	v.SetDefault("ha.wait_init_s", 0)
	v.SetDefault("ha.wait_props_ms", 0)

	v.SetDefault("discovery.enabled", false)
	v.SetDefault("discovery.provider", "all")
}

// Load the configuration
//
// The defaults are overridden by the optional YAML file at path, which
// is overridden by the environment.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for _, binding := range envBindings {
		if err := v.BindEnv(binding[0], binding[1]); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", binding[1], err)
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	getBool := func(key string) bool {
		return parseBool(v.Get(key))
	}

	cfg := &Config{
		Wattpilot: WattpilotConfig{
			Host:            v.GetString("wattpilot.host"),
			Password:        v.GetString("wattpilot.password"),
			Serial:          util.NormalizeSerial(v.GetString("wattpilot.serial")),
			Cloud:           getBool("wattpilot.cloud"),
			ConnectTimeout:  time.Duration(v.GetInt("wattpilot.connect_timeout")) * time.Second,
			InitTimeout:     time.Duration(v.GetInt("wattpilot.init_timeout")) * time.Second,
			Autoconnect:     getBool("wattpilot.autoconnect"),
			SplitProperties: getBool("wattpilot.split_properties"),
		},
		Log: logging.Config{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			File:   v.GetString("log.file"),
		},
		Discovery: DiscoveryConfig{
			Enabled:  getBool("discovery.enabled"),
			Provider: mdns.ParseProviderSelection(v.GetString("discovery.provider")),
		},
	}

	cfg.Mqtt = mqtt.Config{
		Host:               v.GetString("mqtt.host"),
		Port:               v.GetInt("mqtt.port"),
		Username:           v.GetString("mqtt.username"),
		Password:           v.GetString("mqtt.password"),
		ClientID:           v.GetString("mqtt.client_id"),
		TopicBase:          v.GetString("mqtt.topic_base"),
		TopicMessages:      v.GetString("mqtt.topic_messages"),
		TopicPropertyBase:  v.GetString("mqtt.topic_property_base"),
		TopicPropertySet:   v.GetString("mqtt.topic_property_set"),
		TopicPropertyState: v.GetString("mqtt.topic_property_state"),
		TopicAvailable:     v.GetString("mqtt.topic_available"),
		PublishMessages:    getBool("mqtt.publish_messages"),
		PublishProperties:  getBool("mqtt.publish_properties"),
		Properties:         v.GetStringSlice("mqtt.properties"),
		Messages:           v.GetStringSlice("mqtt.messages"),
	}
	// the bridge is only active with an explicit opt-in
	if !getBool("mqtt.enabled") {
		cfg.Mqtt.Host = ""
	}

	cfg.HomeAssistant = hass.Config{
		Enabled:          getBool("ha.enabled"),
		TopicConfig:      v.GetString("ha.topic_config"),
		Properties:       v.GetStringSlice("ha.properties"),
		DisabledEntities: getBool("ha.disabled_entities"),
		WaitInit:         time.Duration(v.GetInt("ha.wait_init_s")) * time.Second,
		WaitProps:        time.Duration(v.GetInt("ha.wait_props_ms")) * time.Millisecond,
	}

	return cfg
}

// Check the configuration, all problems are reported at once
func (c *Config) Validate() error {
	var errs []error

	switch {
	case c.Wattpilot.Cloud:
		if c.Wattpilot.Serial == "" {
			errs = append(errs, errors.New("WATTPILOT_SERIAL is required in cloud mode"))
		}
	case c.Wattpilot.Host == "":
		if !c.Discovery.Enabled || c.Wattpilot.Serial == "" {
			errs = append(errs, errors.New("WATTPILOT_HOST not set"))
		}
	}

	if c.Wattpilot.Password == "" {
		errs = append(errs, errors.New("WATTPILOT_PASSWORD not set"))
	}

	if c.Wattpilot.ConnectTimeout <= 0 {
		errs = append(errs, errors.New("WATTPILOT_CONNECT_TIMEOUT must be greater than 0"))
	}
	if c.Wattpilot.InitTimeout <= 0 {
		errs = append(errs, errors.New("WATTPILOT_INIT_TIMEOUT must be greater than 0"))
	}

	if c.Mqtt.Host != "" && (c.Mqtt.Port < 1 || c.Mqtt.Port > 65535) {
		errs = append(errs, fmt.Errorf("MQTT_PORT %d is out of range", c.Mqtt.Port))
	}

	if c.HomeAssistant.WaitInit < 0 || c.HomeAssistant.WaitProps < 0 {
		errs = append(errs, errors.New("HA wait times must not be negative"))
	}

	return errors.Join(errs...)
}

// MQTT is configured and enabled
func (c *Config) MqttEnabled() bool {
	return c.Mqtt.Host != ""
}

// 1, true, yes and on are true, everything else is false
func parseBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			return true
		}
	}

	return false
}

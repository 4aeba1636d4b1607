package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/enbility/wattpilot-go/mdns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WATTPILOT_HOST", "192.168.1.10")
	t.Setenv("WATTPILOT_PASSWORD", "secret")

	cfg, err := Load("")
	require.Nil(t, err)

	assert.Equal(t, "192.168.1.10", cfg.Wattpilot.Host)
	assert.Equal(t, "secret", cfg.Wattpilot.Password)
	assert.Equal(t, 30*time.Second, cfg.Wattpilot.ConnectTimeout)
	assert.Equal(t, 30*time.Second, cfg.Wattpilot.InitTimeout)
	assert.True(t, cfg.Wattpilot.Autoconnect)
	assert.True(t, cfg.Wattpilot.SplitProperties)
	assert.False(t, cfg.Wattpilot.Cloud)

	assert.Equal(t, "INFO", cfg.Log.Level)

	assert.False(t, cfg.MqttEnabled())
	assert.Equal(t, 1883, cfg.Mqtt.Port)
	assert.Equal(t, "wattpilot2mqtt", cfg.Mqtt.ClientID)
	assert.Equal(t, "wattpilot", cfg.Mqtt.TopicBase)
	assert.Equal(t, "{baseTopic}/properties/{propName}", cfg.Mqtt.TopicPropertyBase)
	assert.True(t, cfg.Mqtt.PublishProperties)
	assert.False(t, cfg.Mqtt.PublishMessages)
	assert.Empty(t, cfg.Mqtt.Properties)

	assert.False(t, cfg.HomeAssistant.Enabled)
	assert.Equal(t, "homeassistant/{component}/{uniqueId}/config", cfg.HomeAssistant.TopicConfig)
	assert.Equal(t, time.Duration(0), cfg.HomeAssistant.WaitInit)

	assert.False(t, cfg.Discovery.Enabled)
	assert.Equal(t, mdns.MdnsProviderSelectionAll, cfg.Discovery.Provider)

	assert.Nil(t, cfg.Validate())
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("WATTPILOT_HOST", "wattpilot.local")
	t.Setenv("WATTPILOT_PASSWORD", "secret")
	t.Setenv("WATTPILOT_AUTOCONNECT", "no")
	t.Setenv("WATTPILOT_SPLIT_PROPERTIES", "off")
	t.Setenv("WATTPILOT_CONNECT_TIMEOUT", "5")
	t.Setenv("WATTPILOT_DEBUG_LEVEL", "DEBUG")
	t.Setenv("MQTT_ENABLED", "Yes")
	t.Setenv("MQTT_HOST", "broker.local")
	t.Setenv("MQTT_PORT", "8883")
	t.Setenv("MQTT_PUBLISH_MESSAGES", "1")
	t.Setenv("MQTT_PUBLISH_PROPERTIES", "false")
	t.Setenv("MQTT_PROPERTIES", "amp  car\tnrg")
	t.Setenv("HA_ENABLED", "on")
	t.Setenv("HA_PROPERTIES", "amp frc")
	t.Setenv("HA_WAIT_INIT_S", "5")
	t.Setenv("HA_WAIT_PROPS_MS", "200")
	t.Setenv("WATTPILOT_DISCOVERY", "true")
	t.Setenv("WATTPILOT_MDNS_PROVIDER", "zeroconf")
	t.Setenv("WATTPILOT_SERIAL", " 1234-5678 ")

	cfg, err := Load("")
	require.Nil(t, err)

	assert.Equal(t, "12345678", cfg.Wattpilot.Serial)

	assert.False(t, cfg.Wattpilot.Autoconnect)
	assert.False(t, cfg.Wattpilot.SplitProperties)
	assert.Equal(t, 5*time.Second, cfg.Wattpilot.ConnectTimeout)
	assert.Equal(t, "DEBUG", cfg.Log.Level)

	assert.True(t, cfg.MqttEnabled())
	assert.Equal(t, "broker.local", cfg.Mqtt.Host)
	assert.Equal(t, 8883, cfg.Mqtt.Port)
	assert.True(t, cfg.Mqtt.PublishMessages)
	assert.False(t, cfg.Mqtt.PublishProperties)
	assert.Equal(t, []string{"amp", "car", "nrg"}, cfg.Mqtt.Properties)

	assert.True(t, cfg.HomeAssistant.Enabled)
	assert.Equal(t, []string{"amp", "frc"}, cfg.HomeAssistant.Properties)
	assert.Equal(t, 5*time.Second, cfg.HomeAssistant.WaitInit)
	assert.Equal(t, 200*time.Millisecond, cfg.HomeAssistant.WaitProps)

	assert.True(t, cfg.Discovery.Enabled)
	assert.Equal(t, mdns.MdnsProviderSelectionGoZeroConfOnly, cfg.Discovery.Provider)
}

func TestLoadMqttDisabled(t *testing.T) {
	t.Setenv("MQTT_HOST", "broker.local")

	cfg, err := Load("")
	require.Nil(t, err)

	assert.Equal(t, "", cfg.Mqtt.Host)
	assert.False(t, cfg.MqttEnabled())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wattpilot.yaml")
	content := `
wattpilot:
  host: 10.0.0.5
  password: filesecret
  init_timeout: 10
mqtt:
  enabled: true
  host: mqtt.local
  properties:
    - amp
    - lmo
ha:
  enabled: yes
`
	require.Nil(t, os.WriteFile(path, []byte(content), 0o600))

	// the environment wins over the file
	t.Setenv("WATTPILOT_PASSWORD", "envsecret")

	cfg, err := Load(path)
	require.Nil(t, err)

	assert.Equal(t, "10.0.0.5", cfg.Wattpilot.Host)
	assert.Equal(t, "envsecret", cfg.Wattpilot.Password)
	assert.Equal(t, 10*time.Second, cfg.Wattpilot.InitTimeout)
	assert.Equal(t, "mqtt.local", cfg.Mqtt.Host)
	assert.Equal(t, []string{"amp", "lmo"}, cfg.Mqtt.Properties)
	assert.True(t, cfg.HomeAssistant.Enabled)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "WATTPILOT_HOST not set")
	assert.Contains(t, err.Error(), "WATTPILOT_PASSWORD not set")
	assert.Contains(t, err.Error(), "WATTPILOT_CONNECT_TIMEOUT")
	assert.Contains(t, err.Error(), "WATTPILOT_INIT_TIMEOUT")

	cfg.Wattpilot = WattpilotConfig{
		Password:       "secret",
		Cloud:          true,
		ConnectTimeout: time.Second,
		InitTimeout:    time.Second,
	}
	err = cfg.Validate()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "WATTPILOT_SERIAL")

	cfg.Wattpilot.Serial = "12345678"
	assert.Nil(t, cfg.Validate())

	// discovery resolves the host of the serial
	cfg.Wattpilot.Cloud = false
	assert.NotNil(t, cfg.Validate())
	cfg.Discovery.Enabled = true
	assert.Nil(t, cfg.Validate())

	cfg.Mqtt.Host = "broker"
	cfg.Mqtt.Port = 70000
	err = cfg.Validate()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "MQTT_PORT")
}

func TestParseBool(t *testing.T) {
	for _, value := range []any{"1", "true", "TRUE", " yes ", "On", true, 1} {
		assert.True(t, parseBool(value), value)
	}
	for _, value := range []any{nil, "", "0", "false", "no", "off", "maybe", false, 0} {
		assert.False(t, parseBool(value), value)
	}
}

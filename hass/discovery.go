package hass

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/logging"
	"github.com/enbility/wattpilot-go/mqtt"
	"github.com/enbility/wattpilot-go/schema"
	ordered "gitlab.com/c0b/go-ordered-json"
)

// Announces the device properties as Home Assistant entities
//
// The states are published by the bridge, the discovery payloads point
// the entities to the bridge topics.
type Discovery struct {
	device     api.DeviceStateInterface
	bridge     *mqtt.Bridge
	definition *schema.Definition
	config     Config

	properties []string

	mux sync.Mutex
}

func NewDiscovery(device api.DeviceStateInterface, bridge *mqtt.Bridge, config Config) *Discovery {
	return &Discovery{
		device:     device,
		bridge:     bridge,
		definition: bridge.Definition(),
		config:     config,
		properties: slices.Clone(config.Properties),
	}
}

// the discovered properties
func (d *Discovery) Properties() []string {
	d.mux.Lock()
	defer d.mux.Unlock()

	return slices.Clone(d.properties)
}

// Discover, wait for Home Assistant to set up the entities and publish
// the initial values
func (d *Discovery) Setup(ctx context.Context) error {
	if err := d.DiscoverAll(); err != nil {
		return err
	}

	if wait := d.setupWait(len(d.Properties())); wait > 0 {
		logging.Log().Infof("Waiting %v for HA to discover entities...", wait)

		timer := time.NewTimer(wait)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	return d.PublishInitialValues()
}

// rounded up to full seconds
func (d *Discovery) setupWait(properties int) time.Duration {
	total := d.config.WaitInit + time.Duration(properties)*d.config.WaitProps
	return time.Duration(math.Ceil(total.Seconds())) * time.Second
}

// Discover all configured properties, the bridge publishes exactly these
func (d *Discovery) DiscoverAll() error {
	d.mux.Lock()
	d.properties = d.resolveProperties()
	properties := slices.Clone(d.properties)
	d.mux.Unlock()

	d.bridge.SetProperties(properties)

	var errs []error
	for _, name := range properties {
		if err := d.DiscoverProperty(name, false, nil); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (d *Discovery) resolveProperties() []string {
	if len(d.properties) > 0 {
		return d.properties
	}

	var result []string
	for _, key := range d.definition.PropertyKeys {
		if d.isDefaultProperty(d.definition.Properties[key]) {
			result = append(result, key)
		}
	}
	return result
}

func (d *Discovery) isDefaultProperty(pd *schema.PropertyDefinition) bool {
	if pd.HomeAssistant == nil {
		return false
	}
	if d.config.DisabledEntities {
		return true
	}

	value, ok := pd.HomeAssistant.ConfigValue("enabled_by_default")
	if !ok {
		return true
	}
	enabled, isBool := value.(bool)
	return !isBool || enabled
}

// Publish the discovery payload of a property and its child properties
//
// With disable an empty payload removes the entities. forceEnablement
// overrides enabled_by_default when not nil.
func (d *Discovery) DiscoverProperty(name string, disable bool, forceEnablement *bool) error {
	client := d.bridge.Client()
	if !client.IsConnected() {
		return nil
	}

	pd, ok := d.definition.Property(name)
	if !ok {
		logging.Log().Warnf("Unknown property '%s' for HA discovery", name)
		return nil
	}

	component := ComponentForProperty(pd)
	serial := d.device.Serial()
	uniqueID := "wattpilot_" + serial + "_" + name

	mqttConfig := d.bridge.Config()
	values := map[string]string{
		PlaceholderComponent:         component,
		mqtt.PlaceholderPropName:     name,
		mqtt.PlaceholderSerialNumber: serial,
		PlaceholderUniqueID:          uniqueID,
	}
	// "~" stays in the entity topics, Home Assistant expands it with the base
	baseTopic := mqtt.SubstituteTopic(mqttConfig.TopicPropertyBase, "", mqttConfig.TopicBase, values, false)

	payload := EntityDefaults(pd)
	payload.Set("~", baseTopic)
	payload.Set("name", pd.DisplayName())
	payload.Set("object_id", "wattpilot_"+name)
	payload.Set("unique_id", uniqueID)
	payload.Set("state_topic", mqtt.SubstituteTopic(mqttConfig.TopicPropertyState, mqttConfig.TopicPropertyBase, mqttConfig.TopicBase, values, false))
	payload.Set("availability_topic", mqttConfig.Topic(mqttConfig.TopicAvailable, nil))
	payload.Set("payload_available", mqtt.PayloadOnline)
	payload.Set("payload_not_available", mqtt.PayloadOffline)
	payload.Set("device", DeviceInfo(d.device))

	if pd.ValueMap != nil {
		payload.Set("options", pd.ValueMap.Values())
	}
	if pd.Rw == schema.AccessReadWrite {
		payload.Set("command_topic", mqtt.SubstituteTopic(mqttConfig.TopicPropertySet, mqttConfig.TopicPropertyBase, mqttConfig.TopicBase, values, false))
	}

	if pd.HomeAssistant != nil {
		for _, entry := range pd.HomeAssistant.Config {
			payload.Set(entry.Key, entry.Value)
		}
	}
	if forceEnablement != nil {
		payload.Set("enabled_by_default", *forceEnablement)
	}

	var errs []error

	configTopic := d.configTopic(values)
	if err := d.publish(client, configTopic, payload, disable); err != nil {
		errs = append(errs, err)
	}

	// a read-only mirror of writable entities
	if pd.Rw == schema.AccessReadWrite && component != ComponentSensor {
		sensorValues := map[string]string{PlaceholderComponent: ComponentSensor}
		for key, value := range values {
			if key != PlaceholderComponent {
				sensorValues[key] = value
			}
		}

		sensor := ordered.NewOrderedMap()
		iter := payload.EntriesIter()
		for {
			pair, ok := iter()
			if !ok {
				break
			}
			if pair.Key != "command_topic" {
				sensor.Set(pair.Key, pair.Value)
			}
		}

		if err := d.publish(client, d.configTopic(sensorValues), sensor, disable); err != nil {
			errs = append(errs, err)
		}
	}

	for _, cpd := range pd.ChildProps {
		if err := d.DiscoverProperty(cpd.Key, disable, forceEnablement); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Remove the entities of a property
func (d *Discovery) UndiscoverProperty(name string) error {
	return d.DiscoverProperty(name, true, nil)
}

// Publish the current values of the discovered properties
func (d *Discovery) PublishInitialValues() error {
	values := d.definition.AllProperties(d.device.AllProperties(), true)

	var errs []error
	for _, name := range d.Properties() {
		value, ok := values[name]
		if !ok {
			continue
		}
		pd, ok := d.definition.Property(name)
		if !ok {
			continue
		}
		if err := d.bridge.PublishProperty(pd, value, false); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Remove the entities of all discovered properties
func (d *Discovery) Stop() error {
	var errs []error
	for _, name := range d.Properties() {
		if err := d.UndiscoverProperty(name); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (d *Discovery) configTopic(values map[string]string) string {
	return mqtt.SubstituteTopic(d.config.TopicConfig, "", d.bridge.Config().TopicBase, values, true)
}

func (d *Discovery) publish(client api.MqttClientInterface, topic string, payload *ordered.OrderedMap, disable bool) error {
	var data []byte
	if !disable {
		var err error
		if data, err = json.Marshal(payload); err != nil {
			return err
		}
	}

	return client.Publish(topic, data, true)
}

/* payload building blocks */

// The Home Assistant component of a property
func ComponentForProperty(pd *schema.PropertyDefinition) string {
	if pd.HomeAssistant != nil && pd.HomeAssistant.Component != "" {
		return pd.HomeAssistant.Component
	}

	switch pd.Rw {
	case schema.AccessReadWrite:
		switch {
		case pd.ValueMap != nil:
			return ComponentSelect
		case pd.JsonType == schema.JsonTypeBoolean:
			return ComponentSwitch
		case pd.JsonType == schema.JsonTypeFloat, pd.JsonType == schema.JsonTypeInteger:
			return ComponentNumber
		}
	case schema.AccessRead:
		if pd.JsonType == schema.JsonTypeBoolean {
			return ComponentBinarySensor
		}
	}

	return ComponentSensor
}

// The entity settings every discovery payload of the property starts with
func EntityDefaults(pd *schema.PropertyDefinition) *ordered.OrderedMap {
	result := ordered.NewOrderedMap()

	if pd.Rw == schema.AccessReadWrite {
		if pd.JsonType == schema.JsonTypeFloat || pd.JsonType == schema.JsonTypeInteger {
			result.Set("mode", "box")
		}
		if pd.Category == "Config" {
			result.Set("entity_category", "config")
		}
	}

	if pd.HomeAssistant == nil {
		result.Set("enabled_by_default", false)
	}

	return result
}

// The device block shared by all entities of the wallbox
func DeviceInfo(device api.DeviceStateInterface) *ordered.OrderedMap {
	connections := [][]any{}

	values := device.AllProperties()
	for _, key := range []string{"maca", "macs"} {
		if mac, ok := values[key]; ok {
			connections = append(connections, []any{"mac", mac})
		}
	}

	result := ordered.NewOrderedMap()
	result.Set("connections", connections)
	result.Set("identifiers", []string{"wattpilot_" + device.Serial()})
	result.Set("manufacturer", device.Manufacturer())
	result.Set("model", device.DeviceType())
	result.Set("name", device.Name())
	result.Set("suggested_area", suggestedArea)
	result.Set("sw_version", device.Version())

	return result
}

package mqtt

import (
	"errors"
	"regexp"
	"slices"
	"sync"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/logging"
	"github.com/enbility/wattpilot-go/model"
	"github.com/enbility/wattpilot-go/schema"
	"github.com/enbility/wattpilot-go/util"
)

const publishQueueSize = 256

// a pending state or message publication
type publication struct {
	pd    *schema.PropertyDefinition
	value any
	frame *model.Frame
}

// Publishes the device properties to a broker and relays set commands
// received on the property set topics back to the device
type Bridge struct {
	device     api.DeviceStateInterface
	client     api.MqttClientInterface
	definition *schema.Definition
	config     Config

	setPattern *regexp.Regexp

	properties []string

	running      bool
	unsubscribes []func()

	// publications of listener callbacks, the device read loop never
	// waits for the broker
	queue chan publication
	done  chan struct{}
	wg    sync.WaitGroup

	mux sync.Mutex
}

func NewBridge(device api.DeviceStateInterface, client api.MqttClientInterface, definition *schema.Definition, config Config) *Bridge {
	return &Bridge{
		device:     device,
		client:     client,
		definition: definition,
		config:     config,
		setPattern: config.SetTopicPattern(),
		properties: slices.Clone(config.Properties),
	}
}

func (b *Bridge) Config() Config {
	return b.config
}

func (b *Bridge) Client() api.MqttClientInterface {
	return b.client
}

func (b *Bridge) Definition() *schema.Definition {
	return b.definition
}

// the topic for the template using the configured bases
func (b *Bridge) Topic(template string, values map[string]string) string {
	return b.config.Topic(template, values)
}

func (b *Bridge) IsRunning() bool {
	b.mux.Lock()
	defer b.mux.Unlock()

	return b.running
}

// the published properties, empty means all
func (b *Bridge) Properties() []string {
	b.mux.Lock()
	defer b.mux.Unlock()

	return slices.Clone(b.properties)
}

func (b *Bridge) SetProperties(properties []string) {
	b.mux.Lock()
	defer b.mux.Unlock()

	b.properties = slices.Clone(properties)
}

// Connect to the broker if needed, announce the availability and start
// relaying
func (b *Bridge) Start() error {
	b.mux.Lock()
	defer b.mux.Unlock()

	if b.running {
		return nil
	}

	if !b.client.IsConnected() {
		if err := b.client.Connect(); err != nil {
			return err
		}
	}

	if err := b.client.Publish(b.availableTopic(), []byte(PayloadOnline), true); err != nil {
		return err
	}

	setTopic := b.config.Topic(b.config.TopicPropertySet, map[string]string{PlaceholderPropName: "+"})
	if err := b.client.Subscribe(setTopic, b.handleSet); err != nil {
		return err
	}

	if len(b.properties) == 0 {
		for key := range b.device.AllProperties() {
			b.properties = append(b.properties, key)
		}
		slices.Sort(b.properties)
	}

	b.queue = make(chan publication, publishQueueSize)
	b.done = make(chan struct{})
	b.wg.Add(1)
	go b.publishLoop(b.queue, b.done)

	if b.config.PublishProperties {
		b.unsubscribes = append(b.unsubscribes, b.device.OnPropertyChange(b.onPropertyChange))
	}
	if b.config.PublishMessages {
		b.unsubscribes = append(b.unsubscribes, b.device.OnMessage(b.onMessage))
	}

	b.running = true

	logging.Log().Infof("MQTT bridge started, publishing to %s", b.config.TopicBase)

	return nil
}

// Stop relaying, announce the unavailability and disconnect
func (b *Bridge) Stop() {
	b.mux.Lock()
	if !b.running {
		b.mux.Unlock()
		return
	}
	b.running = false
	unsubscribes := b.unsubscribes
	b.unsubscribes = nil
	close(b.done)
	b.mux.Unlock()

	for _, unsubscribe := range unsubscribes {
		unsubscribe()
	}
	b.wg.Wait()

	setTopic := b.config.Topic(b.config.TopicPropertySet, map[string]string{PlaceholderPropName: "+"})
	if err := b.client.Unsubscribe(setTopic); err != nil {
		logging.Log().Debug("Failed to unsubscribe from the set topic: ", err)
	}
	if err := b.client.Publish(b.availableTopic(), []byte(PayloadOffline), true); err != nil {
		logging.Log().Debug("Failed to publish the availability: ", err)
	}
	b.client.Disconnect()

	logging.Log().Info("MQTT bridge stopped")
}

// Publish the state of a property and of its child properties
//
// Without force a property is skipped unless it is in the published properties
func (b *Bridge) PublishProperty(pd *schema.PropertyDefinition, value any, force bool) error {
	if !force && !b.isPublished(pd.Key) {
		return nil
	}

	topic := b.config.Topic(b.config.TopicPropertyState, map[string]string{
		PlaceholderPropName:     pd.Key,
		PlaceholderSerialNumber: b.device.Serial(),
	})

	var errs []error
	if err := b.client.Publish(topic, []byte(EncodeProperty(pd, value)), true); err != nil {
		errs = append(errs, err)
	}

	if pd.HasChildren() {
		values := b.device.AllProperties()
		for _, cpd := range pd.ChildProps {
			if err := b.PublishProperty(cpd, b.definition.ResolveChild(cpd, values), true); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

// Republish a raw device message on its message type topic
func (b *Bridge) PublishMessage(frame *model.Frame) error {
	topic := b.config.Topic(b.config.TopicMessages, map[string]string{
		PlaceholderMessageType:  string(frame.Type),
		PlaceholderSerialNumber: b.device.Serial(),
	})

	return b.client.Publish(topic, frame.Raw, false)
}

func (b *Bridge) isPublished(key string) bool {
	b.mux.Lock()
	defer b.mux.Unlock()

	return len(b.properties) == 0 || slices.Contains(b.properties, key)
}

func (b *Bridge) availableTopic() string {
	return b.config.Topic(b.config.TopicAvailable, nil)
}

func (b *Bridge) onPropertyChange(key string, value any) {
	pd, ok := b.definition.Property(key)
	if !ok {
		return
	}

	b.enqueue(publication{pd: pd, value: value})
}

func (b *Bridge) onMessage(frame *model.Frame) {
	if len(b.config.Messages) > 0 && !slices.Contains(b.config.Messages, string(frame.Type)) {
		return
	}

	b.enqueue(publication{frame: frame})
}

func (b *Bridge) enqueue(item publication) {
	b.mux.Lock()
	queue, done := b.queue, b.done
	b.mux.Unlock()

	if queue == nil {
		return
	}

	select {
	case queue <- item:
	case <-done:
	}
}

func (b *Bridge) publishLoop(queue <-chan publication, done <-chan struct{}) {
	defer b.wg.Done()

	for {
		select {
		case <-done:
			return
		case item := <-queue:
			var err error
			if item.frame != nil {
				err = b.PublishMessage(item.frame)
			} else {
				err = b.PublishProperty(item.pd, item.value, false)
			}
			if err != nil {
				logging.Log().Error("MQTT publishing failed: ", err)
			}
		}
	}
}

// a message on the property set topic
func (b *Bridge) handleSet(topic string, payload []byte) {
	match := b.setPattern.FindStringSubmatch(topic)
	if match == nil {
		return
	}

	name := match[1]
	pd, ok := b.definition.Property(name)
	if !ok {
		logging.Log().Warnf("Unknown property '%s' in MQTT set command", name)
		return
	}
	if !pd.Writable() {
		logging.Log().Warnf("Property '%s' is not writable", name)
		return
	}

	value, err := DecodeProperty(pd, string(payload))
	if err != nil {
		logging.Log().Warnf("Unable to decode value '%s' of property '%s': %v", string(payload), name, err)
		return
	}

	logging.Log().Infof("MQTT set command: %s = %s", name, util.FormatValue(value))

	if err := b.device.SetProperty(name, value); err != nil {
		logging.Log().Errorf("Failed to set property '%s': %v", name, err)
	}
}

package mqtt

import (
	"fmt"
	"strings"
	"sync"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/logging"
	"github.com/google/uuid"
)

// A paho based broker client
//
// The availability topic of the configuration is used as last will
// with a retained "offline". Subscriptions are restored after a reconnect.
type Client struct {
	client  paho.Client
	options *paho.ClientOptions

	subscriptions map[string]api.MqttMessageHandler
	subMux        sync.RWMutex

	connected bool
	connMux   sync.RWMutex
}

var _ api.MqttClientInterface = (*Client)(nil)

func NewClient(config Config) *Client {
	c := &Client{
		subscriptions: make(map[string]api.MqttMessageHandler),
	}

	c.options = buildClientOptions(config)
	c.options.SetOnConnectHandler(func(_ paho.Client) {
		c.handleConnect()
	})
	c.options.SetConnectionLostHandler(func(_ paho.Client, err error) {
		c.handleConnectionLost(err)
	})

	c.client = paho.NewClient(c.options)

	return c
}

func buildClientOptions(config Config) *paho.ClientOptions {
	opts := paho.NewClientOptions()

	port := config.Port
	if port == 0 {
		port = DefaultPort
	}
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", config.Host, port))

	clientID := config.ClientID
	if clientID == "" {
		clientID = DefaultClientID + "-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	}
	opts.SetClientID(clientID)

	if config.Username != "" {
		opts.SetUsername(config.Username)
		opts.SetPassword(config.Password)
	}

	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(defaultConnectTimeout)
	opts.SetKeepAlive(defaultKeepAlive)

	if topic := config.Topic(config.TopicAvailable, nil); topic != "" {
		opts.SetWill(topic, PayloadOffline, 0, true)
	}

	return opts
}

// Connect to the broker, waits for the initial connection
func (c *Client) Connect() error {
	if c.IsConnected() {
		return nil
	}

	token := c.client.Connect()
	if !token.WaitTimeout(defaultConnectTimeout) {
		// stop the background connect retries
		c.client.Disconnect(0)
		return fmt.Errorf("%w: timeout after %v", ErrConnectionFailed, defaultConnectTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	// the connect handler runs asynchronously
	c.setConnected(true)

	logging.Log().Infof("Connected to MQTT broker %v", c.options.Servers)

	return nil
}

func (c *Client) Disconnect() {
	if !c.client.IsConnectionOpen() && !c.IsConnected() {
		return
	}

	c.setConnected(false)
	c.client.Disconnect(defaultQuiesce)

	logging.Log().Info("Disconnected from MQTT broker")
}

func (c *Client) IsConnected() bool {
	c.connMux.RLock()
	defer c.connMux.RUnlock()

	return c.connected
}

func (c *Client) Publish(topic string, payload []byte, retain bool) error {
	if topic == "" {
		return ErrInvalidTopic
	}
	if !c.IsConnected() {
		return ErrNotConnected
	}

	token := c.client.Publish(topic, 0, retain, payload)
	if !token.WaitTimeout(defaultOperationTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrPublishFailed, defaultOperationTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}

	return nil
}

func (c *Client) Subscribe(topic string, handler api.MqttMessageHandler) error {
	if topic == "" {
		return ErrInvalidTopic
	}
	if handler == nil {
		return fmt.Errorf("%w: handler cannot be nil", ErrSubscribeFailed)
	}
	if !c.IsConnected() {
		return ErrNotConnected
	}

	c.subMux.Lock()
	c.subscriptions[topic] = handler
	c.subMux.Unlock()

	token := c.client.Subscribe(topic, 0, c.wrapHandler(handler))
	if !token.WaitTimeout(defaultOperationTimeout) {
		c.removeSubscription(topic)
		return fmt.Errorf("%w: timeout after %v", ErrSubscribeFailed, defaultOperationTimeout)
	}
	if err := token.Error(); err != nil {
		c.removeSubscription(topic)
		return fmt.Errorf("%w: %w", ErrSubscribeFailed, err)
	}

	return nil
}

func (c *Client) Unsubscribe(topic string) error {
	if topic == "" {
		return ErrInvalidTopic
	}
	if !c.IsConnected() {
		return ErrNotConnected
	}

	c.removeSubscription(topic)

	token := c.client.Unsubscribe(topic)
	if !token.WaitTimeout(defaultOperationTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrUnsubscribeFailed, defaultOperationTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsubscribeFailed, err)
	}

	return nil
}

func (c *Client) removeSubscription(topic string) {
	c.subMux.Lock()
	delete(c.subscriptions, topic)
	c.subMux.Unlock()
}

func (c *Client) setConnected(connected bool) {
	c.connMux.Lock()
	c.connected = connected
	c.connMux.Unlock()
}

func (c *Client) handleConnect() {
	c.setConnected(true)

	c.subMux.RLock()
	defer c.subMux.RUnlock()

	for topic, handler := range c.subscriptions {
		c.client.Subscribe(topic, 0, c.wrapHandler(handler))
	}
}

func (c *Client) handleConnectionLost(err error) {
	c.setConnected(false)

	logging.Log().Info("Connection to MQTT broker lost: ", err)
}

// handlers run on paho goroutines, a panic must not take the client down
func (c *Client) wrapHandler(handler api.MqttMessageHandler) paho.MessageHandler {
	return func(_ paho.Client, msg paho.Message) {
		defer func() {
			if r := recover(); r != nil {
				logging.Log().Errorf("MQTT handler for topic %s panicked: %v", msg.Topic(), r)
			}
		}()

		handler(msg.Topic(), msg.Payload())
	}
}

package mqtt

import (
	"errors"
	"time"
)

const (
	DefaultPort     = 1883
	DefaultClientID = "wattpilot2mqtt"

	PayloadOnline  = "online"
	PayloadOffline = "offline"

	// placeholders available in the topic templates
	PlaceholderBaseTopic    = "baseTopic"
	PlaceholderPropName     = "propName"
	PlaceholderSerialNumber = "serialNumber"
	PlaceholderMessageType  = "messageType"

	defaultConnectTimeout   = 10 * time.Second
	defaultOperationTimeout = 5 * time.Second
	defaultKeepAlive        = 60 * time.Second
	defaultQuiesce          = 1000 // milliseconds
)

var (
	ErrNotConnected      = errors.New("mqtt: client not connected")
	ErrConnectionFailed  = errors.New("mqtt: connection failed")
	ErrPublishFailed     = errors.New("mqtt: publish failed")
	ErrSubscribeFailed   = errors.New("mqtt: subscribe failed")
	ErrUnsubscribeFailed = errors.New("mqtt: unsubscribe failed")
	ErrInvalidTopic      = errors.New("mqtt: topic cannot be empty")
)

// Broker connection and topic layout of the bridge
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	ClientID string

	TopicBase string
	// supports {baseTopic} and {messageType}
	TopicMessages string
	// supports {baseTopic} and {propName}, "~" in the set and state
	// templates expands to it
	TopicPropertyBase  string
	TopicPropertySet   string
	TopicPropertyState string
	TopicAvailable     string

	PublishMessages   bool
	PublishProperties bool

	// published properties, all known properties if empty
	Properties []string
	// published message types, all message types if empty
	Messages []string
}

func DefaultConfig() Config {
	return Config{
		Port:               DefaultPort,
		ClientID:           DefaultClientID,
		TopicBase:          "wattpilot",
		TopicMessages:      "{baseTopic}/messages/{messageType}",
		TopicPropertyBase:  "{baseTopic}/properties/{propName}",
		TopicPropertySet:   "~/set",
		TopicPropertyState: "~/state",
		TopicAvailable:     "{baseTopic}/available",
		PublishMessages:    false,
		PublishProperties:  true,
	}
}

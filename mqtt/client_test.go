package mqtt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildClientOptions(t *testing.T) {
	config := DefaultConfig()
	config.Host = "broker.local"
	config.Username = "user"
	config.Password = "secret"

	opts := buildClientOptions(config)

	require.Len(t, opts.Servers, 1)
	assert.Equal(t, "tcp://broker.local:1883", opts.Servers[0].String())
	assert.Equal(t, "wattpilot2mqtt", opts.ClientID)
	assert.Equal(t, "user", opts.Username)
	assert.True(t, opts.AutoReconnect)
	assert.True(t, opts.CleanSession)

	assert.True(t, opts.WillEnabled)
	assert.Equal(t, "wattpilot/available", opts.WillTopic)
	assert.Equal(t, []byte("offline"), opts.WillPayload)
	assert.True(t, opts.WillRetained)
}

func TestBuildClientOptionsGeneratedID(t *testing.T) {
	config := DefaultConfig()
	config.Host = "broker.local"
	config.Port = 0
	config.ClientID = ""

	opts := buildClientOptions(config)

	assert.Equal(t, "tcp://broker.local:1883", opts.Servers[0].String())
	assert.True(t, strings.HasPrefix(opts.ClientID, "wattpilot2mqtt-"))
	assert.Len(t, opts.ClientID, len("wattpilot2mqtt-")+8)
	assert.Empty(t, opts.Username)
}

func TestClientNotConnected(t *testing.T) {
	config := DefaultConfig()
	config.Host = "127.0.0.1"
	sut := NewClient(config)

	assert.False(t, sut.IsConnected())

	assert.ErrorIs(t, sut.Publish("", nil, false), ErrInvalidTopic)
	assert.ErrorIs(t, sut.Publish("a/b", []byte("x"), false), ErrNotConnected)
	assert.ErrorIs(t, sut.Subscribe("a/b", func(string, []byte) {}), ErrNotConnected)
	assert.ErrorIs(t, sut.Subscribe("a/b", nil), ErrSubscribeFailed)
	assert.ErrorIs(t, sut.Unsubscribe(""), ErrInvalidTopic)
	assert.ErrorIs(t, sut.Unsubscribe("a/b"), ErrNotConnected)

	// safe without a connection
	sut.Disconnect()
}

func TestWrappedHandlerRecovers(t *testing.T) {
	sut := NewClient(DefaultConfig())

	var received string
	handler := sut.wrapHandler(func(topic string, payload []byte) {
		received = topic + "=" + string(payload)
		panic("boom")
	})

	assert.NotPanics(t, func() {
		handler(nil, &testMessage{topic: "a/b", payload: []byte("1")})
	})
	assert.Equal(t, "a/b=1", received)
}

// a paho.Message
type testMessage struct {
	topic   string
	payload []byte
}

func (m *testMessage) Duplicate() bool   { return false }
func (m *testMessage) Qos() byte         { return 0 }
func (m *testMessage) Retained() bool    { return false }
func (m *testMessage) Topic() string     { return m.topic }
func (m *testMessage) MessageID() uint16 { return 0 }
func (m *testMessage) Payload() []byte   { return m.payload }
func (m *testMessage) Ack()              {}

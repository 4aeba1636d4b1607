package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	ordered "gitlab.com/c0b/go-ordered-json"
)

type MessageType string

const (
	MsgTypeHello          MessageType = "hello"
	MsgTypeAuthRequired   MessageType = "authRequired"
	MsgTypeAuth           MessageType = "auth"
	MsgTypeAuthSuccess    MessageType = "authSuccess"
	MsgTypeAuthError      MessageType = "authError"
	MsgTypeFullStatus     MessageType = "fullStatus"
	MsgTypeDeltaStatus    MessageType = "deltaStatus"
	MsgTypeSetValue       MessageType = "setValue"
	MsgTypeSecuredMsg     MessageType = "securedMsg"
	MsgTypeResponse       MessageType = "response"
	MsgTypeClearInverters MessageType = "clearInverters"
	MsgTypeUpdateInverter MessageType = "updateInverter"
)

// suffix appended to the request id of a signed envelope
const SecuredRequestIDSuffix = "sm"

type ConnectionState uint

// set the values manually instead of using iota, so log data can be associated easier
const (
	StateDisconnected     ConnectionState = 0
	StateConnecting       ConnectionState = 1 // transport open, waiting for hello and authRequired
	StateAuthenticating   ConnectionState = 2 // auth frame sent
	StateAwaitingSnapshot ConnectionState = 3 // authSuccess received, waiting for the initial property set
	StateReady            ConnectionState = 4
)

func (s ConnectionState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateAuthenticating:
		return "authenticating"
	case StateAwaitingSnapshot:
		return "awaiting snapshot"
	case StateReady:
		return "ready"
	}
	return "unknown(" + strconv.Itoa(int(s)) + ")"
}

// A numeric flag that some firmware versions send as a boolean
type Flag int

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true":
		*f = 1
		return nil
	case "false", "null":
		*f = 0
		return nil
	}

	value, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = Flag(value)
	return nil
}

// A decoded inbound frame
//
// Only the fields belonging to the frame type are populated, the status
// payload is kept raw and decoded in key order by StatusProperties
type Frame struct {
	Type MessageType `json:"type"`

	// hello
	Serial       string `json:"serial,omitempty"`
	Hostname     string `json:"hostname,omitempty"`
	FriendlyName string `json:"friendly_name,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	DeviceType   string `json:"devicetype,omitempty"`
	Version      string `json:"version,omitempty"`
	Protocol     Flag   `json:"protocol,omitempty"`
	Secured      Flag   `json:"secured,omitempty"`

	// authRequired
	Token1 string `json:"token1,omitempty"`
	Token2 string `json:"token2,omitempty"`
	Hash   string `json:"hash,omitempty"`

	// authError and failed responses
	Message string `json:"message,omitempty"`

	// fullStatus, deltaStatus and successful responses
	Status  json.RawMessage `json:"status,omitempty"`
	Partial *bool           `json:"partial,omitempty"`

	// response
	RequestID any  `json:"requestId,omitempty"`
	Success   bool `json:"success,omitempty"`

	// the frame as received
	Raw []byte `json:"-"`
}

// decode a single frame
func ParseFrame(data []byte) (*Frame, error) {
	frame := &Frame{}
	if err := json.Unmarshal(data, frame); err != nil {
		return nil, err
	}
	frame.Raw = data

	return frame, nil
}

// A key value pair of a status payload
type Property struct {
	Key   string
	Value any
}

// Returns the status payload in the order the device sent it
// Nested objects are returned as map[string]any, integral numbers as int64
// and all other numbers as float64
func (f *Frame) StatusProperties() ([]Property, error) {
	if len(f.Status) == 0 || bytes.Equal(f.Status, []byte("null")) {
		return nil, nil
	}

	om := ordered.NewOrderedMap()
	if err := json.Unmarshal(f.Status, om); err != nil {
		return nil, err
	}

	var result []Property
	iter := om.EntriesIter()
	for {
		pair, ok := iter()
		if !ok {
			break
		}
		result = append(result, Property{Key: pair.Key, Value: NormalizeValue(pair.Value)})
	}

	return result, nil
}

// Returns the numeric request id echoed by a response frame
func (f *Frame) RequestIDInt() (int64, error) {
	switch v := f.RequestID.(type) {
	case float64:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	case nil:
		return 0, errors.New("frame has no request id")
	}
	return 0, errors.New("unsupported request id type")
}

/* outbound frames */

type AuthFrame struct {
	Type   MessageType `json:"type"`
	Token3 string      `json:"token3"`
	Hash   string      `json:"hash"`
}

type SetValueFrame struct {
	Type      MessageType `json:"type"`
	RequestID int64       `json:"requestId"`
	Key       string      `json:"key"`
	Value     any         `json:"value"`
}

type SecuredFrame struct {
	Type      MessageType `json:"type"`
	Data      string      `json:"data"`
	RequestID string      `json:"requestId"`
	HMAC      string      `json:"hmac"`
}

package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/auth"
	"github.com/gorilla/websocket"
)

const (
	testSerial   = "12345678"
	testPassword = "testpassword"
)

var (
	testSecrets   = map[api.AuthHashType]string{}
	testSecretMux sync.Mutex
)

// the secret of testPassword, derived once per hash type
func testSecret(t *testing.T, hashType api.AuthHashType) string {
	testSecretMux.Lock()
	defer testSecretMux.Unlock()

	if secret, ok := testSecrets[hashType]; ok {
		return secret
	}

	secret, err := auth.HashPassword(testPassword, testSerial, hashType)
	if err != nil {
		t.Fatal(err)
	}
	testSecrets[hashType] = secret

	return secret
}

// skip the secret derivation on connect
func presetSecret(t *testing.T, sut *Wattpilot, hashType api.AuthHashType) {
	sut.mux.Lock()
	defer sut.mux.Unlock()

	sut.secret = testSecret(t, hashType)
	sut.secretFor = string(hashType) + "/" + testSerial
}

func nrgFixture() []any {
	return []any{230, 231, 232, 0, 10.5, 11, 10.8, 2415, 2541, 2506, 0, 7462, 99, 99, 99, 0}
}

// a scripted wallbox
//
// every connection runs hello, authRequired, verifies the auth response
// and sends the initial status
type fakeDevice struct {
	t *testing.T

	deviceType string
	secured    bool
	hashType   api.AuthHashType

	// do not answer the auth message
	silentAuth bool
	// do not send any status after authSuccess
	silentStatus bool
	// send the initial status in two partial chunks
	partialStatus bool
	// close the connection right after an authError
	closeOnAuthError bool

	// invoked with every message received after the handshake,
	// may return frames to send back and whether to close the connection
	onMessage func(msg map[string]any) (replies []any, close bool)

	received chan map[string]any

	conn        *websocket.Conn
	connections int

	mux      sync.Mutex
	writeMux sync.Mutex
}

func newFakeDevice(t *testing.T) *fakeDevice {
	return &fakeDevice{
		t:          t,
		deviceType: "wattpilot",
		hashType:   api.AuthHashTypePBKDF2,
		received:   make(chan map[string]any, 20),
	}
}

func (d *fakeDevice) start() (*httptest.Server, string) {
	server := httptest.NewServer(d)
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	return server, url
}

func (d *fakeDevice) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		d.t.Log(err)
		return
	}
	defer conn.Close()

	d.mux.Lock()
	d.conn = conn
	d.connections++
	d.mux.Unlock()

	secured := 0
	if d.secured {
		secured = 1
	}
	d.write(conn, map[string]any{
		"type":          "hello",
		"serial":        testSerial,
		"hostname":      "Wattpilot_" + testSerial,
		"friendly_name": "Garage",
		"manufacturer":  "fronius",
		"devicetype":    d.deviceType,
		"version":       "36.3",
		"protocol":      2,
		"secured":       secured,
	})

	token1 := auth.GenerateToken()
	token2 := auth.GenerateToken()
	d.write(conn, map[string]any{
		"type":   "authRequired",
		"token1": token1,
		"token2": token2,
		"hash":   string(d.hashType),
	})

	msg, ok := d.read(conn)
	if !ok {
		return
	}

	if !d.silentAuth {
		expected := auth.ComputeAuthResponse(token1, token2, msg["token3"].(string), testSecret(d.t, d.hashType))
		if msg["type"] != "auth" || msg["hash"] != expected {
			d.write(conn, map[string]any{"type": "authError", "message": "Wrong password"})
			if !d.closeOnAuthError {
				d.drain(conn)
			}
			return
		}

		d.write(conn, map[string]any{"type": "authSuccess"})

		if !d.silentStatus {
			d.sendInitialStatus(conn)
		}
	}

	for {
		msg, ok := d.read(conn)
		if !ok {
			return
		}
		d.received <- msg

		if d.onMessage == nil {
			continue
		}

		replies, closeConn := d.onMessage(msg)
		for _, reply := range replies {
			d.write(conn, reply)
		}
		if closeConn {
			return
		}
	}
}

func (d *fakeDevice) sendInitialStatus(conn *websocket.Conn) {
	if d.partialStatus {
		d.write(conn, map[string]any{"type": "fullStatus", "partial": true, "status": map[string]any{"amp": 16}})
		d.write(conn, map[string]any{"type": "fullStatus", "partial": false, "status": map[string]any{"nrg": nrgFixture()}})
		return
	}

	d.write(conn, map[string]any{
		"type": "fullStatus",
		"status": map[string]any{
			"amp": 16,
			"car": 2,
			"alw": true,
			"lmo": 3,
			"nrg": nrgFixture(),
		},
	})
}

// push a frame on the current connection
func (d *fakeDevice) send(frame any) {
	d.mux.Lock()
	conn := d.conn
	d.mux.Unlock()

	d.write(conn, frame)
}

func (d *fakeDevice) sendRaw(data string) {
	d.mux.Lock()
	conn := d.conn
	d.mux.Unlock()

	d.writeMux.Lock()
	defer d.writeMux.Unlock()

	_ = conn.WriteMessage(websocket.TextMessage, []byte(data))
}

// close the current connection from the device side
func (d *fakeDevice) close() {
	d.mux.Lock()
	conn := d.conn
	d.mux.Unlock()

	_ = conn.Close()
}

func (d *fakeDevice) connectionCount() int {
	d.mux.Lock()
	defer d.mux.Unlock()

	return d.connections
}

func (d *fakeDevice) write(conn *websocket.Conn, frame any) {
	data, err := json.Marshal(frame)
	if err != nil {
		d.t.Error(err)
		return
	}

	d.writeMux.Lock()
	defer d.writeMux.Unlock()

	_ = conn.WriteMessage(websocket.TextMessage, data)
}

func (d *fakeDevice) read(conn *websocket.Conn) (map[string]any, bool) {
	_, data, err := conn.ReadMessage()
	if err != nil {
		return nil, false
	}

	msg := map[string]any{}
	if err := json.Unmarshal(data, &msg); err != nil {
		d.t.Error(err)
		return nil, false
	}

	return msg, true
}

func (d *fakeDevice) drain(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

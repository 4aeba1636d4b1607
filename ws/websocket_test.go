package ws

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/enbility/wattpilot-go/mocks"
	"github.com/enbility/wattpilot-go/util"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func TestWebsocketSuite(t *testing.T) {
	suite.Run(t, new(WebsocketSuite))
}

type WebsocketSuite struct {
	suite.Suite

	sut *WebsocketConnection

	testServer *httptest.Server
	testWsConn *websocket.Conn

	wsDataReader *mocks.WebsocketDataReaderInterface
	received     chan []byte
}

func (s *WebsocketSuite) BeforeTest(suiteName, testName string) {
	s.received = make(chan []byte, 10)

	s.wsDataReader = mocks.NewWebsocketDataReaderInterface(s.T())
	s.wsDataReader.EXPECT().ReportConnectionError(mock.Anything).Return().Maybe()
	s.wsDataReader.EXPECT().HandleIncomingWebsocketMessage(mock.Anything).Run(func(message []byte) {
		s.received <- message
	}).Return().Maybe()

	ts := &testServer{}
	s.testServer, s.testWsConn = newWSServer(s.T(), ts)

	s.sut = NewWebsocketConnection(s.testWsConn, "wattpilot")
	s.sut.InitDataProcessing(s.wsDataReader)
}

func (s *WebsocketSuite) AfterTest(suiteName, testName string) {
	_ = s.testWsConn.Close()
	s.testServer.Close()
}

func (s *WebsocketSuite) TestConnection() {
	isClosed := s.sut.isConnClosed()
	assert.Equal(s.T(), false, isClosed)

	msg := []byte(`{"type":"setValue","requestId":1,"key":"amp","value":16}`)
	err := s.sut.WriteMessageToWebsocketConnection(msg)
	assert.Nil(s.T(), err)

	select {
	case echo := <-s.received:
		assert.Equal(s.T(), msg, echo)
	case <-time.After(2 * time.Second):
		s.T().Fatal("no message received")
	}

	isConnClosed, err := s.sut.IsDataConnectionClosed()
	assert.Equal(s.T(), false, isConnClosed)
	assert.Nil(s.T(), err)

	s.sut.CloseDataConnection(websocket.CloseNormalClosure, "User Close")

	// the read pump has returned
	select {
	case <-s.sut.readDone:
	default:
		s.T().Fatal("read pump still running")
	}

	isConnClosed, err = s.sut.IsDataConnectionClosed()
	assert.Equal(s.T(), true, isConnClosed)
	assert.NotNil(s.T(), err)

	err = s.sut.WriteMessageToWebsocketConnection(msg)
	assert.NotNil(s.T(), err)

	// closing again is a no-op
	s.sut.CloseDataConnection(websocket.CloseNormalClosure, "")
}

func (s *WebsocketSuite) TestConnectionInvalid() {
	err := s.sut.WriteMessageToWebsocketConnection([]byte{})
	assert.Nil(s.T(), err)

	// make sure we have enough time to read and write
	time.Sleep(time.Millisecond * 500)

	isConnClosed, err := s.sut.IsDataConnectionClosed()
	assert.Equal(s.T(), true, isConnClosed)
	assert.NotNil(s.T(), err)

	err = s.sut.WriteMessageToWebsocketConnection([]byte("{}"))
	assert.NotNil(s.T(), err)

	s.sut.CloseDataConnection(websocket.CloseInternalServerErr, "test")

	result := s.sut.writeMessage(websocket.TextMessage, []byte{})
	assert.Equal(s.T(), false, result)

	s.sut.conn = nil

	data, err := s.sut.readWebsocketMessage()
	assert.NotNil(s.T(), err)
	assert.Nil(s.T(), data)

	err = s.sut.checkWebsocketMessage(websocket.TextMessage, []byte{})
	assert.NotNil(s.T(), err)

	err = s.sut.checkWebsocketMessage(websocket.PingMessage, []byte("{}"))
	assert.NotNil(s.T(), err)

	err = s.sut.checkWebsocketMessage(websocket.BinaryMessage, []byte("{}"))
	assert.Nil(s.T(), err)
}

func (s *WebsocketSuite) TestConnectionClose() {
	s.sut.close()

	isClosed, err := s.sut.IsDataConnectionClosed()
	assert.Equal(s.T(), true, isClosed)
	assert.NotNil(s.T(), err)
}

func (s *WebsocketSuite) TestPingPeriod() {
	isClosed, err := s.sut.IsDataConnectionClosed()
	assert.Equal(s.T(), false, isClosed)
	assert.Nil(s.T(), err)

	if !util.IsRunningOnCI() {
		// test if the function is triggered correctly via the timer
		time.Sleep(time.Second * 51)
	} else {
		// speed up the test by running the method directly
		s.sut.handlePing()
	}

	isClosed, err = s.sut.IsDataConnectionClosed()
	assert.Equal(s.T(), false, isClosed)
	assert.Nil(s.T(), err)
}

func (s *WebsocketSuite) TestCloseWithError() {
	isClosed, err := s.sut.IsDataConnectionClosed()
	assert.Equal(s.T(), false, isClosed)
	assert.Nil(s.T(), err)

	err = errors.New("test error")
	s.sut.closeWithError(err, "test error")

	isClosed, err = s.sut.IsDataConnectionClosed()
	assert.Equal(s.T(), true, isClosed)
	assert.Equal(s.T(), "test error", err.Error())
}

func (s *WebsocketSuite) TestRemoteClose() {
	// the server side goes away, e.g. a reboot of the wallbox
	err := s.sut.WriteMessageToWebsocketConnection([]byte("bye"))
	assert.Nil(s.T(), err)

	select {
	case <-s.sut.readDone:
	case <-time.After(2 * time.Second):
		s.T().Fatal("read pump did not notice the closed connection")
	}

	isClosed, err := s.sut.IsDataConnectionClosed()
	assert.Equal(s.T(), true, isClosed)
	assert.NotNil(s.T(), err)
}

func TestDial(t *testing.T) {
	server := httptest.NewServer(&testServer{})
	defer server.Close()

	conn, err := Dial(context.Background(), strings.Replace(server.URL, "http://", "ws://", 1))
	assert.Nil(t, err)
	assert.NotNil(t, conn)
	_ = conn.Close()

	_, err = Dial(context.Background(), "ws://127.0.0.1:1/ws")
	assert.NotNil(t, err)
}

var upgrader = websocket.Upgrader{}

func newWSServer(t *testing.T, h http.Handler) (*httptest.Server, *websocket.Conn) {
	t.Helper()

	s := httptest.NewServer(h)
	wsURL := strings.Replace(s.URL, "http://", "ws://", -1)
	wsURL = strings.Replace(wsURL, "https://", "wss://", -1)

	ws, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatal(err)
	}

	return s, ws
}

type testServer struct {
}

func (s *testServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	defer ws.Close()

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			return
		}

		if string(msg) == "bye" {
			return
		}

		err = ws.WriteMessage(websocket.TextMessage, msg)
		if err != nil {
			continue
		}
	}
}

package ws

import (
	"errors"
	"sync"
	"time"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/logging"
	"github.com/gorilla/websocket"
)

const connIsClosedError string = "connection is closed"

// Handling of the actual websocket connection to a wallbox
type WebsocketConnection struct {
	// The actual websocket connection
	conn *websocket.Conn

	// The implementation handling message processing
	dataProcessing api.WebsocketDataReaderInterface

	// The connection was closed
	closeChannel chan struct{}

	// closed when the read pump has returned
	readDone chan struct{}

	// The write channel for outgoing frames
	writeChannel chan []byte

	// internal handling of closed connections
	connectionClosed bool

	// the error message received for the closed connection
	connectionClosedError error

	// used for logging only
	remote string

	muxConnClosed sync.Mutex
	muxWrite      sync.Mutex
	muxConWrite   sync.Mutex
	shutdownOnce  sync.Once
}

// create a new websocket based data processing implementation
func NewWebsocketConnection(conn *websocket.Conn, remote string) *WebsocketConnection {
	return &WebsocketConnection{
		conn:                  conn,
		remote:                remote,
		connectionClosedError: nil,
		closeChannel:          make(chan struct{}),
		readDone:              make(chan struct{}),
	}
}

// sets the error message for the closed connection
func (w *WebsocketConnection) setConnClosedError(err error) {
	w.muxConnClosed.Lock()
	defer w.muxConnClosed.Unlock()

	w.connectionClosed = true

	if err != nil {
		w.connectionClosedError = err
	}
}

func (w *WebsocketConnection) connClosedError() error {
	w.muxConnClosed.Lock()
	defer w.muxConnClosed.Unlock()

	return w.connectionClosedError
}

// check if the websocket connection is closed
func (w *WebsocketConnection) isConnClosed() bool {
	w.muxConnClosed.Lock()
	defer w.muxConnClosed.Unlock()

	return w.connectionClosed
}

func (w *WebsocketConnection) run() {
	w.muxWrite.Lock()
	w.writeChannel = make(chan []byte, 1) // Send outgoing frames
	w.muxWrite.Unlock()

	go w.readPump()
	go w.writePump()
}

// writePump pumps frames from the writeChannel to the websocket connection
func (w *WebsocketConnection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-w.closeChannel:
			return

		case message := <-w.writeChannel:
			if w.isConnClosed() {
				return
			}

			if !w.writeMessage(websocket.TextMessage, message) {
				return
			}

			logging.Log().Trace("Send:", w.remote, string(message))

		case <-ticker.C:
			w.handlePing()
		}
	}
}

func (w *WebsocketConnection) handlePing() {
	if w.isConnClosed() {
		return
	}

	_ = w.writeMessage(websocket.PingMessage, nil)
}

func (w *WebsocketConnection) closeWithError(err error, reason string) {
	logging.Log().Debug(w.remote, reason, err)
	w.close()
	w.setConnClosedError(err)
	w.dataProcessing.ReportConnectionError(err)
}

// readPump checks for messages from the websocket connection
func (w *WebsocketConnection) readPump() {
	defer close(w.readDone)

	_ = w.conn.SetReadDeadline(time.Now().Add(pongWait))
	w.conn.SetPongHandler(func(string) error { _ = w.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		select {
		case <-w.closeChannel:
			return

		default:
			if w.isConnClosed() {
				return
			}

			message, err := w.readWebsocketMessage()
			// ignore read errors if the connection got closed
			if w.isConnClosed() {
				return
			}

			if err != nil {
				w.closeWithError(err, "websocket read error: ")
				return
			}

			// any frame proves the peer is alive
			_ = w.conn.SetReadDeadline(time.Now().Add(pongWait))

			logging.Log().Trace("Recv:", w.remote, string(message))

			w.dataProcessing.HandleIncomingWebsocketMessage(message)
		}
	}
}

// read a message from the websocket connection
func (w *WebsocketConnection) readWebsocketMessage() ([]byte, error) {
	if w.conn == nil {
		return nil, errors.New("connection is not initialized")
	}

	msgType, b, err := w.conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	if err := w.checkWebsocketMessage(msgType, b); err != nil {
		return nil, err
	}

	return b, nil
}

// the wallbox sends text frames, some proxies turn them into binary frames
func (w *WebsocketConnection) checkWebsocketMessage(msgType int, data []byte) error {
	if msgType != websocket.TextMessage && msgType != websocket.BinaryMessage {
		return errors.New("message is not a data message")
	}

	if len(data) == 0 {
		return errors.New("received an empty message")
	}

	return nil
}

// close the current websocket connection
func (w *WebsocketConnection) close() {
	w.shutdownOnce.Do(func() {
		w.setConnClosedError(nil)

		close(w.closeChannel)

		if w.conn != nil {
			_ = w.conn.Close()
		}
	})
}

var _ api.WebsocketDataWriterInterface = (*WebsocketConnection)(nil)

func (w *WebsocketConnection) InitDataProcessing(dataProcessing api.WebsocketDataReaderInterface) {
	w.dataProcessing = dataProcessing

	w.run()
}

// write a message to the websocket connection
func (w *WebsocketConnection) WriteMessageToWebsocketConnection(message []byte) error {
	w.muxWrite.Lock()
	defer w.muxWrite.Unlock()

	if w.isConnClosed() || w.writeChannel == nil {
		return errors.New(connIsClosedError)
	}

	select {
	case w.writeChannel <- message:
		return nil
	case <-w.closeChannel:
		return errors.New(connIsClosedError)
	}
}

// every write gets its own deadline, gorilla allows one writer at a time
func (w *WebsocketConnection) writeMessage(messageType int, data []byte) bool {
	if w.isConnClosed() {
		return false
	}

	w.muxConWrite.Lock()
	_ = w.conn.SetWriteDeadline(time.Now().Add(writeWait))
	err := w.conn.WriteMessage(messageType, data)
	w.muxConWrite.Unlock()

	if err != nil {
		w.closeWithError(err, "error writing to websocket: ")
		return false
	}

	return true
}

// shutdown the connection and all internals
//
// waits for the read pump to return, so no frame is dispatched afterwards.
// Must not be called from within HandleIncomingWebsocketMessage.
func (w *WebsocketConnection) CloseDataConnection(closeCode int, reason string) {
	if !w.isConnClosed() {
		if reason != "" {
			_ = w.writeMessage(websocket.CloseMessage, websocket.FormatCloseMessage(closeCode, reason))
		}
		w.close()
	}

	w.waitForReadPump()
}

func (w *WebsocketConnection) waitForReadPump() {
	w.muxWrite.Lock()
	started := w.writeChannel != nil
	w.muxWrite.Unlock()

	if !started {
		return
	}

	select {
	case <-w.readDone:
	case <-time.After(readPumpStopWait):
		logging.Log().Debug(w.remote, "read pump did not stop in time")
	}
}

// return if the connection is closed
func (w *WebsocketConnection) IsDataConnectionClosed() (bool, error) {
	isClosed := w.isConnClosed()
	err := w.connClosedError()

	if isClosed && err == nil {
		err = errors.New(connIsClosedError)
	}

	return isClosed, err
}

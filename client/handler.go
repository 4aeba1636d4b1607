package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/auth"
	"github.com/enbility/wattpilot-go/logging"
	"github.com/enbility/wattpilot-go/model"
)

var _ api.WebsocketDataReaderInterface = (*Wattpilot)(nil)

// route the incoming frame to the handler of its type
//
// frames are handled strictly in arrival order, a malformed or unknown
// frame is logged and dropped
func (w *Wattpilot) HandleIncomingWebsocketMessage(message []byte) {
	frame, err := model.ParseFrame(message)
	if err != nil {
		logging.Log().Error("Failed to decode message: ", err)
		return
	}

	w.notifyMessage(frame)

	switch frame.Type {
	case model.MsgTypeHello:
		w.handleHello(frame)
	case model.MsgTypeAuthRequired:
		w.handleAuthRequired(frame)
	case model.MsgTypeAuthSuccess:
		w.handleAuthSuccess(frame)
	case model.MsgTypeAuthError:
		w.handleAuthError(frame)
	case model.MsgTypeFullStatus:
		w.handleFullStatus(frame)
	case model.MsgTypeDeltaStatus:
		w.handleDeltaStatus(frame)
	case model.MsgTypeResponse:
		w.handleResponse(frame)
	case model.MsgTypeClearInverters, model.MsgTypeUpdateInverter:
		// no modeled state
	default:
		logging.Log().Debugf("Unknown message type: %s", frame.Type)
	}
}

// the websocket data connection was closed from remote
func (w *Wattpilot) ReportConnectionError(err error) {
	logging.Log().Info("Connection to Wattpilot closed: ", err)

	w.mux.Lock()
	wasConnected := w.connected
	w.connected = false
	w.dataWriter = nil
	w.sessionErr = err
	if w.sessionDone != nil {
		select {
		case <-w.sessionDone:
		default:
			close(w.sessionDone)
		}
	}
	w.setStateLocked(model.StateDisconnected)
	w.mux.Unlock()

	w.connectedEvent.Clear()
	w.initializedEvent.Clear()

	w.failPendingRequests(api.NewConnectionError("Connection closed", err))

	if wasConnected {
		// listeners may reconnect, which waits for the read loop to end
		go w.notifyDisconnect(err)
	}
}

func (w *Wattpilot) handleHello(frame *model.Frame) {
	w.mux.Lock()
	defer w.mux.Unlock()

	w.device.Serial = frame.Serial
	if frame.Hostname != "" {
		w.device.Name = frame.Hostname
		w.device.Hostname = frame.Hostname
	}
	if frame.FriendlyName != "" {
		w.device.FriendlyName = frame.FriendlyName
	}
	if frame.Version != "" {
		w.device.Version = frame.Version
	}
	w.device.Manufacturer = frame.Manufacturer
	w.device.DeviceType = frame.DeviceType
	w.device.Protocol = int(frame.Protocol)
	w.device.Secured = int(frame.Secured)

	logging.Log().Debugf("Received hello from Wattpilot %s (%s)", frame.Serial, frame.DeviceType)
}

func (w *Wattpilot) handleAuthRequired(frame *model.Frame) {
	w.mux.Lock()
	switch {
	case frame.Hash != "":
		w.hashType = api.AuthHashType(frame.Hash)
	case w.device.DeviceType == DeviceTypeFlex:
		w.hashType = api.AuthHashTypeBcrypt
	default:
		w.hashType = api.AuthHashTypePBKDF2
	}
	hashType := w.hashType
	serial := w.device.Serial
	password := w.password
	secret := w.secret
	secretFor := string(hashType) + "/" + serial
	derive := password != "" && serial != "" && w.secretFor != secretFor
	w.setStateLocked(model.StateAuthenticating)
	w.mux.Unlock()

	// the derivation takes a noticeable time, the accessors must not block on it
	if derive {
		derived, err := auth.HashPassword(password, serial, hashType)
		if err != nil {
			w.failAuthentication(api.NewConnectionError("Failed to derive the password hash", err))
			return
		}
		secret = derived

		w.mux.Lock()
		w.secret = derived
		w.secretFor = secretFor
		w.mux.Unlock()
	}

	logging.Log().Debugf("Authenticating with hash type %s", hashType)

	token3 := auth.GenerateToken()
	response := &model.AuthFrame{
		Type:   model.MsgTypeAuth,
		Token3: token3,
		Hash:   auth.ComputeAuthResponse(frame.Token1, frame.Token2, token3, secret),
	}

	if err := w.sendModel(response); err != nil {
		logging.Log().Error("Failed to send auth message: ", err)
	}
}

func (w *Wattpilot) handleAuthSuccess(_ *model.Frame) {
	w.mux.Lock()
	w.connected = true
	w.setStateLocked(model.StateAwaitingSnapshot)
	w.mux.Unlock()

	logging.Log().Info("Authentication successful")

	w.connectedEvent.Set()
}

func (w *Wattpilot) handleAuthError(frame *model.Frame) {
	message := frame.Message
	if message == "" {
		message = "Unknown auth error"
	}
	logging.Log().Errorf("Authentication failed: %s", message)

	w.failAuthentication(api.NewAuthenticationError(message))
}

// the error is stored before the connected event is set,
// so a waiting Connect always sees it
func (w *Wattpilot) failAuthentication(err error) {
	w.mux.Lock()
	w.authError = err
	w.connected = false
	w.mux.Unlock()

	w.connectedEvent.Set()
}

func (w *Wattpilot) handleFullStatus(frame *model.Frame) {
	w.applyStatus(frame)

	if frame.Partial != nil && !w.PropertiesInitialized() {
		if !*frame.Partial {
			w.markInitialized()
		}
		return
	}

	w.markInitialized()
}

// a delta before the first complete snapshot is proof of a working feed
func (w *Wattpilot) handleDeltaStatus(frame *model.Frame) {
	if !w.PropertiesInitialized() {
		w.markInitialized()
	}

	w.applyStatus(frame)
}

func (w *Wattpilot) handleResponse(frame *model.Frame) {
	requestID, idErr := responseRequestID(frame)

	if frame.Success {
		w.applyStatus(frame)
		if idErr == nil {
			w.resolveRequest(requestID, nil)
		}
		return
	}

	logging.Log().Errorf("Command failed (requestId=%v): %s", frame.RequestID, frame.Message)

	if idErr == nil {
		w.resolveRequest(requestID, api.NewCommandError(requestID, frame.Message))
	}
}

// signed commands echo the request id with the secured suffix
func responseRequestID(frame *model.Frame) (int64, error) {
	if id, ok := frame.RequestID.(string); ok {
		trimmed := *frame
		trimmed.RequestID = strings.TrimSuffix(id, model.SecuredRequestIDSuffix)
		return trimmed.RequestIDInt()
	}

	return frame.RequestIDInt()
}

func (w *Wattpilot) markInitialized() {
	w.mux.Lock()
	w.initialized = true
	w.setStateLocked(model.StateReady)
	w.mux.Unlock()

	w.initializedEvent.Set()
}

func (w *Wattpilot) applyStatus(frame *model.Frame) {
	properties, err := frame.StatusProperties()
	if err != nil {
		logging.Log().Errorf("Failed to decode status of %s message: %v", frame.Type, err)
		return
	}

	for _, property := range properties {
		w.updateProperty(property.Key, property.Value)
	}
}

func (w *Wattpilot) updateProperty(key string, value any) {
	w.store.Apply(key, value)
	w.notifyPropertyChange(key, value)
}

/* sending */

// send a json message for a provided model to the websocket connection
func (w *Wattpilot) sendModel(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	return w.send(data)
}

func (w *Wattpilot) send(data []byte) error {
	w.mux.Lock()
	dataWriter := w.dataWriter
	w.mux.Unlock()

	if dataWriter == nil {
		return api.NewConnectionError("Not connected", nil)
	}

	if isClosed, err := dataWriter.IsDataConnectionClosed(); isClosed {
		return api.NewConnectionError("Not connected", err)
	}

	if err := dataWriter.WriteMessageToWebsocketConnection(data); err != nil {
		return api.NewConnectionError("Failed to send message", err)
	}

	return nil
}

/* request correlation */

func (w *Wattpilot) nextRequestID() int64 {
	w.mux.Lock()
	defer w.mux.Unlock()

	w.requestID++
	return w.requestID
}

func (w *Wattpilot) registerRequest(requestID int64) chan error {
	ch := make(chan error, 1)

	w.mux.Lock()
	w.pending[requestID] = ch
	w.mux.Unlock()

	return ch
}

func (w *Wattpilot) unregisterRequest(requestID int64) {
	w.mux.Lock()
	delete(w.pending, requestID)
	w.mux.Unlock()
}

func (w *Wattpilot) resolveRequest(requestID int64, err error) {
	w.mux.Lock()
	ch, ok := w.pending[requestID]
	delete(w.pending, requestID)
	w.mux.Unlock()

	if ok {
		ch <- err
	}
}

func (w *Wattpilot) failPendingRequests(err error) {
	w.mux.Lock()
	pending := w.pending
	w.pending = make(map[int64]chan error)
	w.mux.Unlock()

	for _, ch := range pending {
		ch <- err
	}
}

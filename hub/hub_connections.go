package hub

import (
	"math/rand"
	"time"

	"github.com/enbility/wattpilot-go/api"
	"github.com/enbility/wattpilot-go/logging"
)

// return if the current client is connected
func (h *Hub) isConnected() bool {
	h.muxClient.Lock()
	defer h.muxClient.Unlock()

	return h.client != nil && h.client.Connected()
}

// coordinate connection initiation attempts to the wallbox
func (h *Hub) coordinateConnectionInitations() {
	if h.isConnectionAttemptRunning() {
		return
	}

	// Shutdown waits for the attempts, none may start once it began
	h.muxStarted.Lock()
	if !h.hasStarted || h.isShutdown {
		h.muxStarted.Unlock()
		return
	}
	done := h.done
	h.attempts.Add(1)
	h.muxStarted.Unlock()

	h.setConnectionAttemptRunning(true)

	counter, duration := h.getConnectionInitiationDelayTime()

	logging.Log().Debugf("delaying connection to %s by %s", h.targetHost(), duration)

	go func() {
		defer h.attempts.Done()

		timer := time.NewTimer(duration)
		defer timer.Stop()

		select {
		case <-done:
			h.setConnectionAttemptRunning(false)
			return
		case <-timer.C:
		}

		h.prepareConnectionInitation(counter)
	}()
}

// invoked by coordinateConnectionInitations after the delay
func (h *Hub) prepareConnectionInitation(counter int) {
	// check if the current counter is still the same, otherwise this counter is irrelevant
	if currentCounter := h.getCurrentConnectionAttemptCounter(); currentCounter != counter ||
		!h.isRunning() || h.isConnected() {
		h.setConnectionAttemptRunning(false)
		return
	}

	success := h.initateConnection()

	h.setConnectionAttemptRunning(false)

	if !success && h.isRunning() {
		h.coordinateConnectionInitations()
	}
}

// attempt to establish a connection to the wallbox
// returns true if successful
func (h *Hub) initateConnection() bool {
	host := h.targetHost()
	if host == "" {
		return false
	}

	client := h.clientForHost(host)

	h.updateConnectionState(api.ConnectionStateConnecting, nil)
	logging.Log().Debug("trying to connect to", h.service.Serial(), "at", host)

	if err := client.Connect(); err != nil {
		logging.Log().Debugf("connection to %s failed: %s", host, err)
		h.updateConnectionState(api.ConnectionStateError, err)
		return false
	}

	if h.service.Serial() == "" {
		h.service.SetSerial(client.Serial())
	}
	h.service.SetDeviceType(client.DeviceType())

	h.removeConnectionAttemptCounter()
	h.updateConnectionState(api.ConnectionStateConnected, nil)

	return true
}

// return the client for a host, a new one is created when the host changed
func (h *Hub) clientForHost(host string) api.ClientInterface {
	h.muxClient.Lock()
	defer h.muxClient.Unlock()

	if h.client != nil && h.clientHost == host {
		return h.client
	}

	if h.unsubscribeClose != nil {
		h.unsubscribeClose()
		h.unsubscribeClose = nil
	}
	if h.client != nil {
		h.client.Disconnect()
	}

	client := h.factory(host)
	h.client = client
	h.clientHost = host
	h.unsubscribeClose = client.OnDisconnect(h.handleDisconnect)

	return client
}

// invoked when an established connection got lost
func (h *Hub) handleDisconnect(err error) {
	if !h.isRunning() {
		return
	}

	logging.Log().Debug("connection to", h.service.Serial(), "lost:", err)

	h.updateConnectionState(api.ConnectionStateReconnecting, err)
	h.coordinateConnectionInitations()
}

// increase the connection attempt counter
func (h *Hub) increaseConnectionAttemptCounter() int {
	h.muxConAttempt.Lock()
	defer h.muxConAttempt.Unlock()

	if h.connectionAttemptCounter < len(connectionInitiationDelayTimeRanges)-1 {
		h.connectionAttemptCounter++
	}

	return h.connectionAttemptCounter
}

// reset the connection attempt counter after a successful connection
func (h *Hub) removeConnectionAttemptCounter() {
	h.muxConAttempt.Lock()
	defer h.muxConAttempt.Unlock()

	h.connectionAttemptCounter = -1
}

// get the current attempt counter
func (h *Hub) getCurrentConnectionAttemptCounter() int {
	h.muxConAttempt.Lock()
	defer h.muxConAttempt.Unlock()

	return h.connectionAttemptCounter
}

// get the connection initiation delay time range
// returns the current counter and the duration
func (h *Hub) getConnectionInitiationDelayTime() (int, time.Duration) {
	counter := h.increaseConnectionAttemptCounter()

	h.muxConAttempt.Lock()
	defer h.muxConAttempt.Unlock()

	timeRange := connectionInitiationDelayTimeRanges[counter]

	// get range in Milliseconds
	min := int64(timeRange.min) * 1000
	max := int64(timeRange.max) * 1000

	// #nosec G404
	duration := rand.Int63n(max-min) + min

	return counter, time.Duration(duration) * h.delayUnit / 1000
}

// set if a connection attempt is running/in progress
func (h *Hub) setConnectionAttemptRunning(active bool) {
	h.muxConAttempt.Lock()
	defer h.muxConAttempt.Unlock()

	h.connectionAttemptRunning = active
}

// return if a connection attempt is runnning/in progress
func (h *Hub) isConnectionAttemptRunning() bool {
	h.muxConAttempt.Lock()
	defer h.muxConAttempt.Unlock()

	return h.connectionAttemptRunning
}

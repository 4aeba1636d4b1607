package api

/* WebsocketConnection */

// interface for handling the actual device data connection
//
// implemented by WebsocketConnection, used by client.Wattpilot
type WebsocketDataWriterInterface interface {
	// initialize data processing
	InitDataProcessing(WebsocketDataReaderInterface)

	// send a text frame via the connection to the device
	WriteMessageToWebsocketConnection([]byte) error

	// close the data connection and wait for the read loop to end
	CloseDataConnection(closeCode int, reason string)

	// report if the data connection is closed and the error if available
	IsDataConnectionClosed() (bool, error)
}

// interface for handling incoming data
//
// implemented by client.Wattpilot, used by WebsocketConnection
type WebsocketDataReaderInterface interface {
	// called for each incoming frame, strictly in arrival order
	HandleIncomingWebsocketMessage([]byte)

	// called if the data connection is closed unsafe
	// e.g. due to connection issues or a device reboot
	ReportConnectionError(error)
}

package ws

import "time"

const (
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = 50 * time.Second

	// Time allowed for the opening handshake
	handshakeTimeout = 10 * time.Second

	// Time CloseDataConnection waits for the read pump to finish
	readPumpStopWait = 5 * time.Second
)

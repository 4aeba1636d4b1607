package ws

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
)

// open a websocket connection to the given ws:// or wss:// url
func Dial(ctx context.Context, url string) (*websocket.Conn, error) {
	dialer := &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: handshakeTimeout,
	}

	conn, resp, err := dialer.DialContext(ctx, url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", url, err)
	}

	return conn, nil
}

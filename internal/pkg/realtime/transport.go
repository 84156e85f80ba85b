package realtime

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
)

// Conn is a single established realtime connection.
type Conn interface {
	ReadMessage() ([]byte, error)
	WriteMessage(data []byte) error
	Close() error
}

// Dialer establishes realtime connections. The production implementation
// dials a WebSocket endpoint; tests inject scripted fakes.
type Dialer interface {
	Dial(ctx context.Context, url string, header http.Header) (Conn, error)
}

// NewWebSocketDialer returns a Dialer backed by gorilla/websocket.
func NewWebSocketDialer() Dialer {
	return &wsDialer{dialer: websocket.DefaultDialer}
}

type wsDialer struct {
	dialer *websocket.Dialer
}

func (d *wsDialer) Dial(ctx context.Context, url string, header http.Header) (Conn, error) {
	conn, resp, err := d.dialer.DialContext(ctx, url, header)
	if err != nil {
		return nil, err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	return &wsConn{conn: conn}, nil
}

type wsConn struct {
	conn *websocket.Conn
}

func (c *wsConn) ReadMessage() ([]byte, error) {
	_, data, err := c.conn.ReadMessage()
	return data, err
}

func (c *wsConn) WriteMessage(data []byte) error {
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

package websocket

import (
	"time"

	"github.com/coder/websocket"
)

// Message types sent to the browser.
const (
	// MessageReload asks the page to reload itself.
	MessageReload = "reload"
)

// Client represents a WebSocket client connection
type Client struct {
	conn         *websocket.Conn
	send         chan []byte
	remoteAddr   string
	connectedAt  time.Time
	lastActivity time.Time
}

// UpdateMessage represents a message sent to the browser
type UpdateMessage struct {
	Type string `json:"type"`
	// Path is the data file or route that changed.
	Path      string    `json:"path,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// OriginValidator decides which browser origins may open a live reload socket.
type OriginValidator interface {
	IsAllowedOrigin(origin string) bool
}

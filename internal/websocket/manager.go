// Package websocket runs the live reload hub: browsers served in development
// keep a socket open on /ws and reload when the diary data changes.
package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/conneroisu/diary/internal/logging"
)

const (
	sendBuffer   = 16
	pingInterval = 54 * time.Second
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
)

// Manager owns the connected clients. A single hub goroutine serialises
// registration, removal and broadcast.
type Manager struct {
	clients      map[*websocket.Conn]*Client
	clientsMutex sync.RWMutex

	broadcast  chan []byte
	register   chan *Client
	unregister chan *websocket.Conn

	originValidator OriginValidator
	logger          logging.Logger

	ctx          context.Context
	cancel       context.CancelFunc
	shutdownOnce sync.Once
	shutdownMu   sync.RWMutex
	isShutdown   bool
}

// NewManager starts the hub goroutine. It stops on Shutdown.
func NewManager(originValidator OriginValidator, logger logging.Logger) *Manager {
	if originValidator == nil {
		panic("websocket.Manager: originValidator cannot be nil")
	}
	if logger == nil {
		logger = logging.Discard()
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Manager{
		clients:         make(map[*websocket.Conn]*Client),
		broadcast:       make(chan []byte, 64),
		register:        make(chan *Client, 32),
		unregister:      make(chan *websocket.Conn, 32),
		originValidator: originValidator,
		logger:          logger.WithComponent("websocket"),
		ctx:             ctx,
		cancel:          cancel,
	}

	go m.runHub()

	return m
}

// HandleWebSocket upgrades the request and registers the client.
//
// Responses before the upgrade:
//   - 503 after Shutdown
//   - 403 when the Origin header is not allowed
func (m *Manager) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if m.IsShutdown() {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	origin := r.Header.Get("Origin")
	if origin != "" && !m.originValidator.IsAllowedOrigin(origin) {
		m.logger.Warn(r.Context(), nil, "WebSocket connection rejected", "origin", origin, "remote", r.RemoteAddr)
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	// Origins were checked above.
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns:  []string{"*"},
		CompressionMode: websocket.CompressionDisabled,
	})
	if err != nil {
		m.logger.Warn(r.Context(), err, "WebSocket upgrade failed", "remote", r.RemoteAddr)
		return
	}

	now := time.Now()
	client := &Client{
		conn:         conn,
		send:         make(chan []byte, sendBuffer),
		remoteAddr:   r.RemoteAddr,
		connectedAt:  now,
		lastActivity: now,
	}

	select {
	case m.register <- client:
	case <-m.ctx.Done():
		_ = conn.Close(websocket.StatusServiceRestart, "Server shutting down")
		return
	default:
		_ = conn.Close(websocket.StatusTryAgainLater, "Server busy")
		return
	}

	go m.handleClient(client)
}

func (m *Manager) runHub() {
	for {
		select {
		case client := <-m.register:
			m.registerClient(client)
		case conn := <-m.unregister:
			m.unregisterClient(conn)
		case message := <-m.broadcast:
			m.broadcastToClients(message)
		case <-m.ctx.Done():
			return
		}
	}
}

func (m *Manager) registerClient(client *Client) {
	m.clientsMutex.Lock()
	m.clients[client.conn] = client
	total := len(m.clients)
	m.clientsMutex.Unlock()

	m.logger.Debug(m.ctx, "WebSocket client connected", "remote", client.remoteAddr, "clients", total)
}

func (m *Manager) unregisterClient(conn *websocket.Conn) {
	m.clientsMutex.Lock()
	client, exists := m.clients[conn]
	if exists {
		delete(m.clients, conn)
		close(client.send)
	}
	total := len(m.clients)
	m.clientsMutex.Unlock()

	if exists {
		_ = conn.Close(websocket.StatusNormalClosure, "")
		m.logger.Debug(m.ctx, "WebSocket client disconnected", "remote", client.remoteAddr, "clients", total)
	}
}

// broadcastToClients drops clients whose send buffer is full.
func (m *Manager) broadcastToClients(message []byte) {
	m.clientsMutex.RLock()
	clients := make([]*Client, 0, len(m.clients))
	for _, client := range m.clients {
		clients = append(clients, client)
	}
	m.clientsMutex.RUnlock()

	for _, client := range clients {
		select {
		case client.send <- message:
		default:
			go m.requestUnregister(client.conn)
		}
	}
}

func (m *Manager) requestUnregister(conn *websocket.Conn) {
	select {
	case m.unregister <- conn:
	case <-m.ctx.Done():
	}
}

func (m *Manager) handleClient(client *Client) {
	defer m.requestUnregister(client.conn)

	go m.writeToClient(client)
	m.readFromClient(client)
}

// readFromClient only keeps the connection alive; browsers send nothing
// meaningful.
func (m *Manager) readFromClient(client *Client) {
	for {
		ctx, cancel := context.WithTimeout(m.ctx, readTimeout)
		_, _, err := client.conn.Read(ctx)
		cancel()

		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure &&
				websocket.CloseStatus(err) != websocket.StatusGoingAway &&
				m.ctx.Err() == nil {
				m.logger.Debug(m.ctx, "WebSocket read ended", "remote", client.remoteAddr, "error", err.Error())
			}
			return
		}

		m.clientsMutex.Lock()
		client.lastActivity = time.Now()
		m.clientsMutex.Unlock()
	}
}

func (m *Manager) writeToClient(client *Client) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-client.send:
			if !ok {
				return
			}

			ctx, cancel := context.WithTimeout(m.ctx, writeTimeout)
			err := client.conn.Write(ctx, websocket.MessageText, message)
			cancel()

			if err != nil {
				m.logger.Debug(m.ctx, "WebSocket write failed", "remote", client.remoteAddr, "error", err.Error())
				return
			}

		case <-ticker.C:
			ctx, cancel := context.WithTimeout(m.ctx, writeTimeout)
			err := client.conn.Ping(ctx)
			cancel()

			if err != nil {
				return
			}

		case <-m.ctx.Done():
			return
		}
	}
}

// BroadcastMessage queues message for every connected client. It never
// blocks; when the queue is full the message is dropped.
func (m *Manager) BroadcastMessage(message UpdateMessage) {
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	data, err := json.Marshal(message)
	if err != nil {
		m.logger.Error(m.ctx, err, "Failed to marshal broadcast message")
		return
	}

	select {
	case m.broadcast <- data:
	case <-m.ctx.Done():
	default:
		m.logger.Warn(m.ctx, nil, "Broadcast channel full, dropping message", "type", message.Type)
	}
}

// BroadcastReload tells every browser to reload because path changed.
func (m *Manager) BroadcastReload(path string) {
	m.BroadcastMessage(UpdateMessage{Type: MessageReload, Path: path})
}

// ConnectedClients returns the number of registered clients.
func (m *Manager) ConnectedClients() int {
	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()
	return len(m.clients)
}

// Shutdown stops the hub and closes every connection. It is idempotent.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.shutdownOnce.Do(func() {
		m.shutdownMu.Lock()
		m.isShutdown = true
		m.shutdownMu.Unlock()

		m.cancel()

		m.clientsMutex.Lock()
		conns := make([]*websocket.Conn, 0, len(m.clients))
		for conn, client := range m.clients {
			close(client.send)
			conns = append(conns, conn)
		}
		m.clients = make(map[*websocket.Conn]*Client)
		m.clientsMutex.Unlock()

		for _, conn := range conns {
			_ = conn.Close(websocket.StatusGoingAway, "Server shutdown")
		}

		m.logger.Info(ctx, "WebSocket manager shut down", "closed", len(conns))
	})

	return nil
}

// IsShutdown returns whether the WebSocket manager has been shut down
func (m *Manager) IsShutdown() bool {
	m.shutdownMu.RLock()
	defer m.shutdownMu.RUnlock()
	return m.isShutdown
}

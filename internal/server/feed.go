package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/lawnchairsociety/openmaze/server/internal/level"
	"github.com/lawnchairsociety/openmaze/server/internal/logger"
)

// FeedClient wraps one WebSocket feed connection. Writes go through a mutex
// because broadcasts and the close path run on different goroutines.
type FeedClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// NewFeedClient creates a FeedClient from an upgraded connection.
func NewFeedClient(conn *websocket.Conn) *FeedClient {
	return &FeedClient{conn: conn}
}

// WriteJSON sends one JSON message to the client.
func (c *FeedClient) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Close closes the underlying connection.
func (c *FeedClient) Close() error {
	return c.conn.Close()
}

// RemoteAddr returns the remote address as a string.
func (c *FeedClient) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

// handleFeed upgrades the connection and keeps it registered until the peer
// goes away. Feed clients only listen; inbound messages are drained and
// dropped.
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			allowed := s.config.WebSocket.IsOriginAllowed(origin, r.Host)
			if !allowed {
				logger.Warning("Feed connection rejected by origin policy",
					"origin", origin, "host", r.Host)
			}
			return allowed
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Feed upgrade failed", "error", err)
		return
	}

	if max := s.config.WebSocket.MaxMessageSize; max > 0 {
		conn.SetReadLimit(max)
	}

	client := NewFeedClient(conn)
	s.feedMu.Lock()
	s.feedClients[client] = struct{}{}
	count := len(s.feedClients)
	s.feedMu.Unlock()

	logger.Info("Feed client connected", "remote_addr", client.RemoteAddr(), "clients", count)

	// Block on reads so we notice the peer disconnecting.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.feedMu.Lock()
	delete(s.feedClients, client)
	s.feedMu.Unlock()
	client.Close()

	logger.Info("Feed client disconnected", "remote_addr", client.RemoteAddr())
}

// broadcastLevel pushes a freshly generated level to every feed client.
// A client that fails to take the write is dropped.
func (s *Server) broadcastLevel(l *level.Level) {
	payload := levelToJSON(l, false)

	s.feedMu.Lock()
	clients := make([]*FeedClient, 0, len(s.feedClients))
	for client := range s.feedClients {
		clients = append(clients, client)
	}
	s.feedMu.Unlock()

	for _, client := range clients {
		if err := client.WriteJSON(payload); err != nil {
			logger.Warning("Dropping feed client after failed write",
				"remote_addr", client.RemoteAddr(), "error", err)
			s.feedMu.Lock()
			delete(s.feedClients, client)
			s.feedMu.Unlock()
			client.Close()
		}
	}
}

// Package server exposes stored and freshly generated levels over HTTP,
// plus a WebSocket feed that pushes every new level to connected editors.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/lawnchairsociety/openmaze/server/internal/config"
	"github.com/lawnchairsociety/openmaze/server/internal/logger"
	"github.com/lawnchairsociety/openmaze/server/internal/store"
)

type Server struct {
	config       *config.ServiceConfig
	store        *store.Store
	httpServer   *http.Server
	feedClients  map[*FeedClient]struct{}
	feedMu       sync.Mutex
	shutdown     chan struct{}
	shutdownOnce sync.Once
	StartTime    time.Time
}

// NewServer creates a server around an open store. It does not listen yet.
func NewServer(cfg *config.ServiceConfig, st *store.Store) *Server {
	return &Server{
		config:      cfg,
		store:       st,
		feedClients: make(map[*FeedClient]struct{}),
		shutdown:    make(chan struct{}),
		StartTime:   time.Now(),
	}
}

// Handler returns the full route table. Split out from Start so tests can
// drive the server through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/levels", s.handleGenerateLevel)
	mux.HandleFunc("GET /api/levels", s.handleListLevels)
	mux.HandleFunc("GET /api/levels/{name}", s.handleGetLevel)
	mux.HandleFunc("DELETE /api/levels/{name}", s.handleDeleteLevel)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /ws", s.handleFeed)
	return mux
}

// Start listens on the configured address and serves until Shutdown.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:    s.config.Listen,
		Handler: s.Handler(),
	}

	logger.Info("Server listening", "address", s.config.Listen)

	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the HTTP listener and closes every feed connection.
// Safe to call more than once.
func (s *Server) Shutdown() {
	s.shutdownOnce.Do(func() {
		close(s.shutdown)

		s.feedMu.Lock()
		for client := range s.feedClients {
			client.Close()
		}
		s.feedClients = make(map[*FeedClient]struct{})
		s.feedMu.Unlock()

		if s.httpServer != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.httpServer.Shutdown(ctx); err != nil {
				logger.Error("HTTP shutdown error", "error", err)
			}
		}
	})
}

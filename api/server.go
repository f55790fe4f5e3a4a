package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/aokblast/sicxeasm/config"
)

// Server is the HTTP API surface over the assembler service
//.
type Server struct {
	cfg         *config.Config
	sessions    *sessionManager
	broadcaster *Broadcaster
	mux         *http.ServeMux
	server      *http.Server
	port        int
}

// NewServer creates an API server bound to cfg's settings.
func NewServer(cfg *config.Config) *Server {
	broadcaster := NewBroadcaster()

	s := &Server{
		cfg:         cfg,
		sessions:    newSessionManager(broadcaster),
		broadcaster: broadcaster,
		mux:         http.NewServeMux(),
		port:        cfg.API.Port,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/v1/assemble", s.handleAssemble)
	s.mux.HandleFunc("/api/v1/session", s.handleSessionCreate)
	s.mux.HandleFunc("/api/v1/session/", s.handleSessionGet)
	s.mux.HandleFunc("/api/v1/ws", s.handleWebSocket)
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf("127.0.0.1:%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	log.Printf("sicxeasm API server starting on http://127.0.0.1:%d", s.port)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts the server down, closing the broadcaster
// so every connected WebSocket client is disconnected.
func (s *Server) Shutdown(ctx context.Context) error {
	s.broadcaster.Close()
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"CryptoBit/internal/cache"
	"CryptoBit/internal/dashboard"
	"CryptoBit/internal/recorder"
)

// Server serves the dashboard UI and the JSON API.
type Server struct {
	snapshots  *dashboard.Store
	cache      *cache.SnapshotCache // may be nil
	recorder   recorder.Recorder    // may be nil when sqlite is not configured
	symbols    []string
	startedAt  time.Time
	httpServer *http.Server
}

// NewServer creates a Server. The cache and recorder may be nil when Redis
// or SQLite are not configured.
func NewServer(listen string, snaps *dashboard.Store, sc *cache.SnapshotCache, rec recorder.Recorder, symbols []string) *Server {
	s := &Server{
		snapshots: snaps,
		cache:     sc,
		recorder:  rec,
		symbols:   symbols,
		startedAt: time.Now(),
	}
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/data", s.handleData)
	mux.HandleFunc("GET /api/coins/{symbol}", s.handleCoin)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// Start runs the HTTP server. Blocks until shutdown.
func (s *Server) Start() error {
	log.Printf("[INFO] http server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("[INFO] shutting down http server")
	return s.httpServer.Shutdown(ctx)
}

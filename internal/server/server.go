package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/agbru/primecalc/internal/logging"
)

// Server wraps the HTTP server carrying the metrics and health endpoints.
type Server struct {
	srv *http.Server
	log logging.Logger
}

// New builds a Server on the given listen address exposing /metrics and
// /healthz.
func New(addr string, m *Metrics, log logging.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", handleHealthz)

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}
}

// Start begins serving in a background goroutine. Listen errors other than
// a clean shutdown are logged; a sieve run never fails because its metrics
// endpoint could not bind.
func (s *Server) Start() {
	go func() {
		s.log.Info("metrics server listening", logging.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("metrics server failed", logging.Err(err))
		}
	}()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

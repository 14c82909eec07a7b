// Package opshttp serves the chat server's operational HTTP endpoints:
// /healthz for liveness checks and /metrics for Prometheus scraping. It
// follows infodancer-pop3d's pattern of a context-driven Start method
// running alongside the gRPC server in its own goroutine.
package opshttp

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server is the ops HTTP mux.
type Server struct {
	addr string
	mux  *chi.Mux
	http *http.Server
}

// New builds an ops Server listening on addr, exposing /healthz and a
// Prometheus handler at /metrics backed by reg.
func New(addr string, reg *prometheus.Registry) *Server {
	mux := chi.NewRouter()
	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return &Server{
		addr: addr,
		mux:  mux,
		http: &http.Server{Addr: addr, Handler: mux},
	}
}

// Start runs the HTTP server until ctx is canceled, then shuts it down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		_ = s.http.Shutdown(context.Background())
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

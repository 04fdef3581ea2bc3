// Package server exposes the pydex pipeline over HTTP: package metadata and
// mined usage examples as a small JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/pydex/pydex/pkg/metadata"
)

const shutdownTimeout = 10 * time.Second

// packageFetcher is the slice of the metadata service the server needs.
type packageFetcher interface {
	Fetch(ctx context.Context, name, version string, refresh bool) (*metadata.Package, error)
}

// Server serves package metadata and usage examples over HTTP.
type Server struct {
	fetcher packageFetcher
	logger  *log.Logger
	addr    string
}

// New creates a Server listening on addr once started.
func New(fetcher packageFetcher, addr string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{fetcher: fetcher, logger: logger, addr: addr}
}

// Handler builds the route tree. Exposed separately so tests can drive it
// through httptest without binding a port.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(s.recoverPanics)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/packages/{name}", s.handlePackage)
		r.Get("/packages/{name}/examples", s.handleExamples)
	})
	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully, draining in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.logger.Info("http server listening", "addr", s.addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("http server stopped")
	return nil
}

// Package server implements the `streemap serve` HTTP API.
//
// Routes:
//
//	GET  /healthz                   build information
//	GET  /v1/algorithms             available layout algorithms
//	POST /v1/layouts                compute and store a layout, 201 with Location
//	GET  /v1/layouts/{id}           fetch a stored layout
//	POST /v1/layouts/{id}/render    render a stored layout (?format=svg|png|json)
//	POST /v1/render                 compute and render in one call (?format=...)
//
// Request bodies carry a dataset inline or, when the server has a data
// directory, a relative path to a dataset file below it. Errors are JSON
// objects of the form {"error": {"code": "...", "message": "..."}}.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/streemap/pkg/pipeline"
)

const (
	// DefaultAddr is the listen address when none is configured.
	DefaultAddr = ":8080"

	// MaxBodyBytes bounds request bodies.
	MaxBodyBytes = pipeline.MaxDatasetBytes

	shutdownTimeout = 5 * time.Second
)

// Server serves the layout API on top of a pipeline runner.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	defaults pipeline.Options
	dataDir  string
	router   chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger (default: the runner's logger).
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// WithDefaults sets the options requests inherit from.
func WithDefaults(o pipeline.Options) Option { return func(s *Server) { s.defaults = o } }

// WithDataDir allows requests to name dataset files below dir.
func WithDataDir(dir string) Option { return func(s *Server) { s.dataDir = dir } }

// New returns a server using runner for all pipeline work. The runner's
// cache also stores layouts created through the API, so it should not be a
// NullCache.
func New(runner *pipeline.Runner, opts ...Option) *Server {
	s := &Server{runner: runner, logger: runner.Logger}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler for the API.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/algorithms", s.handleAlgorithms)
		r.Post("/layouts", s.handleCreateLayout)
		r.Get("/layouts/{id}", s.handleGetLayout)
		r.Post("/layouts/{id}/render", s.handleRenderLayout)
		r.Post("/render", s.handleRender)
	})
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

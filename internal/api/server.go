// Package api implements the HTTP render service.
//
// The service exposes the scene pipeline over HTTP so that non-Go clients
// can submit scene documents and receive rendered SVG. It shares the
// pipeline.Runner (and therefore the cache) with the CLI.
//
// # Endpoints
//
//   - POST /v1/render - render the scene document in the request body
//   - GET  /healthz   - liveness probe
//
// Render options are passed as query parameters: width, height, pretty,
// prefix. A prefix of "auto" generates a fresh unique prefix per request so
// that multiple rendered documents can be embedded in one page without ID
// collisions.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/scenesvg/pkg/pipeline"
)

// Server is the HTTP render service.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	http   *http.Server
}

// Options configures the service.
type Options struct {
	// Addr is the listen address, for example ":8080".
	Addr string

	// MaxSceneBytes caps the accepted request body size.
	// Zero means DefaultMaxSceneBytes.
	MaxSceneBytes int64
}

// DefaultMaxSceneBytes is the default request body limit.
const DefaultMaxSceneBytes = 8 << 20 // 8 MiB

// NewServer creates a render service backed by the given runner.
// If logger is nil, the runner's logger is used.
func NewServer(runner *pipeline.Runner, logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	if opts.MaxSceneBytes == 0 {
		opts.MaxSceneBytes = DefaultMaxSceneBytes
	}

	s := &Server{
		runner: runner,
		logger: logger,
	}
	s.http = &http.Server{
		Addr:         opts.Addr,
		Handler:      s.router(opts.MaxSceneBytes),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// router builds the chi route tree with the service middleware stack.
func (s *Server) router(maxBody int64) http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(s.recoverPanics)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.With(limitBody(maxBody)).Post("/render", s.handleRender)
	})

	return r
}

// ListenAndServe runs the service until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("render service listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down render service")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// Handler exposes the route tree for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// limitBody caps the request body size.
func limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}

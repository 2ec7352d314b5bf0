// If you are AI: This file implements the HTTP server lifecycle and routing.

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"sprocket/internal/config"
	"sprocket/internal/pipeline"
	"sprocket/internal/svc/health"
	"sprocket/internal/svc/wsrelay"
)

// Server wraps the HTTP servers and pipeline graph for the process.
type Server struct {
	healthServer  *http.Server
	previewServer *http.Server
	healthSvc     *health.Service
	previewSvc    *wsrelay.Service
	graph         *pipeline.Graph
}

// New creates a new server instance with the given configuration and a
// pipeline graph already populated with components. sinks maps
// component IDs to the wsrelay sinks that should be reachable over the
// preview websocket endpoint. The server is not started until Start
// is called.
func New(cfg *config.Config, graph *pipeline.Graph, sinks map[string]*wsrelay.Sink) *Server {
	healthMux := http.NewServeMux()
	healthSvc := health.New()
	healthSvc.RegisterRoutes(healthMux)

	previewMux := http.NewServeMux()
	previewSvc := wsrelay.NewService(sinks)
	previewSvc.RegisterRoutes(previewMux)

	return &Server{
		healthServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.HealthPort),
			Handler: healthMux,
		},
		previewServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.PreviewPort),
			Handler: previewMux,
		},
		healthSvc:  healthSvc,
		previewSvc: previewSvc,
		graph:      graph,
	}
}

// Start starts the pipeline graph and begins serving HTTP requests on
// both the health and preview ports. It blocks until one of the HTTP
// servers stops or encounters an error.
func (s *Server) Start(ctx context.Context) error {
	if err := s.graph.Start(ctx); err != nil {
		return fmt.Errorf("start pipeline graph: %w", err)
	}

	errCh := make(chan error, 2)
	go func() { errCh <- s.healthServer.ListenAndServe() }()
	go func() { errCh <- s.previewServer.ListenAndServe() }()

	return <-errCh
}

// Shutdown gracefully stops the HTTP servers and the pipeline graph.
// Returns the first error encountered, if any.
func (s *Server) Shutdown(ctx context.Context) error {
	var firstErr error
	if err := s.healthServer.Shutdown(ctx); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := s.previewServer.Shutdown(ctx); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := s.graph.Stop(ctx); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// ShutdownWithTimeout stops the server with a fixed 5-second timeout.
// This is a convenience wrapper around Shutdown.
func (s *Server) ShutdownWithTimeout() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}

// If you are AI: This file provides the wsrelay service's HTTP route integration.

package wsrelay

import "net/http"

// Service wires the preview websocket handler into the main HTTP server.
type Service struct {
	handler *Handler
}

// NewService creates a Service serving the given sinks, keyed by component ID.
func NewService(sinks map[string]*Sink) *Service {
	return &Service{handler: NewHandler(sinks)}
}

// RegisterRoutes registers the preview websocket route on mux.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	s.handler.RegisterRoutes(mux)
}

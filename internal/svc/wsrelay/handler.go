// If you are AI: This file implements the WebSocket handler that upgrades preview
// connections and attaches them to a Sink. Adapted from the teacher's wsflv handler.

package wsrelay

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

// Handler upgrades preview requests and attaches each connection to
// the Sink named in the URL path.
type Handler struct {
	sinks    map[string]*Sink
	upgrader websocket.Upgrader
}

// NewHandler creates a Handler serving the given sinks, keyed by component ID.
func NewHandler(sinks map[string]*Sink) *Handler {
	return &Handler{
		sinks: sinks,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP handles GET /ws/{sinkID} by upgrading to a websocket and
// attaching the connection to the named sink until it disconnects.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	sinkID := strings.TrimPrefix(r.URL.Path, "/ws/")
	if sinkID == r.URL.Path || sinkID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sink, ok := h.sinks[sinkID]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	detach := sink.Attach(conn)
	defer detach()

	// Block on reads purely to detect client disconnect; the sink's
	// write loop is what actually delivers data to this connection.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// RegisterRoutes registers the preview websocket route on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/ws/", h.ServeHTTP)
}

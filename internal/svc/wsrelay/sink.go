// If you are AI: This file implements Sink, a pipeline.Component that fans a CommandFifo's
// media commands out to connected websocket clients, demonstrating an outer collaborator
// consuming the command-fifo core. Adapted from the teacher's wsflv subscriber loop.

package wsrelay

import (
	"context"
	"sync"

	"sprocket/internal/pipeline"
	"sprocket/internal/status"
	"sprocket/pkg/command"
	"sprocket/pkg/media"

	"github.com/gorilla/websocket"
)

// Sink reads Commands from an upstream CommandFifo and writes their
// media payload to every attached websocket client as a binary frame.
// A client whose send queue is full misses that payload rather than
// blocking the fifo's consumer loop; the client stays attached.
type Sink struct {
	pipeline.Base
	in *command.Fifo

	mu      sync.Mutex
	clients map[*websocketClient]struct{}

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

type websocketClient struct {
	conn *websocket.Conn
	out  chan []byte
}

// NewSink creates a Sink reading Commands from in.
func NewSink(id string, in *command.Fifo) *Sink {
	return &Sink{
		Base:    pipeline.NewBase(id, []pipeline.Port{{Name: "in", Kind: pipeline.PortIn, Media: pipeline.MediaAny}}),
		in:      in,
		clients: make(map[*websocketClient]struct{}),
	}
}

// Attach registers a websocket connection to receive future commands.
// The returned function detaches it.
func (s *Sink) Attach(conn *websocket.Conn) func() {
	client := &websocketClient{conn: conn, out: make(chan []byte, 64)}

	s.mu.Lock()
	s.clients[client] = struct{}{}
	s.mu.Unlock()

	go client.writeLoop()

	return func() {
		s.mu.Lock()
		delete(s.clients, client)
		s.mu.Unlock()
		close(client.out)
	}
}

// writeLoop delivers queued payloads to the client until its channel is closed.
func (c *websocketClient) writeLoop() {
	for payload := range c.out {
		if err := c.conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
			return
		}
	}
}

// Prepare is a no-op; the fifo and client map are ready at construction.
func (s *Sink) Prepare(ctx context.Context) error { return nil }

// Start launches the consumer goroutine that drains s.in until flow
// is disabled, fanning each command's payload bytes out to clients.
func (s *Sink) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-runCtx.Done():
				return
			default:
			}

			cmd, st := s.in.Read()
			if st != status.OK {
				return
			}
			s.broadcast(cmd)
			cmd.Release()
		}
	}()
	return nil
}

// broadcast fans cmd's payload bytes out to every attached client, skipping clients whose queue is full.
func (s *Sink) broadcast(cmd *command.Command) {
	data, ok := payloadBytes(cmd)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for client := range s.clients {
		select {
		case client.out <- data:
		default:
			// Client too slow: drop this frame rather than block the fifo.
		}
	}
}

// payloadBytes extracts the raw bytes from a Command's media payload,
// if any; non-media commands (Flush, EndOfStream, Seek, Config) have no
// byte payload and are not forwarded to clients.
func payloadBytes(cmd *command.Command) ([]byte, bool) {
	switch p := cmd.Payload.(type) {
	case *media.Frame:
		return p.Data, true
	case *media.Packet:
		return p.Data, true
	default:
		return nil, false
	}
}

// Pause is a no-op; websocket fanout has no paused state distinct from stopped.
func (s *Sink) Pause(ctx context.Context) error { return nil }

// Stop cancels the consumer goroutine, waits for it to exit, and
// releases any commands left buffered in the upstream fifo.
func (s *Sink) Stop(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}
	s.in.SetFlowEnabled(false) // wakes a blocked Read so the loop observes ctx.Done()
	s.wg.Wait()
	s.in.Close() // safe only once the consumer goroutine has stopped reading

	s.mu.Lock()
	defer s.mu.Unlock()
	for client := range s.clients {
		close(client.out)
	}
	s.clients = make(map[*websocketClient]struct{})
	return nil
}

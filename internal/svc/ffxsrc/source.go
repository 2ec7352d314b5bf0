// If you are AI: This file implements Source, a pipeline.Component wrapping an ffx.Input,
// pumping demuxed packets into a downstream CommandFifo. Adapted from the teacher's
// relay pull task, which ran the same read-loop-until-error shape against an RTMP source.

package ffxsrc

import (
	"context"
	"fmt"
	"log"
	"sync"

	"sprocket/internal/ffx"
	"sprocket/internal/pipeline"
	"sprocket/pkg/command"
)

// Source reads packets from an FFmpeg input and writes them, wrapped
// as Commands, to a downstream CommandFifo. It ends the fifo with an
// EndOfStream sentinel when the input is exhausted or errors.
type Source struct {
	pipeline.Base
	url  string
	pool *command.Pool
	out  *command.Fifo

	input  *ffx.Input
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSource creates a Source that reads from url and writes to out,
// acquiring Commands from pool.
func NewSource(id, url string, pool *command.Pool, out *command.Fifo) *Source {
	return &Source{
		Base: pipeline.NewBase(id, []pipeline.Port{{Name: "out", Kind: pipeline.PortOut, Media: pipeline.MediaPacket}}),
		url:  url,
		pool: pool,
		out:  out,
	}
}

// Prepare opens the FFmpeg input context.
func (s *Source) Prepare(ctx context.Context) error {
	in, err := ffx.NewInput(s.url)
	if err != nil {
		return fmt.Errorf("ffxsrc: open input %q: %w", s.url, err)
	}
	s.input = in
	return nil
}

// Start launches the read loop that pumps packets downstream until
// the input errors, is exhausted, or ctx is cancelled.
func (s *Source) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
	return nil
}

// run reads packets and writes them downstream until ctx is cancelled or the input errors.
func (s *Source) run(ctx context.Context) {
	defer s.wg.Done()
	defer command.WriteEndOfStream(s.out, s.pool)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pkt, err := s.input.ReadPacket()
		if err != nil {
			log.Printf("ffxsrc: %s: read packet: %v", s.ID(), err)
			return
		}

		cmd := command.NewPacketCommand(s.pool, pkt)
		if cmd == nil {
			pkt.Release() // pool exhausted: drop this packet rather than block
			continue
		}
		if st := s.out.Write(cmd); !st.Ok() {
			cmd.Release()
		}
	}
}

// Pause is a no-op; a source's only paused state is being stopped.
func (s *Source) Pause(ctx context.Context) error { return nil }

// Stop cancels the read loop, waits for it to exit, and closes the input.
func (s *Source) Stop(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	if s.input != nil {
		return s.input.Close()
	}
	return nil
}

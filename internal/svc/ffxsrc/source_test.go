// If you are AI: This file tests Source's stub-input read loop and shutdown behavior.

package ffxsrc

import (
	"context"
	"testing"
	"time"

	"sprocket/internal/ring"
	"sprocket/pkg/command"
)

func TestSourceEndsWithEndOfStreamWhenInputUnavailable(t *testing.T) {
	pool := command.NewPool(0)
	out := command.NewFifo(command.FifoOptions{Capacity: 4, Mode: ring.SPSC})
	src := NewSource("src", "rtsp://example.invalid/stream", pool, out)

	if err := src.Prepare(context.Background()); err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if err := src.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	cmd, st := out.Read()
	if !st.Ok() {
		t.Fatalf("Read() status = %v, want OK", st)
	}
	defer cmd.Release()
	if cmd.Type != command.EndOfStream {
		t.Fatalf("cmd.Type = %v, want EndOfStream", cmd.Type)
	}

	done := make(chan error, 1)
	go func() { done <- src.Stop(context.Background()) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Stop() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Stop() did not return")
	}
}

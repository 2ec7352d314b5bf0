// If you are AI: This file tests CommandFifo ownership transfer, sentinel draining, and Close.

package command

import (
	"testing"

	"sprocket/internal/ring"
	"sprocket/internal/status"
)

func TestWriteReadTransfersOwnership(t *testing.T) {
	pool := NewPool(0)
	cf := NewFifo(FifoOptions{Capacity: 4, Mode: ring.SPSC})

	cmd := pool.Acquire()
	cmd.Type = Frame
	cmd.PTS = 42

	if st := cf.Write(cmd); st != status.OK {
		t.Fatalf("Write() = %v, want OK", st)
	}

	got, st := cf.Read()
	if st != status.OK {
		t.Fatalf("Read() status = %v, want OK", st)
	}
	if got != cmd || got.PTS != 42 {
		t.Fatalf("Read() returned a different command than written")
	}
	got.Release()

	if got := pool.InUseCount(); got != 0 {
		t.Fatalf("InUseCount() after Release = %d, want 0", got)
	}
}

// S3: an EndOfStream sentinel drains a consumer even after flow is disabled.
func TestEndOfStreamThenFlowDisabled(t *testing.T) {
	pool := NewPool(0)
	cf := NewFifo(FifoOptions{Capacity: 4, Mode: ring.SPSC})

	frame := pool.Acquire()
	frame.Type = Frame
	cf.Write(frame)

	if st := WriteEndOfStream(cf, pool); st != status.OK {
		t.Fatalf("WriteEndOfStream() = %v, want OK", st)
	}

	first, st := cf.Read()
	if st != status.OK || first.Type != Frame {
		t.Fatalf("first Read() = %v, %v, want Frame, OK", first.Type, st)
	}
	first.Release()

	second, st := cf.Read()
	if st != status.OK || second.Type != EndOfStream {
		t.Fatalf("second Read() = %v, %v, want EndOfStream, OK", second.Type, st)
	}
	second.Release()

	if _, st := cf.Read(); st != status.FlowDisabled {
		t.Fatalf("Read() after EndOfStream drained = %v, want FlowDisabled", st)
	}
}

func TestCloseReleasesRemainingCommands(t *testing.T) {
	pool := NewPool(0)
	cf := NewFifo(FifoOptions{Capacity: 4, Mode: ring.SPSC})

	for i := 0; i < 3; i++ {
		cmd := pool.Acquire()
		cmd.Type = Packet
		cf.Write(cmd)
	}
	if got := pool.InUseCount(); got != 3 {
		t.Fatalf("InUseCount() before Close = %d, want 3", got)
	}

	cf.Close()

	if got := pool.InUseCount(); got != 0 {
		t.Fatalf("InUseCount() after Close = %d, want 0", got)
	}
	if got := pool.FreeCount(); got != 3 {
		t.Fatalf("FreeCount() after Close = %d, want 3", got)
	}
}

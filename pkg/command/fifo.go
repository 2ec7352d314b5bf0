// If you are AI: This file wraps a waitable fifo of *Command with ownership-transfer
// semantics: writing gives the fifo the caller's reference, reading gives it to the
// caller. Draining releases every Command left behind when the fifo is torn down.

package command

import (
	"time"

	"sprocket/internal/fifo"
	"sprocket/internal/ring"
	"sprocket/internal/status"
)

// Fifo is a WaitableFifo specialized for *Command with ownership
// transfer and end-of-stream draining.
type Fifo struct {
	f *fifo.Fifo[*Command]
}

// FifoOptions configures a new Fifo.
type FifoOptions struct {
	Capacity int
	Mode     ring.Mode
}

// NewFifo creates a Command fifo. Reads are always gated by a
// semaphore: a CommandFifo consumer always waits for the next command
// rather than polling, matching the pipeline's push-driven design.
func NewFifo(opts FifoOptions) *Fifo {
	return &Fifo{f: fifo.New[*Command](fifo.Options{
		Capacity:  opts.Capacity,
		Mode:      opts.Mode,
		GateReads: true,
	})}
}

// Write transfers ownership of cmd into the fifo. On any non-OK
// status the caller retains ownership and must Release cmd itself.
func (cf *Fifo) Write(cmd *Command) status.Status {
	return cf.f.Write(cmd)
}

// WriteTimed is Write bounded by d.
func (cf *Fifo) WriteTimed(cmd *Command, d time.Duration) status.Status {
	return cf.f.WriteTimed(cmd, d)
}

// TryWrite is the non-blocking form of Write.
func (cf *Fifo) TryWrite(cmd *Command) status.Status {
	return cf.f.TryWrite(cmd)
}

// Preempt inserts cmd at the head of the fifo.
func (cf *Fifo) Preempt(cmd *Command) status.Status {
	return cf.f.Preempt(cmd)
}

// Read blocks until a Command is available or flow is disabled. The
// caller owns the returned Command and must Release it.
func (cf *Fifo) Read() (*Command, status.Status) {
	return cf.f.Read()
}

// ReadTimed is Read bounded by d.
func (cf *Fifo) ReadTimed(d time.Duration) (*Command, status.Status) {
	return cf.f.ReadTimed(d)
}

// TryRead is the non-blocking form of Read.
func (cf *Fifo) TryRead() (*Command, status.Status) {
	return cf.f.TryRead()
}

// SetFlowEnabled toggles blocking behavior; see fifo.Fifo.SetFlowEnabled.
func (cf *Fifo) SetFlowEnabled(enabled bool) {
	cf.f.SetFlowEnabled(enabled)
}

// FlowEnabled reports whether flow is currently enabled.
func (cf *Fifo) FlowEnabled() bool {
	return cf.f.FlowEnabled()
}

// Count returns the current occupancy.
func (cf *Fifo) Count() int {
	return cf.f.Count()
}

// Close disables flow, then reads and Releases every Command left in
// the fifo. It is safe to call once, after all producers and
// consumers have stopped touching the fifo.
func (cf *Fifo) Close() {
	cf.f.SetFlowEnabled(false)
	for {
		cmd, st := cf.f.TryRead()
		if st != status.OK {
			return
		}
		cmd.Release()
	}
}

// WriteEndOfStream writes an EndOfStream sentinel Command acquired
// from pool, then disables flow so downstream readers unblock once
// they observe it.
func WriteEndOfStream(cf *Fifo, pool *Pool) status.Status {
	cmd := pool.Acquire()
	if cmd == nil {
		return status.FifoFull
	}
	cmd.Type = EndOfStream
	st := cf.Write(cmd)
	cf.SetFlowEnabled(false)
	return st
}

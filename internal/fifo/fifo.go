// If you are AI: This file implements the waitable fifo: a ring buffer gated by write/read
// semaphores, with flow-enable and a specific wake-once-per-side protocol on disable.

package fifo

import (
	"sync/atomic"
	"time"

	"sprocket/internal/ring"
	"sprocket/internal/semaphore"
	"sprocket/internal/status"
)

// Fifo is a bounded, thread-safe queue of T that blocks writers when
// full and, if configured with a read semaphore, blocks readers when
// empty. Disabling flow wakes any single waiter currently blocked on
// a full-or-empty ring exactly once per side, mirroring the original
// waitable fifo's shutdown contract.
type Fifo[T any] struct {
	ring *ring.Ring[T]

	writeSem *semaphore.Semaphore
	readSem  *semaphore.Semaphore // nil if this fifo does not gate reads

	flowEnabled atomic.Bool
	hasBeenRead atomic.Bool
}

// Options configures a new Fifo.
type Options struct {
	Capacity    int
	Mode        ring.Mode
	GateReads   bool // if true, readers block via a read semaphore when empty
	HeadMonitor func()
	HighMark    int
	LowMark     int
	OnHighMark  func()
	OnLowMark   func()
}

// New creates a Fifo with the given options.
func New[T any](opts Options) *Fifo[T] {
	r := ring.New[T](opts.Capacity, opts.Mode)
	if opts.HeadMonitor != nil {
		r.SetHeadMonitor(opts.HeadMonitor)
	}
	if opts.HighMark > 0 || opts.LowMark > 0 {
		r.SetWaterMarks(opts.HighMark, opts.LowMark, opts.OnHighMark, opts.OnLowMark)
	}

	f := &Fifo[T]{
		ring:     r,
		writeSem: semaphore.New(opts.Capacity),
	}
	if opts.GateReads {
		f.readSem = semaphore.New(0)
	}
	f.flowEnabled.Store(true)
	return f
}

// SetFlowEnabled toggles whether writers and readers may block. When
// disabled transitions to false while the ring is exactly full, the
// write semaphore is posted once, waking a single blocked writer;
// write() re-checks flowEnabled immediately after waking and returns
// FlowDisabled instead of proceeding. Symmetrically, if the ring is
// exactly empty and reads are gated, the read semaphore is posted once
// to wake a single blocked reader the same way.
//
// A single Post (not a Post-then-Reset pair) is deliberate: reusing the
// same semaphore's count to both wake a waiter and guarantee no permit
// is left behind cannot be done atomically through two separate lock
// acquisitions, since the woken waiter reacquires the lock on its own
// schedule and a second operation could zero the count out from under
// it before it gets there. A lone Post never races against itself: the
// permit sits at 1 until whoever consumes it, whenever that happens,
// and a spurious leftover permit (no one was actually waiting) only
// ever costs one later caller an extra FifoFull/Timeout result instead
// of blocking, since completeWrite/completeRead re-check ring occupancy
// before touching it. Reset remains on Semaphore for callers that want
// it, but the fifo's own shutdown path does not use it.
func (f *Fifo[T]) SetFlowEnabled(enabled bool) {
	wasEnabled := f.flowEnabled.Swap(enabled)
	if wasEnabled == enabled || enabled {
		return
	}

	if f.ring.Len() == f.ring.Cap() {
		f.writeSem.Post()
	}
	if f.readSem != nil && f.ring.Len() == 0 {
		f.readSem.Post()
	}
}

// FlowEnabled reports whether flow is currently enabled.
func (f *Fifo[T]) FlowEnabled() bool {
	return f.flowEnabled.Load()
}

// Write blocks until space is available or flow is disabled, then
// pushes v onto the tail.
func (f *Fifo[T]) Write(v T) status.Status {
	return f.write(v, false, func() { f.writeSem.Wait() })
}

// WriteTimed blocks until space is available, d elapses, or flow is
// disabled, whichever comes first.
func (f *Fifo[T]) WriteTimed(v T, d time.Duration) status.Status {
	if !f.flowEnabled.Load() {
		return status.FlowDisabled
	}
	if !f.writeSem.WaitTimed(d) {
		return status.Timeout
	}
	if !f.flowEnabled.Load() {
		return status.FlowDisabled
	}
	return f.completeWrite(v, false)
}

// TryWrite pushes v without blocking, returning FifoFull if there is
// no space.
func (f *Fifo[T]) TryWrite(v T) status.Status {
	if !f.flowEnabled.Load() {
		return status.FlowDisabled
	}
	if !f.writeSem.TryWait() {
		return status.FifoFull
	}
	return f.completeWrite(v, false)
}

// Preempt behaves like Write but inserts v at the head instead of the
// tail, so it is the next element read.
func (f *Fifo[T]) Preempt(v T) status.Status {
	return f.write(v, true, func() { f.writeSem.Wait() })
}

// write is the shared body of Write and Preempt: check flow, wait, recheck flow, push.
func (f *Fifo[T]) write(v T, atHead bool, wait func()) status.Status {
	if !f.flowEnabled.Load() {
		return status.FlowDisabled
	}
	wait()
	if !f.flowEnabled.Load() {
		return status.FlowDisabled
	}
	return f.completeWrite(v, atHead)
}

// completeWrite pushes v into the ring and posts the read semaphore on success.
func (f *Fifo[T]) completeWrite(v T, atHead bool) status.Status {
	var pushed bool
	if atHead {
		pushed = f.ring.Preempt(v)
	} else {
		pushed = f.ring.Push(v)
	}
	if !pushed {
		return status.FifoFull
	}
	if f.readSem != nil {
		f.readSem.Post()
	}
	return status.OK
}

// Read blocks until data is available or flow is disabled, then pops
// the head element.
func (f *Fifo[T]) Read() (v T, st status.Status) {
	return f.read(func() bool {
		if f.readSem != nil {
			f.readSem.Wait()
			return true
		}
		return true
	})
}

// ReadTimed blocks until data is available, d elapses, or flow is
// disabled, whichever comes first.
func (f *Fifo[T]) ReadTimed(d time.Duration) (v T, st status.Status) {
	return f.read(func() bool {
		if f.readSem != nil {
			return f.readSem.WaitTimed(d)
		}
		return true
	})
}

// TryRead pops the head element without blocking, returning Timeout
// if the fifo was empty. Timeout doubles as the "no data available"
// code here, matching the original non-blocking read contract.
func (f *Fifo[T]) TryRead() (v T, st status.Status) {
	if f.readSem != nil {
		if !f.readSem.TryWait() {
			return v, status.Timeout
		}
	}
	return f.completeRead()
}

// read is the shared body of Read and ReadTimed: check flow, wait, recheck flow, pop.
func (f *Fifo[T]) read(wait func() bool) (v T, st status.Status) {
	if !f.flowEnabled.Load() && f.ring.Len() == 0 {
		return v, status.FlowDisabled
	}
	if !wait() {
		return v, status.Timeout
	}
	if !f.flowEnabled.Load() && f.ring.Len() == 0 {
		return v, status.FlowDisabled
	}
	return f.completeRead()
}

// completeRead pops from the ring and posts the write semaphore on success.
func (f *Fifo[T]) completeRead() (v T, st status.Status) {
	popped, ok := f.ring.Pop()
	if !ok {
		return v, status.Timeout
	}
	f.writeSem.Post()
	f.hasBeenRead.Store(true)
	return popped, status.OK
}

// Count returns the current occupancy.
func (f *Fifo[T]) Count() int {
	return f.ring.Len()
}

// Cap returns the fifo's capacity.
func (f *Fifo[T]) Cap() int {
	return f.ring.Cap()
}

// HasBeenRead reports whether any element has ever been successfully read.
func (f *Fifo[T]) HasBeenRead() bool {
	return f.hasBeenRead.Load()
}

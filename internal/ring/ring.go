// If you are AI: This file implements the bounded circular buffer underneath the waitable fifo.
// CRITICAL: capacity is stored as cap+1 slots so head can catch tail exactly on full vs empty,
// matching the preempt-at-head semantics the waitable fifo needs.

package ring

import (
	"sync"
	"sync/atomic"
)

// Mode selects the concurrency strategy used to guard head/tail/count.
type Mode uint8

const (
	// SPSC assumes exactly one producer goroutine and one consumer
	// goroutine and uses lock-free atomics with acquire/release ordering.
	SPSC Mode = iota
	// MPMC allows any number of producer and consumer goroutines and
	// guards the buffer with a single mutex.
	MPMC
)

// Ring is a bounded circular buffer of T. Mode is fixed at construction;
// there is no setter, so switching between SPSC and MPMC after New is a
// compile-time impossibility rather than a documented restriction.
type Ring[T any] struct {
	buf  []T
	mode Mode

	// SPSC path: lock-free, atomic head/tail/count.
	head atomic.Uint64
	tail atomic.Uint64
	cnt  atomic.Int64

	// MPMC path: same roles, guarded by mu instead of atomics.
	mu     sync.Mutex
	naHead uint64
	naTail uint64
	naCnt  int64

	headMonitor func()

	wmMu    sync.Mutex
	high    int
	low     int
	onHigh  func()
	onLow   func()
}

// New creates a ring of the given capacity (number of elements it can
// hold before being considered full) operating in the given mode.
func New[T any](capacity int, mode Mode) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{
		buf:  make([]T, capacity+1),
		mode: mode,
	}
}

// Cap returns the number of elements the ring can hold.
func (r *Ring[T]) Cap() int {
	return len(r.buf) - 1
}

// SetHeadMonitor installs a callback fired on an empty-to-non-empty
// push transition, and on any pop that leaves the ring non-empty.
// It runs on the pushing or popping goroutine after the MPMC mutex has
// been released. The callback must not call back into this ring: in
// SPSC mode that breaks the single-producer/single-consumer contract.
func (r *Ring[T]) SetHeadMonitor(fn func()) {
	r.headMonitor = fn
}

// SetWaterMarks installs callbacks fired when occupancy crosses the
// given thresholds: onHigh when a push makes occupancy reach high+1,
// onLow when a pop makes occupancy fall to low-1.
func (r *Ring[T]) SetWaterMarks(high, low int, onHigh, onLow func()) {
	r.wmMu.Lock()
	defer r.wmMu.Unlock()
	r.high, r.low = high, low
	r.onHigh, r.onLow = onHigh, onLow
}

// increment advances a slot index by one, wrapping at the end of buf.
func (r *Ring[T]) increment(i uint64) uint64 {
	i++
	if i == uint64(len(r.buf)) {
		i = 0
	}
	return i
}

// Push appends v at the tail. Returns false if the ring is full.
func (r *Ring[T]) Push(v T) bool {
	if r.mode == SPSC {
		return r.pushSPSC(v, false)
	}
	return r.pushMPMC(v, false)
}

// Preempt inserts v at the head, so it is the next element popped.
// Returns false if the ring is full.
func (r *Ring[T]) Preempt(v T) bool {
	if r.mode == SPSC {
		return r.pushSPSC(v, true)
	}
	return r.pushMPMC(v, true)
}

// pushSPSC is the lock-free single-producer push path shared by Push and Preempt.
func (r *Ring[T]) pushSPSC(v T, atHead bool) bool {
	cap := int64(len(r.buf) - 1)
	pre := r.cnt.Load()
	if pre >= cap {
		return false
	}

	if atHead {
		h := r.head.Load()
		h = r.decrement(h)
		r.buf[h] = v
		r.head.Store(h)
	} else {
		t := r.tail.Load()
		r.buf[t] = v
		r.tail.Store(r.increment(t))
	}

	post := r.cnt.Add(1)
	r.fireOnPush(pre, post)
	return true
}

// pushMPMC is the mutex-guarded multi-producer push path shared by Push and Preempt.
func (r *Ring[T]) pushMPMC(v T, atHead bool) bool {
	r.mu.Lock()
	cap := int64(len(r.buf) - 1)
	pre := r.naCnt
	if pre >= cap {
		r.mu.Unlock()
		return false
	}

	if atHead {
		r.naHead = r.decrement(r.naHead)
		r.buf[r.naHead] = v
	} else {
		r.buf[r.naTail] = v
		r.naTail = r.increment(r.naTail)
	}
	r.naCnt++
	post := r.naCnt
	r.mu.Unlock()

	r.fireOnPush(pre, post)
	return true
}

// decrement moves a slot index back by one, wrapping before the start of buf.
func (r *Ring[T]) decrement(i uint64) uint64 {
	if i == 0 {
		return uint64(len(r.buf) - 1)
	}
	return i - 1
}

// Pop removes and returns the element at the head. ok is false if the
// ring was empty.
func (r *Ring[T]) Pop() (v T, ok bool) {
	if r.mode == SPSC {
		return r.popSPSC()
	}
	return r.popMPMC()
}

// popSPSC is the lock-free single-consumer pop path used by Pop.
func (r *Ring[T]) popSPSC() (v T, ok bool) {
	pre := r.cnt.Load()
	if pre == 0 {
		return v, false
	}
	h := r.head.Load()
	v = r.buf[h]
	var zero T
	r.buf[h] = zero
	r.head.Store(r.increment(h))
	post := r.cnt.Add(-1)
	r.fireOnPop(pre, post)
	return v, true
}

// popMPMC is the mutex-guarded multi-consumer pop path used by Pop.
func (r *Ring[T]) popMPMC() (v T, ok bool) {
	r.mu.Lock()
	pre := r.naCnt
	if pre == 0 {
		r.mu.Unlock()
		return v, false
	}
	v = r.buf[r.naHead]
	var zero T
	r.buf[r.naHead] = zero
	r.naHead = r.increment(r.naHead)
	r.naCnt--
	post := r.naCnt
	r.mu.Unlock()
	r.fireOnPop(pre, post)
	return v, true
}

// fireOnPush runs the head monitor when a push transitions the ring
// from empty to non-empty, and runs the high water-mark callback when
// the post-push count crosses high+1 upward.
func (r *Ring[T]) fireOnPush(pre, post int64) {
	if pre == 0 && r.headMonitor != nil {
		r.headMonitor()
	}
	r.wmMu.Lock()
	high, onHigh := r.high, r.onHigh
	r.wmMu.Unlock()
	if onHigh != nil && high > 0 && post == int64(high)+1 {
		onHigh()
	}
}

// fireOnPop runs the head monitor when a pop leaves the ring
// non-empty, and runs the low water-mark callback when the post-pop
// count crosses low-1 downward.
func (r *Ring[T]) fireOnPop(pre, post int64) {
	if post != 0 && r.headMonitor != nil {
		r.headMonitor()
	}
	r.wmMu.Lock()
	low, onLow := r.low, r.onLow
	r.wmMu.Unlock()
	if onLow != nil && post == int64(low)-1 {
		onLow()
	}
}

// Len returns the current occupancy.
func (r *Ring[T]) Len() int {
	if r.mode == SPSC {
		return int(r.cnt.Load())
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return int(r.naCnt)
}

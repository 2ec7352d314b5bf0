// If you are AI: This file implements a counting semaphore used to gate fifo write/read space.

package semaphore

import (
	"sync"
	"time"
)

// Semaphore is a classic counting semaphore: Post increments the count
// and wakes one waiter, Wait blocks until the count is positive then
// decrements it. Unlike a raw channel-based semaphore, Reset can drain
// the count and wake every blocked waiter in one step.
type Semaphore struct {
	mu    sync.Mutex
	cond  *sync.Cond
	count int
}

// New creates a semaphore with the given initial count.
func New(initial int) *Semaphore {
	s := &Semaphore{count: initial}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Post increments the count and wakes one waiter, if any.
func (s *Semaphore) Post() {
	s.mu.Lock()
	s.count++
	s.mu.Unlock()
	s.cond.Signal()
}

// Wait blocks until the count is positive, then decrements it.
func (s *Semaphore) Wait() {
	s.mu.Lock()
	for s.count == 0 {
		s.cond.Wait()
	}
	s.count--
	s.mu.Unlock()
}

// TryWait decrements the count and returns true if it was already
// positive, or returns false immediately without blocking.
func (s *Semaphore) TryWait() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == 0 {
		return false
	}
	s.count--
	return true
}

// WaitTimed blocks until the count is positive or d elapses, whichever
// comes first. Returns true if it acquired the semaphore.
//
// sync.Cond has no native timeout, so waiting is driven by a helper
// goroutine that broadcasts once the deadline passes; the woken waiter
// re-checks count under the lock exactly like Wait does.
func (s *Semaphore) WaitTimed(d time.Duration) bool {
	if d <= 0 {
		return s.TryWait()
	}

	timer := time.AfterFunc(d, s.cond.Broadcast)
	defer timer.Stop()

	deadline := time.Now().Add(d)
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.count == 0 {
		if !time.Now().Before(deadline) {
			return false
		}
		s.cond.Wait()
	}
	s.count--
	return true
}

// Reset drops the count to zero and wakes every waiter, which then
// re-observe count == 0 and block again unless woken for another
// reason. The count is zeroed under the mutex in one step rather than
// by looping TryWait until it fails. The fifo package's flow-disable
// path does not call Reset; it uses a single Post.
func (s *Semaphore) Reset() {
	s.mu.Lock()
	s.count = 0
	s.mu.Unlock()
	s.cond.Broadcast()
}

// Count returns the current count. Intended for tests and diagnostics.
func (s *Semaphore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

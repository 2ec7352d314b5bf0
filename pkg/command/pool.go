// If you are AI: This file implements Pool, an explicit free-list allocator for Command.
// Unlike sync.Pool it exposes exact total/free/in-use counts and an optional hard cap,
// which the pool accounting contract requires and sync.Pool cannot provide.

package command

import (
	"sync"

	"github.com/google/uuid"
)

// Pool hands out Commands with an initial reference count of 1 and
// takes them back once their count drops to zero.
type Pool struct {
	mu       sync.Mutex
	freeList *Command // head of the free list, linked through Command.next
	total    int
	inUse    int
	maxSize  int // 0 means uncapped
}

// NewPool creates a pool. maxSize caps the number of Commands the pool
// will ever construct; 0 means uncapped.
func NewPool(maxSize int) *Pool {
	return &Pool{maxSize: maxSize}
}

// Acquire returns a Command with refcount 1, either reused from the
// free list or newly allocated. It returns nil if the pool is capped
// and already at capacity with nothing free — callers must not block,
// matching the spec's "pool exhaustion returns nil, never blocks"
// contract, since blocking here could deadlock a producer against its
// own downstream consumer.
func (p *Pool) Acquire() *Command {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.freeList != nil {
		cmd := p.freeList
		p.freeList = cmd.next
		cmd.next = nil
		p.inUse++
		cmd.refcount.Init(1)
		cmd.TraceID = uuid.NewString()
		return cmd
	}

	if p.maxSize > 0 && p.total >= p.maxSize {
		return nil
	}

	cmd := &Command{pool: p, TraceID: uuid.NewString()}
	cmd.refcount.Init(1)
	p.total++
	p.inUse++
	return cmd
}

// free returns cmd to the free list. Called by Command.Release when
// its refcount reaches zero.
func (p *Pool) free(cmd *Command) {
	p.mu.Lock()
	defer p.mu.Unlock()
	cmd.next = p.freeList
	p.freeList = cmd
	p.inUse--
}

// TotalCount returns the number of Commands this pool has ever
// allocated, in use or not.
func (p *Pool) TotalCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// FreeCount returns the number of Commands currently on the free list.
func (p *Pool) FreeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total - p.inUse
}

// InUseCount returns the number of Commands currently checked out.
func (p *Pool) InUseCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inUse
}

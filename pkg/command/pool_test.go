// If you are AI: This file tests Pool acquire/release accounting and the capped-pool contract.

package command

import (
	"testing"

	"sprocket/pkg/refcount"
)

func TestAcquireReleaseReusesFreeList(t *testing.T) {
	p := NewPool(0)
	cmd := p.Acquire()
	if cmd == nil {
		t.Fatal("Acquire() = nil, want a Command")
	}
	if got := p.TotalCount(); got != 1 {
		t.Fatalf("TotalCount() = %d, want 1", got)
	}
	if got := p.InUseCount(); got != 1 {
		t.Fatalf("InUseCount() = %d, want 1", got)
	}

	cmd.Type = Frame
	cmd.Release()

	if got := p.InUseCount(); got != 0 {
		t.Fatalf("InUseCount() after Release = %d, want 0", got)
	}
	if got := p.FreeCount(); got != 1 {
		t.Fatalf("FreeCount() after Release = %d, want 1", got)
	}

	reused := p.Acquire()
	if reused != cmd {
		t.Fatal("Acquire() after Release did not reuse the freed Command")
	}
	if reused.Type != None {
		t.Fatalf("reused Command.Type = %v, want None (reset on release)", reused.Type)
	}
	if got := p.TotalCount(); got != 1 {
		t.Fatalf("TotalCount() after reuse = %d, want 1 (no new allocation)", got)
	}
}

// S5: a pool at its cap returns nil rather than blocking.
func TestCappedPoolReturnsNilInsteadOfBlocking(t *testing.T) {
	p := NewPool(1)
	first := p.Acquire()
	if first == nil {
		t.Fatal("Acquire() = nil on empty capped pool, want a Command")
	}
	second := p.Acquire()
	if second != nil {
		t.Fatal("Acquire() returned a Command past the pool cap, want nil")
	}

	first.Release()
	third := p.Acquire()
	if third == nil {
		t.Fatal("Acquire() = nil after a Release freed capacity, want a Command")
	}
}

func TestReleaseAtZeroReleasesPayloadRef(t *testing.T) {
	p := NewPool(0)
	cmd := p.Acquire()

	var released bool
	cmd.Payload = "payload"
	cmd.PayloadRef = &refcount.Interface{
		Release: func(any) int32 {
			released = true
			return 0
		},
	}

	cmd.AddRef()
	if n := cmd.Release(); n != 1 {
		t.Fatalf("Release() = %d, want 1 (still held once)", n)
	}
	if released {
		t.Fatal("payload released before Command refcount reached zero")
	}

	if n := cmd.Release(); n != 0 {
		t.Fatalf("Release() = %d, want 0", n)
	}
	if !released {
		t.Fatal("payload was not released when Command refcount reached zero")
	}
}

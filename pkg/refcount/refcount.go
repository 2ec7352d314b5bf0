// If you are AI: This file defines the reference-counting vtable shared by pooled payload types.

package refcount

import "sync/atomic"

// Interface is a pair of functions playing the role of a COM-style
// AddRef/Release vtable: it lets heterogeneous payload types share one
// ownership protocol without each implementing a common method set.
// AddRef and Release both return the resulting reference count.
type Interface struct {
	AddRef  func(self any) int32
	Release func(self any) int32
}

// Counter is an embeddable atomic reference count for types that want
// a concrete, panic-on-misuse AddRef/Release pair instead of building
// their own Interface from scratch.
type Counter struct {
	n atomic.Int32
}

// Init sets the counter to the given initial value, typically 1 for a
// freshly constructed owner.
func (c *Counter) Init(initial int32) {
	c.n.Store(initial)
}

// Hold increments the count and returns the new value. It panics if
// called on an already-released (count <= 0) object, since holding a
// dead object indicates a use-after-free in the caller.
func (c *Counter) Hold() int32 {
	n := c.n.Add(1)
	if n < 2 {
		panic("refcount: Hold on a counter with no prior reference")
	}
	return n
}

// Drop decrements the count and returns the new value. Callers should
// treat a return of 0 as "now release the underlying resource."
// It panics if the count would go negative, which indicates a
// duplicate Drop.
func (c *Counter) Drop() int32 {
	n := c.n.Add(-1)
	if n < 0 {
		panic("refcount: Drop on a counter already at zero")
	}
	return n
}

// Count returns the current value without modifying it.
func (c *Counter) Count() int32 {
	return c.n.Load()
}

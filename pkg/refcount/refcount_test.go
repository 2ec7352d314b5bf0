// If you are AI: This file tests the Counter's Hold/Drop accounting and misuse panics.

package refcount

import "testing"

func TestHoldDrop(t *testing.T) {
	var c Counter
	c.Init(1)

	if n := c.Hold(); n != 2 {
		t.Fatalf("Hold() = %d, want 2", n)
	}
	if n := c.Drop(); n != 1 {
		t.Fatalf("Drop() = %d, want 1", n)
	}
	if n := c.Drop(); n != 0 {
		t.Fatalf("Drop() = %d, want 0", n)
	}
}

func TestDropBelowZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Drop() below zero did not panic")
		}
	}()
	var c Counter
	c.Init(0)
	c.Drop()
}

func TestHoldOnDeadPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Hold() on a dead counter did not panic")
		}
	}()
	var c Counter
	c.Init(0)
	c.Hold()
}

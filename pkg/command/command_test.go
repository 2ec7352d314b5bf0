// If you are AI: This file tests Type classification and the SetData/ClearData/Init
// payload-adapter contract, including AddRef/Release call-count parity.

package command

import (
	"testing"

	"sprocket/pkg/refcount"
)

func TestIsSentinelRestrictedToFlushAndEndOfStream(t *testing.T) {
	sentinels := map[Type]bool{
		Flush:       true,
		EndOfStream: true,
		Seek:        false,
		Config:      false,
		Frame:       false,
		Packet:      false,
		None:        false,
	}
	for typ, want := range sentinels {
		if got := typ.IsSentinel(); got != want {
			t.Errorf("Type(%d).IsSentinel() = %v, want %v", typ, got, want)
		}
	}
}

func TestIsMedia(t *testing.T) {
	if !Frame.IsMedia() || !Packet.IsMedia() {
		t.Error("Frame and Packet must be media")
	}
	if Flush.IsMedia() || EndOfStream.IsMedia() || Seek.IsMedia() || Config.IsMedia() {
		t.Error("only Frame and Packet may be media")
	}
}

func TestSetDataAddRefsAndClearDataReleases(t *testing.T) {
	pool := NewPool(0)
	cmd := pool.Acquire()

	var addRefs, releases int
	iface := &refcount.Interface{
		AddRef:  func(any) int32 { addRefs++; return int32(addRefs) },
		Release: func(any) int32 { releases++; return 0 },
	}

	cmd.SetData("payload", iface)
	if addRefs != 1 {
		t.Fatalf("addRefs = %d, want 1", addRefs)
	}
	if releases != 0 {
		t.Fatalf("releases = %d, want 0", releases)
	}

	cmd.ClearData()
	if releases != 1 {
		t.Fatalf("releases = %d, want 1", releases)
	}
	if cmd.Payload != nil || cmd.PayloadRef != nil {
		t.Fatal("ClearData did not null Payload/PayloadRef")
	}

	// SetData on an already-set Command clears the old payload first.
	cmd.SetData("first", iface)
	cmd.SetData("second", iface)
	if addRefs != 3 {
		t.Fatalf("addRefs = %d, want 3", addRefs)
	}
	if releases != 2 {
		t.Fatalf("releases = %d, want 2 (old payload released before the new one was set)", releases)
	}

	cmd.Release()
	if releases != 3 {
		t.Fatalf("releases = %d, want 3 after Release dropped the command to zero", releases)
	}
	if addRefs != releases {
		t.Fatalf("addRefs = %d, releases = %d, want equal counts", addRefs, releases)
	}
}

func TestInitClearsPriorPayload(t *testing.T) {
	pool := NewPool(0)
	cmd := pool.Acquire()

	var released bool
	cmd.SetData("payload", &refcount.Interface{
		AddRef:  func(any) int32 { return 1 },
		Release: func(any) int32 { released = true; return 0 },
	})

	cmd.Init(Flush)
	if !released {
		t.Fatal("Init did not release the prior payload")
	}
	if cmd.Type != Flush {
		t.Fatalf("cmd.Type = %v, want Flush", cmd.Type)
	}
	if cmd.Payload != nil || cmd.PayloadRef != nil {
		t.Fatal("Init did not clear Payload/PayloadRef")
	}
}

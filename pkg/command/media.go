// If you are AI: This file adapts media.Frame/Packet into Commands so pipeline stages
// that move Commands (rather than typed media fifos directly) can carry media payloads.

package command

import (
	"sprocket/pkg/media"
	"sprocket/pkg/refcount"
)

// frameRef is the RefCounted vtable for *media.Frame payloads. Per the
// original adapters' design, AddRef would hand out a fresh clone; the
// producers that use this adapter (NewFrameCommand) already hold a
// distinct, just-acquired Frame they are handing off, so AddRef here
// acknowledges the reference without re-cloning, and Release frees it.
var frameRef = &refcount.Interface{
	AddRef: func(any) int32 { return 1 },
	Release: func(self any) int32 {
		self.(*media.Frame).Release()
		return 0
	},
}

// packetRef is the RefCounted vtable for *media.Packet payloads. See frameRef.
var packetRef = &refcount.Interface{
	AddRef: func(any) int32 { return 1 },
	Release: func(self any) int32 {
		self.(*media.Packet).Release()
		return 0
	},
}

// NewFrameCommand acquires a Command from pool and sets it up to carry
// frame via SetData, which AddRefs frame through frameRef. The
// command's payload is released through frameRef when the command's
// own refcount reaches zero; the caller must not Release frame itself
// once this call returns a non-nil Command. Returns nil if pool is
// capped and exhausted.
func NewFrameCommand(pool *Pool, frame *media.Frame) *Command {
	cmd := pool.Acquire()
	if cmd == nil {
		return nil
	}
	cmd.Init(Frame)
	cmd.SetData(frame, frameRef)
	cmd.PTS = frame.PTS
	cmd.StreamIndex = frame.StreamIndex
	return cmd
}

// NewPacketCommand acquires a Command from pool and sets it up to
// carry pkt via SetData, which AddRefs pkt through packetRef. The
// command's payload is released through packetRef when the command's
// own refcount reaches zero; the caller must not Release pkt itself
// once this call returns a non-nil Command. Returns nil if pool is
// capped and exhausted.
func NewPacketCommand(pool *Pool, pkt *media.Packet) *Command {
	cmd := pool.Acquire()
	if cmd == nil {
		return nil
	}
	cmd.Init(Packet)
	cmd.SetData(pkt, packetRef)
	cmd.PTS = pkt.PTS
	cmd.DTS = pkt.DTS
	cmd.StreamIndex = pkt.StreamIndex
	return cmd
}

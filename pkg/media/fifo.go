// If you are AI: This file wraps waitable fifos of Frame/Packet with clone-on-write and
// surrender-clone-on-read: the caller of Write keeps its original, the caller of Read
// receives sole ownership of what it gets back.

package media

import (
	"time"

	"sprocket/internal/fifo"
	"sprocket/internal/ring"
	"sprocket/internal/status"
)

// FrameFifo is a WaitableFifo specialized for *Frame with clone-on-write.
type FrameFifo struct {
	f *fifo.Fifo[*Frame]
}

// NewFrameFifo creates a frame fifo of the given capacity and mode.
func NewFrameFifo(capacity int, mode ring.Mode) *FrameFifo {
	return &FrameFifo{f: fifo.New[*Frame](fifo.Options{Capacity: capacity, Mode: mode, GateReads: true})}
}

// Write clones frame and enqueues the clone; the caller retains
// ownership of frame and may reuse or Release it immediately after
// this call returns, regardless of the returned status.
func (ff *FrameFifo) Write(frame *Frame) status.Status {
	return ff.f.Write(frame.Clone())
}

// WriteTimed is Write bounded by d.
func (ff *FrameFifo) WriteTimed(frame *Frame, d time.Duration) status.Status {
	return ff.f.WriteTimed(frame.Clone(), d)
}

// Read blocks until a frame is available or flow is disabled. The
// caller owns the returned Frame and must Release it.
func (ff *FrameFifo) Read() (*Frame, status.Status) {
	return ff.f.Read()
}

// ReadTimed is Read bounded by d.
func (ff *FrameFifo) ReadTimed(d time.Duration) (*Frame, status.Status) {
	return ff.f.ReadTimed(d)
}

// SetFlowEnabled toggles blocking behavior; see fifo.Fifo.SetFlowEnabled.
func (ff *FrameFifo) SetFlowEnabled(enabled bool) {
	ff.f.SetFlowEnabled(enabled)
}

// Count returns the current occupancy.
func (ff *FrameFifo) Count() int {
	return ff.f.Count()
}

// Close disables flow and releases every frame left in the fifo.
func (ff *FrameFifo) Close() {
	ff.f.SetFlowEnabled(false)
	for {
		frame, st := ff.f.TryRead()
		if st != status.OK {
			return
		}
		frame.Release()
	}
}

// PacketFifo is a WaitableFifo specialized for *Packet with clone-on-write.
type PacketFifo struct {
	f *fifo.Fifo[*Packet]
}

// NewPacketFifo creates a packet fifo of the given capacity and mode.
func NewPacketFifo(capacity int, mode ring.Mode) *PacketFifo {
	return &PacketFifo{f: fifo.New[*Packet](fifo.Options{Capacity: capacity, Mode: mode, GateReads: true})}
}

// Write clones pkt and enqueues the clone; the caller retains
// ownership of pkt and may reuse or Release it immediately after this
// call returns, regardless of the returned status.
func (pf *PacketFifo) Write(pkt *Packet) status.Status {
	return pf.f.Write(pkt.Clone())
}

// WriteTimed is Write bounded by d.
func (pf *PacketFifo) WriteTimed(pkt *Packet, d time.Duration) status.Status {
	return pf.f.WriteTimed(pkt.Clone(), d)
}

// Read blocks until a packet is available or flow is disabled. The
// caller owns the returned Packet and must Release it.
func (pf *PacketFifo) Read() (*Packet, status.Status) {
	return pf.f.Read()
}

// ReadTimed is Read bounded by d.
func (pf *PacketFifo) ReadTimed(d time.Duration) (*Packet, status.Status) {
	return pf.f.ReadTimed(d)
}

// SetFlowEnabled toggles blocking behavior; see fifo.Fifo.SetFlowEnabled.
func (pf *PacketFifo) SetFlowEnabled(enabled bool) {
	pf.f.SetFlowEnabled(enabled)
}

// Count returns the current occupancy.
func (pf *PacketFifo) Count() int {
	return pf.f.Count()
}

// Close disables flow and releases every packet left in the fifo.
func (pf *PacketFifo) Close() {
	pf.f.SetFlowEnabled(false)
	for {
		pkt, st := pf.f.TryRead()
		if st != status.OK {
			return
		}
		pkt.Release()
	}
}

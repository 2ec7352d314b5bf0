// If you are AI: This file defines the pooled, reference-counted Command record shuttled
// through pipeline fifos, generalizing the teacher's pooled MediaMessage to a typed,
// explicitly ref-counted command with a free-list-backed pool instead of sync.Pool.

package command

import (
	"time"

	"sprocket/pkg/refcount"
)

// Type classifies a Command's payload.
type Type uint16

const (
	// None is the zero value; a Command in this state carries no payload.
	None Type = iota
	// Frame carries a decoded media frame.
	Frame
	// Packet carries an encoded media packet.
	Packet
	// Flush asks downstream consumers to discard buffered state.
	Flush
	// EndOfStream is the sentinel a producer enqueues, then disables
	// flow, to signal that no further commands will follow.
	EndOfStream
	// Seek carries a SeekParams payload.
	Seek
	// Config carries a caller-defined configuration payload.
	Config
	// User is the first value available for caller-defined command
	// types; values below it are reserved.
	User Type = 0x1000
)

// IsSentinel reports whether t is a payload-less out-of-band control
// command. Seek and Config carry payloads of their own and are not
// sentinels, even though they are also not media.
func (t Type) IsSentinel() bool {
	switch t {
	case Flush, EndOfStream:
		return true
	default:
		return false
	}
}

// IsMedia reports whether t carries decoded/encoded media data.
func (t Type) IsMedia() bool {
	return t == Frame || t == Packet
}

// SeekParams is the payload carried by a Seek command.
type SeekParams struct {
	Position time.Duration
	Flags    uint32
}

// Command is a pooled, reference-counted unit of pipeline traffic. Its
// own lifetime is governed by refcount (AddRef/Release), independent
// of whatever ref-counting protocol its Payload uses via PayloadRef.
type Command struct {
	Type        Type
	Payload     any
	PayloadRef  *refcount.Interface // nil if Payload needs no separate release
	PTS         int64
	DTS         int64
	Flags       uint32
	StreamIndex uint32
	UserData    any
	TraceID     string

	pool     *Pool
	next     *Command
	refcount refcount.Counter
}

// AddRef increments the command's reference count and returns the new value.
func (c *Command) AddRef() int32 {
	return c.refcount.Hold()
}

// Release decrements the command's reference count. When it reaches
// zero, the payload's own reference (if any) is released, the command
// is reset, and it is returned to its owning pool's free list.
func (c *Command) Release() int32 {
	n := c.refcount.Drop()
	if n == 0 {
		c.ClearData()
		c.reset()
		if c.pool != nil {
			c.pool.free(c)
		}
	}
	return n
}

// Init clears the command's current payload (Releasing it if present)
// and sets t as its new type. It leaves the refcount untouched.
func (c *Command) Init(t Type) {
	c.ClearData()
	c.Type = t
}

// SetData clears any existing payload, then stores payload and iface
// as the command's new payload and release interface. If both are
// non-nil, iface.AddRef is called on payload, mirroring the original
// ff_cmd_set_data contract so the Command always holds a counted
// reference to whatever it carries.
func (c *Command) SetData(payload any, iface *refcount.Interface) {
	c.ClearData()
	c.Payload = payload
	c.PayloadRef = iface
	if iface != nil && iface.AddRef != nil {
		iface.AddRef(payload)
	}
}

// ClearData releases the command's current payload through its
// interface, if any, then nulls both fields.
func (c *Command) ClearData() {
	if c.PayloadRef != nil && c.PayloadRef.Release != nil {
		c.PayloadRef.Release(c.Payload)
	}
	c.Payload = nil
	c.PayloadRef = nil
}

// reset clears every field before the Command returns to its pool's free list.
func (c *Command) reset() {
	c.Type = None
	c.Payload = nil
	c.PayloadRef = nil
	c.PTS = 0
	c.DTS = 0
	c.Flags = 0
	c.StreamIndex = 0
	c.UserData = nil
	c.TraceID = ""
}

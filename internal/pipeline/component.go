// If you are AI: This file defines the Component and Port types wired together by Graph.

package pipeline

import "context"

// PortKind distinguishes a component's inbound and outbound connection points.
type PortKind uint8

const (
	// PortIn marks a port that receives commands from an upstream component.
	PortIn PortKind = iota
	// PortOut marks a port that sends commands to a downstream component.
	PortOut
)

// MediaType tags the kind of payload a Port's Commands carry, so
// Graph.Connect can reject wiring together ports that speak different
// media.
type MediaType uint8

const (
	// MediaAny matches any MediaType; a port declaring it accepts (or
	// emits) commands of any media kind, such as a sink that only
	// inspects a Command's raw payload bytes.
	MediaAny MediaType = iota
	// MediaFrame marks a port that carries decoded frame commands.
	MediaFrame
	// MediaPacket marks a port that carries encoded packet commands.
	MediaPacket
)

// compatible reports whether a and b may be connected: either side
// being MediaAny matches anything, otherwise the types must match
// exactly.
func (a MediaType) compatible(b MediaType) bool {
	return a == MediaAny || b == MediaAny || a == b
}

// Port identifies one named connection point on a component.
type Port struct {
	Name  string
	Kind  PortKind
	Media MediaType
}

// Component is one stage of a pipeline graph. Prepare, Start, Pause
// and Stop are called by Graph in the lifecycle order described on
// Graph.Start; a Component should not sequence these itself.
type Component interface {
	ID() string
	Ports() []Port
	Prepare(ctx context.Context) error
	Start(ctx context.Context) error
	Pause(ctx context.Context) error
	Stop(ctx context.Context) error
	Params() *ParamSet
}

// Base implements the parts of Component that most concrete
// components share, so a concrete type only needs to embed it and
// override the lifecycle methods it cares about.
type Base struct {
	id     string
	ports  []Port
	params *ParamSet
}

// NewBase creates a Base with the given id and ports and a fresh, empty ParamSet.
func NewBase(id string, ports []Port) Base {
	return Base{id: id, ports: ports, params: NewParamSet()}
}

// ID returns the component's identifier.
func (b *Base) ID() string { return b.id }

// Ports returns the component's declared ports.
func (b *Base) Ports() []Port { return b.ports }

// Params returns the component's parameter set.
func (b *Base) Params() *ParamSet { return b.params }

// Prepare is a no-op default; embedders override it when they have
// setup work to do.
func (b *Base) Prepare(ctx context.Context) error { return nil }

// Start is a no-op default; embedders override it when they have a
// run loop to launch.
func (b *Base) Start(ctx context.Context) error { return nil }

// Pause is a no-op default.
func (b *Base) Pause(ctx context.Context) error { return nil }

// Stop is a no-op default.
func (b *Base) Stop(ctx context.Context) error { return nil }

// If you are AI: This file implements Graph: component wiring, topological sort via
// Kahn's algorithm, and the prepare-all / start-reverse-topo / stop-forward-topo
// lifecycle, generalized from the teacher's relay Manager's task-list Start/Stop.

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// ComponentPort names one end of a Connection.
type ComponentPort struct {
	Component string
	Port      string
}

// Connection links an output port of one component to an input port of another.
type Connection struct {
	From ComponentPort
	To   ComponentPort
}

// Graph wires Components together and drives their lifecycle in
// dependency order.
type Graph struct {
	mu          sync.Mutex
	components  map[string]Component
	connections []Connection
	order       []string // topological order, computed by Start

	ctx    context.Context
	cancel context.CancelFunc
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{components: make(map[string]Component)}
}

// AddComponent registers a component. It is an error to add two
// components with the same ID.
func (g *Graph) AddComponent(c Component) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.components[c.ID()]; exists {
		return fmt.Errorf("pipeline: duplicate component id %q", c.ID())
	}
	g.components[c.ID()] = c
	return nil
}

// Connect records a data-flow edge from one component's output port
// to another's input port. Edges determine topological order: From
// precedes To, so Start starts To before From and Stop stops From
// before To.
func (g *Graph) Connect(conn Connection) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	from, ok := g.components[conn.From.Component]
	if !ok {
		return fmt.Errorf("pipeline: connect: unknown component %q", conn.From.Component)
	}
	to, ok := g.components[conn.To.Component]
	if !ok {
		return fmt.Errorf("pipeline: connect: unknown component %q", conn.To.Component)
	}

	fromPort, ok := findPort(from, conn.From.Port)
	if !ok {
		return fmt.Errorf("pipeline: connect: %q has no port %q", conn.From.Component, conn.From.Port)
	}
	if fromPort.Kind != PortOut {
		return fmt.Errorf("pipeline: connect: %s.%s is not an output port", conn.From.Component, conn.From.Port)
	}
	toPort, ok := findPort(to, conn.To.Port)
	if !ok {
		return fmt.Errorf("pipeline: connect: %q has no port %q", conn.To.Component, conn.To.Port)
	}
	if toPort.Kind != PortIn {
		return fmt.Errorf("pipeline: connect: %s.%s is not an input port", conn.To.Component, conn.To.Port)
	}
	if !fromPort.Media.compatible(toPort.Media) {
		return fmt.Errorf("pipeline: connect: media-type mismatch: %s.%s is %v, %s.%s is %v",
			conn.From.Component, conn.From.Port, fromPort.Media, conn.To.Component, conn.To.Port, toPort.Media)
	}

	g.connections = append(g.connections, conn)
	return nil
}

// findPort looks up a port by name among a component's declared ports.
func findPort(c Component, name string) (Port, bool) {
	for _, p := range c.Ports() {
		if p.Name == name {
			return p, true
		}
	}
	return Port{}, false
}

// topoSort computes a topological order over components using Kahn's
// algorithm, where an edge From -> To means From must precede To.
// Returns an error if the graph contains a cycle.
func (g *Graph) topoSort() ([]string, error) {
	inDegree := make(map[string]int, len(g.components))
	adj := make(map[string][]string, len(g.components))
	for id := range g.components {
		inDegree[id] = 0
	}
	for _, c := range g.connections {
		adj[c.From.Component] = append(adj[c.From.Component], c.To.Component)
		inDegree[c.To.Component]++
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	var order []string
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, next := range adj[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(order) != len(g.components) {
		return nil, fmt.Errorf("pipeline: component graph has a cycle")
	}
	return order, nil
}

// Start brings every component up: Prepare runs on all components in
// topological order, then Start runs in reverse topological order
// (sinks before sources), so a downstream component is ready to
// receive before an upstream one begins producing.
func (g *Graph) Start(ctx context.Context) error {
	g.mu.Lock()
	order, err := g.topoSort()
	if err != nil {
		g.mu.Unlock()
		return err
	}
	g.order = order
	g.ctx, g.cancel = context.WithCancel(ctx)
	runCtx := g.ctx
	components := g.components
	g.mu.Unlock()

	for _, id := range order {
		if err := components[id].Prepare(runCtx); err != nil {
			return fmt.Errorf("pipeline: prepare %q: %w", id, err)
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		if err := components[id].Start(runCtx); err != nil {
			return fmt.Errorf("pipeline: start %q: %w", id, err)
		}
	}
	return nil
}

// Pause pauses every component in forward topological order (sources
// before sinks), matching Stop's ordering.
func (g *Graph) Pause(ctx context.Context) error {
	return g.forEachForward(func(c Component) error { return c.Pause(ctx) })
}

// Stop stops every component in forward topological order, then
// cancels the context passed to Start.
func (g *Graph) Stop(ctx context.Context) error {
	err := g.forEachForward(func(c Component) error { return c.Stop(ctx) })

	g.mu.Lock()
	cancel := g.cancel
	g.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	return err
}

// forEachForward calls fn on every component in the forward topological order computed by Start.
func (g *Graph) forEachForward(fn func(Component) error) error {
	g.mu.Lock()
	order := g.order
	components := g.components
	g.mu.Unlock()

	var firstErr error
	for _, id := range order {
		if err := fn(components[id]); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("pipeline: %q: %w", id, err)
		}
	}
	return firstErr
}

// SetParam sets a parameter addressed by "componentId.parameterKey".
func (g *Graph) SetParam(path string, value any) error {
	id, key, err := splitPath(path)
	if err != nil {
		return err
	}
	g.mu.Lock()
	c, ok := g.components[id]
	g.mu.Unlock()
	if !ok {
		return fmt.Errorf("pipeline: unknown component %q", id)
	}
	return c.Params().Set(key, value)
}

// GetParam gets a parameter addressed by "componentId.parameterKey".
func (g *Graph) GetParam(path string) (any, error) {
	id, key, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	c, ok := g.components[id]
	g.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("pipeline: unknown component %q", id)
	}
	return c.Params().Get(key)
}

// splitPath splits "componentId.parameterKey" into its two parts.
func splitPath(path string) (component, key string, err error) {
	idx := strings.IndexByte(path, '.')
	if idx < 0 {
		return "", "", fmt.Errorf("pipeline: parameter path %q must be componentId.parameterKey", path)
	}
	return path[:idx], path[idx+1:], nil
}

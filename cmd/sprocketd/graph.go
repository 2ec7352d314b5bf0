// If you are AI: This file builds a pipeline.Graph and its wsrelay sinks from Config.

package main

import (
	"fmt"

	"sprocket/internal/config"
	"sprocket/internal/pipeline"
	"sprocket/internal/ring"
	"sprocket/internal/svc/ffxsrc"
	"sprocket/internal/svc/wsrelay"
	"sprocket/pkg/command"
)

// buildGraph constructs a pipeline.Graph and the wsrelay sinks it
// contains from cfg. Every connection gets its own CommandFifo sized
// by cfg.Fifos; every component gets Commands from a single pool sized
// by cfg.Pools.
func buildGraph(cfg *config.Config) (*pipeline.Graph, map[string]*wsrelay.Sink, error) {
	mode := ring.SPSC
	if cfg.Fifos.Mode == "mpmc" {
		mode = ring.MPMC
	}
	pool := command.NewPool(cfg.Pools.MaxCommands)

	// One CommandFifo per connection, keyed by the connection's source
	// component so a component's Start can look up its output fifo.
	fifos := make(map[string]*command.Fifo, len(cfg.Pipeline.Connections))
	for _, conn := range cfg.Pipeline.Connections {
		fifos[conn.FromComponent] = command.NewFifo(command.FifoOptions{
			Capacity: cfg.Fifos.Capacity,
			Mode:     mode,
		})
	}

	graph := pipeline.NewGraph()
	sinks := make(map[string]*wsrelay.Sink)

	for _, c := range cfg.Pipeline.Components {
		switch c.Kind {
		case "ffx_source":
			out, ok := fifos[c.ID]
			if !ok {
				return nil, nil, fmt.Errorf("component %q has no outgoing connection", c.ID)
			}
			if err := graph.AddComponent(ffxsrc.NewSource(c.ID, c.URL, pool, out)); err != nil {
				return nil, nil, err
			}
		case "wsrelay_sink":
			in, err := inputFifoFor(cfg, fifos, c.ID)
			if err != nil {
				return nil, nil, err
			}
			sink := wsrelay.NewSink(c.ID, in)
			sinks[c.ID] = sink
			if err := graph.AddComponent(sink); err != nil {
				return nil, nil, err
			}
		default:
			return nil, nil, fmt.Errorf("component %q: unknown kind %q", c.ID, c.Kind)
		}
	}

	for _, conn := range cfg.Pipeline.Connections {
		err := graph.Connect(pipeline.Connection{
			From: pipeline.ComponentPort{Component: conn.FromComponent, Port: conn.FromPort},
			To:   pipeline.ComponentPort{Component: conn.ToComponent, Port: conn.ToPort},
		})
		if err != nil {
			return nil, nil, err
		}
	}

	return graph, sinks, nil
}

// inputFifoFor finds the fifo feeding component id, i.e. the fifo
// created for the connection whose ToComponent is id.
func inputFifoFor(cfg *config.Config, fifos map[string]*command.Fifo, id string) (*command.Fifo, error) {
	for _, conn := range cfg.Pipeline.Connections {
		if conn.ToComponent == id {
			return fifos[conn.FromComponent], nil
		}
	}
	return nil, fmt.Errorf("component %q has no incoming connection", id)
}

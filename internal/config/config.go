// If you are AI: This file defines the configuration structure for sprocket.
// It uses strict YAML decoding and explicit defaults.

package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the complete server configuration.
// All fields must have explicit defaults or be required.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Fifos    FifoConfig     `yaml:"fifos"`
	Pools    PoolConfig     `yaml:"pools"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// ServerConfig defines HTTP server settings.
type ServerConfig struct {
	HealthPort  int `yaml:"health_port"`  // Port for health endpoint
	PreviewPort int `yaml:"preview_port"` // Port for the wsrelay preview websocket
}

// FifoConfig controls the capacity and blocking mode of the Command
// fifos that connect pipeline components. HighMark and LowMark are
// range-checked by Validate but are not applied to the fifos that
// cmd/sprocketd builds.
type FifoConfig struct {
	Capacity int    `yaml:"capacity"`  // Ring slots per fifo
	Mode     string `yaml:"mode"`      // "spsc" or "mpmc"
	HighMark int    `yaml:"high_mark"` // High water mark; validated only, not wired to any fifo
	LowMark  int    `yaml:"low_mark"`  // Low water mark; validated only, not wired to any fifo
}

// PoolConfig controls Command pool sizing.
type PoolConfig struct {
	MaxCommands int `yaml:"max_commands"` // 0 means uncapped
}

// PipelineConfig lists the components to wire into the pipeline graph
// and the connections between their ports.
type PipelineConfig struct {
	Components  []ComponentConfig  `yaml:"components"`
	Connections []ConnectionConfig `yaml:"connections"`
}

// ComponentConfig names one node of the pipeline graph.
type ComponentConfig struct {
	ID   string `yaml:"id"`
	Kind string `yaml:"kind"` // "ffx_source" or "wsrelay_sink"
	URL  string `yaml:"url,omitempty"`
}

// ConnectionConfig wires one component's output port to another's input.
type ConnectionConfig struct {
	FromComponent string `yaml:"from_component"`
	FromPort      string `yaml:"from_port"`
	ToComponent   string `yaml:"to_component"`
	ToPort        string `yaml:"to_port"`
}

// Load reads configuration from a YAML file.
// Returns an error if the file cannot be read or decoded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields

	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// Apply defaults
	cfg.setDefaults()

	return &cfg, nil
}

// setDefaults applies explicit default values to unset fields.
func (c *Config) setDefaults() {
	if c.Server.HealthPort == 0 {
		c.Server.HealthPort = 8080
	}
	if c.Server.PreviewPort == 0 {
		c.Server.PreviewPort = 8081
	}
	if c.Fifos.Capacity == 0 {
		c.Fifos.Capacity = 64
	}
	if c.Fifos.Mode == "" {
		c.Fifos.Mode = "spsc"
	}
	if c.Pools.MaxCommands == 0 {
		c.Pools.MaxCommands = 256
	}
}

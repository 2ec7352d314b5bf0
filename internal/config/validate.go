// If you are AI: This file validates configuration values and returns descriptive errors.

package config

import (
	"fmt"
)

// Validate checks that all configuration values are within acceptable ranges.
// Returns an error describing the first validation failure found.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Fifos.Validate(); err != nil {
		return fmt.Errorf("fifos config: %w", err)
	}
	if err := c.Pipeline.Validate(); err != nil {
		return fmt.Errorf("pipeline config: %w", err)
	}
	return nil
}

// Validate checks server configuration values.
func (s *ServerConfig) Validate() error {
	if s.HealthPort <= 0 || s.HealthPort > 65535 {
		return fmt.Errorf("health_port must be between 1 and 65535, got %d", s.HealthPort)
	}
	if s.PreviewPort <= 0 || s.PreviewPort > 65535 {
		return fmt.Errorf("preview_port must be between 1 and 65535, got %d", s.PreviewPort)
	}
	if s.HealthPort == s.PreviewPort {
		return fmt.Errorf("health_port and preview_port must be different, both are %d", s.HealthPort)
	}
	return nil
}

// Validate checks fifo configuration values.
func (f *FifoConfig) Validate() error {
	if f.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", f.Capacity)
	}
	if f.Mode != "spsc" && f.Mode != "mpmc" {
		return fmt.Errorf("mode must be \"spsc\" or \"mpmc\", got %q", f.Mode)
	}
	if f.HighMark < 0 || f.HighMark > f.Capacity {
		return fmt.Errorf("high_mark must be between 0 and capacity (%d), got %d", f.Capacity, f.HighMark)
	}
	if f.LowMark < 0 || f.LowMark > f.Capacity {
		return fmt.Errorf("low_mark must be between 0 and capacity (%d), got %d", f.Capacity, f.LowMark)
	}
	return nil
}

// Validate checks that every connection in the pipeline config refers to a
// component declared in the same config.
func (p *PipelineConfig) Validate() error {
	ids := make(map[string]bool, len(p.Components))
	for _, c := range p.Components {
		if c.ID == "" {
			return fmt.Errorf("component with empty id")
		}
		if ids[c.ID] {
			return fmt.Errorf("duplicate component id %q", c.ID)
		}
		ids[c.ID] = true
	}
	for _, conn := range p.Connections {
		if !ids[conn.FromComponent] {
			return fmt.Errorf("connection references unknown component %q", conn.FromComponent)
		}
		if !ids[conn.ToComponent] {
			return fmt.Errorf("connection references unknown component %q", conn.ToComponent)
		}
	}
	return nil
}

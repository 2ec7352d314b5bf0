//go:build !ffmpeg
// +build !ffmpeg

// If you are AI: This file provides stub implementations for FFmpeg output operations.

package ffx

import "sprocket/pkg/media"

// Output represents an FFmpeg output context.
// Stub implementation.
type Output struct{}

// NewOutput creates a new output context.
// Stub: returns error.
func NewOutput(url string, format string) (*Output, error) {
	return nil, ErrFFmpegNotAvailable
}

// Close closes the output context.
// Stub: no-op.
func (out *Output) Close() error {
	return nil
}

// WritePacket writes pkt to the output. The caller retains ownership
// of pkt and may Release it as soon as this call returns.
// Stub: returns error.
func (out *Output) WritePacket(pkt *media.Packet) error {
	return ErrFFmpegNotAvailable
}

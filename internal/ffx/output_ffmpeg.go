//go:build ffmpeg
// +build ffmpeg

// If you are AI: This file provides the ffmpeg-tagged Output. It uses no cgo;
// its methods are placeholders that open nothing and write no media.

package ffx

import (
	"errors"

	"sprocket/pkg/media"
)

// Output represents an FFmpeg output context.
// Manages libavformat output context.
type Output struct {
	url    string
	format string
	// NOTE: Full implementation would include C pointers to AVFormatContext
}

// NewOutput creates a new output context for writing to a URL.
// It returns ErrFFmpegInitFailed unless Init has been called; it
// allocates no C resources.
func NewOutput(url string, format string) (*Output, error) {
	if !initialized {
		return nil, ErrFFmpegInitFailed
	}

	// NOTE: Full implementation would:
	// 1. Allocate AVFormatContext
	// 2. Call avformat_alloc_output_context2()
	// 3. Set output format and URL
	// 4. Open output file/stream
	// 5. Handle errors and cleanup

	return &Output{
		url:    url,
		format: format,
	}, nil
}

// Close closes the output context and frees resources.
// All C allocations must be freed here.
func (out *Output) Close() error {
	if out == nil {
		return nil
	}

	// NOTE: Full implementation would:
	// 1. Call av_write_trailer()
	// 2. Close output file/stream
	// 3. Free all allocated C structures

	return nil
}

// WritePacket returns an error on every call; pkt is not written. The
// caller retains ownership of pkt and may Release it as soon as this
// call returns.
func (out *Output) WritePacket(pkt *media.Packet) error {
	if out == nil {
		return errors.New("output is nil")
	}

	// NOTE: Full implementation would:
	// 1. Create AVPacket from data
	// 2. Call av_interleaved_write_frame()
	// 3. Handle errors

	return errors.New("not implemented")
}

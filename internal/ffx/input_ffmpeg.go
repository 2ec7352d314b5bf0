//go:build ffmpeg
// +build ffmpeg

// If you are AI: This file provides the ffmpeg-tagged Input. It uses no cgo;
// its methods are placeholders that open nothing and read no media.

package ffx

import (
	"errors"

	"sprocket/pkg/media"
)

// Input represents an FFmpeg input context.
// Manages libavformat input context.
type Input struct {
	url string
	// NOTE: Full implementation would include C pointers to AVFormatContext
}

// NewInput creates a new input context for reading from a URL.
// It returns ErrFFmpegInitFailed unless Init has been called; it
// allocates no C resources.
func NewInput(url string) (*Input, error) {
	if !initialized {
		return nil, ErrFFmpegInitFailed
	}

	// NOTE: Full implementation would:
	// 1. Allocate AVFormatContext
	// 2. Call avformat_open_input()
	// 3. Call avformat_find_stream_info()
	// 4. Handle errors and cleanup

	return &Input{url: url}, nil
}

// Close closes the input context and frees resources.
// All C allocations must be freed here.
func (in *Input) Close() error {
	if in == nil {
		return nil
	}

	// NOTE: Full implementation would:
	// 1. Call avformat_close_input()
	// 2. Free all allocated C structures

	return nil
}

// ReadPacket returns an error on every call; no packet is read. A
// returned media.Packet would be owned by the caller, who must Release it.
func (in *Input) ReadPacket() (*media.Packet, error) {
	if in == nil {
		return nil, errors.New("input is nil")
	}

	// NOTE: Full implementation would:
	// 1. Allocate AVPacket
	// 2. Call av_read_frame()
	// 3. Copy packet data into a media.Packet's pooled buffer
	// 4. Free AVPacket
	// 5. Return the media.Packet

	return nil, errors.New("not implemented")
}

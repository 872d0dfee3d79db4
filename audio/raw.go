// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// RawSource reads headerless little-endian signed 16-bit PCM, the format
// produced by tools such as `sox -t raw -e signed -b 16` or `ffmpeg -f s16le`.
type RawSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	buf        []byte
}

// NewRawSource wraps r, whose samples are interleaved over channels.
func NewRawSource(r io.Reader, sampleRate, channels int) *RawSource {
	return &RawSource{
		r:          r,
		sampleRate: sampleRate,
		channels:   channels,
		buf:        make([]byte, 8192),
	}
}

func (s *RawSource) SampleRate() int { return s.sampleRate }
func (s *RawSource) Channels() int   { return s.channels }

// Close closes the underlying reader when it is an io.Closer.
func (s *RawSource) Close() error {
	if c, ok := s.r.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

// ReadSamples blocks until dst is full or the stream ends. A trailing odd
// byte at the end of the stream is discarded.
func (s *RawSource) ReadSamples(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := io.ReadFull(s.r, s.buf)
	samples := n / 2
	for i := range samples {
		dst[i] = int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
	}

	switch {
	case err == nil:
		return samples, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return samples, io.EOF
	default:
		return samples, fmt.Errorf("%w", err)
	}
}

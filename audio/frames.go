// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// maxEmptyReads bounds consecutive reads that return neither data nor error.
const maxEmptyReads = 100

// FrameReader reads whole interleaved frames from a Source, retrying short
// reads until the requested number of frames is available.
type FrameReader struct {
	src      Source
	channels int
}

func NewFrameReader(src Source) *FrameReader {
	return &FrameReader{src: src, channels: src.Channels()}
}

func (f *FrameReader) Channels() int { return f.channels }

// ReadFrames fills dst, whose length must be a multiple of the channel
// count, and returns the number of frames read. Fewer frames than
// requested come with a non-nil error: io.EOF when the source ended,
// otherwise the source's error. An io.EOF delivered together with the
// last requested frame is left for the next call. A trailing partial
// frame is dropped.
func (f *FrameReader) ReadFrames(dst []int16) (int, error) {
	if f.channels < 1 || len(dst)%f.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	got, empty := 0, 0
	for got < len(dst) {
		n, err := f.src.ReadSamples(dst[got:])
		got += n

		if err != nil {
			if errors.Is(err, io.EOF) {
				if got == len(dst) {
					return got / f.channels, nil
				}
				return got / f.channels, io.EOF
			}
			return got / f.channels, fmt.Errorf("%w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}
		if empty++; empty >= maxEmptyReads {
			return got / f.channels, io.ErrNoProgress
		}
	}

	return got / f.channels, nil
}

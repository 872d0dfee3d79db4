// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/ampliphase/audio"
	"github.com/ik5/ampliphase/carrier"
	"github.com/ik5/ampliphase/formats/wav"
)

type capture struct {
	r, g       []byte
	sampleRate int
}

// readCapture loads a stereo WAV written by the wav device. Non-negative
// samples are High.
func readCapture(path string, opts options) (*capture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if src.Channels() != 2 {
		return nil, fmt.Errorf("%w: capture has %d channels", audio.ErrUnsupportedChannels, src.Channels())
	}

	// only the analysis window is kept
	limit := -1
	if opts.window > 0 {
		limit = opts.skip + opts.window
	}

	c := &capture{sampleRate: src.SampleRate()}
	frames := audio.NewFrameReader(src)
	buf := make([]int16, 2*4096)

	for limit < 0 || len(c.r) < limit {
		n, err := frames.ReadFrames(buf)
		for i := range n {
			c.r = append(c.r, level(buf[2*i]))
			c.g = append(c.g, level(buf[2*i+1]))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	c.r, c.g = window(c.r, opts), window(c.g, opts)

	return c, nil
}

func level(s int16) byte {
	if s >= 0 {
		return carrier.High
	}
	return carrier.Low
}

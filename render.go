// SPDX-License-Identifier: EPL-2.0

package ampliphase

import (
	"errors"
	"fmt"

	"github.com/ik5/ampliphase/audio"
	"github.com/ik5/ampliphase/carrier"
	"github.com/ik5/ampliphase/synth"
)

// defaultChunk is the buffer length Render fills at a time.
const defaultChunk = 1 << 16

// Options configure Render.
type Options struct {
	CarrierHz  float64
	OutputRate uint32
	Mode       synth.Mode

	// BufferLen is the working buffer length. It does not change the
	// output; zero picks a default.
	BufferLen int
}

// Rendering is the complete output of Render.
type Rendering struct {
	R, G   []byte
	Tuning carrier.Tuning
	Frames int64 // input frames consumed
}

// Render is a high-level convenience function that synthesizes all of
// src into two channel byte slices, as a device would receive them
// concatenated. Unlike a device, it keeps the final partial buffer.
//
// src keeps its own sample rate. In Ampliphase mode a multi-channel
// source is mixed to mono; IQ mode needs a stereo source.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	out, err := ampliphase.Render(src, ampliphase.Options{
//	    CarrierHz:  1_000_000,
//	    OutputRate: 100_000_000,
//	})
func Render(src audio.Source, opts Options) (*Rendering, error) {
	if src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, src.SampleRate())
	}

	in, err := audio.Adapt(src, src.SampleRate(), opts.Mode.Channels())
	if err != nil {
		return nil, err
	}

	tuning, err := carrier.Tune(opts.OutputRate, opts.CarrierHz)
	if err != nil {
		return nil, err
	}

	inputRate := uint32(src.SampleRate())
	clock, err := carrier.NewClock(opts.OutputRate, inputRate)
	if err != nil {
		return nil, err
	}

	bufferLen := opts.BufferLen
	if bufferLen == 0 {
		bufferLen = max(defaultChunk, 2*clock.MaxDuration())
	}

	filler, err := synth.NewFiller(synth.Config{
		Period:     tuning.Period,
		OutputRate: opts.OutputRate,
		InputRate:  inputRate,
		Mode:       opts.Mode,
		BufferLen:  bufferLen,
	}, audio.NewFrameReader(in))
	if err != nil {
		return nil, err
	}

	out := &Rendering{Tuning: tuning}
	for {
		_, err := filler.Fill()
		if err != nil {
			out.Frames = filler.Consumed()
			if !errors.Is(err, synth.ErrEndOfInput) {
				return nil, err
			}

			r, g := filler.Tail()
			out.R = append(out.R, r...)
			out.G = append(out.G, g...)

			return out, nil
		}

		out.R = append(out.R, filler.R()...)
		out.G = append(out.G, filler.G()...)
	}
}

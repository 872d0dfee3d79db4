// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/ampliphase/utils"
)

// Resampler streams src at a new sample rate using cubic interpolation.
// Works on interleaved frames; preserves channel count. It brings decoded
// files to the input rate expected by the synthesizer and does no
// anti-alias filtering.
type Resampler struct {
	src      Source
	frames   *FrameReader
	channels int
	dstRate  int
	step     float64 // source frames per output frame

	// hist holds frames t-1, t0, t+1, t+2 normalized to [-1, 1).
	// real marks frames read from the source rather than edge copies.
	hist [4][]float32
	real [4]bool

	// position between hist[1] and hist[2], in source frames
	pos float64

	frame  []int16
	primed bool
	eof    bool
}

func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d Hz -> %d Hz", ErrInvalidSampleRate, src.SampleRate(), dstRate)
	}
	channels := src.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedChannels, channels)
	}

	r := &Resampler{
		src:      src,
		frames:   NewFrameReader(src),
		channels: channels,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		frame:    make([]int16, channels),
	}
	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// pull loads the next source frame into slot, or repeats the previous
// slot once the source is exhausted.
func (r *Resampler) pull(slot int) error {
	if !r.eof {
		n, err := r.frames.ReadFrames(r.frame)
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if err != nil {
			r.eof = true
		}
		if n == 1 {
			for c, v := range r.frame {
				r.hist[slot][c] = utils.Int16ToFloat32(v)
			}
			r.real[slot] = true
			return nil
		}
	}

	copy(r.hist[slot], r.hist[slot-1])
	r.real[slot] = false
	return nil
}

func (r *Resampler) prime() error {
	if err := r.pull(1); err != nil {
		return err
	}
	if !r.real[1] {
		return io.EOF
	}
	copy(r.hist[0], r.hist[1])

	if err := r.pull(2); err != nil {
		return err
	}
	if err := r.pull(3); err != nil {
		return err
	}

	r.primed = true
	return nil
}

// advance moves the window one source frame forward.
func (r *Resampler) advance() error {
	first := r.hist[0]
	copy(r.hist[:], r.hist[1:])
	r.hist[3] = first
	copy(r.real[:], r.real[1:])

	return r.pull(3)
}

// ReadSamples produces interleaved samples at the destination rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []int16) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	framesNeeded := len(dst) / r.channels
	written := 0

	for written < framesNeeded {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		// the window has run past the last source frame
		if !r.real[1] {
			break
		}

		x := float32(r.pos)
		base := written * r.channels
		for c := range r.channels {
			y := utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
			dst[base+c] = utils.Float32ToInt16(y)
		}

		written++
		r.pos += r.step
	}

	if written < framesNeeded {
		return written * r.channels, io.EOF
	}
	return written * r.channels, nil
}

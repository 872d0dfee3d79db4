// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/ampliphase/carrier"
)

// static shifts in eighths of a period per output channel
const (
	ampliphaseShiftR = 1
	ampliphaseShiftG = -1
)

// Input supplies interleaved 16-bit frames. ReadFrames returns the number
// of whole frames written to dst and a non-nil error whenever that is
// fewer than requested. audio.FrameReader implements it.
type Input interface {
	ReadFrames(dst []int16) (int, error)
}

// Config describes the synthesis parameters fixed for a session.
type Config struct {
	Period     carrier.Period
	OutputRate uint32 // Hz
	InputRate  uint32 // Hz
	Mode       Mode

	// BufferLen is the nominal length of every delivered buffer.
	BufferLen int
}

// State is what a Filler carries from one buffer to the next.
type State struct {
	// Phase of the R and G channels.
	Phase [2]carrier.Phase

	Clock carrier.Clock

	// Carry is the number of samples written past BufferLen by the last
	// Fill; they open the next buffer.
	Carry int
}

// Filler fills fixed-size two-channel buffers from an Input. Output is
// allowed to overrun the nominal length by less than one input sample;
// the overrun is moved to the start of the next buffer, so the sequence
// of buffers is the same bitstream as one unbounded buffer would hold.
//
// A Filler is not safe for concurrent use.
type Filler struct {
	carrier *carrier.Carrier
	mode    Mode
	in      Input
	nominal int

	// channel buffers, nominal plus the longest input sample
	r, g   []byte
	frames []int16

	state State

	written  int // samples in r and g after the last Fill
	consumed int64
	buffers  int64
}

// NewFiller allocates the channel buffers once; they are never resized.
func NewFiller(cfg Config, in Input) (*Filler, error) {
	clock, err := carrier.NewClock(cfg.OutputRate, cfg.InputRate)
	if err != nil {
		return nil, err
	}
	if cfg.Period.Len() == 0 {
		return nil, fmt.Errorf("%w: zero period", carrier.ErrInvalidPeriod)
	}
	if cfg.Mode != Ampliphase && cfg.Mode != IQ {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, cfg.Mode)
	}
	if cfg.BufferLen <= clock.MaxDuration() {
		return nil, fmt.Errorf("%w: %d samples, one input sample lasts up to %d",
			ErrBufferTooShort, cfg.BufferLen, clock.MaxDuration())
	}
	if c, ok := in.(interface{ Channels() int }); ok && c.Channels() != cfg.Mode.Channels() {
		return nil, fmt.Errorf("%w: %s needs %d, input has %d",
			ErrChannelMismatch, cfg.Mode, cfg.Mode.Channels(), c.Channels())
	}

	size := cfg.BufferLen + clock.MaxDuration()
	maxFrames := clock.SamplesFor(cfg.BufferLen)

	return &Filler{
		carrier: carrier.New(cfg.Period),
		mode:    cfg.Mode,
		in:      in,
		nominal: cfg.BufferLen,
		r:       make([]byte, size),
		g:       make([]byte, size),
		frames:  make([]int16, maxFrames*cfg.Mode.Channels()),
		state:   State{Clock: *clock},
	}, nil
}

// Fill synthesizes the next buffer and returns the number of input frames
// consumed. On success R and G hold exactly BufferLen samples.
//
// Fill reads exactly as many frames as are needed to cover the buffer.
// When the input delivers fewer, the frames read are still synthesized
// but the buffer is incomplete: Fill returns ErrEndOfInput at the end of
// the input, or an error wrapping ErrReadInput, and Tail holds what was
// written. Either way the session is over.
func (f *Filler) Fill() (int, error) {
	st := &f.state

	carry := st.Carry
	copy(f.r[:carry], f.r[f.nominal:f.nominal+carry])
	copy(f.g[:carry], f.g[f.nominal:f.nominal+carry])
	st.Carry = 0
	f.written = carry

	want := st.Clock.SamplesFor(f.nominal - carry)
	channels := f.mode.Channels()

	n, err := f.in.ReadFrames(f.frames[:want*channels])
	n = min(max(n, 0), want)

	cursor := carry
	for i := range n {
		end := cursor + st.Clock.Next()

		switch f.mode {
		case IQ:
			f.carrier.Inject(f.r[cursor:end], 0, iqScale*int32(f.frames[2*i]), &st.Phase[0])
			f.carrier.Inject(f.g[cursor:end], 0, iqScale*int32(f.frames[2*i+1]), &st.Phase[1])
		default:
			s := int32(f.frames[i])
			f.carrier.Inject(f.r[cursor:end], ampliphaseShiftR, s, &st.Phase[0])
			f.carrier.Inject(f.g[cursor:end], ampliphaseShiftG, -s, &st.Phase[1])
		}

		cursor = end
	}

	f.written = cursor
	f.consumed += int64(n)

	if n < want {
		if err == nil || errors.Is(err, io.EOF) {
			return n, ErrEndOfInput
		}
		return n, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	st.Carry = cursor - f.nominal
	f.buffers++

	return n, nil
}

// R returns the nominal-length R channel of the last complete buffer.
func (f *Filler) R() []byte { return f.r[:f.nominal] }

// G returns the nominal-length G channel of the last complete buffer.
func (f *Filler) G() []byte { return f.g[:f.nominal] }

// Tail returns the samples written by a Fill that ended the session. They
// must not be delivered to a device, which expects full buffers.
func (f *Filler) Tail() (r, g []byte) {
	n := min(f.written, f.nominal)
	return f.r[:n], f.g[:n]
}

// BufferLen returns the nominal buffer length.
func (f *Filler) BufferLen() int { return f.nominal }

// Mode returns the modulation mode.
func (f *Filler) Mode() Mode { return f.mode }

// State returns a copy of the synthesis state.
func (f *Filler) State() State { return f.state }

// Consumed returns the number of input frames synthesized so far.
func (f *Filler) Consumed() int64 { return f.consumed }

// Buffers returns the number of complete buffers filled so far.
func (f *Filler) Buffers() int64 { return f.buffers }

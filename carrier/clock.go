// SPDX-License-Identifier: EPL-2.0

package carrier

import "fmt"

// Clock converts between the input sample clock and the output sample
// clock. Each call to Next returns how many output samples one input
// sample lasts; the fractional part of outputRate/inputRate is spread
// over input samples with an integer accumulator so the total never
// drifts.
type Clock struct {
	out, in uint64

	whole uint64 // outputRate / inputRate
	rem   uint64 // outputRate % inputRate
	acc   uint64 // in [0, inputRate)
}

// NewClock returns a Clock at the start of the stream.
func NewClock(outputRate, inputRate uint32) (*Clock, error) {
	if outputRate == 0 || inputRate == 0 {
		return nil, fmt.Errorf("%w: output %d Hz, input %d Hz", ErrInvalidRate, outputRate, inputRate)
	}

	out, in := uint64(outputRate), uint64(inputRate)

	return &Clock{
		out:   out,
		in:    in,
		whole: out / in,
		rem:   out % in,
	}, nil
}

// Next returns the duration of the next input sample in output samples.
// It must be called exactly once per input sample.
func (c *Clock) Next() int {
	c.acc += c.rem
	d := c.whole + c.acc/c.in
	c.acc %= c.in

	return int(d)
}

// SamplesFor returns the smallest number of input samples whose durations,
// starting from the current accumulator, add up to at least target output
// samples. The clock is not advanced.
func (c *Clock) SamplesFor(target int) int {
	if target <= 0 {
		return 0
	}

	// k durations sum to floor((acc + k*out) / in)
	need := uint64(target)*c.in - c.acc
	return int((need + c.out - 1) / c.out)
}

// MaxDuration returns the longest duration Next can return.
func (c *Clock) MaxDuration() int {
	if c.rem == 0 {
		return int(c.whole)
	}
	return int(c.whole) + 1
}

// Accumulator returns the current fractional carry, in [0, inputRate).
func (c *Clock) Accumulator() uint64 { return c.acc }

// SPDX-License-Identifier: EPL-2.0

package carrier

import (
	"fmt"
	"math"
)

// Output levels of a carrier sample.
const (
	High byte = 0xff
	Low  byte = 0x00
)

// Period is the carrier period in output samples. It is always even.
type Period struct {
	half int
}

// NewPeriod returns a period of 2*half samples.
func NewPeriod(half int) (Period, error) {
	if half < 1 {
		return Period{}, fmt.Errorf("%w: half-period %d", ErrInvalidPeriod, half)
	}

	return Period{half: half}, nil
}

// Half returns the number of samples in one High or Low run.
func (p Period) Half() int { return p.half }

// Len returns the number of samples in a full period.
func (p Period) Len() int { return 2 * p.half }

// Tuning is the result of fitting a requested carrier frequency to an
// output sample rate.
type Tuning struct {
	Period Period

	OutputRate uint32
	Requested  float64 // Hz
	Achieved   float64 // Hz, OutputRate / Period.Len()

	// Wanted is the unrounded number of samples per period.
	Wanted float64
}

// Tune derives the carrier period for carrierHz at outputRate. The half
// period is rounded to the nearest integer (half away from zero) so both
// runs have equal length; Achieved is recomputed from the rounded period.
func Tune(outputRate uint32, carrierHz float64) (Tuning, error) {
	if outputRate == 0 {
		return Tuning{}, ErrInvalidRate
	}
	if !(carrierHz > 0) || math.IsInf(carrierHz, 1) {
		return Tuning{}, fmt.Errorf("%w: carrier frequency %g Hz", ErrInvalidPeriod, carrierHz)
	}

	wanted := float64(outputRate) / carrierHz
	p, err := NewPeriod(int(math.Round(wanted / 2)))
	if err != nil {
		return Tuning{}, fmt.Errorf("%g Hz at %d Hz output: %w", carrierHz, outputRate, err)
	}

	return Tuning{
		Period:     p,
		OutputRate: outputRate,
		Requested:  carrierHz,
		Achieved:   float64(outputRate) / float64(p.Len()),
		Wanted:     wanted,
	}, nil
}

// Exact reports whether the requested frequency is produced without error.
func (t Tuning) Exact() bool {
	return t.Wanted == float64(t.Period.Len())
}

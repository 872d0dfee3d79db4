// SPDX-License-Identifier: EPL-2.0

// Package analysis measures synthesized carrier channels: duty cycle, run
// lengths and the phase lag between two channels.
package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrLengthMismatch indicates the compared channels differ in length
	ErrLengthMismatch = errors.New("channels differ in length")

	// ErrTooShort indicates the channels cannot cover the requested lag window
	ErrTooShort = errors.New("channels too short for lag window")
)

// high is the level byte counted as +1; everything else is -1.
const high = 0xff

// Bipolar maps a two-level channel to ±1.
func Bipolar(b []byte) []float64 {
	out := make([]float64, len(b))
	for i, v := range b {
		if v == high {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}
	return out
}

// DutyCycle returns the fraction of High samples in b.
func DutyCycle(b []byte) float64 {
	if len(b) == 0 {
		return 0
	}
	return (floats.Sum(Bipolar(b))/float64(len(b)) + 1) / 2
}

// Runs returns the lengths of consecutive equal-valued runs in b.
func Runs(b []byte) []int {
	if len(b) == 0 {
		return nil
	}

	var runs []int
	start := 0
	for i := 1; i < len(b); i++ {
		if b[i] != b[start] {
			runs = append(runs, i-start)
			start = i
		}
	}
	return append(runs, len(b)-start)
}

// PhaseLag returns the lag in [-maxLag, maxLag] maximizing the correlation
// of sig[i] with ref[i+lag]. A positive lag means sig leads ref.
func PhaseLag(sig, ref []byte, maxLag int) (int, error) {
	if len(sig) != len(ref) {
		return 0, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(sig), len(ref))
	}
	if maxLag < 0 || len(sig) <= 2*maxLag {
		return 0, fmt.Errorf("%w: %d samples, lag %d", ErrTooShort, len(sig), maxLag)
	}

	s, r := Bipolar(sig), Bipolar(ref)
	window := s[maxLag : len(s)-maxLag]

	corr := make([]float64, 2*maxLag+1)
	for i := range corr {
		lag := i - maxLag
		corr[i] = floats.Dot(window, r[maxLag+lag:len(r)-maxLag+lag])
	}

	return floats.MaxIdx(corr) - maxLag, nil
}

// Degrees converts a lag in samples to degrees of a carrier period,
// wrapped to (-180, 180].
func Degrees(lag, period int) float64 {
	deg := math.Mod(360*float64(lag)/float64(period), 360)
	switch {
	case deg > 180:
		deg -= 360
	case deg <= -180:
		deg += 360
	}
	return deg
}

// PeakFrequency returns the frequency of the strongest non-DC bin of the
// spectrum of b sampled at sampleRate. Resolution is sampleRate/len(b).
func PeakFrequency(b []byte, sampleRate float64) (float64, error) {
	if len(b) < 2 {
		return 0, fmt.Errorf("%w: %d samples", ErrTooShort, len(b))
	}

	fft := fourier.NewFFT(len(b))
	coeff := fft.Coefficients(nil, Bipolar(b))

	peak, mag := 1, 0.0
	for i := 1; i < len(coeff); i++ {
		if m := cmplx.Abs(coeff[i]); m > mag {
			peak, mag = i, m
		}
	}

	return fft.Freq(peak) * sampleRate, nil
}

// Report summarizes a pair of synthesized channels.
type Report struct {
	Samples int

	DutyR float64
	DutyG float64

	// shortest and longest runs over both channels
	MinRun int
	MaxRun int

	// Lag of R relative to G, in samples and degrees
	Lag     int
	Degrees float64
}

// Measure analyzes channels r and g of a carrier with the given period.
func Measure(r, g []byte, period int) (Report, error) {
	lag, err := PhaseLag(r, g, period/2)
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		Samples: len(r),
		DutyR:   DutyCycle(r),
		DutyG:   DutyCycle(g),
		MinRun:  math.MaxInt,
		Lag:     lag,
		Degrees: Degrees(lag, period),
	}

	for _, ch := range [][]byte{r, g} {
		runs := Runs(ch)
		// edge runs are truncated by the capture window
		if len(runs) > 2 {
			runs = runs[1 : len(runs)-1]
		}
		for _, n := range runs {
			rep.MinRun = min(rep.MinRun, n)
			rep.MaxRun = max(rep.MaxRun, n)
		}
	}

	return rep, nil
}

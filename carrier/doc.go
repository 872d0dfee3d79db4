// SPDX-License-Identifier: EPL-2.0

// Package carrier synthesizes a two-level square-wave carrier and shifts
// its phase one input sample at a time.
//
// # Levels
//
// Every output sample is one byte holding either High (0xff) or Low (0x00).
// A carrier period is an even number of output samples: Half samples High
// followed by Half samples Low.
//
// # Tuning
//
// The carrier period is derived once from the output sample rate and the
// requested carrier frequency:
//
//	tuning, err := carrier.Tune(100_000_000, 1_000_000)
//	if !tuning.Exact() {
//	    // tuning.Achieved differs from tuning.Requested
//	}
//
// # Phase Shifting
//
// A Carrier writes one input sample's worth of output per Inject call. The
// phase displacement is (period/8) * (static + sample/32768) samples, so a
// static shift of ±1 is ±45° and a full-scale sample adds another ±45°:
//
//	c := carrier.New(tuning.Period)
//	var ph carrier.Phase
//	c.Inject(dst[:duration], +1, int32(sample), &ph)
//
// # Clock Conversion
//
// Clock distributes output samples over input samples with a Bresenham
// accumulator, so the long-run ratio is exact:
//
//	clock, _ := carrier.NewClock(100_000_000, 48_000)
//	duration := clock.Next() // 2083 or 2084
package carrier

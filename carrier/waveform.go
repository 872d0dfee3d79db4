// SPDX-License-Identifier: EPL-2.0

package carrier

import "math"

// fullScale is the magnitude of a 16-bit sample mapped to one eighth of
// a period.
const fullScale = 0x8000

// Phase is the per-channel resumption state of a carrier: the position of
// the unshifted reference carrier within its period, in [0, Len()).
// The zero value is the state at process start.
type Phase struct {
	Offset int
}

// Carrier writes square-wave carrier samples of a fixed period.
// A Carrier holds no per-channel state and may be shared by channels.
type Carrier struct {
	period Period
	eighth float64 // period length / 8, unrounded

	// run templates copied into the output, Half bytes each
	high []byte
	low  []byte
}

// New returns a Carrier for period p.
func New(p Period) *Carrier {
	c := &Carrier{
		period: p,
		eighth: float64(p.Len()) / 8,
		high:   make([]byte, p.Half()),
		low:    make([]byte, p.Half()),
	}
	for i := range c.high {
		c.high[i] = High
	}
	// c.low is already all Low (0x00)

	return c
}

// Period returns the carrier period.
func (c *Carrier) Period() Period { return c.period }

// Generate fills dst with carrier samples starting at position offset of
// the period and returns the position at which the next call must resume.
// Positions below Half are High, the rest Low. Splitting a length into
// several calls chained through the returned offset yields the same bytes
// as a single call.
func (c *Carrier) Generate(dst []byte, offset int) int {
	half, n := c.period.half, c.period.Len()
	pos := floorMod(offset, n)

	for i := 0; i < len(dst); {
		var run int
		var tmpl []byte
		if pos < half {
			run, tmpl = half-pos, c.high
		} else {
			run, tmpl = n-pos, c.low
		}
		run = min(run, len(dst)-i)
		copy(dst[i:i+run], tmpl[:run])

		i += run
		pos += run
		if pos == n {
			pos = 0
		}
	}

	return pos
}

// Displacement returns the phase displacement in output samples for a
// static shift in eighths of a period plus a sample, where ±32768 adds
// another eighth. Rounds half away from zero.
func (c *Carrier) Displacement(staticEighths int, sample int32) int {
	shift := c.eighth * (float64(staticEighths) + float64(sample)/fullScale)

	return int(math.Round(shift))
}

// Inject fills dst, one input sample's worth of output, with the carrier
// displaced by Displacement(staticEighths, sample) relative to the
// reference carrier tracked in ph, then advances ph by len(dst).
//
// The displaced start position lands inside either a High or a Low run.
// The remainder of that run is written first; the rest of dst is
// generated from the following run boundary. A negative displacement
// wraps into the Low run of the previous period, so the prefix is Low
// followed by a full High run.
func (c *Carrier) Inject(dst []byte, staticEighths int, sample int32, ph *Phase) {
	half, n := c.period.half, c.period.Len()
	pos := floorMod(c.Displacement(staticEighths, sample)+ph.Offset, n)

	var prefix, next int
	if pos < half {
		prefix, next = min(half-pos, len(dst)), half
		copy(dst[:prefix], c.high)
	} else {
		prefix, next = min(n-pos, len(dst)), 0
		copy(dst[:prefix], c.low)
	}
	if prefix < len(dst) {
		c.Generate(dst[prefix:], next)
	}

	ph.Offset = (ph.Offset + len(dst)) % n
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

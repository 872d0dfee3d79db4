// SPDX-License-Identifier: EPL-2.0

package carrier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/ampliphase/carrier"
	"github.com/ik5/ampliphase/internal/analysis"
)

// synthesize injects the same sample for frames input samples.
func synthesize(t *testing.T, c *carrier.Carrier, static int, sample int32, frames int) []byte {
	t.Helper()

	clock, err := carrier.NewClock(100_000_000, 48_000)
	require.NoError(t, err)

	var out []byte
	var ph carrier.Phase
	for range frames {
		seg := make([]byte, clock.Next())
		c.Inject(seg, static, sample, &ph)
		out = append(out, seg...)
	}
	return out
}

func TestInject_PhaseShiftMeasured(t *testing.T) {
	t.Parallel()

	tuning, err := carrier.Tune(100_000_000, 1_000_000)
	require.NoError(t, err)
	c := carrier.New(tuning.Period)

	tests := []struct {
		name    string
		static  int
		sample  int32
		degrees float64
	}{
		{"unshifted", 0, 0, 0},
		{"static +45", 1, 0, 46.8},   // 12.5 samples rounded to 13
		{"static -45", -1, 0, -46.8}, // -12.5 rounded to -13
		{"max sample with static +45", 1, 32767, 90},
		{"min sample with static -45", -1, -32768, -90},
		{"iq quarter scale", 0, 4 * 16384, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			shifted := synthesize(t, c, tt.static, tt.sample, 20)
			ref := make([]byte, len(shifted))
			c.Generate(ref, 0)

			lag, err := analysis.PhaseLag(shifted, ref, tuning.Period.Len()/2-1)
			require.NoError(t, err)
			assert.InDelta(t, tt.degrees, analysis.Degrees(lag, tuning.Period.Len()), 1e-9)
		})
	}
}

func TestInject_PureCarrierForSilence(t *testing.T) {
	t.Parallel()

	tuning, err := carrier.Tune(100_000_000, 1_000_000)
	require.NoError(t, err)
	c := carrier.New(tuning.Period)

	out := synthesize(t, c, 1, 0, 48)
	runs := analysis.Runs(out)
	for _, n := range runs[1 : len(runs)-1] {
		require.Equal(t, 50, n)
	}
	assert.InDelta(t, 0.5, analysis.DutyCycle(out), 0.001)
}

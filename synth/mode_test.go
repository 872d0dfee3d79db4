// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Mode
	}{
		{"ampliphase", Ampliphase},
		{"AM", Ampliphase},
		{" iq ", IQ},
		{"IQ", IQ},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseMode("fm")
	require.ErrorIs(t, err, ErrInvalidMode)
}

func TestMode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Ampliphase.Channels())
	assert.Equal(t, 2, IQ.Channels())

	assert.Equal(t, "ampliphase", Ampliphase.String())
	assert.Equal(t, "iq", IQ.String())
	assert.Equal(t, "Mode(9)", Mode(9).String())

	// a full-scale IQ sample reaches half a period
	assert.Equal(t, 4, iqScale)
}

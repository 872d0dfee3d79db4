// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/ampliphase/internal/audiotest"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewMockSource(8000, 1, 100, ramp))
	assert.Equal(t, 1, mixer.Channels())
	assert.Equal(t, 8000, mixer.SampleRate())

	buf := make([]int16, 10)
	n, err := mixer.ReadSamples(buf)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, []int16{0, 2, 4, 6, 8, 10, 12, 14, 16, 18}, buf)
}

func TestMonoMixer_StereoToMono(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 100, func(_ int, channel int) int16 {
		if channel == 0 {
			return 32767
		}
		return 32765
	})
	mixer := NewMonoMixer(src)

	buf := make([]int16, 10)
	n, err := mixer.ReadSamples(buf)
	require.NoError(t, err)
	require.Equal(t, 10, n)
	for _, v := range buf {
		assert.Equal(t, int16(32766), v)
	}
}

func TestMonoMixer_MultiChannel(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 4, 10, func(_ int, channel int) int16 {
		return int16(-1000 * (channel + 1))
	})
	mixer := NewMonoMixer(src)

	buf := make([]int16, 10)
	n, err := mixer.ReadSamples(buf)
	assert.ErrorIs(t, err, io.EOF)
	require.Equal(t, 10, n)
	for _, v := range buf {
		assert.Equal(t, int16(-2500), v)
	}
}

func TestMonoMixer_LargeRead(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 20000))
	n, err := mixer.ReadSamples(make([]int16, 16384))
	require.NoError(t, err)
	assert.Equal(t, 16384, n)
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	n, err := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 10)).ReadSamples(nil)
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestAdapt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		rate, chans  int
		wantRate     int
		wantChannels int
		wantErr      error
	}{
		{"already matching", 48000, 1, 48000, 1, nil},
		{"stereo file to mono", 48000, 2, 48000, 1, nil},
		{"resample and mix", 44100, 2, 48000, 1, nil},
		{"stereo for iq", 44100, 2, 48000, 2, nil},
		{"mono cannot feed iq", 48000, 1, 48000, 2, ErrUnsupportedChannels},
		{"surround cannot feed iq", 48000, 6, 48000, 2, ErrUnsupportedChannels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSilentSource(tt.rate, tt.chans, 100)
			got, err := Adapt(src, tt.wantRate, tt.wantChannels)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRate, got.SampleRate())
			assert.Equal(t, tt.wantChannels, got.Channels())
			if tt.rate == tt.wantRate && tt.chans == tt.wantChannels {
				assert.Same(t, src, got)
			}
		})
	}
}

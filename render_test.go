// SPDX-License-Identifier: EPL-2.0

package ampliphase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/ampliphase/audio"
	"github.com/ik5/ampliphase/carrier"
	"github.com/ik5/ampliphase/internal/analysis"
	"github.com/ik5/ampliphase/internal/audiotest"
	"github.com/ik5/ampliphase/synth"
)

func TestRender_Silence(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(48_000, 1, 4800)
	out, err := Render(src, Options{
		CarrierHz:  1_000_000,
		OutputRate: 100_000_000,
	})
	require.NoError(t, err)

	// 0.1 s of output
	assert.Len(t, out.R, 10_000_000)
	assert.Len(t, out.G, 10_000_000)
	assert.EqualValues(t, 4800, out.Frames)
	assert.Equal(t, 100, out.Tuning.Period.Len())

	report, err := analysis.Measure(out.R[:100_000], out.G[:100_000], 100)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, report.DutyR, 0.001)
	assert.Equal(t, 50, report.MinRun)
	assert.Equal(t, 50, report.MaxRun)
	assert.Equal(t, 26, report.Lag)
}

func TestRender_BufferLenDoesNotChangeOutput(t *testing.T) {
	t.Parallel()

	render := func(bufferLen int) *Rendering {
		src := audiotest.NewSineSource(44_100, 1, 1000, 1000)
		out, err := Render(src, Options{
			CarrierHz:  250_000,
			OutputRate: 10_000_000,
			BufferLen:  bufferLen,
		})
		require.NoError(t, err)
		return out
	}

	want := render(0)
	for _, n := range []int{300, 4096, 1 << 20} {
		got := render(n)
		assert.Equal(t, want.R, got.R, "buffer %d", n)
		assert.Equal(t, want.G, got.G, "buffer %d", n)
	}

	// 1000 frames at 44.1 kHz
	assert.Len(t, want.R, 1000*10_000_000/44_100)
}

func TestRender_MixesStereoForAmpliphase(t *testing.T) {
	t.Parallel()

	stereo := audiotest.NewMockSource(8000, 2, 100, func(_ int, ch int) int16 {
		if ch == 0 {
			return 20000
		}
		return -20000
	})
	mixed, err := Render(stereo, Options{CarrierHz: 100_000, OutputRate: 800_000})
	require.NoError(t, err)

	silent, err := Render(audiotest.NewSilentSource(8000, 1, 100), Options{CarrierHz: 100_000, OutputRate: 800_000})
	require.NoError(t, err)

	assert.Equal(t, silent.R, mixed.R)
	assert.Equal(t, silent.G, mixed.G)
}

func TestRender_IQ(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(48_000, 2, 480, func(_ int, ch int) int16 {
		return []int16{-16384, 16384}[ch]
	})
	out, err := Render(src, Options{CarrierHz: 10_000, OutputRate: 1_000_000, Mode: synth.IQ})
	require.NoError(t, err)

	ref := make([]byte, len(out.R))
	carrier.New(out.Tuning.Period).Generate(ref, 0)

	lag, err := analysis.PhaseLag(out.R, ref, 49)
	require.NoError(t, err)
	assert.Equal(t, -25, lag)

	lag, err = analysis.PhaseLag(out.G, ref, 49)
	require.NoError(t, err)
	assert.Equal(t, 25, lag)
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	_, err := Render(audiotest.NewSilentSource(48_000, 1, 10), Options{CarrierHz: 10_000, OutputRate: 1_000_000, Mode: synth.IQ})
	require.ErrorIs(t, err, audio.ErrUnsupportedChannels)

	_, err = Render(audiotest.NewSilentSource(0, 1, 10), Options{CarrierHz: 10_000, OutputRate: 1_000_000})
	require.ErrorIs(t, err, audio.ErrInvalidSampleRate)

	_, err = Render(audiotest.NewSilentSource(48_000, 1, 10), Options{CarrierHz: 0, OutputRate: 1_000_000})
	require.ErrorIs(t, err, carrier.ErrInvalidPeriod)

	_, err = Render(audiotest.NewSilentSource(48_000, 1, 10), Options{CarrierHz: 10_000, OutputRate: 1_000_000, BufferLen: 5})
	require.ErrorIs(t, err, synth.ErrBufferTooShort)

	broken := errors.New("read past end of tape")
	src := audiotest.NewSilentSource(48_000, 1, 1000)
	src.Err = broken
	src.FailAfter = 500
	_, err = Render(src, Options{CarrierHz: 10_000, OutputRate: 1_000_000})
	require.ErrorIs(t, err, synth.ErrReadInput)
	require.ErrorIs(t, err, broken)
}

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	out, err := Render(audiotest.NewSilentSource(48_000, 1, 0), Options{CarrierHz: 10_000, OutputRate: 1_000_000})
	require.NoError(t, err)
	assert.Empty(t, out.R)
	assert.Empty(t, out.G)
	assert.Zero(t, out.Frames)
}

func BenchmarkRender(b *testing.B) {
	for b.Loop() {
		src := audiotest.NewSineSource(48_000, 1, 4800, 1000)
		if _, err := Render(src, Options{CarrierHz: 1_000_000, OutputRate: 100_000_000}); err != nil {
			b.Fatal(err)
		}
	}
}

// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides in-memory PCM sources for tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource is a test helper that generates 16-bit frames.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame int, channel int) int16

	// MaxRead caps the number of values returned per call when positive,
	// simulating a source that delivers short reads.
	MaxRead int

	// Err, when set, is returned once the source has produced FailAfter frames.
	Err       error
	FailAfter int

	closed bool
}

// NewMockSource creates a source of totalFrames frames whose values come
// from waveform.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) int16) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a source of zero samples.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalFrames, 0)
}

// NewConstantSource creates a source repeating value on every channel.
func NewConstantSource(sampleRate, channels, totalFrames int, value int16) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) int16 {
		return value
	})
}

// NewSineSource creates a full-scale sine wave.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, _ int) int16 {
		t := float64(frame) / float64(sampleRate)
		return int16(math.Round(32767 * math.Sin(2*math.Pi*frequency*t)))
	})
}

// NewSliceSource plays back interleaved samples.
func NewSliceSource(sampleRate, channels int, samples []int16) *MockSource {
	return NewMockSource(sampleRate, channels, len(samples)/channels, func(frame int, channel int) int16 {
		return samples[frame*channels+channel]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { m.closed = true; return nil }

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Generated returns the number of frames produced so far.
func (m *MockSource) Generated() int { return m.generated }

func (m *MockSource) ReadSamples(dst []int16) (int, error) {
	if m.Err != nil && m.generated >= m.FailAfter {
		return 0, m.Err
	}
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	limit := len(dst)
	if m.MaxRead > 0 {
		limit = min(limit, m.MaxRead)
	}

	framesToWrite := min(limit/m.channels, m.totalFrames-m.generated)
	if m.Err != nil {
		framesToWrite = min(framesToWrite, m.FailAfter-m.generated)
	}

	for frame := range framesToWrite {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}
	m.generated += framesToWrite

	if m.generated >= m.totalFrames {
		return framesToWrite * m.channels, io.EOF
	}
	return framesToWrite * m.channels, nil
}

// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer averages interleaved channels down to one.
type MonoMixer struct {
	src Source
	tmp []int16
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]int16, 8192),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (m *MonoMixer) ReadSamples(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	samplesNeeded := len(dst) * channels
	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]int16, samplesNeeded)
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp)
	frames := n / channels

	switch channels {
	case 2:
		for f := range frames {
			dst[f] = int16((int32(m.tmp[2*f]) + int32(m.tmp[2*f+1])) / 2)
		}
	default:
		for f := range frames {
			var sum int32
			for _, v := range m.tmp[f*channels : (f+1)*channels] {
				sum += int32(v)
			}
			dst[f] = int16(sum / int32(channels))
		}
	}

	return frames, err
}

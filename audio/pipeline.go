// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Adapt wraps src so it produces sampleRate Hz with the given channel
// count: it resamples when the rates differ and mixes down to mono when
// one channel is requested. Any other channel mismatch is an error.
func Adapt(src Source, sampleRate, channels int) (Source, error) {
	switch {
	case src.Channels() == channels:
	case channels == 1 && src.Channels() > 1:
	default:
		return nil, fmt.Errorf("%w: have %d channels, need %d", ErrUnsupportedChannels, src.Channels(), channels)
	}

	out := src
	if src.SampleRate() != sampleRate {
		r, err := NewResampler(src, sampleRate)
		if err != nil {
			return nil, err
		}
		out = r
	}
	if out.Channels() != channels {
		out = NewMonoMixer(out)
	}

	return out, nil
}

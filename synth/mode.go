// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"strings"
)

// Mode selects how input samples drive the two output channels.
type Mode int

const (
	// Ampliphase reads mono input. Channel R is shifted +45° plus the
	// sample, channel G -45° minus the sample; the analog sum of both
	// carries the amplitude.
	Ampliphase Mode = iota

	// IQ reads stereo input. Each channel of a frame sets the phase of
	// one output channel over ±180°.
	IQ
)

// iqScale widens a sample's ±45° to ±180°.
const iqScale = 4

// Channels returns the number of interleaved input channels the mode reads.
func (m Mode) Channels() int {
	if m == IQ {
		return 2
	}
	return 1
}

func (m Mode) String() string {
	switch m {
	case Ampliphase:
		return "ampliphase"
	case IQ:
		return "iq"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "ampliphase" or "iq", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ampliphase", "am":
		return Ampliphase, nil
	case "iq":
		return IQ, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

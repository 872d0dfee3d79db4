// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/ampliphase/audio"
)

type Decoder struct{}

// Decode reads the header of an AIFF file of 8, 16, 24 or 32 bits.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, err := audio.Seekable(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()
	if dec.Format() == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	// AIFF stores signed samples at every depth
	return audio.NewPCMSource(dec, int(dec.BitDepth), false)
}

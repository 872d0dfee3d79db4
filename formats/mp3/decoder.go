// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/ampliphase/audio"
)

// ErrNotMP3File indicates the input has no decodable MPEG audio frame
var ErrNotMP3File = errors.New("not an MP3 file")

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	io.Reader
	SampleRate() int
}

// newSource exposes the decoded PCM stream, which go-mp3 always delivers
// as interleaved stereo 16-bit little-endian samples.
func newSource(dec mp3Reader) audio.Source {
	return audio.NewRawSource(dec, dec.SampleRate(), 2)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return newSource(dec), nil
}

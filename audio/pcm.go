// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// PCMDecoder is the integer PCM interface shared by the go-audio WAV and
// AIFF decoders.
type PCMDecoder interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// PCMSource adapts a PCMDecoder of any supported bit depth to a Source of
// 16-bit samples. Deeper samples are truncated to their top 16 bits.
type PCMSource struct {
	dec        PCMDecoder
	sampleRate int
	channels   int
	convert    func(int) int16
	intBuf     *goaudio.IntBuffer
}

// NewPCMSource wraps dec. bitDepth is 8, 16, 24 or 32; unsigned8 marks
// 8-bit data stored with an offset of 128, as WAV does.
func NewPCMSource(dec PCMDecoder, bitDepth int, unsigned8 bool) (*PCMSource, error) {
	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, fmt.Errorf("%w: no channels", ErrUnsupportedChannels)
	}
	if format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, format.SampleRate)
	}

	var convert func(int) int16
	switch {
	case bitDepth == 8 && unsigned8:
		convert = func(v int) int16 { return int16((v - 128) << 8) }
	case bitDepth == 8:
		convert = func(v int) int16 { return int16(v << 8) }
	case bitDepth == 16:
		convert = func(v int) int16 { return int16(v) }
	case bitDepth == 24:
		convert = func(v int) int16 { return int16(v >> 8) }
	case bitDepth == 32:
		convert = func(v int) int16 { return int16(v >> 16) }
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	return &PCMSource{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		convert:    convert,
	}, nil
}

func (s *PCMSource) SampleRate() int { return s.sampleRate }
func (s *PCMSource) Channels() int   { return s.channels }
func (s *PCMSource) Close() error    { return nil }

func (s *PCMSource) ReadSamples(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = s.convert(v)
	}

	return n, err
}

// Seekable returns r as an io.ReadSeeker, reading it into memory when it
// cannot seek. The go-audio decoders need to seek between chunks.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}

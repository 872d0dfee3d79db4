// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Writer stores DAC channel pairs as an 8-bit stereo WAV file, R on the
// left and G on the right, so a capture can be examined in an audio
// editor.
type Writer struct {
	enc *wav.Encoder
	buf *goaudio.IntBuffer
}

// NewWriter starts a WAV file at sampleRate on w. The header is completed
// by Close.
func NewWriter(w io.WriteSeeker, sampleRate int) *Writer {
	return &Writer{
		enc: wav.NewEncoder(w, sampleRate, 8, 2, formatPCM),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: 2, SampleRate: sampleRate},
			SourceBitDepth: 8,
		},
	}
}

// WriteChannels appends one buffer pair. r and g must have equal length.
func (w *Writer) WriteChannels(r, g []byte) error {
	if len(r) != len(g) {
		return fmt.Errorf("channel lengths %d and %d differ", len(r), len(g))
	}

	if cap(w.buf.Data) < 2*len(r) {
		w.buf.Data = make([]int, 2*len(r))
	}
	w.buf.Data = w.buf.Data[:2*len(r)]

	for i := range r {
		w.buf.Data[2*i] = int(r[i])
		w.buf.Data[2*i+1] = int(g[i])
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Close writes the final header sizes. It does not close the underlying
// writer.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

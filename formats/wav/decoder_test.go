// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/ampliphase/audio"
)

// Helper function to create a minimal WAV file
func createWAVFile(formatTag uint16, sampleRate, channels, bitsPerSample int, samples []int, extra ...[]byte) []byte {
	var data bytes.Buffer
	for _, s := range samples {
		switch bitsPerSample {
		case 8:
			data.WriteByte(byte(s))
		case 16:
			binary.Write(&data, binary.LittleEndian, int16(s))
		case 24:
			data.Write([]byte{byte(s), byte(s >> 8), byte(s >> 16)})
		case 32:
			binary.Write(&data, binary.LittleEndian, int32(s))
		}
	}

	blockAlign := channels * bitsPerSample / 8

	var body bytes.Buffer
	body.WriteString("WAVE")

	body.WriteString("fmt ")
	binary.Write(&body, binary.LittleEndian, uint32(16))
	binary.Write(&body, binary.LittleEndian, formatTag)
	binary.Write(&body, binary.LittleEndian, uint16(channels))
	binary.Write(&body, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&body, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(&body, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&body, binary.LittleEndian, uint16(bitsPerSample))

	// chunks the decoder must skip
	for _, chunk := range extra {
		body.Write(chunk)
	}

	body.WriteString("data")
	binary.Write(&body, binary.LittleEndian, uint32(data.Len()))
	body.Write(data.Bytes())

	var file bytes.Buffer
	file.WriteString("RIFF")
	binary.Write(&file, binary.LittleEndian, uint32(body.Len()))
	file.Write(body.Bytes())

	return file.Bytes()
}

func readAll(t *testing.T, src audio.Source) []int16 {
	t.Helper()

	var out []int16
	buf := make([]int16, 7)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
	}
}

func TestDecoder_Mono16(t *testing.T) {
	t.Parallel()

	samples := []int{0, 100, 200, -100, -200, 32767, -32768}
	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(formatPCM, 8000, 1, 16, samples)))
	require.NoError(t, err)

	assert.Equal(t, 8000, src.SampleRate())
	assert.Equal(t, 1, src.Channels())
	assert.Equal(t, []int16{0, 100, 200, -100, -200, 32767, -32768}, readAll(t, src))
	require.NoError(t, src.Close())
}

func TestDecoder_Stereo(t *testing.T) {
	t.Parallel()

	samples := []int{100, -100, 200, -200, 300, -300}
	src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(formatPCM, 44100, 2, 16, samples)))
	require.NoError(t, err)

	assert.Equal(t, 44100, src.SampleRate())
	assert.Equal(t, 2, src.Channels())

	fr := audio.NewFrameReader(src)
	dst := make([]int16, 6)
	n, err := fr.ReadFrames(dst)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int16{100, -100, 200, -200, 300, -300}, dst)
}

func TestDecoder_BitDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bits int
		in   []int
		want []int16
	}{
		{"8-bit unsigned", 8, []int{0, 128, 255}, []int16{-32768, 0, 32512}},
		{"24-bit", 24, []int{-8388608, 256, 8388607}, []int16{-32768, 1, 32767}},
		{"32-bit", 32, []int{-2147483648, 65536, 2147483647}, []int16{-32768, 1, 32767}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(formatPCM, 22050, 1, tt.bits, tt.in)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, readAll(t, src))
		})
	}
}

func TestDecoder_SkipsUnknownChunks(t *testing.T) {
	t.Parallel()

	junk := append([]byte("junk"), 4, 0, 0, 0, 1, 2, 3, 4)
	data := createWAVFile(formatPCM, 8000, 1, 16, []int{100, 200}, junk)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []int16{100, 200}, readAll(t, src))
}

func TestDecoder_NonSeekableInput(t *testing.T) {
	t.Parallel()

	data := createWAVFile(formatPCM, 8000, 1, 16, []int{1, 2, 3})

	// io.MultiReader hides the Seek method of bytes.Reader
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	require.NoError(t, err)
	assert.Equal(t, []int16{1, 2, 3}, readAll(t, src))
}

func TestDecoder_Errors(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("NOT A WAV FILE DATA")))
	require.ErrorIs(t, err, ErrNotWavFile)

	_, err = Decoder{}.Decode(bytes.NewReader([]byte("RIFF\x00")))
	require.Error(t, err)

	// IEEE float
	_, err = Decoder{}.Decode(bytes.NewReader(createWAVFile(3, 8000, 1, 32, []int{0})))
	require.ErrorIs(t, err, ErrOnlyPCMSupported)

	_, err = Decoder{}.Decode(bytes.NewReader(createWAVFile(formatPCM, 8000, 1, 12, nil)))
	require.Error(t, err)
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int, 48000)
	for i := range samples {
		samples[i] = i % 30000
	}
	data := createWAVFile(formatPCM, 48000, 1, 16, samples)
	buf := make([]int16, 4096)

	for b.Loop() {
		src, err := Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}

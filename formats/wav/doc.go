// SPDX-License-Identifier: EPL-2.0

// Package wav reads WAV input files and writes WAV captures of
// synthesized output.
//
// The Decoder accepts integer PCM at 8, 16, 24 or 32 bits with any number
// of channels and sample rate, and returns an audio.Source of 16-bit
// samples. Files are parsed with github.com/go-audio/wav, which skips
// unknown chunks; input that cannot seek is buffered in memory first.
//
//	src, err := wav.Decoder{}.Decode(file)
//
// The Writer stores pairs of 8-bit DAC channels as a stereo WAV file, R
// on the left and G on the right:
//
//	w := wav.NewWriter(file, 100_000_000)
//	err := w.WriteChannels(r, g)
//	...
//	err = w.Close()
package wav

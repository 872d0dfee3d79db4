// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 input files using github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved stereo 16-bit samples, so the
// returned audio.Source reports two channels even for mono files; mix it
// down with audio.Adapt for ampliphase mode.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	mono, err := audio.Adapt(src, 48000, 1)
package mp3

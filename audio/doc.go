// SPDX-License-Identifier: EPL-2.0

// Package audio provides the input side of the synthesizer: sources of
// signed 16-bit PCM frames and the adapters that shape them.
//
// # Source Interface
//
// Every input implements Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []int16) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved; ReadSamples returns the number of int16 values
// written and io.EOF once the stream is finished.
//
// # Raw PCM
//
// The default input is a headerless little-endian s16 stream, such as
// standard input:
//
//	src := audio.NewRawSource(os.Stdin, 48000, 1)
//
// # Decoded Files
//
// Decoders for container formats are registered by extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.ForPath("speech.wav")
//
// A decoded file is brought to the synthesizer's input format with Adapt,
// which chains a cubic Resampler and a MonoMixer as needed:
//
//	src, err := audio.Adapt(decoded, 48000, 1)
//
// # Frame Reading
//
// FrameReader retries short reads so callers get whole frames:
//
//	frames := audio.NewFrameReader(src)
//	n, err := frames.ReadFrames(buf) // n frames, io.EOF when short
//
// # Error Handling
//
// io.EOF marks the normal end of a stream. Other errors come from the
// underlying reader or decoder and are wrapped:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // use buf[:n]
//	}
package audio

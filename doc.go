// SPDX-License-Identifier: EPL-2.0

// Package ampliphase synthesizes phase-modulated square carriers for a
// two-channel 8-bit DAC such as the FL2K family of USB VGA adapters.
//
// Every output sample is either 0xff or 0x00. The carrier period is an
// even number of output samples, derived from the output sample rate and
// the requested carrier frequency. Each input sample displaces the phase
// of the carrier for as many output samples as it lasts; in ampliphase
// mode the two channels are shifted in opposite directions so that
// their analog sum is amplitude modulated, in IQ mode each channel
// follows one component of a stereo input.
//
// # Packages
//
//   - carrier: period derivation, waveform generation, phase injection
//     and the input-to-output sample clock.
//   - synth: fills fixed-length buffer pairs from an input stream.
//   - device: the output device interface with file and paced
//     implementations.
//   - stream: runs a device from an input until the input ends.
//   - audio and formats/...: input sources, decoders, resampling.
//   - config: configuration defaults and YAML files.
//
// # Quick Start
//
// The simplest way to synthesize a file offline is Render:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	out, err := ampliphase.Render(src, ampliphase.Options{
//	    CarrierHz:  1_000_000,
//	    OutputRate: 100_000_000,
//	    Mode:       synth.Ampliphase,
//	})
//	// out.R and out.G hold one byte per output sample
//
// To feed a device continuously, build a stream.Transmitter and call Run.
package ampliphase

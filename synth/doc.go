// SPDX-License-Identifier: EPL-2.0

// Package synth turns a stream of 16-bit input samples into pairs of
// phase-modulated carrier buffers for a two-channel DAC.
//
// In Ampliphase mode a mono sample shifts the R channel by +45° plus the
// sample and the G channel by -45° minus it; summed in analog, the two
// constant-amplitude carriers produce an amplitude-modulated signal. In
// IQ mode the two channels of a stereo frame shift R and G independently.
//
// Each input sample lasts a whole number of output samples chosen by a
// carrier.Clock, so buffers rarely end on a sample boundary. A Filler
// writes past the buffer end and moves the overrun to the start of the
// next buffer; concatenating the delivered buffers gives the same stream
// regardless of buffer length.
package synth

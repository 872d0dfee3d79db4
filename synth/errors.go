// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	// ErrEndOfInput indicates the input ran out; the buffer being filled is incomplete
	ErrEndOfInput = errors.New("out of input samples")

	// ErrReadInput indicates the input failed to deliver samples
	ErrReadInput = errors.New("couldn't read input samples")

	// ErrBufferTooShort indicates the buffer cannot hold one input sample's output
	ErrBufferTooShort = errors.New("buffer shorter than one input sample")

	// ErrInvalidMode indicates an unknown modulation mode
	ErrInvalidMode = errors.New("invalid modulation mode")

	// ErrChannelMismatch indicates the input channel count does not fit the mode
	ErrChannelMismatch = errors.New("input channels do not match modulation mode")
)

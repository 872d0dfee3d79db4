// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input has no RIFF/WAVE header
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates the file has no readable PCM data chunk
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrOnlyPCMSupported indicates a compressed or floating point WAV file
	ErrOnlyPCMSupported = errors.New("only integer PCM WAV is supported")
)

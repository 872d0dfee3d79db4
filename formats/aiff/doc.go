// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF input files using github.com/go-audio/aiff.
//
// Samples of 8, 16, 24 or 32 bits are returned as 16-bit values through
// an audio.Source; deeper samples keep their top 16 bits. Input that
// cannot seek is buffered in memory first.
package aiff

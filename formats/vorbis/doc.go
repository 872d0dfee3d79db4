// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis input files using
// github.com/jfreymuth/oggvorbis.
//
// Decoded floating point samples are rounded and clipped to 16 bits.
package vorbis

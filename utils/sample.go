// SPDX-License-Identifier: EPL-2.0

// Package utils holds sample-level helpers shared by the audio pipeline.
package utils

import "math"

// sampleScale maps int16 full scale to [-1, 1).
const sampleScale = 32768.0

// Int16ToFloat32 normalizes a 16-bit sample to [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / sampleScale
}

// Float32ToInt16 converts a normalized sample back to 16 bits, rounding to
// nearest and clamping to the int16 range. It is the exact inverse of
// Int16ToFloat32 for every int16.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * sampleScale)
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}

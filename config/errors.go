// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	// ErrInvalidRate indicates a zero sample rate
	ErrInvalidRate = errors.New("invalid sample rate")

	// ErrInvalidCarrier indicates a carrier frequency that is not positive
	// or above the Nyquist limit of the output rate
	ErrInvalidCarrier = errors.New("invalid carrier frequency")

	// ErrInvalidMode indicates an unknown modulation mode
	ErrInvalidMode = errors.New("invalid modulation mode")

	// ErrInvalidBuffer indicates a buffer length that is not positive
	ErrInvalidBuffer = errors.New("invalid buffer length")

	// ErrInvalidDevice indicates an unknown device kind or missing outputs
	ErrInvalidDevice = errors.New("invalid device configuration")

	// ErrInvalidLogLevel indicates an unknown log level name
	ErrInvalidLogLevel = errors.New("invalid log level")
)

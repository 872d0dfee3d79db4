// SPDX-License-Identifier: EPL-2.0

package carrier

import "errors"

var (
	// ErrInvalidPeriod indicates the carrier cannot be represented at the output rate
	ErrInvalidPeriod = errors.New("invalid carrier period")

	// ErrInvalidRate indicates a zero input or output sample rate
	ErrInvalidRate = errors.New("sample rate must be positive")
)

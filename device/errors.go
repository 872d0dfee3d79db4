// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var (
	// ErrDeviceFault indicates the device failed to transfer a buffer
	ErrDeviceFault = errors.New("device fault")

	// ErrAlreadyStarted indicates Start was called on a running device
	ErrAlreadyStarted = errors.New("device already started")

	// ErrNotStarted indicates Stop was called on an idle device
	ErrNotStarted = errors.New("device not started")

	// ErrInvalidRate indicates a zero or unsupported sample rate
	ErrInvalidRate = errors.New("invalid device sample rate")

	// ErrClosed indicates the device was closed
	ErrClosed = errors.New("device closed")
)

var (
	_ Device = (*FileDevice)(nil)
	_ Device = (*PacedDevice)(nil)
)

// SPDX-License-Identifier: EPL-2.0

// Package device delivers pairs of 8-bit channel buffers to a two-channel
// DAC.
//
// A Device pulls buffers through a Callback invoked from its own
// goroutine, one call per transfer. The callback points Transfer.R and
// Transfer.G at full-length buffers it owns; the device is done with them
// before the callback runs again. A failed transfer is reported to the
// next callback through Transfer.Err.
//
// FileDevice writes both channels to io.Writers as fast as the callback
// produces them. PacedDevice consumes buffers at the configured sample
// rate, for dry runs and tests.
package device

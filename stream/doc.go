// SPDX-License-Identifier: EPL-2.0

// Package stream drives a device from an input source: it negotiates the
// output rate, derives the carrier period, and fills one buffer pair per
// device callback until the input ends, the device fails or the caller
// cancels.
package stream

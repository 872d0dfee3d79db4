// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"
	"time"
)

// PacedDevice requests one transfer every BufferLen output samples of
// wall time, the way the DAC drains its buffers. Delivered buffers go to
// Sink, if set, and are otherwise discarded.
type PacedDevice struct {
	// BufferLen is the required length of every transfer, per channel.
	BufferLen int

	// Quantize maps a requested rate to the rate the device produces.
	// Nil accepts every rate.
	Quantize func(hz uint32) uint32

	// Sink receives the channels of every complete transfer. It must not
	// retain them. An error is a device fault.
	Sink func(r, g []byte) error

	// Unpaced disables pacing; transfers run back to back.
	Unpaced bool

	runner
	rate uint32
}

// SetSampleRate sets the output rate, quantized if Quantize is set.
func (d *PacedDevice) SetSampleRate(hz uint32) error {
	if hz == 0 {
		return fmt.Errorf("%w: 0 Hz", ErrInvalidRate)
	}

	got := hz
	if d.Quantize != nil {
		got = d.Quantize(hz)
	}
	if got == 0 {
		return fmt.Errorf("%w: %d Hz", ErrInvalidRate, hz)
	}

	d.mu.Lock()
	d.rate = got
	d.mu.Unlock()

	return nil
}

func (d *PacedDevice) SampleRate() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.rate
}

// Interval returns the wall time one transfer lasts at the current rate.
func (d *PacedDevice) Interval() time.Duration {
	rate := d.SampleRate()
	if rate == 0 {
		return 0
	}

	return max(time.Duration(int64(d.BufferLen)*int64(time.Second)/int64(rate)), time.Microsecond)
}

func (d *PacedDevice) Start(cb Callback) error {
	if d.BufferLen < 1 {
		return fmt.Errorf("%w: buffer length %d", ErrDeviceFault, d.BufferLen)
	}
	if d.SampleRate() == 0 {
		return fmt.Errorf("%w: sample rate not set", ErrInvalidRate)
	}

	pace := d.Interval()
	if d.Unpaced {
		pace = 0
	}

	return d.start(cb, pace, d.consume)
}

func (d *PacedDevice) consume(t *Transfer) error {
	if len(t.R) != d.BufferLen {
		return fmt.Errorf("transfer of %d samples, want %d", len(t.R), d.BufferLen)
	}
	if d.Sink == nil {
		return nil
	}

	return d.Sink(t.R, t.G)
}

func (d *PacedDevice) Stop() error { return d.halt() }

func (d *PacedDevice) Close() error {
	d.close()
	return nil
}

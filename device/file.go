// SPDX-License-Identifier: EPL-2.0

package device

import (
	"errors"
	"fmt"
	"io"
)

// FileDevice writes the R and G channels to two writers, for example
// files later replayed to hardware or inspected offline. Transfers run
// as fast as the writers accept them.
type FileDevice struct {
	runner

	r, g io.Writer
	rate uint32
}

// NewFileDevice returns a device writing R to r and G to g.
func NewFileDevice(r, g io.Writer) *FileDevice {
	return &FileDevice{r: r, g: g}
}

// SetSampleRate accepts any positive rate; files have no clock.
func (d *FileDevice) SetSampleRate(hz uint32) error {
	if hz == 0 {
		return fmt.Errorf("%w: 0 Hz", ErrInvalidRate)
	}

	d.mu.Lock()
	d.rate = hz
	d.mu.Unlock()

	return nil
}

func (d *FileDevice) SampleRate() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.rate
}

func (d *FileDevice) Start(cb Callback) error {
	if d.SampleRate() == 0 {
		return fmt.Errorf("%w: sample rate not set", ErrInvalidRate)
	}

	return d.start(cb, 0, d.write)
}

func (d *FileDevice) write(t *Transfer) error {
	if _, err := d.r.Write(t.R); err != nil {
		return fmt.Errorf("writing R: %w", err)
	}
	if _, err := d.g.Write(t.G); err != nil {
		return fmt.Errorf("writing G: %w", err)
	}

	return nil
}

func (d *FileDevice) Stop() error { return d.halt() }

// Close stops the device and closes the writers that are io.Closers.
func (d *FileDevice) Close() error {
	d.close()

	var errs []error
	if c, ok := d.r.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	if c, ok := d.g.(io.Closer); ok && d.g != d.r {
		errs = append(errs, c.Close())
	}

	return errors.Join(errs...)
}

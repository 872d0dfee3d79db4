// SPDX-License-Identifier: EPL-2.0

package device

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Transfer is one buffer pair exchanged with a device.
type Transfer struct {
	// R and G are set by the callback. Both must have the same length.
	R, G []byte

	// Err is set by the device when the previous transfer failed.
	Err error
}

// Callback fills t for the next transfer. A non-nil error stops the
// device and is reported by Err.
type Callback func(t *Transfer) error

// Device is a two-channel output device.
type Device interface {
	// SetSampleRate requests an output rate. The device may pick a
	// nearby rate it can produce; SampleRate returns the rate in effect.
	SetSampleRate(hz uint32) error
	SampleRate() uint32

	// Start begins calling cb from a new goroutine. It returns
	// immediately.
	Start(cb Callback) error

	// Stop asks the device to finish the transfer in progress and waits
	// for the callback goroutine to return.
	Stop() error

	// Done is closed when the callback goroutine has returned.
	Done() <-chan struct{}

	// Err returns the error that stopped the device, if any.
	Err() error

	Close() error
}

// Stats counts completed transfers.
type Stats struct {
	Transfers int64
	Bytes     int64 // per channel
	Faults    int64
}

// runner owns the callback goroutine shared by the device
// implementations.
type runner struct {
	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	running bool
	closed  bool
	err     error

	stats Stats
}

// idle is the Done channel of a device that never started.
var idle = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

var errNilCallback = errors.New("nil callback")

// deliverFunc hands a filled transfer to the hardware.
type deliverFunc func(t *Transfer) error

// start launches the transfer loop. A positive pace spaces the callbacks
// by that interval.
func (r *runner) start(cb Callback, pace time.Duration, deliver deliverFunc) error {
	if cb == nil {
		return errNilCallback
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if r.running {
		return ErrAlreadyStarted
	}

	r.running = true
	r.err = nil
	r.stop = make(chan struct{})
	r.done = make(chan struct{})

	go r.loop(r.stop, r.done, cb, pace, deliver)

	return nil
}

func (r *runner) loop(stop <-chan struct{}, done chan<- struct{}, cb Callback, pace time.Duration, deliver deliverFunc) {
	var tick <-chan time.Time
	if pace > 0 {
		ticker := time.NewTicker(pace)
		defer ticker.Stop()
		tick = ticker.C
	}

	var err error
	defer func() {
		r.mu.Lock()
		r.err = err
		r.running = false
		r.mu.Unlock()
		close(done)
	}()

	var t Transfer
	for {
		if tick != nil {
			select {
			case <-stop:
				return
			case <-tick:
			}
		} else {
			select {
			case <-stop:
				return
			default:
			}
		}

		t.R, t.G = nil, nil
		if err = cb(&t); err != nil {
			return
		}

		t.Err = nil
		if len(t.R) != len(t.G) {
			t.Err = fmt.Errorf("%w: channel lengths %d and %d differ", ErrDeviceFault, len(t.R), len(t.G))
		} else if derr := deliver(&t); derr != nil {
			t.Err = fmt.Errorf("%w: %w", ErrDeviceFault, derr)
		}

		r.mu.Lock()
		if t.Err != nil {
			r.stats.Faults++
		} else {
			r.stats.Transfers++
			r.stats.Bytes += int64(len(t.R))
		}
		r.mu.Unlock()
	}
}

func (r *runner) halt() error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return ErrNotStarted
	}
	select {
	case <-r.stop:
	default:
		close(r.stop)
	}
	done := r.done
	r.mu.Unlock()

	<-done

	return nil
}

func (r *runner) close() {
	_ = r.halt()

	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
}

// Done is closed when the transfer loop has returned.
func (r *runner) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done == nil {
		return idle
	}
	return r.done
}

// Err returns the error returned by the callback that ended the loop.
func (r *runner) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.err
}

// Stats returns the transfer counters.
func (r *runner) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.stats
}

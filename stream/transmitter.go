// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ik5/ampliphase/carrier"
	"github.com/ik5/ampliphase/device"
	"github.com/ik5/ampliphase/synth"
)

// Options configure a Transmitter.
type Options struct {
	CarrierHz  float64
	OutputRate uint32 // requested from the device
	InputRate  uint32
	Mode       synth.Mode
	BufferLen  int
}

// Stats summarizes a finished or running session.
type Stats struct {
	Buffers  int64 // filled and handed to the device
	Frames   int64 // input frames synthesized
	Duration time.Duration
}

// Transmitter synthesizes buffers on demand of a device.
type Transmitter struct {
	dev    device.Device
	filler *synth.Filler
	tuning carrier.Tuning
	log    *slog.Logger

	started time.Time
	stopped time.Time
}

// New configures dev for opts and prepares the synthesis state. The
// device may run at a rate other than the one requested; the carrier
// period is derived from the rate it reports. A carrier frequency that
// does not divide the rate evenly is logged and rounded.
func New(dev device.Device, in synth.Input, opts Options, log *slog.Logger) (*Transmitter, error) {
	if log == nil {
		log = slog.Default()
	}

	if err := dev.SetSampleRate(opts.OutputRate); err != nil {
		log.Warn("stream: couldn't set device sample rate",
			"requested_hz", opts.OutputRate,
			"error", err,
		)
	}

	rate := dev.SampleRate()
	if rate == 0 {
		return nil, fmt.Errorf("%w: device reports no sample rate", device.ErrInvalidRate)
	}
	if rate != opts.OutputRate {
		log.Warn("stream: device runs at a different sample rate",
			"requested_hz", opts.OutputRate,
			"actual_hz", rate,
		)
	}

	tuning, err := carrier.Tune(rate, opts.CarrierHz)
	if err != nil {
		return nil, err
	}
	if !tuning.Exact() {
		log.Warn("stream: carrier frequency not an even divisor of the sample rate",
			"requested_hz", tuning.Requested,
			"achieved_hz", tuning.Achieved,
			"requested_samples", tuning.Wanted,
			"achieved_samples", tuning.Period.Len(),
		)
	}

	filler, err := synth.NewFiller(synth.Config{
		Period:     tuning.Period,
		OutputRate: rate,
		InputRate:  opts.InputRate,
		Mode:       opts.Mode,
		BufferLen:  opts.BufferLen,
	}, in)
	if err != nil {
		return nil, err
	}

	log.Info("stream: transmitter ready",
		"sample_rate_hz", rate,
		"carrier_hz", tuning.Achieved,
		"period_samples", tuning.Period.Len(),
		"input_rate_hz", opts.InputRate,
		"mode", opts.Mode.String(),
		"buffer_samples", opts.BufferLen,
	)

	return &Transmitter{
		dev:    dev,
		filler: filler,
		tuning: tuning,
		log:    log,
	}, nil
}

// Tuning returns the carrier period in use.
func (t *Transmitter) Tuning() carrier.Tuning { return t.tuning }

// Run starts the device and blocks until the session ends. It returns an
// error wrapping synth.ErrEndOfInput when the input is exhausted,
// synth.ErrReadInput when reading fails, or device.ErrDeviceFault when a
// transfer fails. Cancelling ctx lets the transfer in progress finish and
// returns nil. A buffer that could not be filled completely is never
// delivered.
func (t *Transmitter) Run(ctx context.Context) error {
	t.started = time.Now()
	defer func() { t.stopped = time.Now() }()

	if err := t.dev.Start(t.transfer); err != nil {
		return fmt.Errorf("starting device: %w", err)
	}

	select {
	case <-ctx.Done():
		t.log.Info("stream: stopping on request", "cause", context.Cause(ctx))
		if err := t.dev.Stop(); err != nil && !errors.Is(err, device.ErrNotStarted) {
			return fmt.Errorf("stopping device: %w", err)
		}
		<-t.dev.Done()
	case <-t.dev.Done():
	}

	err := t.dev.Err()
	stats := t.Stats()
	switch {
	case err == nil:
		t.log.Info("stream: stopped",
			"buffers", stats.Buffers,
			"frames", stats.Frames,
		)
	case errors.Is(err, synth.ErrEndOfInput):
		t.log.Info("stream: out of input samples",
			"buffers", stats.Buffers,
			"frames", stats.Frames,
		)
	case errors.Is(err, synth.ErrReadInput):
		t.log.Error("stream: reading input failed",
			"frames", stats.Frames,
			"error", err,
		)
	case errors.Is(err, device.ErrDeviceFault):
		t.log.Error("stream: device fault",
			"buffers", stats.Buffers,
			"error", err,
		)
	default:
		t.log.Error("stream: stopped on error", "error", err)
	}

	return err
}

// transfer is the device callback.
func (t *Transmitter) transfer(tr *device.Transfer) error {
	if tr.Err != nil {
		return tr.Err
	}

	if _, err := t.filler.Fill(); err != nil {
		return err
	}

	tr.R, tr.G = t.filler.R(), t.filler.G()

	return nil
}

// Stats returns the session counters. Call it after Run returns or from
// the goroutine that called Run.
func (t *Transmitter) Stats() Stats {
	end := t.stopped
	if end.IsZero() {
		end = time.Now()
	}

	var d time.Duration
	if !t.started.IsZero() {
		d = end.Sub(t.started)
	}

	return Stats{
		Buffers:  t.filler.Buffers(),
		Frames:   t.filler.Consumed(),
		Duration: d,
	}
}

// SPDX-License-Identifier: EPL-2.0

// Command ampliphase-inspect measures recorded carrier channels: duty
// cycle, run lengths and the phase lag of R against G.
//
// Usage:
//
//	ampliphase-inspect -r r.u8 -g g.u8 [-s rate] [-carrier Hz | -period n]
//	ampliphase-inspect -w capture.wav [-carrier Hz | -period n]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ik5/ampliphase/carrier"
	"github.com/ik5/ampliphase/config"
	"github.com/ik5/ampliphase/internal/analysis"
)

type options struct {
	r, g, wav  string
	outputRate uint
	carrierHz  float64
	period     int
	skip       int
	window     int
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "ampliphase-inspect:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	var r, g []byte
	if opts.wav != "" {
		c, err := readCapture(opts.wav, opts)
		if err != nil {
			return err
		}
		r, g = c.r, c.g
		if opts.outputRate == 0 {
			opts.outputRate = uint(c.sampleRate)
		}
	} else {
		if r, err = readChannel(opts.r, opts); err != nil {
			return fmt.Errorf("reading R: %w", err)
		}
		if g, err = readChannel(opts.g, opts); err != nil {
			return fmt.Errorf("reading G: %w", err)
		}
	}

	if len(r) != len(g) {
		n := min(len(r), len(g))
		fmt.Fprintf(stderr, "channels differ in length (%d and %d), comparing %d samples\n", len(r), len(g), n)
		r, g = r[:n], g[:n]
	}

	period := opts.period
	if period == 0 {
		if opts.outputRate == 0 {
			opts.outputRate = config.DefaultOutputRate
		}
		tuning, err := carrier.Tune(uint32(opts.outputRate), opts.carrierHz)
		if err != nil {
			return err
		}
		period = tuning.Period.Len()
	}

	report, err := analysis.Measure(r, g, period)
	if err != nil {
		return err
	}

	var peak float64
	if opts.outputRate > 0 {
		if peak, err = analysis.PeakFrequency(r, float64(opts.outputRate)); err != nil {
			return err
		}
	}

	printReport(stdout, report, period, opts.outputRate, peak)

	return nil
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("ampliphase-inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.r, "r", "", "R channel file")
	fs.StringVar(&opts.g, "g", "", "G channel file")
	fs.StringVar(&opts.wav, "w", "", "stereo WAV capture, instead of -r and -g")
	fs.UintVar(&opts.outputRate, "s", 0, "DAC sample rate in Hz (default from the capture, else 100 MHz)")
	fs.Float64Var(&opts.carrierHz, "carrier", config.DefaultCarrierHz, "carrier frequency in Hz")
	fs.IntVar(&opts.period, "period", 0, "carrier period in samples, overrides -carrier")
	fs.IntVar(&opts.skip, "skip", 0, "samples to skip at the start")
	fs.IntVar(&opts.window, "n", 1<<20, "samples to analyze, 0 for all")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch {
	case opts.wav == "" && (opts.r == "" || opts.g == ""):
		return options{}, errors.New("need -r and -g, or -w")
	case opts.wav != "" && (opts.r != "" || opts.g != ""):
		return options{}, errors.New("-w excludes -r and -g")
	case opts.period < 0 || opts.period%2 != 0:
		return options{}, fmt.Errorf("%w: %d samples", carrier.ErrInvalidPeriod, opts.period)
	case opts.skip < 0 || opts.window < 0:
		return options{}, errors.New("-skip and -n must not be negative")
	}

	return opts, nil
}

// window cuts the analyzed range out of a channel.
func window(b []byte, opts options) []byte {
	b = b[min(opts.skip, len(b)):]
	if opts.window > 0 {
		b = b[:min(opts.window, len(b))]
	}
	return b
}

func readChannel(path string, opts options) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return window(b, opts), nil
}

func printReport(w io.Writer, rep analysis.Report, period int, outputRate uint, peak float64) {
	fmt.Fprintf(w, "samples  %d\n", rep.Samples)
	if outputRate > 0 {
		fmt.Fprintf(w, "period   %d samples (%.0f Hz at %d Hz)\n", period, float64(outputRate)/float64(period), outputRate)
		fmt.Fprintf(w, "peak     %.0f Hz\n", peak)
	} else {
		fmt.Fprintf(w, "period   %d samples\n", period)
	}
	fmt.Fprintf(w, "duty R   %.2f%%\n", 100*rep.DutyR)
	fmt.Fprintf(w, "duty G   %.2f%%\n", 100*rep.DutyG)
	fmt.Fprintf(w, "runs     %d..%d samples\n", rep.MinRun, rep.MaxRun)
	fmt.Fprintf(w, "lag      %d samples (%.1f°)\n", rep.Lag, rep.Degrees)
}

// SPDX-License-Identifier: EPL-2.0

// Command ampliphase synthesizes a phase-modulated square carrier from
// 16-bit audio and hands it to a two-channel DAC device.
//
// Usage:
//
//	ampliphase [-config file] [-f input] [-i] [-s output rate] [-S input rate]
//	           [-carrier Hz] [-device file|wav|paced|null] [-r file] [-g file] [-w file]
//
// Input is headerless s16le on stdin unless -f names a file. WAV, AIFF,
// MP3 and Ogg Vorbis files are decoded and converted to the input rate.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/ampliphase/audio"
	"github.com/ik5/ampliphase/config"
	"github.com/ik5/ampliphase/stream"
	"github.com/ik5/ampliphase/synth"
)

// env holds the process streams so run can be tested.
type env struct {
	stdin          io.Reader
	stdout, stderr io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx, os.Args[1:], env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr})
	stop()

	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "ampliphase:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, e env) error {
	cfg, err := parseConfig(args, e.stderr)
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(e.stderr, &slog.HandlerOptions{Level: level}))

	opts, err := cfg.StreamOptions()
	if err != nil {
		return err
	}

	src, err := openInput(cfg.Input, opts.Mode.Channels(), e.stdin)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer src.Close()

	dev, err := openDevice(cfg.Device, cfg.Output, e.stdout)
	if err != nil {
		return fmt.Errorf("opening device: %w", err)
	}
	defer func() {
		if err := dev.Close(); err != nil {
			log.Error("ampliphase: closing device", "error", err)
		}
	}()

	log.Debug("ampliphase: starting",
		"input", cfg.Input.Path,
		"device", cfg.Device.Kind,
		"mode", opts.Mode.String(),
	)

	tx, err := stream.New(dev, audio.NewFrameReader(src), opts, log)
	if err != nil {
		return err
	}

	err = tx.Run(ctx)

	stats := tx.Stats()
	log.Debug("ampliphase: done",
		"buffers", stats.Buffers,
		"frames", stats.Frames,
		"duration", stats.Duration,
	)

	// running out of input is how a session normally ends
	if errors.Is(err, synth.ErrEndOfInput) {
		return nil
	}

	return err
}

// parseConfig loads the configuration file, if any, and applies the
// flags set on the command line over it.
func parseConfig(args []string, stderr io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("ampliphase", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "YAML configuration file")
		inputPath  = fs.String("f", "-", "input file, - for s16le on stdin")
		iq         = fs.Bool("i", false, "IQ mode, stereo input")
		outputRate = fs.Uint("s", config.DefaultOutputRate, "DAC sample rate in Hz")
		inputRate  = fs.Uint("S", config.DefaultInputRate, "input sample rate in Hz")
		carrierHz  = fs.Float64("carrier", config.DefaultCarrierHz, "carrier frequency in Hz")
		bufferLen  = fs.Int("b", config.DefaultBufferLen, "samples per channel and transfer")
		kind       = fs.String("device", config.DeviceFile, "output device: file, wav, paced or null")
		rPath      = fs.String("r", "", "R channel output file, - for stdout")
		gPath      = fs.String("g", "", "G channel output file")
		wavPath    = fs.String("w", "", "capture file of the wav device")
		verbose    = fs.Bool("v", false, "debug logging")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "f":
			cfg.Input.Path = *inputPath
		case "i":
			if *iq {
				cfg.Input.Mode = synth.IQ.String()
			} else {
				cfg.Input.Mode = synth.Ampliphase.String()
			}
		case "s":
			cfg.Output.SampleRateHz = uint32(*outputRate)
		case "S":
			cfg.Input.SampleRateHz = uint32(*inputRate)
		case "carrier":
			cfg.Carrier.FrequencyHz = *carrierHz
		case "b":
			cfg.Output.BufferSamples = *bufferLen
		case "device":
			cfg.Device.Kind = *kind
		case "r":
			cfg.Device.R = *rPath
		case "g":
			cfg.Device.G = *gPath
		case "w":
			cfg.Device.Path = *wavPath
		case "v":
			if *verbose {
				cfg.LogLevel = "debug"
			}
		}
	})

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

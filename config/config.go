// SPDX-License-Identifier: EPL-2.0

// Package config holds the transmitter configuration, its defaults and
// its YAML file format.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/ampliphase/stream"
	"github.com/ik5/ampliphase/synth"
)

// Defaults
const (
	DefaultCarrierHz  = 1_000_000
	DefaultOutputRate = 100_000_000
	DefaultInputRate  = 48_000
	DefaultBufferLen  = 1280 * 1024 // one FL2K transfer
	DefaultMode       = "ampliphase"
	DefaultLogLevel   = "info"
)

// Device kinds
const (
	DeviceFile  = "file"  // write R and G to files
	DevicePaced = "paced" // consume in real time and discard
	DeviceNull  = "null"  // consume as fast as possible and discard
	DeviceWav   = "wav"   // capture both channels to a stereo wav file
)

// Config is the complete transmitter configuration.
type Config struct {
	Carrier  CarrierConfig `yaml:"carrier"`
	Output   OutputConfig  `yaml:"output"`
	Input    InputConfig   `yaml:"input"`
	Device   DeviceConfig  `yaml:"device"`
	LogLevel string        `yaml:"log_level"` // debug, info, warn, error
}

// CarrierConfig sets the carrier.
type CarrierConfig struct {
	FrequencyHz float64 `yaml:"frequency_hz"`
}

// OutputConfig sets the DAC side.
type OutputConfig struct {
	SampleRateHz  uint32 `yaml:"sample_rate_hz"`
	BufferSamples int    `yaml:"buffer_samples"` // per channel and transfer
}

// InputConfig sets the audio side.
type InputConfig struct {
	Path         string `yaml:"path"` // "-" or empty for stdin
	SampleRateHz uint32 `yaml:"sample_rate_hz"`
	Mode         string `yaml:"mode"` // ampliphase or iq
}

// DeviceConfig selects where buffers go.
type DeviceConfig struct {
	Kind string `yaml:"kind"`
	R    string `yaml:"r"` // output file for the R channel, "-" for stdout
	G    string `yaml:"g"` // output file for the G channel

	// Path is the capture file of the wav device.
	Path string `yaml:"path"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Carrier: CarrierConfig{FrequencyHz: DefaultCarrierHz},
		Output: OutputConfig{
			SampleRateHz:  DefaultOutputRate,
			BufferSamples: DefaultBufferLen,
		},
		Input: InputConfig{
			Path:         "-",
			SampleRateHz: DefaultInputRate,
			Mode:         DefaultMode,
		},
		Device: DeviceConfig{
			Kind: DeviceFile,
			R:    "ampliphase_r.u8",
			G:    "ampliphase_g.u8",
			Path: "ampliphase.wav",
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML configuration file over the defaults and validates
// the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks cfg.
func Validate(cfg *Config) error {
	if cfg.Output.SampleRateHz == 0 {
		return fmt.Errorf("%w: output.sample_rate_hz must be > 0", ErrInvalidRate)
	}
	if cfg.Input.SampleRateHz == 0 {
		return fmt.Errorf("%w: input.sample_rate_hz must be > 0", ErrInvalidRate)
	}

	// a period needs at least one High and one Low sample
	if f := cfg.Carrier.FrequencyHz; !(f > 0) || f > float64(cfg.Output.SampleRateHz)/2 {
		return fmt.Errorf("%w: %g Hz at %d Hz output", ErrInvalidCarrier, f, cfg.Output.SampleRateHz)
	}

	if cfg.Output.BufferSamples <= 0 {
		return fmt.Errorf("%w: output.buffer_samples must be > 0", ErrInvalidBuffer)
	}

	if _, err := cfg.SynthMode(); err != nil {
		return err
	}

	switch cfg.Device.Kind {
	case DeviceFile:
		if cfg.Device.R == "" || cfg.Device.G == "" {
			return fmt.Errorf("%w: file device needs device.r and device.g", ErrInvalidDevice)
		}
		if cfg.Device.R == cfg.Device.G {
			return fmt.Errorf("%w: device.r and device.g are both %q", ErrInvalidDevice, cfg.Device.R)
		}
	case DeviceWav:
		if cfg.Device.Path == "" {
			return fmt.Errorf("%w: wav device needs device.path", ErrInvalidDevice)
		}
	case DevicePaced, DeviceNull:
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidDevice, cfg.Device.Kind)
	}

	if _, err := cfg.Level(); err != nil {
		return err
	}

	return nil
}

// SynthMode parses Input.Mode.
func (c *Config) SynthMode() (synth.Mode, error) {
	m, err := synth.ParseMode(c.Input.Mode)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidMode, err)
	}

	return m, nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return l, nil
}

// StreamOptions converts cfg for stream.New.
func (c *Config) StreamOptions() (stream.Options, error) {
	mode, err := c.SynthMode()
	if err != nil {
		return stream.Options{}, err
	}

	return stream.Options{
		CarrierHz:  c.Carrier.FrequencyHz,
		OutputRate: c.Output.SampleRateHz,
		InputRate:  c.Input.SampleRateHz,
		Mode:       mode,
		BufferLen:  c.Output.BufferSamples,
	}, nil
}

// SPDX-License-Identifier: EPL-2.0

package config

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/ampliphase/synth"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, DeviceFile, cfg.Device.Kind)
	assert.Equal(t, "ampliphase.wav", cfg.Device.Path)

	opts, err := cfg.StreamOptions()
	require.NoError(t, err)
	assert.InDelta(t, 1e6, opts.CarrierHz, 0)
	assert.EqualValues(t, 100_000_000, opts.OutputRate)
	assert.EqualValues(t, 48_000, opts.InputRate)
	assert.Equal(t, synth.Ampliphase, opts.Mode)
	assert.Equal(t, 1280*1024, opts.BufferLen)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join("testdata", "iq.yaml"))
	require.NoError(t, err)

	assert.InDelta(t, 7.15e6, cfg.Carrier.FrequencyHz, 0)
	assert.EqualValues(t, 130_000_000, cfg.Output.SampleRateHz)
	assert.Equal(t, 655360, cfg.Output.BufferSamples)
	assert.Equal(t, "baseband.wav", cfg.Input.Path)
	assert.EqualValues(t, 96_000, cfg.Input.SampleRateHz)
	assert.Equal(t, DevicePaced, cfg.Device.Kind)

	mode, err := cfg.SynthMode()
	require.NoError(t, err)
	assert.Equal(t, synth.IQ, mode)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_KeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join("testdata", "partial.yaml"))
	require.NoError(t, err)

	want := Default()
	want.Carrier.FrequencyHz = 1_440_000
	assert.Equal(t, want, cfg)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	_, err = Load(filepath.Join("testdata", "malformed.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")

	_, err = Load(filepath.Join("testdata", "bad_mode.yaml"))
	require.ErrorIs(t, err, ErrInvalidMode)
	require.ErrorIs(t, err, synth.ErrInvalidMode)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero output rate", func(c *Config) { c.Output.SampleRateHz = 0 }, ErrInvalidRate},
		{"zero input rate", func(c *Config) { c.Input.SampleRateHz = 0 }, ErrInvalidRate},
		{"zero carrier", func(c *Config) { c.Carrier.FrequencyHz = 0 }, ErrInvalidCarrier},
		{"negative carrier", func(c *Config) { c.Carrier.FrequencyHz = -1 }, ErrInvalidCarrier},
		{"carrier above nyquist", func(c *Config) { c.Carrier.FrequencyHz = 50_000_001 }, ErrInvalidCarrier},
		{"zero buffer", func(c *Config) { c.Output.BufferSamples = 0 }, ErrInvalidBuffer},
		{"unknown mode", func(c *Config) { c.Input.Mode = "ssb" }, ErrInvalidMode},
		{"unknown device", func(c *Config) { c.Device.Kind = "fl2k" }, ErrInvalidDevice},
		{"file device without outputs", func(c *Config) { c.Device.R = "" }, ErrInvalidDevice},
		{"file device with one output", func(c *Config) { c.Device.G = c.Device.R }, ErrInvalidDevice},
		{"wav device without path", func(c *Config) { c.Device = DeviceConfig{Kind: DeviceWav} }, ErrInvalidDevice},
		{"wav device", func(c *Config) { c.Device = DeviceConfig{Kind: DeviceWav, Path: "cap.wav"} }, nil},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)
			require.ErrorIs(t, Validate(cfg), tt.want)
		})
	}

	t.Run("carrier at nyquist", func(t *testing.T) {
		t.Parallel()

		cfg := Default()
		cfg.Carrier.FrequencyHz = 50_000_000
		assert.NoError(t, Validate(cfg))
	})

	t.Run("discarding devices need no outputs", func(t *testing.T) {
		t.Parallel()

		cfg := Default()
		cfg.Device = DeviceConfig{Kind: DeviceNull}
		assert.NoError(t, Validate(cfg))
	})
}

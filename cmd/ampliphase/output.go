// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/ampliphase/config"
	"github.com/ik5/ampliphase/device"
	"github.com/ik5/ampliphase/formats/wav"
)

// captureDevice records every transfer into a stereo WAV file.
type captureDevice struct {
	*device.PacedDevice

	w    *wav.Writer
	file *os.File
}

func (d *captureDevice) Close() error {
	if err := d.PacedDevice.Close(); err != nil {
		return err
	}

	return errors.Join(d.w.Close(), d.file.Close())
}

// stdout hides the Close method of the process output.
type stdout struct{ io.Writer }

func createOutput(path string, out io.Writer) (io.Writer, error) {
	if path == "-" {
		return stdout{out}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func openDevice(cfg config.DeviceConfig, output config.OutputConfig, out io.Writer) (device.Device, error) {
	switch cfg.Kind {
	case config.DeviceFile:
		r, err := createOutput(cfg.R, out)
		if err != nil {
			return nil, err
		}
		g, err := createOutput(cfg.G, out)
		if err != nil {
			if c, ok := r.(io.Closer); ok {
				_ = c.Close()
			}
			return nil, err
		}

		return device.NewFileDevice(r, g), nil

	case config.DeviceWav:
		f, err := os.Create(cfg.Path)
		if err != nil {
			return nil, err
		}
		w := wav.NewWriter(f, int(output.SampleRateHz))

		return &captureDevice{
			PacedDevice: &device.PacedDevice{
				BufferLen: output.BufferSamples,
				Sink:      w.WriteChannels,
				Unpaced:   true,
			},
			w:    w,
			file: f,
		}, nil

	case config.DevicePaced:
		return &device.PacedDevice{BufferLen: output.BufferSamples}, nil

	case config.DeviceNull:
		return &device.PacedDevice{BufferLen: output.BufferSamples, Unpaced: true}, nil

	default:
		return nil, fmt.Errorf("%w: unknown kind %q", config.ErrInvalidDevice, cfg.Kind)
	}
}

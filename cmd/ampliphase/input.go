// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/ik5/ampliphase/audio"
	"github.com/ik5/ampliphase/config"
	"github.com/ik5/ampliphase/formats/aiff"
	"github.com/ik5/ampliphase/formats/mp3"
	"github.com/ik5/ampliphase/formats/vorbis"
	"github.com/ik5/ampliphase/formats/wav"
)

const readBufferSize = 1 << 16

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

// input is a Source owning the file it reads.
type input struct {
	audio.Source
	file *os.File
}

func (in *input) Close() error {
	err := in.Source.Close()
	if in.file != nil {
		err = errors.Join(err, in.file.Close())
	}

	return err
}

// openInput returns a Source of the configured rate and channel count.
// Files with a registered extension are decoded and converted; anything
// else is read as s16le at the configured rate.
func openInput(cfg config.InputConfig, channels int, stdin io.Reader) (audio.Source, error) {
	rate := int(cfg.SampleRateHz)

	if cfg.Path == "" || cfg.Path == "-" {
		return &input{Source: audio.NewRawSource(bufio.NewReaderSize(stdin, readBufferSize), rate, channels)}, nil
	}

	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, err
	}

	dec, ok := newRegistry().ForPath(cfg.Path)
	if !ok {
		return &input{Source: audio.NewRawSource(bufio.NewReaderSize(f, readBufferSize), rate, channels), file: f}, nil
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	adapted, err := audio.Adapt(src, rate, channels)
	if err != nil {
		_ = src.Close()
		_ = f.Close()
		return nil, err
	}

	return &input{Source: adapted, file: f}, nil
}

// Package spa reads the transmittance array out of Thermo OMNIC SPA files.
//
// Only one layout is supported: a flat run of 32-bit floats at a fixed byte
// offset, as described by config.InstrumentConfig. There is no header
// parsing and no format detection.
package spa

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/RyanBlaney/sonido-spa/config"
	"github.com/RyanBlaney/sonido-spa/logging"
	"github.com/RyanBlaney/sonido-spa/spectrum"
)

// Reader loads spectra using a fixed instrument profile
type Reader struct {
	cfg     config.InstrumentConfig
	order   binary.ByteOrder
	samples int
	logger  logging.Logger
}

// NewReader validates cfg and returns a reader for it
func NewReader(cfg config.InstrumentConfig) (*Reader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid instrument profile: %w", err)
	}

	var order binary.ByteOrder = binary.LittleEndian
	if cfg.ByteOrder == config.ByteOrderBig {
		order = binary.BigEndian
	}

	return &Reader{
		cfg:     cfg,
		order:   order,
		samples: cfg.SampleCount(),
		logger: logging.WithFields(logging.Fields{
			"component":  "spa_reader",
			"instrument": cfg.Name,
		}),
	}, nil
}

// SampleCount returns the number of samples every spectrum will have
func (r *Reader) SampleCount() int {
	return r.samples
}

// ReadFile reads one spectrum from the SPA file at path
func (r *Reader) ReadFile(path string) (spectrum.Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &spectrum.FileOpenError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	s, n, err := r.read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	expected := r.samples * config.BytesPerSample
	if n < expected {
		if r.cfg.ShortRead != config.ShortReadZeroFill {
			return nil, &spectrum.ShortReadError{Path: path, Expected: expected, Got: n}
		}
		r.logger.Warn("SPA file shorter than data region, zero-filling", logging.Fields{
			"path":     path,
			"expected": expected,
			"got":      n,
		})
	}

	r.logger.Debug("Read SPA file", logging.Fields{
		"path":    path,
		"samples": len(s),
	})
	return s, nil
}

// Read reads one spectrum from src. A source that ends early is treated
// according to the short-read policy of the profile.
func (r *Reader) Read(src io.ReaderAt) (spectrum.Spectrum, error) {
	s, n, err := r.read(src)
	if err != nil {
		return nil, err
	}
	if expected := r.samples * config.BytesPerSample; n < expected && r.cfg.ShortRead != config.ShortReadZeroFill {
		return nil, &spectrum.ShortReadError{Path: "<reader>", Expected: expected, Got: n}
	}
	return s, nil
}

// read decodes whatever part of the data region src holds. Samples past the
// end of src stay zero; n is the number of data bytes actually present.
func (r *Reader) read(src io.ReaderAt) (spectrum.Spectrum, int, error) {
	size := r.samples * config.BytesPerSample
	buf := make([]byte, size)

	section := io.NewSectionReader(src, r.cfg.DataOffset, int64(size))
	n, err := io.ReadFull(section, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, n, err
	}

	s := make(spectrum.Spectrum, r.samples)
	for i := 0; i < n/config.BytesPerSample; i++ {
		bits := r.order.Uint32(buf[i*config.BytesPerSample : (i+1)*config.BytesPerSample])
		s[i] = float64(math.Float32frombits(bits))
	}
	return s, n, nil
}

// ReadSet reads every path in order into one set, labelled by path. The
// first failing file aborts the whole read.
func (r *Reader) ReadSet(paths []string) (*spectrum.Set, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no SPA files given")
	}

	set, err := spectrum.NewEmptySet(paths, r.samples)
	if err != nil {
		return nil, err
	}

	for i, path := range paths {
		s, err := r.ReadFile(path)
		if err != nil {
			return nil, err
		}
		copy(set.Row(i), s)
	}

	r.logger.Debug("Read SPA file set", logging.Fields{
		"files":   len(paths),
		"samples": r.samples,
	})
	return set, nil
}

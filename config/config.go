// Package config holds the instrument profile and output settings for SPA
// extraction. Profiles are plain JSON; any field left out of a profile file
// keeps its default.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Byte orders understood by the SPA reader
const (
	ByteOrderLittle = "little"
	ByteOrderBig    = "big"
)

// Short-read policies for files that end before the last sample
const (
	ShortReadFail     = "fail"
	ShortReadZeroFill = "zero_fill"
)

// BytesPerSample is the width of one stored sample (float32)
const BytesPerSample = 4

// InstrumentConfig describes where the sample array lives in an SPA file and
// how sample indices map onto wavenumbers.
type InstrumentConfig struct {
	Name string `json:"name"`

	// Byte layout
	DataOffset int64  `json:"data_offset"` // first byte of the first sample
	DataEnd    int64  `json:"data_end"`    // last byte of the last sample (inclusive)
	ByteOrder  string `json:"byte_order"`  // "little", "big"
	ShortRead  string `json:"short_read"`  // "fail", "zero_fill"

	// Calibration (inverse cm)
	MaxWavenumber float64 `json:"max_wavenumber"`
	MinWavenumber float64 `json:"min_wavenumber"`
}

// OutputConfig controls how results are written
type OutputConfig struct {
	Precision int    `json:"precision"` // significant digits, -1 for shortest round-trip
	Directory string `json:"directory"`
	Workbook  bool   `json:"workbook"` // also write an .xlsx workbook
}

// Config is the full profile consumed by the spa2csv command
type Config struct {
	Instrument InstrumentConfig `json:"instrument"`
	Output     OutputConfig     `json:"output"`
}

// DefaultInstrumentConfig returns the calibration of the Nicolet FTIR the
// extraction format was worked out against.
func DefaultInstrumentConfig() InstrumentConfig {
	return InstrumentConfig{
		Name:          "omnic-default",
		DataOffset:    0x49C,
		DataEnd:       0x036927,
		ByteOrder:     ByteOrderLittle,
		ShortRead:     ShortReadFail,
		MaxWavenumber: 3999.9907,
		MinWavenumber: 649.9812,
	}
}

// DefaultOutputConfig returns 6 significant digits into the working directory, CSV only
func DefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Precision: 6,
		Directory: ".",
		Workbook:  false,
	}
}

// DefaultConfig returns the default profile
func DefaultConfig() *Config {
	return &Config{
		Instrument: DefaultInstrumentConfig(),
		Output:     DefaultOutputConfig(),
	}
}

// SampleCount returns the number of float32 samples between DataOffset and DataEnd
func (c InstrumentConfig) SampleCount() int {
	return int((c.DataEnd - c.DataOffset + 1) / BytesPerSample)
}

// Validate checks the instrument profile for internal consistency
func (c InstrumentConfig) Validate() error {
	if c.DataOffset < 0 {
		return fmt.Errorf("data offset must not be negative: %d", c.DataOffset)
	}
	if c.DataEnd <= c.DataOffset {
		return fmt.Errorf("data end 0x%X must be after data offset 0x%X", c.DataEnd, c.DataOffset)
	}
	if (c.DataEnd-c.DataOffset+1)%BytesPerSample != 0 {
		return fmt.Errorf("data region 0x%X-0x%X is not a whole number of %d-byte samples",
			c.DataOffset, c.DataEnd, BytesPerSample)
	}
	if c.SampleCount() < 2 {
		return fmt.Errorf("data region holds %d samples, need at least 2", c.SampleCount())
	}
	if c.MaxWavenumber <= c.MinWavenumber {
		return fmt.Errorf("max wavenumber %g must exceed min wavenumber %g", c.MaxWavenumber, c.MinWavenumber)
	}
	switch c.ByteOrder {
	case ByteOrderLittle, ByteOrderBig:
	default:
		return fmt.Errorf("unsupported byte order %q", c.ByteOrder)
	}
	switch c.ShortRead {
	case ShortReadFail, ShortReadZeroFill:
	default:
		return fmt.Errorf("unsupported short read policy %q", c.ShortRead)
	}
	return nil
}

// Validate checks the output settings
func (c OutputConfig) Validate() error {
	if c.Precision < -1 {
		return fmt.Errorf("precision must be -1 or a digit count: %d", c.Precision)
	}
	if c.Directory == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	return nil
}

// Validate checks the whole profile
func (c *Config) Validate() error {
	if err := c.Instrument.Validate(); err != nil {
		return fmt.Errorf("instrument: %w", err)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// LoadFile reads a JSON profile on top of DefaultConfig and validates the result
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return cfg, nil
}

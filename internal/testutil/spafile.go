// Package testutil builds fixtures shared by the package tests.
package testutil

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// EncodeSPA returns the bytes of a synthetic SPA file: offset bytes of 0xFF
// filler followed by samples as little-endian float32.
func EncodeSPA(offset int, samples []float32) []byte {
	data := make([]byte, offset+4*len(samples))
	for i := 0; i < offset; i++ {
		data[i] = 0xFF
	}
	for i, v := range samples {
		binary.LittleEndian.PutUint32(data[offset+4*i:], math.Float32bits(v))
	}
	return data
}

// WriteSPAFile writes a synthetic SPA file named name into dir and returns its path
func WriteSPAFile(t *testing.T, dir, name string, offset int, samples []float32) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, EncodeSPA(offset, samples), 0o644); err != nil {
		t.Fatalf("write SPA fixture %s: %v", path, err)
	}
	return path
}

// Float64s widens float32 samples the same way the reader does
func Float64s(samples []float32) []float64 {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = float64(v)
	}
	return out
}

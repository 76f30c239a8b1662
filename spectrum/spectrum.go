// Package spectrum defines the data model shared by the SPA reader, the
// processing algorithms and the exporters: spectra, labelled spectrum sets,
// the wavenumber axis, validated bounds and range selectors.
package spectrum

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Spectrum is one transmittance (or absorbance) trace. Index 0 is the
// highest wavenumber.
type Spectrum []float64

// Set is a labelled collection of spectra sharing one sample count. The
// samples live in a single row-major matrix, one row per spectrum.
type Set struct {
	labels []string
	data   *mat.Dense
}

// NewSet copies spectra into a new Set. Every spectrum must have the same
// non-zero length and there must be one label per spectrum.
func NewSet(labels []string, spectra []Spectrum) (*Set, error) {
	if len(spectra) == 0 {
		return nil, fmt.Errorf("spectrum set needs at least one spectrum")
	}
	if len(labels) != len(spectra) {
		return nil, fmt.Errorf("got %d labels for %d spectra", len(labels), len(spectra))
	}

	samples := len(spectra[0])
	if samples == 0 {
		return nil, fmt.Errorf("spectrum %q is empty", labels[0])
	}

	data := mat.NewDense(len(spectra), samples, nil)
	for i, s := range spectra {
		if len(s) != samples {
			return nil, fmt.Errorf("spectrum %q has %d samples, expected %d", labels[i], len(s), samples)
		}
		data.SetRow(i, s)
	}

	return &Set{
		labels: append([]string(nil), labels...),
		data:   data,
	}, nil
}

// NewEmptySet allocates a zeroed set with the given labels and sample count
func NewEmptySet(labels []string, samples int) (*Set, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("spectrum set needs at least one spectrum")
	}
	if samples < 1 {
		return nil, fmt.Errorf("sample count must be positive, got %d", samples)
	}
	return &Set{
		labels: append([]string(nil), labels...),
		data:   mat.NewDense(len(labels), samples, nil),
	}, nil
}

// Len returns the number of spectra
func (s *Set) Len() int {
	return len(s.labels)
}

// Samples returns the per-spectrum sample count
func (s *Set) Samples() int {
	_, c := s.data.Dims()
	return c
}

// Label returns the label of spectrum i
func (s *Set) Label(i int) string {
	return s.labels[i]
}

// Labels returns a copy of all labels in set order
func (s *Set) Labels() []string {
	return append([]string(nil), s.labels...)
}

// Spectrum returns a copy of spectrum i
func (s *Set) Spectrum(i int) Spectrum {
	return append(Spectrum(nil), s.data.RawRowView(i)...)
}

// Row returns spectrum i without copying. Writes go straight into the set.
func (s *Set) Row(i int) []float64 {
	return s.data.RawRowView(i)
}

// At returns sample j of spectrum i
func (s *Set) At(i, j int) float64 {
	return s.data.At(i, j)
}

// Matrix exposes the backing matrix read-only
func (s *Set) Matrix() mat.Matrix {
	return s.data
}

// Clone returns a deep copy of the set
func (s *Set) Clone() *Set {
	return &Set{
		labels: s.Labels(),
		data:   mat.DenseCopyOf(s.data),
	}
}

// Package baseline implements the constant offset correction that lines a set
// of spectra up with their common mean over a reference wavenumber region.
//
// The correction for spectrum j is the mean, over the reference interval, of
// (mean spectrum - spectrum j). Adding it to every sample of spectrum j
// shifts the trace vertically so that on that interval all spectra agree
// with their average. It is a drift correction, not a recalibration.
package baseline

import (
	"fmt"

	"github.com/RyanBlaney/sonido-spa/algorithms/common"
	"github.com/RyanBlaney/sonido-spa/logging"
	"github.com/RyanBlaney/sonido-spa/spectrum"
	"gonum.org/v1/gonum/floats"
)

// Profile holds one additive offset per spectrum, in set order
type Profile []float64

// Compute derives the correction profile for set over the reference region ref
func Compute(set *spectrum.Set, ref spectrum.BoundPair, axis *spectrum.Axis) (Profile, error) {
	if set == nil {
		return nil, fmt.Errorf("spectrum set cannot be nil")
	}
	if axis == nil {
		return nil, fmt.Errorf("wavenumber axis cannot be nil")
	}
	if axis.Len() != set.Samples() {
		return nil, fmt.Errorf("axis has %d samples, spectra have %d", axis.Len(), set.Samples())
	}

	first, last := spectrum.Closed(ref).Resolve(axis)

	rows := make([][]float64, set.Len())
	for j := range rows {
		rows[j] = set.Row(j)
	}
	mean, err := common.MeanRows(nil, rows...)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean spectrum: %w", err)
	}

	profile := make(Profile, set.Len())
	difference := make([]float64, set.Samples())
	for j, row := range rows {
		floats.SubTo(difference, mean, row)
		profile[j], err = common.MeanRange(difference, first, last)
		if err != nil {
			return nil, fmt.Errorf("failed to average difference for %q: %w", set.Label(j), err)
		}
	}

	logging.Debug("Computed constant correction", logging.Fields{
		"component":   "baseline_corrector",
		"reference":   ref.String(),
		"first_index": first,
		"last_index":  last,
		"spectra":     set.Len(),
	})

	return profile, nil
}

// Apply returns a new set with profile[j] added to every sample of spectrum j
func Apply(set *spectrum.Set, profile Profile) (*spectrum.Set, error) {
	if set == nil {
		return nil, fmt.Errorf("spectrum set cannot be nil")
	}
	if len(profile) != set.Len() {
		return nil, fmt.Errorf("profile has %d offsets for %d spectra", len(profile), set.Len())
	}

	corrected := set.Clone()
	for j, offset := range profile {
		floats.AddConst(offset, corrected.Row(j))
	}
	return corrected, nil
}

// Correct computes the profile for ref and applies it in one step
func Correct(set *spectrum.Set, ref spectrum.BoundPair, axis *spectrum.Axis) (*spectrum.Set, Profile, error) {
	profile, err := Compute(set, ref, axis)
	if err != nil {
		return nil, nil, err
	}
	corrected, err := Apply(set, profile)
	if err != nil {
		return nil, nil, err
	}
	return corrected, profile, nil
}

// Package grouping combines replicate measurements by averaging contiguous
// runs of spectra.
package grouping

import (
	"fmt"

	"github.com/RyanBlaney/sonido-spa/algorithms/common"
	"github.com/RyanBlaney/sonido-spa/logging"
	"github.com/RyanBlaney/sonido-spa/spectrum"
)

// Average reduces set to set.Len()/groupSize spectra. Output g is the
// element-wise mean of inputs g*groupSize .. g*groupSize+groupSize-1 and is
// labelled after the first of them.
func Average(set *spectrum.Set, groupSize int) (*spectrum.Set, error) {
	if set == nil {
		return nil, fmt.Errorf("spectrum set cannot be nil")
	}
	if groupSize < 1 || set.Len()%groupSize != 0 {
		return nil, &spectrum.GroupSizeError{Count: set.Len(), GroupSize: groupSize}
	}

	numGroups := set.Len() / groupSize
	labels := make([]string, numGroups)
	for g := range labels {
		labels[g] = set.Label(g * groupSize)
	}

	out, err := spectrum.NewEmptySet(labels, set.Samples())
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, groupSize)
	for g := 0; g < numGroups; g++ {
		for k := range rows {
			rows[k] = set.Row(g*groupSize + k)
		}
		if _, err := common.MeanRows(out.Row(g), rows...); err != nil {
			return nil, fmt.Errorf("failed to average group %d: %w", g, err)
		}
	}

	logging.Debug("Averaged spectrum groups", logging.Fields{
		"component":  "group_averager",
		"spectra":    set.Len(),
		"group_size": groupSize,
		"groups":     numGroups,
	})

	return out, nil
}

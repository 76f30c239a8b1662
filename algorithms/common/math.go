package common

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Basic statistical helpers shared by the grouping and baseline algorithms, on top of gonum

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// MeanRange returns the mean of data[first..last], both ends inclusive
func MeanRange(data []float64, first, last int) (float64, error) {
	if first < 0 || last >= len(data) || first > last {
		return 0, fmt.Errorf("index range [%d, %d] outside data of length %d", first, last, len(data))
	}
	return Mean(data[first : last+1]), nil
}

// MeanRows writes the element-wise mean of rows into dst and returns it.
// dst is allocated when nil. Every row must have len(dst) elements.
func MeanRows(dst []float64, rows ...[]float64) ([]float64, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows to average")
	}

	n := len(rows[0])
	if dst == nil {
		dst = make([]float64, n)
	}
	if len(dst) != n {
		return nil, fmt.Errorf("destination length %d does not match row length %d", len(dst), n)
	}

	for i := range dst {
		dst[i] = 0
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has length %d, expected %d", i, len(row), n)
		}
		floats.Add(dst, row)
	}

	count := float64(len(rows))
	for i := range dst {
		dst[i] /= count
	}
	return dst, nil
}

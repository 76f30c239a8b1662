package spectrum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Axis is the wavenumber of every sample index, evenly spaced and strictly
// decreasing from Max at index 0 to Min at the last index.
type Axis struct {
	values []float64
}

// NewAxis builds the axis value[i] = max - i*(max-min)/(n-1)
func NewAxis(maxWavenumber, minWavenumber float64, n int) (*Axis, error) {
	if n < 2 {
		return nil, fmt.Errorf("axis needs at least 2 samples, got %d", n)
	}
	if !(maxWavenumber > minWavenumber) {
		return nil, fmt.Errorf("max wavenumber %g must exceed min wavenumber %g", maxWavenumber, minWavenumber)
	}

	values := floats.Span(make([]float64, n), maxWavenumber, minWavenumber)
	return &Axis{values: values}, nil
}

// Len returns the number of samples on the axis
func (a *Axis) Len() int {
	return len(a.values)
}

// At returns the wavenumber of sample i
func (a *Axis) At(i int) float64 {
	return a.values[i]
}

// Values returns a copy of the axis
func (a *Axis) Values() []float64 {
	return append([]float64(nil), a.values...)
}

// Max returns the wavenumber at index 0
func (a *Axis) Max() float64 {
	return a.values[0]
}

// Min returns the wavenumber at the last index
func (a *Axis) Min() float64 {
	return a.values[len(a.values)-1]
}

// IndexOfNearest returns the index whose wavenumber is closest to v.
//
// The scan walks down the axis while v is below the current value, so the
// candidate is the last index still above v. The candidate and its successor
// are then compared and an exact tie goes to the candidate (the higher
// wavenumber). Values at or below the last sample map to the last index.
func (a *Axis) IndexOfNearest(v float64) int {
	n := len(a.values)

	candidate := 0
	for i := 0; i < n; i++ {
		if v < a.values[i] {
			candidate = i
		} else {
			break
		}
	}

	if candidate >= n-1 {
		return n - 1
	}

	left := math.Abs(v - a.values[candidate])
	right := math.Abs(v - a.values[candidate+1])
	if left <= right {
		return candidate
	}
	return candidate + 1
}

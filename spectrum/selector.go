package spectrum

import "fmt"

// SelectorKind tags which part of the axis a Selector covers
type SelectorKind int

const (
	SelectFull SelectorKind = iota
	SelectUpperOnly
	SelectLowerOnly
	SelectClosed
)

func (k SelectorKind) String() string {
	switch k {
	case SelectFull:
		return "full"
	case SelectUpperOnly:
		return "upper-only"
	case SelectLowerOnly:
		return "lower-only"
	case SelectClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Selector picks the wavenumber region written to an output
type Selector struct {
	kind  SelectorKind
	upper int
	lower int
}

// Full selects the whole spectrum
func Full() Selector {
	return Selector{kind: SelectFull}
}

// UpperOnly selects every sample at or below the upper bound
func UpperOnly(upper int) Selector {
	return Selector{kind: SelectUpperOnly, upper: upper}
}

// LowerOnly selects every sample at or above the lower bound
func LowerOnly(lower int) Selector {
	return Selector{kind: SelectLowerOnly, lower: lower}
}

// Closed selects the samples between a validated bound pair
func Closed(pair BoundPair) Selector {
	return Selector{kind: SelectClosed, upper: pair.Upper, lower: pair.Lower}
}

func (s Selector) Kind() SelectorKind { return s.kind }

// Upper returns the upper bound for UpperOnly and Closed selectors
func (s Selector) Upper() int { return s.upper }

// Lower returns the lower bound for LowerOnly and Closed selectors
func (s Selector) Lower() int { return s.lower }

func (s Selector) String() string {
	switch s.kind {
	case SelectUpperOnly:
		return fmt.Sprintf("<=%d", s.upper)
	case SelectLowerOnly:
		return fmt.Sprintf(">=%d", s.lower)
	case SelectClosed:
		return fmt.Sprintf("%d-%d", s.upper, s.lower)
	default:
		return "full"
	}
}

// Resolve maps the selector onto an inclusive index interval of axis.
// Higher wavenumbers sit at lower indices, so the upper bound gives the
// first index and the lower bound the last.
func (s Selector) Resolve(axis *Axis) (first, last int) {
	last = axis.Len() - 1
	switch s.kind {
	case SelectUpperOnly:
		return axis.IndexOfNearest(float64(s.upper)), last
	case SelectLowerOnly:
		return 0, axis.IndexOfNearest(float64(s.lower))
	case SelectClosed:
		return axis.IndexOfNearest(float64(s.upper)), axis.IndexOfNearest(float64(s.lower))
	default:
		return 0, last
	}
}

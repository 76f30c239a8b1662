package spectrum

import "fmt"

// BoundPair is a validated wavenumber interval: Upper > Lower and both lie
// within the instrument range.
type BoundPair struct {
	Upper int
	Lower int
}

func (p BoundPair) String() string {
	return fmt.Sprintf("%d-%d", p.Upper, p.Lower)
}

// ValidatePair orders (upper, lower) and checks them against the instrument
// limits. Reversed input is swapped rather than rejected; equal input is an
// error. The range check is inclusive at both limits.
func ValidatePair(upper, lower int, maxWavenumber, minWavenumber float64) (BoundPair, error) {
	const op = "validate bound pair"

	if upper == lower {
		return BoundPair{}, &BoundsError{
			Op:     op,
			Reason: fmt.Sprintf("upper bound equals lower bound (%d)", upper),
		}
	}
	if upper < lower {
		upper, lower = lower, upper
	}

	tooHigh := float64(upper) > maxWavenumber
	tooLow := float64(lower) < minWavenumber
	switch {
	case tooHigh && tooLow:
		return BoundPair{}, &BoundsError{
			Op: op,
			Reason: fmt.Sprintf("upper bound %d > max wavenumber %g and lower bound %d < min wavenumber %g",
				upper, maxWavenumber, lower, minWavenumber),
		}
	case tooHigh:
		return BoundPair{}, &BoundsError{
			Op:     op,
			Reason: fmt.Sprintf("upper bound %d > max wavenumber %g", upper, maxWavenumber),
		}
	case tooLow:
		return BoundPair{}, &BoundsError{
			Op:     op,
			Reason: fmt.Sprintf("lower bound %d < min wavenumber %g", lower, minWavenumber),
		}
	}

	return BoundPair{Upper: upper, Lower: lower}, nil
}

// ValidateSingle checks a lone bound. Unlike ValidatePair the check is
// strict: a bound equal to either limit is rejected.
func ValidateSingle(bound int, maxWavenumber, minWavenumber float64) (int, error) {
	const op = "validate bound"

	if float64(bound) >= maxWavenumber {
		return 0, &BoundsError{
			Op:     op,
			Reason: fmt.Sprintf("bound %d is greater than or equal to max wavenumber %g", bound, maxWavenumber),
		}
	}
	if float64(bound) <= minWavenumber {
		return 0, &BoundsError{
			Op:     op,
			Reason: fmt.Sprintf("bound %d is less than or equal to min wavenumber %g", bound, minWavenumber),
		}
	}
	return bound, nil
}

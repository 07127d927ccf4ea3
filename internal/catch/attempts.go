package catch

import (
	"errors"
	"math"
)

var (
	ErrDegenerateProb    = errors.New("degenerate probability; reciprocal/log undefined")
	ErrInvalidConfidence = errors.New("invalid target confidence; must be in (0,1)")
)

// ExpectedAttempts returns the expected number of throws until the first
// catch, 1/p (the mean of a geometric distribution). p == 0 is a domain
// error, never +Inf.
func ExpectedAttempts(p float64) (float64, error) {
	if err := validateProb(p); err != nil {
		return 0, err
	}
	if p == 0 {
		return 0, ErrDegenerateProb
	}
	return 1 / p, nil
}

// AttemptsForConfidence returns how many independent throws at per-throw
// probability p are needed before the cumulative catch chance reaches
// target:
//
//	n = log(1-target) / log(1-p)
//
// When p is exactly 0 the base rate is substituted instead, mirroring the
// fallback the in-game formula uses; the second return reports whether
// that happened. p == 1 needs no repeat count and is a domain error, as
// is a target outside (0,1).
func AttemptsForConfidence(p, target, baseRate float64) (float64, bool, error) {
	if err := validateProb(p); err != nil {
		return 0, false, err
	}
	if target <= 0 || target >= 1 {
		return 0, false, ErrInvalidConfidence
	}
	fallback := false
	if p == 0 {
		if err := validateProb(baseRate); err != nil || baseRate == 0 {
			return 0, false, ErrDegenerateProb
		}
		p = baseRate
		fallback = true
	}
	if p == 1 {
		return 0, fallback, ErrDegenerateProb
	}
	n := math.Log(1-target) / math.Log(1-p)
	return n, fallback, nil
}

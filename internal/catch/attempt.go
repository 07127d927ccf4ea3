package catch

// Attempt performs one Bernoulli throw under probability p.
// p <= 0 never catches, p >= 1 always does, otherwise rng.Float64() < p.
func Attempt(p float64, rng Source) (bool, error) {
	if err := validateProb(p); err != nil {
		return false, err
	}
	if p <= 0 {
		return false, nil
	}
	if p >= 1 {
		return true, nil
	}
	if rng == nil {
		rng = DefaultSource()
	}
	return rng.Float64() < p, nil
}

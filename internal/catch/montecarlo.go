package catch

import (
	"errors"
	"math"
	"sort"
)

// A session at probability p runs ~1/p throws, and p can be driven
// arbitrarily close to zero by request overrides; the caps keep one
// simulation run bounded.
const (
	maxSessionThrows = 1_000_000
	maxRunThrows     = 50_000_000
)

var ErrSimBudget = errors.New("simulation budget exhausted; probability too small for the trial count")

// Stats summarizes the throws-until-catch samples of a simulation run.
type Stats struct {
	Mean   float64 `json:"mean"`
	Var    float64 `json:"var"`
	StdDev float64 `json:"std_dev"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
	// raw samples, for callers building histograms
	Samples []int `json:"-"`
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// population variance
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		P99:     percentile(0.99),
		Samples: xs,
	}
}

// throwsUntilCatch runs one session: repeated throws at probability p until
// the first catch, returning the throw count. A session that burns through
// its budget without catching returns ErrSimBudget.
func throwsUntilCatch(p float64, rng Source, budget int) (int, error) {
	if err := validateProb(p); err != nil {
		return 0, err
	}
	if p == 0 {
		return 0, ErrDegenerateProb
	}
	throws := 0
	for throws < budget {
		throws++
		caught, err := Attempt(p, rng)
		if err != nil {
			return 0, err
		}
		if caught {
			return throws, nil
		}
	}
	return 0, ErrSimBudget
}

// RunMonteCarlo repeats throw sessions and summarizes how many throws each
// needed. It is the empirical counterpart of ExpectedAttempts: for large
// trial counts Stats.Mean converges on 1/p.
func RunMonteCarlo(p float64, trials int, rng Source) (Stats, error) {
	if trials <= 0 {
		return Stats{}, nil
	}
	if rng == nil {
		rng = DefaultSource()
	}
	samples := make([]int, trials)
	remaining := maxRunThrows
	for i := 0; i < trials; i++ {
		budget := maxSessionThrows
		if remaining < budget {
			budget = remaining
		}
		if budget <= 0 {
			return Stats{}, ErrSimBudget
		}
		v, err := throwsUntilCatch(p, rng, budget)
		if err != nil {
			return Stats{}, err
		}
		samples[i] = v
		remaining -= v
	}
	return calcStats(samples), nil
}

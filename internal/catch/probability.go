package catch

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidCPM = errors.New("invalid level coefficient; must be > 0")

// ThrowTier is the discrete quality rating of a throw.
type ThrowTier string

const (
	TierNone      ThrowTier = "NONE"
	TierNice      ThrowTier = "NICE"
	TierGreat     ThrowTier = "GREAT"
	TierExcellent ThrowTier = "EXCELLENT"
)

// Multipliers are the per-throw bonuses that stack into the catch modifier.
// All of them apply to every throw; the throw-quality multiplier is the only
// one that varies between attempts.
type Multipliers struct {
	Ball      float64 // 1..2 by ball kind
	Berry     float64 // 1..2.5 by berry kind
	Curve     float64 // 1 straight, 1.7 curveball
	Medal     float64 // 1..1.4 by type medal rank
	Encounter float64 // 1 wild, 2 research, 10 raid
}

// Combined returns the product of the throw-independent multipliers.
func (m Multipliers) Combined() float64 {
	return m.Ball * m.Berry * m.Curve * m.Medal * m.Encounter
}

// Modifier folds a throw-quality multiplier into the combined bonus.
func (m Multipliers) Modifier(throwMult float64) float64 {
	return m.Combined() * throwMult
}

// CaptureProbability evaluates the per-throw catch formula
//
//	p = 1 - (1 - baseRate/(2*cpm))^modifier
//
// cpm is the level coefficient and must be > 0. The result is validated
// before being returned: out-of-range multiplier constants can push the
// formula outside [0,1], and that surfaces as an error here rather than
// as a bad probability downstream.
func CaptureProbability(baseRate, cpm, modifier float64) (float64, error) {
	if cpm <= 0 {
		return 0, ErrInvalidCPM
	}
	if err := validateProb(baseRate); err != nil {
		return 0, fmt.Errorf("base rate %v: %w", baseRate, err)
	}
	p := 1 - math.Pow(1-baseRate/(2*cpm), modifier)
	if err := validateProb(p); err != nil {
		return 0, fmt.Errorf("computed probability %v: %w", p, err)
	}
	return p, nil
}

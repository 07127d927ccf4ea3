package catch

import (
	"math"
	"testing"
)

func wildMultipliers() Multipliers {
	return Multipliers{Ball: 2, Berry: 2.5, Curve: 1.7, Medal: 1.4, Encounter: 1}
}

func TestModifier(t *testing.T) {
	m := wildMultipliers()
	got := m.Modifier(1.9)
	want := 2 * 2.5 * 1.7 * 1.4 * 1 * 1.9
	if diff := got - want; diff > 1e-12 || diff < -1e-12 {
		t.Fatalf("modifier = %v, want %v", got, want)
	}
	if diff := got - 22.61; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("excellent modifier = %v, want ~22.61", got)
	}
}

func TestCaptureProbabilityScenario(t *testing.T) {
	// galarian trio, level 1, excellent curveball golden razz ultra ball
	modifier := wildMultipliers().Modifier(1.9)
	p, err := CaptureProbability(0.003, 0.094, modifier)
	if err != nil {
		t.Fatal(err)
	}
	want := 1 - math.Pow(1-0.003/(2*0.094), modifier)
	if diff := p - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("p = %v, want closed form %v", p, want)
	}
	if p < 0.30 || p > 0.31 {
		t.Fatalf("p = %v, expected ~0.305", p)
	}
}

func TestCaptureProbabilityInRange(t *testing.T) {
	m := wildMultipliers()
	rates := []float64{0.003, 0.02, 0.05, 0.2}
	cpms := []float64{0.094, 0.4225, 0.5974, 0.7317}
	throws := []float64{1, 1.2, 1.5, 1.9}
	for _, r := range rates {
		for _, cpm := range cpms {
			for _, tm := range throws {
				p, err := CaptureProbability(r, cpm, m.Modifier(tm))
				if err != nil {
					t.Fatalf("rate=%v cpm=%v throw=%v: %v", r, cpm, tm, err)
				}
				if p < 0 || p > 1 {
					t.Fatalf("rate=%v cpm=%v throw=%v: p=%v out of [0,1]", r, cpm, tm, p)
				}
			}
		}
	}
}

func TestCaptureProbabilityTierMonotonic(t *testing.T) {
	m := wildMultipliers()
	throws := []float64{1, 1.2, 1.5, 1.9}
	prev := -1.0
	for _, tm := range throws {
		p, err := CaptureProbability(0.003, 0.4225, m.Modifier(tm))
		if err != nil {
			t.Fatal(err)
		}
		if p <= prev {
			t.Fatalf("throw mult %v: p=%v not greater than %v", tm, p, prev)
		}
		prev = p
	}
}

func TestCaptureProbabilityCPMMonotonic(t *testing.T) {
	// the formula divides the base rate by 2*cpm, so a higher level
	// coefficient must lower the per-throw probability
	m := wildMultipliers()
	cpms := []float64{0.094, 0.4225, 0.5974, 0.7317}
	prev := 2.0
	for _, cpm := range cpms {
		p, err := CaptureProbability(0.003, cpm, m.Modifier(1.9))
		if err != nil {
			t.Fatal(err)
		}
		if p >= prev {
			t.Fatalf("cpm %v: p=%v not lower than %v", cpm, p, prev)
		}
		prev = p
	}
}

func TestCaptureProbabilityGuards(t *testing.T) {
	if _, err := CaptureProbability(0.003, 0, 22.61); err == nil {
		t.Fatal("cpm=0 must error")
	}
	if _, err := CaptureProbability(0.003, -0.1, 22.61); err == nil {
		t.Fatal("negative cpm must error")
	}
	if _, err := CaptureProbability(-0.1, 0.094, 22.61); err == nil {
		t.Fatal("negative base rate must error")
	}
	if _, err := CaptureProbability(1.5, 0.094, 22.61); err == nil {
		t.Fatal("base rate > 1 must error")
	}
}

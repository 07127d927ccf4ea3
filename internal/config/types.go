// types.go
package config

// RawConfig mirrors the yaml schema for one species file. Scalar fields
// are pointers so a file can override any subset of the compiled-in
// defaults.
type RawConfig struct {
	Species          string             `yaml:"species,omitempty"`
	BaseRate         *float64           `yaml:"base_rate,omitempty"`
	Multipliers      *MultipliersCfg    `yaml:"multipliers,omitempty"`
	Throws           map[string]float64 `yaml:"throws,omitempty"`
	Levels           map[string]float64 `yaml:"levels,omitempty"`
	TargetConfidence *float64           `yaml:"target_confidence,omitempty"`
	Assumptions      []string           `yaml:"assumptions,omitempty"`
	Notes            string             `yaml:"notes,omitempty"`
}

type MultipliersCfg struct {
	Ball      *float64 `yaml:"ball,omitempty"`
	Berry     *float64 `yaml:"berry,omitempty"`
	Curve     *float64 `yaml:"curve,omitempty"`
	Medal     *float64 `yaml:"medal,omitempty"`
	Encounter *float64 `yaml:"encounter,omitempty"`
}

func f(v float64) *float64 { return &v }

// Defaults returns the compiled-in configuration: the Galarian legendary
// trio at a 0.3% base rate, assuming an Ultra Ball Golden Razz curveball
// with platinum medals on a wild encounter.
func Defaults() RawConfig {
	return RawConfig{
		Species:  "Galarian Bird",
		BaseRate: f(0.003),
		Multipliers: &MultipliersCfg{
			Ball:      f(2),   // Ultra Ball
			Berry:     f(2.5), // Golden Razz Berry
			Curve:     f(1.7), // curveball
			Medal:     f(1.4), // platinum medal(s)
			Encounter: f(1),   // wild encounter
		},
		// per-tier averages; each throw grade spans a multiplier range
		Throws: map[string]float64{
			"NONE":      1,
			"NICE":      1.2,
			"GREAT":     1.5,
			"EXCELLENT": 1.9,
		},
		// wild-encounter CPM by level
		Levels: map[string]float64{
			"1":  0.094,
			"10": 0.4225,
			"20": 0.5974,
			"30": 0.7317,
		},
		TargetConfidence: f(0.99),
		Assumptions: []string{
			"Golden RazzBerry",
			"Curveball Throw",
			"Ultra Ball",
			"Platinum Catch Medal(s)",
		},
	}
}

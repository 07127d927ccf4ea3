package catch

// Level pairs a level identifier with its coefficient (the value
// historically called CPM). Slices of Level are kept in display order so
// repeated runs render identically.
type Level struct {
	Name string  `json:"name"`
	CPM  float64 `json:"cpm"`
}

// Throw pairs a tier with its multiplier, ordered worst to best.
type Throw struct {
	Tier       ThrowTier `json:"tier"`
	Multiplier float64   `json:"multiplier"`
}

// Params is the full, immutable input to a table computation. It is
// normalized by the config resolver; nothing here reads global state.
type Params struct {
	Species          string      `json:"species"`
	BaseRate         float64     `json:"base_rate"`
	Multipliers      Multipliers `json:"multipliers"`
	TargetConfidence float64     `json:"target_confidence"`
	Levels           []Level     `json:"levels"`
	Throws           []Throw     `json:"throws"`
	Assumptions      []string    `json:"assumptions,omitempty"`
	Notes            string      `json:"notes,omitempty"`
}

// ThrowMultiplier looks up the multiplier for a tier.
func (p Params) ThrowMultiplier(tier ThrowTier) (float64, bool) {
	for _, t := range p.Throws {
		if t.Tier == tier {
			return t.Multiplier, true
		}
	}
	return 0, false
}

// LevelCPM looks up the coefficient for a level name.
func (p Params) LevelCPM(name string) (float64, bool) {
	for _, l := range p.Levels {
		if l.Name == name {
			return l.CPM, true
		}
	}
	return 0, false
}

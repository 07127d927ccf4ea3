// resolve.go
package config

import (
	"sort"
	"strconv"

	"github.com/sdw5180/catch-calc/internal/catch"
)

// Overrides carries per-request tweaks (query parameters) applied on top
// of the merged config. Nil fields leave the config value alone.
type Overrides struct {
	BaseRate         *float64
	TargetConfidence *float64
	Ball             *float64
	Berry            *float64
	Curve            *float64
	Medal            *float64
	Encounter        *float64
}

// Resolve merges defaults -> files -> overrides, validates the result and
// normalizes it into catch.Params. Levels are ordered numerically and
// throw tiers by ascending multiplier, so the worst tier is first and the
// best last regardless of map ordering in the yaml.
func (l *Loader) Resolve(species string, o Overrides) (RawConfig, catch.Params, error) {
	raw, err := l.LoadMerged(species)
	if err != nil {
		return RawConfig{}, catch.Params{}, err
	}

	if o.BaseRate != nil {
		raw.BaseRate = o.BaseRate
	}
	if o.TargetConfidence != nil {
		raw.TargetConfidence = o.TargetConfidence
	}
	if raw.Multipliers != nil {
		m := *raw.Multipliers
		if o.Ball != nil {
			m.Ball = o.Ball
		}
		if o.Berry != nil {
			m.Berry = o.Berry
		}
		if o.Curve != nil {
			m.Curve = o.Curve
		}
		if o.Medal != nil {
			m.Medal = o.Medal
		}
		if o.Encounter != nil {
			m.Encounter = o.Encounter
		}
		raw.Multipliers = &m
	}

	if err := ValidateRaw(raw); err != nil {
		return RawConfig{}, catch.Params{}, err
	}

	params := catch.Params{
		Species:          raw.Species,
		BaseRate:         *raw.BaseRate,
		TargetConfidence: *raw.TargetConfidence,
		Assumptions:      append([]string(nil), raw.Assumptions...),
		Notes:            raw.Notes,
		Multipliers: catch.Multipliers{
			Ball:      *raw.Multipliers.Ball,
			Berry:     *raw.Multipliers.Berry,
			Curve:     *raw.Multipliers.Curve,
			Medal:     *raw.Multipliers.Medal,
			Encounter: *raw.Multipliers.Encounter,
		},
	}

	for name, cpm := range raw.Levels {
		params.Levels = append(params.Levels, catch.Level{Name: name, CPM: cpm})
	}
	sort.Slice(params.Levels, func(i, j int) bool {
		a, aerr := strconv.ParseFloat(params.Levels[i].Name, 64)
		b, berr := strconv.ParseFloat(params.Levels[j].Name, 64)
		if aerr != nil || berr != nil {
			return params.Levels[i].Name < params.Levels[j].Name
		}
		return a < b
	})

	for tier, mult := range raw.Throws {
		params.Throws = append(params.Throws, catch.Throw{Tier: catch.ThrowTier(tier), Multiplier: mult})
	}
	sort.Slice(params.Throws, func(i, j int) bool {
		if params.Throws[i].Multiplier != params.Throws[j].Multiplier {
			return params.Throws[i].Multiplier < params.Throws[j].Multiplier
		}
		return params.Throws[i].Tier < params.Throws[j].Tier
	})

	return raw, params, nil
}

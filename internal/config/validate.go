package config

import (
	"fmt"
	"strings"
)

// ValidateRaw checks semantic constraints of a RawConfig. Violations are
// collected so a broken file reports everything wrong with it at once.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	if cfg.BaseRate == nil {
		errs = append(errs, "base_rate is required")
	} else if *cfg.BaseRate <= 0 || *cfg.BaseRate >= 1 {
		errs = append(errs, "base_rate must be in (0,1)")
	}

	if cfg.TargetConfidence == nil {
		errs = append(errs, "target_confidence is required")
	} else if *cfg.TargetConfidence <= 0 || *cfg.TargetConfidence >= 1 {
		errs = append(errs, "target_confidence must be in (0,1)")
	}

	if cfg.Multipliers == nil {
		errs = append(errs, "multipliers are required")
	} else {
		check := func(name string, v *float64) {
			if v == nil {
				errs = append(errs, "multipliers."+name+" is required")
			} else if *v <= 0 {
				errs = append(errs, "multipliers."+name+" must be > 0")
			}
		}
		check("ball", cfg.Multipliers.Ball)
		check("berry", cfg.Multipliers.Berry)
		check("curve", cfg.Multipliers.Curve)
		check("medal", cfg.Multipliers.Medal)
		check("encounter", cfg.Multipliers.Encounter)
	}

	if len(cfg.Throws) == 0 {
		errs = append(errs, "throws table must not be empty")
	}
	for tier, m := range cfg.Throws {
		if m < 1 {
			errs = append(errs, fmt.Sprintf("throws[%s] must be >= 1", tier))
		}
	}

	if len(cfg.Levels) == 0 {
		errs = append(errs, "levels table must not be empty")
	}
	for lvl, cpm := range cfg.Levels {
		if cpm <= 0 {
			errs = append(errs, fmt.Sprintf("levels[%s] must be > 0", lvl))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

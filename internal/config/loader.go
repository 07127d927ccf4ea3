package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths helper for the base and per-species files.
type Paths struct {
	BaseDir string // base directory, e.g. ./config
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "default.yaml")
}
func (p Paths) SpeciesPath(species string) string {
	return filepath.Join(p.BaseDir, "species", species+".yaml")
}

// Loader reads yaml files and merges compiled defaults -> default.yaml ->
// species file. An empty BaseDir (or missing files) yields the compiled
// defaults, so the CLI works with no config on disk at all.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawConfig // key: species or "$default"
}

// NewLoader creates a config loader rooted at baseDir.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawConfig),
	}
}

// LoadMerged loads and merges defaults -> default.yaml -> species file
// (species may be empty). The result is cached until Invalidate.
func (l *Loader) LoadMerged(species string) (RawConfig, error) {
	key := species
	if key == "" {
		key = "$default"
	}
	l.mu.RLock()
	if cfg, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	merged := Defaults()
	if l.paths.BaseDir != "" {
		baseCfg, err := readYAML(l.paths.DefaultPath())
		if err != nil {
			return RawConfig{}, fmt.Errorf("read default: %w", err)
		}
		merged = mergeRaw(merged, baseCfg)
		if species != "" {
			spCfg, err := readYAML(l.paths.SpeciesPath(species))
			if err != nil {
				return RawConfig{}, fmt.Errorf("read species %q: %w", species, err)
			}
			merged = mergeRaw(merged, spCfg)
		}
	}

	l.mu.Lock()
	l.cache[key] = merged
	l.mu.Unlock()
	return merged, nil
}

// Invalidate clears the cache. Called by the file watcher on change.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readYAML loads one file. Missing files return a zero cfg, no error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, err
	}
	return cfg, nil
}

// mergeRaw overlays b onto a: every field b sets replaces a's value.
// Maps and slices replace wholesale when provided.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	if b.Species != "" {
		out.Species = b.Species
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}
	if b.BaseRate != nil {
		out.BaseRate = b.BaseRate
	}
	if b.TargetConfidence != nil {
		out.TargetConfidence = b.TargetConfidence
	}

	if b.Multipliers != nil {
		if out.Multipliers == nil {
			c := *b.Multipliers
			out.Multipliers = &c
		} else {
			c := *out.Multipliers
			if b.Multipliers.Ball != nil {
				c.Ball = b.Multipliers.Ball
			}
			if b.Multipliers.Berry != nil {
				c.Berry = b.Multipliers.Berry
			}
			if b.Multipliers.Curve != nil {
				c.Curve = b.Multipliers.Curve
			}
			if b.Multipliers.Medal != nil {
				c.Medal = b.Multipliers.Medal
			}
			if b.Multipliers.Encounter != nil {
				c.Encounter = b.Multipliers.Encounter
			}
			out.Multipliers = &c
		}
	}

	if len(b.Throws) > 0 {
		out.Throws = make(map[string]float64, len(b.Throws))
		for k, v := range b.Throws {
			out.Throws[k] = v
		}
	}
	if len(b.Levels) > 0 {
		out.Levels = make(map[string]float64, len(b.Levels))
		for k, v := range b.Levels {
			out.Levels[k] = v
		}
	}
	if len(b.Assumptions) > 0 {
		out.Assumptions = append([]string(nil), b.Assumptions...)
	}

	return out
}

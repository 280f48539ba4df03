// Package config provides YAML-based hunt configuration loading and
// resolution into simulation settings.
package config

import (
	"fmt"

	"github.com/vovakirdan/monster-hunt/internal/sim"
	"github.com/vovakirdan/monster-hunt/internal/variant"
)

// HuntConfig contains all configuration for one hunt simulation.
type HuntConfig struct {
	Grid     GridConfig    `yaml:"grid"`
	Monsters MonsterConfig `yaml:"monsters"`
	Policy   PolicyConfig  `yaml:"policy"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// MonsterConfig defines the monster population.
type MonsterConfig struct {
	Count        int    `yaml:"count"`
	Levels       string `yaml:"levels"` // "ascending" or "random"
	LevelMax     int    `yaml:"level_max"`
	EnsureViable bool   `yaml:"ensure_viable"`
}

// PolicyConfig selects the hunt strategy. Variant names a registered preset;
// the remaining fields, when set, override individual preset choices.
type PolicyConfig struct {
	Variant          string `yaml:"variant"`
	Danger           string `yaml:"danger"`            // "facing" or "lookahead"
	Visibility       string `yaml:"visibility"`        // "omniscient" or "perception"
	PerceptionRadius int    `yaml:"perception_radius"` // 0 keeps the preset's radius
	AvoidDanger      *bool  `yaml:"avoid_danger"`
}

// VariantID returns the preset name the config selects, defaulting to
// "classic" when unset.
func (c HuntConfig) VariantID() string {
	if c.Policy.Variant == "" {
		return "classic"
	}
	return c.Policy.Variant
}

// Settings resolves the config into simulation settings for the given seed.
func (c HuntConfig) Settings(seed int64) (sim.Settings, error) {
	v, err := variant.Lookup(c.VariantID())
	if err != nil {
		return sim.Settings{}, err
	}
	policies := v.Policies

	if c.Policy.Danger != "" {
		policies.Danger, err = sim.ParseDangerPolicy(c.Policy.Danger)
		if err != nil {
			return sim.Settings{}, err
		}
	}
	if c.Policy.Visibility != "" {
		policies.Visibility, err = sim.ParseVisibilityPolicy(c.Policy.Visibility)
		if err != nil {
			return sim.Settings{}, err
		}
	}
	if c.Policy.PerceptionRadius > 0 {
		policies.PerceptionRadius = c.Policy.PerceptionRadius
	}
	if c.Policy.AvoidDanger != nil {
		policies.AvoidDanger = *c.Policy.AvoidDanger
	}

	scheme, err := sim.ParseLevelScheme(c.Monsters.Levels)
	if err != nil {
		return sim.Settings{}, err
	}

	if c.Grid.Rows < 1 || c.Grid.Cols < 1 {
		return sim.Settings{}, fmt.Errorf("config: invalid grid %dx%d", c.Grid.Rows, c.Grid.Cols)
	}
	if c.Monsters.Count < 0 {
		return sim.Settings{}, fmt.Errorf("config: negative monster count %d", c.Monsters.Count)
	}

	return sim.Settings{
		Rows:         c.Grid.Rows,
		Cols:         c.Grid.Cols,
		Monsters:     c.Monsters.Count,
		Seed:         seed,
		Levels:       scheme,
		LevelMax:     c.Monsters.LevelMax,
		EnsureViable: c.Monsters.EnsureViable,
		Policies:     policies,
	}, nil
}

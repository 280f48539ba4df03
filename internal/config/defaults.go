package config

import (
	_ "embed"
)

//go:embed defaults/hunt.yaml
var defaultHuntYAML []byte

// DefaultHuntConfig returns the default hunt configuration.
func DefaultHuntConfig() HuntConfig {
	return HuntConfig{
		Grid: GridConfig{
			Rows: 10,
			Cols: 10,
		},
		Monsters: MonsterConfig{
			Count:        8,
			Levels:       "random",
			LevelMax:     7,
			EnsureViable: true,
		},
		Policy: PolicyConfig{
			Variant: "classic",
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `hunt config --dump`.
func DefaultYAML() []byte {
	return defaultHuntYAML
}

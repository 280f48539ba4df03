package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/monster-hunt/internal/sim"
)

func TestDefaultConfigResolves(t *testing.T) {
	cfg := DefaultHuntConfig()

	settings, err := cfg.Settings(42)
	if err != nil {
		t.Fatalf("Settings() failed: %v", err)
	}

	if settings.Rows != 10 || settings.Cols != 10 {
		t.Errorf("grid = %dx%d, expected 10x10", settings.Rows, settings.Cols)
	}
	if settings.Seed != 42 {
		t.Errorf("seed = %d, expected 42", settings.Seed)
	}
	if settings.Policies.Visibility != sim.VisibilityOmniscient {
		t.Errorf("classic preset should be omniscient")
	}
	if !settings.Policies.AvoidDanger {
		t.Errorf("classic preset should avoid danger cells")
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if _, err := cfg.Settings(1); err != nil {
		t.Fatalf("embedded default does not resolve: %v", err)
	}
}

func TestLoadCustomFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "hunt.yaml")

	data := `
grid:
  rows: 6
  cols: 7
monsters:
  count: 3
  levels: ascending
  level_max: 5
  ensure_viable: false
policy:
  variant: cautious
  perception_radius: 3
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	settings, err := cfg.Settings(0)
	if err != nil {
		t.Fatalf("Settings() failed: %v", err)
	}

	if settings.Rows != 6 || settings.Cols != 7 {
		t.Errorf("grid = %dx%d, expected 6x7", settings.Rows, settings.Cols)
	}
	if settings.Levels != sim.LevelsAscending {
		t.Errorf("levels = %v, expected ascending", settings.Levels)
	}
	if settings.Policies.Danger != sim.DangerLookahead {
		t.Errorf("cautious preset should use lookahead danger")
	}
	if settings.Policies.PerceptionRadius != 3 {
		t.Errorf("perception radius = %d, expected override 3", settings.Policies.PerceptionRadius)
	}
}

func TestLoadMissingCustomFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestPolicyOverrides(t *testing.T) {
	avoid := false
	cfg := DefaultHuntConfig()
	cfg.Policy.Danger = "lookahead"
	cfg.Policy.Visibility = "perception"
	cfg.Policy.AvoidDanger = &avoid

	settings, err := cfg.Settings(0)
	if err != nil {
		t.Fatalf("Settings() failed: %v", err)
	}

	if settings.Policies.Danger != sim.DangerLookahead {
		t.Error("danger override not applied")
	}
	if settings.Policies.Visibility != sim.VisibilityPerception {
		t.Error("visibility override not applied")
	}
	if settings.Policies.AvoidDanger {
		t.Error("avoid_danger override not applied")
	}
}

func TestInvalidValuesRejected(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HuntConfig)
	}{
		{"unknown variant", func(c *HuntConfig) { c.Policy.Variant = "turbo" }},
		{"unknown danger", func(c *HuntConfig) { c.Policy.Danger = "psychic" }},
		{"unknown visibility", func(c *HuntConfig) { c.Policy.Visibility = "xray" }},
		{"unknown levels", func(c *HuntConfig) { c.Monsters.Levels = "fibonacci" }},
		{"zero rows", func(c *HuntConfig) { c.Grid.Rows = 0 }},
		{"negative count", func(c *HuntConfig) { c.Monsters.Count = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHuntConfig()
			tc.mutate(&cfg)
			if _, err := cfg.Settings(0); err == nil {
				t.Error("expected resolution error")
			}
		})
	}
}

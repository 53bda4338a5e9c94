package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	def := Default()
	if cfg.Seed != def.Seed {
		t.Errorf("seed = %d, want %d", cfg.Seed, def.Seed)
	}
	if cfg.Skills.ProgressionRate != 1.0 {
		t.Errorf("progression rate = %v, want 1.0", cfg.Skills.ProgressionRate)
	}
	if cfg.Skills.InheritanceRate != 0.7 {
		t.Errorf("inheritance rate = %v, want 0.7", cfg.Skills.InheritanceRate)
	}
	if cfg.Population.Max != 50 {
		t.Errorf("population max = %d, want 50", cfg.Population.Max)
	}
	if cfg.Population.LifespanTicks != 57600 {
		t.Errorf("lifespan = %d, want 57600", cfg.Population.LifespanTicks)
	}
	if cfg.Economy.UpdateFrequency != 1200 {
		t.Errorf("economy frequency = %d, want 1200", cfg.Economy.UpdateFrequency)
	}
	if !cfg.Tasks.MiningEnabled || !cfg.Tasks.FarmingEnabled {
		t.Error("task flags should default on")
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
seed: 99
skills:
  max_level: 40
economy:
  enabled: true
  update_frequency: 600
`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Seed != 99 {
		t.Errorf("seed = %d, want 99", cfg.Seed)
	}
	if cfg.Skills.MaxLevel != 40 {
		t.Errorf("max level = %d, want 40", cfg.Skills.MaxLevel)
	}
	if cfg.Economy.UpdateFrequency != 600 {
		t.Errorf("economy frequency = %d, want 600", cfg.Economy.UpdateFrequency)
	}
	// Untouched fields keep their defaults.
	if cfg.Population.Max != 50 {
		t.Errorf("population max = %d, want default 50", cfg.Population.Max)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("seed: [not a number"), 0644)

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
world:
  width: 0
  height: 24
  depth: 96
`
	os.WriteFile(path, []byte(raw), 0644)

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for zero world width")
	}
}

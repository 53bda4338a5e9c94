// Package config loads the simulation configuration from a YAML file,
// filling every unset field with a sensible default so a missing or
// partial file still yields a runnable setup.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Seed           int64  `yaml:"seed"`
	DBPath         string `yaml:"db_path"`
	APIPort        int    `yaml:"api_port"`
	TickIntervalMs int    `yaml:"tick_interval_ms"`

	World      World      `yaml:"world"`
	Population Population `yaml:"population"`
	Skills     Skills     `yaml:"skills"`
	Tasks      Tasks      `yaml:"tasks"`
	Social     Social     `yaml:"social"`
	Economy    Economy    `yaml:"economy"`
}

type World struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Depth  int `yaml:"depth"`
}

type Population struct {
	Initial              int `yaml:"initial"`
	Max                  int `yaml:"max"`
	ReproductionCooldown int `yaml:"reproduction_cooldown"`
	ChildhoodTicks       int `yaml:"childhood_ticks"`
	LifespanTicks        int `yaml:"lifespan_ticks"`
}

type Skills struct {
	ProgressionRate float64 `yaml:"progression_rate"`
	MaxLevel        int     `yaml:"max_level"`
	InheritanceRate float64 `yaml:"inheritance_rate"`
	EvolutionBonus  int     `yaml:"evolution_bonus"`
}

type Tasks struct {
	MiningEnabled  bool `yaml:"mining_enabled"`
	FarmingEnabled bool `yaml:"farming_enabled"`
}

type Social struct {
	Enabled bool `yaml:"enabled"`
	Radius  int  `yaml:"radius"`
}

type Economy struct {
	Enabled         bool `yaml:"enabled"`
	UpdateFrequency int  `yaml:"update_frequency"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Seed:           42,
		DBPath:         "data/village.db",
		APIPort:        8080,
		TickIntervalMs: 250,
		World: World{
			Width:  96,
			Height: 24,
			Depth:  96,
		},
		Population: Population{
			Initial:              8,
			Max:                  50,
			ReproductionCooldown: 6000,
			ChildhoodTicks:       7200,
			LifespanTicks:        57600, // 40 sim-days
		},
		Skills: Skills{
			ProgressionRate: 1.0,
			MaxLevel:        100,
			InheritanceRate: 0.7,
			EvolutionBonus:  2,
		},
		Tasks: Tasks{
			MiningEnabled:  true,
			FarmingEnabled: true,
		},
		Social: Social{
			Enabled: true,
			Radius:  16,
		},
		Economy: Economy{
			Enabled:         true,
			UpdateFrequency: 1200,
		},
	}
}

// Load reads a config file over the defaults. A missing file is not an
// error: defaults apply. A file that exists but fails to parse is.
func Load(path string) (*Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 || c.World.Depth <= 0 {
		return fmt.Errorf("config: world dimensions must be positive, got %dx%dx%d",
			c.World.Width, c.World.Height, c.World.Depth)
	}
	if c.Population.Max < 1 {
		return fmt.Errorf("config: population max must be at least 1, got %d", c.Population.Max)
	}
	if c.Population.LifespanTicks < 1 {
		return fmt.Errorf("config: lifespan must be at least 1 tick, got %d", c.Population.LifespanTicks)
	}
	if c.Skills.MaxLevel < 1 {
		return fmt.Errorf("config: skill max level must be at least 1, got %d", c.Skills.MaxLevel)
	}
	if c.Skills.ProgressionRate <= 0 {
		return fmt.Errorf("config: progression rate must be positive, got %g", c.Skills.ProgressionRate)
	}
	return nil
}

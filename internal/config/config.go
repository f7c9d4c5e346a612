// Package config provides YAML-based mode configuration loading and
// spawn pacing management for the hextriad platform.
package config

import "github.com/avolkhin/hextriad/internal/engine"

// ModesConfig contains the tunable parameters for all game modes.
type ModesConfig struct {
	Modes  []ModeConfig `yaml:"modes"`
	Pacing PacingConfig `yaml:"pacing"`
}

// ModeConfig overrides the built-in policy of a single mode.
type ModeConfig struct {
	ID             string  `yaml:"id"`
	Title          string  `yaml:"title"`
	UndoLimit      int     `yaml:"undo_limit"`
	TimerSeconds   int     `yaml:"timer_seconds"`
	AutoSpawnMS    int     `yaml:"auto_spawn_ms"`
	SpawnBoostProb float64 `yaml:"spawn_boost_prob"`
}

// Policy converts the mode configuration to an engine policy.
// The winning value is fixed by the tile progression and not configurable.
func (m ModeConfig) Policy() engine.Policy {
	return engine.Policy{
		ID:              m.ID,
		Title:           m.Title,
		UndoLimit:       m.UndoLimit,
		WinningValue:    engine.WinningValue,
		TimerSeconds:    m.TimerSeconds,
		AutoSpawnMillis: m.AutoSpawnMS,
		SpawnBoostProb:  m.SpawnBoostProb,
	}
}

// PacingConfig defines how scheduled spawns accelerate as the score grows.
// Only modes with auto-spawn enabled consume it.
type PacingConfig struct {
	Enabled       bool `yaml:"enabled"`
	MaxAt         int  `yaml:"max_at"`          // Score at which the pace reaches its floor
	MinIntervalMS int  `yaml:"min_interval_ms"` // Shortest spawn interval
}

// ModeByID returns the configuration for a mode, if present.
func (c ModesConfig) ModeByID(id string) (ModeConfig, bool) {
	for _, m := range c.Modes {
		if m.ID == id {
			return m, true
		}
	}
	return ModeConfig{}, false
}

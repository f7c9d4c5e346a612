package config

import (
	_ "embed"
)

//go:embed defaults/modes.yaml
var defaultModesYAML []byte

// DefaultModesConfig returns the built-in mode configuration, matching
// the engine's static policy table.
func DefaultModesConfig() ModesConfig {
	return ModesConfig{
		Modes: []ModeConfig{
			{
				ID:             "classic",
				Title:          "Classic",
				UndoLimit:      3,
				SpawnBoostProb: 0.1,
			},
			{
				ID:             "zen",
				Title:          "Zen",
				UndoLimit:      25,
				SpawnBoostProb: 0.1,
			},
			{
				ID:             "sprint",
				Title:          "Sprint",
				UndoLimit:      1,
				TimerSeconds:   180,
				SpawnBoostProb: 0.15,
			},
			{
				ID:             "flux",
				Title:          "Flux",
				UndoLimit:      3,
				AutoSpawnMS:    4000,
				SpawnBoostProb: 0.1,
			},
		},
		Pacing: PacingConfig{
			Enabled:       true,
			MaxAt:         600,
			MinIntervalMS: 1500,
		},
	}
}

// DefaultYAML returns the embedded default modes YAML.
func DefaultYAML() []byte {
	return defaultModesYAML
}

package config

import "github.com/avolkhin/hextriad/internal/core"

// PaceManager calculates the current auto-spawn interval based on score.
// As the player scores, spawns arrive faster, down to a configured floor.
type PaceManager struct {
	cfg PacingConfig
}

// NewPaceManager creates a pace manager for the given pacing config.
func NewPaceManager(cfg PacingConfig) *PaceManager {
	return &PaceManager{cfg: cfg}
}

// IsEnabled returns whether spawn pacing is active.
func (p *PaceManager) IsEnabled() bool {
	return p.cfg.Enabled && p.cfg.MaxAt > 0
}

// Level returns the pacing level (0.0 to 1.0) for the given score.
func (p *PaceManager) Level(score int) float64 {
	if !p.IsEnabled() {
		return 0
	}
	return core.ClampF(float64(score)/float64(p.cfg.MaxAt), 0.0, 1.0)
}

// IntervalMS returns the current spawn interval in milliseconds,
// interpolated from the base interval down to the configured minimum.
func (p *PaceManager) IntervalMS(baseMS int, score int) int {
	if !p.IsEnabled() || baseMS <= 0 {
		return baseMS
	}

	floor := p.cfg.MinIntervalMS
	if floor <= 0 || floor > baseMS {
		floor = baseMS
	}

	level := p.Level(score)
	interval := float64(baseMS) - level*float64(baseMS-floor)
	return int(interval)
}

package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg ModesConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded modes.yaml does not parse: %v", err)
	}

	want := DefaultModesConfig()
	if len(cfg.Modes) != len(want.Modes) {
		t.Fatalf("embedded defaults list %d modes, hardcoded %d", len(cfg.Modes), len(want.Modes))
	}

	for i, m := range want.Modes {
		got := cfg.Modes[i]
		if got.ID != m.ID || got.Title != m.Title {
			t.Errorf("mode %d: got %s/%s, want %s/%s", i, got.ID, got.Title, m.ID, m.Title)
		}
		if got.UndoLimit != m.UndoLimit {
			t.Errorf("mode %s: undo_limit = %d, want %d", m.ID, got.UndoLimit, m.UndoLimit)
		}
		if got.TimerSeconds != m.TimerSeconds || got.AutoSpawnMS != m.AutoSpawnMS {
			t.Errorf("mode %s: timer/spawn = %d/%d, want %d/%d",
				m.ID, got.TimerSeconds, got.AutoSpawnMS, m.TimerSeconds, m.AutoSpawnMS)
		}
		if got.SpawnBoostProb != m.SpawnBoostProb {
			t.Errorf("mode %s: spawn_boost_prob = %v, want %v", m.ID, got.SpawnBoostProb, m.SpawnBoostProb)
		}
	}

	if cfg.Pacing != want.Pacing {
		t.Errorf("pacing = %+v, want %+v", cfg.Pacing, want.Pacing)
	}
}

func TestModeConfigPolicy(t *testing.T) {
	m := ModeConfig{
		ID:             "sprint",
		Title:          "Sprint",
		UndoLimit:      1,
		TimerSeconds:   180,
		SpawnBoostProb: 0.15,
	}

	p := m.Policy()
	if p.ID != "sprint" || p.UndoLimit != 1 || p.TimerSeconds != 180 {
		t.Errorf("Policy() = %+v, fields not carried over", p)
	}
	if p.WinningValue != 1062882 {
		t.Errorf("winning value = %d, want the terminal progression value", p.WinningValue)
	}
}

func TestModeByID(t *testing.T) {
	cfg := DefaultModesConfig()

	if m, ok := cfg.ModeByID("flux"); !ok || m.AutoSpawnMS != 4000 {
		t.Errorf("ModeByID(flux) = %+v, %v", m, ok)
	}
	if _, ok := cfg.ModeByID("nope"); ok {
		t.Error("unknown mode should not resolve")
	}
}

func TestPaceManagerInterval(t *testing.T) {
	p := NewPaceManager(PacingConfig{Enabled: true, MaxAt: 600, MinIntervalMS: 1500})

	if got := p.IntervalMS(4000, 0); got != 4000 {
		t.Errorf("interval at score 0 = %d, want base 4000", got)
	}
	if got := p.IntervalMS(4000, 600); got != 1500 {
		t.Errorf("interval at max score = %d, want floor 1500", got)
	}
	if got := p.IntervalMS(4000, 6000); got != 1500 {
		t.Errorf("interval beyond max = %d, want floor 1500", got)
	}

	mid := p.IntervalMS(4000, 300)
	if mid <= 1500 || mid >= 4000 {
		t.Errorf("interval at half score = %d, want strictly between floor and base", mid)
	}
}

func TestPaceManagerDisabled(t *testing.T) {
	p := NewPaceManager(PacingConfig{Enabled: false, MaxAt: 600, MinIntervalMS: 1500})

	if got := p.IntervalMS(4000, 600); got != 4000 {
		t.Errorf("disabled pacing should return the base interval, got %d", got)
	}
	if p.Level(600) != 0 {
		t.Error("disabled pacing should report level 0")
	}
}

func TestLoadModesCustomPathMissing(t *testing.T) {
	if _, err := LoadModes("/nonexistent/modes.yaml"); err == nil {
		t.Error("missing explicit config path should be an error")
	}
}

func TestLoadModesFallsBackToEmbedded(t *testing.T) {
	// No custom path and no user/local config in the test environment:
	// the embedded defaults must load.
	cfg, err := LoadModes("")
	if err != nil {
		t.Fatalf("LoadModes: %v", err)
	}
	if len(cfg.Modes) == 0 {
		t.Fatal("no modes loaded from defaults")
	}
}

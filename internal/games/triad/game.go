// Package triad implements the hexagonal triple-merge puzzle game.
// Each registered mode wraps the same engine with a different policy.
package triad

import (
	"sync"

	"github.com/avolkhin/hextriad/internal/config"
	"github.com/avolkhin/hextriad/internal/core"
	"github.com/avolkhin/hextriad/internal/engine"
	"github.com/avolkhin/hextriad/internal/hexgrid"
	"github.com/avolkhin/hextriad/internal/registry"
)

// Game implements registry.Game for one mode of the puzzle.
type Game struct {
	modeID string
	policy engine.Policy
	eng    *engine.Engine
	st     engine.State
	pace   *config.PaceManager
	tick   uint64

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	initialBest int

	// Flux scheduling
	spawnTicks int // ticks until the next scheduled spawn, 0 = disabled

	// Sprint countdown
	timerTicks int // remaining ticks, relevant only when the policy is timed
	timeUp     bool

	paused        bool
	tooSmall      bool
	moveProcessed bool // one slide per tick
}

// Package-level config overrides, applied at Reset.
var (
	overrideMu  sync.RWMutex
	overrides   map[string]engine.Policy
	pacingSetup config.PacingConfig
)

// ApplyModesConfig installs loaded mode configuration. Policies found in
// the config replace the built-in table for subsequent resets.
func ApplyModesConfig(cfg config.ModesConfig) {
	overrideMu.Lock()
	defer overrideMu.Unlock()

	overrides = make(map[string]engine.Policy, len(cfg.Modes))
	for _, m := range cfg.Modes {
		overrides[m.ID] = m.Policy()
	}
	pacingSetup = cfg.Pacing
}

// resolvePolicy returns the active policy for a mode: the configured
// override when present, otherwise the engine's built-in table.
func resolvePolicy(modeID string) engine.Policy {
	overrideMu.RLock()
	defer overrideMu.RUnlock()

	if p, ok := overrides[modeID]; ok {
		return p
	}
	if p, ok := engine.PolicyFor(modeID); ok {
		return p
	}
	return engine.DefaultPolicy()
}

func resolvePacing() config.PacingConfig {
	overrideMu.RLock()
	defer overrideMu.RUnlock()
	return pacingSetup
}

// New creates a game for the given mode ID.
func New(modeID string) *Game {
	return &Game{
		modeID: modeID,
		policy: resolvePolicy(modeID),
	}
}

func init() {
	for _, id := range []string{
		engine.ModeClassic,
		engine.ModeZen,
		engine.ModeSprint,
		engine.ModeFlux,
	} {
		modeID := id
		registry.Register(modeID, func() registry.Game {
			return New(modeID)
		})
	}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.modeID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.policy.Title
}

// SeedBestScore installs the persisted best score. Implements
// registry.BestScoreSeeder; safe to call before or after Reset.
func (g *Game) SeedBestScore(score int) {
	g.initialBest = score
	if score > g.st.BestScore {
		g.st.BestScore = score
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.policy = resolvePolicy(g.modeID)
	g.eng = engine.New(g.policy, cfg.Seed)
	g.st = g.eng.NewGame(g.initialBest)
	g.pace = config.NewPaceManager(resolvePacing())

	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	g.paused = false
	g.timeUp = false
	g.moveProcessed = false

	g.timerTicks = g.policy.TimerSeconds * g.tickRate
	g.spawnTicks = g.spawnInterval()

	g.checkScreenSize()
}

// spawnInterval returns the current scheduled-spawn interval in ticks,
// or 0 when the mode has no auto-spawn.
func (g *Game) spawnInterval() int {
	if g.policy.AutoSpawnMillis <= 0 {
		return 0
	}
	ms := g.policy.AutoSpawnMillis
	if g.pace != nil {
		ms = g.pace.IntervalMS(ms, g.st.Score)
	}
	return core.Max(ms*g.tickRate/1000, 1)
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	// Board spans 57 columns and 13 rows, plus the HUD.
	minW := 60
	minH := 19
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// finished reports whether play has stopped for any terminal reason.
func (g *Game) finished() bool {
	return g.st.GameOver || g.st.Won || g.timeUp
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.finished() {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.finished() {
		// Will be reset by platform
		return core.StepResult{State: g.State()}
	}

	if g.finished() {
		return core.StepResult{State: g.State()}
	}

	g.stepTimer()
	g.stepAutoSpawn()

	if g.timeUp {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionUndo) {
		g.st = g.eng.Undo(g.st)
		return core.StepResult{State: g.State()}
	}

	for i, action := range core.DirectionActions() {
		if in.Has(action) && !g.moveProcessed {
			g.st = g.eng.Move(g.st, hexgrid.Direction(i))
			g.moveProcessed = true
		}
	}

	return core.StepResult{State: g.State()}
}

// stepTimer counts down the sprint clock.
func (g *Game) stepTimer() {
	if g.policy.TimerSeconds <= 0 {
		return
	}
	g.timerTicks--
	if g.timerTicks <= 0 {
		g.timerTicks = 0
		g.timeUp = true
	}
}

// stepAutoSpawn drops a scheduled tile in auto-spawn modes. A spawn that
// fills the last cell with no merge available ends the game.
func (g *Game) stepAutoSpawn() {
	if g.policy.AutoSpawnMillis <= 0 {
		return
	}

	g.spawnTicks--
	if g.spawnTicks > 0 {
		return
	}

	g.st = g.eng.SpawnTile(g.st)
	if !g.eng.HasValidMoves(g.st.Board) {
		g.st.GameOver = true
	}
	g.spawnTicks = g.spawnInterval()
}

// TimeLeftSeconds returns the remaining sprint time, or 0 when untimed.
func (g *Game) TimeLeftSeconds() int {
	if g.policy.TimerSeconds <= 0 {
		return 0
	}
	return (g.timerTicks + g.tickRate - 1) / g.tickRate
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.st.Score,
		GameOver: g.finished(),
		Won:      g.st.Won,
		Paused:   g.paused || g.tooSmall,
	}
}

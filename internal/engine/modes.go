package engine

// Policy is the per-mode configuration applied to the engine. The
// move algorithm itself is mode-agnostic; timer and auto-spawn values
// are consumed by an external scheduler that calls Move and SpawnTile.
type Policy struct {
	ID              string
	Title           string
	UndoLimit       int
	WinningValue    int
	TimerSeconds    int     // 0 = untimed
	AutoSpawnMillis int     // 0 = no scheduled spawns
	SpawnBoostProb  float64 // chance of spawning the boost value instead of the base
}

// Mode identifiers.
const (
	ModeClassic = "classic"
	ModeZen     = "zen"
	ModeSprint  = "sprint"
	ModeFlux    = "flux"
)

// policies is the static mode table.
var policies = []Policy{
	{
		ID:             ModeClassic,
		Title:          "Classic",
		UndoLimit:      3,
		WinningValue:   WinningValue,
		SpawnBoostProb: 0.1,
	},
	{
		ID:             ModeZen,
		Title:          "Zen",
		UndoLimit:      25,
		WinningValue:   WinningValue,
		SpawnBoostProb: 0.1,
	},
	{
		ID:             ModeSprint,
		Title:          "Sprint",
		UndoLimit:      1,
		WinningValue:   WinningValue,
		TimerSeconds:   180,
		SpawnBoostProb: 0.15,
	},
	{
		ID:              ModeFlux,
		Title:           "Flux",
		UndoLimit:       3,
		WinningValue:    WinningValue,
		AutoSpawnMillis: 4000,
		SpawnBoostProb:  0.1,
	},
}

// DefaultPolicy returns the classic mode policy.
func DefaultPolicy() Policy {
	return policies[0]
}

// Policies returns all mode policies in declaration order.
func Policies() []Policy {
	out := make([]Policy, len(policies))
	copy(out, policies)
	return out
}

// PolicyFor looks up a mode policy by identifier.
func PolicyFor(id string) (Policy, bool) {
	for _, p := range policies {
		if p.ID == id {
			return p, true
		}
	}
	return Policy{}, false
}

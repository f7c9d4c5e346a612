package triad

import (
	"sort"

	"github.com/avolkhin/hextriad/internal/hexgrid"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StateTimeUp      GameStateType = "time_up"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// TileSnapshot is one tile in a snapshot, stripped of identity.
type TileSnapshot struct {
	Pos   hexgrid.Hex
	Value int
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Score     int
	Best      int
	UndosLeft int
	Tiles     []TileSnapshot // sorted by coordinate
	MaxTile   int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.st.Won:
		state = StateWin
	case g.timeUp:
		state = StateTimeUp
	case g.st.GameOver:
		state = StateGameOver
	}

	tiles := make([]TileSnapshot, 0, len(g.st.Board))
	for _, t := range g.st.Board {
		tiles = append(tiles, TileSnapshot{Pos: t.Pos, Value: t.Value})
	}
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].Pos.Q != tiles[j].Pos.Q {
			return tiles[i].Pos.Q < tiles[j].Pos.Q
		}
		return tiles[i].Pos.R < tiles[j].Pos.R
	})

	return Snapshot{
		Tick:      g.tick,
		Mode:      g.modeID,
		Score:     g.st.Score,
		Best:      g.st.BestScore,
		UndosLeft: g.st.UndosLeft,
		Tiles:     tiles,
		MaxTile:   g.st.Board.MaxValue(),
		State:     state,
	}
}

package engine

import (
	"math/rand"

	"github.com/avolkhin/hextriad/internal/hexgrid"
)

// InitialTileCount is the number of tiles spawned on a fresh board.
const InitialTileCount = 5

// Engine applies moves, undo and reset to game states. It owns the
// grid geometry, the active mode policy and the spawn RNG; everything
// else lives in the State values it consumes and produces.
type Engine struct {
	grid   hexgrid.Grid
	policy Policy
	rng    *rand.Rand
}

// New creates an engine with the given policy and RNG seed.
func New(policy Policy, seed int64) *Engine {
	return &Engine{
		grid:   hexgrid.DefaultGrid(),
		policy: policy,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Grid returns the board geometry.
func (e *Engine) Grid() hexgrid.Grid {
	return e.grid
}

// Policy returns the active mode policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// NewGame returns a freshly initialized state: an empty board filled
// with the initial spawns, zero score, empty history, and the undo
// budget from the mode policy. bestScore is carried in from the
// surrounding application.
func (e *Engine) NewGame(bestScore int) State {
	s := State{
		BestScore: bestScore,
		UndosLeft: e.policy.UndoLimit,
	}
	for range InitialTileCount {
		s = e.SpawnTile(s)
	}
	return s
}

// Reset produces a fresh state, carrying only bestScore forward.
func (e *Engine) Reset(s State) State {
	return e.NewGame(s.BestScore)
}

// SpawnTile places one new tile at a uniformly random empty position:
// the base value with probability 1-SpawnBoostProb, else the boost
// value. A full board is returned unchanged. Exposed separately so
// timer-driven modes can spawn on a schedule.
func (e *Engine) SpawnTile(s State) State {
	empty := s.Board.EmptyCells(e.grid)
	if len(empty) == 0 {
		return s
	}

	pos := empty[e.rng.Intn(len(empty))]
	value := BaseValue
	if e.rng.Float64() < e.policy.SpawnBoostProb {
		value = BoostValue
	}

	out := s
	out.Board = append(s.Board.Clone(), Tile{
		ID:    newTileID(),
		Value: value,
		Pos:   pos,
		IsNew: true,
	})
	return out
}

// Move slides every tile as far as possible in the given direction,
// resolves merge chains, spawns one tile and re-evaluates the
// terminal flags. If no tile physically changes position the move is
// a no-op and the input state is returned unchanged, with no history
// entry, spawn or merge evaluation.
func (e *Engine) Move(s State, dir hexgrid.Direction) State {
	snapshot := HistoryEntry{Board: s.Board.Clone(), Score: s.Score}

	board := s.Board.Clone()
	for i := range board {
		board[i].IsNew = false
		board[i].IsMerged = false
	}

	board, moved := slide(board, e.grid, dir)
	if !moved {
		return s
	}

	board, gained := ResolveMerges(board)
	score := s.Score + gained

	out := State{
		Board:     board,
		Score:     score,
		BestScore: max(s.BestScore, score),
		History:   append(cloneHistory(s.History), snapshot),
		CanUndo:   true,
		UndosLeft: s.UndosLeft,
	}
	out = e.SpawnTile(out)

	out.Won = out.Board.MaxValue() >= e.policy.WinningValue
	out.GameOver = len(out.Board.EmptyCells(e.grid)) == 0 && !HasAnyTriplet(out.Board)

	return out
}

// slide packs the tiles of every directional line against the line's
// forward end, preserving relative order. Returns the new board and
// whether any tile changed position.
func slide(b Board, grid hexgrid.Grid, dir hexgrid.Direction) (Board, bool) {
	byPos := make(map[hexgrid.Hex]int, len(b))
	for i, t := range b {
		byPos[t.Pos] = i
	}

	out := b.Clone()
	moved := false

	for _, line := range grid.Lines(dir) {
		// Collect tiles on this line in line order.
		var idxs []int
		for _, c := range line {
			if i, ok := byPos[c]; ok {
				idxs = append(idxs, i)
			}
		}

		// Re-place them starting at line[0], no gaps.
		for slot, i := range idxs {
			if !out[i].Pos.Equal(line[slot]) {
				out[i].Pos = line[slot]
				moved = true
			}
		}
	}

	return out, moved
}

// Undo restores the most recent pre-move snapshot. It is a silent
// no-op unless undo is allowed, history is non-empty and budget
// remains. Undo always returns to a playable state.
func (e *Engine) Undo(s State) State {
	if !s.CanUndo || len(s.History) == 0 || s.UndosLeft <= 0 {
		return s
	}

	history := cloneHistory(s.History)
	entry := history[len(history)-1]
	history = history[:len(history)-1]

	return State{
		Board:     entry.Board.Clone(),
		Score:     entry.Score,
		BestScore: s.BestScore,
		GameOver:  false,
		Won:       false,
		History:   history,
		CanUndo:   len(history) > 0,
		UndosLeft: s.UndosLeft - 1,
	}
}

// HasValidMoves reports whether any move can still change the board:
// there is an empty cell to slide into, or a triplet ready to merge.
func (e *Engine) HasValidMoves(b Board) bool {
	if len(b) < e.grid.CellCount() {
		return true
	}
	return HasAnyTriplet(b)
}

// Package engine implements the deterministic game-state engine for
// the hexagonal triple-merge puzzle: sliding, triplet merging, undo
// history and terminal-state detection. All operations are pure
// transformations from one state value to the next; the only
// non-determinism is the injected spawn RNG.
package engine

import (
	"github.com/google/uuid"

	"github.com/avolkhin/hextriad/internal/hexgrid"
)

// Progression is the fixed ordered sequence of tile values. A value
// merges only into the next entry; the top entry is the win threshold
// and cannot merge further.
var Progression = [13]int{
	2, 6, 18, 54, 162, 486, 1458, 4374,
	13122, 39366, 118098, 354294, 1062882,
}

// WinningValue is the terminal progression value.
const WinningValue = 1062882

// BaseValue and BoostValue are the two spawnable tile values.
const (
	BaseValue  = 2
	BoostValue = 6
)

// progressionIndex returns the index of v in the progression, or -1.
func progressionIndex(v int) int {
	for i, p := range Progression {
		if p == v {
			return i
		}
	}
	return -1
}

// NextValue returns the progression entry after v. ok is false when v
// is the terminal value or not a progression member.
func NextValue(v int) (next int, ok bool) {
	i := progressionIndex(v)
	if i < 0 || i == len(Progression)-1 {
		return 0, false
	}
	return Progression[i+1], true
}

// IsProgressionValue reports whether v is a member of the progression.
func IsProgressionValue(v int) bool {
	return progressionIndex(v) >= 0
}

// Tile is a single tile on the board. ID is assigned at creation and
// never reused; it tracks the tile across moves and identifies tiles
// consumed by merges. IsNew and IsMerged are per-move display hints
// only, reset at the start of every move.
type Tile struct {
	ID       string
	Value    int
	Pos      hexgrid.Hex
	IsNew    bool
	IsMerged bool
}

// newTileID returns a fresh opaque unique tile identifier.
func newTileID() string {
	return uuid.NewString()
}

// Board is an ordered collection of tiles. No two tiles share a
// position; iteration order is the triplet-detection tie-break order.
type Board []Tile

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	copy(out, b)
	return out
}

// TileAt returns the tile occupying pos, if any.
func (b Board) TileAt(pos hexgrid.Hex) (Tile, bool) {
	for _, t := range b {
		if t.Pos.Equal(pos) {
			return t, true
		}
	}
	return Tile{}, false
}

// HasTileID reports whether a tile with the given ID is on the board.
func (b Board) HasTileID(id string) bool {
	for _, t := range b {
		if t.ID == id {
			return true
		}
	}
	return false
}

// removeIDs returns the board with the given tile IDs removed.
func (b Board) removeIDs(ids ...string) Board {
	out := make(Board, 0, len(b))
	for _, t := range b {
		drop := false
		for _, id := range ids {
			if t.ID == id {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, t)
		}
	}
	return out
}

// MaxValue returns the highest tile value on the board, 0 if empty.
func (b Board) MaxValue() int {
	maxVal := 0
	for _, t := range b {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}

// EmptyCells returns the grid coordinates not occupied by a tile,
// in grid enumeration order.
func (b Board) EmptyCells(grid hexgrid.Grid) []hexgrid.Hex {
	occupied := make(map[hexgrid.Hex]bool, len(b))
	for _, t := range b {
		occupied[t.Pos] = true
	}

	var empty []hexgrid.Hex
	for _, c := range grid.Coords() {
		if !occupied[c] {
			empty = append(empty, c)
		}
	}
	return empty
}

// HistoryEntry is a pre-move snapshot used by undo.
type HistoryEntry struct {
	Board Board
	Score int
}

// State is the complete game state. Operations never mutate a state
// they were given; each returns a fresh value.
type State struct {
	Board     Board
	Score     int
	BestScore int
	GameOver  bool
	Won       bool
	CanUndo   bool
	History   []HistoryEntry
	UndosLeft int
}

// cloneHistory returns an independent copy of the history slice.
// Entry boards are immutable once snapshotted, so a shallow copy of
// the entries is sufficient.
func cloneHistory(h []HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, len(h))
	copy(out, h)
	return out
}

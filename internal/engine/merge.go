package engine

import (
	"math"

	"github.com/avolkhin/hextriad/internal/hexgrid"
)

// Triplet is a set of three mutually adjacent tiles sharing one value,
// eligible to merge into a single tile of the next progression value.
type Triplet struct {
	Center Tile
	A      Tile
	B      Tile
}

// tiles returns the three participants.
func (t Triplet) tiles() [3]Tile {
	return [3]Tile{t.Center, t.A, t.B}
}

// FindTripletAt looks for a triplet centered on the tile at pos.
// Only the first mutually adjacent pair found is reported, even when
// several disjoint matching pairs exist around the same center.
func FindTripletAt(b Board, pos hexgrid.Hex) (Triplet, bool) {
	return findTripletAt(b, pos, nil)
}

// findTripletAt is FindTripletAt with an exclusion set: positions
// already claimed by an earlier triplet in the same scan are not
// considered as pair candidates.
func findTripletAt(b Board, pos hexgrid.Hex, claimed map[hexgrid.Hex]bool) (Triplet, bool) {
	center, ok := b.TileAt(pos)
	if !ok {
		return Triplet{}, false
	}

	// Neighbors holding a tile of equal value. Off-grid coordinates
	// hold no tile, so grid membership is filtered implicitly.
	var matches []Tile
	for _, n := range hexgrid.Neighbors(pos) {
		if claimed[n] {
			continue
		}
		if t, ok := b.TileAt(n); ok && t.Value == center.Value {
			matches = append(matches, t)
		}
	}
	if len(matches) < 2 {
		return Triplet{}, false
	}

	// First pair that is also mutually adjacent completes the triplet.
	for i := 0; i < len(matches); i++ {
		for j := i + 1; j < len(matches); j++ {
			if areNeighbors(matches[i].Pos, matches[j].Pos) {
				return Triplet{Center: center, A: matches[i], B: matches[j]}, true
			}
		}
	}

	return Triplet{}, false
}

// areNeighbors reports whether two coordinates are adjacent.
func areNeighbors(a, b hexgrid.Hex) bool {
	for _, n := range hexgrid.Neighbors(a) {
		if n.Equal(b) {
			return true
		}
	}
	return false
}

// FindAllTriplets scans the board in iteration order and returns the
// triplets found, claiming each participant position so no tile
// appears in two triplets within one scan.
func FindAllTriplets(b Board) []Triplet {
	claimed := make(map[hexgrid.Hex]bool)
	var triplets []Triplet

	for _, t := range b {
		if claimed[t.Pos] {
			continue
		}
		trip, ok := findTripletAt(b, t.Pos, claimed)
		if !ok {
			continue
		}
		for _, p := range trip.tiles() {
			claimed[p.Pos] = true
		}
		triplets = append(triplets, trip)
	}

	return triplets
}

// HasAnyTriplet reports whether at least one triplet exists anywhere.
func HasAnyTriplet(b Board) bool {
	for _, t := range b {
		if _, ok := findTripletAt(b, t.Pos, nil); ok {
			return true
		}
	}
	return false
}

// MergeTriplet replaces the triplet's three tiles with one tile of the
// next progression value at the rounded centroid of their positions.
// Merging the terminal value is a no-op: unchanged board, zero score.
func MergeTriplet(b Board, trip Triplet) (Board, int) {
	next, ok := NextValue(trip.Center.Value)
	if !ok {
		return b, 0
	}

	out := b.removeIDs(trip.Center.ID, trip.A.ID, trip.B.ID)
	out = append(out, Tile{
		ID:       newTileID(),
		Value:    next,
		Pos:      centroid(trip.Center.Pos, trip.A.Pos, trip.B.Pos),
		IsMerged: true,
	})

	return out, trip.Center.Value * 3
}

// centroid returns the rounded componentwise average of three
// coordinates. For three mutually adjacent cells this always lands on
// one of the three.
func centroid(a, b, c hexgrid.Hex) hexgrid.Hex {
	return hexgrid.Hex{
		Q: roundThird(a.Q + b.Q + c.Q),
		R: roundThird(a.R + b.R + c.R),
	}
}

func roundThird(sum int) int {
	return int(math.Round(float64(sum) / 3))
}

// ResolveMerges repeatedly finds and merges triplets until a pass
// finds none, enabling chain reactions: a merge's resulting tile can
// form a new triplet evaluated in the next pass. A triplet is skipped
// within a pass if any of its tiles was already consumed by an
// earlier merge of the same pass. A pass that merges nothing ends the
// loop: terminal-value triplets are detected but never consumed, so
// without this guard they would be re-found forever. Returns the
// settled board and the total score gained across all passes.
func ResolveMerges(b Board) (Board, int) {
	board := b
	total := 0

	for {
		triplets := FindAllTriplets(board)
		if len(triplets) == 0 {
			return board, total
		}

		mergedAny := false
		for _, trip := range triplets {
			consumed := false
			for _, t := range trip.tiles() {
				if !board.HasTileID(t.ID) {
					consumed = true
					break
				}
			}
			if consumed {
				continue
			}

			var gained int
			board, gained = MergeTriplet(board, trip)
			if gained > 0 {
				mergedAny = true
				total += gained
			}
		}

		if !mergedAny {
			return board, total
		}
	}
}

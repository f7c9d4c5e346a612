package engine

import (
	"testing"

	"github.com/avolkhin/hextriad/internal/hexgrid"
)

func tile(id string, value, q, r int) Tile {
	return Tile{ID: id, Value: value, Pos: hexgrid.H(q, r)}
}

func TestFindTripletAt(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		at    hexgrid.Hex
		found bool
	}{
		{
			name: "mutually adjacent trio",
			board: Board{
				tile("a", 2, 0, 0),
				tile("b", 2, 1, 0),
				tile("c", 2, 0, 1),
			},
			at:    hexgrid.H(0, 0),
			found: true,
		},
		{
			name: "equal neighbors not mutually adjacent",
			board: Board{
				tile("a", 2, 0, 0),
				tile("b", 2, 1, 0),
				tile("c", 2, -1, 0),
			},
			at:    hexgrid.H(0, 0),
			found: false,
		},
		{
			name: "value mismatch breaks trio",
			board: Board{
				tile("a", 2, 0, 0),
				tile("b", 6, 1, 0),
				tile("c", 2, 0, 1),
			},
			at:    hexgrid.H(0, 0),
			found: false,
		},
		{
			name: "single equal neighbor",
			board: Board{
				tile("a", 2, 0, 0),
				tile("b", 2, 1, 0),
			},
			at:    hexgrid.H(0, 0),
			found: false,
		},
		{
			name:  "empty center",
			board: Board{tile("a", 2, 1, 0)},
			at:    hexgrid.H(0, 0),
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, found := FindTripletAt(tt.board, tt.at)
			if found != tt.found {
				t.Errorf("FindTripletAt = %v, want %v", found, tt.found)
			}
		})
	}
}

func TestMergeTriplet(t *testing.T) {
	board := Board{
		tile("a", 2, 0, 0),
		tile("b", 2, 1, 0),
		tile("c", 2, 0, 1),
		tile("d", 18, -3, 0), // bystander
	}

	trip, found := FindTripletAt(board, hexgrid.H(0, 0))
	if !found {
		t.Fatal("expected a triplet at (0,0)")
	}

	merged, score := MergeTriplet(board, trip)

	if score != 6 {
		t.Errorf("score = %d, want 6 (3x2)", score)
	}
	if len(merged) != 2 {
		t.Fatalf("tile count = %d, want 2", len(merged))
	}

	// Centroid of (0,0), (1,0), (0,1) rounds to (0,0).
	result, ok := merged.TileAt(hexgrid.H(0, 0))
	if !ok {
		t.Fatal("no tile at merge centroid (0,0)")
	}
	if result.Value != 6 {
		t.Errorf("merged value = %d, want 6", result.Value)
	}
	if !result.IsMerged {
		t.Error("merged tile should carry the IsMerged hint")
	}
	for _, consumed := range []string{"a", "b", "c"} {
		if merged.HasTileID(consumed) {
			t.Errorf("consumed tile %q still on board", consumed)
		}
	}
	if !merged.HasTileID("d") {
		t.Error("bystander tile was removed")
	}
}

func TestMergeTerminalValueIsNoOp(t *testing.T) {
	board := Board{
		tile("a", WinningValue, 0, 0),
		tile("b", WinningValue, 1, 0),
		tile("c", WinningValue, 0, 1),
	}

	trip, found := FindTripletAt(board, hexgrid.H(0, 0))
	if !found {
		t.Fatal("terminal tiles are still detected as a triplet")
	}

	merged, score := MergeTriplet(board, trip)
	if score != 0 {
		t.Errorf("score = %d, want 0 for terminal merge", score)
	}
	if len(merged) != 3 {
		t.Errorf("tile count = %d, want 3 (board unchanged)", len(merged))
	}
}

func TestFindAllTripletsClaimsParticipants(t *testing.T) {
	// Four 2s in a row pair up with a shared candidate; once the first
	// triplet claims its tiles, the rest cannot reuse them.
	board := Board{
		tile("a", 2, 0, 0),
		tile("b", 2, 1, 0),
		tile("c", 2, 0, 1),
		tile("d", 2, 1, 1),
	}

	triplets := FindAllTriplets(board)
	if len(triplets) != 1 {
		t.Fatalf("found %d triplets, want 1 (remaining tile has no free pair)", len(triplets))
	}

	seen := make(map[string]bool)
	for _, trip := range triplets {
		for _, tl := range trip.tiles() {
			if seen[tl.ID] {
				t.Errorf("tile %q participates in two triplets", tl.ID)
			}
			seen[tl.ID] = true
		}
	}
}

func TestResolveMergesSingle(t *testing.T) {
	board := Board{
		tile("a", 6, 0, 0),
		tile("b", 6, 1, 0),
		tile("c", 6, 0, 1),
	}

	out, score := ResolveMerges(board)
	if score != 18 {
		t.Errorf("score = %d, want 18 (3x6)", score)
	}
	if len(out) != 1 {
		t.Fatalf("tile count = %d, want 1", len(out))
	}
	if out[0].Value != 18 {
		t.Errorf("value = %d, want 18", out[0].Value)
	}
}

func TestResolveMergesChainReaction(t *testing.T) {
	// The 2-triplet merges to a 6 at (0,0), which then completes a
	// second triplet with the two 6s to its west.
	board := Board{
		tile("a", 2, 0, 0),
		tile("b", 2, 1, 0),
		tile("c", 2, 0, 1),
		tile("d", 6, -1, 0),
		tile("e", 6, -1, 1),
	}

	out, score := ResolveMerges(board)

	if score != 6+18 {
		t.Errorf("cumulative score = %d, want 24 (6 from pass one, 18 from pass two)", score)
	}
	if len(out) != 1 {
		t.Fatalf("tile count = %d, want 1 after chain", len(out))
	}
	if out[0].Value != 18 {
		t.Errorf("final value = %d, want 18", out[0].Value)
	}
}

func TestResolveMergesFixedPoint(t *testing.T) {
	board := Board{
		tile("a", 2, 0, 0),
		tile("b", 6, 1, 0),
		tile("c", 18, 0, 1),
	}

	out, score := ResolveMerges(board)
	if score != 0 {
		t.Errorf("score = %d, want 0 when nothing merges", score)
	}
	if len(out) != 3 {
		t.Errorf("tile count = %d, want 3", len(out))
	}
}

func TestResolveMergesTerminalTripletSettles(t *testing.T) {
	// Three adjacent terminal tiles are detected as a triplet every
	// pass but can never merge; resolution must still settle.
	board := Board{
		tile("a", WinningValue, 0, 0),
		tile("b", WinningValue, 1, 0),
		tile("c", WinningValue, 0, 1),
	}

	out, score := ResolveMerges(board)
	if score != 0 {
		t.Errorf("score = %d, want 0 for an unmergeable terminal triplet", score)
	}
	if len(out) != 3 {
		t.Errorf("tile count = %d, want 3 (board unchanged)", len(out))
	}
}

func TestResolveMergesTerminalTripletBesideChain(t *testing.T) {
	// A real merge in the same pass as a terminal triplet must not
	// keep resolution spinning on the terminal trio.
	board := Board{
		tile("a", WinningValue, 0, 0),
		tile("b", WinningValue, 1, 0),
		tile("c", WinningValue, 0, 1),
		tile("d", 2, -2, 0),
		tile("e", 2, -3, 0),
		tile("f", 2, -3, 1),
	}

	out, score := ResolveMerges(board)
	if score != 6 {
		t.Errorf("score = %d, want 6 from the lone real merge", score)
	}
	if len(out) != 4 {
		t.Errorf("tile count = %d, want 4 (terminal trio plus merged 6)", len(out))
	}
}

func TestCentroidRounding(t *testing.T) {
	tests := []struct {
		a, b, c hexgrid.Hex
		want    hexgrid.Hex
	}{
		{hexgrid.H(0, 0), hexgrid.H(1, 0), hexgrid.H(0, 1), hexgrid.H(0, 0)},
		{hexgrid.H(0, 0), hexgrid.H(-1, 0), hexgrid.H(-1, 1), hexgrid.H(-1, 0)},
		{hexgrid.H(2, -2), hexgrid.H(2, -1), hexgrid.H(1, -1), hexgrid.H(2, -1)},
	}

	for _, tt := range tests {
		got := centroid(tt.a, tt.b, tt.c)
		if !got.Equal(tt.want) {
			t.Errorf("centroid(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
		}
	}
}

func TestNextValueProgression(t *testing.T) {
	if next, ok := NextValue(2); !ok || next != 6 {
		t.Errorf("NextValue(2) = %d, %v; want 6, true", next, ok)
	}
	if next, ok := NextValue(354294); !ok || next != WinningValue {
		t.Errorf("NextValue(354294) = %d, %v; want %d, true", next, ok, WinningValue)
	}
	if _, ok := NextValue(WinningValue); ok {
		t.Error("terminal value should have no successor")
	}
	if _, ok := NextValue(7); ok {
		t.Error("non-progression value should have no successor")
	}
}

package hexgrid

// DefaultGridSize is the default board span in cells along an axis.
// It yields a hexagon of radius 3 with 37 cells.
const DefaultGridSize = 7

// Grid is a hexagon-shaped board of radius floor(size/2) centered on
// the origin. A coordinate belongs to the grid iff all three cube
// components are within the radius.
type Grid struct {
	radius int
}

// NewGrid creates a grid for the given size (diameter in cells).
func NewGrid(size int) Grid {
	return Grid{radius: size / 2}
}

// DefaultGrid returns the standard 37-cell board.
func DefaultGrid() Grid {
	return NewGrid(DefaultGridSize)
}

// Radius returns the grid radius.
func (g Grid) Radius() int {
	return g.radius
}

// Contains reports whether the coordinate is a valid cell of the grid.
func (g Grid) Contains(h Hex) bool {
	return abs(h.Q) <= g.radius && abs(h.R) <= g.radius && abs(h.S()) <= g.radius
}

// CellCount returns the total number of valid cells (3r²+3r+1).
func (g Grid) CellCount() int {
	return 3*g.radius*g.radius + 3*g.radius + 1
}

// Coords enumerates every valid coordinate exactly once, q ascending
// and then r ascending within the clamped range.
func (g Grid) Coords() []Hex {
	coords := make([]Hex, 0, g.CellCount())
	for q := -g.radius; q <= g.radius; q++ {
		rMin := max(-g.radius, -q-g.radius)
		rMax := min(g.radius, -q+g.radius)
		for r := rMin; r <= rMax; r++ {
			coords = append(coords, Hex{Q: q, R: r})
		}
	}
	return coords
}

// Lines partitions the grid into disjoint maximal straight lines along
// the given direction. Each line is ordered from the far end toward
// the near end relative to the direction of travel, so line[0] is the
// cell a slide packs tiles against.
func (g Grid) Lines(dir Direction) [][]Hex {
	assigned := make(map[Hex]bool, g.CellCount())
	var lines [][]Hex

	back := dir.Opposite()
	for _, start := range g.Coords() {
		if assigned[start] {
			continue
		}

		// Walk backward to the start of this line.
		head := start
		for {
			prev := head.Step(back)
			if !g.Contains(prev) {
				break
			}
			head = prev
		}

		// Walk forward collecting the full line.
		var line []Hex
		for cur := head; g.Contains(cur); cur = cur.Step(dir) {
			line = append(line, cur)
			assigned[cur] = true
		}
		lines = append(lines, line)
	}

	return lines
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Package hexgrid provides axial hex-coordinate arithmetic for the
// hexagonal puzzle board. It contains no external dependencies so the
// game logic stays pure and testable.
package hexgrid

import (
	"fmt"
	"math"
)

// Hex is an axial hex coordinate. The cube third coordinate s = -q-r
// is derived, never stored.
type Hex struct {
	Q int
	R int
}

// H is a convenience constructor for Hex.
func H(q, r int) Hex {
	return Hex{Q: q, R: r}
}

// S returns the derived cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

// String returns a string representation of the coordinate.
func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d)", h.Q, h.R)
}

// Add returns the componentwise sum of two coordinates.
func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R}
}

// Step returns the coordinate one cell away in the given direction.
func (h Hex) Step(d Direction) Hex {
	return h.Add(d.Vector())
}

// Equal returns true if two coordinates are the same cell.
func (h Hex) Equal(other Hex) bool {
	return h.Q == other.Q && h.R == other.R
}

// Pixel is a Cartesian point produced by ToPixel.
type Pixel struct {
	X float64
	Y float64
}

// ToPixel converts the coordinate to Cartesian space for rendering:
// x = size*(sqrt3*q + sqrt3/2*r), y = size*(3/2*r).
func (h Hex) ToPixel(size float64) Pixel {
	sqrt3 := math.Sqrt(3)
	return Pixel{
		X: size * (sqrt3*float64(h.Q) + sqrt3/2*float64(h.R)),
		Y: size * (1.5 * float64(h.R)),
	}
}

// Direction is one of the six hex sliding directions.
type Direction int

const (
	NorthEast Direction = iota
	East
	SouthEast
	SouthWest
	West
	NorthWest
)

// DirectionCount is the number of hex directions.
const DirectionCount = 6

// directionVectors maps each direction to its unit axial step.
var directionVectors = [DirectionCount]Hex{
	NorthEast: {Q: 1, R: -1},
	East:      {Q: 1, R: 0},
	SouthEast: {Q: 0, R: 1},
	SouthWest: {Q: -1, R: 1},
	West:      {Q: -1, R: 0},
	NorthWest: {Q: 0, R: -1},
}

// Vector returns the unit axial step for the direction.
func (d Direction) Vector() Hex {
	return directionVectors[d]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 3) % DirectionCount
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// Directions returns all six directions in enumeration order.
func Directions() [DirectionCount]Direction {
	return [DirectionCount]Direction{NorthEast, East, SouthEast, SouthWest, West, NorthWest}
}

// Neighbors returns the 6 coordinates adjacent to h, one per direction.
// Neighbors outside a grid are included; callers filter where relevant.
func Neighbors(h Hex) [DirectionCount]Hex {
	var out [DirectionCount]Hex
	for i, v := range directionVectors {
		out[i] = h.Add(v)
	}
	return out
}

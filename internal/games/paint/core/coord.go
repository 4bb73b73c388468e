package core

import "fmt"

// Coord is a grid position. X grows to the right, Y grows upward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbour one cell away in direction d.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// along returns the coordinate's position on the given axis.
func (c Coord) along(a Axis) int {
	if a == AxisHorizontal {
		return c.X
	}
	return c.Y
}

// Path returns the unit-step path from a to b inclusive.
// a and b must share a row or a column; otherwise only a is returned.
func Path(a, b Coord) []Coord {
	if a == b || (a.X != b.X && a.Y != b.Y) {
		return []Coord{a}
	}
	dx, dy := sign(b.X-a.X), sign(b.Y-a.Y)
	n := abs(b.X-a.X) + abs(b.Y-a.Y)
	path := make([]Coord, 0, n+1)
	for i := 0; i <= n; i++ {
		path = append(path, a.Add(dx*i, dy*i))
	}
	return path
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

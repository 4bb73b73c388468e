package core

import "fmt"

// ValidateGrid checks a level layout for authoring mistakes that make it
// unplayable regardless of solver outcome.
// Checks:
//   - At least one non-wall cell exists
//   - At least one ball exists
func ValidateGrid(g *Grid) error {
	if g.PaintableCount() == 0 {
		return ValidationError{
			Code:    "NO_PAINTABLE",
			Message: fmt.Sprintf("%dx%d grid has no paintable cells", g.W, g.H),
		}
	}
	if len(g.Balls()) == 0 {
		return ValidationError{
			Code:    "NO_BALLS",
			Message: "level has no balls",
		}
	}
	return nil
}

// GridStats summarises a level layout.
type GridStats struct {
	Width     int
	Height    int
	Walls     int
	Paintable int
	Balls     int
	Coins     int
}

// ComputeGridStats analyzes a grid and returns statistics.
func ComputeGridStats(g *Grid) GridStats {
	paintable := g.PaintableCount()
	return GridStats{
		Width:     g.W,
		Height:    g.H,
		Walls:     g.Size() - paintable,
		Paintable: paintable,
		Balls:     len(g.Balls()),
		Coins:     len(g.Coins()),
	}
}

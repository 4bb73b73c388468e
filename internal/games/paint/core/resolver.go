package core

import "fmt"

// MoveCommand describes one ball's movement for a swipe. Path runs from
// From to To inclusive in traversal order; a ball that cannot move has a
// single-entry path.
type MoveCommand struct {
	Ball BallID
	From Coord
	To   Coord
	Path []Coord
}

// IsNoop reports whether the ball stays where it is.
func (m MoveCommand) IsNoop() bool {
	return m.From == m.To
}

// Steps returns the number of cells the ball travels.
func (m MoveCommand) Steps() int {
	return len(m.Path) - 1
}

// Resolution is the outcome of resolving a swipe.
type Resolution struct {
	Dir      Dir
	Commands []MoveCommand
	Moved    bool // false when every command is a no-op
}

// Moving returns the commands whose ball changes cell.
func (r Resolution) Moving() []MoveCommand {
	var out []MoveCommand
	for _, cmd := range r.Commands {
		if !cmd.IsNoop() {
			out = append(out, cmd)
		}
	}
	return out
}

// Resolve computes where every ball in occ comes to rest when swiped in
// dir. All balls move simultaneously: each one slides until the grid
// edge, a wall, or the stack of balls already resting ahead of it. The
// grid and occupancy are not modified; apply the result with Grid.Commit.
//
// Commands are ordered by segment (rows bottom to top for horizontal
// swipes, columns left to right for vertical ones) and by stacking order
// inside a segment.
func Resolve(g *Grid, occ Occupancy, dir Dir) (Resolution, error) {
	if !dir.Valid() {
		return Resolution{}, fmt.Errorf("%w: %d", ErrInvalidDirection, dir)
	}

	balls := make([]int, 0, len(occ))
	ids := make(map[int]BallID, len(occ))
	for c, id := range occ {
		cell, ok := g.Cell(c)
		if !ok {
			return Resolution{}, fmt.Errorf("%w: ball %d outside grid at %v", ErrInvalidOccupancy, id, c)
		}
		if cell.Wall {
			return Resolution{}, fmt.Errorf("%w: ball %d on wall at %v", ErrInvalidOccupancy, id, c)
		}
		i := g.Index(c)
		balls = append(balls, i)
		ids[i] = id
	}

	slides, err := NewSegmentIndex(g, dir.Axis()).plan(balls, dir)
	if err != nil {
		return Resolution{}, err
	}

	res := Resolution{Dir: dir, Commands: make([]MoveCommand, 0, len(slides))}
	for _, s := range slides {
		from, to := g.CoordOf(s.from), g.CoordOf(s.to)
		res.Commands = append(res.Commands, MoveCommand{
			Ball: ids[s.from],
			From: from,
			To:   to,
			Path: Path(from, to),
		})
		if from != to {
			res.Moved = true
		}
	}
	return res, nil
}

// ResolveGrid resolves a swipe against the balls currently on g.
func ResolveGrid(g *Grid, dir Dir) (Resolution, error) {
	return Resolve(g, g.Occupancy(), dir)
}

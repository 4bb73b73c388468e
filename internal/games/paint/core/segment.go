package core

import (
	"fmt"
	"slices"
)

// Segment is a maximal run of non-wall cells along one row (horizontal)
// or one column (vertical). Start and End are inclusive positions along
// the axis; Line is the row Y or column X.
type Segment struct {
	Axis  Axis
	Line  int
	Start int
	End   int
}

// Len returns the number of cells in the segment.
func (s Segment) Len() int {
	return s.End - s.Start + 1
}

// Coord returns the grid coordinate at position pos along the segment axis.
func (s Segment) Coord(pos int) Coord {
	if s.Axis == AxisHorizontal {
		return Coord{X: pos, Y: s.Line}
	}
	return Coord{X: s.Line, Y: pos}
}

// Contains reports whether c lies inside the segment.
func (s Segment) Contains(c Coord) bool {
	if s.Axis == AxisHorizontal {
		return c.Y == s.Line && c.X >= s.Start && c.X <= s.End
	}
	return c.X == s.Line && c.Y >= s.Start && c.Y <= s.End
}

// target returns where the i-th ball in stacking order comes to rest.
func (s Segment) target(i int, dir Dir) int {
	if dir.towardStart() {
		return s.Start + i
	}
	return s.End - i
}

// SegmentIndex partitions a grid's walkable cells into segments along one
// axis. The solver builds one index per axis and reuses it for every state.
type SegmentIndex struct {
	axis Axis
	w    int
	segs []Segment
	of   []int // cell index -> segment number, -1 for walls
}

// NewSegmentIndex scans g and builds the segment partition for axis.
// Segments are ordered by line, then by start position.
func NewSegmentIndex(g *Grid, axis Axis) *SegmentIndex {
	idx := &SegmentIndex{
		axis: axis,
		w:    g.W,
		of:   make([]int, g.Size()),
	}

	lines, length := g.H, g.W
	if axis == AxisVertical {
		lines, length = g.W, g.H
	}

	for line := 0; line < lines; line++ {
		start := -1
		for pos := 0; pos <= length; pos++ {
			var c Coord
			if axis == AxisHorizontal {
				c = Coord{X: pos, Y: line}
			} else {
				c = Coord{X: line, Y: pos}
			}

			open := pos < length && !g.cells[g.Index(c)].Wall
			switch {
			case open && start < 0:
				start = pos
			case !open && start >= 0:
				idx.segs = append(idx.segs, Segment{Axis: axis, Line: line, Start: start, End: pos - 1})
				start = -1
			}
			if pos < length {
				if open {
					idx.of[g.Index(c)] = len(idx.segs)
				} else {
					idx.of[g.Index(c)] = -1
				}
			}
		}
	}
	return idx
}

// Axis returns the partition axis.
func (x *SegmentIndex) Axis() Axis {
	return x.axis
}

// Segments returns the segments in scan order.
func (x *SegmentIndex) Segments() []Segment {
	return x.segs
}

// SegmentAt returns the segment holding cell index i.
func (x *SegmentIndex) SegmentAt(i int) (Segment, bool) {
	if i < 0 || i >= len(x.of) || x.of[i] < 0 {
		return Segment{}, false
	}
	return x.segs[x.of[i]], true
}

// slide is a single ball move in flat cell indices.
type slide struct {
	from int
	to   int
}

// pos returns the position of cell index i along the index axis.
func (x *SegmentIndex) pos(i int) int {
	if x.axis == AxisHorizontal {
		return i % x.w
	}
	return i / x.w
}

// cell converts a position inside segment s back to a flat index.
func (x *SegmentIndex) cell(s Segment, pos int) int {
	if x.axis == AxisHorizontal {
		return s.Line*x.w + pos
	}
	return pos*x.w + s.Line
}

// plan resolves a swipe for balls at the given cell indices. Balls are
// bucketed by segment, sorted in travel order and packed against the
// segment end they travel toward. The result lists slides segment by
// segment in stacking order. Resolve and the solver both move balls
// through plan.
func (x *SegmentIndex) plan(balls []int, dir Dir) ([]slide, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, dir)
	}
	if dir.Axis() != x.axis {
		return nil, fmt.Errorf("%w: %s swipe on %s index", ErrInvalidDirection, dir, axisName(x.axis))
	}

	buckets := make(map[int][]int, len(balls))
	order := make([]int, 0, len(balls))
	for _, b := range balls {
		if b < 0 || b >= len(x.of) || x.of[b] < 0 {
			return nil, fmt.Errorf("%w: ball at cell %d", ErrInvalidOccupancy, b)
		}
		seg := x.of[b]
		if _, seen := buckets[seg]; !seen {
			order = append(order, seg)
		}
		buckets[seg] = append(buckets[seg], b)
	}
	slices.Sort(order)

	out := make([]slide, 0, len(balls))
	for _, seg := range order {
		members := buckets[seg]
		if dir.towardStart() {
			slices.SortFunc(members, func(a, b int) int { return x.pos(a) - x.pos(b) })
		} else {
			slices.SortFunc(members, func(a, b int) int { return x.pos(b) - x.pos(a) })
		}
		s := x.segs[seg]
		for i, b := range members {
			out = append(out, slide{from: b, to: x.cell(s, s.target(i, dir))})
		}
	}
	return out, nil
}

func axisName(a Axis) string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

package core

import (
	"encoding/binary"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// DefaultMaxStates bounds the solver when the caller passes no budget.
const DefaultMaxStates = 120000

// Analysis is the solver verdict for a level.
type Analysis struct {
	Winnable       bool
	MinSwipes      int // -1 when no solution was found
	ExploredStates int // states dequeued and expanded
	UniqueStates   int // distinct states seen
	HitLimit       bool
}

// Verdict renders the analysis as a short label. A search that ran out of
// budget is inconclusive, not a proof that the level cannot be won.
func (a Analysis) Verdict() string {
	switch {
	case a.Winnable:
		return "WINNABLE"
	case a.HitLimit:
		return "INCONCLUSIVE"
	default:
		return "NOT WINNABLE"
	}
}

// searchState is one node of the breadth-first search. States are never
// mutated after creation.
type searchState struct {
	balls []int // sorted cell indices
	paint Bitset
	depth int
}

// key packs the ball layout and paint mask into a fixed-width string.
func (s searchState) key() string {
	buf := make([]byte, 0, len(s.balls)*4+1+len(s.paint)*8)
	for _, b := range s.balls {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(b))
	}
	buf = append(buf, '|')
	for _, w := range s.paint {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	return string(buf)
}

// solver holds per-level data shared by every state.
type solver struct {
	grid  *Grid
	index [2]*SegmentIndex // by Axis
	goal  Bitset
}

// step applies one swipe to s and returns the successor state.
func (sv *solver) step(s searchState, dir Dir) searchState {
	slides, err := sv.index[dir.Axis()].plan(s.balls, dir)
	if err != nil {
		return s
	}

	next := searchState{
		balls: make([]int, 0, len(slides)),
		paint: s.paint.Clone(),
		depth: s.depth + 1,
	}
	for _, sl := range slides {
		for _, c := range Path(sv.grid.CoordOf(sl.from), sv.grid.CoordOf(sl.to)) {
			next.paint.Set(sv.grid.Index(c))
		}
		next.balls = append(next.balls, sl.to)
	}
	slices.Sort(next.balls)
	return next
}

// AnalyzeGrid runs Analyze from the balls currently placed on g.
func AnalyzeGrid(g *Grid, maxStates int) Analysis {
	return Analyze(g, g.Balls(), maxStates)
}

// Analyze searches breadth-first over (ball layout, paint mask) states to
// decide whether every non-wall cell can be painted, and with how few
// swipes. Cells under the starting balls count as painted. Balls outside
// the grid or on walls are ignored, as are duplicates.
//
// The search stops once the visited set reaches maxStates and reports
// HitLimit; maxStates <= 0 selects DefaultMaxStates.
func Analyze(g *Grid, balls []Coord, maxStates int) Analysis {
	if maxStates <= 0 {
		maxStates = DefaultMaxStates
	}

	sv := &solver{
		grid: g,
		goal: NewBitset(g.Size()),
	}
	sv.index[AxisHorizontal] = NewSegmentIndex(g, AxisHorizontal)
	sv.index[AxisVertical] = NewSegmentIndex(g, AxisVertical)
	for i := 0; i < g.Size(); i++ {
		if !g.IsWall(g.CoordOf(i)) {
			sv.goal.Set(i)
		}
	}

	start := searchState{paint: NewBitset(g.Size())}
	for _, c := range balls {
		if !g.InBounds(c) || g.IsWall(c) {
			continue
		}
		start.balls = append(start.balls, g.Index(c))
	}
	slices.Sort(start.balls)
	start.balls = slices.Compact(start.balls)
	for _, b := range start.balls {
		start.paint.Set(b)
	}

	if start.paint.Covers(sv.goal) {
		return Analysis{Winnable: true, MinSwipes: 0, ExploredStates: 1, UniqueStates: 1}
	}

	visited := mapset.New[string]()
	visited.Put(start.key())
	queue := []searchState{start}
	explored := 0
	hitLimit := false

search:
	for head := 0; head < len(queue); head++ {
		if visited.Size() >= maxStates {
			hitLimit = true
			break
		}

		cur := queue[head]
		queue[head] = searchState{}
		explored++

		for _, dir := range AllDirs {
			next := sv.step(cur, dir)
			if slices.Equal(next.balls, cur.balls) && next.paint.Equal(cur.paint) {
				continue
			}
			if next.paint.Covers(sv.goal) {
				return Analysis{
					Winnable:       true,
					MinSwipes:      next.depth,
					ExploredStates: explored,
					UniqueStates:   visited.Size() + 1,
				}
			}

			k := next.key()
			if visited.Has(k) {
				continue
			}
			visited.Put(k)
			queue = append(queue, next)

			if visited.Size() >= maxStates {
				hitLimit = true
				break search
			}
		}
	}

	return Analysis{
		Winnable:       false,
		MinSwipes:      -1,
		ExploredStates: explored,
		UniqueStates:   visited.Size(),
		HitLimit:       hitLimit,
	}
}

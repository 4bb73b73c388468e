package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/paintroll/internal/games/paint/core"
)

func TestResolveSingleBallSlidesToEdge(t *testing.T) {
	g := mustGrid(t, "o..")

	res, err := core.ResolveGrid(g, core.DirRight)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !res.Moved {
		t.Fatal("expected movement")
	}
	if len(res.Commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(res.Commands))
	}

	cmd := res.Commands[0]
	expectedPath := []core.Coord{core.C(0, 0), core.C(1, 0), core.C(2, 0)}
	if cmd.To != core.C(2, 0) {
		t.Errorf("expected ball at (2,0), got %v", cmd.To)
	}
	if !reflect.DeepEqual(cmd.Path, expectedPath) {
		t.Errorf("expected path %v, got %v", expectedPath, cmd.Path)
	}

	p := core.NewPaint(g)
	p.VisitPath(cmd.Path)
	if p.Painted() != 3 {
		t.Errorf("expected 3 painted cells, got %d", p.Painted())
	}
}

func TestResolveWallBlocksMovement(t *testing.T) {
	g := mustGrid(t, "o#.")

	res, err := core.ResolveGrid(g, core.DirRight)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.Moved {
		t.Error("expected no movement")
	}
	if len(res.Commands) != 1 || !res.Commands[0].IsNoop() {
		t.Fatalf("expected a single no-op command, got %+v", res.Commands)
	}
	if len(res.Commands[0].Path) != 1 {
		t.Errorf("no-op path should hold only the start cell, got %v", res.Commands[0].Path)
	}
}

func TestResolveFullSegmentIsStable(t *testing.T) {
	g := mustGrid(t, "oo")

	for _, dir := range []core.Dir{core.DirLeft, core.DirRight} {
		res, err := core.ResolveGrid(g, dir)
		if err != nil {
			t.Fatalf("Resolve(%s) failed: %v", dir, err)
		}
		if res.Moved {
			t.Errorf("%s: a full segment should not move", dir)
		}
		for _, cmd := range res.Commands {
			if !cmd.IsNoop() {
				t.Errorf("%s: ball %d moved %v -> %v", dir, cmd.Ball, cmd.From, cmd.To)
			}
		}
	}
}

func TestResolveStacksInTravelOrder(t *testing.T) {
	testCases := []struct {
		name     string
		rows     []string
		dir      core.Dir
		expected map[core.Coord]core.Coord // from -> to
	}{
		{
			name: "right packs against far edge",
			rows: []string{"o.o."},
			dir:  core.DirRight,
			expected: map[core.Coord]core.Coord{
				core.C(2, 0): core.C(3, 0),
				core.C(0, 0): core.C(2, 0),
			},
		},
		{
			name: "left packs against near edge",
			rows: []string{".o.o"},
			dir:  core.DirLeft,
			expected: map[core.Coord]core.Coord{
				core.C(1, 0): core.C(0, 0),
				core.C(3, 0): core.C(1, 0),
			},
		},
		{
			name: "walls split segments",
			rows: []string{"o.#o."},
			dir:  core.DirRight,
			expected: map[core.Coord]core.Coord{
				core.C(0, 0): core.C(1, 0),
				core.C(3, 0): core.C(4, 0),
			},
		},
		{
			name: "up raises y",
			rows: []string{".", ".", "o"},
			dir:  core.DirUp,
			expected: map[core.Coord]core.Coord{
				core.C(0, 0): core.C(0, 2),
			},
		},
		{
			name: "down lowers y and stacks",
			rows: []string{"o", "o", ".", "."},
			dir:  core.DirDown,
			expected: map[core.Coord]core.Coord{
				core.C(0, 2): core.C(0, 0),
				core.C(0, 3): core.C(0, 1),
			},
		},
		{
			name: "columns are independent",
			rows: []string{
				"o.",
				".#",
				".o",
			},
			dir: core.DirDown,
			expected: map[core.Coord]core.Coord{
				core.C(0, 2): core.C(0, 0),
				core.C(1, 0): core.C(1, 0),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.rows...)
			res, err := core.ResolveGrid(g, tc.dir)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if len(res.Commands) != len(tc.expected) {
				t.Fatalf("expected %d commands, got %d", len(tc.expected), len(res.Commands))
			}
			for _, cmd := range res.Commands {
				if want, ok := tc.expected[cmd.From]; !ok || cmd.To != want {
					t.Errorf("ball from %v: expected %v, got %v", cmd.From, want, cmd.To)
				}
			}
		})
	}
}

func TestResolveTieBreakByPosition(t *testing.T) {
	g := mustGrid(t, "o.o.")

	res, err := core.ResolveGrid(g, core.DirRight)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	// The ball nearest the destination edge is placed first and takes the edge.
	first := res.Commands[0]
	if first.From != core.C(2, 0) || first.To != core.C(3, 0) {
		t.Errorf("expected first command (2,0)->(3,0), got %v->%v", first.From, first.To)
	}
	if first.Ball != 2 {
		t.Errorf("expected ball 2 first, got %d", first.Ball)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	g := mustGrid(t,
		"o.o.#o",
		".o..o.",
		"o#.o..",
	)

	for _, dir := range core.AllDirs {
		first, err := core.ResolveGrid(g, dir)
		if err != nil {
			t.Fatalf("Resolve(%s) failed: %v", dir, err)
		}
		for i := 0; i < 20; i++ {
			again, _ := core.ResolveGrid(g, dir)
			if !reflect.DeepEqual(first, again) {
				t.Fatalf("Resolve(%s) is not deterministic", dir)
			}
		}
	}
}

func TestResolveInvariants(t *testing.T) {
	layouts := [][]string{
		{"o.o.#o", ".o..o.", "o#.o.."},
		{"oooo", "o..o", "oooo"},
		{"#o#", "o.o", "#o#"},
		{"o"},
	}

	for _, rows := range layouts {
		g := mustGrid(t, rows...)
		occ := g.Occupancy()
		for _, dir := range core.AllDirs {
			res, err := core.Resolve(g, occ, dir)
			if err != nil {
				t.Fatalf("Resolve(%s) failed: %v", dir, err)
			}

			// Conservation.
			if len(res.Commands) != len(occ) {
				t.Errorf("%v %s: %d balls in, %d commands out", rows, dir, len(occ), len(res.Commands))
			}

			targets := make(map[core.Coord]bool)
			for _, cmd := range res.Commands {
				// No overlap.
				if targets[cmd.To] {
					t.Errorf("%v %s: two balls end at %v", rows, dir, cmd.To)
				}
				targets[cmd.To] = true

				// Path shape and boundaries.
				if cmd.Path[0] != cmd.From || cmd.Path[len(cmd.Path)-1] != cmd.To {
					t.Errorf("%v %s: path %v does not run %v->%v", rows, dir, cmd.Path, cmd.From, cmd.To)
				}
				for _, c := range cmd.Path {
					if cell, ok := g.Cell(c); !ok || cell.Wall {
						t.Errorf("%v %s: path crosses %v", rows, dir, c)
					}
				}

				// Monotone travel along the swipe.
				dx, dy := dir.Delta()
				if (cmd.To.X-cmd.From.X)*dx < 0 || (cmd.To.Y-cmd.From.Y)*dy < 0 {
					t.Errorf("%v %s: ball moved against the swipe", rows, dir)
				}
			}

			// Committing never fails for a resolved swipe.
			clone := g.Clone()
			if err := clone.Commit(res.Commands); err != nil {
				t.Errorf("%v %s: commit failed: %v", rows, dir, err)
			}
		}
	}
}

func TestResolveRejectsBadInput(t *testing.T) {
	g := mustGrid(t, ".#.")

	_, err := core.Resolve(g, core.Occupancy{core.C(1, 0): 1}, core.DirLeft)
	if !errors.Is(err, core.ErrInvalidOccupancy) {
		t.Errorf("ball on wall: expected ErrInvalidOccupancy, got %v", err)
	}

	_, err = core.Resolve(g, core.Occupancy{core.C(7, 0): 1}, core.DirLeft)
	if !errors.Is(err, core.ErrInvalidOccupancy) {
		t.Errorf("ball outside grid: expected ErrInvalidOccupancy, got %v", err)
	}

	_, err = core.Resolve(g, core.Occupancy{}, core.Dir(9))
	if !errors.Is(err, core.ErrInvalidDirection) {
		t.Errorf("bad direction: expected ErrInvalidDirection, got %v", err)
	}
}

func TestResolveDoesNotMutateGrid(t *testing.T) {
	g := mustGrid(t, "o..o")
	before := g.Clone()

	if _, err := core.ResolveGrid(g, core.DirRight); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !g.Equal(before) {
		t.Error("Resolve must not modify the grid")
	}
}

func TestParseDir(t *testing.T) {
	testCases := []struct {
		in       string
		expected core.Dir
	}{
		{"left", core.DirLeft},
		{"R", core.DirRight},
		{" Up ", core.DirUp},
		{"d", core.DirDown},
	}

	for _, tc := range testCases {
		got, err := core.ParseDir(tc.in)
		if err != nil || got != tc.expected {
			t.Errorf("ParseDir(%q) = %v, %v; expected %v", tc.in, got, err, tc.expected)
		}
	}

	if _, err := core.ParseDir("sideways"); !errors.Is(err, core.ErrInvalidDirection) {
		t.Errorf("expected ErrInvalidDirection, got %v", err)
	}
}

func TestResolutionMoving(t *testing.T) {
	g := mustGrid(t, "o.o#o")

	res, err := core.ResolveGrid(g, core.DirRight)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(res.Commands) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(res.Commands))
	}

	moving := res.Moving()
	if len(moving) != 1 {
		t.Fatalf("expected 1 moving command, got %+v", moving)
	}
	if moving[0].From != core.C(0, 0) || moving[0].To != core.C(1, 0) {
		t.Errorf("expected (0,0)->(1,0), got %v->%v", moving[0].From, moving[0].To)
	}
}

func TestSegmentIndex(t *testing.T) {
	g := mustGrid(t, "..#.")

	rows := core.NewSegmentIndex(g, core.AxisHorizontal)
	want := []core.Segment{
		{Axis: core.AxisHorizontal, Line: 0, Start: 0, End: 1},
		{Axis: core.AxisHorizontal, Line: 0, Start: 3, End: 3},
	}
	if !reflect.DeepEqual(rows.Segments(), want) {
		t.Errorf("expected %v, got %v", want, rows.Segments())
	}

	testCases := []struct {
		cell  int
		ok    bool
		start int
	}{
		{cell: 0, ok: true, start: 0},
		{cell: 1, ok: true, start: 0},
		{cell: 2, ok: false},
		{cell: 3, ok: true, start: 3},
		{cell: 9, ok: false},
	}
	for _, tc := range testCases {
		seg, ok := rows.SegmentAt(tc.cell)
		if ok != tc.ok {
			t.Errorf("SegmentAt(%d) ok = %v, want %v", tc.cell, ok, tc.ok)
			continue
		}
		if ok && seg.Start != tc.start {
			t.Errorf("SegmentAt(%d) starts at %d, want %d", tc.cell, seg.Start, tc.start)
		}
	}

	cols := core.NewSegmentIndex(g, core.AxisVertical)
	if len(cols.Segments()) != 3 {
		t.Errorf("expected 3 column segments, got %d", len(cols.Segments()))
	}
	if seg := cols.Segments()[2]; seg.Line != 3 || seg.Len() != 1 {
		t.Errorf("unexpected last column segment %+v", seg)
	}
	if !want[0].Contains(core.C(1, 0)) || want[0].Contains(core.C(2, 0)) {
		t.Error("Contains disagrees with segment bounds")
	}
}

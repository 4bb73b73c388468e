package core_test

import (
	"testing"

	"github.com/vovakirdan/paintroll/internal/games/paint/core"
)

func TestPaintVisitIsIdempotent(t *testing.T) {
	g := mustGrid(t, "o.#.")
	p := core.NewPaint(g)

	if p.Paintable() != 3 {
		t.Fatalf("expected 3 paintable cells, got %d", p.Paintable())
	}

	first := p.Visit(core.C(1, 0))
	if !first.Newly || first.Painted != 1 {
		t.Errorf("first visit: expected newly painted count 1, got %+v", first)
	}
	again := p.Visit(core.C(1, 0))
	if again.Newly || again.Painted != 1 {
		t.Errorf("repeat visit should not change counts, got %+v", again)
	}

	wall := p.Visit(core.C(2, 0))
	if wall.Newly || p.Painted() != 1 {
		t.Error("walls are never painted")
	}
	p.Visit(core.C(10, 0))
	if p.Painted() != 1 {
		t.Error("out-of-range visits are ignored")
	}
}

func TestPaintCollectsCoinOnce(t *testing.T) {
	g := mustGrid(t, "o$.")
	p := core.NewPaint(g)

	events := p.VisitPath([]core.Coord{core.C(0, 0), core.C(1, 0), core.C(2, 0)})
	coins := 0
	for _, ev := range events {
		if ev.Coin {
			coins++
			if ev.Coord != core.C(1, 0) {
				t.Errorf("coin reported at %v", ev.Coord)
			}
		}
	}
	if coins != 1 {
		t.Fatalf("expected 1 coin, got %d", coins)
	}

	// A second ball crossing the same cell finds nothing.
	if ev := p.Visit(core.C(1, 0)); ev.Coin {
		t.Error("coin collected twice")
	}
}

func TestPaintComplete(t *testing.T) {
	g := mustGrid(t, "..#")
	p := core.NewPaint(g)

	if p.Complete() {
		t.Fatal("fresh paint should not be complete")
	}
	p.Visit(core.C(0, 0))
	if p.Ratio() != 0.5 {
		t.Errorf("expected ratio 0.5, got %v", p.Ratio())
	}
	ev := p.Visit(core.C(1, 0))
	if ev.Painted != ev.Paintable || !p.Complete() {
		t.Errorf("expected completion, got %+v", ev)
	}
	if !p.IsPainted(core.C(1, 0)) || p.IsPainted(core.C(2, 0)) {
		t.Error("IsPainted mismatch")
	}

	p.Reset()
	if p.Painted() != 0 || p.Complete() {
		t.Error("Reset should clear paint")
	}
}

func TestPaintNeverCompleteWithoutPaintableCells(t *testing.T) {
	g := mustGrid(t, "##")
	p := core.NewPaint(g)
	if p.Complete() {
		t.Error("a grid without paintable cells can never be complete")
	}
}

func TestRenderASCII(t *testing.T) {
	g := mustGrid(t,
		"#$.",
		"o..",
	)
	p := core.NewPaint(g)
	p.Visit(core.C(1, 0))

	expected := "#$.\no*.\n"
	if got := core.RenderASCII(g, p); got != expected {
		t.Errorf("RenderASCII = %q, expected %q", got, expected)
	}
}

func TestParseASCIIRejectsBadLayouts(t *testing.T) {
	testCases := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"ragged", []string{"...", ".."}},
		{"unknown glyph", []string{".x."}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := core.ParseASCII(tc.rows); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

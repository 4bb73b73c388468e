package core

// PaintEvent reports what happened when a ball entered a cell.
type PaintEvent struct {
	Coord     Coord
	Newly     bool // the cell turned painted on this visit
	Coin      bool // a coin was collected on this visit
	Painted   int
	Paintable int
}

// Paint tracks which cells have been painted on a grid and collects coins
// through the grid as balls pass over them. Painting is monotonic: a cell
// never becomes unpainted until Reset.
type Paint struct {
	grid      *Grid
	mask      Bitset
	painted   int
	paintable int
}

// NewPaint creates a paint tracker for g with nothing painted.
func NewPaint(g *Grid) *Paint {
	p := &Paint{grid: g}
	p.Reset()
	return p
}

// Reset clears all paint and recounts paintable cells.
func (p *Paint) Reset() {
	p.mask = NewBitset(p.grid.Size())
	p.painted = 0
	p.paintable = p.grid.PaintableCount()
}

// Visit paints c and collects its coin. Repeat visits are harmless;
// walls and out-of-range coordinates are ignored.
func (p *Paint) Visit(c Coord) PaintEvent {
	ev := PaintEvent{Coord: c}
	cell, ok := p.grid.Cell(c)
	if ok && !cell.Wall {
		i := p.grid.Index(c)
		if !p.mask.Has(i) {
			p.mask.Set(i)
			p.painted++
			ev.Newly = true
		}
		ev.Coin = p.grid.TakeCoin(c)
	}
	ev.Painted = p.painted
	ev.Paintable = p.paintable
	return ev
}

// VisitPath visits every cell of path in order.
func (p *Paint) VisitPath(path []Coord) []PaintEvent {
	events := make([]PaintEvent, 0, len(path))
	for _, c := range path {
		events = append(events, p.Visit(c))
	}
	return events
}

// IsPainted reports whether c has been painted.
func (p *Paint) IsPainted(c Coord) bool {
	if !p.grid.InBounds(c) {
		return false
	}
	return p.mask.Has(p.grid.Index(c))
}

// Painted returns the number of painted cells.
func (p *Paint) Painted() int {
	return p.painted
}

// Paintable returns the number of non-wall cells.
func (p *Paint) Paintable() int {
	return p.paintable
}

// Complete reports whether every paintable cell is painted.
func (p *Paint) Complete() bool {
	return p.paintable > 0 && p.painted == p.paintable
}

// Ratio returns painted/paintable in [0, 1].
func (p *Paint) Ratio() float64 {
	if p.paintable == 0 {
		return 0
	}
	return float64(p.painted) / float64(p.paintable)
}

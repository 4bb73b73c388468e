package core

import "fmt"

// Grid is the board: a rectangle of cells stored in row-major order
// (index = y*W + x). The grid owns every ball reference; callers change
// it only through the mutation methods below.
type Grid struct {
	W     int
	H     int
	cells []Cell
}

// Occupancy maps each ball-holding cell to the ball in it.
type Occupancy map[Coord]BallID

// CellRecord is one entry of a level snapshot.
type CellRecord struct {
	Coord Coord
	Wall  bool
	Ball  bool
	Coin  bool
}

// Snapshot is the serialisable form of a level layout.
// Coordinates missing from Cells are empty non-wall cells.
type Snapshot struct {
	W     int
	H     int
	Cells []CellRecord
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, w, h)
	}
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}, nil
}

// FromSnapshot builds a grid from a snapshot. Records outside the grid
// are ignored. A wall drops any ball or coin on the same cell and a ball
// drops a coin. Balls receive IDs 1..n in row-major order.
func FromSnapshot(s Snapshot) (*Grid, error) {
	g, err := NewGrid(s.W, s.H)
	if err != nil {
		return nil, err
	}

	balls := make([]bool, len(g.cells))
	for _, r := range s.Cells {
		if !g.InBounds(r.Coord) {
			continue
		}
		i := g.Index(r.Coord)
		g.cells[i] = Cell{Wall: r.Wall, Coin: r.Coin && !r.Wall && !r.Ball}
		balls[i] = r.Ball && !r.Wall
	}

	next := BallID(1)
	for i, has := range balls {
		if has {
			g.cells[i].Ball = next
			next++
		}
	}
	return g, nil
}

// Snapshot returns the grid layout as records for every non-empty cell,
// in row-major order.
func (g *Grid) Snapshot() Snapshot {
	s := Snapshot{W: g.W, H: g.H}
	for i, cell := range g.cells {
		if cell == (Cell{}) {
			continue
		}
		s.Cells = append(s.Cells, CellRecord{
			Coord: g.CoordOf(i),
			Wall:  cell.Wall,
			Ball:  cell.HasBall(),
			Coin:  cell.Coin,
		})
	}
	return s
}

// Size returns the number of cells.
func (g *Grid) Size() int {
	return len(g.cells)
}

// Index converts a coordinate to a flat index. The coordinate must be in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Y*g.W + c.X
}

// CoordOf converts a flat index back to a coordinate.
func (g *Grid) CoordOf(i int) Coord {
	return Coord{X: i % g.W, Y: i / g.W}
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Cell returns the cell at c. The second result is false when c is
// outside the grid.
func (g *Grid) Cell(c Coord) (Cell, bool) {
	if !g.InBounds(c) {
		return Cell{}, false
	}
	return g.cells[g.Index(c)], true
}

// IsWall reports whether c is a wall. Out-of-range coordinates are not walls.
func (g *Grid) IsWall(c Coord) bool {
	cell, ok := g.Cell(c)
	return ok && cell.Wall
}

// SetWall marks or clears a wall. A new wall removes any ball or coin.
func (g *Grid) SetWall(c Coord, wall bool) bool {
	if !g.InBounds(c) {
		return false
	}
	cell := &g.cells[g.Index(c)]
	cell.Wall = wall
	if wall {
		cell.Ball = NoBall
		cell.Coin = false
	}
	return true
}

// SetBall places ball id at c, replacing any coin. Walls and cells held
// by another ball refuse it.
func (g *Grid) SetBall(c Coord, id BallID) bool {
	if !g.InBounds(c) || id == NoBall {
		return false
	}
	cell := &g.cells[g.Index(c)]
	if cell.Wall || (cell.HasBall() && cell.Ball != id) {
		return false
	}
	cell.Ball = id
	cell.Coin = false
	return true
}

// ClearBall removes the ball at c and returns its ID.
func (g *Grid) ClearBall(c Coord) BallID {
	if !g.InBounds(c) {
		return NoBall
	}
	cell := &g.cells[g.Index(c)]
	id := cell.Ball
	cell.Ball = NoBall
	return id
}

// ToggleBall adds a ball with a fresh ID or removes the existing one.
// It returns whether the cell holds a ball afterwards.
func (g *Grid) ToggleBall(c Coord) bool {
	cell, ok := g.Cell(c)
	if !ok || cell.Wall {
		return false
	}
	if cell.HasBall() {
		g.ClearBall(c)
		return false
	}
	return g.SetBall(c, g.nextBallID())
}

// SetCoin places or removes a coin. Walls and ball cells refuse coins.
func (g *Grid) SetCoin(c Coord, coin bool) bool {
	if !g.InBounds(c) {
		return false
	}
	cell := &g.cells[g.Index(c)]
	if coin && (cell.Wall || cell.HasBall()) {
		cell.Coin = false
		return false
	}
	cell.Coin = coin
	return true
}

// ToggleCoin flips the coin flag and returns whether a coin is present afterwards.
func (g *Grid) ToggleCoin(c Coord) bool {
	cell, ok := g.Cell(c)
	if !ok {
		return false
	}
	if cell.Coin {
		g.SetCoin(c, false)
		return false
	}
	return g.SetCoin(c, true)
}

// TakeCoin removes the coin at c. It returns true only for the call that
// actually collected it.
func (g *Grid) TakeCoin(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	cell := &g.cells[g.Index(c)]
	if !cell.Coin {
		return false
	}
	cell.Coin = false
	return true
}

// Resize rebuilds the grid storage, keeping cells whose coordinates
// remain in bounds.
func (g *Grid) Resize(w, h int) error {
	if w < 1 || h < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, w, h)
	}
	cells := make([]Cell, w*h)
	for y := 0; y < h && y < g.H; y++ {
		for x := 0; x < w && x < g.W; x++ {
			cells[y*w+x] = g.cells[y*g.W+x]
		}
	}
	g.W, g.H, g.cells = w, h, cells
	return nil
}

// Occupancy returns the current ball positions.
func (g *Grid) Occupancy() Occupancy {
	occ := make(Occupancy)
	for i, cell := range g.cells {
		if cell.HasBall() {
			occ[g.CoordOf(i)] = cell.Ball
		}
	}
	return occ
}

// Balls returns ball coordinates in row-major order.
func (g *Grid) Balls() []Coord {
	var out []Coord
	for i, cell := range g.cells {
		if cell.HasBall() {
			out = append(out, g.CoordOf(i))
		}
	}
	return out
}

// Coins returns coin coordinates in row-major order.
func (g *Grid) Coins() []Coord {
	var out []Coord
	for i, cell := range g.cells {
		if cell.Coin {
			out = append(out, g.CoordOf(i))
		}
	}
	return out
}

// PaintableCount returns the number of non-wall cells.
func (g *Grid) PaintableCount() int {
	n := 0
	for _, cell := range g.cells {
		if !cell.Wall {
			n++
		}
	}
	return n
}

// Commit applies resolved moves. Every source ball reference is cleared
// before any destination is written, so a chain of balls moving into each
// other's cells never sees a cell holding two balls.
func (g *Grid) Commit(cmds []MoveCommand) error {
	from := make(map[Coord]bool, len(cmds))
	for _, cmd := range cmds {
		cell, ok := g.Cell(cmd.From)
		if !ok || cell.Ball != cmd.Ball || cmd.Ball == NoBall {
			return fmt.Errorf("%w: ball %d is not at %v", ErrInvalidCommit, cmd.Ball, cmd.From)
		}
		from[cmd.From] = true
	}

	to := make(map[Coord]bool, len(cmds))
	for _, cmd := range cmds {
		cell, ok := g.Cell(cmd.To)
		if !ok || cell.Wall {
			return fmt.Errorf("%w: target %v is not walkable", ErrInvalidCommit, cmd.To)
		}
		if cell.HasBall() && !from[cmd.To] {
			return fmt.Errorf("%w: target %v is held by ball %d", ErrInvalidCommit, cmd.To, cell.Ball)
		}
		if to[cmd.To] {
			return fmt.Errorf("%w: two balls target %v", ErrInvalidCommit, cmd.To)
		}
		to[cmd.To] = true
	}

	for _, cmd := range cmds {
		g.ClearBall(cmd.From)
	}
	for _, cmd := range cmds {
		g.SetBall(cmd.To, cmd.Ball)
	}
	return nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{W: g.W, H: g.H, cells: cells}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

func (g *Grid) nextBallID() BallID {
	top := NoBall
	for _, cell := range g.cells {
		if cell.Ball > top {
			top = cell.Ball
		}
	}
	return top + 1
}

package core

import "strings"

// ASCII legend shared by the renderer and the level file layout format.
const (
	GlyphWall    = '#'
	GlyphEmpty   = '.'
	GlyphBall    = 'o'
	GlyphCoin    = '$'
	GlyphPainted = '*'
)

// RenderASCII draws the grid top row first, so Up points up on screen.
// When p is non-nil painted cells without a ball or coin show as '*'.
func RenderASCII(g *Grid, p *Paint) string {
	var sb strings.Builder
	sb.Grow((g.W + 1) * g.H)
	for y := g.H - 1; y >= 0; y-- {
		for x := 0; x < g.W; x++ {
			sb.WriteRune(glyphAt(g, p, C(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func glyphAt(g *Grid, p *Paint, c Coord) rune {
	cell, _ := g.Cell(c)
	switch {
	case cell.Wall:
		return GlyphWall
	case cell.HasBall():
		return GlyphBall
	case cell.Coin:
		return GlyphCoin
	case p != nil && p.IsPainted(c):
		return GlyphPainted
	default:
		return GlyphEmpty
	}
}

// ParseASCII builds a grid from layout rows listed top row first, using
// the same legend as RenderASCII. Rows must have equal length.
func ParseASCII(rows []string) (*Grid, error) {
	s, err := SnapshotFromASCII(rows)
	if err != nil {
		return nil, err
	}
	return FromSnapshot(s)
}

// SnapshotFromASCII converts layout rows into a snapshot.
func SnapshotFromASCII(rows []string) (Snapshot, error) {
	h := len(rows)
	if h == 0 {
		return Snapshot{}, ErrInvalidSize
	}
	w := len([]rune(rows[0]))
	s := Snapshot{W: w, H: h}
	for i, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return Snapshot{}, ValidationError{
				Code:    "RAGGED_LAYOUT",
				Message: "layout rows must all have the same length",
			}
		}
		y := h - 1 - i
		for x, r := range runes {
			rec := CellRecord{Coord: C(x, y)}
			switch r {
			case GlyphEmpty, GlyphPainted:
				continue
			case GlyphWall:
				rec.Wall = true
			case GlyphBall:
				rec.Ball = true
			case GlyphCoin:
				rec.Coin = true
			default:
				return Snapshot{}, ValidationError{
					Code:    "BAD_GLYPH",
					Message: "unknown layout character " + string(r),
				}
			}
			s.Cells = append(s.Cells, rec)
		}
	}
	return s, nil
}

package paint

import (
	"fmt"
	"time"

	platformcore "github.com/vovakirdan/paintroll/internal/core"
	"github.com/vovakirdan/paintroll/internal/games/paint/core"
	"github.com/vovakirdan/paintroll/internal/games/paint/session"
	"github.com/vovakirdan/paintroll/internal/pool"
)

const (
	cellW     = 2 // terminal columns per grid cell
	hudHeight = 2
)

var paintColors = map[core.PaintColor]platformcore.Color{
	core.PaintRed:    platformcore.ColorRed,
	core.PaintOrange: platformcore.ColorOrange,
	core.PaintYellow: platformcore.ColorYellow,
	core.PaintGreen:  platformcore.ColorGreen,
	core.PaintBlue:   platformcore.ColorBlue,
	core.PaintPurple: platformcore.ColorPurple,
	core.PaintPink:   platformcore.ColorPink,
	core.PaintWhite:  platformcore.ColorBrightWhite,
	core.PaintBlack:  platformcore.ColorBlack,
}

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.sess == nil {
		msg := "No level loaded"
		if g.loadErr != nil {
			msg = g.loadErr.Error()
		}
		dst.DrawTextCentered(dst.Height()/2, msg, platformcore.ColorBrightRed)
		return
	}

	w, h := g.level.Size()
	board := platformcore.NewRect(0, 0, w*cellW+2, h+2)
	area := platformcore.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-1)
	if board.W > area.W || board.H > area.H {
		msg := "Terminal too small"
		if len(msg) > dst.Width() {
			msg = "too small"
		}
		dst.DrawTextCentered(dst.Height()/2, msg, platformcore.ColorBrightYellow)
		return
	}
	board = board.CenterIn(area)

	dst.DrawBox(board, platformcore.ColorGray)
	g.renderBoard(dst, board.X+1, board.Y+1)
	g.renderOverlay(dst, board)
	g.renderFooter(dst)
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf("%s  Level %d/%d  Swipes %d  Coins %d",
		g.Title(), g.levelNo, len(g.levels), g.movesOrZero(), g.wallet)
	if g.hasBest {
		hud += fmt.Sprintf("  Best %d", g.best)
	}
	if g.sess != nil && g.sess.Timed() {
		hud += "  Time " + clock(g.sess.TimeLeft())
	}
	dst.DrawTextColored(1, 0, hud, platformcore.ColorBrightCyan)

	if g.sess != nil {
		p := g.sess.Paint()
		dst.DrawTextColored(1, 1, fmt.Sprintf("%s  %d/%d painted", g.level.Name, p.Painted(), p.Paintable()),
			platformcore.ColorGray)
	}
}

func (g *Game) renderBoard(dst *platformcore.Screen, ox, oy int) {
	grid := g.sess.Grid()
	p := g.sess.Paint()
	paint := paintColors[g.level.Color]

	// Screen rows grow downward; grid rows grow upward.
	at := func(c core.Coord) (int, int) {
		return ox + c.X*cellW, oy + grid.H - 1 - c.Y
	}

	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			c := core.C(x, y)
			sx, sy := at(c)
			cell, _ := grid.Cell(c)
			switch {
			case cell.Wall:
				dst.DrawTextColored(sx, sy, "▓▓", platformcore.ColorDarkGray)
			case p.IsPainted(c):
				dst.DrawTextColored(sx, sy, "██", paint)
			default:
				dst.DrawTextColored(sx, sy, "· ", platformcore.ColorDarkGray)
			}
			if cell.Coin {
				dst.DrawTextColored(sx, sy, "$ ", platformcore.ColorBrightYellow)
			}
		}
	}

	g.effects.Each(func(_ pool.Handle, e *pickup) {
		sx, sy := at(e.at)
		dst.DrawTextColored(sx, sy, "+1", platformcore.ColorBrightYellow)
	})

	for _, b := range g.sess.Balls() {
		c := b.At
		if b.Frac >= 0.5 {
			c = b.Next
		}
		sx, sy := at(c)
		dst.DrawTextColored(sx, sy, "()", platformcore.ColorBrightWhite)
	}
}

func (g *Game) renderOverlay(dst *platformcore.Screen, board platformcore.Rect) {
	var msg string
	color := platformcore.ColorBrightYellow

	switch {
	case g.paused:
		msg = " PAUSED "
	case g.sess.State() == session.Won:
		msg = " LEVEL COMPLETE "
		color = platformcore.ColorBrightGreen
	case g.sess.State() == session.Lost:
		msg = " TIME'S UP - R to retry "
		color = platformcore.ColorBrightRed
	default:
		return
	}
	dst.DrawTextCentered(board.Y+board.H/2, msg, color)
}

func (g *Game) renderFooter(dst *platformcore.Screen) {
	if g.noticeIn > 0 && g.notice != "" {
		dst.DrawTextCentered(dst.Height()-1, g.notice, platformcore.ColorBrightWhite)
	}
}

func (g *Game) movesOrZero() int {
	if g.sess == nil {
		return 0
	}
	return g.sess.Moves()
}

func clock(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

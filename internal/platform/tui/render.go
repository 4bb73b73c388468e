package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paintroll/internal/core"
)

// Palette maps screen colors to terminal styles. Colors missing from a
// palette render unstyled.
type Palette map[core.Color]lipgloss.Style

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// DefaultPalette uses the 16 ANSI colors plus a few 256-color extras for
// paint colors the basic set lacks.
func DefaultPalette() Palette {
	return Palette{
		core.ColorRed:           fg("1"),
		core.ColorGreen:         fg("2"),
		core.ColorYellow:        fg("3"),
		core.ColorBlue:          fg("4"),
		core.ColorMagenta:       fg("5"),
		core.ColorCyan:          fg("6"),
		core.ColorWhite:         fg("7"),
		core.ColorBrightRed:     fg("9"),
		core.ColorBrightGreen:   fg("10"),
		core.ColorBrightYellow:  fg("11"),
		core.ColorBrightBlue:    fg("12"),
		core.ColorBrightMagenta: fg("13"),
		core.ColorBrightCyan:    fg("14"),
		core.ColorBrightWhite:   fg("15"),
		core.ColorOrange:        fg("208"),
		core.ColorPink:          fg("205"),
		core.ColorPurple:        fg("135"),
		core.ColorGray:          fg("245"),
		core.ColorDarkGray:      fg("238"),
		core.ColorBlack:         fg("16"),
	}
}

// With returns a copy of p with overrides applied.
func (p Palette) With(overrides Palette) Palette {
	out := make(Palette, len(p)+len(overrides))
	for c, s := range p {
		out[c] = s
	}
	for c, s := range overrides {
		out[c] = s
	}
	return out
}

// Style returns the style for c.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if s, ok := p[c]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// RenderScreen converts a Screen buffer to a styled string. Runs of cells
// sharing a color are rendered with one style call.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb, run strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.Style(color).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText left-pads text to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

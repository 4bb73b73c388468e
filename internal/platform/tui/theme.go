package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paintroll/internal/core"
)

// Theme holds the styles of everything drawn outside the game screen.
type Theme struct {
	Name string

	// Progress bar gradient, as lipgloss color strings.
	BarFrom string
	BarTo   string

	StatusText lipgloss.Style
	Help       lipgloss.Style

	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	TableBorder   lipgloss.Color
	TableSelected lipgloss.Style

	// Palette colors the game screen.
	Palette Palette
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		BarFrom: "#FF5F87",
		BarTo:   "#5FD7FF",

		StatusText: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		TableBorder: lipgloss.Color("240"),
		TableSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),

		Palette: DefaultPalette(),
	}
}

// NeonTheme returns a neon-style theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "neon"
	theme.BarFrom = "#FF00AF"
	theme.BarTo = "#00FF87"
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("199")).Bold(true)
	theme.Palette = theme.Palette.With(Palette{
		core.ColorRed:    fg("197"),
		core.ColorGreen:  fg("46"),
		core.ColorBlue:   fg("33"),
		core.ColorPink:   fg("201"),
		core.ColorPurple: fg("129"),
		core.ColorOrange: fg("202"),
	})
	return theme
}

// PastelTheme returns a softer pastel theme.
func PastelTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "pastel"
	theme.BarFrom = "#FFAFD7"
	theme.BarTo = "#AFFFD7"
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("123")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	theme.Palette = theme.Palette.With(Palette{
		core.ColorRed:    fg("210"),
		core.ColorGreen:  fg("157"),
		core.ColorYellow: fg("229"),
		core.ColorBlue:   fg("153"),
		core.ColorPink:   fg("218"),
		core.ColorPurple: fg("183"),
		core.ColorOrange: fg("223"),
	})
	return theme
}

// MonoTheme returns a grayscale theme.
func MonoTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "mono"
	theme.BarFrom = "#4E4E4E"
	theme.BarTo = "#EEEEEE"
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	theme.TableSelected = lipgloss.NewStyle().Reverse(true)
	theme.Palette = monoPalette()
	return theme
}

// monoPalette maps every color to a gray of similar brightness.
func monoPalette() Palette {
	p := make(Palette)
	for c, code := range map[core.Color]string{
		core.ColorBlack:    "16",
		core.ColorDarkGray: "238",
		core.ColorBlue:     "240",
		core.ColorRed:      "242",
		core.ColorMagenta:  "243",
		core.ColorPurple:   "243",
		core.ColorGreen:    "244",
		core.ColorGray:     "245",
		core.ColorOrange:   "247",
		core.ColorCyan:     "248",
		core.ColorPink:     "249",
		core.ColorYellow:   "251",
		core.ColorWhite:    "252",
	} {
		p[c] = fg(code)
	}
	for _, c := range []core.Color{
		core.ColorBrightRed, core.ColorBrightGreen, core.ColorBrightYellow, core.ColorBrightBlue,
		core.ColorBrightMagenta, core.ColorBrightCyan, core.ColorBrightWhite,
	} {
		p[c] = fg("255").Bold(true)
	}
	return p
}

// ThemeByName looks up a theme by its config name.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "default":
		return DefaultTheme(), nil
	case "neon":
		return NeonTheme(), nil
	case "pastel":
		return PastelTheme(), nil
	case "mono":
		return MonoTheme(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}

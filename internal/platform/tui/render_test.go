package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paintroll/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextColored(0, 0, "paint", core.ColorPink)
	s.DrawTextColored(5, 0, "roll", core.ColorCyan)
	s.DrawText(0, 2, "ok")

	out := RenderScreen(s, DefaultPalette())
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, want := range []string{"paint", "roll", "ok"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderScreenPlainWithoutPalette(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColored(0, 0, "paint", core.ColorPink)

	if got := RenderScreen(s, nil); got != "paint " {
		t.Errorf("expected unstyled text, got %q", got)
	}
}

func TestPaletteWith(t *testing.T) {
	base := DefaultPalette()
	neon := base.With(Palette{core.ColorRed: fg("197")})

	if neon.Style(core.ColorRed).GetForeground() != lipgloss.Color("197") {
		t.Error("override not applied")
	}
	if base.Style(core.ColorRed).GetForeground() != lipgloss.Color("1") {
		t.Error("base palette was modified")
	}
	if neon.Style(core.ColorCyan).GetForeground() != lipgloss.Color("6") {
		t.Error("untouched colors should be inherited")
	}
}

func TestMonoPaletteIsGray(t *testing.T) {
	mono := MonoTheme().Palette
	for _, c := range []core.Color{core.ColorRed, core.ColorGreen, core.ColorPink, core.ColorBrightYellow} {
		fgColor, ok := mono.Style(c).GetForeground().(lipgloss.Color)
		if !ok {
			t.Errorf("color %d: expected a 256-color code", c)
			continue
		}
		if code := string(fgColor); code != "16" && (code < "232" || code > "255") {
			t.Errorf("color %d: %s is not a gray", c, code)
		}
	}
}

func TestCenterText(t *testing.T) {
	testCases := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"toolong", 3, "toolong"},
	}

	for _, tc := range testCases {
		if got := centerText(tc.text, tc.width); got != tc.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
		}
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"", "default", "neon", "pastel", "mono"} {
		theme, err := ThemeByName(name)
		if err != nil {
			t.Errorf("%q: unexpected error %v", name, err)
			continue
		}
		if theme.BarFrom == "" || theme.BarTo == "" {
			t.Errorf("%q: missing bar colors", name)
		}
	}
	if _, err := ThemeByName("disco"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

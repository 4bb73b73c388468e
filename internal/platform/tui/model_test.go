package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paintroll/internal/core"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Runtime = core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60}
	return opts
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelInitResetsGame(t *testing.T) {
	game := newFakeGame()
	m := NewModel(game, testOptions())

	if cmd := m.Init(); cmd == nil {
		t.Error("expected a tick command")
	}
	if len(game.resets) != 1 {
		t.Fatalf("expected one reset, got %d", len(game.resets))
	}
	if cfg := game.resets[0]; cfg.ScreenW != 40 || cfg.ScreenH != 11 {
		t.Errorf("expected a 40x11 game screen, got %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestModelKeysReachGameOnTick(t *testing.T) {
	game := newFakeGame()
	m := NewModel(game, testOptions())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, runeKey('r'))
	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	got := game.lastStep()
	if len(got) != 2 || got[0] != core.ActionRight || got[1] != core.ActionRestart {
		t.Errorf("expected [right restart], got %v", got)
	}

	update(t, m, TickMsg(time.Now()))
	if got := game.lastStep(); len(got) != 0 {
		t.Errorf("input should clear after a tick, got %v", got)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(newFakeGame(), testOptions())

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("expected quit")
	}
	if m.View() != "" {
		t.Error("expected empty view after quit")
	}
}

func TestModelMouseSwipe(t *testing.T) {
	testCases := []struct {
		name           string
		x0, y0, x1, y1 int
		want           core.Action
	}{
		{"drag right", 10, 5, 20, 5, core.ActionRight},
		{"drag left", 20, 5, 10, 6, core.ActionLeft},
		{"drag up", 10, 10, 11, 4, core.ActionUp},
		{"drag down", 10, 2, 10, 8, core.ActionDown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			game := newFakeGame()
			m := NewModel(game, testOptions())
			now := time.Now()

			next, _ := m.handleMouse(tea.MouseMsg{X: tc.x0, Y: tc.y0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, now)
			m = next.(Model)
			next, _ = m.handleMouse(tea.MouseMsg{X: tc.x1, Y: tc.y1, Action: tea.MouseActionRelease}, now.Add(100*time.Millisecond))
			m = next.(Model)
			update(t, m, TickMsg(now))

			if got := game.lastStep(); len(got) != 1 || got[0] != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestModelMouseRejectsSlowDrag(t *testing.T) {
	game := newFakeGame()
	m := NewModel(game, testOptions())
	now := time.Now()

	next, _ := m.handleMouse(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, now)
	m = next.(Model)
	next, _ = m.handleMouse(tea.MouseMsg{X: 20, Y: 0, Action: tea.MouseActionRelease}, now.Add(2*time.Second))
	m = next.(Model)
	update(t, m, TickMsg(now))

	if got := game.lastStep(); len(got) != 0 {
		t.Errorf("slow drag should not swipe, got %v", got)
	}
}

func TestModelResizeKeepsLevel(t *testing.T) {
	game := newFakeGame()
	m := NewModel(game, testOptions())
	m.Init()

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if len(game.resets) != 1 {
		t.Errorf("resize should not reset, got %d resets", len(game.resets))
	}
	if game.resized != [2]int{100, 29} {
		t.Errorf("expected resize to 100x29, got %v", game.resized)
	}
}

func TestModelView(t *testing.T) {
	game := newFakeGame()
	game.state.Progress = 0.5
	opts := testOptions()
	opts.Runtime.ScreenW = 120
	m := NewModel(game, opts)
	m, _ = update(t, m, TickMsg(time.Now()))

	view := m.View()
	if !strings.Contains(view, "fake game") {
		t.Errorf("expected the game screen in view:\n%s", view)
	}
	if !strings.Contains(view, "restart") {
		t.Errorf("expected key help in view:\n%s", view)
	}
}

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionLevelMenu(t *testing.T) {
	game := newFakeGame()
	m := NewSessionModel(game, testOptions())
	m.Init()

	m, _ = sessionUpdate(t, m, runeKey('m'))
	if !m.InMenu() {
		t.Fatal("expected the level menu to open")
	}
	view := m.View()
	for _, want := range []string{"Select a level", "First", "best 3", "Second"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in menu:\n%s", want, view)
		}
	}

	steps := len(game.steps)
	m, cmd := sessionUpdate(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("ticks should keep running in the menu")
	}
	if len(game.steps) != steps {
		t.Error("game must not step while the menu is open")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.InMenu() {
		t.Error("expected the menu to close after choosing")
	}
	if game.levelNo != 2 {
		t.Errorf("expected a jump to level 2, got %d", game.levelNo)
	}
}

func TestSessionMenuBack(t *testing.T) {
	game := newFakeGame()
	m := NewSessionModel(game, testOptions())

	m, _ = sessionUpdate(t, m, runeKey('m'))
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.InMenu() {
		t.Error("expected esc to close the menu")
	}
	if game.levelNo != 1 {
		t.Errorf("back must not change level, got %d", game.levelNo)
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := NewSessionModel(newFakeGame(), testOptions())

	m, _ = sessionUpdate(t, m, runeKey('m'))
	m, cmd := sessionUpdate(t, m, runeKey('q'))
	if cmd == nil || m.View() != "" {
		t.Error("expected quit from the menu")
	}
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paintroll/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	testCases := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"wasd a", runeKey('a'), core.ActionLeft, false},
		{"wasd d", runeKey('d'), core.ActionRight, false},
		{"wasd w", runeKey('w'), core.ActionUp, false},
		{"wasd s", runeKey('s'), core.ActionDown, false},
		{"vim h", runeKey('h'), core.ActionLeft, false},
		{"vim k", runeKey('k'), core.ActionUp, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"next", runeKey('n'), core.ActionNext, false},
		{"next bracket", runeKey(']'), core.ActionNext, false},
		{"prev", runeKey('p'), core.ActionPrev, false},
		{"prev bracket", runeKey('['), core.ActionPrev, false},
		{"pause", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action {
				t.Errorf("expected %v, got %v", tc.action, action)
			}
			if quit != tc.quit {
				t.Errorf("expected quit=%v, got %v", tc.quit, quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('d'), &frame) {
		t.Error("d should not quit")
	}
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRight}, &frame)
	km.MapKeyToFrame(runeKey('w'), &frame)

	got := frame.Actions()
	if len(got) != 2 || got[0] != core.ActionRight || got[1] != core.ActionUp {
		t.Errorf("expected [right up], got %v", got)
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit must not reach the game")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	testCases := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('m'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range testCases {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("%q: expected %v, got %v", tc.msg.String(), tc.want, got)
		}
	}
}

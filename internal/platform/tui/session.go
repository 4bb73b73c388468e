package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// SessionModel manages the full player flow: game -> level menu -> game.
// It is the top-level model for both local and SSH play.
type SessionModel struct {
	game     Model
	chooser  LevelChooser // nil when the game has no level list
	menu     MenuModel
	inMenu   bool
	opts     Options
	quitting bool
}

// NewSessionModel creates a session that starts in the game.
func NewSessionModel(game Game, opts Options) SessionModel {
	chooser, _ := game.(LevelChooser)
	return SessionModel{
		game:    NewModel(game, opts),
		chooser: chooser,
		opts:    opts,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
		m, _ = m.updateGame(msg)
		if m.inMenu {
			if mm, ok := nextMenu(m.menu, msg); ok {
				m.menu = mm
			}
		}
		return m, nil
	}

	if m.inMenu {
		return m.updateMenu(msg)
	}

	m, cmd := m.updateGame(msg)
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.WantsMenu() && m.chooser != nil {
		m.game.wantsMenu = false
		m.menu = NewMenuModel(m.chooser.Levels(), m.chooser.LevelNo(),
			m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH, m.opts.Theme)
		m.inMenu = true
	}
	return m, cmd
}

// updateGame forwards msg to the game model.
func (m SessionModel) updateGame(msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = gm
	}
	return m, cmd
}

// updateMenu handles updates while the level menu is open. Game ticks
// keep arriving but the game does not step.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, tickCmd(m.game.config.TickRate)
	}

	if mm, ok := nextMenu(m.menu, msg); ok {
		m.menu = mm
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.menu.Selected() > 0:
		m.chooser.JumpTo(m.menu.Selected())
		m.inMenu = false
	case m.menu.IsGoingBack():
		m.inMenu = false
	}
	return m, nil
}

func nextMenu(menu MenuModel, msg tea.Msg) (MenuModel, bool) {
	next, _ := menu.Update(msg)
	mm, ok := next.(MenuModel)
	return mm, ok
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inMenu {
		return m.menu.View()
	}
	return m.game.View()
}

// InMenu reports whether the level menu is showing.
func (m SessionModel) InMenu() bool {
	return m.inMenu
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paintroll/internal/core"
)

// menuChrome is the number of menu rows that are not level entries.
const menuChrome = 8

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items     []core.LevelInfo
	cursor    int
	width     int
	height    int
	theme     Theme
	keyMapper *KeyMapper
	quitting  bool
	back      bool
	selected  int // level number, 0 until chosen
}

// NewMenuModel creates a level picker with the cursor on level current.
func NewMenuModel(items []core.LevelInfo, current, width, height int, theme Theme) MenuModel {
	cursor := 0
	for i, it := range items {
		if it.No == current {
			cursor = i
		}
	}
	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     width,
		height:    height,
		theme:     theme,
		keyMapper: NewKeyMapper(DefaultKeyMap()),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true

	case MenuActionBack:
		m.back = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			m.selected = m.items[m.cursor].No
		}
	}

	return m, nil
}

// window returns the slice of items that fits on screen around the cursor.
func (m MenuModel) window() (from, to int) {
	rows := max(m.height-menuChrome, 1)
	if len(m.items) <= rows {
		return 0, len(m.items)
	}
	from = max(m.cursor-rows/2, 0)
	to = from + rows
	if to > len(m.items) {
		to = len(m.items)
		from = to - rows
	}
	return from, to
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("  P A I N T R O L L  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level"), m.width))
	b.WriteString("\n\n")

	from, to := m.window()
	for i := from; i < to; i++ {
		item := m.items[i]
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		line := fmt.Sprintf("%s%2d. %-20s", cursor, item.No, item.Name)
		detail := m.theme.MenuDescription.Render(item.Detail)
		b.WriteString(centerText(style.Render(line)+" "+detail, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(m.theme.Help.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen level number, or 0 if none was chosen.
func (m MenuModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// IsGoingBack returns true if the user closed the menu without choosing.
func (m MenuModel) IsGoingBack() bool {
	return m.back
}

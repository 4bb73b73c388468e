package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paintroll/internal/storage"
)

// Records layout constants
const (
	minWidthForSidebar = 80
	sidebarWidth       = 20
	allLevels          = "All levels"
)

// RecordsKeyMap defines the key bindings for the records screen.
type RecordsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev level"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel shows a player's finished levels in a table.
type RecordsModel struct {
	player      string
	results     []storage.Result
	filters     []string // allLevels followed by level IDs
	filter      int
	table       table.Model
	help        help.Model
	keys        RecordsKeyMap
	theme       Theme
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewRecordsModel creates a records screen over results, newest first.
func NewRecordsModel(player string, results []storage.Result, theme Theme, width, height int) RecordsModel {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.LevelID)
	}
	slices.Sort(ids)

	h := help.New()
	h.ShowAll = false

	m := RecordsModel{
		player:      player,
		results:     results,
		filters:     append([]string{allLevels}, slices.Compact(ids)...),
		keys:        DefaultRecordsKeyMap(),
		help:        h,
		theme:       theme,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *RecordsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Level", Width: 10},
		{Title: "Swipes", Width: 7},
		{Title: "Coins", Width: 6},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.theme.TableBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = m.theme.TableSelected
	t.SetStyles(s)

	return t
}

// visible returns the results matching the current level filter.
func (m *RecordsModel) visible() []storage.Result {
	if m.filter == 0 {
		return m.results
	}
	id := m.filters[m.filter]
	var out []storage.Result
	for _, r := range m.results {
		if r.LevelID == id {
			out = append(out, r)
		}
	}
	return out
}

// updateTableRows updates the table with the filtered results.
func (m *RecordsModel) updateTableRows() {
	results := m.visible()
	rows := make([]table.Row, len(results))
	for i, r := range results {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			r.LevelID,
			fmt.Sprintf("%d", r.Swipes),
			fmt.Sprintf("%d", r.Coins),
			r.Duration.Round(100 * time.Millisecond).String(),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records screen.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			m.filter = (m.filter + 1) % len(m.filters)
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			m.filter--
			if m.filter < 0 {
				m.filter = len(m.filters) - 1
			}
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the records screen.
func (m RecordsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("RECORDS - %s - %s", m.player, m.filters[m.filter])
	b.WriteString(m.theme.MenuTitle.MarginBottom(1).Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the records with a level sidebar.
func (m RecordsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.TableBorder).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Levels\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, name := range m.filters {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.filter {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.TableBorder).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the current filter above the table.
func (m RecordsModel) renderNarrowLayout() string {
	var b strings.Builder

	b.WriteString(centerText(fmt.Sprintf("< %s >", m.filters[m.filter]), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.TableBorder).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m RecordsModel) renderTableContent() string {
	if len(m.results) == 0 {
		return m.theme.MenuDescription.
			Italic(true).
			Padding(2, 4).
			Render("No levels finished yet.\nPaint a board to set a record!")
	}
	return m.table.View()
}

// RunRecords runs the records screen until the user quits.
func RunRecords(player string, results []storage.Result, theme Theme, width, height int) error {
	p := tea.NewProgram(
		NewRecordsModel(player, results, theme, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

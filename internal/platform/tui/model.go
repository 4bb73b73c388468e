package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paintroll/internal/core"
)

// statusHeight is the number of rows below the game screen.
const statusHeight = 1

// Options configures the front end.
type Options struct {
	Runtime core.RuntimeConfig
	Theme   Theme
	Gesture core.GestureConfig
}

// DefaultOptions returns an 80x24 front end with the default theme.
func DefaultOptions() Options {
	return Options{
		Runtime: core.DefaultConfig(),
		Theme:   DefaultTheme(),
		Gesture: core.DefaultGestureConfig(),
	}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	theme      Theme
	keyMapper  *KeyMapper
	help       help.Model
	bar        progress.Model
	gestures   *core.GestureTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	wantsMenu  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:     cfg,
		theme:      opts.Theme,
		keyMapper:  NewKeyMapper(DefaultKeyMap()),
		help:       h,
		bar:        progress.New(progress.WithGradient(opts.Theme.BarFrom, opts.Theme.BarTo), progress.WithoutPercentage()),
		gestures:   core.NewGestureTracker(opts.Gesture),
		inputFrame: core.NewInputFrame(),
	}
}

func gameHeight(screenH int) int {
	return max(screenH-statusHeight, 1)
}

func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if _, ok := m.game.(LevelChooser); ok && key.Matches(msg, m.keyMapper.Keys().Levels) {
		m.wantsMenu = true
		return m, nil
	}
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns a left-button drag into a swipe.
func (m Model) handleMouse(msg tea.MouseMsg, at time.Time) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.gestures.Press(msg.X, msg.Y, at)
		}
	case tea.MouseActionRelease:
		if action, ok := m.gestures.Release(msg.X, msg.Y, at); ok {
			m.inputFrame.Set(action)
		}
	}
	return m, nil
}

// handleResize processes window resize events. The level is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, gameHeight(msg.Height))
	}
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.theme.Palette) + "\n" + m.statusLine()
}

// statusLine shows paint progress and key help.
func (m Model) statusLine() string {
	m.bar.Width = min(24, max(m.config.ScreenW/4, 8))
	bar := m.bar.ViewAs(m.gameState.Progress)

	m.help.Width = max(m.config.ScreenW-m.bar.Width-2, 0)
	keys := m.theme.Help.Render(m.help.View(m.keyMapper.Keys()))

	return lipgloss.JoinHorizontal(lipgloss.Top, bar, "  ", keys)
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// WantsMenu returns true if the user asked for the level list.
func (m Model) WantsMenu() bool {
	return m.wantsMenu
}

// Run starts the Bubble Tea program for game in the current terminal.
func Run(game Game, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(game, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

package tui

import "github.com/vovakirdan/paintroll/internal/core"

// Game is what the terminal front end drives.
type Game interface {
	ID() string
	Title() string
	// Reset starts or restarts the game for the given screen.
	Reset(cfg core.RuntimeConfig)
	// Step advances one tick with the input gathered since the last one.
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Resizer is implemented by games that follow terminal resizes without
// a reset.
type Resizer interface {
	Resize(w, h int)
}

// LevelChooser is implemented by games with a selectable level list.
type LevelChooser interface {
	Levels() []core.LevelInfo
	LevelNo() int
	JumpTo(n int)
}

// GameFactory builds a game for a player. SSH sessions pass the login
// name; local play passes an empty string.
type GameFactory func(player string) (Game, error)

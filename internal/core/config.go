package core

// RuntimeConfig is passed to a game when it is (re)started.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks
// per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is what a game reports to the platform after each tick.
type GameState struct {
	Score    int     // Coins collected
	Moves    int     // Swipes used on the current level
	Level    string  // Current level label
	Progress float64 // Painted fraction of the board, 0..1
	GameOver bool    // The level ended (won or lost)
	Won      bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []string // Human-readable notices for the status line
}

// LevelInfo describes one entry of a game's level list.
type LevelInfo struct {
	No     int    // 1-based level number
	Name   string
	Detail string // e.g. best result
}

// Package config loads PaintRoll settings from YAML.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the full PaintRoll configuration.
type Config struct {
	Ball     BallConfig     `yaml:"ball"`
	Session  SessionConfig  `yaml:"session"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Pool     PoolConfig     `yaml:"pool"`
	UI       UIConfig       `yaml:"ui"`
}

// BallConfig controls ball animation.
type BallConfig struct {
	MoveDuration time.Duration `yaml:"move_duration"` // time one swipe takes, 0 = instant
}

// SessionConfig controls level flow.
type SessionConfig struct {
	WinDelay         time.Duration `yaml:"win_delay"`
	DefaultLevelTime int           `yaml:"default_level_time"` // seconds, used when a level sets none
	Timer            TimerPreset   `yaml:"timer"`
}

// AnalyzerConfig controls the reachability solver.
type AnalyzerConfig struct {
	MaxStates int `yaml:"max_states"` // 0 = solver default
}

// PoolConfig controls entity pooling.
type PoolConfig struct {
	Prewarm int `yaml:"prewarm"` // ball slots allocated per session up front
}

// UIConfig controls the terminal front end.
type UIConfig struct {
	Theme         string        `yaml:"theme"`
	SwipeDistance float64       `yaml:"swipe_distance"` // minimum mouse drag, in cells
	SwipeMaxTime  time.Duration `yaml:"swipe_max_time"`
}

// Themes lists the accepted ui.theme values.
var Themes = []string{"default", "neon", "pastel", "mono"}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Ball.MoveDuration < 0 {
		errs = append(errs, fmt.Errorf("ball.move_duration must not be negative, got %s", c.Ball.MoveDuration))
	}
	if c.Session.WinDelay < 0 {
		errs = append(errs, fmt.Errorf("session.win_delay must not be negative, got %s", c.Session.WinDelay))
	}
	if c.Session.DefaultLevelTime < 0 {
		errs = append(errs, fmt.Errorf("session.default_level_time must not be negative, got %d", c.Session.DefaultLevelTime))
	}
	if !c.Session.Timer.Valid() {
		errs = append(errs, fmt.Errorf("session.timer: unknown preset %q", c.Session.Timer))
	}
	if c.Analyzer.MaxStates < 0 {
		errs = append(errs, fmt.Errorf("analyzer.max_states must not be negative, got %d", c.Analyzer.MaxStates))
	}
	if c.Pool.Prewarm < 0 {
		errs = append(errs, fmt.Errorf("pool.prewarm must not be negative, got %d", c.Pool.Prewarm))
	}
	if !validTheme(c.UI.Theme) {
		errs = append(errs, fmt.Errorf("ui.theme: unknown theme %q", c.UI.Theme))
	}
	if c.UI.SwipeDistance < 0 || c.UI.SwipeMaxTime < 0 {
		errs = append(errs, errors.New("ui swipe thresholds must not be negative"))
	}
	return errors.Join(errs...)
}

// LevelTime returns the time limit for a level declaring levelSeconds
// (0 = use the default), after the timer preset. 0 means untimed.
func (c Config) LevelTime(levelSeconds int) time.Duration {
	secs := levelSeconds
	if secs <= 0 {
		secs = c.Session.DefaultLevelTime
	}
	return c.Session.Timer.Scale(time.Duration(secs) * time.Second)
}

func validTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/paintroll.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Ball: BallConfig{
			MoveDuration: 200 * time.Millisecond,
		},
		Session: SessionConfig{
			WinDelay:         500 * time.Millisecond,
			DefaultLevelTime: 60,
			Timer:            TimerNormal,
		},
		Analyzer: AnalyzerConfig{
			MaxStates: 120000,
		},
		Pool: PoolConfig{
			Prewarm: 8,
		},
		UI: UIConfig{
			Theme:         "default",
			SwipeDistance: 2,
			SwipeMaxTime:  500 * time.Millisecond,
		},
	}
}

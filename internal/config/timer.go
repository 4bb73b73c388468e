package config

import "time"

// TimerPreset is a named way of applying level time limits.
type TimerPreset string

const (
	TimerRelaxed TimerPreset = "relaxed" // no time limit
	TimerNormal  TimerPreset = "normal"  // the level's own limit
	TimerStrict  TimerPreset = "strict"  // three quarters of the level's limit
)

// Valid reports whether p is a known preset.
func (p TimerPreset) Valid() bool {
	switch p {
	case TimerRelaxed, TimerNormal, TimerStrict:
		return true
	default:
		return false
	}
}

// Scale applies the preset to a level time limit. A zero result disables
// the timer.
func (p TimerPreset) Scale(limit time.Duration) time.Duration {
	switch p {
	case TimerRelaxed:
		return 0
	case TimerStrict:
		return limit * 3 / 4
	default:
		return limit
	}
}

// ParseTimerPreset parses a preset name. Unknown names fall back to
// normal.
func ParseTimerPreset(s string) (TimerPreset, bool) {
	p := TimerPreset(s)
	if !p.Valid() {
		return TimerNormal, false
	}
	return p, true
}

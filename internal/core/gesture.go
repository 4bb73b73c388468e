package core

import "time"

// GestureConfig bounds what counts as a swipe. Distances are in terminal
// cells.
type GestureConfig struct {
	MinDistance float64
	MaxDuration time.Duration
}

// DefaultGestureConfig returns thresholds suited to a mouse drag in a
// terminal.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{MinDistance: 2, MaxDuration: 500 * time.Millisecond}
}

// GestureTracker turns a press and release pair into a swipe action.
type GestureTracker struct {
	cfg      GestureConfig
	tracking bool
	startX   int
	startY   int
	startAt  time.Time
}

// NewGestureTracker creates a tracker with the given thresholds.
func NewGestureTracker(cfg GestureConfig) *GestureTracker {
	return &GestureTracker{cfg: cfg}
}

// Press starts tracking at screen position (x, y).
func (g *GestureTracker) Press(x, y int, at time.Time) {
	g.tracking = true
	g.startX, g.startY = x, y
	g.startAt = at
}

// Release ends tracking and classifies the drag. Screen rows grow
// downward, so a drag toward row 0 is a swipe up.
func (g *GestureTracker) Release(x, y int, at time.Time) (Action, bool) {
	if !g.tracking {
		return ActionNone, false
	}
	g.tracking = false
	return ClassifySwipe(float64(x-g.startX), float64(y-g.startY), at.Sub(g.startAt), g.cfg)
}

// ClassifySwipe maps a screen-space drag to a swipe. Short or slow drags
// are rejected. The dominant axis wins and ties go horizontal.
func ClassifySwipe(dx, dy float64, elapsed time.Duration, cfg GestureConfig) (Action, bool) {
	if dx*dx+dy*dy < cfg.MinDistance*cfg.MinDistance {
		return ActionNone, false
	}
	if cfg.MaxDuration > 0 && elapsed > cfg.MaxDuration {
		return ActionNone, false
	}

	if AbsF(dx) >= AbsF(dy) {
		if dx > 0 {
			return ActionRight, true
		}
		return ActionLeft, true
	}
	if dy > 0 {
		return ActionDown, true
	}
	return ActionUp, true
}

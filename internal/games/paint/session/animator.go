package session

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/paintroll/internal/games/paint/core"
	"github.com/vovakirdan/paintroll/internal/pool"
)

// motion is one ball travelling along its resolved path.
type motion struct {
	handle  pool.Handle
	cmd     core.MoveCommand
	tween   *gween.Tween // nil when moves resolve instantly
	reached int          // index of the last path cell entered
	offset  float32      // fractional progress along the path, in cells
	done    bool
}

// animator runs the motions of one swipe. Every motion shares the same
// duration window, so balls that travel further move faster. pending
// counts unfinished motions; the swipe may be committed only at zero.
type animator struct {
	duration time.Duration
	motions  []motion
	pending  int
}

func newAnimator(duration time.Duration) *animator {
	return &animator{duration: duration}
}

// start loads the moving commands of a swipe. Commands without movement
// are skipped.
func (a *animator) start(cmds []core.MoveCommand, handleOf func(core.BallID) pool.Handle) {
	a.motions = a.motions[:0]
	for _, cmd := range cmds {
		if cmd.IsNoop() {
			continue
		}
		m := motion{handle: handleOf(cmd.Ball), cmd: cmd}
		if a.duration > 0 {
			m.tween = gween.New(0, float32(cmd.Steps()), float32(a.duration.Seconds()), ease.Linear)
		}
		a.motions = append(a.motions, m)
	}
	a.pending = len(a.motions)
}

// running reports whether any motion is unfinished.
func (a *animator) running() bool {
	return a.pending > 0
}

// advance moves every motion forward by dt and calls enter for each path
// cell a ball reaches, in path order. It returns true once the last
// motion finishes.
func (a *animator) advance(dt time.Duration, enter func(handle pool.Handle, c core.Coord)) bool {
	for i := range a.motions {
		m := &a.motions[i]
		if m.done {
			continue
		}

		steps := m.cmd.Steps()
		var finished bool
		if m.tween == nil {
			m.offset, finished = float32(steps), true
		} else {
			m.offset, finished = m.tween.Update(float32(dt.Seconds()))
		}
		if finished {
			m.offset = float32(steps)
		}

		target := int(m.offset)
		if target > steps {
			target = steps
		}
		for m.reached < target {
			m.reached++
			enter(m.handle, m.cmd.Path[m.reached])
		}

		if finished {
			m.done = true
			a.pending--
		}
	}
	return a.pending == 0
}

// commands returns the commands of the current swipe.
func (a *animator) commands() []core.MoveCommand {
	cmds := make([]core.MoveCommand, len(a.motions))
	for i, m := range a.motions {
		cmds[i] = m.cmd
	}
	return cmds
}

// progress returns where the ball behind handle currently is: the last
// entered cell and the fraction of the way to the next one.
func (a *animator) progress(h pool.Handle) (at core.Coord, next core.Coord, frac float32, ok bool) {
	for _, m := range a.motions {
		if m.handle != h {
			continue
		}
		at = m.cmd.Path[m.reached]
		next = at
		if m.reached < m.cmd.Steps() {
			next = m.cmd.Path[m.reached+1]
			frac = m.offset - float32(m.reached)
		}
		return at, next, frac, true
	}
	return core.Coord{}, core.Coord{}, 0, false
}

func (a *animator) clear() {
	a.motions = a.motions[:0]
	a.pending = 0
}

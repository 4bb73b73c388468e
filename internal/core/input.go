package core

// Action is a semantic input, decoupled from the key or gesture that
// produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow, swipe left
	ActionRight          // D, Right arrow, swipe right
	ActionUp             // W, Up arrow, swipe up
	ActionDown           // S, Down arrow, swipe down
	ActionNext           // N, ] - skip to the next level
	ActionPrev           // P, [ - back to the previous level
	ActionRestart        // R - reload the current level
	ActionPause          // Space, Escape - freeze the timer
	ActionQuit           // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionNext:    "Next",
	ActionPrev:    "Prev",
	ActionRestart: "Restart",
	ActionPause:   "Pause",
	ActionQuit:    "Quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsSwipe reports whether a is one of the four swipe directions.
func (a Action) IsSwipe() bool {
	return a >= ActionLeft && a <= ActionDown
}

// InputFrame collects the actions triggered during one tick. Order is
// kept so that two swipes queued in one frame resolve in the order typed.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a for this frame. Repeats of the same action are dropped.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || f.Has(a) {
		return
	}
	f.actions = append(f.actions, a)
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the frame's actions in the order they arrived.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	return len(f.actions) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

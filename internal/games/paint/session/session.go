// Package session runs one level of PaintRoll: it owns the grid, the paint
// state, the ball arena, the swipe animator and the level timer, and
// advances them on a fixed tick.
package session

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paintroll/internal/games/paint/core"
	"github.com/vovakirdan/paintroll/internal/pool"
)

// State is the lifecycle state of a session.
//
//	Settled -> Animating -> Settled           swipe committed
//	Settled -> Animating -> Winning -> Won    board painted
//	Settled|Animating -> Lost                 time ran out
type State uint8

const (
	Settled State = iota
	Animating
	Winning
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Settled:
		return "settled"
	case Animating:
		return "animating"
	case Winning:
		return "winning"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the level has ended.
func (s State) Over() bool {
	return s == Won || s == Lost
}

// SwipeResult reports what a swipe did.
type SwipeResult uint8

const (
	Accepted   SwipeResult = iota // balls started moving
	Busy                          // a previous swipe is still resolving
	NoMovement                    // no ball can move that way
	Ended                         // the level is over
)

func (r SwipeResult) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case Busy:
		return "busy"
	case NoMovement:
		return "no movement"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// TickResult reports the side effects of one Tick.
type TickResult struct {
	Painted   []core.PaintEvent // newly painted cells
	Coins     []core.Coord      // coins collected
	Committed bool              // a swipe finished and was applied to the grid
	Won       bool
	Lost      bool
}

// Ball is a ball entity held in the session arena.
type Ball struct {
	ID  core.BallID
	Pos core.Coord // committed cell
}

// BallView is a ball as it should be drawn this frame.
type BallView struct {
	ID   core.BallID
	At   core.Coord // last cell entered
	Next core.Coord // cell being moved toward, At when settled
	Frac float32    // progress from At to Next
}

// Options configures a session.
type Options struct {
	MoveDuration time.Duration // time every ball takes for one swipe, <= 0 resolves on the next tick
	WinDelay     time.Duration // pause between painting the last cell and reporting the win
	TimeLimit    time.Duration // 0 disables the timer
	Prewarm      int           // ball slots allocated up front
	Logger       *log.Logger
}

// ErrTimeUp is the reason reported for a level lost on time.
var ErrTimeUp = errors.New("time's up")

// Session is a single playthrough of one level.
type Session struct {
	levelID string
	layout  core.Snapshot
	opts    Options
	logger  *log.Logger

	grid     *core.Grid
	paint    *core.Paint
	balls    *pool.Arena[Ball]
	byID     map[core.BallID]pool.Handle
	anim     *animator
	pending  core.Resolution
	state    State
	moves    int
	coins    int
	timeLeft time.Duration
	winLeft  time.Duration
}

// New creates a session for a level layout. The layout must have at
// least one ball and one paintable cell.
func New(levelID string, layout core.Snapshot, opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		levelID: levelID,
		layout:  layout,
		opts:    opts,
		logger:  logger.With("level", levelID),
		balls:   pool.New[Ball](nil),
		byID:    make(map[core.BallID]pool.Handle),
		anim:    newAnimator(opts.MoveDuration),
	}
	s.balls.Prewarm(opts.Prewarm)

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) load() error {
	g, err := core.FromSnapshot(s.layout)
	if err != nil {
		return fmt.Errorf("session: level %s: %w", s.levelID, err)
	}
	if err := core.ValidateGrid(g); err != nil {
		return fmt.Errorf("session: level %s: %w", s.levelID, err)
	}

	s.balls.Reset()
	clear(s.byID)
	s.anim.clear()

	s.grid = g
	s.paint = core.NewPaint(g)
	for _, c := range g.Balls() {
		cell, _ := g.Cell(c)
		h, b := s.balls.Acquire()
		b.ID = cell.Ball
		b.Pos = c
		s.byID[cell.Ball] = h
		s.paint.Visit(c)
	}

	s.pending = core.Resolution{}
	s.state = Settled
	s.moves = 0
	s.coins = 0
	s.timeLeft = s.opts.TimeLimit
	s.winLeft = 0

	s.logger.Debug("level loaded", "size", fmt.Sprintf("%dx%d", g.W, g.H), "balls", s.balls.Len())

	if s.paint.Complete() {
		s.armWin()
	}
	return nil
}

// Restart releases every ball and reloads the level from its layout.
func (s *Session) Restart() error {
	s.logger.Debug("level restarted", "moves", s.moves)
	return s.load()
}

// Swipe starts moving every ball in dir.
func (s *Session) Swipe(dir core.Dir) (SwipeResult, error) {
	switch {
	case s.state.Over():
		return Ended, nil
	case s.state != Settled:
		return Busy, nil
	}

	res, err := core.ResolveGrid(s.grid, dir)
	if err != nil {
		return Busy, fmt.Errorf("session: swipe %s: %w", dir, err)
	}
	if !res.Moved {
		return NoMovement, nil
	}

	s.pending = res
	s.anim.start(res.Moving(), s.handleOf)
	s.state = Animating
	s.moves++
	s.logger.Debug("swipe", "dir", dir, "moving", s.anim.pending, "moves", s.moves)
	return Accepted, nil
}

// Tick advances the session by dt.
func (s *Session) Tick(dt time.Duration) (TickResult, error) {
	var res TickResult

	if s.state.Over() {
		return res, nil
	}

	if s.opts.TimeLimit > 0 && (s.state == Settled || s.state == Animating) {
		s.timeLeft -= dt
		if s.timeLeft <= 0 {
			s.timeLeft = 0
			s.anim.clear()
			s.state = Lost
			res.Lost = true
			s.logger.Info("level lost", "reason", ErrTimeUp, "moves", s.moves)
			return res, nil
		}
	}

	switch s.state {
	case Animating:
		done := s.anim.advance(dt, func(_ pool.Handle, c core.Coord) {
			ev := s.paint.Visit(c)
			if ev.Newly {
				res.Painted = append(res.Painted, ev)
			}
			if ev.Coin {
				s.coins++
				res.Coins = append(res.Coins, c)
			}
		})
		if !done {
			return res, nil
		}
		if err := s.commit(); err != nil {
			return res, err
		}
		res.Committed = true
		if s.paint.Complete() {
			s.armWin()
		}
		if s.state == Won {
			res.Won = true
		}

	case Winning:
		s.winLeft -= dt
		if s.winLeft <= 0 {
			s.finishWin()
			res.Won = true
		}
	}

	return res, nil
}

// commit applies the finished swipe to the grid in one step.
func (s *Session) commit() error {
	cmds := s.anim.commands()
	if err := s.grid.Commit(cmds); err != nil {
		return fmt.Errorf("session: commit %s: %w", s.pending.Dir, err)
	}
	for _, cmd := range cmds {
		if b, ok := s.balls.Get(s.byID[cmd.Ball]); ok {
			b.Pos = cmd.To
		}
	}
	s.anim.clear()
	s.pending = core.Resolution{}
	s.state = Settled
	return nil
}

func (s *Session) armWin() {
	if s.opts.WinDelay <= 0 {
		s.finishWin()
		return
	}
	s.state = Winning
	s.winLeft = s.opts.WinDelay
}

func (s *Session) finishWin() {
	s.state = Won
	s.logger.Info("level won", "moves", s.moves, "coins", s.coins)
}

func (s *Session) handleOf(id core.BallID) pool.Handle {
	return s.byID[id]
}

// LevelID returns the level being played.
func (s *Session) LevelID() string {
	return s.levelID
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Moves returns the number of accepted swipes.
func (s *Session) Moves() int {
	return s.moves
}

// Coins returns the coins collected this playthrough.
func (s *Session) Coins() int {
	return s.coins
}

// TimeLeft returns the remaining time, or 0 for untimed levels.
func (s *Session) TimeLeft() time.Duration {
	return s.timeLeft
}

// Timed reports whether the level has a time limit.
func (s *Session) Timed() bool {
	return s.opts.TimeLimit > 0
}

// Grid returns the board. Callers must not mutate it.
func (s *Session) Grid() *core.Grid {
	return s.grid
}

// Paint returns the paint state.
func (s *Session) Paint() *core.Paint {
	return s.paint
}

// Balls returns every ball positioned for the current frame.
func (s *Session) Balls() []BallView {
	views := make([]BallView, 0, s.balls.Len())
	s.balls.Each(func(h pool.Handle, b *Ball) {
		v := BallView{ID: b.ID, At: b.Pos, Next: b.Pos}
		if at, next, frac, ok := s.anim.progress(h); ok {
			v.At, v.Next, v.Frac = at, next, frac
		}
		views = append(views, v)
	})
	return views
}

// Package paint provides the PaintRoll ball-rolling puzzle for the
// terminal front end.
package paint

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paintroll/internal/config"
	platformcore "github.com/vovakirdan/paintroll/internal/core"
	"github.com/vovakirdan/paintroll/internal/games/paint/core"
	"github.com/vovakirdan/paintroll/internal/games/paint/levels"
	"github.com/vovakirdan/paintroll/internal/games/paint/session"
	"github.com/vovakirdan/paintroll/internal/pool"
	"github.com/vovakirdan/paintroll/internal/storage"
)

const (
	// advanceDelay is how long the win banner shows before the next level.
	advanceDelay = 1500 * time.Millisecond
	// pickupLife is how long a "+1" stays over a collected coin.
	pickupLife = 700 * time.Millisecond
	noticeLife = 2 * time.Second
)

// Store persists progress, coins and results for one player.
type Store interface {
	session.ProgressStore
	AddCoins(n int) (int, error)
	Coins() (int, error)
	SaveResult(r storage.Result) (int64, error)
	BestSwipes(levelID string) (int, bool, error)
}

// Options holds the game's dependencies.
type Options struct {
	Levels []levels.Level
	Config config.Config
	Store  Store // nil keeps progress in memory only
	Logger *log.Logger
}

// pickup is a short-lived coin collection effect.
type pickup struct {
	at   core.Coord
	left time.Duration
}

// Game implements the PaintRoll puzzle.
type Game struct {
	levels  []levels.Level
	cfg     config.Config
	store   Store
	logger  *log.Logger
	pointer *session.LevelPointer
	effects *pool.Arena[pickup]

	sess    *session.Session
	level   levels.Level
	levelNo int
	loadErr error

	screenW  int
	screenH  int
	tickRate int

	wallet    int
	best      int
	hasBest   bool
	elapsed   time.Duration
	paused    bool
	advanceIn time.Duration
	notice    string
	noticeIn  time.Duration
}

// New creates a game over a non-empty level list.
func New(opts Options) (*Game, error) {
	if len(opts.Levels) == 0 {
		return nil, errors.New("paint: no levels to play")
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		levels:  opts.Levels,
		cfg:     opts.Config,
		store:   opts.Store,
		logger:  logger,
		effects: pool.New[pickup](nil),
	}

	var progress session.ProgressStore = session.NewMemoryStore()
	if g.store != nil {
		progress = g.store
		coins, err := g.store.Coins()
		if err != nil {
			return nil, fmt.Errorf("paint: %w", err)
		}
		g.wallet = coins
	}

	pointer, err := session.NewLevelPointer(progress, len(g.levels))
	if err != nil {
		return nil, fmt.Errorf("paint: %w", err)
	}
	g.pointer = pointer
	g.effects.Prewarm(4)
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "paintroll"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "PaintRoll"
}

// Reset records the screen geometry and (re)loads the current level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}
	g.paused = false
	g.loadCurrent()
}

// Resize updates the screen geometry without touching the level.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
}

func (g *Game) loadCurrent() {
	n, err := g.pointer.Current()
	if err != nil {
		g.fail(err)
		return
	}
	g.load(n)
}

func (g *Game) load(n int) {
	g.levelNo = n
	g.level = g.levels[n-1]
	g.effects.Reset()
	g.advanceIn = 0
	g.elapsed = 0

	sess, err := session.New(g.level.ID, g.level.Snapshot, session.Options{
		MoveDuration: g.cfg.Ball.MoveDuration,
		WinDelay:     g.cfg.Session.WinDelay,
		TimeLimit:    g.cfg.LevelTime(g.level.Time),
		Prewarm:      g.cfg.Pool.Prewarm,
		Logger:       g.logger,
	})
	if err != nil {
		g.fail(err)
		return
	}
	g.sess = sess
	g.loadErr = nil

	g.hasBest = false
	if g.store != nil {
		best, ok, err := g.store.BestSwipes(g.level.ID)
		if err != nil {
			g.logger.Warn("cannot read best swipes", "level", g.level.ID, "err", err)
		}
		g.best, g.hasBest = best, ok
	}
	g.logger.Info("level started", "level", g.level.ID, "no", n, "of", len(g.levels))
}

func (g *Game) fail(err error) {
	g.loadErr = err
	g.sess = nil
	g.logger.Error("cannot load level", "err", err)
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	var events []string
	rate := g.tickRate
	if rate <= 0 {
		rate = platformcore.DefaultConfig().TickRate
	}
	dt := time.Second / time.Duration(rate)

	for _, a := range in.Actions() {
		if ev := g.handle(a); ev != "" {
			events = append(events, ev)
		}
	}

	g.tickEffects(dt)
	if g.noticeIn > 0 {
		g.noticeIn -= dt
	}

	if g.sess == nil || g.paused {
		return platformcore.StepResult{State: g.State(), Events: events}
	}

	if g.sess.State() == session.Won {
		g.advanceIn -= dt
		if g.advanceIn <= 0 {
			g.loadCurrent()
		}
		return platformcore.StepResult{State: g.State(), Events: events}
	}

	res, err := g.sess.Tick(dt)
	if err != nil {
		g.fail(err)
		return platformcore.StepResult{State: g.State(), Events: events}
	}
	if !g.sess.State().Over() {
		g.elapsed += dt
	}

	for _, c := range res.Coins {
		g.collect(c)
	}
	if res.Won {
		events = append(events, g.win())
	}
	if res.Lost {
		events = append(events, g.say("Time's up! Press R to retry"))
	}

	return platformcore.StepResult{State: g.State(), Events: events}
}

func (g *Game) handle(a platformcore.Action) string {
	switch a {
	case platformcore.ActionPause:
		if g.sess != nil && !g.sess.State().Over() {
			g.paused = !g.paused
		}
	case platformcore.ActionRestart:
		g.JumpTo(g.levelNo)
	case platformcore.ActionNext:
		g.shift(1)
	case platformcore.ActionPrev:
		g.shift(-1)
	default:
		if a.IsSwipe() {
			return g.swipe(a)
		}
	}
	return ""
}

// shift moves delta levels from the one on screen. After a win the
// pointer already names the following level, so it is not the base.
func (g *Game) shift(delta int) {
	g.paused = false
	n, err := g.pointer.Shift(g.levelNo, delta)
	if err != nil {
		g.fail(err)
		return
	}
	g.load(n)
}

func (g *Game) swipe(a platformcore.Action) string {
	if g.sess == nil || g.paused {
		return ""
	}
	r, err := g.sess.Swipe(swipeDir(a))
	if err != nil {
		g.logger.Error("swipe failed", "action", a, "err", err)
		return ""
	}
	if r == session.NoMovement {
		return g.say("Nothing can move that way")
	}
	return ""
}

func (g *Game) collect(c core.Coord) {
	_, p := g.effects.Acquire()
	p.at = c
	p.left = pickupLife

	if g.store == nil {
		g.wallet++
		return
	}
	balance, err := g.store.AddCoins(1)
	if err != nil {
		g.logger.Warn("cannot credit coin", "err", err)
		g.wallet++
		return
	}
	g.wallet = balance
}

func (g *Game) win() string {
	moves := g.sess.Moves()
	msg := fmt.Sprintf("Level %d complete in %d swipes", g.levelNo, moves)

	if g.store != nil {
		_, err := g.store.SaveResult(storage.Result{
			LevelID:  g.level.ID,
			Swipes:   moves,
			Coins:    g.sess.Coins(),
			Duration: g.elapsed,
		})
		if err != nil {
			g.logger.Warn("cannot save result", "level", g.level.ID, "err", err)
		}
	}
	if !g.hasBest || moves < g.best {
		if g.hasBest {
			msg += " (new best)"
		}
		g.best, g.hasBest = moves, true
	}

	if _, err := g.pointer.Next(); err != nil {
		g.logger.Warn("cannot advance level", "err", err)
	}
	g.advanceIn = advanceDelay
	return g.say(msg)
}

func (g *Game) say(msg string) string {
	g.notice = msg
	g.noticeIn = noticeLife
	return msg
}

func (g *Game) tickEffects(dt time.Duration) {
	var done []pool.Handle
	g.effects.Each(func(h pool.Handle, p *pickup) {
		p.left -= dt
		if p.left <= 0 {
			done = append(done, h)
		}
	})
	for _, h := range done {
		g.effects.Release(h)
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Score:  g.wallet,
		Level:  fmt.Sprintf("%d/%d", g.levelNo, len(g.levels)),
		Paused: g.paused,
	}
	if g.sess == nil {
		st.GameOver = g.loadErr != nil
		return st
	}
	st.Moves = g.sess.Moves()
	st.Progress = g.Progress()
	st.Won = g.sess.State() == session.Won
	st.GameOver = g.sess.State().Over()
	return st
}

// Progress returns the painted fraction of the board.
func (g *Game) Progress() float64 {
	if g.sess == nil {
		return 0
	}
	return g.sess.Paint().Ratio()
}

// Session exposes the running session, or nil if the level failed to load.
func (g *Game) Session() *session.Session {
	return g.sess
}

// LevelNo returns the 1-based number of the level being played.
func (g *Game) LevelNo() int {
	return g.levelNo
}

// Levels lists every level with the player's best swipe count.
func (g *Game) Levels() []platformcore.LevelInfo {
	infos := make([]platformcore.LevelInfo, len(g.levels))
	for i, l := range g.levels {
		infos[i] = platformcore.LevelInfo{No: i + 1, Name: l.Name, Detail: "unsolved"}
		if g.store == nil {
			continue
		}
		if best, ok, err := g.store.BestSwipes(l.ID); err == nil && ok {
			infos[i].Detail = fmt.Sprintf("best %d", best)
		}
	}
	return infos
}

// JumpTo starts level n, clamped to the level list.
func (g *Game) JumpTo(n int) {
	g.paused = false
	n, err := g.pointer.Jump(n)
	if err != nil {
		g.fail(err)
		return
	}
	g.load(n)
}

func swipeDir(a platformcore.Action) core.Dir {
	switch a {
	case platformcore.ActionLeft:
		return core.DirLeft
	case platformcore.ActionRight:
		return core.DirRight
	case platformcore.ActionUp:
		return core.DirUp
	default:
		return core.DirDown
	}
}

package tui

import (
	"slices"

	"github.com/vovakirdan/paintroll/internal/core"
)

type fakeGame struct {
	resets  []core.RuntimeConfig
	steps   [][]core.Action
	resized [2]int
	state   core.GameState
	levels  []core.LevelInfo
	levelNo int
}

func newFakeGame() *fakeGame {
	return &fakeGame{
		levelNo: 1,
		levels: []core.LevelInfo{
			{No: 1, Name: "First", Detail: "best 3"},
			{No: 2, Name: "Second", Detail: "unsolved"},
		},
	}
}

func (f *fakeGame) ID() string    { return "fake" }
func (f *fakeGame) Title() string { return "Fake" }

func (f *fakeGame) Reset(cfg core.RuntimeConfig) {
	f.resets = append(f.resets, cfg)
}

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	f.steps = append(f.steps, slices.Clone(in.Actions()))
	return core.StepResult{State: f.state}
}

func (f *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake game")
}

func (f *fakeGame) State() core.GameState { return f.state }

func (f *fakeGame) Resize(w, h int) { f.resized = [2]int{w, h} }

func (f *fakeGame) Levels() []core.LevelInfo { return f.levels }
func (f *fakeGame) LevelNo() int             { return f.levelNo }
func (f *fakeGame) JumpTo(n int)             { f.levelNo = n }

func (f *fakeGame) lastStep() []core.Action {
	if len(f.steps) == 0 {
		return nil
	}
	return f.steps[len(f.steps)-1]
}

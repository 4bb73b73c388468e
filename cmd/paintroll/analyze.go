package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paintroll/internal/games/paint/core"
	"github.com/vovakirdan/paintroll/internal/games/paint/levels"
	"github.com/vovakirdan/paintroll/internal/storage"
)

var (
	flagMaxStates int
	flagShow      bool
	flagSave      bool
	flagStrict    bool
)

var (
	verdictStyles = map[string]lipgloss.Style{
		"WINNABLE":     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		"NOT WINNABLE": lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		"INCONCLUSIVE": lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		"INVALID":      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [id...]",
	Short: "Check that levels can be won",
	Long: `Runs a breadth-first search over swipe sequences to decide whether each
level can be fully painted, and the fewest swipes needed.

A search that runs out of state budget is reported as INCONCLUSIVE.

Examples:
  paintroll analyze
  paintroll analyze lvl03 lvl08 --show
  paintroll analyze --levels ./my-levels --strict
  paintroll analyze --max-states 500000 --save`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&flagMaxStates, "max-states", 0, "State budget per level (0 = config value)")
	analyzeCmd.Flags().BoolVar(&flagShow, "show", false, "Print each level layout")
	analyzeCmd.Flags().BoolVar(&flagSave, "save", false, "Store results in the database")
	analyzeCmd.Flags().BoolVar(&flagStrict, "strict", false, "Fail unless every level is winnable")
}

func runAnalyze(_ *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lvls, err := loadLevels(logger)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		lvls, err = pickLevels(lvls, args)
		if err != nil {
			return err
		}
	}

	maxStates := flagMaxStates
	if maxStates <= 0 {
		maxStates = cfg.Analyzer.MaxStates
	}
	if maxStates <= 0 {
		maxStates = core.DefaultMaxStates
	}

	var store *storage.Store
	if flagSave {
		if store, err = openStore(); err != nil {
			return err
		}
		defer store.Close()
	}

	failed := 0
	for _, l := range lvls {
		g, err := l.Grid()
		if err == nil {
			err = core.ValidateGrid(g)
		}
		if err != nil {
			failed++
			fmt.Printf("%-10s %s  %v\n", l.ID, verdictStyles["INVALID"].Render("INVALID"), err)
			continue
		}

		if flagShow {
			fmt.Printf("%s (%s)\n%s", l.ID, l.Name, core.RenderASCII(g, nil))
		}

		a := core.AnalyzeGrid(g, maxStates)
		verdict := a.Verdict()
		if !a.Winnable {
			failed++
		}
		fmt.Printf("%-10s %s  swipes=%d explored=%d unique=%d\n",
			l.ID, verdictStyles[verdict].Render(fmt.Sprintf("%-12s", verdict)),
			a.MinSwipes, a.ExploredStates, a.UniqueStates)
		logger.Debug("analyzed", "level", l.ID, "hit_limit", a.HitLimit, "max_states", maxStates)

		if store != nil {
			_, err := store.SaveAnalysis(storage.AnalysisRecord{
				LevelID:        l.ID,
				Winnable:       a.Winnable,
				MinSwipes:      a.MinSwipes,
				ExploredStates: a.ExploredStates,
				UniqueStates:   a.UniqueStates,
				HitLimit:       a.HitLimit,
				MaxStates:      maxStates,
			})
			if err != nil {
				return fmt.Errorf("save analysis for %s: %w", l.ID, err)
			}
		}
	}

	if flagStrict && failed > 0 {
		return fmt.Errorf("%d of %d levels are not provably winnable", failed, len(lvls))
	}
	return nil
}

// pickLevels keeps the levels named by ids, in the order given.
func pickLevels(lvls []levels.Level, ids []string) ([]levels.Level, error) {
	out := make([]levels.Level, 0, len(ids))
	for _, id := range ids {
		i := slices.IndexFunc(lvls, func(l levels.Level) bool { return l.ID == id })
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", levels.ErrNotFound, id)
		}
		out = append(out, lvls[i])
	}
	return out, nil
}

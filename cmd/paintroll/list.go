package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paintroll/internal/games/paint/core"
	"github.com/vovakirdan/paintroll/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels",
	Long: `Shows every level in play order with its size, timer and contents.

The SOLVED column shows the fewest swipes found by the last
'paintroll analyze --save' run, if any.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
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

	store, err := openStore()
	if err != nil {
		logger.Warn("analyses unavailable", "error", err)
	} else {
		defer store.Close()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "ID", "NAME", "SIZE", "TIME", "COLOR", "BALLS", "COINS", "SOLVED")

	for i, l := range lvls {
		g, err := l.Grid()
		if err != nil {
			logger.Warn("bad level", "id", l.ID, "error", err)
			continue
		}
		stats := core.ComputeGridStats(g)

		timer := "-"
		if d := cfg.LevelTime(l.Time); d > 0 {
			timer = d.String()
		}
		t.Row(
			fmt.Sprintf("%d", i+1),
			l.ID,
			l.Name,
			fmt.Sprintf("%dx%d", stats.Width, stats.Height),
			timer,
			l.Color.String(),
			fmt.Sprintf("%d", stats.Balls),
			fmt.Sprintf("%d", stats.Coins),
			solvedLabel(store, l.ID),
		)
	}

	fmt.Println(t)
	fmt.Printf("\n%d levels. Play with: paintroll play <#|id>\n", len(lvls))
	return nil
}

// solvedLabel summarises the last stored analysis of a level.
func solvedLabel(store *storage.Store, levelID string) string {
	if store == nil {
		return "?"
	}
	a, err := store.LatestAnalysis(levelID)
	if err != nil || a == nil {
		return "?"
	}
	switch {
	case a.Winnable:
		return fmt.Sprintf("%d swipes", a.MinSwipes)
	case a.HitLimit:
		return "inconclusive"
	default:
		return "no"
	}
}

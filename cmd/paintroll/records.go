package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paintroll/internal/platform/tui"
	"github.com/vovakirdan/paintroll/internal/storage"
)

var (
	flagRecordsLimit int
	flagPlain        bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Browse finished levels",
	Long: `Shows the levels a profile has finished, newest first, with swipes,
coins and time. Opens an interactive table in a terminal; use --plain
for text output.

Examples:
  paintroll records
  paintroll records --profile alice --limit 20 --plain`,
	Args: cobra.NoArgs,
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Progress profile name")
	recordsCmd.Flags().IntVar(&flagRecordsLimit, "limit", 100, "Maximum number of results (0 = all)")
	recordsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print text instead of the interactive table")
}

func runRecords(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Profile(flagProfile).Results(flagRecordsLimit)
	if err != nil {
		return fmt.Errorf("read results: %w", err)
	}

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if flagPlain || termErr != nil {
		printRecords(results)
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	theme, err := tui.ThemeByName(cfg.UI.Theme)
	if err != nil {
		return err
	}
	return tui.RunRecords(flagProfile, results, theme, width, height)
}

func printRecords(results []storage.Result) {
	fmt.Printf("Records - %s\n", flagProfile)
	fmt.Println("================================================")

	if len(results) == 0 {
		fmt.Println("No levels finished yet.")
		return
	}

	fmt.Printf("%-16s  %-10s  %6s  %5s  %8s\n", "DATE", "LEVEL", "SWIPES", "COINS", "TIME")
	for _, r := range results {
		fmt.Printf("%-16s  %-10s  %6d  %5d  %8s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.LevelID, r.Swipes, r.Coins, r.Duration.Round(100*time.Millisecond))
	}
}

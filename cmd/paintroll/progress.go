package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paintroll/internal/storage"
)

var flagYes bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show saved progress",
	Long: `Shows the current level, coin wallet and finished levels of a profile.

Examples:
  paintroll progress
  paintroll progress --profile alice
  paintroll progress reset --yes`,
	Args: cobra.NoArgs,
	RunE: runProgress,
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget a profile's level, coins and results",
	Args:  cobra.NoArgs,
	RunE:  runProgressReset,
}

func init() {
	progressCmd.PersistentFlags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Progress profile name")
	progressResetCmd.Flags().BoolVar(&flagYes, "yes", false, "Confirm the reset")
	progressCmd.AddCommand(progressResetCmd)
}

func runProgress(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	lvls, err := loadLevels(logger)
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	p := store.Profile(flagProfile)
	n, err := p.LevelNo()
	if err != nil {
		return err
	}
	coins, err := p.Coins()
	if err != nil {
		return err
	}

	n = min(max(n, 1), len(lvls))
	fmt.Printf("Profile: %s\n", p.Name())
	fmt.Printf("Level:   %d/%d (%s)\n", n, len(lvls), lvls[n-1].Name)
	fmt.Printf("Coins:   %d\n\n", coins)

	solved := 0
	for i, l := range lvls {
		best, ok, err := p.BestSwipes(l.ID)
		if err != nil {
			return err
		}
		status := "-"
		if ok {
			solved++
			status = fmt.Sprintf("best %d swipes", best)
		}
		fmt.Printf("  %2d. %-20s %s\n", i+1, l.Name, status)
	}
	fmt.Printf("\n%d of %d levels finished\n", solved, len(lvls))
	return nil
}

func runProgressReset(_ *cobra.Command, _ []string) error {
	if !flagYes {
		return errors.New("refusing to reset progress without --yes")
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Profile(flagProfile).Reset(); err != nil {
		return fmt.Errorf("reset %s: %w", flagProfile, err)
	}
	fmt.Printf("Progress for %s has been reset.\n", flagProfile)
	return nil
}

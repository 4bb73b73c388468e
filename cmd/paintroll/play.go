package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paintroll/internal/config"
	"github.com/vovakirdan/paintroll/internal/core"
	"github.com/vovakirdan/paintroll/internal/games/paint"
	"github.com/vovakirdan/paintroll/internal/games/paint/levels"
	"github.com/vovakirdan/paintroll/internal/platform/tui"
	"github.com/vovakirdan/paintroll/internal/storage"
)

var (
	flagProfile string
	flagTheme   string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the level campaign",
	Long: `Start playing at the saved level, or at the given level number or ID.

Controls:
  Arrows/WASD/hjkl - Swipe (mouse drags work too)
  R                - Restart level
  N/P              - Next/previous level
  M/Tab            - Level list
  Space/Esc        - Pause
  Q/Ctrl+C         - Quit

Examples:
  paintroll play
  paintroll play 4
  paintroll play lvl07 --theme neon
  paintroll play --levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Progress profile name")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "UI theme: default, neon, pastel, mono (overrides config)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
}

func runPlay(_ *cobra.Command, args []string) error {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagTheme != "" {
		cfg.UI.Theme = flagTheme
	}
	opts, err := frontEndOptions(cfg)
	if err != nil {
		return err
	}

	lvls, err := loadLevels(logger)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		// Play still works, progress is kept in memory.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else {
		defer store.Close()
	}

	game, err := newGame(cfg, lvls, store, flagProfile, logger)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		n, err := levelNumber(lvls, args[0])
		if err != nil {
			return err
		}
		game.JumpTo(n)
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		opts.Runtime.ScreenW = w
		opts.Runtime.ScreenH = h
	}
	return tui.Run(game, opts)
}

// frontEndOptions builds the terminal options from the config and --fps.
func frontEndOptions(cfg config.Config) (tui.Options, error) {
	theme, err := tui.ThemeByName(cfg.UI.Theme)
	if err != nil {
		return tui.Options{}, err
	}

	opts := tui.DefaultOptions()
	opts.Runtime.TickRate = flagFPS
	opts.Theme = theme
	opts.Gesture = core.GestureConfig{
		MinDistance: cfg.UI.SwipeDistance,
		MaxDuration: cfg.UI.SwipeMaxTime,
	}
	return opts, nil
}

// newGame creates a game for one player. A nil store keeps progress in
// memory.
func newGame(cfg config.Config, lvls []levels.Level, store *storage.Store, player string, logger *log.Logger) (*paint.Game, error) {
	if player == "" {
		player = storage.DefaultProfile
	}
	opts := paint.Options{
		Levels: lvls,
		Config: cfg,
		Logger: logger.With("player", player),
	}
	if store != nil {
		opts.Store = store.Profile(player)
	}
	return paint.New(opts)
}

// levelNumber resolves a 1-based level number or a level ID.
func levelNumber(lvls []levels.Level, arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(lvls) {
			return 0, fmt.Errorf("level %d out of range 1..%d", n, len(lvls))
		}
		return n, nil
	}
	for i, l := range lvls {
		if l.ID == arg {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %s (run 'paintroll list')", levels.ErrNotFound, arg)
}

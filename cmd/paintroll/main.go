// paintroll is a terminal puzzle where rolling balls paint the board.
//
// Usage:
//
//	paintroll play [level]     - Play, starting at the saved or given level
//	paintroll list             - List levels
//	paintroll analyze [id...]  - Check levels for a winning swipe sequence
//	paintroll records          - Browse finished levels
//	paintroll progress         - Show or reset saved progress
//	paintroll serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--db <path>         - Set database path (default: ~/.paintroll/paintroll.db)
//	--levels <dir>      - Load levels from a directory instead of the built-in set
//	--config <path>     - Use a specific config file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paintroll/internal/config"
	"github.com/vovakirdan/paintroll/internal/games/paint/levels"
	"github.com/vovakirdan/paintroll/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLevels   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paintroll",
	Short: "PaintRoll - roll the balls, paint the board",
	Long: `PaintRoll is a terminal puzzle. Every swipe sends all balls rolling
until they hit a wall or another ball, painting each cell they cross.
Paint every open cell to finish the level.

Available commands:
  play      - Play the level campaign
  list      - Show all levels
  analyze   - Check that levels can be won
  records   - Browse finished levels
  progress  - Show or reset saved progress
  serve     - Start SSH server for remote play

Examples:
  paintroll play
  paintroll play 3
  paintroll analyze --max-states 50000
  paintroll serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.paintroll/paintroll.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of level files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger creates the command logger at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "paintroll",
		Level:           level,
	}), nil
}

// loadLevels reads the level set chosen by --levels. Files that fail to
// parse are reported and skipped.
func loadLevels(logger *log.Logger) ([]levels.Level, error) {
	loader := levels.Builtin()
	if flagLevels != "" {
		loader = levels.NewLoader(flagLevels)
	}

	lvls, err := loader.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}
	for _, s := range loader.Skipped() {
		logger.Warn("skipping level file", "path", s.Path, "error", s.Err)
	}
	if len(lvls) == 0 {
		return nil, fmt.Errorf("no levels found in %s", loader.Root)
	}
	return lvls, nil
}

func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("open progress database: %w", err)
	}
	return store, nil
}

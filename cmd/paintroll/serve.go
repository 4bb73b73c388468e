package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paintroll/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the PaintRoll SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH user name gets its own saved level, coins and records.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.paintroll/host_key

Examples:
  paintroll serve                           # Listen on :23234 with auto-generated key
  paintroll serve --ssh :2222               # Listen on port 2222
  paintroll serve --host-key ./my_host_key  # Use specific host key
  paintroll serve --db ./paintroll.db       # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
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
		return err
	}
	defer store.Close()

	factory := func(player string) (tui.Game, error) {
		g, err := newGame(cfg, lvls, store, player, logger)
		if err != nil {
			return nil, err
		}
		return g, nil
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}, factory, opts, logger.WithPrefix("paintroll-ssh"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting PaintRoll SSH server on %s with %d levels\n", server.Addr(), len(lvls))
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}

// Command tetra-tui plays the game in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/internal/cli"
)

func main() {
	var flags cli.Flags
	flags.Register(flag.CommandLine)
	rate := flag.Int("rate", 60, "Game ticks per second.")
	flag.Parse()

	// logs would tear the alt screen, so they go to a file when asked for
	logOut := os.Stderr
	if path := os.Getenv("TETRA_LOG"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		defer f.Close()
		logOut = f
	} else {
		flags.LogLevel = "error"
	}

	logger, err := flags.Logger(logOut)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg, err := flags.Config()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *rate <= 0 {
		fmt.Fprintln(os.Stderr, "rate must be positive")
		os.Exit(2)
	}

	game := engine.NewGame(cfg, engine.WithLogger(logger))
	m := newModel(game, time.Second/time.Duration(*rate))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("tetra-tui exited", "err", err)
		os.Exit(1)
	}
	stats := game.Stats()
	logger.Info("finished", "ticks", stats.Ticks, "pieces", stats.Pieces, "lines", stats.Lines)
}

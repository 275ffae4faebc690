// Package cli holds the flags and logger setup shared by the tetra commands.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/plus3/tetra/engine"
)

// Flags are the game and logging options every command accepts.
type Flags struct {
	Seed     uint64
	Gravity  uint64
	Input    uint64
	LogLevel string
}

// Register defines the flags on fs with the engine defaults.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.Uint64Var(&f.Seed, "seed", 0, "piece randomizer seed (0 uses the clock)")
	fs.Uint64Var(&f.Gravity, "gravity", engine.DefaultGravityInterval, "ticks between gravity steps")
	fs.Uint64Var(&f.Input, "input", engine.DefaultInputInterval, "ticks between input windows")
	fs.StringVar(&f.LogLevel, "log-level", "info", "debug|info|warn|error")
}

// Config returns the engine configuration the flags describe.
func (f *Flags) Config() (engine.Config, error) {
	if f.Gravity == 0 || f.Input == 0 {
		return engine.Config{}, fmt.Errorf("gravity and input intervals must be positive, got %d and %d", f.Gravity, f.Input)
	}
	return engine.Config{
		GravityInterval: f.Gravity,
		InputInterval:   f.Input,
		Seed:            f.Seed,
	}, nil
}

// Logger returns a text logger writing to w at the flagged level.
func (f *Flags) Logger(w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(f.LogLevel))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", f.LogLevel, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

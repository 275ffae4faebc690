package engine

import "log/slog"

const (
	// DefaultGravityInterval is the number of ticks between gravity steps,
	// about 3.75 rows per second at 60 Hz.
	DefaultGravityInterval = 16
	// DefaultInputInterval is the number of ticks between input windows.
	DefaultInputInterval = 4
)

// Config holds the tunable timing of a game.
type Config struct {
	// GravityInterval is how many ticks pass between gravity steps.
	GravityInterval uint64
	// InputInterval is how many ticks pass between input windows.
	InputInterval uint64
	// Seed seeds the default permutation source. Zero uses the clock.
	// Ignored when WithSource is given.
	Seed uint64
}

// DefaultConfig returns the standard 60 Hz timing.
func DefaultConfig() Config {
	return Config{
		GravityInterval: DefaultGravityInterval,
		InputInterval:   DefaultInputInterval,
	}
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithSource makes the game draw pieces from src instead of a seeded
// RandSource.
func WithSource(src PermutationSource) Option {
	return func(g *Game) {
		g.bag = NewBag(src)
	}
}

// WithLogger routes the game's debug logging to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithListener subscribes fn before the first piece spawns, so fn also
// receives that spawn.
func WithListener(fn func(Event)) Option {
	return func(g *Game) {
		g.listeners = append(g.listeners, fn)
	}
}

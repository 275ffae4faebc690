package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/plus3/tetra/engine"
)

// worker plays one game over and over until ctx is done.
type worker struct {
	id     int
	game   *engine.Game
	bot    *Bot
	logger *slog.Logger

	totals   engine.Stats
	finished int
	tickTime Stats
	systems  []engine.SystemStats
}

// newWorker derives the game and bot seeds from cfg.Seed and id so every
// worker plays a different but repeatable game.
func newWorker(id int, cfg engine.Config, logger *slog.Logger) *worker {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	cfg.Seed = seed + uint64(id)

	logger = logger.With("game", id)
	return &worker{
		id:     id,
		game:   engine.NewGame(cfg, engine.WithLogger(logger)),
		bot:    NewBot(cfg.Seed),
		logger: logger,
	}
}

func (w *worker) run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.collect()
			return nil
		default:
		}

		if k, ok := w.bot.Press(); ok {
			w.game.Input(k)
		}

		start := time.Now()
		w.game.Tick()
		w.tickTime.Add(time.Since(start))

		if w.game.IsGameOver() {
			stats := w.game.Stats()
			w.logger.Debug("game finished", "ticks", stats.Ticks, "pieces", stats.Pieces, "lines", stats.Lines)
			w.collect()
			w.finished++
			w.game.Restart()
		}
	}
}

// collect folds the current game's counters into the worker totals.
func (w *worker) collect() {
	w.totals.Add(w.game.Stats())
	w.systems = mergeSystems(w.systems, w.game.SchedulerStats().Systems)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetra/internal/cli"
	"golang.org/x/sync/errgroup"
)

func main() {
	var flags cli.Flags
	flags.Register(flag.CommandLine)
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	games := flag.Int("games", runtime.GOMAXPROCS(0), "The number of games played in parallel.")
	flag.Parse()

	logger, err := flags.Logger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(logger, &flags, *duration, *games); err != nil {
		logger.Error("soak failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, flags *cli.Flags, duration time.Duration, games int) error {
	cfg, err := flags.Config()
	if err != nil {
		return err
	}
	if games < 1 {
		return fmt.Errorf("need at least one game, got %d", games)
	}

	logger.Info("starting soak", "games", games, "duration", duration)

	workers := make([]*worker, games)
	for i := range workers {
		workers[i] = newWorker(i, cfg, logger)
	}

	report := &Report{
		Duration: duration,
		Games:    games,
		Seed:     cfg.Seed,
		Config:   cfg,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	startTime := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for _, w := range workers {
		g.Go(func() error {
			return w.run(ctx)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)

	for _, w := range workers {
		report.Totals.Add(w.totals)
		report.GamesFinished += w.finished
		report.TickTime.Merge(w.tickTime)
		report.Systems = mergeSystems(report.Systems, w.systems)
	}

	logger.Info("soak finished", "ticks", report.Totals.Ticks, "finished", report.GamesFinished)

	fmt.Println("\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	fmt.Println("--- End of Report ---")
	return nil
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/engine/debugui"
	debugui_ebiten "github.com/plus3/tetra/engine/debugui/ebiten"
	"github.com/plus3/tetra/internal/cli"
	"github.com/plus3/tetra/render"
)

func main() {
	var flags cli.Flags
	flags.Register(flag.CommandLine)
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	scale := flag.Float64("scale", 1.0, "Scale factor for the 32 px cells.")
	flag.Parse()

	logger, err := flags.Logger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(logger, &flags, *debug, *scale); err != nil {
		logger.Error("tetra exited", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, flags *cli.Flags, debug bool, scale float64) error {
	cfg, err := flags.Config()
	if err != nil {
		return err
	}

	opts := []engine.Option{engine.WithLogger(logger)}
	var events *debugui.EventLog
	if debug {
		events = debugui.NewEventLog(64)
		opts = append(opts, engine.WithListener(events.Record))
	}
	game := engine.NewGame(cfg, opts...)
	g := NewGame(game, render.DefaultLayout().Scaled(scale))

	if debug {
		g.attachDebug(debugui_ebiten.NewImguiBackend("Tetra (debug)", 1280, 720), events, int(cfg.GravityInterval))
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowSize(g.Size())
		ebiten.SetWindowTitle("Tetra")
	}

	logger.Info("starting", "seed", cfg.Seed, "debug", debug)
	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	stats := game.Stats()
	logger.Info("finished", "ticks", stats.Ticks, "pieces", stats.Pieces, "lines", stats.Lines)
	return err
}

// attachDebug wires the overlay windows to the game.
func (g *Game) attachDebug(backend *debugui_ebiten.ImguiBackend, events *debugui.EventLog, gravityInterval int) {
	g.backend = backend
	g.control = debugui.NewControl(gravityInterval)
	g.perf = debugui.NewPerformanceStats(g.game, 120)
	g.timer = debugui.NewFrameTimer()

	g.overlay = debugui.NewOverlay()
	g.overlay.Add(debugui.Item{Render: debugui.NewStateInspector(g.game).Render})
	g.overlay.Add(debugui.Item{Render: g.perf.Render})
	g.overlay.Add(debugui.Item{Render: events.Render})
	g.overlay.Add(debugui.Item{Render: g.control.Render})
}

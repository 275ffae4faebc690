// Command tetra-raylib plays the game in a raylib window.
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/input"
	"github.com/plus3/tetra/internal/cli"
	"github.com/plus3/tetra/render"
)

const repeatDelay = 10

func newController() *input.Controller[int32] {
	c := input.NewController[int32](repeatDelay)
	c.Bind(rl.KeyLeft, engine.KeyLeft, true)
	c.Bind(rl.KeyRight, engine.KeyRight, true)
	c.Bind(rl.KeyDown, engine.KeyDown, true)
	c.Bind(rl.KeyZ, engine.KeyRotateCCW, false)
	c.Bind(rl.KeyUp, engine.KeyRotateCW, false)
	c.Bind(rl.KeyX, engine.KeyRotateCW, false)
	return c
}

func main() {
	var flags cli.Flags
	flags.Register(flag.CommandLine)
	flag.Parse()

	logger, err := flags.Logger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg, err := flags.Config()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	layout := render.DefaultLayout().Scaled(0.875)
	w, h := layout.Size()
	rl.InitWindow(int32(w+2*margin+panelWidth), int32(h+2*margin), "Tetra")
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	game := engine.NewGame(cfg, engine.WithLogger(logger))
	controller := newController()
	blocks := make([]engine.Block, 0, engine.FieldWidth*engine.FieldHeight+4)

	logger.Info("starting", "seed", cfg.Seed)
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsKeyPressed(rl.KeyR) {
			game.Restart()
			controller.Reset()
		}
		controller.Poll(rl.IsKeyDown, game.Input)
		game.Tick()

		blocks = game.AppendRenderBlocks(blocks[:0])
		draw(layout, game, blocks)
	}

	stats := game.Stats()
	logger.Info("finished", "ticks", stats.Ticks, "pieces", stats.Pieces, "lines", stats.Lines)
}

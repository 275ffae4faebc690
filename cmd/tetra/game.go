package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/engine/debugui"
	debugui_ebiten "github.com/plus3/tetra/engine/debugui/ebiten"
	"github.com/plus3/tetra/input"
	"github.com/plus3/tetra/render"
)

const (
	panelWidth = 160
	// repeatDelay is how many frames an arrow key is held before it
	// auto-repeats.
	repeatDelay  = 10
	debugOffsetX = 760
	debugOffsetY = 40
)

// Game implements ebiten.Game around an engine.Game.
type Game struct {
	game       *engine.Game
	layout     render.Layout
	controller *input.Controller[ebiten.Key]
	blocks     []engine.Block

	// set when the debug overlay is on
	backend *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay
	control *debugui.Control
	perf    *debugui.PerformanceStats
	timer   *debugui.FrameTimer
}

func NewGame(game *engine.Game, layout render.Layout) *Game {
	c := input.NewController[ebiten.Key](repeatDelay)
	c.Bind(ebiten.KeyArrowLeft, engine.KeyLeft, true)
	c.Bind(ebiten.KeyArrowRight, engine.KeyRight, true)
	c.Bind(ebiten.KeyArrowDown, engine.KeyDown, true)
	c.Bind(ebiten.KeyZ, engine.KeyRotateCCW, false)
	c.Bind(ebiten.KeyX, engine.KeyRotateCW, false)
	c.Bind(ebiten.KeyArrowUp, engine.KeyRotateCW, false)

	return &Game{
		game:       game,
		layout:     layout,
		controller: c,
		blocks:     make([]engine.Block, 0, engine.FieldWidth*engine.FieldHeight+4),
	}
}

// Size returns the window size without the debug overlay.
func (g *Game) Size() (int, int) {
	w, h := g.layout.Size()
	return w + panelWidth, h
}

func (g *Game) Update() error {
	if g.backend != nil {
		g.backend.BeginFrame()
		defer g.backend.EndFrame()
		g.perf.Record(g.timer.DeltaTime())
	}

	captured := g.overlay != nil && g.overlay.Input().WantCaptureKeyboard
	if !captured {
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.game.Restart()
			g.controller.Reset()
		}
		g.controller.Poll(ebiten.IsKeyPressed, g.game.Input)
	}

	if g.control == nil || g.control.ShouldTick() {
		g.game.Tick()
	}

	if g.overlay != nil {
		g.overlay.Render()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	ox, oy := 0, 0
	if g.backend != nil {
		ox, oy = debugOffsetX, debugOffsetY
	}

	g.blocks = g.game.AppendRenderBlocks(g.blocks[:0])
	drawField(screen, g.layout, g.blocks, ox, oy)
	fw, _ := g.layout.Size()
	drawPanel(screen, g.game, ox+fw, oy)

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.Size()
}

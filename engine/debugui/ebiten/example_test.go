package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/engine/debugui"
	debugui_ebiten "github.com/plus3/tetra/engine/debugui/ebiten"
)

// Game implements ebiten.Game and draws the debug overlay over the engine.
type Game struct {
	game    *engine.Game
	overlay *debugui.Overlay
	backend *debugui_ebiten.ImguiBackend
	control *debugui.Control
}

func (g *Game) Update() error {
	// Begin ImGui frame before drawing the overlay
	g.backend.BeginFrame()

	if g.control.ShouldTick() {
		g.game.Tick()
	}
	g.overlay.Render()

	g.backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Tetra ImGui Example", 1280, 720)

	events := debugui.NewEventLog(64)
	game := engine.NewGame(engine.DefaultConfig(), engine.WithListener(events.Record))
	control := debugui.NewControl(engine.DefaultGravityInterval)

	overlay := debugui.NewOverlay()
	overlay.Add(debugui.Item{Render: debugui.NewStateInspector(game).Render})
	overlay.Add(debugui.Item{Render: events.Render})
	overlay.Add(debugui.Item{Render: control.Render})

	if err := ebiten.RunGame(&Game{
		game:    game,
		overlay: overlay,
		backend: backend,
		control: control,
	}); err != nil {
		panic(err)
	}
}

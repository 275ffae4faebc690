package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/render"
)

// StateInspector shows the game's phase, active piece, bag and counters.
type StateInspector struct {
	game *engine.Game
}

func NewStateInspector(game *engine.Game) *StateInspector {
	return &StateInspector{game: game}
}

func (si *StateInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 360), imgui.CondOnce)

	if !imgui.BeginV("Game State", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	g := si.game
	if g.IsGameOver() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	} else {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "FALLING")
	}
	imgui.Text(fmt.Sprintf("Tick: %d", g.Ticks()))
	imgui.Text(fmt.Sprintf("Lines: %d", g.Lines()))

	imgui.Separator()
	if p, ok := g.Active(); ok {
		kindText(p.Kind())
		imgui.SameLine()
		imgui.Text(fmt.Sprintf("facing %s", p.Orientation()))
		axis := p.Axis()
		imgui.Text(fmt.Sprintf("Axis: (%d, %d)", axis.X, axis.Y))
		for _, b := range p.Blocks() {
			imgui.BulletText(fmt.Sprintf("(%d, %d)", b.X, b.Y))
		}
	} else {
		imgui.Text("No active piece")
	}

	imgui.Separator()
	imgui.Text("Bag:")
	for _, k := range g.Upcoming() {
		imgui.SameLine()
		kindText(k)
	}

	stats := g.Stats()
	if imgui.TreeNodeStr("Counters") {
		imgui.Text(fmt.Sprintf("Pieces: %d", stats.Pieces))
		imgui.Text(fmt.Sprintf("Locks: %d", stats.Locks))
		imgui.Text(fmt.Sprintf("Singles: %d  Doubles: %d", stats.Singles(), stats.Doubles()))
		imgui.Text(fmt.Sprintf("Triples: %d  Tetrises: %d", stats.Triples(), stats.Tetrises()))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Spawned") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()
			for _, k := range engine.Kinds {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				kindText(k)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.Spawned[k]))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func kindText(k engine.Kind) {
	imgui.TextColored(vec4(k.Color()), k.String())
}

func vec4(c engine.Color) imgui.Vec4 {
	rgba := render.RGBA(c)
	return imgui.NewVec4(float32(rgba.R)/255.0, float32(rgba.G)/255.0, float32(rgba.B)/255.0, 1.0)
}

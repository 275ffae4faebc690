package main

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/render"
)

const (
	margin     = 20
	panelWidth = 160
	fontSize   = 20
)

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func draw(layout render.Layout, game *engine.Game, blocks []engine.Block) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.Black)

	w, h := layout.Size()
	cs := int32(layout.CellSize)
	rl.DrawRectangle(margin, margin, int32(w), int32(h), rlColor(render.Background))
	rl.DrawRectangleLines(margin-2, margin-2, int32(w)+4, int32(h)+4, rl.Gray)

	for _, b := range blocks {
		px, py, visible := layout.ScreenPos(b)
		if !visible {
			continue
		}
		x, y := int32(margin+px), int32(margin+py)
		rl.DrawRectangle(x, y, cs, cs, rlColor(render.RGBA(b.Color)))
		rl.DrawRectangleLines(x, y, cs, cs, rl.Black)
	}

	textX := int32(margin + w + 20)
	textY := int32(margin)
	line := func(s string, c rl.Color) {
		rl.DrawText(s, textX, textY, fontSize, c)
		textY += fontSize + 5
	}

	line("LINES", rl.White)
	line(fmt.Sprintf("%d", game.Lines()), rl.White)
	line("PIECES", rl.White)
	line(fmt.Sprintf("%d", game.Stats().Pieces), rl.White)
	textY += fontSize

	line("NEXT", rl.White)
	for _, k := range game.Upcoming() {
		line(k.String(), rlColor(render.RGBA(k.Color())))
	}

	if game.IsGameOver() {
		rl.DrawText("GAME OVER", margin+20, margin+int32(h)/2-10, 30, rl.Red)
		rl.DrawText("Press R to restart", margin+10, margin+int32(h)/2+30, fontSize, rl.White)
	}
}

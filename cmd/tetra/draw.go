package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/render"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 16

func drawField(screen *ebiten.Image, layout render.Layout, blocks []engine.Block, ox, oy int) {
	w, h := layout.Size()
	vector.DrawFilledRect(screen, float32(ox), float32(oy), float32(w), float32(h), render.Background, false)

	cs := float32(layout.CellSize)
	for y := 0; y < layout.VisibleRows; y++ {
		for x := 0; x < layout.Cols; x++ {
			px, py, _ := layout.ScreenPos(engine.NewBlock(0, x, y))
			vector.StrokeRect(screen, float32(ox+px), float32(oy+py), cs, cs, 1, render.Grid, false)
		}
	}

	for _, b := range blocks {
		px, py, visible := layout.ScreenPos(b)
		if !visible {
			continue
		}
		x, y := float32(ox+px), float32(oy+py)
		vector.DrawFilledRect(screen, x+1, y+1, cs-2, cs-2, render.RGBA(b.Color), false)
	}
}

func drawPanel(screen *ebiten.Image, game *engine.Game, ox, oy int) {
	x, y := ox+12, oy+24
	line := func(s string, clr color.Color) {
		text.Draw(screen, s, basicfont.Face7x13, x, y, clr)
		y += lineHeight
	}

	stats := game.Stats()
	line(fmt.Sprintf("Lines  %d", stats.Lines), color.White)
	line(fmt.Sprintf("Pieces %d", stats.Pieces), color.White)
	line(fmt.Sprintf("Tick   %d", game.Ticks()), color.White)
	y += lineHeight

	line("Next", color.White)
	for _, k := range game.Upcoming() {
		line("  "+k.String(), render.RGBA(k.Color()))
	}
	y += lineHeight

	if game.IsGameOver() {
		line("GAME OVER", render.RGBA(engine.Red))
		line("R to restart", color.White)
		return
	}
	line("Z/X rotate", color.Gray{Y: 0xa0})
	line("R restart", color.Gray{Y: 0xa0})
	line("Q quit", color.Gray{Y: 0xa0})
}

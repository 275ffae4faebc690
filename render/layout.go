// Package render maps engine blocks onto screens. It holds the pixel layout,
// the shared palette and a text renderer for terminals.
package render

import "github.com/plus3/tetra/engine"

// Layout places field cells on a raster surface. Row 0 is drawn at the
// bottom of the visible area.
type Layout struct {
	// CellSize is the edge length of one cell in pixels.
	CellSize int
	// VisibleRows is how many rows from the bottom are drawn. Rows above
	// it are the spawn buffer and stay hidden.
	VisibleRows int
	// Cols is the number of columns drawn.
	Cols int
}

// DefaultLayout is 32 px cells over the 20 visible rows.
func DefaultLayout() Layout {
	return Layout{
		CellSize:    32,
		VisibleRows: engine.VisibleHeight,
		Cols:        engine.FieldWidth,
	}
}

// Scaled returns a copy of l with the cell size multiplied by factor,
// never below one pixel.
func (l Layout) Scaled(factor float64) Layout {
	l.CellSize = max(1, int(float64(l.CellSize)*factor))
	return l
}

// Size returns the pixel width and height of the drawn field.
func (l Layout) Size() (width, height int) {
	return l.Cols * l.CellSize, l.VisibleRows * l.CellSize
}

// ScreenPos returns the top-left pixel of b's cell. visible is false for
// blocks outside the drawn area.
func (l Layout) ScreenPos(b engine.Block) (px, py int, visible bool) {
	px = b.X * l.CellSize
	py = (l.VisibleRows - 1 - b.Y) * l.CellSize
	visible = b.X >= 0 && b.X < l.Cols && b.Y >= 0 && b.Y < l.VisibleRows
	return px, py, visible
}

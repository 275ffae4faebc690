package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/plus3/tetra/engine"
)

const (
	filledCell = "██"
	emptyCell  = " ·"
)

// Terminal draws blocks as a grid of colored text, two columns per cell so
// cells come out roughly square.
type Terminal struct {
	layout Layout
	styles [engine.Yellow + 1]lipgloss.Style
	empty  lipgloss.Style
}

// NewTerminal returns a renderer for the rows and columns of layout. The
// cell size is ignored.
func NewTerminal(layout Layout) *Terminal {
	t := &Terminal{
		layout: layout,
		empty:  lipgloss.NewStyle().Foreground(lipgloss.Color(hexRGBA(Grid))),
	}
	for c := range t.styles {
		t.styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(engine.Color(c))))
	}
	return t
}

// Render returns the visible rows top first, one line per row.
func (t *Terminal) Render(blocks []engine.Block) string {
	rows, cols := t.layout.VisibleRows, t.layout.Cols
	grid := make([]engine.Cell, rows*cols)
	for _, b := range blocks {
		if b.X < 0 || b.X >= cols || b.Y < 0 || b.Y >= rows {
			continue
		}
		grid[b.Y*cols+b.X] = engine.Filled(b.Color)
	}

	var sb strings.Builder
	for y := rows - 1; y >= 0; y-- {
		for x := 0; x < cols; x++ {
			c, ok := grid[y*cols+x].Color()
			if !ok {
				sb.WriteString(t.empty.Render(emptyCell))
				continue
			}
			sb.WriteString(t.style(c).Render(filledCell))
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (t *Terminal) style(c engine.Color) lipgloss.Style {
	if int(c) >= len(t.styles) {
		return t.empty
	}
	return t.styles[c]
}

// Swatch renders a short colored bar for kind, for previews and legends.
func (t *Terminal) Swatch(kind engine.Kind) string {
	return t.style(kind.Color()).Render(filledCell)
}

package engine

import "fmt"

// Direction is a unit step on the lattice. y grows upward, so Down moves
// toward row 0.
type Direction uint8

const (
	Left Direction = iota
	Up
	Right
	Down
)

var directionNames = [...]string{"left", "up", "right", "down"}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", d)
	}
	return directionNames[d]
}

// Delta returns the lattice offset of a single step in direction d.
func (d Direction) Delta() Point {
	switch d {
	case Left:
		return Point{X: -1}
	case Right:
		return Point{X: 1}
	case Down:
		return Point{Y: -1}
	case Up:
		return Point{Y: 1}
	}
	panic("engine: invalid direction " + d.String())
}

// Point is an integer lattice coordinate or offset.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Block is a colored cell at a lattice position. Blocks are values; moving
// one returns a new block.
type Block struct {
	Color Color
	X, Y  int
}

// NewBlock creates a block of color c at (x, y).
func NewBlock(c Color, x, y int) Block {
	return Block{Color: c, X: x, Y: y}
}

// Pos returns the block's lattice position.
func (b Block) Pos() Point {
	return Point{X: b.X, Y: b.Y}
}

// Moved returns the block one step away in direction d.
func (b Block) Moved(d Direction) Block {
	return b.Offset(d.Delta())
}

// Offset returns the block displaced by p, keeping its color.
func (b Block) Offset(p Point) Block {
	return Block{Color: b.Color, X: b.X + p.X, Y: b.Y + p.Y}
}

func (b Block) String() string {
	return fmt.Sprintf("%s(%d,%d)", b.Color, b.X, b.Y)
}

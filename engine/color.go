package engine

// Color is the tint of a block. Every piece kind owns exactly one color.
type Color uint8

const (
	Cyan Color = iota + 1
	Blue
	Orange
	Green
	Red
	Purple
	Yellow
)

var colorNames = [...]string{
	Cyan:   "cyan",
	Blue:   "blue",
	Orange: "orange",
	Green:  "green",
	Red:    "red",
	Purple: "purple",
	Yellow: "yellow",
}

// Valid reports whether c is one of the seven piece colors.
func (c Color) Valid() bool {
	return c >= Cyan && c <= Yellow
}

func (c Color) String() string {
	if !c.Valid() {
		return "none"
	}
	return colorNames[c]
}

// Cell is a single square of the field. The zero value is empty; a filled
// cell stores the color of the block that was fixed into it.
type Cell uint8

// Empty is the vacant cell.
const Empty Cell = 0

// Filled returns the cell holding color c.
func Filled(c Color) Cell {
	return Cell(c)
}

// IsEmpty reports whether the cell holds no block.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Color returns the color stored in the cell, or false for an empty cell.
func (c Cell) Color() (Color, bool) {
	if c == Empty {
		return 0, false
	}
	return Color(c), true
}

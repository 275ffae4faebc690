package engine

import (
	"fmt"
	"strings"
)

const (
	// FieldWidth is the number of columns.
	FieldWidth = 10
	// FieldHeight is the number of rows, including the spawn buffer.
	FieldHeight = 24
	// VisibleHeight is the number of rows a renderer shows; rows at or
	// above it form the spawn buffer.
	VisibleHeight = 20
)

// Field is the fixed 24x10 playfield. Row 0 is the bottom row. The zero
// value is an empty field ready to use.
type Field struct {
	cells [FieldHeight][FieldWidth]Cell
}

// NewField returns an empty field.
func NewField() *Field {
	return &Field{}
}

// NewFieldFromRows builds a field from rows listed bottom first. It panics
// unless rows is exactly 24 rows of 10 cells.
func NewFieldFromRows(rows [][]Cell) *Field {
	if len(rows) != FieldHeight {
		panic(fmt.Sprintf("engine: field must have %d rows, got %d", FieldHeight, len(rows)))
	}
	f := &Field{}
	for y, row := range rows {
		if len(row) != FieldWidth {
			panic(fmt.Sprintf("engine: field row %d must have %d cells, got %d", y, FieldWidth, len(row)))
		}
		copy(f.cells[y][:], row)
	}
	return f
}

func inBounds(x, y int) bool {
	return x >= 0 && x < FieldWidth && y >= 0 && y < FieldHeight
}

// Rows returns the row count, which is always FieldHeight.
func (f *Field) Rows() int {
	return len(f.cells)
}

// Cols returns the number of cells per row, which is always FieldWidth.
func (f *Field) Cols() int {
	return len(f.cells[0])
}

// At returns the cell at (x, y). ok is false when the position lies outside
// the field.
func (f *Field) At(x, y int) (cell Cell, ok bool) {
	if !inBounds(x, y) {
		return Empty, false
	}
	return f.cells[y][x], true
}

// IsVacant reports whether every block lies inside the field on an empty
// cell. Positions outside the field are never vacant.
func (f *Field) IsVacant(blocks []Block) bool {
	for _, b := range blocks {
		if !inBounds(b.X, b.Y) || !f.cells[b.Y][b.X].IsEmpty() {
			return false
		}
	}
	return true
}

// Fix writes each block's color into its cell. The blocks must be vacant;
// Fix panics otherwise and leaves the field untouched.
func (f *Field) Fix(blocks []Block) {
	if !f.IsVacant(blocks) {
		panic(fmt.Sprintf("engine: fixing non-vacant blocks %v", blocks))
	}
	for _, b := range blocks {
		f.cells[b.Y][b.X] = Filled(b.Color)
	}
}

func (f *Field) rowFull(y int) bool {
	for _, c := range f.cells[y] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, drops the rows above it and refills
// the top with empty rows. It returns the number of rows removed.
func (f *Field) ClearFullRows() int {
	write := 0
	for read := 0; read < FieldHeight; read++ {
		if f.rowFull(read) {
			continue
		}
		if write != read {
			f.cells[write] = f.cells[read]
		}
		write++
	}

	cleared := FieldHeight - write
	for ; write < FieldHeight; write++ {
		f.cells[write] = [FieldWidth]Cell{}
	}
	return cleared
}

// OccupiedBlocks lists every filled cell as a block, by row from the bottom
// and left to right within a row.
func (f *Field) OccupiedBlocks() []Block {
	return f.AppendOccupiedBlocks(nil)
}

// AppendOccupiedBlocks appends the filled cells to dst in the same order as
// OccupiedBlocks and returns the extended slice.
func (f *Field) AppendOccupiedBlocks(dst []Block) []Block {
	for y := range f.cells {
		for x, c := range f.cells[y] {
			if color, ok := c.Color(); ok {
				dst = append(dst, NewBlock(color, x, y))
			}
		}
	}
	return dst
}

// String draws the field top row first, one line per row. Empty cells are
// '.', filled cells show the letter of the kind that owns their color.
func (f *Field) String() string {
	var sb strings.Builder
	sb.Grow(FieldHeight * (FieldWidth + 1))
	for y := FieldHeight - 1; y >= 0; y-- {
		for _, c := range f.cells[y] {
			sb.WriteByte(cellRune(c))
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func cellRune(c Cell) byte {
	color, ok := c.Color()
	if !ok {
		return '.'
	}
	if k, ok := KindOf(color); ok {
		return kindNames[k][0]
	}
	return '#'
}

// ParseField reads the format written by String. Lines are rows from the
// top; fewer than 24 lines fill the bottom of the field. Blank lines and
// surrounding whitespace are ignored.
func ParseField(s string) (*Field, error) {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > FieldHeight {
		return nil, fmt.Errorf("field has %d rows, at most %d allowed", len(lines), FieldHeight)
	}

	f := &Field{}
	for i, line := range lines {
		y := len(lines) - 1 - i
		if len(line) != FieldWidth {
			return nil, fmt.Errorf("row %d: want %d cells, got %d", y, FieldWidth, len(line))
		}
		for x := 0; x < FieldWidth; x++ {
			cell, err := parseCell(line[x])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			f.cells[y][x] = cell
		}
	}
	return f, nil
}

func parseCell(r byte) (Cell, error) {
	if r == '.' {
		return Empty, nil
	}
	for k, name := range kindNames {
		if name[0] == r {
			return Filled(kindColors[k]), nil
		}
	}
	return Empty, fmt.Errorf("unknown cell %q", r)
}

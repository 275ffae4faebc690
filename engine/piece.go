package engine

import "fmt"

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	I Kind = iota
	J
	L
	S
	Z
	T
	O
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

// Kinds lists every kind in declaration order.
var Kinds = [KindCount]Kind{I, J, L, S, Z, T, O}

var (
	kindNames  = [KindCount]string{"I", "J", "L", "S", "Z", "T", "O"}
	kindColors = [KindCount]Color{Cyan, Blue, Orange, Green, Red, Purple, Yellow}
)

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k < KindCount
}

// Color returns the color every block of this kind is drawn with.
func (k Kind) Color() Color {
	if !k.Valid() {
		panic(fmt.Sprintf("engine: invalid piece kind %d", k))
	}
	return kindColors[k]
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindNames[k]
}

// KindOf returns the kind whose color is c.
func KindOf(c Color) (Kind, bool) {
	for k, kc := range kindColors {
		if kc == c {
			return Kind(k), true
		}
	}
	return 0, false
}

// Orientation selects which offset table a piece uses.
type Orientation uint8

const (
	FacingLeft Orientation = iota
	FacingUp
	FacingRight
	FacingDown

	orientationCount = 4
)

var orientationNames = [orientationCount]string{"left", "up", "right", "down"}

func (o Orientation) Valid() bool {
	return o < orientationCount
}

func (o Orientation) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Orientation(%d)", o)
	}
	return orientationNames[o]
}

// Rotated returns the orientation after a quarter turn in direction r.
func (o Orientation) Rotated(r RotateDirection) Orientation {
	switch r {
	case RotateLeft:
		return (o + orientationCount - 1) % orientationCount
	case RotateRight:
		return (o + 1) % orientationCount
	}
	panic(fmt.Sprintf("engine: invalid rotate direction %d", r))
}

// MoveDirection is a translation a piece can make. There is no upward move.
type MoveDirection uint8

const (
	MoveLeft MoveDirection = iota
	MoveRight
	MoveDown
)

// Direction returns the lattice direction of the move.
func (m MoveDirection) Direction() Direction {
	switch m {
	case MoveLeft:
		return Left
	case MoveRight:
		return Right
	case MoveDown:
		return Down
	}
	panic(fmt.Sprintf("engine: invalid move direction %d", m))
}

func (m MoveDirection) String() string {
	return m.Direction().String()
}

// RotateDirection is a quarter turn: Left is counter-clockwise, Right is clockwise.
type RotateDirection uint8

const (
	RotateLeft RotateDirection = iota
	RotateRight
)

func (r RotateDirection) String() string {
	switch r {
	case RotateLeft:
		return "ccw"
	case RotateRight:
		return "cw"
	}
	return fmt.Sprintf("RotateDirection(%d)", r)
}

// Piece is a tetromino value: its kind, orientation and axis block. The
// four blocks a piece covers are derived from those three on demand.
// Operations never modify a piece in place; they return the moved piece.
type Piece struct {
	kind   Kind
	facing Orientation
	axis   Block
}

// NewPiece creates a piece of the given kind and orientation with its axis at
// (x, y). It panics if kind or facing is outside its enum.
func NewPiece(kind Kind, facing Orientation, x, y int) Piece {
	if !kind.Valid() {
		panic(fmt.Sprintf("engine: invalid piece kind %d", kind))
	}
	if !facing.Valid() {
		panic(fmt.Sprintf("engine: invalid orientation %d for piece %s", facing, kind))
	}
	return Piece{
		kind:   kind,
		facing: facing,
		axis:   NewBlock(kind.Color(), x, y),
	}
}

// SpawnPiece returns kind at its fixed entry pose.
func SpawnPiece(kind Kind) Piece {
	if !kind.Valid() {
		panic(fmt.Sprintf("engine: invalid piece kind %d", kind))
	}
	at := spawnAxis[kind]
	return NewPiece(kind, FacingRight, at.X, at.Y)
}

func (p Piece) Kind() Kind {
	return p.kind
}

func (p Piece) Orientation() Orientation {
	return p.facing
}

// Axis returns the pivot block. For every kind except O it is also one of
// the rendered blocks.
func (p Piece) Axis() Block {
	return p.axis
}

// Color returns the piece's color.
func (p Piece) Color() Color {
	return p.axis.Color
}

// Translated returns the piece moved one cell in direction d.
func (p Piece) Translated(d MoveDirection) Piece {
	p.axis = p.axis.Moved(d.Direction())
	return p
}

// Rotated returns the piece turned a quarter in direction r. Only the I
// piece moves its axis while turning.
func (p Piece) Rotated(r RotateDirection) Piece {
	if p.kind == I {
		shift := barShiftLeft
		if r == RotateRight {
			shift = barShiftRight
		}
		p.axis = p.axis.Moved(shift[p.facing])
	}
	p.facing = p.facing.Rotated(r)
	return p
}

// Blocks expands the piece into its four world-space blocks.
func (p Piece) Blocks() [4]Block {
	var blocks [4]Block
	for i, off := range offsets[p.kind][p.facing] {
		blocks[i] = p.axis.Offset(off)
	}
	return blocks
}

// DryTranslate returns the blocks the piece would cover after moving in
// direction d, without producing the moved piece.
func (p Piece) DryTranslate(d MoveDirection) [4]Block {
	return p.Translated(d).Blocks()
}

// DryRotate returns the blocks the piece would cover after turning in
// direction r.
func (p Piece) DryRotate(r RotateDirection) [4]Block {
	return p.Rotated(r).Blocks()
}

func (p Piece) String() string {
	return fmt.Sprintf("%s facing %s at (%d,%d)", p.kind, p.facing, p.axis.X, p.axis.Y)
}

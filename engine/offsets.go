package engine

// offsets holds the four block offsets from the axis for every kind and
// orientation, indexed [kind][orientation]. Right is the spawn shape; each
// step Left -> Up -> Right -> Down -> Left is a quarter turn clockwise.
var offsets = [KindCount][orientationCount][4]Point{
	I: {
		FacingLeft:  {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		FacingUp:    {{0, -2}, {0, -1}, {0, 0}, {0, 1}},
		FacingRight: {{-2, 0}, {-1, 0}, {0, 0}, {1, 0}},
		FacingDown:  {{0, -1}, {0, 0}, {0, 1}, {0, 2}},
	},
	J: {
		FacingLeft:  {{-1, 0}, {0, 0}, {1, 0}, {1, -1}},
		FacingUp:    {{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
		FacingRight: {{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
		FacingDown:  {{0, -1}, {0, 0}, {0, 1}, {1, 1}},
	},
	L: {
		FacingLeft:  {{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		FacingUp:    {{-1, 1}, {0, -1}, {0, 0}, {0, 1}},
		FacingRight: {{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
		FacingDown:  {{0, -1}, {0, 0}, {0, 1}, {1, -1}},
	},
	S: {
		FacingLeft:  {{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
		FacingUp:    {{-1, 0}, {-1, 1}, {0, -1}, {0, 0}},
		FacingRight: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		FacingDown:  {{0, 0}, {0, 1}, {1, -1}, {1, 0}},
	},
	Z: {
		FacingLeft:  {{-1, 0}, {0, -1}, {0, 0}, {1, -1}},
		FacingUp:    {{-1, -1}, {-1, 0}, {0, 0}, {0, 1}},
		FacingRight: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
		FacingDown:  {{0, -1}, {0, 0}, {1, 0}, {1, 1}},
	},
	T: {
		FacingLeft:  {{-1, 0}, {0, -1}, {0, 0}, {1, 0}},
		FacingUp:    {{-1, 0}, {0, -1}, {0, 0}, {0, 1}},
		FacingRight: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
		FacingDown:  {{0, -1}, {0, 0}, {0, 1}, {1, 0}},
	},
	O: {
		FacingLeft:  {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		FacingUp:    {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		FacingRight: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		FacingDown:  {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
}

// The I bar's axis is an end cell, so rotating it also nudges the axis one
// cell; this keeps the bar turning about its center. Indexed by the
// orientation being rotated away from.
var (
	barShiftLeft = [orientationCount]Direction{
		FacingLeft:  Right,
		FacingUp:    Down,
		FacingRight: Left,
		FacingDown:  Up,
	}
	barShiftRight = [orientationCount]Direction{
		FacingLeft:  Up,
		FacingUp:    Right,
		FacingRight: Down,
		FacingDown:  Left,
	}
)

// spawnAxis is the axis position each kind enters the field at, facing Right.
var spawnAxis = [KindCount]Point{
	I: {5, 20},
	J: {4, 20},
	L: {4, 20},
	S: {4, 20},
	Z: {4, 20},
	T: {4, 20},
	O: {4, 20},
}

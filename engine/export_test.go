package engine

// SetField replaces the playfield.
func (g *Game) SetField(f *Field) {
	g.field = f
}

// SetActive replaces the falling piece.
func (g *Game) SetActive(p Piece) {
	g.active = p
}

// Pending returns the keys queued for the next input window.
func (g *Game) Pending() []Key {
	return append([]Key(nil), g.pending...)
}

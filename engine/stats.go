package engine

// Stats counts what happened since the game started or was last restarted.
type Stats struct {
	Ticks  uint64
	Pieces int
	Locks  int
	Lines  int
	// Clears is indexed by the number of rows removed at once; Clears[4]
	// counts four-row clears. Index 0 is unused.
	Clears [5]int
	// Spawned is indexed by Kind.
	Spawned [KindCount]int
}

// Singles returns the number of one-row clears.
func (s Stats) Singles() int { return s.Clears[1] }

// Doubles returns the number of two-row clears.
func (s Stats) Doubles() int { return s.Clears[2] }

// Triples returns the number of three-row clears.
func (s Stats) Triples() int { return s.Clears[3] }

// Tetrises returns the number of four-row clears.
func (s Stats) Tetrises() int { return s.Clears[4] }

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Ticks += other.Ticks
	s.Pieces += other.Pieces
	s.Locks += other.Locks
	s.Lines += other.Lines
	for i := range s.Clears {
		s.Clears[i] += other.Clears[i]
	}
	for i := range s.Spawned {
		s.Spawned[i] += other.Spawned[i]
	}
}

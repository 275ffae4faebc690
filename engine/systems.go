package engine

// GravitySystem drops the active piece one row every Interval ticks and
// locks it when it cannot fall.
type GravitySystem struct {
	Interval uint64
}

func (s *GravitySystem) Execute(frame *TickFrame) {
	if frame.Tick%s.Interval != 0 {
		return
	}
	frame.game.fall(frame)
}

// InputSystem applies the queued keys every Interval ticks. Keys queued
// between windows wait for the next one.
type InputSystem struct {
	Interval uint64
}

func (s *InputSystem) Execute(frame *TickFrame) {
	if frame.Tick%s.Interval != 0 {
		return
	}
	g := frame.game
	for _, k := range g.pending {
		// gravity may have ended the game earlier in this tick
		if g.phase == GameOver {
			break
		}
		g.apply(frame, k)
	}
	g.pending = g.pending[:0]
}

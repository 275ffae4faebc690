package engine

// System is one step of the per-tick update. Systems run in the order they
// were registered with the Scheduler and may keep state between ticks.
type System interface {
	Execute(frame *TickFrame)
}

// TickFrame is handed to every system during a single tick.
type TickFrame struct {
	// Tick is the counter value for this tick; the first tick is 1.
	Tick   uint64
	Events *Events

	game *Game
}

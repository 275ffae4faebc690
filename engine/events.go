package engine

import "fmt"

// EventKind classifies an Event.
type EventKind uint8

const (
	// EventSpawned: a new active piece entered the field.
	EventSpawned EventKind = iota
	// EventMoved: the active piece was translated by input.
	EventMoved
	// EventRotated: the active piece was rotated by input.
	EventRotated
	// EventFell: gravity moved the active piece down one row.
	EventFell
	// EventLocked: the active piece was fixed into the field.
	EventLocked
	// EventLinesCleared: one or more full rows were removed.
	EventLinesCleared
	// EventGameOver: the next piece could not spawn.
	EventGameOver
)

var eventNames = [...]string{
	EventSpawned:      "spawned",
	EventMoved:        "moved",
	EventRotated:      "rotated",
	EventFell:         "fell",
	EventLocked:       "locked",
	EventLinesCleared: "lines-cleared",
	EventGameOver:     "game-over",
}

func (k EventKind) String() string {
	if int(k) >= len(eventNames) {
		return fmt.Sprintf("EventKind(%d)", k)
	}
	return eventNames[k]
}

// Event describes a state change that happened during a tick.
type Event struct {
	Kind EventKind
	Tick uint64
	// Piece is the piece the event concerns. For EventGameOver it is the
	// piece that failed to spawn.
	Piece Piece
	// Lines is set for EventLinesCleared.
	Lines int
}

func (e Event) String() string {
	if e.Kind == EventLinesCleared {
		return fmt.Sprintf("tick %d: %s %d", e.Tick, e.Kind, e.Lines)
	}
	return fmt.Sprintf("tick %d: %s %s", e.Tick, e.Kind, e.Piece)
}

// Events buffers events recorded during a tick. The buffer is delivered to
// listeners and emptied when the tick ends.
type Events struct {
	buf []Event
}

// Record queues an event.
func (e *Events) Record(ev Event) {
	e.buf = append(e.buf, ev)
}

// Len returns the number of queued events.
func (e *Events) Len() int {
	return len(e.buf)
}

// Flush hands every queued event to each listener in recording order and
// resets the buffer. Listeners may record and flush again, for example by
// restarting the game; those events are delivered by the nested Flush and
// are not repeated by the outer one.
func (e *Events) Flush(listeners []func(Event)) {
	evs := e.buf
	e.buf = nil
	for _, ev := range evs {
		for _, fn := range listeners {
			fn(ev)
		}
	}
	if e.buf == nil {
		clear(evs)
		e.buf = evs[:0]
	}
}

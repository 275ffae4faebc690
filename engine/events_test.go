package engine_test

import (
	"testing"

	"github.com/plus3/tetra/engine"
	"github.com/stretchr/testify/assert"
)

func TestEventsFlush(t *testing.T) {
	var evs engine.Events
	evs.Record(engine.Event{Kind: engine.EventMoved, Tick: 4})
	evs.Record(engine.Event{Kind: engine.EventFell, Tick: 4})
	assert.Equal(t, 2, evs.Len())

	var got []engine.EventKind
	evs.Flush([]func(engine.Event){func(ev engine.Event) { got = append(got, ev.Kind) }})

	assert.Equal(t, []engine.EventKind{engine.EventMoved, engine.EventFell}, got)
	assert.Zero(t, evs.Len())
}

func TestEventsNestedFlush(t *testing.T) {
	var evs engine.Events
	var got []engine.Event
	var listeners []func(engine.Event)
	listeners = append(listeners, func(ev engine.Event) {
		got = append(got, ev)
		if ev.Kind == engine.EventGameOver {
			evs.Record(engine.Event{Kind: engine.EventSpawned, Tick: ev.Tick})
			evs.Flush(listeners)
		}
	})

	evs.Record(engine.Event{Kind: engine.EventLocked, Tick: 16})
	evs.Record(engine.Event{Kind: engine.EventGameOver, Tick: 16})
	evs.Record(engine.Event{Kind: engine.EventLinesCleared, Tick: 16, Lines: 1})
	evs.Flush(listeners)

	want := []engine.Event{
		{Kind: engine.EventLocked, Tick: 16},
		{Kind: engine.EventGameOver, Tick: 16},
		{Kind: engine.EventSpawned, Tick: 16},
		{Kind: engine.EventLinesCleared, Tick: 16, Lines: 1},
	}
	assert.Equal(t, want, got)
	assert.Zero(t, evs.Len())

	// the buffer is usable after a nested flush
	evs.Record(engine.Event{Kind: engine.EventMoved, Tick: 20})
	assert.Equal(t, 1, evs.Len())
}

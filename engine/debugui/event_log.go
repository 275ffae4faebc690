package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetra/engine"
)

// EventLog keeps the most recent game events in a ring and lists them
// newest first.
type EventLog struct {
	events []engine.Event
	next   int
	full   bool
	// HideFalls drops gravity steps from the log.
	HideFalls bool
}

// NewEventLog returns a log holding up to size events.
func NewEventLog(size int) *EventLog {
	return &EventLog{events: make([]engine.Event, size), HideFalls: true}
}

// Record is a listener for engine.Game.Subscribe.
func (l *EventLog) Record(ev engine.Event) {
	if l.HideFalls && ev.Kind == engine.EventFell {
		return
	}
	l.events[l.next] = ev
	l.next = (l.next + 1) % len(l.events)
	if l.next == 0 {
		l.full = true
	}
}

// Recent returns the kept events, newest first.
func (l *EventLog) Recent() []engine.Event {
	n := l.next
	if l.full {
		n = len(l.events)
	}
	out := make([]engine.Event, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, l.events[(l.next-i+len(l.events))%len(l.events)])
	}
	return out
}

func (l *EventLog) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(440, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 400), imgui.CondOnce)

	if !imgui.BeginV("Events", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Checkbox("Hide falls", &l.HideFalls)
	imgui.Separator()

	for _, ev := range l.Recent() {
		switch ev.Kind {
		case engine.EventLinesCleared:
			imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), ev.String())
		case engine.EventGameOver:
			imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), ev.String())
		case engine.EventSpawned, engine.EventLocked:
			imgui.TextColored(vec4(ev.Piece.Color()), ev.String())
		default:
			imgui.Text(ev.String())
		}
	}

	imgui.End()
}

// Package debugui draws Dear ImGui windows over a running game: state
// inspection, timing, an event log and pause/step controls.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// Item holds a Dear ImGui render function drawn once per frame.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay draws its items in the order they were added. Call Render
// between the backend's BeginFrame and EndFrame.
type Overlay struct {
	items []Item
	input InputState
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

// Add appends a window to the overlay.
func (o *Overlay) Add(item Item) {
	o.items = append(o.items, item)
}

// Render updates the input state and draws every item.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.items {
		item.Render()
	}
}

// Input returns the capture state recorded by the last Render.
func (o *Overlay) Input() InputState {
	return o.input
}

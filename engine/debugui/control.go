package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
)

// Control pauses the game and steps it by single ticks or whole gravity
// intervals.
type Control struct {
	Paused bool
	// TicksToAdvance is how many ticks still run while paused.
	TicksToAdvance int
	// TicksAdvanced counts the ticks run for the current step.
	TicksAdvanced int
	stepSize      int
}

// NewControl returns a running control. gravityInterval sizes the "1 Row"
// step.
func NewControl(gravityInterval int) *Control {
	return &Control{stepSize: gravityInterval}
}

// ShouldTick reports whether the host should advance the game this frame
// and consumes one pending step when paused.
func (c *Control) ShouldTick() bool {
	if !c.Paused {
		return true
	}
	if c.TicksToAdvance <= 0 {
		return false
	}
	c.TicksAdvanced++
	if c.TicksAdvanced >= c.TicksToAdvance {
		c.TicksToAdvance = 0
		c.TicksAdvanced = 0
	}
	return true
}

// Step queues n ticks to run while paused.
func (c *Control) Step(n int) {
	c.TicksToAdvance = n
	c.TicksAdvanced = 0
}

func (c *Control) Resume() {
	c.Paused = false
	c.TicksToAdvance = 0
	c.TicksAdvanced = 0
}

// Render draws the control window.
func (c *Control) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(680, 420), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(250, 160), imgui.CondOnce)

	if !imgui.BeginV("Game Control", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if c.Paused {
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.2, 0.7, 0.2, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonHovered, imgui.NewVec4(0.3, 0.8, 0.3, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonActive, imgui.NewVec4(0.1, 0.6, 0.1, 1.0))
		if imgui.Button("Resume") {
			c.Resume()
		}
		imgui.PopStyleColor()
		imgui.PopStyleColor()
		imgui.PopStyleColor()

		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")

		if c.TicksToAdvance > 0 {
			progress := float32(c.TicksAdvanced) / float32(c.TicksToAdvance)
			imgui.ProgressBarV(progress, imgui.NewVec2(-1, 0), fmt.Sprintf("%d/%d ticks", c.TicksAdvanced, c.TicksToAdvance))
		}

		imgui.Separator()
		imgui.Text("Step Forward:")

		if imgui.Button("1 Tick") {
			c.Step(1)
		}
		imgui.SameLine()
		if imgui.Button("1 Row") {
			c.Step(c.stepSize)
		}
		imgui.SameLine()
		if imgui.Button("1 Second") {
			c.Step(60)
		}
	} else {
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.7, 0.2, 0.2, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonHovered, imgui.NewVec4(0.8, 0.3, 0.3, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonActive, imgui.NewVec4(0.6, 0.1, 0.1, 1.0))
		if imgui.Button("Pause") {
			c.Paused = true
		}
		imgui.PopStyleColor()
		imgui.PopStyleColor()
		imgui.PopStyleColor()

		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	}

	imgui.End()
}

package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/tetra/engine"
)

// PerformanceStats plots frame times and lists per-system timing.
type PerformanceStats struct {
	game          *engine.Game
	historyFrames int
	frameHistory  []float32
	plotSamples   []float32
	frameIndex    int
}

func NewPerformanceStats(game *engine.Game, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		game:          game,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		plotSamples:   make([]float32, historyFrames),
	}
}

// Record adds a frame duration in seconds to the history.
func (ps *PerformanceStats) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// Average returns the mean recorded frame time in milliseconds.
func (ps *PerformanceStats) Average() float32 {
	var avg float32
	for _, ft := range ps.frameHistory {
		avg += ft
	}
	return avg / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 380), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 320), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	// oldest sample first
	copy(ps.plotSamples, ps.frameHistory[ps.frameIndex:])
	copy(ps.plotSamples[ps.historyFrames-ps.frameIndex:], ps.frameHistory[:ps.frameIndex])

	imgui.Separator()
	if implot.BeginPlotV("Frame Time", imgui.NewVec2(-1, 150), 0) {
		implot.SetupAxesV("Frame", "ms", 0, implot.AxisFlagsAutoFit)
		implot.PlotLineFloatPtrInt("frame", &ps.plotSamples[0], int32(len(ps.plotSamples)))
		implot.EndPlot()
	}

	stats := ps.game.SchedulerStats()
	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) DeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}

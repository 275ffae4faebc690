package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/tetra/engine"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Games    int
	Seed     uint64
	Config   engine.Config

	// Results
	TotalTime     time.Duration
	Totals        engine.Stats
	GamesFinished int
	TickTime      Stats
	Systems       []engine.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// Stats tracks min, max and mean of a stream of durations.
type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Total time.Duration
	Count int64
}

func (s *Stats) Add(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Total += d
	s.Count++
}

// Merge folds other into s.
func (s *Stats) Merge(other Stats) {
	if other.Count == 0 {
		return
	}
	if s.Count == 0 || other.Min < s.Min {
		s.Min = other.Min
	}
	if other.Max > s.Max {
		s.Max = other.Max
	}
	s.Total += other.Total
	s.Count += other.Count
}

func (s Stats) Avg() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// SpawnRow is one line of the per-kind spawn table.
type SpawnRow struct {
	Kind  engine.Kind
	Count int
	Share float64
}

func (r *Report) SpawnRows() []SpawnRow {
	rows := make([]SpawnRow, 0, engine.KindCount)
	for _, k := range engine.Kinds {
		row := SpawnRow{Kind: k, Count: r.Totals.Spawned[k]}
		if r.Totals.Pieces > 0 {
			row.Share = 100 * float64(row.Count) / float64(r.Totals.Pieces)
		}
		rows = append(rows, row)
	}
	return rows
}

// TicksPerSecond is the tick rate across all games.
func (r *Report) TicksPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.Totals.Ticks) / r.TotalTime.Seconds()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetra Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Parallel Games:** {{.Games}}
- **Seed:** {{.Seed}}
- **Gravity / Input Interval:** {{.Config.GravityInterval}} / {{.Config.InputInterval}} ticks

## Play
- **Ticks:** {{.Totals.Ticks}} ({{printf "%.0f" .TicksPerSecond}}/s)
- **Games Finished:** {{.GamesFinished}}
- **Pieces:** {{.Totals.Pieces}}
- **Locks:** {{.Totals.Locks}}
- **Lines:** {{.Totals.Lines}} (singles {{.Totals.Singles}}, doubles {{.Totals.Doubles}}, triples {{.Totals.Triples}}, tetrises {{.Totals.Tetrises}})

## Spawns
{{range .SpawnRows}}- {{.Kind}}: {{.Count}} ({{printf "%.1f" .Share}}%)
{{end}}
## Tick Time
- **Avg:** {{.TickTime.Avg}}
- **Min:** {{.TickTime.Min}}
- **Max:** {{.TickTime.Max}}

## Systems
{{range .Systems}}- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}

// mergeSystems sums per-system timing into dst, which grows to match src
// on first use. Every game registers the same systems in the same order.
func mergeSystems(dst, src []engine.SystemStats) []engine.SystemStats {
	if dst == nil {
		dst = make([]engine.SystemStats, len(src))
		for i, s := range src {
			dst[i].Name = s.Name
		}
	}
	for i, s := range src {
		if s.ExecutionCount == 0 {
			continue
		}
		d := &dst[i]
		if d.ExecutionCount == 0 || s.MinDuration < d.MinDuration {
			d.MinDuration = s.MinDuration
		}
		d.MaxDuration = max(d.MaxDuration, s.MaxDuration)
		d.LastDuration = s.LastDuration
		d.ExecutionCount += s.ExecutionCount
		d.TotalDuration += s.TotalDuration
		d.AvgDuration = d.TotalDuration / time.Duration(d.ExecutionCount)
	}
	return dst
}

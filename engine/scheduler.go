package engine

import (
	"reflect"
	"time"
)

// SchedulerStats is a snapshot of the scheduler's timing.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats is the timing of one system. MinDuration is zero until the
// system has run.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// observe folds one run of d into s.
func (s *SystemStats) observe(d time.Duration) {
	if s.ExecutionCount == 0 || d < s.MinDuration {
		s.MinDuration = d
	}
	if d > s.MaxDuration {
		s.MaxDuration = d
	}
	s.ExecutionCount++
	s.LastDuration = d
	s.TotalDuration += d
	s.AvgDuration = s.TotalDuration / time.Duration(s.ExecutionCount)
}

type scheduled struct {
	system System
	stats  SystemStats
}

// Scheduler runs systems in registration order once per tick.
type Scheduler struct {
	entries []scheduled
}

func NewScheduler() *Scheduler {
	return &Scheduler{entries: make([]scheduled, 0, 2)}
}

// Register appends a system. Its stats are reported under the system's
// type name.
func (s *Scheduler) Register(system System) {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	s.entries = append(s.entries, scheduled{
		system: system,
		stats:  SystemStats{Name: t.Name()},
	})
}

// Once executes every registered system against frame.
func (s *Scheduler) Once(frame *TickFrame) {
	for i := range s.entries {
		e := &s.entries[i]
		start := time.Now()
		e.system.Execute(frame)
		e.stats.observe(time.Since(start))
	}
}

// Reset clears the collected timing but keeps the registered systems.
func (s *Scheduler) Reset() {
	for i := range s.entries {
		s.entries[i].stats = SystemStats{Name: s.entries[i].stats.Name}
	}
}

// Stats returns a copy of the timing collected since the last Reset.
func (s *Scheduler) Stats() *SchedulerStats {
	out := &SchedulerStats{
		SystemCount: len(s.entries),
		Systems:     make([]SystemStats, len(s.entries)),
	}
	for i, e := range s.entries {
		out.Systems[i] = e.stats
		out.TotalExecutions += e.stats.ExecutionCount
	}
	return out
}

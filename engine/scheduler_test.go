package engine_test

import (
	"testing"

	"github.com/plus3/tetra/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSystem struct {
	name string
	log  *[]string
	seen []uint64
}

func (s *recordingSystem) Execute(frame *engine.TickFrame) {
	*s.log = append(*s.log, s.name)
	s.seen = append(s.seen, frame.Tick)
}

type idleSystem struct{}

func (idleSystem) Execute(*engine.TickFrame) {}

func TestScheduler(t *testing.T) {
	t.Run("systems run in registration order", func(t *testing.T) {
		var log []string
		first := &recordingSystem{name: "first", log: &log}
		second := &recordingSystem{name: "second", log: &log}

		scheduler := engine.NewScheduler()
		scheduler.Register(first)
		scheduler.Register(second)

		scheduler.Once(&engine.TickFrame{Tick: 1})
		scheduler.Once(&engine.TickFrame{Tick: 2})

		assert.Equal(t, []string{"first", "second", "first", "second"}, log)
		assert.Equal(t, []uint64{1, 2}, first.seen)
		assert.Equal(t, []uint64{1, 2}, second.seen)
	})

	t.Run("stats", func(t *testing.T) {
		var log []string
		scheduler := engine.NewScheduler()
		scheduler.Register(&recordingSystem{name: "a", log: &log})
		scheduler.Register(idleSystem{})

		stats := scheduler.Stats()
		require.Equal(t, 2, stats.SystemCount)
		assert.Equal(t, "recordingSystem", stats.Systems[0].Name)
		assert.Equal(t, "idleSystem", stats.Systems[1].Name)
		assert.Zero(t, stats.Systems[0].MinDuration)
		assert.Zero(t, stats.TotalExecutions)

		for i := 0; i < 5; i++ {
			scheduler.Once(&engine.TickFrame{Tick: uint64(i + 1)})
		}

		stats = scheduler.Stats()
		assert.Equal(t, int64(10), stats.TotalExecutions)
		for _, s := range stats.Systems {
			assert.Equal(t, int64(5), s.ExecutionCount)
			assert.LessOrEqual(t, s.MinDuration, s.MaxDuration)
			assert.GreaterOrEqual(t, s.TotalDuration, s.MaxDuration)
		}

		scheduler.Reset()
		stats = scheduler.Stats()
		assert.Equal(t, 2, stats.SystemCount)
		assert.Zero(t, stats.TotalExecutions)
		assert.Equal(t, "recordingSystem", stats.Systems[0].Name)
	})
}

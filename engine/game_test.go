package engine_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/plus3/tetra/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGame deals I, J, L, S, Z, T, O over and over.
func newTestGame(t *testing.T, opts ...engine.Option) *engine.Game {
	t.Helper()
	opts = append([]engine.Option{engine.WithSource(engine.NewSequenceSource(engine.Kinds))}, opts...)
	return engine.NewGame(engine.DefaultConfig(), opts...)
}

func ticks(g *engine.Game, n int) {
	for i := 0; i < n; i++ {
		g.Tick()
	}
}

func activePiece(t *testing.T, g *engine.Game) engine.Piece {
	t.Helper()
	p, ok := g.Active()
	require.True(t, ok, "game has no active piece")
	return p
}

func TestNewGameSpawns(t *testing.T) {
	g := newTestGame(t)

	p := activePiece(t, g)
	assert.Equal(t, engine.SpawnPiece(engine.I), p)
	assert.Equal(t, engine.Falling, g.Phase())
	assert.Equal(t, uint64(0), g.Ticks())
	assert.Equal(t, []engine.Kind{engine.J, engine.L, engine.S, engine.Z, engine.T, engine.O}, g.Upcoming())
	assert.Equal(t, 1, g.Stats().Pieces)
	assert.Len(t, g.RenderBlocks(), 4)
}

func TestNewGamePanicsOnZeroInterval(t *testing.T) {
	require.Panics(t, func() {
		engine.NewGame(engine.Config{GravityInterval: 0, InputInterval: 4})
	})
	require.Panics(t, func() {
		engine.NewGame(engine.Config{GravityInterval: 16, InputInterval: 0})
	})
}

func TestGravityEvery16Ticks(t *testing.T) {
	g := newTestGame(t)

	ticks(g, 15)
	assert.Equal(t, 20, activePiece(t, g).Axis().Y)
	g.Tick()
	assert.Equal(t, 19, activePiece(t, g).Axis().Y)
	ticks(g, 15)
	assert.Equal(t, 19, activePiece(t, g).Axis().Y)
	g.Tick()
	assert.Equal(t, 18, activePiece(t, g).Axis().Y)
	assert.Equal(t, uint64(32), g.Ticks())
}

func TestInputWaitsForWindow(t *testing.T) {
	g := newTestGame(t)

	g.Input(engine.KeyLeft)
	ticks(g, 3)
	assert.Equal(t, 5, activePiece(t, g).Axis().X)
	assert.Equal(t, []engine.Key{engine.KeyLeft}, g.Pending())

	g.Tick()
	assert.Equal(t, 4, activePiece(t, g).Axis().X)
	assert.Empty(t, g.Pending())
}

func TestInputKeys(t *testing.T) {
	tests := []struct {
		key    engine.Key
		axis   engine.Point
		facing engine.Orientation
	}{
		{engine.KeyLeft, engine.Point{X: 3, Y: 10}, engine.FacingRight},
		{engine.KeyRight, engine.Point{X: 5, Y: 10}, engine.FacingRight},
		{engine.KeyDown, engine.Point{X: 4, Y: 9}, engine.FacingRight},
		{engine.KeyRotateCCW, engine.Point{X: 4, Y: 10}, engine.FacingUp},
		{engine.KeyRotateCW, engine.Point{X: 4, Y: 10}, engine.FacingDown},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			g := newTestGame(t)
			g.SetActive(engine.NewPiece(engine.T, engine.FacingRight, 4, 10))

			g.Input(tt.key)
			ticks(g, 4)

			p := activePiece(t, g)
			assert.Equal(t, tt.axis, p.Axis().Pos())
			assert.Equal(t, tt.facing, p.Orientation())
		})
	}
}

func TestInputDeduplicatedPerWindow(t *testing.T) {
	g := newTestGame(t)

	g.Input(engine.KeyLeft)
	g.Input(engine.KeyLeft)
	g.Input(engine.KeyRotateCW)
	g.Input(engine.KeyLeft)
	assert.Equal(t, []engine.Key{engine.KeyLeft, engine.KeyRotateCW}, g.Pending())

	ticks(g, 4)
	p := activePiece(t, g)
	assert.Equal(t, engine.FacingDown, p.Orientation())
	// left by one, then the bar's clockwise axis nudge from Right
	assert.Equal(t, engine.Point{X: 4, Y: 19}, p.Axis().Pos())
}

func TestInputIgnoresUnknownKeys(t *testing.T) {
	g := newTestGame(t)
	g.Input(engine.Key(42))
	assert.Empty(t, g.Pending())
}

func TestBlockedInputIsDiscarded(t *testing.T) {
	g := newTestGame(t)
	g.SetActive(engine.NewPiece(engine.I, engine.FacingRight, 2, 10))

	g.Input(engine.KeyLeft)
	ticks(g, 4)
	assert.Equal(t, 2, activePiece(t, g).Axis().X)
	assert.Empty(t, g.Pending())
}

func TestManualDownDoesNotLock(t *testing.T) {
	g := newTestGame(t)
	floor := engine.NewPiece(engine.O, engine.FacingRight, 0, 0)
	g.SetActive(floor)

	g.Input(engine.KeyDown)
	ticks(g, 4)
	assert.Equal(t, floor, activePiece(t, g))
	assert.Zero(t, g.Stats().Locks)
}

func TestGravityBeforeInput(t *testing.T) {
	g := newTestGame(t)
	g.SetActive(engine.NewPiece(engine.I, engine.FacingRight, 5, 0))

	ticks(g, 15)
	g.Input(engine.KeyLeft)
	g.Tick()

	// the bar locked where it stood and the key moved the next piece
	field := g.Field()
	for x := 3; x <= 6; x++ {
		c, _ := field.At(x, 0)
		assert.False(t, c.IsEmpty(), "col %d", x)
	}
	c, _ := field.At(2, 0)
	assert.True(t, c.IsEmpty())

	p := activePiece(t, g)
	assert.Equal(t, engine.J, p.Kind())
	assert.Equal(t, engine.Point{X: 3, Y: 20}, p.Axis().Pos())
}

func TestSingleLineClear(t *testing.T) {
	g := newTestGame(t)
	g.SetField(fillRows(0, 0, 9))
	g.SetActive(engine.NewPiece(engine.I, engine.FacingUp, 9, 3))

	ticks(g, 16)
	assert.Equal(t, engine.Point{X: 9, Y: 2}, activePiece(t, g).Axis().Pos())
	assert.Zero(t, g.Lines())

	ticks(g, 16)
	assert.Equal(t, 1, g.Lines())
	assert.Equal(t, 1, g.Stats().Singles())

	field := g.Field()
	want := []engine.Block{
		engine.NewBlock(engine.Cyan, 9, 0),
		engine.NewBlock(engine.Cyan, 9, 1),
		engine.NewBlock(engine.Cyan, 9, 2),
	}
	if diff := cmp.Diff(want, field.OccupiedBlocks()); diff != "" {
		t.Errorf("field after clear (-want +got):\n%s", diff)
	}
	assert.Equal(t, engine.J, activePiece(t, g).Kind())
}

func TestFourLineClear(t *testing.T) {
	g := newTestGame(t)
	g.SetField(fillRows(0, 3, 9))
	g.SetActive(engine.NewPiece(engine.I, engine.FacingDown, 9, 3))

	ticks(g, 47)
	assert.Zero(t, g.Lines())
	g.Tick()

	assert.Equal(t, 4, g.Lines())
	assert.Equal(t, 1, g.Stats().Tetrises())
	field := g.Field()
	assert.Empty(t, field.OccupiedBlocks())
	assert.Len(t, g.RenderBlocks(), 4)
}

func TestGameOverOnBlockedSpawn(t *testing.T) {
	g := newTestGame(t)
	g.SetField(fillRows(20, 20, 9))
	g.SetActive(engine.NewPiece(engine.O, engine.FacingRight, 0, 0))

	ticks(g, 15)
	assert.False(t, g.IsGameOver())
	g.Tick()

	require.True(t, g.IsGameOver())
	assert.Equal(t, engine.GameOver, g.Phase())
	_, ok := g.Active()
	assert.False(t, ok)

	before := g.Field()
	blocks := g.RenderBlocks()
	assert.Len(t, blocks, 9+4)

	g.Input(engine.KeyLeft)
	assert.Empty(t, g.Pending())
	ticks(g, 100)
	assert.Equal(t, uint64(16), g.Ticks())
	assert.Equal(t, before, g.Field())
	assert.Equal(t, blocks, g.RenderBlocks())
}

func TestEvents(t *testing.T) {
	g := newTestGame(t)
	var got []engine.Event
	g.Subscribe(func(ev engine.Event) {
		got = append(got, ev)
	})

	g.SetField(fillRows(0, 0, 9))
	bar := engine.NewPiece(engine.I, engine.FacingUp, 9, 3)
	g.SetActive(bar)

	// blocked by the wall, so no event
	g.Input(engine.KeyRight)
	ticks(g, 32)

	fallen := bar.Translated(engine.MoveDown)
	want := []engine.Event{
		{Kind: engine.EventFell, Tick: 16, Piece: fallen},
		{Kind: engine.EventLocked, Tick: 32, Piece: fallen},
		{Kind: engine.EventLinesCleared, Tick: 32, Lines: 1},
		{Kind: engine.EventSpawned, Tick: 32, Piece: engine.SpawnPiece(engine.J)},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(engine.Piece{})); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestEventsDeliveredAfterTick(t *testing.T) {
	g := newTestGame(t)
	var seenTicks []uint64
	g.Subscribe(func(ev engine.Event) {
		// listeners observe the finished tick
		seenTicks = append(seenTicks, g.Ticks())
		assert.Equal(t, ev.Tick, g.Ticks())
	})

	g.Input(engine.KeyRight)
	ticks(g, 16)
	assert.Equal(t, []uint64{4, 16}, seenTicks)
}

func TestGameOverEvent(t *testing.T) {
	g := newTestGame(t)
	var last engine.Event
	g.Subscribe(func(ev engine.Event) { last = ev })

	g.SetField(fillRows(20, 20, 9))
	g.SetActive(engine.NewPiece(engine.O, engine.FacingRight, 0, 0))
	ticks(g, 16)

	assert.Equal(t, engine.EventGameOver, last.Kind)
	assert.Equal(t, engine.J, last.Piece.Kind())
}

func TestListenerSeesFirstSpawn(t *testing.T) {
	var got []engine.Event
	g := newTestGame(t, engine.WithListener(func(ev engine.Event) {
		got = append(got, ev)
	}))

	require.Len(t, got, 1)
	assert.Equal(t, engine.EventSpawned, got[0].Kind)
	assert.Equal(t, uint64(0), got[0].Tick)
	assert.Equal(t, engine.I, got[0].Piece.Kind())

	g.Input(engine.KeyLeft)
	ticks(g, 4)
	require.Len(t, got, 2)
	assert.Equal(t, engine.EventMoved, got[1].Kind)
}

func TestRestartFromListener(t *testing.T) {
	g := newTestGame(t)
	var kinds []engine.EventKind
	g.Subscribe(func(ev engine.Event) {
		kinds = append(kinds, ev.Kind)
		if ev.Kind == engine.EventGameOver {
			g.Restart()
		}
	})

	g.SetField(fillRows(20, 20, 9))
	g.SetActive(engine.NewPiece(engine.O, engine.FacingRight, 0, 0))
	ticks(g, 16)

	// each event once, the restart's spawn after the game over
	assert.Equal(t, []engine.EventKind{engine.EventLocked, engine.EventGameOver, engine.EventSpawned}, kinds)
	assert.False(t, g.IsGameOver())
	assert.Equal(t, uint64(0), g.Ticks())
	assert.Equal(t, engine.L, activePiece(t, g).Kind())

	ticks(g, 16)
	assert.Equal(t, engine.EventFell, kinds[len(kinds)-1])
}

func TestRestart(t *testing.T) {
	g := newTestGame(t)
	var spawned []engine.Kind
	g.Subscribe(func(ev engine.Event) {
		if ev.Kind == engine.EventSpawned {
			spawned = append(spawned, ev.Piece.Kind())
		}
	})

	g.SetField(fillRows(20, 20, 9))
	g.SetActive(engine.NewPiece(engine.O, engine.FacingRight, 0, 0))
	g.Input(engine.KeyRight)
	ticks(g, 16)
	require.True(t, g.IsGameOver())

	g.Restart()

	assert.False(t, g.IsGameOver())
	assert.Equal(t, uint64(0), g.Ticks())
	assert.Zero(t, g.Lines())
	field := g.Field()
	assert.Empty(t, field.OccupiedBlocks())
	assert.Empty(t, g.Pending())

	// the bag carries on where it stopped
	assert.Equal(t, engine.L, activePiece(t, g).Kind())
	assert.Equal(t, []engine.Kind{engine.L}, spawned)
	assert.Equal(t, engine.Stats{Pieces: 1, Spawned: [engine.KindCount]int{engine.L: 1}}, g.Stats())

	g.Tick()
	assert.Equal(t, uint64(1), g.Ticks())
}

func TestStatsCountSpawns(t *testing.T) {
	g := newTestGame(t)
	g.SetActive(engine.NewPiece(engine.O, engine.FacingRight, 0, 0))
	ticks(g, 16)

	stats := g.Stats()
	assert.Equal(t, uint64(16), stats.Ticks)
	assert.Equal(t, 2, stats.Pieces)
	assert.Equal(t, 1, stats.Locks)
	assert.Equal(t, 1, stats.Spawned[engine.I])
	assert.Equal(t, 1, stats.Spawned[engine.J])

	var total engine.Stats
	total.Add(stats)
	total.Add(stats)
	assert.Equal(t, 4, total.Pieces)
	assert.Equal(t, 2, total.Spawned[engine.J])
}

func TestSchedulerStatsNameSystems(t *testing.T) {
	g := newTestGame(t)
	ticks(g, 8)

	stats := g.SchedulerStats()
	require.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, "GravitySystem", stats.Systems[0].Name)
	assert.Equal(t, "InputSystem", stats.Systems[1].Name)
	assert.Equal(t, int64(8), stats.Systems[0].ExecutionCount)
	assert.Equal(t, int64(16), stats.TotalExecutions)
}

func TestLoggerReceivesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := newTestGame(t, engine.WithLogger(logger))
	g.SetActive(engine.NewPiece(engine.O, engine.FacingRight, 0, 0))
	ticks(g, 16)

	assert.Contains(t, buf.String(), "piece locked")
	assert.Contains(t, buf.String(), "piece spawned")
}

func TestRunStopsOnCancel(t *testing.T) {
	g := newTestGame(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := g.Run(ctx, time.Millisecond)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Greater(t, g.Ticks(), uint64(0))
}

func TestRunReturnsOnGameOver(t *testing.T) {
	cfg := engine.Config{GravityInterval: 1, InputInterval: 1}
	g := engine.NewGame(cfg, engine.WithSource(engine.NewSequenceSource(engine.Kinds)))
	g.SetField(fillRows(20, 20, 9))
	g.SetActive(engine.NewPiece(engine.O, engine.FacingRight, 0, 0))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, g.Run(ctx, time.Millisecond))
	assert.True(t, g.IsGameOver())
	assert.Equal(t, uint64(1), g.Ticks())
}

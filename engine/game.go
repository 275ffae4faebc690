package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Phase is the state of the game's lifecycle.
type Phase uint8

const (
	Falling Phase = iota
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Falling:
		return "falling"
	case GameOver:
		return "game-over"
	}
	return fmt.Sprintf("Phase(%d)", p)
}

// Key is an abstract key the host delivers to the game.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyDown
	KeyRotateCCW
	KeyRotateCW
	keyCount
)

var keyNames = [keyCount]string{"left", "right", "down", "rotate-ccw", "rotate-cw"}

// Valid reports whether k is one of the defined keys.
func (k Key) Valid() bool {
	return k < keyCount
}

func (k Key) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Key(%d)", k)
	}
	return keyNames[k]
}

// Game is the falling-block state machine. It owns the field, the active
// piece and the randomizer. A Game is not safe for concurrent use.
type Game struct {
	cfg    Config
	logger *slog.Logger

	field  *Field
	active Piece
	bag    *Bag
	phase  Phase
	tick   uint64
	stats  Stats

	pending   []Key
	scheduler *Scheduler
	frame     TickFrame
	events    Events
	listeners []func(Event)
}

// NewGame creates a game and spawns its first piece. It panics if either
// interval in cfg is zero.
func NewGame(cfg Config, opts ...Option) *Game {
	if cfg.GravityInterval == 0 || cfg.InputInterval == 0 {
		panic(fmt.Sprintf("engine: invalid intervals gravity=%d input=%d", cfg.GravityInterval, cfg.InputInterval))
	}

	g := &Game{
		cfg:       cfg,
		logger:    slog.New(slog.DiscardHandler),
		field:     NewField(),
		pending:   make([]Key, 0, keyCount),
		scheduler: NewScheduler(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.bag == nil {
		g.bag = NewBag(NewRandSource(cfg.Seed))
	}

	g.scheduler.Register(&GravitySystem{Interval: cfg.GravityInterval})
	g.scheduler.Register(&InputSystem{Interval: cfg.InputInterval})
	g.frame = TickFrame{Events: &g.events, game: g}

	g.spawn(&g.frame)
	g.events.Flush(g.listeners)
	return g
}

// Config returns the configuration the game was created with.
func (g *Game) Config() Config {
	return g.cfg
}

// Subscribe registers fn to receive every event at the end of each tick.
func (g *Game) Subscribe(fn func(Event)) {
	g.listeners = append(g.listeners, fn)
}

// Tick advances the game by one tick. Gravity runs before input when both
// are due. Tick does nothing once the game is over.
func (g *Game) Tick() {
	if g.phase == GameOver {
		return
	}
	g.tick++
	g.stats.Ticks++
	g.frame.Tick = g.tick
	g.scheduler.Once(&g.frame)
	g.events.Flush(g.listeners)
}

// Input queues k for the next input window. Repeated keys within one
// window collapse to one. Unknown keys and keys delivered after game over
// are ignored.
func (g *Game) Input(k Key) {
	if !k.Valid() || g.phase == GameOver {
		return
	}
	for _, p := range g.pending {
		if p == k {
			return
		}
	}
	g.pending = append(g.pending, k)
}

// Run ticks the game every interval on the calling goroutine until ctx is
// done or the game ends. It returns ctx.Err() on cancellation and nil on
// game over.
func (g *Game) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			g.Tick()
			if g.phase == GameOver {
				return nil
			}
		}
	}
}

// Restart clears the field and counters and spawns a fresh piece from the
// same randomizer.
func (g *Game) Restart() {
	g.field = NewField()
	g.phase = Falling
	g.tick = 0
	g.stats = Stats{}
	g.pending = g.pending[:0]
	g.scheduler.Reset()

	g.frame.Tick = 0
	g.spawn(&g.frame)
	g.events.Flush(g.listeners)
	g.logger.Debug("game restarted")
}

// RenderBlocks returns the field's occupied blocks followed by the active
// piece's blocks.
func (g *Game) RenderBlocks() []Block {
	return g.AppendRenderBlocks(nil)
}

// AppendRenderBlocks is like RenderBlocks but appends to dst.
func (g *Game) AppendRenderBlocks(dst []Block) []Block {
	dst = g.field.AppendOccupiedBlocks(dst)
	if g.phase == Falling {
		b := g.active.Blocks()
		dst = append(dst, b[:]...)
	}
	return dst
}

func (g *Game) IsGameOver() bool {
	return g.phase == GameOver
}

func (g *Game) Phase() Phase {
	return g.phase
}

// Ticks returns the tick counter.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// Active returns the falling piece. ok is false after game over.
func (g *Game) Active() (p Piece, ok bool) {
	return g.active, g.phase == Falling
}

// Field returns a copy of the playfield.
func (g *Game) Field() Field {
	return *g.field
}

// Lines returns the number of rows cleared so far.
func (g *Game) Lines() int {
	return g.stats.Lines
}

// Upcoming returns the kinds left in the current bag, next first.
func (g *Game) Upcoming() []Kind {
	return g.bag.Remaining()
}

func (g *Game) Stats() Stats {
	return g.stats
}

// SchedulerStats returns timing for the gravity and input systems.
func (g *Game) SchedulerStats() *SchedulerStats {
	return g.scheduler.Stats()
}

func (g *Game) fall(frame *TickFrame) {
	candidate := g.active.DryTranslate(MoveDown)
	if g.field.IsVacant(candidate[:]) {
		g.active = g.active.Translated(MoveDown)
		frame.Events.Record(Event{Kind: EventFell, Tick: frame.Tick, Piece: g.active})
		return
	}
	g.lockAndAdvance(frame)
}

func (g *Game) lockAndAdvance(frame *TickFrame) {
	blocks := g.active.Blocks()
	g.field.Fix(blocks[:])
	g.stats.Locks++
	frame.Events.Record(Event{Kind: EventLocked, Tick: frame.Tick, Piece: g.active})
	g.logger.Debug("piece locked", "tick", frame.Tick, "piece", g.active)

	if n := g.field.ClearFullRows(); n > 0 {
		g.stats.Lines += n
		g.stats.Clears[n]++
		frame.Events.Record(Event{Kind: EventLinesCleared, Tick: frame.Tick, Lines: n})
		g.logger.Debug("rows cleared", "tick", frame.Tick, "rows", n, "total", g.stats.Lines)
	}

	g.spawn(frame)
}

func (g *Game) spawn(frame *TickFrame) {
	next := SpawnPiece(g.bag.Next())
	blocks := next.Blocks()
	if !g.field.IsVacant(blocks[:]) {
		g.phase = GameOver
		g.pending = g.pending[:0]
		frame.Events.Record(Event{Kind: EventGameOver, Tick: frame.Tick, Piece: next})
		g.logger.Debug("game over", "tick", frame.Tick, "piece", next, "lines", g.stats.Lines)
		return
	}

	g.active = next
	g.stats.Pieces++
	g.stats.Spawned[next.Kind()]++
	frame.Events.Record(Event{Kind: EventSpawned, Tick: frame.Tick, Piece: next})
	g.logger.Debug("piece spawned", "tick", frame.Tick, "kind", next.Kind())
}

func (g *Game) apply(frame *TickFrame, k Key) {
	switch k {
	case KeyLeft:
		g.tryTranslate(frame, MoveLeft)
	case KeyRight:
		g.tryTranslate(frame, MoveRight)
	case KeyDown:
		g.tryTranslate(frame, MoveDown)
	case KeyRotateCCW:
		g.tryRotate(frame, RotateLeft)
	case KeyRotateCW:
		g.tryRotate(frame, RotateRight)
	}
}

func (g *Game) tryTranslate(frame *TickFrame, d MoveDirection) bool {
	candidate := g.active.DryTranslate(d)
	if !g.field.IsVacant(candidate[:]) {
		return false
	}
	g.active = g.active.Translated(d)
	frame.Events.Record(Event{Kind: EventMoved, Tick: frame.Tick, Piece: g.active})
	return true
}

func (g *Game) tryRotate(frame *TickFrame, r RotateDirection) bool {
	candidate := g.active.DryRotate(r)
	if !g.field.IsVacant(candidate[:]) {
		return false
	}
	g.active = g.active.Rotated(r)
	frame.Events.Record(Event{Kind: EventRotated, Tick: frame.Tick, Piece: g.active})
	return true
}

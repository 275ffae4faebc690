package engine_test

import (
	"fmt"
	"strings"

	"github.com/plus3/tetra/engine"
)

func ExampleGame() {
	game := engine.NewGame(engine.DefaultConfig(),
		engine.WithSource(engine.NewSequenceSource(engine.Kinds)))

	game.Subscribe(func(ev engine.Event) {
		if ev.Kind == engine.EventLocked || ev.Kind == engine.EventSpawned {
			fmt.Println(ev)
		}
	})

	// hold Down until the first piece locks
	for game.Stats().Locks == 0 {
		game.Input(engine.KeyDown)
		game.Tick()
	}

	field := game.Field()
	rows := strings.Split(field.String(), "\n")
	fmt.Println(rows[len(rows)-1])

	// Output:
	// tick 80: locked I facing right at (5,0)
	// tick 80: spawned J facing right at (4,20)
	// ...IIII...
}

func ExampleParseField() {
	field, err := engine.ParseField(`
		..........
		IIIIIIIII.
	`)
	if err != nil {
		panic(err)
	}

	bar := engine.NewPiece(engine.I, engine.FacingDown, 9, 1).Blocks()
	fmt.Println(field.IsVacant(bar[:]))
	field.Fix(bar[:])
	fmt.Println(field.ClearFullRows())
	fmt.Println(len(field.OccupiedBlocks()))

	// Output:
	// true
	// 1
	// 3
}

func ExampleBag() {
	bag := engine.NewBag(engine.NewSequenceSource(
		[engine.KindCount]engine.Kind{engine.T, engine.S, engine.Z, engine.O, engine.I, engine.L, engine.J},
	))

	for i := 0; i < 3; i++ {
		fmt.Print(bag.Next(), " ")
	}
	fmt.Println(bag.Remaining())

	// Output:
	// T S Z [O I L J]
}

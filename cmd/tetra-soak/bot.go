package main

import (
	"math/rand/v2"

	"github.com/plus3/tetra/engine"
)

var botKeys = [...]engine.Key{
	engine.KeyLeft,
	engine.KeyRight,
	engine.KeyDown,
	engine.KeyRotateCCW,
	engine.KeyRotateCW,
}

// Bot presses random keys. Idle is the chance it presses nothing on a
// given tick.
type Bot struct {
	rng  *rand.Rand
	Idle float64
}

func NewBot(seed uint64) *Bot {
	return &Bot{
		rng:  rand.New(rand.NewPCG(seed, seed+1)),
		Idle: 0.5,
	}
}

// Press picks this tick's key. ok is false when the bot stays idle.
func (b *Bot) Press() (k engine.Key, ok bool) {
	if b.rng.Float64() < b.Idle {
		return 0, false
	}
	return botKeys[b.rng.IntN(len(botKeys))], true
}

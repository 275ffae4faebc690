package input

import (
	"fmt"

	"github.com/kamstrup/intmap"
	"github.com/plus3/tetra/engine"
)

type binding[K intmap.IntKey] struct {
	host   K
	key    engine.Key
	repeat bool
}

// Controller maps host keys to engine keys. Bindings marked repeat fire
// while held, after the repeater's delay; the rest fire once per press.
type Controller[K intmap.IntKey] struct {
	bindings []binding[K]
	bound    *intmap.Map[K, int]
	rep      *Repeater[K]
}

// NewController returns a controller whose repeating keys wait delay
// frames before auto-repeat starts.
func NewController[K intmap.IntKey](delay int) *Controller[K] {
	return &Controller[K]{
		bound: intmap.New[K, int](8),
		rep:   NewRepeater[K](delay),
	}
}

// Bind maps host to k. It panics if host is already bound.
func (c *Controller[K]) Bind(host K, k engine.Key, repeat bool) {
	if i, ok := c.bound.Get(host); ok {
		panic(fmt.Sprintf("input: host key %d already bound to %s", host, c.bindings[i].key))
	}
	c.bound.Put(host, len(c.bindings))
	c.bindings = append(c.bindings, binding[K]{host: host, key: k, repeat: repeat})
}

// Lookup returns the engine key bound to host.
func (c *Controller[K]) Lookup(host K) (engine.Key, bool) {
	i, ok := c.bound.Get(host)
	if !ok {
		return 0, false
	}
	return c.bindings[i].key, true
}

// Poll samples every bound key with isDown and passes the keys that fire
// this frame to emit, in binding order. Call it once per frame.
func (c *Controller[K]) Poll(isDown func(K) bool, emit func(engine.Key)) {
	for _, b := range c.bindings {
		fire := c.rep.Update(b.host, isDown(b.host))
		if !b.repeat {
			fire = c.rep.Held(b.host) == 1
		}
		if fire {
			emit(b.key)
		}
	}
}

// Reset forgets held keys, so a key still down counts as a new press.
func (c *Controller[K]) Reset() {
	c.rep.Reset()
}

// Package input turns polled host key state into engine keys.
package input

import "github.com/kamstrup/intmap"

// Repeater counts how many consecutive frames each key has been held and
// decides when a held key fires again.
type Repeater[K intmap.IntKey] struct {
	// Delay is the number of held frames after the first press before the
	// key starts repeating.
	Delay int
	held  *intmap.Map[K, int]
}

// NewRepeater returns a repeater that fires on the first frame of a press
// and on every frame once the key has been held longer than delay.
func NewRepeater[K intmap.IntKey](delay int) *Repeater[K] {
	return &Repeater[K]{
		Delay: delay,
		held:  intmap.New[K, int](16),
	}
}

// Update records the state of k for this frame and reports whether it
// fires.
func (r *Repeater[K]) Update(k K, down bool) bool {
	if !down {
		r.held.Del(k)
		return false
	}
	n, _ := r.held.Get(k)
	n++
	r.held.Put(k, n)
	return n == 1 || n > r.Delay
}

// Held returns how many consecutive frames k has been down.
func (r *Repeater[K]) Held(k K) int {
	n, _ := r.held.Get(k)
	return n
}

// Reset forgets every held key.
func (r *Repeater[K]) Reset() {
	r.held.Clear()
}

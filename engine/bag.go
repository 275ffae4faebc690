package engine

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// PermutationSource supplies orderings of the seven kinds for a Bag. Every
// value returned must contain each kind exactly once.
type PermutationSource interface {
	Permutation() [KindCount]Kind
}

// PermutationFunc adapts a function to a PermutationSource.
type PermutationFunc func() [KindCount]Kind

func (f PermutationFunc) Permutation() [KindCount]Kind {
	return f()
}

// RandSource shuffles the kinds with a PCG generator.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource returns a source seeded with seed. A zero seed uses the
// current time.
func NewRandSource(seed uint64) *RandSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *RandSource) Permutation() [KindCount]Kind {
	perm := Kinds
	s.rng.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}

// SequenceSource replays a fixed list of permutations, wrapping around at
// the end. It makes piece order deterministic for tests and replays.
type SequenceSource struct {
	perms [][KindCount]Kind
	next  int
}

// NewSequenceSource returns a source cycling through perms. It panics if
// perms is empty or any entry is not a permutation of the seven kinds.
func NewSequenceSource(perms ...[KindCount]Kind) *SequenceSource {
	if len(perms) == 0 {
		panic("engine: sequence source needs at least one permutation")
	}
	for _, p := range perms {
		if !isPermutation(p) {
			panic(fmt.Sprintf("engine: %v is not a permutation of the seven kinds", p))
		}
	}
	return &SequenceSource{perms: perms}
}

func (s *SequenceSource) Permutation() [KindCount]Kind {
	p := s.perms[s.next]
	s.next = (s.next + 1) % len(s.perms)
	return p
}

func isPermutation(p [KindCount]Kind) bool {
	var seen [KindCount]bool
	for _, k := range p {
		if !k.Valid() || seen[k] {
			return false
		}
		seen[k] = true
	}
	return true
}

// Bag is the seven-bag randomizer: it deals each kind once per permutation
// and draws a fresh permutation when it runs dry.
type Bag struct {
	src     PermutationSource
	buf     [KindCount]Kind
	pending []Kind
	dealt   uint64
}

// NewBag returns an empty bag that refills from src.
func NewBag(src PermutationSource) *Bag {
	if src == nil {
		panic("engine: bag needs a permutation source")
	}
	return &Bag{src: src}
}

// Next removes and returns the next kind, refilling the bag first if it is
// empty. It panics if the source hands back something other than a
// permutation.
func (b *Bag) Next() Kind {
	if len(b.pending) == 0 {
		b.refill()
	}
	k := b.pending[0]
	b.pending = b.pending[1:]
	b.dealt++
	return k
}

func (b *Bag) refill() {
	perm := b.src.Permutation()
	if !isPermutation(perm) {
		panic(fmt.Sprintf("engine: permutation source returned %v", perm))
	}
	b.buf = perm
	b.pending = b.buf[:]
}

// Remaining returns the kinds still in the current bag, in draw order.
func (b *Bag) Remaining() []Kind {
	out := make([]Kind, len(b.pending))
	copy(out, b.pending)
	return out
}

// Dealt returns how many kinds the bag has handed out.
func (b *Bag) Dealt() uint64 {
	return b.dealt
}

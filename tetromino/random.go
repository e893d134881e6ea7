package tetromino

import (
	"fmt"
	"math/rand/v2"
)

// RandomKind draws a kind uniformly from the seven. A nil r uses the global
// source.
func RandomKind(r *rand.Rand) Kind {
	if r == nil {
		return Kind(rand.IntN(KindCount))
	}
	return Kind(r.IntN(KindCount))
}

// Randomizer produces the next kind to spawn.
type Randomizer interface {
	Next() Kind
}

// Uniform is a Randomizer backed by RandomKind. It keeps no state between
// draws beyond the random source.
type Uniform struct {
	Rand *rand.Rand
}

// Next draws a kind uniformly.
func (u Uniform) Next() Kind {
	return RandomKind(u.Rand)
}

// Bag deals all seven kinds in a shuffled order before reshuffling.
type Bag struct {
	rand    *rand.Rand
	pending []Kind
}

// NewBag returns an empty bag that fills on the first draw. A nil r uses the
// global source.
func NewBag(r *rand.Rand) *Bag {
	return &Bag{rand: r}
}

// Next deals the next kind, reshuffling once all seven have been dealt.
func (b *Bag) Next() Kind {
	if len(b.pending) == 0 {
		b.refill()
	}
	next := b.pending[0]
	b.pending = b.pending[1:]
	return next
}

// Remaining returns how many kinds are left before the next refill.
func (b *Bag) Remaining() int {
	return len(b.pending)
}

func (b *Bag) refill() {
	bag := make([]Kind, KindCount)
	copy(bag, Kinds[:])
	swap := func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	}
	if b.rand == nil {
		rand.Shuffle(len(bag), swap)
	} else {
		b.rand.Shuffle(len(bag), swap)
	}
	b.pending = bag
}

// NewRandomizer builds a randomizer by name: "uniform" or "bag".
func NewRandomizer(name string, r *rand.Rand) (Randomizer, error) {
	switch name {
	case "", "uniform":
		return Uniform{Rand: r}, nil
	case "bag":
		return NewBag(r), nil
	default:
		return nil, fmt.Errorf("unknown randomizer %q", name)
	}
}

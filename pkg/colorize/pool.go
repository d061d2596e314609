package colorize

import (
	"math/rand/v2"
	"time"

	"github.com/drawy/drawy/pkg/palette"
)

// Shuffler reorders tags in place.
type Shuffler func(tags []palette.Tag)

// NoShuffle keeps palette order, so draws follow the palette.
func NoShuffle([]palette.Tag) {}

// NewRandomShuffler returns a Shuffler driven by a PCG generator. A zero
// seed is replaced by the current time.
func NewRandomShuffler(seed uint64) Shuffler {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return func(tags []palette.Tag) {
		rng.Shuffle(len(tags), func(i, j int) {
			tags[i], tags[j] = tags[j], tags[i]
		})
	}
}

// Pool hands out tags without repeating one until every palette entry has
// been issued, then refills and reshuffles.
type Pool struct {
	palette   palette.Palette
	available []palette.Tag
	shuffle   Shuffler
	refills   int
}

// NewPool creates a shuffled pool over p. p must not be empty.
func NewPool(p palette.Palette, shuffle Shuffler) *Pool {
	if shuffle == nil {
		shuffle = NoShuffle
	}
	pool := &Pool{palette: p.Clone(), shuffle: shuffle}
	pool.fill()
	return pool
}

func (p *Pool) fill() {
	p.available = append(p.available[:0], p.palette...)
	p.shuffle(p.available)
}

// Draw returns the next tag.
func (p *Pool) Draw() palette.Tag {
	if len(p.available) == 0 {
		p.fill()
		p.refills++
	}
	t := p.available[0]
	p.available = p.available[1:]
	return t
}

// Remaining returns how many tags are left in the current cycle.
func (p *Pool) Remaining() int {
	return len(p.available)
}

// Refills returns how many times the pool has been refilled.
func (p *Pool) Refills() int {
	return p.refills
}

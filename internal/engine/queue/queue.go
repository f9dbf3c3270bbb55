// Package queue implements the piece queue randomizers: the guideline
// 7-bag and a chaotic uniform draw. A queue is the shared buffering
// machinery plus one fill strategy; fill is the only thing variants
// supply.
package queue

import (
	cryptorand "crypto/rand"
	"fmt"
	"hash/fnv"
	"math/rand"

	"github.com/g3ner1c/tetris/internal/piece"
)

// defaultWindow is the lookahead size before the game derives one from
// its ruleset.
const defaultWindow = 4

// fillFunc appends at least one kind to the buffer. A fill that does not
// grow the buffer is a fatal programming error.
type fillFunc func(rng *rand.Rand, pieces []piece.Kind) []piece.Kind

// Queue is an infinite lazy sequence of piece kinds backed by a seeded
// PRNG. The PRNG is owned by the queue and never reseeded.
type Queue struct {
	seed   []byte
	rng    *rand.Rand
	pieces []piece.Kind
	window int
	fill   fillFunc
}

// newQueue seeds the PRNG from the seed bytes (generating a random seed
// when none is given) and buffers an initial window. The seed is hashed
// with FNV-1a into a math/rand source; together with Fisher-Yates
// shuffling via rand.Shuffle this pins the deterministic draw sequence.
func newQueue(seed []byte, pieces []piece.Kind, fill fillFunc) *Queue {
	if len(seed) == 0 {
		seed = make([]byte, 16)
		if _, err := cryptorand.Read(seed); err != nil {
			panic(fmt.Sprintf("queue: cannot generate seed: %v", err))
		}
	}

	h := fnv.New64a()
	h.Write(seed)

	q := &Queue{
		seed:   seed,
		rng:    rand.New(rand.NewSource(int64(h.Sum64()))),
		pieces: append([]piece.Kind(nil), pieces...),
		window: defaultWindow,
		fill:   fill,
	}
	q.topUp()
	return q
}

// topUp refills until the buffer exceeds the window, failing fast on a
// fill strategy that does not grow the buffer.
func (q *Queue) topUp() {
	for len(q.pieces) <= q.window {
		before := len(q.pieces)
		q.pieces = q.fill(q.rng, q.pieces)
		if len(q.pieces) <= before {
			panic("queue: fill did not grow the piece buffer")
		}
	}
}

// Pop removes and returns the head of the queue, keeping the lookahead
// window full.
func (q *Queue) Pop() piece.Kind {
	q.topUp()
	head := q.pieces[0]
	q.pieces = q.pieces[1:]
	return head
}

// Preview returns the upcoming kinds, at most one window's worth.
func (q *Queue) Preview() []piece.Kind {
	n := q.window
	if n > len(q.pieces) {
		n = len(q.pieces)
	}
	return append([]piece.Kind(nil), q.pieces[:n]...)
}

// SetWindow changes the lookahead window size and tops the buffer up.
func (q *Queue) SetWindow(n int) {
	if n < 1 {
		n = 1
	}
	q.window = n
	q.topUp()
}

// Seed returns the seed bytes in use, generated or given.
func (q *Queue) Seed() []byte {
	return q.seed
}

// NewSevenBag builds the guideline randomizer: a shuffled permutation of
// the seven kinds is drawn without replacement and reshuffled when
// exhausted, bounding the gap between repeats to 12 draws.
func NewSevenBag(seed []byte, pieces []piece.Kind) *Queue {
	return newQueue(seed, pieces, func(rng *rand.Rand, buf []piece.Kind) []piece.Kind {
		bag := piece.Kinds
		rng.Shuffle(len(bag), func(i, j int) {
			bag[i], bag[j] = bag[j], bag[i]
		})
		return append(buf, bag[:]...)
	})
}

// NewChaotic builds a randomizer drawing uniformly with replacement, with
// no repeat protection. Used for testing and alternate rule presets.
func NewChaotic(seed []byte, pieces []piece.Kind) *Queue {
	return newQueue(seed, pieces, func(rng *rand.Rand, buf []piece.Kind) []piece.Kind {
		return append(buf, piece.Kinds[rng.Intn(len(piece.Kinds))])
	})
}

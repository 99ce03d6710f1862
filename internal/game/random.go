package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// RNG is the run's single source of randomness. Every draw goes through it
// in a fixed order so a seed and a list of choices reproduce a run.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

func NewRNG(seed int64) *RNG {
	return &RNG{seed: seed, src: seededRNG(seed)}
}

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// NewSeed returns a high-entropy seed for runs started without --seed.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]) >> 1)
	if seed == 0 {
		seed = 1
	}
	return seed, nil
}

func (r *RNG) Seed() int64 {
	return r.seed
}

// Position is the number of draws made so far.
func (r *RNG) Position() int64 {
	return r.pos
}

// IntN returns a value in [0,n). n must be positive.
func (r *RNG) IntN(n int) int {
	r.pos++
	return r.src.IntN(n)
}

// WeightedIndex picks an index with probability proportional to its weight.
// Non-positive weights count as 1.
func (r *RNG) WeightedIndex(weights []int) int {
	total := 0
	for _, w := range weights {
		total += max(w, 1)
	}
	roll := r.IntN(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += max(w, 1)
		if roll < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

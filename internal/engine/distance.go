package engine

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// DistancePolicy decides how many miles separate the party from the next
// location. Implementations return a positive distance no greater than the
// remaining trail budget they are given.
type DistancePolicy interface {
	NextDistance(budget int) int
}

// FixedDistance always produces the same leg length, clamped to the budget.
// Used by tests and by trails that author their own leg lengths.
type FixedDistance struct {
	Miles int
}

func (p FixedDistance) NextDistance(budget int) int {
	d := p.Miles
	if d < 1 {
		d = 1
	}
	if d > budget {
		d = budget
	}
	return d
}

// SeededDistance draws leg lengths from a seeded PRNG so a run replays
// identically for the same seed.
type SeededDistance struct {
	Min int
	Max int
	rng *rand.Rand
}

// NewSeededDistance returns a policy producing legs in [min, max] miles.
func NewSeededDistance(seed int64, min, max int) *SeededDistance {
	return &SeededDistance{Min: min, Max: max, rng: seededRNG(seed)}
}

// DefaultDistance is the standard policy for the builtin trail.
func DefaultDistance(seed int64) *SeededDistance {
	return NewSeededDistance(seed, 90, 180)
}

func (p *SeededDistance) NextDistance(budget int) int {
	lo, hi := p.Min, p.Max
	if lo < 1 {
		lo = 1
	}
	if hi > budget {
		hi = budget
	}
	if hi < lo {
		lo = hi
	}
	if lo < 1 {
		return 1
	}
	return lo + p.rng.IntN(hi-lo+1)
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

package snake

import (
	"math/rand"
	"time"
)

// Randomizer produces uniformly distributed integers in [min, max].
type Randomizer interface {
	IntInRange(min, max int) int
}

// RandSource is a Randomizer seeded once for the lifetime of a game.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a source from seed. A zero seed uses the current time.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// IntInRange returns a uniform integer in the inclusive range [min, max].
// Swapped bounds are accepted.
func (r *RandSource) IntInRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.rng.Intn(max-min+1)
}

// NextSeed draws a seed for a follow-up game.
func (r *RandSource) NextSeed() int64 {
	return r.rng.Int63()
}

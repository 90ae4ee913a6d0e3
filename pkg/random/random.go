package random

import (
	"math/rand"
	"time"
)

// New creates an independent random source. A zero seed produces a
// time-seeded source; any other seed gives a reproducible sequence,
// which is what tests use to pin down jittered output.
//
// Each generation call should use its own source so concurrent callers
// never share mutable RNG state.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// IntInRange draws a uniform integer from the closed range [min, max].
func IntInRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

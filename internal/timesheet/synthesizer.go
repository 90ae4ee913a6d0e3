package timesheet

import (
	"math/rand"

	"github.com/username/jalali-timesheet/pkg/random"
)

// Synthesizer produces jittered entry/exit times around a nominal shift,
// simulating the natural minute-level variance of a real badge reader.
//
// It holds its own random source: construct one per generation call so
// concurrent generations never share RNG state.
type Synthesizer struct {
	maxBefore int // upper jitter bound before nominal entry, minutes
	maxAfter  int // upper jitter bound after nominal exit, minutes
	rng       *rand.Rand
}

// NewSynthesizer creates a Synthesizer with the given jitter bounds.
func NewSynthesizer(maxBefore, maxAfter int, rng *rand.Rand) *Synthesizer {
	return &Synthesizer{
		maxBefore: maxBefore,
		maxAfter:  maxAfter,
		rng:       rng,
	}
}

// Synthesize draws independent uniform offsets from [0, maxBefore] and
// [0, maxAfter] and applies them to the nominal entry/exit, both given in
// minutes since midnight. Entry moves earlier, exit moves later, so the
// jittered interval always contains the nominal one. Config validation
// guarantees neither side can cross midnight.
func (s *Synthesizer) Synthesize(nominalEntry, nominalExit int) (entry, exit int) {
	entry = nominalEntry - random.IntInRange(s.rng, 0, s.maxBefore)
	exit = nominalExit + random.IntInRange(s.rng, 0, s.maxAfter)
	return entry, exit
}

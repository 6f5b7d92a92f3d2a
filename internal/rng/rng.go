// Package rng provides the deterministic random streams underlying all
// procedural generation. Every stochastic subsystem (world generation, goal
// generation, faction seeding) gets its own Stream keyed by seed plus a fixed
// offset so the subsystems never contaminate each other's sequences.
package rng

// Stream is a linear-congruential generator. Two streams constructed with the
// same seed produce identical sequences for identical call sequences; this is
// the foundation of every determinism guarantee in the engine.
type Stream struct {
	state int64
}

// LCG parameters — the classic 233280 generator. Small modulus, but the
// quality is sufficient for world flavor and the period is well beyond any
// single generation pass.
const (
	lcgMul = 9301
	lcgAdd = 49297
	lcgMod = 233280
)

// New creates a stream from a seed. Negative seeds are folded into the
// modulus range so New(-1) is still deterministic.
func New(seed int64) *Stream {
	return &Stream{state: ((seed % lcgMod) + lcgMod) % lcgMod}
}

// Float advances the stream and returns a value in [0, 1).
func (s *Stream) Float() float64 {
	s.state = (s.state*lcgMul + lcgAdd) % lcgMod
	return float64(s.state) / float64(lcgMod)
}

// IntRange returns an integer in [min, max] inclusive.
func (s *Stream) IntRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + int(s.Float()*float64(max-min+1))
}

// Chance advances the stream once and reports whether the roll landed under p.
func (s *Stream) Chance(p float64) bool {
	return s.Float() < p
}

// Choice selects a uniformly random element. Calling it with an empty slice
// is a programming error and panics; call sites must guarantee candidates.
func Choice[T any](s *Stream, items []T) T {
	if len(items) == 0 {
		panic("rng: Choice on empty slice")
	}
	return items[s.IntRange(0, len(items)-1)]
}

// Shuffle permutes items in place (Fisher-Yates).
func Shuffle[T any](s *Stream, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := s.IntRange(0, i)
		items[i], items[j] = items[j], items[i]
	}
}

package shared

import "math/rand"

// RandomSource is an abstraction over the simulation's entropy source.
// All randomness (dice rolls, trend variance, reason selection) flows through
// a single RandomSource so that a caller seeding it once gets a fully
// reproducible sequence of months.
type RandomSource interface {
	// IntN returns a uniformly distributed int in [0, n). Panics if n <= 0.
	IntN(n int) int

	// Float64 returns a uniformly distributed float64 in [0, 1).
	Float64() float64
}

// SeededSource implements RandomSource backed by a math/rand generator
// owned by the simulation rather than the global one.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource creates a RandomSource seeded with the given value.
// Two sources built from the same seed produce identical draw sequences.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

// IntN returns a uniformly distributed int in [0, n)
func (s *SeededSource) IntN(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a uniformly distributed float64 in [0, 1)
func (s *SeededSource) Float64() float64 {
	return s.rng.Float64()
}

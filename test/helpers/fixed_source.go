package helpers

// FixedSource is a scripted RandomSource for tests. IntN draws from Ints
// and Float64 from Floats in order, so a test can pin every die roll and
// variance term. Exhausted scripts repeat their last value.
type FixedSource struct {
	Ints   []int
	Floats []float64

	intIdx   int
	floatIdx int
}

// IntN returns the next scripted int, reduced into [0, n)
func (s *FixedSource) IntN(n int) int {
	v := 0
	if len(s.Ints) > 0 {
		if s.intIdx >= len(s.Ints) {
			s.intIdx = len(s.Ints) - 1
		}
		v = s.Ints[s.intIdx]
		s.intIdx++
	}
	if v < 0 || v >= n {
		v = v % n
		if v < 0 {
			v += n
		}
	}
	return v
}

// Float64 returns the next scripted float
func (s *FixedSource) Float64() float64 {
	v := 0.5
	if len(s.Floats) > 0 {
		if s.floatIdx >= len(s.Floats) {
			s.floatIdx = len(s.Floats) - 1
		}
		v = s.Floats[s.floatIdx]
		s.floatIdx++
	}
	return v
}

// NeutralVariance is the Float64 value producing a zero variance term
// (uniform(-0.1, +0.1) crosses zero at 0.5).
const NeutralVariance = 0.5

// internal/utils/prng.go
package utils

// PRNGService is the deterministic generator every randomized decision of a run
// goes through. It is a 32-bit linear congruential generator, so a fixed seed
// reproduces a run exactly.
type PRNGService struct {
	seed uint32
}

// NewPRNGService creates a generator with an explicit seed.
func NewPRNGService(seed uint32) *PRNGService {
	return &PRNGService{seed: seed}
}

// Seed returns the current internal state.
func (s *PRNGService) Seed() uint32 {
	return s.seed
}

// Float64 advances the generator and returns a value in [0, 1].
func (s *PRNGService) Float64() float64 {
	s.seed = s.seed*1664525 + 1013904223
	return float64(s.seed) / 0xffffffff
}

// Intn returns a value in [0, n). n must be positive.
func (s *PRNGService) Intn(n int) int {
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Range returns a value in [min, max].
func (s *PRNGService) Range(min, max float64) float64 {
	return min + s.Float64()*(max-min)
}

// Sign returns -1 or 1 with equal probability.
func (s *PRNGService) Sign() float64 {
	if s.Float64() < 0.5 {
		return -1
	}
	return 1
}

// ChooseCumulative walks chances in order, accumulating them, and returns the
// index of the first entry whose running total exceeds a single roll. It
// returns -1 when the roll lands past the sum of all chances.
func (s *PRNGService) ChooseCumulative(chances []float64) int {
	roll := s.Float64()
	acc := 0.0
	for i, c := range chances {
		acc += c
		if roll < acc {
			return i
		}
	}
	return -1
}

package synth

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Source is the randomness and clock threaded through value generation
type Source struct {
	*gofakeit.Faker
	Now func() time.Time
}

// NewSource creates a source seeded with seed. A zero seed draws a random one.
func NewSource(seed uint64) *Source {
	return &Source{
		Faker: gofakeit.New(seed),
		Now:   time.Now,
	}
}

// Pick returns a uniformly chosen index in [0, n)
func (s *Source) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return s.IntRange(0, n-1)
}

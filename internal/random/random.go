package random

import (
	"math/rand"
	"time"
)

// Source provides the randomness the game needs: shuffling answers for
// anonymity and picking lexicon entries.
type Source struct {
	random *rand.Rand
}

// Config for the randomness source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new randomness source
func New(cfg *Config) *Source {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Source{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Perm returns a uniform random permutation of [0, n).
func (s *Source) Perm(n int) []int {
	return s.random.Perm(n)
}

// Intn returns a random value in [0, n). n must be positive.
func (s *Source) Intn(n int) int {
	return s.random.Intn(n)
}

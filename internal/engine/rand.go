package engine

import (
	"math/rand"
	"time"
)

// Rand supplies uniform draws in [0, 1). Generators take it as a
// capability so tests can swap in a deterministic source, the same way a
// fake clock replaces wall time.
type Rand interface {
	NextUniform() float64
}

// SystemRand is the default source, seeded from wall time.
type SystemRand struct {
	r *rand.Rand
}

func NewSystemRand() *SystemRand {
	return &SystemRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededRand returns a reproducible source for a fixed seed.
func NewSeededRand(seed int64) *SystemRand {
	return &SystemRand{r: rand.New(rand.NewSource(seed))}
}

func (s *SystemRand) NextUniform() float64 { return s.r.Float64() }

package searcher

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand supplies the uniform draws consumed by rollouts: Intn returns an
// integer in [0,n) for n >= 1.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded uniform source; a fixed seed gives reproducible
// rollout sequences in episode mode.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewSource(seed))
}

func newTimeRand() Rand {
	return NewRand(uint64(time.Now().UnixNano()))
}

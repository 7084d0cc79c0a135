package harvest

import (
	"math/rand"
	"sync"
)

// Rand is the random source consumed by banks, definitions and the harvest system.
// Implementations must be safe for concurrent use.
type Rand interface {
	// Float64 returns a uniform sample in [0,1)
	Float64() float64
	// Intn returns a uniform sample in [0,n)
	Intn(n int) int
}

// RNG is a seedable, mutex-guarded Rand
type RNG struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewRNG creates a new deterministic RNG from a seed
func NewRNG(seed int64) *RNG {
	return &RNG{
		src: rand.New(rand.NewSource(seed)), //nolint:gosec // Game logic randomness, not security critical
	}
}

// Float64 returns a uniform sample in [0,1)
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

// Intn returns a uniform sample in [0,n). It returns 0 when n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}

// randomMinMax returns a uniform integer in [min,max]
func randomMinMax(r Rand, min, max int) int {
	if min >= max {
		return min
	}
	return min + r.Intn(max-min+1)
}

// locationSample returns a reproducible sample in [0,1) for a bank position,
// so a location keeps its vein across restarts when veins are not randomized.
func locationSample(mapID, x, y int) float64 {
	seed := int64(x*veinSeedX + y*veinSeedY + mapID*veinSeedMap)
	return rand.New(rand.NewSource(seed)).Float64() //nolint:gosec // Game logic randomness, not security critical
}

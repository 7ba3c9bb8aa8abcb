package particlelife

import (
	"time"

	"golang.org/x/exp/rand"
)

// RandomSource is the capability every random draw of the engine goes through.
// Any seedable generator satisfying it can be substituted; two sources seeded
// with the same value must produce the same sequence of draws.
type RandomSource interface {
	// Seed resets the generator state.
	Seed(seed int64)
	// Uniform returns a float in [lo, hi).
	Uniform(lo, hi float64) float64
	// Gaussian returns a standard normally distributed float.
	Gaussian() float64
	// NextSeed returns a fresh seed derived from the generator state.
	NextSeed() int64
}

// pcgSource is the default RandomSource, backed by a PCG generator.
type pcgSource struct {
	rnd *rand.Rand
}

// NewRandomSource returns the default RandomSource seeded with seed.
func NewRandomSource(seed int64) RandomSource {
	return &pcgSource{rnd: rand.New(rand.NewSource(uint64(seed)))}
}

// EntropySeed returns a seed taken from the process clock.
func EntropySeed() int64 {
	return NewRandomSource(time.Now().UnixNano()).NextSeed()
}

func (s *pcgSource) Seed(seed int64) {
	s.rnd.Seed(uint64(seed))
}

func (s *pcgSource) Uniform(lo, hi float64) float64 {
	return lo + s.rnd.Float64()*(hi-lo)
}

func (s *pcgSource) Gaussian() float64 {
	return s.rnd.NormFloat64()
}

func (s *pcgSource) NextSeed() int64 {
	return int64(s.rnd.Uint64())
}

// uniformInt returns an integer in [lo, hi], both inclusive.
func uniformInt(r RandomSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	n := lo + int(r.Uniform(0, float64(hi-lo+1)))
	if n > hi {
		n = hi
	}
	return n
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

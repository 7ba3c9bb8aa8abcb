package particlelife

import (
	"github.com/aquilax/go-perlin"
	"gonum.org/v1/gonum/spatial/r2"
)

// Layout selects how initial positions are sampled.
type Layout string

const (
	LayoutUniform Layout = "uniform" // uniform over the domain
	LayoutPerlin  Layout = "perlin"  // patchy density following a noise field
)

// Noise field parameters for LayoutPerlin.
const (
	perlinAlpha    = 2.0
	perlinBeta     = 2.0
	perlinOctaves  = 3
	perlinFeatures = 4.0 // noise features across the mean domain extent
	perlinRetries  = 16
)

// spawner draws initial positions.
type spawner interface {
	position(r RandomSource) r2.Vec
}

// newSpawner returns the spawner for layout. The perlin layout seeds its
// noise field from r, so it is reproducible like every other draw.
func newSpawner(layout Layout, space Space, r RandomSource) spawner {
	u := uniformSpawner{space: space}
	if layout != LayoutPerlin {
		return u
	}
	return &perlinSpawner{
		uniform: u,
		noise:   perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, r.NextSeed()),
		scale:   (space.Width + space.Height) / 2 / perlinFeatures,
	}
}

type uniformSpawner struct {
	space Space
}

func (s uniformSpawner) position(r RandomSource) r2.Vec {
	return r2.Vec{
		X: r.Uniform(0, s.space.Width),
		Y: r.Uniform(0, s.space.Height),
	}
}

type perlinSpawner struct {
	uniform uniformSpawner
	noise   *perlin.Perlin
	scale   float64
}

// position rejection-samples a uniform candidate against the noise density.
// After perlinRetries rejections the last candidate is kept.
func (s *perlinSpawner) position(r RandomSource) r2.Vec {
	var p r2.Vec
	for range perlinRetries {
		p = s.uniform.position(r)
		if r.Uniform(0, 1) < s.density(p) {
			break
		}
	}
	return p
}

// density maps the noise value at p to an acceptance probability.
func (s *perlinSpawner) density(p r2.Vec) float64 {
	n := s.noise.Noise2D(p.X/s.scale, p.Y/s.scale)
	d := clamp(0.5+n, 0, 1)
	return d * d
}

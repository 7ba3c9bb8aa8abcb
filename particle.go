package particlelife

import "gonum.org/v1/gonum/spatial/r2"

// Particle is a single moving point.
type Particle struct {
	Group    int    // group index, fixed at creation
	Position r2.Vec // always inside the domain
	Velocity r2.Vec
}

// Population owns every particle of a run, stored as one flat slice whose
// order never changes between resets.
type Population struct {
	particles []Particle
	sizes     []int
}

// newPopulation returns an empty population for the given number of groups.
func newPopulation(groups, capacity int) *Population {
	return &Population{
		particles: make([]Particle, 0, capacity),
		sizes:     make([]int, groups),
	}
}

// add appends a particle to the end of the enumeration order.
func (p *Population) add(group int, pos, vel r2.Vec) {
	if group < 0 || group >= len(p.sizes) {
		panic("particlelife: group out of range")
	}
	p.particles = append(p.particles, Particle{Group: group, Position: pos, Velocity: vel})
	p.sizes[group]++
}

// Len returns the number of particles.
func (p *Population) Len() int {
	if p == nil {
		return 0
	}
	return len(p.particles)
}

// At returns a copy of the i-th particle.
func (p *Population) At(i int) Particle {
	return p.particles[i]
}

// Groups returns the number of groups.
func (p *Population) Groups() int {
	if p == nil {
		return 0
	}
	return len(p.sizes)
}

// GroupSize returns the number of particles in group g.
func (p *Population) GroupSize(g int) int {
	return p.sizes[g]
}

// Snapshot returns a copy of every particle in enumeration order.
func (p *Population) Snapshot() []Particle {
	if p == nil {
		return nil
	}
	out := make([]Particle, len(p.particles))
	copy(out, p.particles)
	return out
}

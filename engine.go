package particlelife

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r2"
)

// State is the lifecycle state of an Engine.
type State int

const (
	Idle  State = iota // no population yet
	Ready              // reset done, steps allowed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Ready:
		return "ready"
	}
	return "unknown"
}

// Config holds the parameters sampled by a reset.
type Config struct {
	Seed         int64
	Slipperiness float64 // fraction of velocity kept per step
	DistanceMin  float64
	DistanceMid  float64
	DistanceMax  float64 // cutoff
}

// Engine owns a population and advances it step by step.
//
// Engine is not safe for concurrent use: Reset and Step must be called from
// a single goroutine, typically the render loop.
type Engine struct {
	settings Settings
	space    Space
	rnd      RandomSource
	seeds    RandomSource
	logger   *log.Logger

	state State
	cfg   Config
	law   *ForceLaw
	pop   *Population
	frame uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger receiving reset diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRandomSource replaces the source used for sampling a run.
func WithRandomSource(r RandomSource) Option {
	return func(e *Engine) {
		e.rnd = r
	}
}

// WithSeedSource replaces the source new seeds are drawn from.
func WithSeedSource(r RandomSource) Option {
	return func(e *Engine) {
		e.seeds = r
	}
}

// NewEngine returns an idle engine. Out-of-range settings are clamped.
func NewEngine(s Settings, opts ...Option) *Engine {
	s = s.normalize()
	e := &Engine{
		settings: s,
		space:    NewSpace(s.Width, s.Height),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rnd == nil {
		e.rnd = NewRandomSource(0)
	}
	if e.seeds == nil {
		e.seeds = NewRandomSource(EntropySeed())
	}
	return e
}

// Start performs the first reset. With a nil seed a fresh one is drawn;
// otherwise the seed generator is seeded with it as well, so the seeds
// produced by later NewPattern calls are reproducible too.
func (e *Engine) Start(seed *int64) int64 {
	var s int64
	if seed == nil {
		s = e.seeds.NextSeed()
	} else {
		s = *seed
		e.seeds.Seed(s)
	}
	e.Reset(s)
	return s
}

// Replay resets with the last used seed.
func (e *Engine) Replay() {
	e.Reset(e.cfg.Seed)
}

// NewPattern draws a fresh seed and resets with it.
func (e *Engine) NewPattern() int64 {
	s := e.seeds.NextSeed()
	e.Reset(s)
	return s
}

// Reset discards the population and samples a new run from seed.
func (e *Engine) Reset(seed int64) {
	s := e.settings
	e.rnd.Seed(seed)

	slip := e.rnd.Uniform(s.SlipperinessMin, s.SlipperinessMax)
	mean, sd, lo, hi := s.cutoffDistribution()
	cutoff := clamp(e.rnd.Gaussian()*sd+mean, lo, hi)

	law := NewForceLaw(SampleMatrix(e.rnd, s.Groups), s.DistanceMin, cutoff, s.MaxRepulsion)

	pop := newPopulation(s.Groups, s.Groups*s.MaxGroupSize)
	sp := newSpawner(s.Layout, e.space, e.rnd)
	for g := range s.Groups {
		n := uniformInt(e.rnd, s.MinGroupSize, s.MaxGroupSize)
		for range n {
			pos := sp.position(e.rnd)
			var vel r2.Vec
			if s.InitialSpeed > 0 {
				sin, cos := math.Sincos(e.rnd.Uniform(0, 2*math.Pi))
				vel = r2.Vec{X: s.InitialSpeed * cos, Y: s.InitialSpeed * sin}
			}
			pop.add(g, pos, vel)
		}
	}

	e.cfg = Config{
		Seed:         seed,
		Slipperiness: slip,
		DistanceMin:  law.DistanceMin,
		DistanceMid:  law.DistanceMid,
		DistanceMax:  law.DistanceMax,
	}
	e.law = law
	e.pop = pop
	e.frame = 0
	e.state = Ready

	e.logger.Info("reset", "seed", seed, "slipperiness", slip, "cutoff", cutoff, "particles", pop.Len())
	for g := range s.Groups {
		e.logger.Debug("group", "id", g, "size", pop.GroupSize(g), "g", law.Matrix().G[g])
	}
}

// Step advances the simulation by dt. Forces are accumulated into
// velocities over every unordered pair using positions from before the
// step, then each particle decays, moves and wraps.
//
// Friction is applied once per call: velocity is multiplied by the sampled
// slipperiness regardless of dt.
func (e *Engine) Step(dt float64) {
	if e.state != Ready {
		return
	}
	ps := e.pop.particles
	cutoff2 := e.law.DistanceMax * e.law.DistanceMax

	for a := 0; a < len(ps)-1; a++ {
		pa := &ps[a]
		for b := a + 1; b < len(ps); b++ {
			pb := &ps[b]
			d := e.space.NearestDisplacement(pb.Position, pa.Position) // b to a
			d2 := r2.Norm2(d)
			if d2 >= cutoff2 {
				continue
			}
			dist := math.Sqrt(d2)
			fa, fb := e.law.Forces(dist, pa.Group, pb.Group)
			u := contactAxis
			if d2 > 0 {
				u = r2.Scale(1/dist, d)
			}
			pa.Velocity = r2.Add(pa.Velocity, r2.Scale(fa, u))
			pb.Velocity = r2.Sub(pb.Velocity, r2.Scale(fb, u))
		}
	}

	slip := e.cfg.Slipperiness
	for i := range ps {
		p := &ps[i]
		p.Velocity = r2.Scale(slip, p.Velocity)
		p.Position = e.space.Wrap(r2.Add(p.Position, r2.Scale(dt, p.Velocity)))
	}
	e.frame++
}

// contactAxis separates coincident particles, whose displacement has no
// direction.
var contactAxis = r2.Vec{X: 1}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Config returns the parameters of the current run.
func (e *Engine) Config() Config {
	return e.cfg
}

// Settings returns the normalized settings.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Space returns the simulation domain.
func (e *Engine) Space() Space {
	return e.space
}

// Seed returns the seed of the current run.
func (e *Engine) Seed() int64 {
	return e.cfg.Seed
}

// Frame returns the number of steps since the last reset.
func (e *Engine) Frame() uint64 {
	return e.frame
}

// Population returns a read-only view of the particles.
func (e *Engine) Population() *Population {
	return e.pop
}

// Matrix returns a copy of the interaction matrix, or nil when idle.
func (e *Engine) Matrix() *Matrix {
	if e.law == nil {
		return nil
	}
	return e.law.Matrix().Clone()
}

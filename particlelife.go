// Package particlelife simulates groups of point particles that attract and
// repel each other on a toroidal surface.
//
// Every ordered pair of groups has an interaction coefficient in [-1, 1].
// The force between two particles follows a piecewise linear curve of their
// wrapped distance: a hard repulsion near contact, then a bump whose sign and
// height come from the coefficient, then nothing beyond the cutoff. Velocity
// decays by a friction factor each step.
//
// A run is fully determined by its seed, the domain size and the Settings:
// the same seed regenerates the same population, matrix and thresholds.
package particlelife

import "math"

// Default settings.
const (
	DefaultGroups          = 4
	DefaultMinGroupSize    = 100
	DefaultMaxGroupSize    = 500
	DefaultDistanceMin     = 10.0
	DefaultMaxRepulsion    = 2.0 // force at zero distance
	DefaultSlipperinessMin = 0.05
	DefaultSlipperinessMax = 0.95
	DefaultCutoffFloor     = 20.0
	MaxGroups              = 16
)

// Settings are the fixed parameters of an engine. They do not change across
// resets; everything random is sampled per reset into a Config.
type Settings struct {
	Width  int // domain width
	Height int // domain height

	Groups       int // number of groups
	MinGroupSize int // smallest group, inclusive
	MaxGroupSize int // largest group, inclusive

	DistanceMin  float64 // radius of the contact repulsion zone
	MaxRepulsion float64 // force at zero distance

	SlipperinessMin float64 // lower bound of sampled velocity retention
	SlipperinessMax float64 // upper bound of sampled velocity retention

	CutoffFloor  float64 // lowest sampled cutoff distance
	InitialSpeed float64 // speed of new particles in a random direction, 0 for rest
	Layout       Layout  // initial position sampling
}

// DefaultSettings returns the defaults for a domain of the given size.
func DefaultSettings(width, height int) Settings {
	return Settings{
		Width:           width,
		Height:          height,
		Groups:          DefaultGroups,
		MinGroupSize:    DefaultMinGroupSize,
		MaxGroupSize:    DefaultMaxGroupSize,
		DistanceMin:     DefaultDistanceMin,
		MaxRepulsion:    DefaultMaxRepulsion,
		SlipperinessMin: DefaultSlipperinessMin,
		SlipperinessMax: DefaultSlipperinessMax,
		CutoffFloor:     DefaultCutoffFloor,
		Layout:          LayoutUniform,
	}
}

// normalize clamps every field into its valid range.
func (s Settings) normalize() Settings {
	s.Width = max(s.Width, 1)
	s.Height = max(s.Height, 1)
	s.Groups = min(max(s.Groups, 1), MaxGroups)
	s.MinGroupSize = max(s.MinGroupSize, 0)
	s.MaxGroupSize = max(s.MaxGroupSize, s.MinGroupSize)
	s.DistanceMin = finiteOr(s.DistanceMin, DefaultDistanceMin)
	s.MaxRepulsion = finiteOr(s.MaxRepulsion, DefaultMaxRepulsion)
	s.SlipperinessMin = finiteOr(s.SlipperinessMin, DefaultSlipperinessMin)
	s.SlipperinessMax = finiteOr(s.SlipperinessMax, DefaultSlipperinessMax)
	s.CutoffFloor = finiteOr(s.CutoffFloor, DefaultCutoffFloor)
	s.InitialSpeed = finiteOr(s.InitialSpeed, 0)
	if s.DistanceMin <= 0 {
		s.DistanceMin = DefaultDistanceMin
	}
	if s.MaxRepulsion < 0 {
		s.MaxRepulsion = DefaultMaxRepulsion
	}
	s.SlipperinessMin = clamp(s.SlipperinessMin, 0, 1)
	s.SlipperinessMax = clamp(s.SlipperinessMax, s.SlipperinessMin, 1)
	s.CutoffFloor = math.Max(s.CutoffFloor, 2*s.DistanceMin)
	s.InitialSpeed = math.Max(s.InitialSpeed, 0)
	if s.Layout != LayoutPerlin {
		s.Layout = LayoutUniform
	}
	return s
}

// finiteOr returns v, or def when v is NaN or infinite.
func finiteOr(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// cutoffDistribution returns the mean, standard deviation and clip range of
// the cutoff distance for the domain.
func (s Settings) cutoffDistribution() (mean, sd, lo, hi float64) {
	meanExtent := float64(s.Width+s.Height) / 2
	mean = meanExtent / 6
	sd = meanExtent / 30
	lo = s.CutoffFloor
	hi = math.Max(2*mean, lo)
	return mean, sd, lo, hi
}

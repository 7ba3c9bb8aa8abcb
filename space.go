package particlelife

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Space is the bounded toroidal domain particles live in.
// Opposite edges are identified on both axes: positions are kept in
// [0, Width) x [0, Height) by periodic translation, velocities are never
// touched by the boundary.
type Space struct {
	Width  float64
	Height float64
}

// NewSpace returns a space of the given size in pixels.
func NewSpace(width, height int) Space {
	return Space{Width: float64(width), Height: float64(height)}
}

// NearestDisplacement returns the shortest signed vector from a to b,
// wrapping around each axis independently.
func (s Space) NearestDisplacement(a, b r2.Vec) r2.Vec {
	return r2.Vec{
		X: shortestDelta(b.X-a.X, s.Width),
		Y: shortestDelta(b.Y-a.Y, s.Height),
	}
}

// Wrap folds a position back into the domain.
func (s Space) Wrap(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: wrapCoord(p.X, s.Width),
		Y: wrapCoord(p.Y, s.Height),
	}
}

// Contains reports whether p lies inside the domain.
func (s Space) Contains(p r2.Vec) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// shortestDelta maps a raw difference onto the shorter path around an axis.
func shortestDelta(d, extent float64) float64 {
	if math.Abs(d) <= extent/2 {
		return d
	}
	if d >= 0 {
		return d - extent
	}
	return d + extent
}

// wrapCoord translates x into [0, extent).
func wrapCoord(x, extent float64) float64 {
	if x >= 0 && x < extent {
		return x
	}
	x = math.Mod(x, extent)
	if x < 0 {
		x += extent
	}
	// -ε + extent may round up to extent
	if x >= extent {
		x = 0
	}
	return x
}

package particlelife

import (
	"fmt"
	"math"
)

// ForceLaw maps the distance between two particles to the scalar force each
// one feels along the line joining them. Positive is repulsive, negative is
// attractive.
//
// The curve has three zones:
//
//	[0, min]       MaxRepulsion falling linearly to 0, same for every group
//	(min, mid]     0 rising linearly to G[a][b] at mid
//	(mid, max]     G[a][b] falling linearly back to 0 at max
//
// Beyond max there is no force and callers must not evaluate the law.
type ForceLaw struct {
	DistanceMin  float64
	DistanceMid  float64
	DistanceMax  float64
	MaxRepulsion float64

	matrix       *Matrix
	contactSlope float64
}

// NewForceLaw binds m to the given thresholds and derives its slopes.
// It panics unless 0 < distanceMin < distanceMax.
func NewForceLaw(m *Matrix, distanceMin, distanceMax, maxRepulsion float64) *ForceLaw {
	if !(distanceMin > 0 && distanceMin < distanceMax) {
		panic(fmt.Sprintf("particlelife: invalid force thresholds min=%v max=%v", distanceMin, distanceMax))
	}
	m.Derive(distanceMin, distanceMax)
	return &ForceLaw{
		DistanceMin:  distanceMin,
		DistanceMid:  distanceMin + (distanceMax-distanceMin)/2,
		DistanceMax:  distanceMax,
		MaxRepulsion: maxRepulsion,
		matrix:       m,
		contactSlope: maxRepulsion / distanceMin,
	}
}

// Matrix returns the bound interaction matrix.
func (f *ForceLaw) Matrix() *Matrix {
	return f.matrix
}

// Forces returns the force on a particle of group a and the force on a
// particle of group b, separated by distance. A zero distance is replaced
// by the smallest positive float.
func (f *ForceLaw) Forces(distance float64, a, b int) (onA, onB float64) {
	if distance <= 0 {
		distance = math.SmallestNonzeroFloat64
	}
	switch {
	case distance <= f.DistanceMin:
		v := f.MaxRepulsion - f.contactSlope*distance
		return v, v
	case distance <= f.DistanceMid:
		d := distance - f.DistanceMin
		return f.matrix.SlopeMinToMid[a][b] * d, f.matrix.SlopeMinToMid[b][a] * d
	default:
		d := distance - f.DistanceMid
		return f.matrix.G[a][b] + f.matrix.SlopeMidToMax[a][b]*d,
			f.matrix.G[b][a] + f.matrix.SlopeMidToMax[b][a]*d
	}
}

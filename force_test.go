package particlelife

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func testLaw() *ForceLaw {
	m := NewMatrix(2)
	m.G[0][0] = 0.5
	m.G[0][1] = -0.8
	m.G[1][0] = 0.3
	m.G[1][1] = -1
	return NewForceLaw(m, 10, 50, DefaultMaxRepulsion)
}

func TestForceLawThresholds(t *testing.T) {
	f := testLaw()
	if f.DistanceMid != 30 {
		t.Errorf("DistanceMid = %v, want 30", f.DistanceMid)
	}
	if !(0 < f.DistanceMin && f.DistanceMin < f.DistanceMid && f.DistanceMid < f.DistanceMax) {
		t.Errorf("thresholds out of order: %v %v %v", f.DistanceMin, f.DistanceMid, f.DistanceMax)
	}
}

func TestForceLawZeroDistance(t *testing.T) {
	f := testLaw()
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			onA, onB := f.Forces(0, a, b)
			if math.IsNaN(onA) || math.IsInf(onA, 0) || math.IsNaN(onB) || math.IsInf(onB, 0) {
				t.Fatalf("Forces(0, %d, %d) = %v, %v, want finite", a, b, onA, onB)
			}
			if onA != f.MaxRepulsion || onB != f.MaxRepulsion {
				t.Errorf("Forces(0, %d, %d) = %v, %v, want %v", a, b, onA, onB, f.MaxRepulsion)
			}
		}
	}
}

func TestForceLawContinuity(t *testing.T) {
	f := testLaw()
	const eps = 1e-7
	for _, d := range []float64{f.DistanceMin, f.DistanceMid, f.DistanceMax} {
		for a := 0; a < 2; a++ {
			for b := 0; b < 2; b++ {
				loA, loB := f.Forces(d-eps, a, b)
				hiA, hiB := f.Forces(d+eps, a, b)
				if math.Abs(loA-hiA) > 1e-6 || math.Abs(loB-hiB) > 1e-6 {
					t.Errorf("jump at distance %v for (%d,%d): %v,%v -> %v,%v", d, a, b, loA, loB, hiA, hiB)
				}
			}
		}
	}

	onA, onB := f.Forces(f.DistanceMin, 0, 1)
	if math.Abs(onA) > tolerance || math.Abs(onB) > tolerance {
		t.Errorf("Forces(min) = %v, %v, want 0", onA, onB)
	}
}

func TestForceLawShape(t *testing.T) {
	f := testLaw()
	tests := []struct {
		name     string
		distance float64
		a, b     int
		onA, onB float64
	}{
		{"contact half way", 5, 0, 1, 1, 1},
		{"rising", 20, 0, 1, -0.4, 0.15},
		{"peak", 30, 0, 1, -0.8, 0.3},
		{"falling", 40, 0, 1, -0.4, 0.15},
		{"cutoff", 50, 0, 1, 0, 0},
		{"same group", 30, 1, 1, -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			onA, onB := f.Forces(tt.distance, tt.a, tt.b)
			if math.Abs(onA-tt.onA) > tolerance || math.Abs(onB-tt.onB) > tolerance {
				t.Errorf("Forces(%v, %d, %d) = %v, %v, want %v, %v", tt.distance, tt.a, tt.b, onA, onB, tt.onA, tt.onB)
			}
		})
	}
}

func TestForceLawInvalidThresholds(t *testing.T) {
	for _, tt := range []struct{ min, max float64 }{{0, 10}, {10, 10}, {20, 10}, {-1, 5}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewForceLaw(min=%v, max=%v) did not panic", tt.min, tt.max)
				}
			}()
			NewForceLaw(NewMatrix(1), tt.min, tt.max, 1)
		}()
	}
}

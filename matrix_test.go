package particlelife

import (
	"math"
	"reflect"
	"testing"
)

func TestSampleMatrix(t *testing.T) {
	m := SampleMatrix(NewRandomSource(11), 5)
	if m.Groups() != 5 {
		t.Fatalf("Groups() = %d, want 5", m.Groups())
	}
	symmetric := true
	for i := range m.G {
		for j := range m.G[i] {
			if g := m.G[i][j]; g < -1 || g > 1 {
				t.Errorf("G[%d][%d] = %v, outside [-1, 1]", i, j, g)
			}
			if m.G[i][j] != m.G[j][i] {
				symmetric = false
			}
		}
	}
	if symmetric {
		t.Error("sampled matrix is symmetric, cells are not drawn independently")
	}

	again := SampleMatrix(NewRandomSource(11), 5)
	if !reflect.DeepEqual(m.G, again.G) {
		t.Error("same seed produced different matrices")
	}
}

func TestMatrixDerive(t *testing.T) {
	m := NewMatrix(2)
	m.G[0][1] = 0.6
	m.G[1][0] = -0.3
	m.Derive(10, 40)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"minToMid[0][1]", m.SlopeMinToMid[0][1], 0.04},
		{"midToMax[0][1]", m.SlopeMidToMax[0][1], -0.04},
		{"minToMid[1][0]", m.SlopeMinToMid[1][0], -0.02},
		{"midToMax[1][0]", m.SlopeMidToMax[1][0], 0.02},
		{"minToMid[0][0]", m.SlopeMinToMid[0][0], 0},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > tolerance {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	// new thresholds replace the old slopes
	m.Derive(10, 20)
	if math.Abs(m.SlopeMinToMid[0][1]-0.12) > tolerance {
		t.Errorf("after re-derive minToMid[0][1] = %v, want 0.12", m.SlopeMinToMid[0][1])
	}
}

func TestMatrixClone(t *testing.T) {
	m := SampleMatrix(NewRandomSource(5), 3)
	m.Derive(10, 30)
	c := m.Clone()
	if !reflect.DeepEqual(m, c) {
		t.Fatal("clone differs from original")
	}
	slope := m.SlopeMinToMid[0][0]
	c.SlopeMinToMid[0][0] = slope + 1
	c.G[2][1] = 42
	if m.G[2][1] == 42 || m.SlopeMinToMid[0][0] != slope {
		t.Error("clone shares storage with original")
	}
}

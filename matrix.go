package particlelife

// Matrix holds the interaction coefficients between groups and the
// force-curve slopes derived from them.
//
// G[i][j] is in [-1, 1] and governs the force a member of group i feels
// from a member of group j. The matrix is not symmetric.
type Matrix struct {
	G             [][]float64
	SlopeMinToMid [][]float64
	SlopeMidToMax [][]float64

	half float64 // (distanceMax - distanceMin) / 2
}

// NewMatrix returns a zeroed matrix for the given number of groups.
func NewMatrix(groups int) *Matrix {
	return &Matrix{
		G:             square(groups),
		SlopeMinToMid: square(groups),
		SlopeMidToMax: square(groups),
	}
}

// SampleMatrix fills every cell independently and uniformly in [-1, 1].
// Cells are drawn row by row so a given source state always yields the
// same matrix.
func SampleMatrix(r RandomSource, groups int) *Matrix {
	m := NewMatrix(groups)
	for i := range m.G {
		for j := range m.G[i] {
			m.G[i][j] = r.Uniform(-1, 1)
		}
	}
	return m
}

// Groups returns the number of groups.
func (m *Matrix) Groups() int {
	return len(m.G)
}

// Derive recomputes the slopes for the given distance thresholds.
func (m *Matrix) Derive(distanceMin, distanceMax float64) {
	m.half = (distanceMax - distanceMin) / 2
	for i := range m.G {
		for j := range m.G[i] {
			m.derive(i, j)
		}
	}
}

func (m *Matrix) derive(i, j int) {
	m.SlopeMinToMid[i][j] = m.G[i][j] / m.half
	m.SlopeMidToMax[i][j] = -m.G[i][j] / m.half
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{
		G:             cloneSquare(m.G),
		SlopeMinToMid: cloneSquare(m.SlopeMinToMid),
		SlopeMidToMax: cloneSquare(m.SlopeMidToMax),
		half:          m.half,
	}
	return c
}

func square(n int) [][]float64 {
	rows := make([][]float64, n)
	cells := make([]float64, n*n)
	for i := range rows {
		rows[i] = cells[i*n : (i+1)*n : (i+1)*n]
	}
	return rows
}

func cloneSquare(src [][]float64) [][]float64 {
	dst := square(len(src))
	for i := range src {
		copy(dst[i], src[i])
	}
	return dst
}

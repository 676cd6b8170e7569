package algorithms

import (
	"gonum.org/v1/gonum/mat"

	"github.com/dd0wney/cluso-graphlab/pkg/storage"
)

// SOCMatrix holds the strength of connection of every user pair. Storage is
// symmetric, so each unordered pair is computed once. The diagonal is 0.
type SOCMatrix struct {
	n   int
	sym *mat.SymDense // nil when n == 0; gonum rejects zero-sized matrices
}

// BuildSOCMatrix computes SOC for every pair i < j of the graph's users.
func BuildSOCMatrix(g *storage.SocialGraph) (*SOCMatrix, error) {
	n := g.Len()
	m := &SOCMatrix{n: n}
	if n == 0 {
		return m, nil
	}
	m.sym = mat.NewSymDense(n, nil)

	within := positionRange(n)
	for i := 0; i < n-1; i++ {
		rowI, err := g.Row(i)
		if err != nil {
			return nil, err
		}
		for j := i + 1; j < n; j++ {
			rowJ, err := g.Row(j)
			if err != nil {
				return nil, err
			}
			m.sym.SetSym(i, j, strengthWithin(rowI, rowJ, i, j, within))
		}
	}
	return m, nil
}

// Size returns the number of users the matrix covers.
func (m *SOCMatrix) Size() int {
	return m.n
}

// At returns SOC(i, j). Out-of-range positions score 0.
func (m *SOCMatrix) At(i, j int) float64 {
	if m.sym == nil || i < 0 || j < 0 || i >= m.n || j >= m.n {
		return 0
	}
	return m.sym.At(i, j)
}

// Row returns a copy of SOC(i, ·).
func (m *SOCMatrix) Row(i int) []float64 {
	row := make([]float64, m.n)
	if m.sym == nil || i < 0 || i >= m.n {
		return row
	}
	for j := range row {
		row[j] = m.sym.At(i, j)
	}
	return row
}

// Sym exposes the underlying symmetric matrix, nil for an empty graph.
func (m *SOCMatrix) Sym() *mat.SymDense {
	return m.sym
}

// PairCount returns the number of unordered pairs the matrix was built from.
func (m *SOCMatrix) PairCount() int {
	return m.n * (m.n - 1) / 2
}

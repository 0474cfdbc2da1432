package matrix

import (
	"errors"

	"github.com/advancedresearch/avatar-graph/core"
)

// ErrNilGraph indicates a nil *core.Graph was passed to Matrix.
var ErrNilGraph = errors.New("matrix: graph is nil")

// Matrix renders g as an N×N table of small integers:
//
//	0: no connection
//	1: an edge is stored at [a][b] (a, b as canonicalized by AddEdge)
//	2: [min(i,uniq)][max(i,uniq)] holds vertex i's unique edge to its
//	   recorded highest avatar
//	3: both of the above coincide on the same cell
//
// The encoding is intentionally asymmetric: a unique edge assigns its
// canonical min/max cell (not accumulates — two vertices whose unique
// edge points at each other must not double that cell to 4), while an
// ordinary edge increments its stored cell, which is already canonical
// since core.Graph canonicalizes every edge at insertion — so a cell
// reaches 3 only when both contribute to it.
func Matrix(g *core.Graph) ([][]uint8, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.VertexCount()
	mat := make([][]uint8, n)
	for i := range mat {
		mat[i] = make([]uint8, n)
	}

	for i := 0; i < n; i++ {
		v, err := g.Vertex(i)
		if err != nil {
			return nil, err
		}
		if v.Uniq == nil {
			continue
		}
		lo, hi := i, *v.Uniq
		if lo > hi {
			lo, hi = hi, lo
		}
		mat[lo][hi] = 2
	}

	for _, e := range g.Edges() {
		mat[e.A][e.B]++
	}

	return mat, nil
}

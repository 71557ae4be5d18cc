package graphgen

import (
	"math/rand"

	"github.com/lattice-graphs/bmssp/graph"
)

// minWeight and maxWeight bound the uniformly sampled edge weight range.
const (
	minWeight = 1.0
	maxWeight = 10.0
)

// New builds a directed graph on n vertices by an Erdős–Rényi-like trial:
// for every ordered pair (i, j) with i != j, include edge i->j independently
// with probability p = edgeFactor / (n-1), clamped to [0, 1]. edgeFactor is
// the target average out-degree. Edge weights are drawn uniformly from
// [minWeight, maxWeight). The trial order is i ascending, then j ascending,
// so a fixed seed always reproduces the same graph.
//
// Preconditions: n >= 1, edgeFactor >= 0.
func New(n int, edgeFactor float64, seed int64) (*graph.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	if edgeFactor < 0 {
		return nil, ErrInvalidEdgeFactor
	}

	p := 0.0
	if n > 1 {
		p = edgeFactor / float64(n-1)
	}
	if p > 1 {
		p = 1
	}

	rng := rand.New(rand.NewSource(seed))
	g := graph.New(n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() <= p {
				w := minWeight + rng.Float64()*(maxWeight-minWeight)
				if err := g.AddEdge(i, j, w); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

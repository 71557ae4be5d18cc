package sssp

import (
	"fmt"
	"math"

	"github.com/lattice-graphs/bmssp/bmssp"
	"github.com/lattice-graphs/bmssp/diststore"
	"github.com/lattice-graphs/bmssp/graph"
)

// Solve computes the shortest-path distance (and a predecessor) from
// source to every vertex of g.
//
// Preconditions: 0 <= source < g.N(). Edge weights are validated
// non-negative by graph.AddEdge at insertion time; Solve re-checks this
// defensively with a single scan over every vertex's out-edges before
// running the algorithm, since a corrupted or hand-built Graph value could
// otherwise violate the bound invariants BMSSP depends on.
//
// Postconditions: for the returned Store, Distance(v) is the shortest-path
// distance from source to v, or +Inf if v is unreachable. Predecessor(v)
// names a predecessor on some shortest path to v, or diststore.NoPredecessor
// for source itself and for unreachable vertices. The result is
// deterministic for a fixed graph and fixed sequence of AddEdge calls.
func Solve(g *graph.Graph, source int) (*diststore.Store, error) {
	n := g.N()
	if source < 0 || source >= n {
		return nil, ErrSourceOutOfRange
	}

	for u := 0; u < n; u++ {
		for _, e := range g.OutEdges(u) {
			if e.Weight < 0 {
				return nil, fmt.Errorf("sssp: edge %d->%d has negative weight %g: %w", u, e.To, e.Weight, graph.ErrNegativeWeight)
			}
		}
	}

	params := bmssp.NewParams(n)
	store := diststore.New(n, source)

	_, _, err := bmssp.BMSSP(store, g, params, params.LMax, math.Inf(1), []int{source})
	if err != nil {
		return nil, err
	}

	return store, nil
}

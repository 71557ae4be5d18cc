package refdijkstra

import (
	"container/heap"
	"math"

	"github.com/lattice-graphs/bmssp/graph"
)

// NoPredecessor marks a vertex with no predecessor: either it is the
// source, or it was never reached.
const NoPredecessor = -1

// Solve computes shortest distances and predecessors from source to every
// vertex of g via a classic binary-heap Dijkstra.
//
// Preconditions: 0 <= source < g.N(). Unreachable vertices get distance
// +Inf and predecessor NoPredecessor.
func Solve(g *graph.Graph, source int) (dist []float64, pred []int, err error) {
	n := g.N()
	if source < 0 || source >= n {
		return nil, nil, ErrSourceOutOfRange
	}

	dist = make([]float64, n)
	pred = make([]int, n)
	settled := make([]bool, n)
	for v := 0; v < n; v++ {
		dist[v] = math.Inf(1)
		pred[v] = NoPredecessor
	}
	dist[source] = 0

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{vertex: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.vertex
		if settled[u] {
			continue
		}
		settled[u] = true

		for _, e := range g.OutEdges(u) {
			v, w := e.To, e.Weight
			nd := dist[u] + w
			if nd < dist[v] {
				dist[v] = nd
				pred[v] = u
				heap.Push(&pq, &nodeItem{vertex: v, dist: nd})
			}
		}
	}

	return dist, pred, nil
}

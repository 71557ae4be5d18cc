package basecase

import (
	"container/heap"
	"sort"

	"github.com/lattice-graphs/bmssp/diststore"
	"github.com/lattice-graphs/bmssp/graph"
)

// BaseCase runs a bounded Dijkstra-style expansion from the single source x,
// restricted to the bound B, stopping as soon as either k+1 vertices have
// settled or no candidate with d < B remains.
//
// Returns:
//   - If expansion exhausted candidates under B before reaching k+1
//     settlements: B' = B, U = the settled vertices.
//   - If exactly k+1 vertices settled: B' = the largest settled distance,
//     U = the settled vertices with d[v] < B' (so |U| <= k).
func BaseCase(store *diststore.Store, g *graph.Graph, B float64, x int, k int) (float64, []int, error) {
	if !(store.Distance(x) < B) {
		return 0, nil, ErrSourceNotBelowBound
	}

	settled := make(map[int]bool)
	pq := &nodePQ{}
	heap.Init(pq)
	heap.Push(pq, &nodeItem{vertex: x, dist: store.Distance(x)})

	limit := k + 1
	for pq.Len() > 0 && len(settled) < limit {
		item := heap.Pop(pq).(*nodeItem)
		u := item.vertex

		if settled[u] {
			continue
		}
		if item.dist > store.Distance(u) {
			continue // stale: a better distance was recorded after this entry was pushed
		}
		if item.dist >= B {
			break // nothing left with d < B
		}

		settled[u] = true

		for _, e := range g.OutEdges(u) {
			v, w := e.To, e.Weight
			nd := store.Distance(u) + w
			if nd < B && store.Relax(u, v, w) {
				heap.Push(pq, &nodeItem{vertex: v, dist: nd})
			}
		}
	}

	if len(settled) <= k {
		return B, settledSlice(settled), nil
	}

	maxDist := 0.0
	for v := range settled {
		if d := store.Distance(v); d > maxDist {
			maxDist = d
		}
	}

	filtered := make([]int, 0, len(settled))
	for v := range settled {
		if store.Distance(v) < maxDist {
			filtered = append(filtered, v)
		}
	}
	sort.Ints(filtered)

	return maxDist, filtered, nil
}

// settledSlice returns settled's elements in ascending order, so the
// caller always sees the same Ui order for the same settled set — ranging
// a map directly would make edge-relaxation order (and so predecessor
// choice under a distance tie) nondeterministic between runs.
func settledSlice(settled map[int]bool) []int {
	out := make([]int, 0, len(settled))
	for v := range settled {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

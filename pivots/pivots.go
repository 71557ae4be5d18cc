package pivots

import (
	"github.com/lattice-graphs/bmssp/diststore"
	"github.com/lattice-graphs/bmssp/graph"
)

// FindPivots performs k bounded relaxation passes from the source set S and
// classifies a subset of S as pivots.
//
// Preconditions: S is non-empty, and store.Distance(s) < B for every s in
// S. Violating either returns ErrEmptySourceSet / ErrSourceNotBelowBound
// rather than producing a wrong answer silently.
//
// If the working set W grows past k*len(S) during expansion, FindPivots
// aborts early: every source is treated as a pivot (P = S) and the
// over-large W accumulated so far is returned as-is.
func FindPivots(store *diststore.Store, g *graph.Graph, B float64, S []int, k int) ([]int, []int, error) {
	if len(S) == 0 {
		return nil, nil, ErrEmptySourceSet
	}
	for _, s := range S {
		if !(store.Distance(s) < B) {
			return nil, nil, ErrSourceNotBelowBound
		}
	}

	inW := make([]bool, store.Len())
	parent := make(map[int]int, len(S))
	for _, s := range S {
		inW[s] = true
	}

	W := append([]int(nil), S...)
	frontier := append([]int(nil), S...)

	for i := 0; i < k && len(frontier) > 0; i++ {
		var next []int
		for _, u := range frontier {
			for _, e := range g.OutEdges(u) {
				v, w := e.To, e.Weight
				nd := store.Distance(u) + w
				if nd > store.Distance(v) || nd >= B {
					continue
				}
				store.Relax(u, v, w)

				if inW[v] {
					continue
				}
				inW[v] = true
				parent[v] = u
				W = append(W, v)
				next = append(next, v)
			}
		}

		if len(W) > k*len(S) {
			return append([]int(nil), S...), W, nil
		}
		frontier = next
	}

	return computePivots(S, W, parent, k), W, nil
}

// computePivots builds the shortest-path forest implied by parent (one
// memoized subtree-size pass, no explicit tree type) and returns every
// source whose subtree in that forest has size >= k.
func computePivots(S, W []int, parent map[int]int, k int) []int {
	children := make(map[int][]int, len(W))
	for v, p := range parent {
		children[p] = append(children[p], v)
	}

	size := make(map[int]int, len(W))
	var subtreeSize func(u int) int
	subtreeSize = func(u int) int {
		if sz, ok := size[u]; ok {
			return sz
		}
		total := 1
		for _, c := range children[u] {
			total += subtreeSize(c)
		}
		size[u] = total

		return total
	}

	P := make([]int, 0, len(S))
	for _, s := range S {
		if subtreeSize(s) >= k {
			P = append(P, s)
		}
	}

	return P
}

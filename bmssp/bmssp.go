package bmssp

import (
	"sort"

	"github.com/lattice-graphs/bmssp/basecase"
	"github.com/lattice-graphs/bmssp/boundedheap"
	"github.com/lattice-graphs/bmssp/diststore"
	"github.com/lattice-graphs/bmssp/graph"
	"github.com/lattice-graphs/bmssp/pivots"
)

// BMSSP computes a tightened bound B' and a settled-vertex set U for the
// frame (l, B, S): at l=0 it bottoms out into basecase.BaseCase; otherwise
// it finds pivots, then repeatedly pulls bounded batches from a
// boundedheap.Heap, recurses one level down on each batch, and relaxes the
// outgoing edges of every vertex the sub-call settled.
func BMSSP(store *diststore.Store, g *graph.Graph, params Params, l int, B float64, S []int) (float64, []int, error) {
	if l < 0 {
		return 0, nil, ErrNegativeLevel
	}
	if len(S) == 0 {
		return 0, nil, ErrEmptySourceSet
	}
	for _, s := range S {
		if !(store.Distance(s) < B) {
			return 0, nil, ErrSourceNotBelowBound
		}
	}

	if l == 0 {
		return baseCaseFrame(store, g, params, B, S)
	}

	return recurse(store, g, params, l, B, S)
}

// baseCaseFrame handles l=0. The calling discipline only ever produces a
// singleton S here; the multi-source merge exists defensively in case a
// caller violates that discipline rather than as a path BMSSP itself takes.
func baseCaseFrame(store *diststore.Store, g *graph.Graph, params Params, B float64, S []int) (float64, []int, error) {
	if len(S) == 1 {
		return basecase.BaseCase(store, g, B, S[0], params.K)
	}

	bPrime := B
	U := make(map[int]bool)
	for _, s := range S {
		bp, u, err := basecase.BaseCase(store, g, B, s, params.K)
		if err != nil {
			return 0, nil, err
		}
		if bp < bPrime {
			bPrime = bp
		}
		for _, v := range u {
			U[v] = true
		}
	}

	return bPrime, keysOf(U), nil
}

func recurse(store *diststore.Store, g *graph.Graph, params Params, l int, B float64, S []int) (float64, []int, error) {
	P, W, err := pivots.FindPivots(store, g, B, S, params.K)
	if err != nil {
		return 0, nil, err
	}

	h, err := boundedheap.New(params.heapCapacity(l), B)
	if err != nil {
		return 0, nil, err
	}
	for _, p := range P {
		if err := h.Insert(p, store.Distance(p)); err != nil {
			return 0, nil, err
		}
	}

	U := make(map[int]bool)
	limit := params.K * params.batchSize(l)
	bCurrent := B

	for !h.Empty() && len(U) < limit {
		Bi, pulled, err := h.Pull()
		if err != nil {
			return 0, nil, err
		}
		Si := make([]int, len(pulled))
		for i, e := range pulled {
			Si[i] = e.Vertex
		}

		BiPrime, Ui, err := BMSSP(store, g, params, l-1, Bi, Si)
		if err != nil {
			return 0, nil, err
		}
		for _, u := range Ui {
			U[u] = true
		}

		var batch []boundedheap.Entry
		for _, u := range Ui {
			for _, e := range g.OutEdges(u) {
				v, w := e.To, e.Weight
				if store.Relax(u, v, w) {
					dv := store.Distance(v)
					switch {
					case dv >= Bi && dv < B:
						if err := h.Insert(v, dv); err != nil {
							return 0, nil, err
						}
					case dv >= BiPrime && dv < Bi:
						batch = append(batch, boundedheap.Entry{Vertex: v, Key: dv})
					case dv < B:
						// Bi and B'i coincided in this frame (the heap drained without
						// a real split, so neither interval separated from B): v still
						// needs a further pull at this level, or its frontier is lost.
						if err := h.Insert(v, dv); err != nil {
							return 0, nil, err
						}
					}
				}
			}
		}
		for _, s := range Si {
			ds := store.Distance(s)
			if ds >= BiPrime && ds < Bi {
				batch = append(batch, boundedheap.Entry{Vertex: s, Key: ds})
			}
		}
		if len(batch) > 0 {
			if err := h.BatchPrepend(batch); err != nil {
				return 0, nil, err
			}
		}

		bCurrent = BiPrime
	}

	bPrime := B
	if !h.Empty() {
		bPrime = bCurrent
	}

	for _, w := range W {
		if store.Distance(w) < bPrime {
			U[w] = true
		}
	}

	return bPrime, keysOf(U), nil
}

// keysOf returns set's elements in ascending order. A plain map-range
// order would make Ui nondeterministic between runs, and Ui's order
// drives the edge-relaxation order in the parent frame, which in turn
// decides predecessor choice under a distance tie.
func keysOf(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// Package graph is the adjacency-list container the BMSSP solver runs on.
//
// A Graph is directed, on dense integer vertices 0..n-1, with float64
// edge weights. It is the plumbing layer: the interesting algorithmic work
// lives in package bmssp and its helpers (boundedheap, pivots, basecase),
// which only ever read a Graph through New/AddEdge/OutEdges/N.
//
// Construction is thread-safe (a sync.RWMutex guards the adjacency slice),
// unlike the per-solve containers in diststore and boundedheap, which are
// not safe for concurrent use. A single sssp.Solve call never mutates a Graph concurrently
// with reading it — edges are commonly fed in from multiple producers
// before a solve begins.
//
// Multi-edges and self-loops are both permitted and never rejected: a
// self-loop with weight 0 is harmless (it can never worsen d[u]) and a
// self-loop with weight > 0 is simply never tight, so shortest-path
// semantics ignore it without needing to special-case it here.
package graph

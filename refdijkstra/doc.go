// Package refdijkstra implements a classic binary-heap Dijkstra over
// graph.Graph. It exists purely as an independent oracle: the sssp test
// suite checks BMSSP's output against it on randomized graphs (the concrete
// scenarios there use hand-computed values), sssp's benchmarks time it on
// the same graph, and cmd/bmsspdemo can optionally print a timing
// comparison against it. Neither bmssp nor sssp.Solve calls into this
// package on the production path.
//
// It uses a lazy-decrease-key strategy: push a new heap entry on every
// improving relaxation rather than mutating an entry in place, and skip
// an entry on pop if its vertex is already settled.
package refdijkstra

// Package bmssp implements the Bounded Multi-Source Shortest Path
// recursion at the heart of the Duan-Mao-Mao-Shu-Yin algorithm, along with
// the derived Params (k, t, l_max) that govern its pivot budget, batch
// size, and recursion depth.
//
// BMSSP(l, B, S) finds pivots within S, then repeatedly pulls bounded
// batches of work from a boundedheap.Heap and recurses one level down,
// relaxing outgoing edges of newly-settled vertices back into the same
// heap (or into a batch-prepend, for vertices whose improved distance
// falls below the current pull's sub-bound). At l=0 it bottoms out into
// basecase.BaseCase.
//
// Complexity: O(m log^(2/3) n) across the full recursion tree rooted at
// sssp.Solve's top-level call, per the algorithm's headline bound; no
// single BMSSP frame is more than O((|S| + edges touched at this level) *
// log(heap capacity)).
package bmssp

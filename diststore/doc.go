// Package diststore holds the tentative-distance and predecessor arrays
// shared by every frame of a BMSSP recursion.
//
// A Store is created once per sssp.Solve call and threaded by pointer
// through bmssp, pivots and basecase — it is the only state that crosses
// recursive BMSSP frames; everything else (BoundedHeaps, FindPivots working
// sets, BaseCase candidate pools) is scoped to the frame that created it.
//
// Store is not safe for concurrent use: within one sssp.Solve call, exactly
// one goroutine ever mutates it (single-threaded, fully synchronous
// recursion). Running two independent sssp.Solve calls concurrently, on two
// separate Stores, is always safe since nothing here is package-level
// state.
package diststore

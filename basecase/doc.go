// Package basecase implements BaseCase, the l=0 leaf of the BMSSP
// recursion: a bounded Dijkstra-style expansion from a single source that
// stops as soon as either k+1 vertices have settled under the bound B or no
// candidate under B remains. A multi-source l=0 frame is handled by package
// bmssp, which calls BaseCase once per source and merges the results.
//
// The expansion uses a container/heap min-heap keyed on tentative
// distance, a lazy decrease-key strategy (stale heap entries are detected
// and skipped on pop rather than removed eagerly), and a settled-set map.
package basecase

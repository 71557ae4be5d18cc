// Package sssp is the top-level entry point: Solve wires together
// bmssp.Params, a diststore.Store, and one top-level bmssp.BMSSP call to
// answer "shortest distance (and a predecessor) from source to every
// vertex of g", in O(m log^(2/3) n) across the whole recursion.
package sssp

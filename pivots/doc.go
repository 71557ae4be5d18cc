// Package pivots implements FindPivots: given a distance bound B and a
// source set S, it performs k bounded relaxation passes and classifies a
// small subset of S as pivots — sources whose forward exploration produced
// a shortest-path subtree of size at least k.
//
// The procedure never materializes the shortest-path forest it discovers
// during relaxation as an explicit graph type. It instead records a single
// parent pointer per vertex the first time a tight relaxation edge fixes
// that vertex's place in the forest, then computes subtree sizes with one
// memoized recursive pass, the same shape as computing subtree sizes over
// a DFS traversal without building an auxiliary tree type.
//
// Complexity: O(k * (V_W + E_W)) for the relaxation passes, where V_W, E_W
// are the vertices/edges touched while the working set stays within the
// k*|S| budget, plus O(|W|) for the subtree-size pass.
package pivots

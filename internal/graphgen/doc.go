// Package graphgen builds random directed sparse graphs for property tests
// and for the cmd/bmsspdemo CLI.
//
// It follows a standard Erdős–Rényi sampling discipline: iterate ordered
// vertex pairs in a stable (i, j) order and include each as a directed
// edge via an independent Bernoulli trial, so a fixed seed always
// produces the same graph.
package graphgen

package graph

import "errors"

// Sentinel errors returned by Graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex id outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex id out of range")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")
)

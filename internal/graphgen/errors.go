package graphgen

import "errors"

var (
	// ErrTooFewVertices indicates n < 1.
	ErrTooFewVertices = errors.New("graphgen: n must be at least 1")

	// ErrInvalidEdgeFactor indicates edgeFactor < 0.
	ErrInvalidEdgeFactor = errors.New("graphgen: edgeFactor must be non-negative")
)

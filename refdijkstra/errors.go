package refdijkstra

import "errors"

// ErrSourceOutOfRange indicates source is not a valid vertex id of g.
var ErrSourceOutOfRange = errors.New("refdijkstra: source vertex out of range")

package sssp

import "errors"

// ErrSourceOutOfRange indicates source is not a valid vertex id of g.
var ErrSourceOutOfRange = errors.New("sssp: source vertex out of range")

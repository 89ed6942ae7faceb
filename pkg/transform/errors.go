package transform

import "errors"

// ErrUnknownFrame is returned when a frame name is not registered.
var ErrUnknownFrame = errors.New("unknown frame")

// ErrNoPath is returned when no operator chain links two registered frames.
var ErrNoPath = errors.New("no transform path")

// ErrSingularMatrix is returned when an affine matrix cannot be inverted.
var ErrSingularMatrix = errors.New("singular transform matrix")

// ErrNoPosition is returned when a motion has no position to transform.
var ErrNoPosition = errors.New("motion has no position")

package quantity

import "errors"

// ErrUnitMismatch is returned when an operation meets two quantities whose
// unit dimensions are incompatible.
var ErrUnitMismatch = errors.New("incompatible unit dimensions")

// ErrShapeMismatch is returned when two batches cannot be broadcast to a
// common shape.
var ErrShapeMismatch = errors.New("shapes cannot be broadcast")

// ErrUnknownUnit is returned by Parse for an unrecognized unit symbol.
var ErrUnknownUnit = errors.New("unknown unit")

// ErrNotAngular is returned when an angular value is requested from a
// quantity that does not carry an angle dimension.
var ErrNotAngular = errors.New("quantity is not angular")

// ErrIndex is returned for out-of-range element access.
var ErrIndex = errors.New("index out of range")

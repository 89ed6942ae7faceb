package representation

import "errors"

// ErrUnsupportedOperand is returned when an operation meets an operand kind
// it does not define, e.g. adding offsets of different families.
var ErrUnsupportedOperand = errors.New("unsupported operand")

// ErrBaseMismatch is returned when an offset is anchored at a representation
// of the wrong kind.
var ErrBaseMismatch = errors.New("offset base kind mismatch")

// ErrComponentDimension is returned when an offset component carries a unit
// dimension its slot does not admit.
var ErrComponentDimension = errors.New("component has wrong unit dimension")

// ErrUnknownKind is returned for a Kind value outside the closed variant set.
var ErrUnknownKind = errors.New("unknown representation kind")

// ErrBadMatrix is returned when a matrix transform is not 3x3.
var ErrBadMatrix = errors.New("matrix must be 3x3")

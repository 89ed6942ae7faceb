/*
Package quantity implements unit-tagged numeric values for the coordinate
algebra.

A Quantity is a scalar or a one-dimensional batch of float64 values carrying a
Unit. Arithmetic is unit aware: addition and subtraction convert the right
operand into the left operand's unit and fail when the dimensions are
incompatible, while multiplication and division combine units. Scalars
broadcast against batches; two batches must have the same length.

Angles interoperate with github.com/soniakeys/unit, whose radian-backed Angle
type is used wherever a bare angular scalar is more convenient than a tagged
quantity.
*/
package quantity

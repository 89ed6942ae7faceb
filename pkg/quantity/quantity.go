package quantity

import (
	"fmt"
	"math"
	"strings"

	"github.com/soniakeys/unit"
)

// Quantity is an immutable scalar or 1-D batch of values with a unit.
// The zero value is a dimensionless scalar zero.
type Quantity struct {
	values []float64
	scalar bool
	unit   Unit
}

// New returns a scalar quantity.
func New(v float64, u Unit) Quantity {
	return Quantity{values: []float64{v}, scalar: true, unit: u}
}

// NewBatch returns a batch quantity over a copy of vs.
func NewBatch(vs []float64, u Unit) Quantity {
	c := make([]float64, len(vs))
	copy(c, vs)
	return Quantity{values: c, unit: u}
}

// Fill returns a batch of n copies of v.
func Fill(v float64, n int, u Unit) Quantity {
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = v
	}
	return Quantity{values: vs, unit: u}
}

// FromAngle converts a soniakeys angle into a radian scalar.
func FromAngle(a unit.Angle) Quantity {
	return New(a.Rad(), Radian)
}

// Unit returns the quantity's unit.
func (q Quantity) Unit() Unit { return q.unit }

// Len returns the number of elements (1 for scalars).
func (q Quantity) Len() int {
	if q.values == nil {
		return 1
	}
	return len(q.values)
}

// IsScalar reports whether the quantity is a scalar rather than a batch.
func (q Quantity) IsScalar() bool { return q.scalar || q.values == nil }

// Value returns the first element, the natural accessor for scalars.
func (q Quantity) Value() float64 {
	if q.values == nil {
		return 0
	}
	return q.values[0]
}

// At returns the i-th raw value.
func (q Quantity) At(i int) float64 { return q.values[i] }

// Values returns a copy of the raw values.
func (q Quantity) Values() []float64 {
	if q.values == nil {
		return []float64{0}
	}
	c := make([]float64, len(q.values))
	copy(c, q.values)
	return c
}

// Index extracts element i as a scalar quantity.
func (q Quantity) Index(i int) (Quantity, error) {
	if i < 0 || i >= q.Len() {
		return Quantity{}, fmt.Errorf("%w: %d of %d", ErrIndex, i, q.Len())
	}
	return New(q.At(i), q.unit), nil
}

// To converts the quantity into another unit of the same dimension.
func (q Quantity) To(u Unit) (Quantity, error) {
	if !q.unit.Compatible(u) {
		return Quantity{}, fmt.Errorf("%w: cannot convert %s to %s", ErrUnitMismatch, q.unit, u)
	}
	f := q.unit.scaleFactor() / u.scaleFactor()
	out := make([]float64, q.Len())
	for i, v := range q.rawValues() {
		out[i] = v * f
	}
	return Quantity{values: out, scalar: q.IsScalar(), unit: u}, nil
}

// MustTo is To for conversions known to be valid; it panics otherwise.
func (q Quantity) MustTo(u Unit) Quantity {
	out, err := q.To(u)
	if err != nil {
		panic(err)
	}
	return out
}

// SIValues returns the values scaled to base units (m, s, rad).
func (q Quantity) SIValues() []float64 {
	out := make([]float64, q.Len())
	for i, v := range q.rawValues() {
		out[i] = v * q.unit.scaleFactor()
	}
	return out
}

// Radians returns the values in radians; the quantity must be a pure angle.
func (q Quantity) Radians() ([]float64, error) {
	if q.unit.dim != (Dimension{Angle: 1}) {
		return nil, fmt.Errorf("%w: %s", ErrNotAngular, q.unit)
	}
	return q.SIValues(), nil
}

// Angles returns the elements as soniakeys angles; the quantity must be a
// pure angle.
func (q Quantity) Angles() ([]unit.Angle, error) {
	rad, err := q.Radians()
	if err != nil {
		return nil, err
	}
	out := make([]unit.Angle, len(rad))
	for i, r := range rad {
		out[i] = unit.Angle(r)
	}
	return out, nil
}

// Add returns q + o expressed in q's unit.
func (q Quantity) Add(o Quantity) (Quantity, error) { return q.combine(o, 1) }

// Sub returns q - o expressed in q's unit.
func (q Quantity) Sub(o Quantity) (Quantity, error) { return q.combine(o, -1) }

func (q Quantity) combine(o Quantity, sign float64) (Quantity, error) {
	conv, err := o.To(q.unit)
	if err != nil {
		return Quantity{}, err
	}
	av, bv, scalar, err := broadcast(q, conv)
	if err != nil {
		return Quantity{}, err
	}
	out := make([]float64, len(av))
	for i := range av {
		out[i] = av[i] + sign*bv[i]
	}
	return Quantity{values: out, scalar: scalar, unit: q.unit}, nil
}

// Mul returns the elementwise product with the combined unit.
func (q Quantity) Mul(o Quantity) (Quantity, error) {
	av, bv, scalar, err := broadcast(q, o)
	if err != nil {
		return Quantity{}, err
	}
	out := make([]float64, len(av))
	for i := range av {
		out[i] = av[i] * bv[i]
	}
	return Quantity{values: out, scalar: scalar, unit: q.unit.Mul(o.unit)}, nil
}

// Div returns the elementwise quotient with the combined unit.
func (q Quantity) Div(o Quantity) (Quantity, error) {
	av, bv, scalar, err := broadcast(q, o)
	if err != nil {
		return Quantity{}, err
	}
	out := make([]float64, len(av))
	for i := range av {
		out[i] = av[i] / bv[i]
	}
	return Quantity{values: out, scalar: scalar, unit: q.unit.Div(o.unit)}, nil
}

// Scale multiplies by a bare number, preserving the unit.
func (q Quantity) Scale(k float64) Quantity {
	out := make([]float64, q.Len())
	for i, v := range q.rawValues() {
		out[i] = v * k
	}
	return Quantity{values: out, scalar: q.IsScalar(), unit: q.unit}
}

// Neg returns the negated quantity.
func (q Quantity) Neg() Quantity { return q.Scale(-1) }

// Abs returns the elementwise absolute value.
func (q Quantity) Abs() Quantity {
	out := make([]float64, q.Len())
	for i, v := range q.rawValues() {
		out[i] = math.Abs(v)
	}
	return Quantity{values: out, scalar: q.IsScalar(), unit: q.unit}
}

// Sum reduces the batch axis to a scalar.
func (q Quantity) Sum() Quantity {
	s := 0.0
	for _, v := range q.rawValues() {
		s += v
	}
	return New(s, q.unit)
}

// Mean reduces the batch axis to its scalar average.
func (q Quantity) Mean() Quantity {
	return New(q.Sum().Value()/float64(q.Len()), q.unit)
}

// Sqrt returns the elementwise square root. Every dimension exponent must be
// even for the result to remain a well-formed unit.
func Sqrt(q Quantity) (Quantity, error) {
	d := q.unit.dim
	if d.Length%2 != 0 || d.Time%2 != 0 || d.Angle%2 != 0 {
		return Quantity{}, fmt.Errorf("%w: sqrt of %s", ErrUnitMismatch, q.unit)
	}
	u := Unit{
		name:  sqrtName(q.unit.name),
		dim:   Dimension{Length: d.Length / 2, Time: d.Time / 2, Angle: d.Angle / 2},
		scale: math.Sqrt(q.unit.scaleFactor()),
	}
	out := make([]float64, q.Len())
	for i, v := range q.rawValues() {
		out[i] = math.Sqrt(v)
	}
	return Quantity{values: out, scalar: q.IsScalar(), unit: u}, nil
}

func sqrtName(name string) string {
	if name == "" {
		return ""
	}
	// "kpc kpc" and friends collapse to the repeated symbol.
	if parts := strings.SplitN(name, " ", 2); len(parts) == 2 && parts[0] == parts[1] {
		return parts[0]
	}
	return "(" + name + ")^0.5"
}

// AllClose reports whether the two quantities agree elementwise within atol,
// measured in q's unit. Incompatible units or shapes compare false.
func (q Quantity) AllClose(o Quantity, atol float64) bool {
	conv, err := o.To(q.unit)
	if err != nil {
		return false
	}
	av, bv, _, err := broadcast(q, conv)
	if err != nil {
		return false
	}
	for i := range av {
		if math.Abs(av[i]-bv[i]) > atol {
			return false
		}
	}
	return true
}

func (q Quantity) String() string {
	var val string
	if q.IsScalar() {
		val = fmt.Sprintf("%g", q.Value())
	} else {
		parts := make([]string, q.Len())
		for i, v := range q.rawValues() {
			parts[i] = fmt.Sprintf("%g", v)
		}
		val = "[" + strings.Join(parts, " ") + "]"
	}
	if q.unit.name == "" {
		return val
	}
	return val + " " + q.unit.name
}

func (q Quantity) rawValues() []float64 {
	if q.values == nil {
		return []float64{0}
	}
	return q.values
}

func broadcast(a, b Quantity) (av, bv []float64, scalar bool, err error) {
	av, bv = a.rawValues(), b.rawValues()
	switch {
	case len(av) == len(bv):
		return av, bv, a.IsScalar() && b.IsScalar(), nil
	case a.IsScalar():
		return expand(av[0], len(bv)), bv, false, nil
	case b.IsScalar():
		return av, expand(bv[0], len(av)), false, nil
	default:
		return nil, nil, false, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, len(av), len(bv))
	}
}

func expand(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// BroadcastAll expands every quantity to the common batch shape, or fails
// when two distinct batch lengths are present.
func BroadcastAll(qs ...Quantity) ([]Quantity, error) {
	n := 1
	scalar := true
	for _, q := range qs {
		if !q.IsScalar() {
			scalar = false
			if n != 1 && n != q.Len() {
				return nil, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, n, q.Len())
			}
			n = q.Len()
		}
	}
	out := make([]Quantity, len(qs))
	for i, q := range qs {
		if q.IsScalar() && !scalar {
			out[i] = Quantity{values: expand(q.Value(), n), unit: q.unit}
		} else {
			out[i] = Quantity{values: q.Values(), scalar: scalar, unit: q.unit}
		}
	}
	return out, nil
}

package representation

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/mkleist/astrolabe/pkg/quantity"
)

// Offset is a differential displacement expressed in the tangent space of a
// base point of a specific kind. Offsets are immutable like representations.
// Components may carry per-time units, which makes an offset a velocity.
type Offset interface {
	// Components names the differential components in canonical order.
	Components() []string
	// BaseKind is the representation kind the offset is anchored to.
	BaseKind() Kind
	// Len returns the batch length.
	Len() int
	// IsScalar reports whether the offset is a single displacement.
	IsScalar() bool

	// ToCartesian linearizes the offset at base: each component times the
	// base's scale factor along the base's unit vector, summed.
	ToCartesian(base Representation) (*Cartesian, error)
	// Norm returns the Euclidean length of the linearized displacement.
	Norm(base Representation) (quantity.Quantity, error)

	// Add and Sub combine offsets of the same concrete type componentwise.
	Add(o Offset) (Offset, error)
	Sub(o Offset) (Offset, error)
	// Neg negates every component.
	Neg() Offset
	// Scale multiplies every component by a bare number.
	Scale(k float64) Offset

	// Index extracts element i as a scalar offset.
	Index(i int) (Offset, error)

	fmt.Stringer
}

// OffsetFromCartesian projects a Cartesian displacement into the requested
// offset kind at base. Projecting into a UnitSpherical offset discards the
// displacement's component along the base's radial direction; that radial
// information is lost.
func OffsetFromCartesian(kind Kind, c *Cartesian, base Representation) (Offset, error) {
	switch kind {
	case KindCartesian:
		return &CartesianOffset{vec: c}, nil
	case KindSpherical:
		ds, err := projectOnto(base, KindSpherical, c)
		if err != nil {
			return nil, err
		}
		return &SphericalOffset{dLon: ds[0], dLat: ds[1], dDistance: ds[2]}, nil
	case KindUnitSpherical:
		ds, err := projectOnto(base, KindUnitSpherical, c)
		if err != nil {
			return nil, err
		}
		return &UnitSphericalOffset{dLon: ds[0], dLat: ds[1]}, nil
	case KindPhysicsSpherical:
		ds, err := projectOnto(base, KindPhysicsSpherical, c)
		if err != nil {
			return nil, err
		}
		return &PhysicsSphericalOffset{dPhi: ds[0], dTheta: ds[1], dR: ds[2]}, nil
	case KindCylindrical:
		ds, err := projectOnto(base, KindCylindrical, c)
		if err != nil {
			return nil, err
		}
		return &CylindricalOffset{dRho: ds[0], dPhi: ds[1], dZ: ds[2]}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

// resolveBase checks that base matches the kind an offset is anchored to.
// The only tolerated mismatch is a UnitSpherical base under a Spherical
// offset, which promotes to a unit-radius Spherical.
func resolveBase(base Representation, want Kind) (Representation, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: %s offset needs a base point", ErrBaseMismatch, want)
	}
	if base.Kind() == want {
		return base, nil
	}
	if base.Kind() == KindUnitSpherical && want == KindSpherical {
		return RepresentAs(base, KindSpherical)
	}
	return nil, fmt.Errorf("%w: need %s base, got %s", ErrBaseMismatch, want, base.Kind())
}

// linearize turns differential components into a Cartesian displacement at
// base. diffs align with base.Components().
func linearize(base Representation, diffs []quantity.Quantity) (*Cartesian, error) {
	uv, sf := base.UnitVectors(), base.ScaleFactors()
	var total *Cartesian
	for i, name := range base.Components() {
		f, err := diffs[i].Mul(sf[name])
		if err != nil {
			return nil, fmt.Errorf("offset %s: %w", name, err)
		}
		term, err := uv[name].MulQuantity(f)
		if err != nil {
			return nil, fmt.Errorf("offset %s: %w", name, err)
		}
		if total == nil {
			total = term
			continue
		}
		if total, err = total.addScaled(term, 1); err != nil {
			return nil, fmt.Errorf("offset %s: %w", name, err)
		}
	}
	return total, nil
}

// projectOnto projects a Cartesian displacement onto the component directions
// of base, which must resolve to want. Components whose scale factor is
// exactly zero (degenerate geometry such as a pole or the cylindrical axis)
// project to zero.
func projectOnto(base Representation, want Kind, c *Cartesian) ([]quantity.Quantity, error) {
	rb, err := resolveBase(base, want)
	if err != nil {
		return nil, err
	}
	uv, sf := rb.UnitVectors(), rb.ScaleFactors()
	names := rb.Components()
	out := make([]quantity.Quantity, len(names))
	for i, name := range names {
		d, err := c.Dot(uv[name])
		if err != nil {
			return nil, fmt.Errorf("offset %s: %w", name, err)
		}
		q, err := safeDiv(d, sf[name])
		if err != nil {
			return nil, fmt.Errorf("offset %s: %w", name, err)
		}
		out[i] = canonical(q)
	}
	return out, nil
}

// safeDiv divides elementwise, mapping zero denominators to zero instead of
// Inf or NaN.
func safeDiv(num, den quantity.Quantity) (quantity.Quantity, error) {
	qs, err := quantity.BroadcastAll(num, den)
	if err != nil {
		return quantity.Quantity{}, err
	}
	nv, dv := qs[0].Values(), qs[1].Values()
	out := make([]float64, len(nv))
	for i := range out {
		if dv[i] != 0 {
			out[i] = nv[i] / dv[i]
		}
	}
	return newQ(out, qs[0].IsScalar(), num.Unit().Div(den.Unit())), nil
}

// canonical rewrites derived units with simple dimensions into their named
// base form, so projections come out in rad rather than composite symbols.
func canonical(q quantity.Quantity) quantity.Quantity {
	switch q.Unit().Dim() {
	case (quantity.Dimension{Angle: 1}):
		return newQ(q.SIValues(), q.IsScalar(), quantity.Radian)
	case (quantity.Dimension{}):
		return newQ(q.SIValues(), q.IsScalar(), quantity.One)
	}
	return q
}

// CartesianOffset is a displacement in rectangular components. It needs no
// base point: the tangent space of a Cartesian position is Cartesian itself.
type CartesianOffset struct {
	vec *Cartesian
}

// NewCartesianOffset builds a CartesianOffset from three compatible
// quantities.
func NewCartesianOffset(dx, dy, dz quantity.Quantity) (*CartesianOffset, error) {
	v, err := NewCartesian(dx, dy, dz)
	if err != nil {
		return nil, err
	}
	return &CartesianOffset{vec: v}, nil
}

// CartesianOffsetFromVector wraps an existing Cartesian as a displacement.
func CartesianOffsetFromVector(c *Cartesian) *CartesianOffset {
	return &CartesianOffset{vec: c}
}

// DX returns the x displacement.
func (o *CartesianOffset) DX() quantity.Quantity { return o.vec.x }

// DY returns the y displacement.
func (o *CartesianOffset) DY() quantity.Quantity { return o.vec.y }

// DZ returns the z displacement.
func (o *CartesianOffset) DZ() quantity.Quantity { return o.vec.z }

// Vector returns the displacement as a Cartesian.
func (o *CartesianOffset) Vector() *Cartesian { return o.vec }

func (o *CartesianOffset) Components() []string { return []string{"d_x", "d_y", "d_z"} }
func (o *CartesianOffset) BaseKind() Kind       { return KindCartesian }
func (o *CartesianOffset) Len() int             { return o.vec.Len() }
func (o *CartesianOffset) IsScalar() bool       { return o.vec.IsScalar() }

// ToCartesian returns the displacement itself; the base is irrelevant and may
// be nil.
func (o *CartesianOffset) ToCartesian(base Representation) (*Cartesian, error) {
	return o.vec, nil
}

func (o *CartesianOffset) Norm(base Representation) (quantity.Quantity, error) {
	return o.vec.Norm(), nil
}

func (o *CartesianOffset) Add(other Offset) (Offset, error) { return o.addScaled(other, 1) }
func (o *CartesianOffset) Sub(other Offset) (Offset, error) { return o.addScaled(other, -1) }

func (o *CartesianOffset) addScaled(other Offset, sign float64) (Offset, error) {
	co, ok := other.(*CartesianOffset)
	if !ok {
		return nil, fmt.Errorf("%w: cannot combine %T with %T", ErrUnsupportedOperand, o, other)
	}
	v, err := o.vec.addScaled(co.vec, sign)
	if err != nil {
		return nil, err
	}
	return &CartesianOffset{vec: v}, nil
}

func (o *CartesianOffset) Neg() Offset            { return &CartesianOffset{vec: o.vec.scale(-1)} }
func (o *CartesianOffset) Scale(k float64) Offset { return &CartesianOffset{vec: o.vec.scale(k)} }

// MatMul rotates the displacement by a 3x3 matrix.
func (o *CartesianOffset) MatMul(m *mat.Dense) (*CartesianOffset, error) {
	v, err := o.vec.MatMul(m)
	if err != nil {
		return nil, err
	}
	return &CartesianOffset{vec: v}, nil
}

func (o *CartesianOffset) Index(i int) (Offset, error) {
	v, err := o.vec.Index(i)
	if err != nil {
		return nil, err
	}
	return &CartesianOffset{vec: v.(*Cartesian)}, nil
}

func (o *CartesianOffset) String() string {
	return fmt.Sprintf("CartesianOffset{d_x: %s, d_y: %s, d_z: %s}", o.vec.x, o.vec.y, o.vec.z)
}

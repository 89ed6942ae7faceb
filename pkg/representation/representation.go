package representation

import (
	"fmt"

	"github.com/mkleist/astrolabe/pkg/quantity"
)

// Kind enumerates the closed set of representation variants.
type Kind int

const (
	KindCartesian Kind = iota
	KindSpherical
	KindUnitSpherical
	KindPhysicsSpherical
	KindCylindrical
)

var kindNames = map[Kind]string{
	KindCartesian:        "cartesian",
	KindSpherical:        "spherical",
	KindUnitSpherical:    "unitspherical",
	KindPhysicsSpherical: "physicsspherical",
	KindCylindrical:      "cylindrical",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// KindFromName resolves a kind by its lowercase name.
func KindFromName(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Generalize returns the kind a binary operation between k and o produces:
// the left operand's kind, except that UnitSpherical yields to Spherical
// whenever the operation can introduce a radial scale.
func (k Kind) Generalize(o Kind) Kind {
	if k == KindUnitSpherical && o == KindSpherical {
		return KindSpherical
	}
	return k
}

// dimensional maps UnitSpherical to Spherical and leaves every other kind
// alone. Arithmetic results use it because they are no longer guaranteed to
// lie on the unit sphere.
func (k Kind) dimensional() Kind {
	if k == KindUnitSpherical {
		return KindSpherical
	}
	return k
}

// Representation is a point (or batch of points) in 3-space expressed in one
// of the five coordinate variants. Implementations are immutable; every
// operation returns a fresh value.
type Representation interface {
	// Kind identifies the variant.
	Kind() Kind
	// Components names the coordinate components in canonical order.
	Components() []string
	// Len returns the batch length (1 for scalars).
	Len() int
	// IsScalar reports whether the value is a single point.
	IsScalar() bool

	// ToCartesian converts to the Cartesian hub representation.
	ToCartesian() *Cartesian
	// Norm returns the Euclidean distance from the origin per element.
	Norm() quantity.Quantity
	// UnitVectors returns the local orthonormal basis vector for each
	// component, as dimensionless Cartesians keyed by component name.
	UnitVectors() map[string]*Cartesian
	// ScaleFactors returns the length of the partial derivative of the
	// position with respect to each component.
	ScaleFactors() map[string]quantity.Quantity

	// Add and Sub combine two representations through the Cartesian hub.
	// The result takes the left operand's kind, generalized.
	Add(o Representation) (Representation, error)
	Sub(o Representation) (Representation, error)
	// Neg negates the position.
	Neg() Representation
	// Scale multiplies the position by a bare number. A UnitSpherical
	// promotes to Spherical because the scale becomes its radius.
	Scale(k float64) Representation
	// Mul and Div scale by a quantity, combining units.
	Mul(q quantity.Quantity) (Representation, error)
	Div(q quantity.Quantity) (Representation, error)

	// AddOffset and SubOffset displace the point by a differential offset
	// linearized at this point.
	AddOffset(o Offset) (Representation, error)
	SubOffset(o Offset) (Representation, error)

	// Sum and Mean reduce the batch axis componentwise in Cartesian space.
	Sum() (Representation, error)
	Mean() (Representation, error)

	// Dot returns the elementwise scalar product in Cartesian space.
	Dot(o Representation) (quantity.Quantity, error)
	// Cross returns the elementwise vector product, in this operand's
	// generalized kind.
	Cross(o Representation) (Representation, error)

	// Index extracts element i as a scalar representation, preserving
	// component metadata such as longitude wrap angles.
	Index(i int) (Representation, error)

	fmt.Stringer
}

// FromCartesian converts a Cartesian position into the requested kind.
func FromCartesian(kind Kind, c *Cartesian) (Representation, error) {
	switch kind {
	case KindCartesian:
		return c, nil
	case KindSpherical:
		return SphericalFromCartesian(c), nil
	case KindUnitSpherical:
		return UnitSphericalFromCartesian(c), nil
	case KindPhysicsSpherical:
		return PhysicsSphericalFromCartesian(c), nil
	case KindCylindrical:
		return CylindricalFromCartesian(c), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

// RepresentAs converts r into the requested kind. Conversions inside the
// spherical family move angles directly instead of pivoting through
// Cartesian, which keeps longitudes bit-exact and avoids pole round-off.
func RepresentAs(r Representation, kind Kind) (Representation, error) {
	if r.Kind() == kind {
		return r, nil
	}
	switch v := r.(type) {
	case *Spherical:
		switch kind {
		case KindUnitSpherical:
			return &UnitSpherical{lon: v.lon, lat: v.lat}, nil
		case KindPhysicsSpherical:
			return physicsFromLatitude(v.lon, v.lat, v.distance)
		}
	case *UnitSpherical:
		switch kind {
		case KindSpherical:
			return &Spherical{lon: v.lon, lat: v.lat, distance: onesLike(v.Len(), v.IsScalar())}, nil
		case KindPhysicsSpherical:
			return physicsFromLatitude(v.lon, v.lat, onesLike(v.Len(), v.IsScalar()))
		}
	case *PhysicsSpherical:
		switch kind {
		case KindSpherical:
			lat, err := latitudeFromTheta(v.theta)
			if err != nil {
				return nil, err
			}
			return &Spherical{lon: v.phi, lat: lat, distance: v.r}, nil
		case KindUnitSpherical:
			lat, err := latitudeFromTheta(v.theta)
			if err != nil {
				return nil, err
			}
			return &UnitSpherical{lon: v.phi, lat: lat}, nil
		}
	}
	return FromCartesian(kind, r.ToCartesian())
}

// combine implements Add and Sub through the Cartesian hub.
func combine(left, right Representation, sign float64) (Representation, error) {
	if right == nil {
		return nil, fmt.Errorf("%w: nil operand", ErrUnsupportedOperand)
	}
	sum, err := left.ToCartesian().addScaled(right.ToCartesian(), sign)
	if err != nil {
		return nil, err
	}
	return FromCartesian(left.Kind().Generalize(right.Kind()).dimensional(), sum)
}

// applyOffset displaces r by sign*o, linearizing the offset at r.
func applyOffset(r Representation, o Offset, sign float64) (Representation, error) {
	if o == nil {
		return nil, fmt.Errorf("%w: nil offset", ErrUnsupportedOperand)
	}
	oc, err := o.ToCartesian(r)
	if err != nil {
		return nil, err
	}
	sum, err := r.ToCartesian().addScaled(oc, sign)
	if err != nil {
		return nil, err
	}
	return FromCartesian(r.Kind().dimensional(), sum)
}

// reduce implements Sum and Mean for the non-Cartesian kinds.
func reduce(r Representation, mean bool) (Representation, error) {
	c := r.ToCartesian().sumCartesian()
	if mean {
		c = c.scale(1 / float64(r.Len()))
	}
	return FromCartesian(r.Kind().dimensional(), c)
}

func mustQ(q quantity.Quantity, err error) quantity.Quantity {
	if err != nil {
		panic(fmt.Sprintf("representation: internal arithmetic failed: %v", err))
	}
	return q
}

func newQ(vals []float64, scalar bool, u quantity.Unit) quantity.Quantity {
	if scalar {
		return quantity.New(vals[0], u)
	}
	return quantity.NewBatch(vals, u)
}

func onesLike(n int, scalar bool) quantity.Quantity {
	if scalar {
		return quantity.New(1, quantity.One)
	}
	return quantity.Fill(1, n, quantity.One)
}

// oneRadian divides scale factors so that length-per-angle factors multiply
// angular differentials into plain lengths.
var oneRadian = quantity.New(1, quantity.Radian)

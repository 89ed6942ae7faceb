package quantity

import (
	"fmt"
	"math"
)

// Dimension is the exponent vector of a unit over the base dimensions used by
// the coordinate algebra. Angle is tracked as its own dimension so that scale
// factors (length per angle) and proper motions (angle per time) stay honest.
type Dimension struct {
	Length int
	Time   int
	Angle  int
}

// Mul returns the dimension of a product.
func (d Dimension) Mul(o Dimension) Dimension {
	return Dimension{d.Length + o.Length, d.Time + o.Time, d.Angle + o.Angle}
}

// Div returns the dimension of a quotient.
func (d Dimension) Div(o Dimension) Dimension {
	return Dimension{d.Length - o.Length, d.Time - o.Time, d.Angle - o.Angle}
}

// Zero reports whether the dimension is dimensionless.
func (d Dimension) Zero() bool { return d == Dimension{} }

func (d Dimension) String() string {
	if d.Zero() {
		return "1"
	}
	s := ""
	for _, p := range []struct {
		sym string
		exp int
	}{{"L", d.Length}, {"T", d.Time}, {"A", d.Angle}} {
		if p.exp != 0 {
			if s != "" {
				s += " "
			}
			s += fmt.Sprintf("%s%d", p.sym, p.exp)
		}
	}
	return s
}

// Unit is a named scale over a Dimension. The scale converts a value in this
// unit to the SI-ish base units meter, second, radian.
type Unit struct {
	name  string
	dim   Dimension
	scale float64
}

// NewUnit builds a custom unit from a name, dimension and base scale.
func NewUnit(name string, dim Dimension, scale float64) Unit {
	return Unit{name: name, dim: dim, scale: scale}
}

// Name returns the unit symbol; the dimensionless unit has an empty name.
func (u Unit) Name() string { return u.name }

// Dim returns the unit's dimension vector.
func (u Unit) Dim() Dimension { return u.dim }

// Scale returns the multiplier converting values in u to base units.
func (u Unit) Scale() float64 { return u.scaleFactor() }

// scaleFactor treats the zero Unit as dimensionless with factor one, keeping
// zero-value quantities arithmetically inert instead of collapsing every
// conversion through them to zero or NaN.
func (u Unit) scaleFactor() float64 {
	if u.scale == 0 {
		return 1
	}
	return u.scale
}

// Compatible reports whether two units share a dimension and therefore can be
// converted into each other.
func (u Unit) Compatible(o Unit) bool { return u.dim == o.dim }

// Mul returns the product unit.
func (u Unit) Mul(o Unit) Unit {
	return Unit{name: joinNames(u.name, o.name, " "), dim: u.dim.Mul(o.dim), scale: u.scaleFactor() * o.scaleFactor()}
}

// Div returns the quotient unit.
func (u Unit) Div(o Unit) Unit {
	name := ""
	switch {
	case o.name == "":
		name = u.name
	case u.name == "":
		name = "1/" + o.name
	default:
		name = u.name + "/" + o.name
	}
	return Unit{name: name, dim: u.dim.Div(o.dim), scale: u.scaleFactor() / o.scaleFactor()}
}

func (u Unit) String() string {
	if u.name == "" {
		return "(dimensionless)"
	}
	return u.name
}

func joinNames(a, b, sep string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + sep + b
	}
}

// Built-in units. Lengths scale to meters, times to seconds, angles to
// radians.
var (
	One = Unit{scale: 1}

	Meter            = Unit{name: "m", dim: Dimension{Length: 1}, scale: 1}
	Kilometer        = Unit{name: "km", dim: Dimension{Length: 1}, scale: 1e3}
	AstronomicalUnit = Unit{name: "AU", dim: Dimension{Length: 1}, scale: 1.495978707e11}
	Parsec           = Unit{name: "pc", dim: Dimension{Length: 1}, scale: 3.0856775814913673e16}
	Kiloparsec       = Unit{name: "kpc", dim: Dimension{Length: 1}, scale: 3.0856775814913673e19}

	Second     = Unit{name: "s", dim: Dimension{Time: 1}, scale: 1}
	Day        = Unit{name: "d", dim: Dimension{Time: 1}, scale: 86400}
	JulianYear = Unit{name: "yr", dim: Dimension{Time: 1}, scale: 365.25 * 86400}

	Radian         = Unit{name: "rad", dim: Dimension{Angle: 1}, scale: 1}
	Degree         = Unit{name: "deg", dim: Dimension{Angle: 1}, scale: math.Pi / 180}
	Arcminute      = Unit{name: "arcmin", dim: Dimension{Angle: 1}, scale: math.Pi / 180 / 60}
	Arcsecond      = Unit{name: "arcsec", dim: Dimension{Angle: 1}, scale: math.Pi / 180 / 3600}
	Milliarcsecond = Unit{name: "mas", dim: Dimension{Angle: 1}, scale: math.Pi / 180 / 3600e3}

	KilometerPerSecond    = Unit{name: "km/s", dim: Dimension{Length: 1, Time: -1}, scale: 1e3}
	MilliarcsecondPerYear = Unit{name: "mas/yr", dim: Dimension{Angle: 1, Time: -1}, scale: math.Pi / 180 / 3600e3 / (365.25 * 86400)}
)

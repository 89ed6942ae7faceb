package representation

import (
	"fmt"
	"math"

	"github.com/mkleist/astrolabe/pkg/quantity"
)

// Cylindrical is a position in axial distance rho, azimuth phi and height z.
// Rho and z must share a unit dimension; phi is a pure angle.
type Cylindrical struct {
	rho quantity.Quantity
	phi quantity.Quantity
	z   quantity.Quantity
}

// NewCylindrical builds a Cylindrical, broadcasting the components to a
// common shape.
func NewCylindrical(rho, phi, z quantity.Quantity) (*Cylindrical, error) {
	if _, err := phi.Radians(); err != nil {
		return nil, fmt.Errorf("phi: %w", err)
	}
	if !rho.Unit().Compatible(z.Unit()) {
		return nil, fmt.Errorf("%w: rho in %s, z in %s", ErrComponentDimension, rho.Unit(), z.Unit())
	}
	qs, err := quantity.BroadcastAll(rho, phi, z)
	if err != nil {
		return nil, fmt.Errorf("cylindrical: %w", err)
	}
	return &Cylindrical{rho: qs[0], phi: qs[1], z: qs[2]}, nil
}

// CylindricalFromCartesian converts through atan2; rho and z keep the
// Cartesian component unit.
func CylindricalFromCartesian(c *Cartesian) *Cylindrical {
	xv, yv, zv := c.x.Values(), c.y.Values(), c.z.Values()
	n := len(xv)
	rho, phi, z := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		rho[i] = math.Hypot(xv[i], yv[i])
		phi[i] = math.Atan2(yv[i], xv[i])
		z[i] = zv[i]
	}
	scalar := c.IsScalar()
	return &Cylindrical{
		rho: newQ(rho, scalar, c.x.Unit()),
		phi: newQ(phi, scalar, quantity.Radian),
		z:   newQ(z, scalar, c.x.Unit()),
	}
}

// Rho returns the axial distance component.
func (c *Cylindrical) Rho() quantity.Quantity { return c.rho }

// Phi returns the azimuth component.
func (c *Cylindrical) Phi() quantity.Quantity { return c.phi }

// Z returns the height component.
func (c *Cylindrical) Z() quantity.Quantity { return c.z }

func (c *Cylindrical) Kind() Kind           { return KindCylindrical }
func (c *Cylindrical) Components() []string { return []string{"rho", "phi", "z"} }
func (c *Cylindrical) Len() int             { return c.rho.Len() }
func (c *Cylindrical) IsScalar() bool       { return c.rho.IsScalar() }

func (c *Cylindrical) phiRadians() []float64 {
	rad, err := c.phi.Radians()
	if err != nil {
		panic(err) // constructor enforces an angular unit
	}
	return rad
}

func (c *Cylindrical) ToCartesian() *Cartesian {
	phi := c.phiRadians()
	rhov := c.rho.Values()
	zv := c.z.MustTo(c.rho.Unit()).Values()
	n := len(rhov)
	x, y, z := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		sinphi, cosphi := math.Sincos(phi[i])
		x[i] = rhov[i] * cosphi
		y[i] = rhov[i] * sinphi
		z[i] = zv[i]
	}
	return newCartesianRaw(x, y, z, c.rho.Unit(), c.IsScalar())
}

func (c *Cylindrical) Norm() quantity.Quantity { return c.ToCartesian().Norm() }

func (c *Cylindrical) UnitVectors() map[string]*Cartesian {
	phi := c.phiRadians()
	n := len(phi)
	rx, ry, rz := make([]float64, n), make([]float64, n), make([]float64, n)
	px, py, pz := make([]float64, n), make([]float64, n), make([]float64, n)
	zx, zy, zz := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		sinphi, cosphi := math.Sincos(phi[i])
		rx[i], ry[i], rz[i] = cosphi, sinphi, 0
		px[i], py[i], pz[i] = -sinphi, cosphi, 0
		zx[i], zy[i], zz[i] = 0, 0, 1
	}
	scalar := c.IsScalar()
	return map[string]*Cartesian{
		"rho": newCartesianRaw(rx, ry, rz, quantity.One, scalar),
		"phi": newCartesianRaw(px, py, pz, quantity.One, scalar),
		"z":   newCartesianRaw(zx, zy, zz, quantity.One, scalar),
	}
}

// ScaleFactors returns one per unit rho, rho per unit phi and one per unit z.
func (c *Cylindrical) ScaleFactors() map[string]quantity.Quantity {
	ones := onesLike(c.Len(), c.IsScalar())
	return map[string]quantity.Quantity{
		"rho": ones,
		"phi": mustQ(c.rho.Div(oneRadian)),
		"z":   ones,
	}
}

func (c *Cylindrical) Add(o Representation) (Representation, error) { return combine(c, o, 1) }
func (c *Cylindrical) Sub(o Representation) (Representation, error) { return combine(c, o, -1) }

func (c *Cylindrical) Neg() Representation {
	return &Cylindrical{rho: c.rho.Neg(), phi: c.phi, z: c.z.Neg()}
}

func (c *Cylindrical) Scale(k float64) Representation {
	return &Cylindrical{rho: c.rho.Scale(k), phi: c.phi, z: c.z.Scale(k)}
}

func (c *Cylindrical) Mul(q quantity.Quantity) (Representation, error) {
	rho, err := c.rho.Mul(q)
	if err != nil {
		return nil, err
	}
	z, err := c.z.Mul(q)
	if err != nil {
		return nil, err
	}
	return &Cylindrical{rho: rho, phi: c.phi, z: z}, nil
}

func (c *Cylindrical) Div(q quantity.Quantity) (Representation, error) {
	rho, err := c.rho.Div(q)
	if err != nil {
		return nil, err
	}
	z, err := c.z.Div(q)
	if err != nil {
		return nil, err
	}
	return &Cylindrical{rho: rho, phi: c.phi, z: z}, nil
}

func (c *Cylindrical) AddOffset(o Offset) (Representation, error) { return applyOffset(c, o, 1) }
func (c *Cylindrical) SubOffset(o Offset) (Representation, error) { return applyOffset(c, o, -1) }

func (c *Cylindrical) Sum() (Representation, error)  { return reduce(c, false) }
func (c *Cylindrical) Mean() (Representation, error) { return reduce(c, true) }

func (c *Cylindrical) Dot(o Representation) (quantity.Quantity, error) {
	return c.ToCartesian().Dot(o)
}

func (c *Cylindrical) Cross(o Representation) (Representation, error) {
	out, err := c.ToCartesian().crossCartesian(o)
	if err != nil {
		return nil, err
	}
	return FromCartesian(KindCylindrical, out)
}

func (c *Cylindrical) Index(i int) (Representation, error) {
	rho, err := c.rho.Index(i)
	if err != nil {
		return nil, err
	}
	phi, err := c.phi.Index(i)
	if err != nil {
		return nil, err
	}
	z, err := c.z.Index(i)
	if err != nil {
		return nil, err
	}
	return &Cylindrical{rho: rho, phi: phi, z: z}, nil
}

func (c *Cylindrical) String() string {
	return fmt.Sprintf("Cylindrical{rho: %s, phi: %s, z: %s}", c.rho, c.phi, c.z)
}

package representation

import (
	"fmt"
	"math"

	"github.com/mkleist/astrolabe/pkg/angle"
	"github.com/mkleist/astrolabe/pkg/quantity"
)

// ErrThetaRange is returned when an inclination leaves [0°, 180°].
var ErrThetaRange = fmt.Errorf("theta outside [0, 180] deg")

const thetaSlack = 1e-10 // radians

// PhysicsSpherical is the physics convention: azimuth phi, inclination theta
// measured down from the +z axis in [0°, 180°], and radius r.
type PhysicsSpherical struct {
	phi   angle.Longitude
	theta quantity.Quantity
	r     quantity.Quantity
}

// NewPhysicsSpherical builds a PhysicsSpherical, wrapping phi at 360° and
// validating theta's range.
func NewPhysicsSpherical(phi, theta, r quantity.Quantity) (*PhysicsSpherical, error) {
	qs, err := quantity.BroadcastAll(phi, theta, r)
	if err != nil {
		return nil, fmt.Errorf("physicsspherical: %w", err)
	}
	p, err := angle.NewLongitude(qs[0])
	if err != nil {
		return nil, fmt.Errorf("phi: %w", err)
	}
	if err := validateTheta(qs[1]); err != nil {
		return nil, err
	}
	return &PhysicsSpherical{phi: p, theta: qs[1], r: qs[2]}, nil
}

func validateTheta(theta quantity.Quantity) error {
	rad, err := theta.Radians()
	if err != nil {
		return fmt.Errorf("theta: %w", err)
	}
	for _, t := range rad {
		if t < -thetaSlack || t > math.Pi+thetaSlack {
			return fmt.Errorf("%w: got %g deg", ErrThetaRange, t*180/math.Pi)
		}
	}
	return nil
}

// physicsFromLatitude converts the latitude convention into the inclination
// convention: theta = 90° - lat.
func physicsFromLatitude(lon angle.Longitude, lat angle.Latitude, r quantity.Quantity) (*PhysicsSpherical, error) {
	theta, err := quantity.New(90, quantity.Degree).Sub(lat.Quantity())
	if err != nil {
		return nil, err
	}
	return &PhysicsSpherical{phi: lon, theta: theta, r: r}, nil
}

// latitudeFromTheta converts the inclination convention back: lat = 90° - theta.
func latitudeFromTheta(theta quantity.Quantity) (angle.Latitude, error) {
	latQ, err := quantity.New(90, quantity.Degree).Sub(theta)
	if err != nil {
		return angle.Latitude{}, err
	}
	return angle.NewLatitude(latQ)
}

// PhysicsSphericalFromCartesian converts through atan2; theta comes out of
// atan2(hypot(x, y), z), already within [0°, 180°].
func PhysicsSphericalFromCartesian(c *Cartesian) *PhysicsSpherical {
	xv, yv, zv := c.x.Values(), c.y.Values(), c.z.Values()
	n := len(xv)
	phi, theta, r := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		s := math.Hypot(xv[i], yv[i])
		phi[i] = math.Atan2(yv[i], xv[i])
		theta[i] = math.Atan2(s, zv[i])
		r[i] = math.Hypot(s, zv[i])
	}
	scalar := c.IsScalar()
	p, err := angle.NewLongitude(newQ(phi, scalar, quantity.Radian))
	if err != nil {
		panic(err) // radian input cannot fail
	}
	return &PhysicsSpherical{
		phi:   p,
		theta: newQ(theta, scalar, quantity.Radian),
		r:     newQ(r, scalar, c.x.Unit()),
	}
}

// Phi returns the azimuth component.
func (p *PhysicsSpherical) Phi() angle.Longitude { return p.phi }

// Theta returns the inclination component.
func (p *PhysicsSpherical) Theta() quantity.Quantity { return p.theta }

// R returns the radial component.
func (p *PhysicsSpherical) R() quantity.Quantity { return p.r }

func (p *PhysicsSpherical) Kind() Kind           { return KindPhysicsSpherical }
func (p *PhysicsSpherical) Components() []string { return []string{"phi", "theta", "r"} }
func (p *PhysicsSpherical) Len() int             { return p.r.Len() }
func (p *PhysicsSpherical) IsScalar() bool       { return p.r.IsScalar() }

func (p *PhysicsSpherical) thetaRadians() []float64 {
	rad, err := p.theta.Radians()
	if err != nil {
		panic(err) // constructor enforces an angular unit
	}
	return rad
}

func (p *PhysicsSpherical) ToCartesian() *Cartesian {
	phi, theta := p.phi.Radians(), p.thetaRadians()
	rv := p.r.Values()
	n := len(rv)
	x, y, z := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		sinphi, cosphi := math.Sincos(phi[i])
		sintheta, costheta := math.Sincos(theta[i])
		x[i] = rv[i] * sintheta * cosphi
		y[i] = rv[i] * sintheta * sinphi
		z[i] = rv[i] * costheta
	}
	return newCartesianRaw(x, y, z, p.r.Unit(), p.IsScalar())
}

func (p *PhysicsSpherical) Norm() quantity.Quantity { return p.r.Abs() }

func (p *PhysicsSpherical) UnitVectors() map[string]*Cartesian {
	phi, theta := p.phi.Radians(), p.thetaRadians()
	n := len(phi)
	px, py, pz := make([]float64, n), make([]float64, n), make([]float64, n)
	tx, ty, tz := make([]float64, n), make([]float64, n), make([]float64, n)
	rx, ry, rz := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		sinphi, cosphi := math.Sincos(phi[i])
		sintheta, costheta := math.Sincos(theta[i])
		px[i], py[i], pz[i] = -sinphi, cosphi, 0
		tx[i], ty[i], tz[i] = costheta*cosphi, costheta*sinphi, -sintheta
		rx[i], ry[i], rz[i] = sintheta*cosphi, sintheta*sinphi, costheta
	}
	scalar := p.IsScalar()
	return map[string]*Cartesian{
		"phi":   newCartesianRaw(px, py, pz, quantity.One, scalar),
		"theta": newCartesianRaw(tx, ty, tz, quantity.One, scalar),
		"r":     newCartesianRaw(rx, ry, rz, quantity.One, scalar),
	}
}

// ScaleFactors returns r*sin(theta) per unit phi, r per unit theta and one
// per unit r.
func (p *PhysicsSpherical) ScaleFactors() map[string]quantity.Quantity {
	theta := p.thetaRadians()
	sintheta := make([]float64, len(theta))
	for i, t := range theta {
		sintheta[i] = math.Sin(t)
	}
	sinthetaQ := newQ(sintheta, p.IsScalar(), quantity.One)
	return map[string]quantity.Quantity{
		"phi":   mustQ(mustQ(p.r.Mul(sinthetaQ)).Div(oneRadian)),
		"theta": mustQ(p.r.Div(oneRadian)),
		"r":     onesLike(p.Len(), p.IsScalar()),
	}
}

func (p *PhysicsSpherical) Add(o Representation) (Representation, error) { return combine(p, o, 1) }
func (p *PhysicsSpherical) Sub(o Representation) (Representation, error) { return combine(p, o, -1) }

func (p *PhysicsSpherical) Neg() Representation {
	return &PhysicsSpherical{phi: p.phi, theta: p.theta, r: p.r.Neg()}
}

func (p *PhysicsSpherical) Scale(k float64) Representation {
	return &PhysicsSpherical{phi: p.phi, theta: p.theta, r: p.r.Scale(k)}
}

func (p *PhysicsSpherical) Mul(q quantity.Quantity) (Representation, error) {
	r, err := p.r.Mul(q)
	if err != nil {
		return nil, err
	}
	return &PhysicsSpherical{phi: p.phi, theta: p.theta, r: r}, nil
}

func (p *PhysicsSpherical) Div(q quantity.Quantity) (Representation, error) {
	r, err := p.r.Div(q)
	if err != nil {
		return nil, err
	}
	return &PhysicsSpherical{phi: p.phi, theta: p.theta, r: r}, nil
}

func (p *PhysicsSpherical) AddOffset(o Offset) (Representation, error) { return applyOffset(p, o, 1) }
func (p *PhysicsSpherical) SubOffset(o Offset) (Representation, error) { return applyOffset(p, o, -1) }

func (p *PhysicsSpherical) Sum() (Representation, error)  { return reduce(p, false) }
func (p *PhysicsSpherical) Mean() (Representation, error) { return reduce(p, true) }

func (p *PhysicsSpherical) Dot(o Representation) (quantity.Quantity, error) {
	return p.ToCartesian().Dot(o)
}

func (p *PhysicsSpherical) Cross(o Representation) (Representation, error) {
	c, err := p.ToCartesian().crossCartesian(o)
	if err != nil {
		return nil, err
	}
	return FromCartesian(KindPhysicsSpherical, c)
}

func (p *PhysicsSpherical) Index(i int) (Representation, error) {
	phi, err := p.phi.Index(i)
	if err != nil {
		return nil, err
	}
	theta, err := p.theta.Index(i)
	if err != nil {
		return nil, err
	}
	r, err := p.r.Index(i)
	if err != nil {
		return nil, err
	}
	return &PhysicsSpherical{phi: phi, theta: theta, r: r}, nil
}

func (p *PhysicsSpherical) String() string {
	return fmt.Sprintf("PhysicsSpherical{phi: %s, theta: %s, r: %s}", p.phi, p.theta, p.r)
}

package representation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mkleist/astrolabe/pkg/quantity"
)

// Cartesian is a position in rectangular x, y, z components. All three
// components share a unit (y and z are converted into x's unit on
// construction) and a batch shape.
type Cartesian struct {
	x, y, z quantity.Quantity
}

// NewCartesian builds a Cartesian from three compatible quantities,
// converting y and z into x's unit and broadcasting to a common shape.
func NewCartesian(x, y, z quantity.Quantity) (*Cartesian, error) {
	yc, err := y.To(x.Unit())
	if err != nil {
		return nil, fmt.Errorf("cartesian y: %w", err)
	}
	zc, err := z.To(x.Unit())
	if err != nil {
		return nil, fmt.Errorf("cartesian z: %w", err)
	}
	qs, err := quantity.BroadcastAll(x, yc, zc)
	if err != nil {
		return nil, fmt.Errorf("cartesian: %w", err)
	}
	return &Cartesian{x: qs[0], y: qs[1], z: qs[2]}, nil
}

func newCartesianRaw(x, y, z []float64, u quantity.Unit, scalar bool) *Cartesian {
	return &Cartesian{
		x: newQ(x, scalar, u),
		y: newQ(y, scalar, u),
		z: newQ(z, scalar, u),
	}
}

// X returns the x component.
func (c *Cartesian) X() quantity.Quantity { return c.x }

// Y returns the y component.
func (c *Cartesian) Y() quantity.Quantity { return c.y }

// Z returns the z component.
func (c *Cartesian) Z() quantity.Quantity { return c.z }

func (c *Cartesian) Kind() Kind           { return KindCartesian }
func (c *Cartesian) Components() []string { return []string{"x", "y", "z"} }
func (c *Cartesian) Len() int             { return c.x.Len() }
func (c *Cartesian) IsScalar() bool       { return c.x.IsScalar() }

// ToCartesian returns the value itself; Cartesian is the hub.
func (c *Cartesian) ToCartesian() *Cartesian { return c }

// Norm returns sqrt(x^2+y^2+z^2) in the component unit.
func (c *Cartesian) Norm() quantity.Quantity {
	xv, yv, zv := c.x.Values(), c.y.Values(), c.z.Values()
	out := make([]float64, len(xv))
	for i := range out {
		out[i] = norm3(xv[i], yv[i], zv[i])
	}
	return newQ(out, c.IsScalar(), c.x.Unit())
}

func norm3(x, y, z float64) float64 {
	return math.Hypot(math.Hypot(x, y), z)
}

// UnitVectors returns the fixed rectangular basis, shaped like c.
func (c *Cartesian) UnitVectors() map[string]*Cartesian {
	n, scalar := c.Len(), c.IsScalar()
	return map[string]*Cartesian{
		"x": constCartesian(1, 0, 0, n, scalar),
		"y": constCartesian(0, 1, 0, n, scalar),
		"z": constCartesian(0, 0, 1, n, scalar),
	}
}

// ScaleFactors returns all-ones factors; rectangular components are already
// lengths.
func (c *Cartesian) ScaleFactors() map[string]quantity.Quantity {
	ones := onesLike(c.Len(), c.IsScalar())
	return map[string]quantity.Quantity{"x": ones, "y": ones, "z": ones}
}

func constCartesian(x, y, z float64, n int, scalar bool) *Cartesian {
	fill := func(v float64) []float64 {
		vs := make([]float64, n)
		for i := range vs {
			vs[i] = v
		}
		return vs
	}
	return newCartesianRaw(fill(x), fill(y), fill(z), quantity.One, scalar)
}

func (c *Cartesian) Add(o Representation) (Representation, error) { return combine(c, o, 1) }
func (c *Cartesian) Sub(o Representation) (Representation, error) { return combine(c, o, -1) }

// addScaled returns c + sign*o with components in c's unit.
func (c *Cartesian) addScaled(o *Cartesian, sign float64) (*Cartesian, error) {
	os := o.scale(sign)
	x, err := c.x.Add(os.x)
	if err != nil {
		return nil, err
	}
	y, err := c.y.Add(os.y)
	if err != nil {
		return nil, err
	}
	z, err := c.z.Add(os.z)
	if err != nil {
		return nil, err
	}
	return &Cartesian{x: x, y: y, z: z}, nil
}

func (c *Cartesian) scale(k float64) *Cartesian {
	return &Cartesian{x: c.x.Scale(k), y: c.y.Scale(k), z: c.z.Scale(k)}
}

func (c *Cartesian) Neg() Representation            { return c.scale(-1) }
func (c *Cartesian) Scale(k float64) Representation { return c.scale(k) }

// MulQuantity multiplies every component by q, combining units.
func (c *Cartesian) MulQuantity(q quantity.Quantity) (*Cartesian, error) {
	x, err := c.x.Mul(q)
	if err != nil {
		return nil, err
	}
	y, err := c.y.Mul(q)
	if err != nil {
		return nil, err
	}
	z, err := c.z.Mul(q)
	if err != nil {
		return nil, err
	}
	return &Cartesian{x: x, y: y, z: z}, nil
}

// DivQuantity divides every component by q, combining units.
func (c *Cartesian) DivQuantity(q quantity.Quantity) (*Cartesian, error) {
	x, err := c.x.Div(q)
	if err != nil {
		return nil, err
	}
	y, err := c.y.Div(q)
	if err != nil {
		return nil, err
	}
	z, err := c.z.Div(q)
	if err != nil {
		return nil, err
	}
	return &Cartesian{x: x, y: y, z: z}, nil
}

func (c *Cartesian) Mul(q quantity.Quantity) (Representation, error) { return c.MulQuantity(q) }
func (c *Cartesian) Div(q quantity.Quantity) (Representation, error) { return c.DivQuantity(q) }

func (c *Cartesian) AddOffset(o Offset) (Representation, error) { return applyOffset(c, o, 1) }
func (c *Cartesian) SubOffset(o Offset) (Representation, error) { return applyOffset(c, o, -1) }

func (c *Cartesian) sumCartesian() *Cartesian {
	return &Cartesian{x: c.x.Sum(), y: c.y.Sum(), z: c.z.Sum()}
}

func (c *Cartesian) Sum() (Representation, error) { return c.sumCartesian(), nil }
func (c *Cartesian) Mean() (Representation, error) {
	return c.sumCartesian().scale(1 / float64(c.Len())), nil
}

// Dot returns the elementwise scalar product x*x' + y*y' + z*z'.
func (c *Cartesian) Dot(o Representation) (quantity.Quantity, error) {
	if o == nil {
		return quantity.Quantity{}, fmt.Errorf("%w: nil operand", ErrUnsupportedOperand)
	}
	oc := o.ToCartesian()
	tx, err := c.x.Mul(oc.x)
	if err != nil {
		return quantity.Quantity{}, err
	}
	ty, err := c.y.Mul(oc.y)
	if err != nil {
		return quantity.Quantity{}, err
	}
	tz, err := c.z.Mul(oc.z)
	if err != nil {
		return quantity.Quantity{}, err
	}
	s, err := tx.Add(ty)
	if err != nil {
		return quantity.Quantity{}, err
	}
	return s.Add(tz)
}

func (c *Cartesian) crossCartesian(o Representation) (*Cartesian, error) {
	if o == nil {
		return nil, fmt.Errorf("%w: nil operand", ErrUnsupportedOperand)
	}
	oc := o.ToCartesian()
	term := func(a, b, p, q quantity.Quantity) (quantity.Quantity, error) {
		m1, err := a.Mul(b)
		if err != nil {
			return quantity.Quantity{}, err
		}
		m2, err := p.Mul(q)
		if err != nil {
			return quantity.Quantity{}, err
		}
		return m1.Sub(m2)
	}
	x, err := term(c.y, oc.z, c.z, oc.y)
	if err != nil {
		return nil, err
	}
	y, err := term(c.z, oc.x, c.x, oc.z)
	if err != nil {
		return nil, err
	}
	z, err := term(c.x, oc.y, c.y, oc.x)
	if err != nil {
		return nil, err
	}
	return &Cartesian{x: x, y: y, z: z}, nil
}

func (c *Cartesian) Cross(o Representation) (Representation, error) {
	return c.crossCartesian(o)
}

// MatMul applies a 3x3 matrix to the position, returning m * c.
func (c *Cartesian) MatMul(m *mat.Dense) (*Cartesian, error) {
	r, cl := m.Dims()
	if r != 3 || cl != 3 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadMatrix, r, cl)
	}
	xv, yv, zv := c.x.Values(), c.y.Values(), c.z.Values()
	n := len(xv)
	ox, oy, oz := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		ox[i] = m.At(0, 0)*xv[i] + m.At(0, 1)*yv[i] + m.At(0, 2)*zv[i]
		oy[i] = m.At(1, 0)*xv[i] + m.At(1, 1)*yv[i] + m.At(1, 2)*zv[i]
		oz[i] = m.At(2, 0)*xv[i] + m.At(2, 1)*yv[i] + m.At(2, 2)*zv[i]
	}
	return newCartesianRaw(ox, oy, oz, c.x.Unit(), c.IsScalar()), nil
}

func (c *Cartesian) Index(i int) (Representation, error) {
	x, err := c.x.Index(i)
	if err != nil {
		return nil, err
	}
	y, err := c.y.Index(i)
	if err != nil {
		return nil, err
	}
	z, err := c.z.Index(i)
	if err != nil {
		return nil, err
	}
	return &Cartesian{x: x, y: y, z: z}, nil
}

func (c *Cartesian) String() string {
	return fmt.Sprintf("Cartesian{x: %s, y: %s, z: %s}", c.x, c.y, c.z)
}

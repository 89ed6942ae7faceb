// Package angle provides the constrained angular component types used by the
// spherical-family representations: Longitude, which carries a configurable
// wrap angle, and Latitude, which is validated to the closed interval
// [-90°, +90°].
package angle

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"

	"github.com/mkleist/astrolabe/pkg/quantity"
)

// ErrLatitudeRange is returned when a latitude leaves [-90°, +90°].
var ErrLatitudeRange = fmt.Errorf("latitude outside [-90, 90] deg")

const latitudeSlack = 1e-10 // radians, absorbs round-off at the poles

// Longitude is an angular quantity wrapped into a one-turn interval ending at
// the wrap angle: [wrap-360°, wrap). The default wrap angle is 360°.
type Longitude struct {
	q    quantity.Quantity
	wrap unit.Angle
}

// NewLongitude wraps q at the default 360°.
func NewLongitude(q quantity.Quantity) (Longitude, error) {
	return NewLongitudeWrapped(q, unit.AngleFromDeg(360))
}

// NewLongitudeWrapped wraps q at the given wrap angle. The quantity must be a
// pure angle.
func NewLongitudeWrapped(q quantity.Quantity, wrap unit.Angle) (Longitude, error) {
	rad, err := q.Radians()
	if err != nil {
		return Longitude{}, fmt.Errorf("longitude: %w", err)
	}
	lo := wrap.Rad() - 2*math.Pi
	wrapped := make([]float64, len(rad))
	for i, r := range rad {
		wrapped[i] = unit.PMod(r-lo, 2*math.Pi) + lo
	}
	wq := quantity.NewBatch(wrapped, quantity.Radian)
	if q.IsScalar() {
		wq = quantity.New(wrapped[0], quantity.Radian)
	}
	wq, err = wq.To(q.Unit())
	if err != nil {
		return Longitude{}, err
	}
	return Longitude{q: wq, wrap: wrap}, nil
}

// Quantity returns the wrapped angular quantity.
func (l Longitude) Quantity() quantity.Quantity { return l.q }

// WrapAngle returns the configured wrap angle.
func (l Longitude) WrapAngle() unit.Angle { return l.wrap }

// WrapAt re-wraps the longitude at a different wrap angle.
func (l Longitude) WrapAt(wrap unit.Angle) (Longitude, error) {
	return NewLongitudeWrapped(l.q, wrap)
}

// Radians returns the wrapped values in radians.
func (l Longitude) Radians() []float64 {
	rad, err := l.q.Radians()
	if err != nil {
		panic(err) // cannot happen: constructor enforces an angular unit
	}
	return rad
}

// Len returns the batch length.
func (l Longitude) Len() int { return l.q.Len() }

// IsScalar reports whether the longitude is scalar.
func (l Longitude) IsScalar() bool { return l.q.IsScalar() }

// Index extracts element i, preserving the wrap configuration.
func (l Longitude) Index(i int) (Longitude, error) {
	q, err := l.q.Index(i)
	if err != nil {
		return Longitude{}, err
	}
	return Longitude{q: q, wrap: l.wrap}, nil
}

func (l Longitude) String() string { return l.q.String() }

// Latitude is an angular quantity constrained to [-90°, +90°].
type Latitude struct {
	q quantity.Quantity
}

// NewLatitude validates and stores q, which must be a pure angle within
// [-90°, +90°].
func NewLatitude(q quantity.Quantity) (Latitude, error) {
	rad, err := q.Radians()
	if err != nil {
		return Latitude{}, fmt.Errorf("latitude: %w", err)
	}
	for _, r := range rad {
		if math.Abs(r) > math.Pi/2+latitudeSlack {
			return Latitude{}, fmt.Errorf("%w: got %g deg", ErrLatitudeRange, r*180/math.Pi)
		}
	}
	return Latitude{q: q}, nil
}

// Quantity returns the underlying angular quantity.
func (l Latitude) Quantity() quantity.Quantity { return l.q }

// Radians returns the values in radians.
func (l Latitude) Radians() []float64 {
	rad, err := l.q.Radians()
	if err != nil {
		panic(err) // cannot happen: constructor enforces an angular unit
	}
	return rad
}

// Len returns the batch length.
func (l Latitude) Len() int { return l.q.Len() }

// IsScalar reports whether the latitude is scalar.
func (l Latitude) IsScalar() bool { return l.q.IsScalar() }

// Index extracts element i.
func (l Latitude) Index(i int) (Latitude, error) {
	q, err := l.q.Index(i)
	if err != nil {
		return Latitude{}, err
	}
	return Latitude{q: q}, nil
}

func (l Latitude) String() string { return l.q.String() }

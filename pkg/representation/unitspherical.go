package representation

import (
	"fmt"
	"math"

	"github.com/mkleist/astrolabe/pkg/angle"
	"github.com/mkleist/astrolabe/pkg/quantity"
)

// UnitSpherical is a direction on the unit sphere: longitude and latitude
// with no radial component. Any operation that would give the result a
// radial scale returns a Spherical instead.
type UnitSpherical struct {
	lon angle.Longitude
	lat angle.Latitude
}

// NewUnitSpherical builds a UnitSpherical, broadcasting the two angles to a
// common shape and preserving the longitude's wrap angle.
func NewUnitSpherical(lon angle.Longitude, lat angle.Latitude) (*UnitSpherical, error) {
	qs, err := quantity.BroadcastAll(lon.Quantity(), lat.Quantity())
	if err != nil {
		return nil, fmt.Errorf("unitspherical: %w", err)
	}
	blon, err := angle.NewLongitudeWrapped(qs[0], lon.WrapAngle())
	if err != nil {
		return nil, err
	}
	blat, err := angle.NewLatitude(qs[1])
	if err != nil {
		return nil, err
	}
	return &UnitSpherical{lon: blon, lat: blat}, nil
}

// NewUnitSphericalQ is NewUnitSpherical from bare quantities.
func NewUnitSphericalQ(lon, lat quantity.Quantity) (*UnitSpherical, error) {
	l, err := angle.NewLongitude(lon)
	if err != nil {
		return nil, err
	}
	b, err := angle.NewLatitude(lat)
	if err != nil {
		return nil, err
	}
	return NewUnitSpherical(l, b)
}

// UnitSphericalFromCartesian keeps only the direction of c.
func UnitSphericalFromCartesian(c *Cartesian) *UnitSpherical {
	s := SphericalFromCartesian(c)
	return &UnitSpherical{lon: s.lon, lat: s.lat}
}

// Lon returns the longitude component.
func (u *UnitSpherical) Lon() angle.Longitude { return u.lon }

// Lat returns the latitude component.
func (u *UnitSpherical) Lat() angle.Latitude { return u.lat }

func (u *UnitSpherical) Kind() Kind           { return KindUnitSpherical }
func (u *UnitSpherical) Components() []string { return []string{"lon", "lat"} }
func (u *UnitSpherical) Len() int             { return u.lon.Len() }
func (u *UnitSpherical) IsScalar() bool       { return u.lon.IsScalar() }

// ToCartesian returns the dimensionless direction vector.
func (u *UnitSpherical) ToCartesian() *Cartesian {
	lon, lat := u.lon.Radians(), u.lat.Radians()
	n := len(lon)
	x, y, z := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		sinlon, coslon := math.Sincos(lon[i])
		sinlat, coslat := math.Sincos(lat[i])
		x[i] = coslat * coslon
		y[i] = coslat * sinlon
		z[i] = sinlat
	}
	return newCartesianRaw(x, y, z, quantity.One, u.IsScalar())
}

// Norm is identically one.
func (u *UnitSpherical) Norm() quantity.Quantity {
	return onesLike(u.Len(), u.IsScalar())
}

func (u *UnitSpherical) UnitVectors() map[string]*Cartesian {
	uv := sphericalUnitVectors(u.lon.Radians(), u.lat.Radians(), u.IsScalar())
	delete(uv, "distance")
	return uv
}

// ScaleFactors returns cos(lat) per unit longitude and one per unit latitude,
// both per radian. The radius is fixed at one.
func (u *UnitSpherical) ScaleFactors() map[string]quantity.Quantity {
	lat := u.lat.Radians()
	coslat := make([]float64, len(lat))
	for i, b := range lat {
		coslat[i] = math.Cos(b)
	}
	ones := onesLike(u.Len(), u.IsScalar())
	return map[string]quantity.Quantity{
		"lon": mustQ(newQ(coslat, u.IsScalar(), quantity.One).Div(oneRadian)),
		"lat": mustQ(ones.Div(oneRadian)),
	}
}

func (u *UnitSpherical) Add(o Representation) (Representation, error) { return combine(u, o, 1) }
func (u *UnitSpherical) Sub(o Representation) (Representation, error) { return combine(u, o, -1) }

// Neg is the antipodal direction.
func (u *UnitSpherical) Neg() Representation {
	lonQ := mustQ(u.lon.Quantity().Add(quantity.New(180, quantity.Degree)))
	lon, err := angle.NewLongitudeWrapped(lonQ, u.lon.WrapAngle())
	if err != nil {
		panic(err) // angular input cannot fail
	}
	lat, err := angle.NewLatitude(u.lat.Quantity().Neg())
	if err != nil {
		panic(err) // range is symmetric
	}
	return &UnitSpherical{lon: lon, lat: lat}
}

// Scale promotes to Spherical with distance k: the factor becomes a radius.
func (u *UnitSpherical) Scale(k float64) Representation {
	return &Spherical{lon: u.lon, lat: u.lat, distance: onesLike(u.Len(), u.IsScalar()).Scale(k)}
}

func (u *UnitSpherical) Mul(q quantity.Quantity) (Representation, error) {
	d, err := onesLike(u.Len(), u.IsScalar()).Mul(q)
	if err != nil {
		return nil, err
	}
	return &Spherical{lon: u.lon, lat: u.lat, distance: d}, nil
}

func (u *UnitSpherical) Div(q quantity.Quantity) (Representation, error) {
	d, err := onesLike(u.Len(), u.IsScalar()).Div(q)
	if err != nil {
		return nil, err
	}
	return &Spherical{lon: u.lon, lat: u.lat, distance: d}, nil
}

func (u *UnitSpherical) AddOffset(o Offset) (Representation, error) { return applyOffset(u, o, 1) }
func (u *UnitSpherical) SubOffset(o Offset) (Representation, error) { return applyOffset(u, o, -1) }

func (u *UnitSpherical) Sum() (Representation, error)  { return reduce(u, false) }
func (u *UnitSpherical) Mean() (Representation, error) { return reduce(u, true) }

func (u *UnitSpherical) Dot(o Representation) (quantity.Quantity, error) {
	return u.ToCartesian().Dot(o)
}

func (u *UnitSpherical) Cross(o Representation) (Representation, error) {
	c, err := u.ToCartesian().crossCartesian(o)
	if err != nil {
		return nil, err
	}
	return FromCartesian(KindSpherical, c)
}

func (u *UnitSpherical) Index(i int) (Representation, error) {
	lon, err := u.lon.Index(i)
	if err != nil {
		return nil, err
	}
	lat, err := u.lat.Index(i)
	if err != nil {
		return nil, err
	}
	return &UnitSpherical{lon: lon, lat: lat}, nil
}

func (u *UnitSpherical) String() string {
	return fmt.Sprintf("UnitSpherical{lon: %s, lat: %s}", u.lon, u.lat)
}

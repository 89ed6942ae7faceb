package representation

import (
	"fmt"
	"math"

	"github.com/mkleist/astrolabe/pkg/angle"
	"github.com/mkleist/astrolabe/pkg/quantity"
)

// Spherical is a position in longitude, latitude and distance. Longitude
// carries its wrap angle, latitude is constrained to [-90°, +90°].
type Spherical struct {
	lon      angle.Longitude
	lat      angle.Latitude
	distance quantity.Quantity
}

// NewSpherical builds a Spherical, broadcasting the three components to a
// common shape. The longitude's wrap angle is preserved.
func NewSpherical(lon angle.Longitude, lat angle.Latitude, distance quantity.Quantity) (*Spherical, error) {
	qs, err := quantity.BroadcastAll(lon.Quantity(), lat.Quantity(), distance)
	if err != nil {
		return nil, fmt.Errorf("spherical: %w", err)
	}
	blon, err := angle.NewLongitudeWrapped(qs[0], lon.WrapAngle())
	if err != nil {
		return nil, err
	}
	blat, err := angle.NewLatitude(qs[1])
	if err != nil {
		return nil, err
	}
	return &Spherical{lon: blon, lat: blat, distance: qs[2]}, nil
}

// NewSphericalQ is NewSpherical from bare quantities, wrapping the longitude
// at the default 360° and validating the latitude range.
func NewSphericalQ(lon, lat, distance quantity.Quantity) (*Spherical, error) {
	l, err := angle.NewLongitude(lon)
	if err != nil {
		return nil, err
	}
	b, err := angle.NewLatitude(lat)
	if err != nil {
		return nil, err
	}
	return NewSpherical(l, b, distance)
}

// SphericalFromCartesian converts through atan2, so longitudes land in
// [0°, 360°) and latitudes in [-90°, +90°]. The distance keeps the Cartesian
// component unit.
func SphericalFromCartesian(c *Cartesian) *Spherical {
	xv, yv, zv := c.x.Values(), c.y.Values(), c.z.Values()
	n := len(xv)
	lon, lat, dist := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		s := math.Hypot(xv[i], yv[i])
		lon[i] = math.Atan2(yv[i], xv[i])
		lat[i] = math.Atan2(zv[i], s)
		dist[i] = math.Hypot(s, zv[i])
	}
	scalar := c.IsScalar()
	l, err := angle.NewLongitude(newQ(lon, scalar, quantity.Radian))
	if err != nil {
		panic(err) // radian input cannot fail
	}
	b, err := angle.NewLatitude(newQ(lat, scalar, quantity.Radian))
	if err != nil {
		panic(err) // atan2(z, s>=0) stays within range
	}
	return &Spherical{lon: l, lat: b, distance: newQ(dist, scalar, c.x.Unit())}
}

// Lon returns the longitude component.
func (s *Spherical) Lon() angle.Longitude { return s.lon }

// Lat returns the latitude component.
func (s *Spherical) Lat() angle.Latitude { return s.lat }

// Distance returns the radial component.
func (s *Spherical) Distance() quantity.Quantity { return s.distance }

func (s *Spherical) Kind() Kind           { return KindSpherical }
func (s *Spherical) Components() []string { return []string{"lon", "lat", "distance"} }
func (s *Spherical) Len() int             { return s.distance.Len() }
func (s *Spherical) IsScalar() bool       { return s.distance.IsScalar() }

func (s *Spherical) ToCartesian() *Cartesian {
	lon, lat := s.lon.Radians(), s.lat.Radians()
	dv := s.distance.Values()
	n := len(dv)
	x, y, z := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		coslat := math.Cos(lat[i])
		x[i] = dv[i] * coslat * math.Cos(lon[i])
		y[i] = dv[i] * coslat * math.Sin(lon[i])
		z[i] = dv[i] * math.Sin(lat[i])
	}
	return newCartesianRaw(x, y, z, s.distance.Unit(), s.IsScalar())
}

// Norm is the absolute distance; no Cartesian round-trip needed.
func (s *Spherical) Norm() quantity.Quantity { return s.distance.Abs() }

func (s *Spherical) UnitVectors() map[string]*Cartesian {
	lon, lat := s.lon.Radians(), s.lat.Radians()
	return sphericalUnitVectors(lon, lat, s.IsScalar())
}

func sphericalUnitVectors(lon, lat []float64, scalar bool) map[string]*Cartesian {
	n := len(lon)
	lx, ly, lz := make([]float64, n), make([]float64, n), make([]float64, n)
	bx, by, bz := make([]float64, n), make([]float64, n), make([]float64, n)
	rx, ry, rz := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		sinlon, coslon := math.Sincos(lon[i])
		sinlat, coslat := math.Sincos(lat[i])
		lx[i], ly[i], lz[i] = -sinlon, coslon, 0
		bx[i], by[i], bz[i] = -sinlat*coslon, -sinlat*sinlon, coslat
		rx[i], ry[i], rz[i] = coslat*coslon, coslat*sinlon, sinlat
	}
	return map[string]*Cartesian{
		"lon":      newCartesianRaw(lx, ly, lz, quantity.One, scalar),
		"lat":      newCartesianRaw(bx, by, bz, quantity.One, scalar),
		"distance": newCartesianRaw(rx, ry, rz, quantity.One, scalar),
	}
}

// ScaleFactors returns d*cos(lat) per unit longitude, d per unit latitude and
// one per unit distance, with length-per-angle units on the angular factors.
func (s *Spherical) ScaleFactors() map[string]quantity.Quantity {
	lat := s.lat.Radians()
	coslat := make([]float64, len(lat))
	for i, b := range lat {
		coslat[i] = math.Cos(b)
	}
	coslatQ := newQ(coslat, s.IsScalar(), quantity.One)
	perLon := mustQ(mustQ(s.distance.Mul(coslatQ)).Div(oneRadian))
	perLat := mustQ(s.distance.Div(oneRadian))
	return map[string]quantity.Quantity{
		"lon":      perLon,
		"lat":      perLat,
		"distance": onesLike(s.Len(), s.IsScalar()),
	}
}

func (s *Spherical) Add(o Representation) (Representation, error) { return combine(s, o, 1) }
func (s *Spherical) Sub(o Representation) (Representation, error) { return combine(s, o, -1) }

// Neg negates the distance and keeps the angles; scaling never touches
// angular components.
func (s *Spherical) Neg() Representation {
	return &Spherical{lon: s.lon, lat: s.lat, distance: s.distance.Neg()}
}

func (s *Spherical) Scale(k float64) Representation {
	return &Spherical{lon: s.lon, lat: s.lat, distance: s.distance.Scale(k)}
}

func (s *Spherical) Mul(q quantity.Quantity) (Representation, error) {
	d, err := s.distance.Mul(q)
	if err != nil {
		return nil, err
	}
	return &Spherical{lon: s.lon, lat: s.lat, distance: d}, nil
}

func (s *Spherical) Div(q quantity.Quantity) (Representation, error) {
	d, err := s.distance.Div(q)
	if err != nil {
		return nil, err
	}
	return &Spherical{lon: s.lon, lat: s.lat, distance: d}, nil
}

func (s *Spherical) AddOffset(o Offset) (Representation, error) { return applyOffset(s, o, 1) }
func (s *Spherical) SubOffset(o Offset) (Representation, error) { return applyOffset(s, o, -1) }

func (s *Spherical) Sum() (Representation, error)  { return reduce(s, false) }
func (s *Spherical) Mean() (Representation, error) { return reduce(s, true) }

func (s *Spherical) Dot(o Representation) (quantity.Quantity, error) {
	return s.ToCartesian().Dot(o)
}

func (s *Spherical) Cross(o Representation) (Representation, error) {
	c, err := s.ToCartesian().crossCartesian(o)
	if err != nil {
		return nil, err
	}
	return FromCartesian(KindSpherical, c)
}

func (s *Spherical) Index(i int) (Representation, error) {
	lon, err := s.lon.Index(i)
	if err != nil {
		return nil, err
	}
	lat, err := s.lat.Index(i)
	if err != nil {
		return nil, err
	}
	d, err := s.distance.Index(i)
	if err != nil {
		return nil, err
	}
	return &Spherical{lon: lon, lat: lat, distance: d}, nil
}

func (s *Spherical) String() string {
	return fmt.Sprintf("Spherical{lon: %s, lat: %s, distance: %s}", s.lon, s.lat, s.distance)
}

package representation_test

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkleist/astrolabe/pkg/angle"
	"github.com/mkleist/astrolabe/pkg/quantity"
	"github.com/mkleist/astrolabe/pkg/representation"
)

func deg(v float64) quantity.Quantity { return quantity.New(v, quantity.Degree) }
func kpc(v float64) quantity.Quantity { return quantity.New(v, quantity.Kiloparsec) }
func km(v float64) quantity.Quantity  { return quantity.New(v, quantity.Kilometer) }

func mustCartesian(t *testing.T, x, y, z quantity.Quantity) *representation.Cartesian {
	t.Helper()
	c, err := representation.NewCartesian(x, y, z)
	require.NoError(t, err)
	return c
}

func TestCartesianToSpherical(t *testing.T) {
	c := mustCartesian(t, kpc(1), kpc(1), kpc(0))
	s := representation.SphericalFromCartesian(c)

	assert.InDelta(t, 45, s.Lon().Quantity().MustTo(quantity.Degree).Value(), 1e-9)
	assert.InDelta(t, 0, s.Lat().Quantity().Value(), 1e-9)
	assert.InDelta(t, math.Sqrt2, s.Distance().Value(), 1e-12)
	assert.Equal(t, quantity.Kiloparsec, s.Distance().Unit())
}

func TestRoundTripsThroughCartesian(t *testing.T) {
	s, err := representation.NewSphericalQ(deg(30), deg(40), kpc(2))
	require.NoError(t, err)
	want := s.ToCartesian()

	kinds := []representation.Kind{
		representation.KindCartesian,
		representation.KindSpherical,
		representation.KindPhysicsSpherical,
		representation.KindCylindrical,
	}
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			r, err := representation.RepresentAs(s, kind)
			require.NoError(t, err)
			got := r.ToCartesian()
			assert.True(t, want.X().AllClose(got.X(), 1e-12), "x: %s vs %s", want.X(), got.X())
			assert.True(t, want.Y().AllClose(got.Y(), 1e-12), "y: %s vs %s", want.Y(), got.Y())
			assert.True(t, want.Z().AllClose(got.Z(), 1e-12), "z: %s vs %s", want.Z(), got.Z())
		})
	}
}

func TestSphericalFamilyFastPaths(t *testing.T) {
	s, err := representation.NewSphericalQ(deg(30), deg(40), kpc(2))
	require.NoError(t, err)

	r, err := representation.RepresentAs(s, representation.KindPhysicsSpherical)
	require.NoError(t, err)
	ps := r.(*representation.PhysicsSpherical)
	assert.Equal(t, 30.0, ps.Phi().Quantity().Value())
	assert.Equal(t, 50.0, ps.Theta().Value()) // 90 - lat, no round-off
	assert.Equal(t, 2.0, ps.R().Value())

	r, err = representation.RepresentAs(ps, representation.KindSpherical)
	require.NoError(t, err)
	back := r.(*representation.Spherical)
	assert.Equal(t, 40.0, back.Lat().Quantity().Value())

	r, err = representation.RepresentAs(s, representation.KindUnitSpherical)
	require.NoError(t, err)
	us := r.(*representation.UnitSpherical)
	assert.Equal(t, 30.0, us.Lon().Quantity().Value())

	r, err = representation.RepresentAs(us, representation.KindSpherical)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.(*representation.Spherical).Distance().Value())
	assert.Equal(t, quantity.One, r.(*representation.Spherical).Distance().Unit())
}

func TestRepresentAsCylindrical(t *testing.T) {
	s, err := representation.NewSphericalQ(deg(30), deg(0), kpc(2))
	require.NoError(t, err)

	r, err := representation.RepresentAs(s, representation.KindCylindrical)
	require.NoError(t, err)
	cyl := r.(*representation.Cylindrical)
	assert.InDelta(t, 2, cyl.Rho().Value(), 1e-12)
	assert.InDelta(t, math.Pi/6, cyl.Phi().Value(), 1e-12)
	assert.InDelta(t, 0, cyl.Z().Value(), 1e-12)
}

func TestGeneralize(t *testing.T) {
	tests := []struct {
		left, right, want representation.Kind
	}{
		{representation.KindCartesian, representation.KindSpherical, representation.KindCartesian},
		{representation.KindSpherical, representation.KindUnitSpherical, representation.KindSpherical},
		{representation.KindUnitSpherical, representation.KindSpherical, representation.KindSpherical},
		{representation.KindUnitSpherical, representation.KindUnitSpherical, representation.KindUnitSpherical},
		{representation.KindCylindrical, representation.KindCartesian, representation.KindCylindrical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.left.Generalize(tt.right))
	}
}

func TestAddKeepsLeftKind(t *testing.T) {
	s, err := representation.NewSphericalQ(deg(0), deg(0), kpc(1))
	require.NoError(t, err)
	c := mustCartesian(t, kpc(0), kpc(1), kpc(0))

	sum, err := s.Add(c)
	require.NoError(t, err)
	require.Equal(t, representation.KindSpherical, sum.Kind())
	ss := sum.(*representation.Spherical)
	assert.InDelta(t, 45, ss.Lon().Quantity().MustTo(quantity.Degree).Value(), 1e-9)
	assert.InDelta(t, math.Sqrt2, ss.Distance().Value(), 1e-12)

	sum2, err := c.Add(s)
	require.NoError(t, err)
	assert.Equal(t, representation.KindCartesian, sum2.Kind())

	diff, err := sum.Sub(c)
	require.NoError(t, err)
	assert.InDelta(t, 1, diff.Norm().Value(), 1e-12)
}

func TestUnitSphericalPromotions(t *testing.T) {
	u, err := representation.NewUnitSphericalQ(deg(0), deg(0))
	require.NoError(t, err)

	scaled := u.Scale(2)
	require.Equal(t, representation.KindSpherical, scaled.Kind())
	assert.Equal(t, 2.0, scaled.(*representation.Spherical).Distance().Value())
	assert.Equal(t, quantity.One, scaled.(*representation.Spherical).Distance().Unit())

	mul, err := u.Mul(kpc(3))
	require.NoError(t, err)
	require.Equal(t, representation.KindSpherical, mul.Kind())
	d := mul.(*representation.Spherical).Distance()
	assert.InDelta(t, 3, d.MustTo(quantity.Kiloparsec).Value(), 1e-12)

	sum, err := u.Add(u)
	require.NoError(t, err)
	require.Equal(t, representation.KindSpherical, sum.Kind())
	assert.InDelta(t, 2, sum.(*representation.Spherical).Distance().Value(), 1e-12)

	total, err := u.Sum()
	require.NoError(t, err)
	assert.Equal(t, representation.KindSpherical, total.Kind())
}

func TestUnitSphericalNegIsAntipode(t *testing.T) {
	u, err := representation.NewUnitSphericalQ(deg(10), deg(20))
	require.NoError(t, err)

	neg := u.Neg()
	require.Equal(t, representation.KindUnitSpherical, neg.Kind())
	nu := neg.(*representation.UnitSpherical)
	assert.InDelta(t, 190, nu.Lon().Quantity().MustTo(quantity.Degree).Value(), 1e-9)
	assert.InDelta(t, -20, nu.Lat().Quantity().MustTo(quantity.Degree).Value(), 1e-9)
}

func TestScaleSkipsAngularComponents(t *testing.T) {
	s, err := representation.NewSphericalQ(deg(30), deg(40), kpc(2))
	require.NoError(t, err)

	scaled := s.Scale(3).(*representation.Spherical)
	assert.Equal(t, 30.0, scaled.Lon().Quantity().Value())
	assert.Equal(t, 40.0, scaled.Lat().Quantity().Value())
	assert.Equal(t, 6.0, scaled.Distance().Value())

	neg := s.Neg().(*representation.Spherical)
	assert.Equal(t, -2.0, neg.Distance().Value())
	// A negative distance points the other way in Cartesian space.
	want := s.ToCartesian().Scale(-1).(*representation.Cartesian)
	got := neg.ToCartesian()
	assert.True(t, want.X().AllClose(got.X(), 1e-12))
	assert.True(t, want.Z().AllClose(got.Z(), 1e-12))
}

func TestNorm(t *testing.T) {
	c := mustCartesian(t, km(3), km(4), km(0))
	assert.InDelta(t, 5, c.Norm().Value(), 1e-12)
	assert.Equal(t, quantity.Kilometer, c.Norm().Unit())

	s, err := representation.NewSphericalQ(deg(10), deg(20), kpc(-2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, s.Norm().Value())

	for _, lon := range []float64{0, 33, 160, 275} {
		u, err := representation.NewUnitSphericalQ(deg(lon), deg(lon/4))
		require.NoError(t, err)
		assert.Equal(t, 1.0, u.Norm().Value())
		assert.InDelta(t, 1, u.ToCartesian().Norm().Value(), 1e-12)
	}
}

func TestDotCross(t *testing.T) {
	a := mustCartesian(t, km(1), km(2), km(3))
	b := mustCartesian(t, km(4), km(5), km(6))

	dot, err := a.Dot(b)
	require.NoError(t, err)
	assert.InDelta(t, 32, dot.Value(), 1e-12)

	x := mustCartesian(t, km(1), km(0), km(0))
	y := mustCartesian(t, km(0), km(1), km(0))
	perp, err := x.Dot(y)
	require.NoError(t, err)
	assert.Equal(t, 0.0, perp.Value())

	cross, err := x.Cross(y)
	require.NoError(t, err)
	cc := cross.(*representation.Cartesian)
	assert.Equal(t, 0.0, cc.X().Value())
	assert.Equal(t, 0.0, cc.Y().Value())
	assert.Equal(t, 1.0, cc.Z().Value())
}

func TestSumMeanBatch(t *testing.T) {
	c := mustCartesian(t,
		quantity.NewBatch([]float64{1, 3}, quantity.Kilometer),
		quantity.NewBatch([]float64{2, 4}, quantity.Kilometer),
		quantity.NewBatch([]float64{0, 0}, quantity.Kilometer),
	)
	total, err := c.Sum()
	require.NoError(t, err)
	tc := total.(*representation.Cartesian)
	assert.Equal(t, 4.0, tc.X().Value())
	assert.Equal(t, 6.0, tc.Y().Value())
	assert.True(t, tc.X().IsScalar())

	mean, err := c.Mean()
	require.NoError(t, err)
	assert.Equal(t, 2.0, mean.(*representation.Cartesian).X().Value())
}

func TestConstructorBroadcasts(t *testing.T) {
	s, err := representation.NewSphericalQ(
		quantity.NewBatch([]float64{0, 90}, quantity.Degree), deg(0), kpc(1))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.IsScalar())

	c := s.ToCartesian()
	xs := c.X().Values()
	assert.InDelta(t, 1, xs[0], 1e-12)
	assert.InDelta(t, 0, xs[1], 1e-12)
}

func TestIndexPreservesWrapAngle(t *testing.T) {
	lon, err := angle.NewLongitudeWrapped(
		quantity.NewBatch([]float64{10, 200}, quantity.Degree), unit.AngleFromDeg(180))
	require.NoError(t, err)
	lat, err := angle.NewLatitude(quantity.NewBatch([]float64{5, -5}, quantity.Degree))
	require.NoError(t, err)
	s, err := representation.NewSpherical(lon, lat, quantity.NewBatch([]float64{1, 2}, quantity.Kiloparsec))
	require.NoError(t, err)

	el, err := s.Index(1)
	require.NoError(t, err)
	es := el.(*representation.Spherical)
	assert.True(t, es.IsScalar())
	assert.Equal(t, unit.AngleFromDeg(180), es.Lon().WrapAngle())
	assert.InDelta(t, -160, es.Lon().Quantity().Value(), 1e-9)
	assert.Equal(t, 2.0, es.Distance().Value())

	_, err = s.Index(5)
	assert.Error(t, err)
}

func TestPhysicsSphericalValidation(t *testing.T) {
	_, err := representation.NewPhysicsSpherical(deg(10), deg(181), kpc(1))
	assert.ErrorIs(t, err, representation.ErrThetaRange)

	_, err = representation.NewPhysicsSpherical(deg(10), deg(-1), kpc(1))
	assert.ErrorIs(t, err, representation.ErrThetaRange)

	_, err = representation.NewPhysicsSpherical(deg(10), kpc(1), kpc(1))
	assert.ErrorIs(t, err, quantity.ErrNotAngular)

	_, err = representation.NewPhysicsSpherical(deg(370), deg(90), kpc(1))
	assert.NoError(t, err) // phi wraps
}

func TestCylindricalValidation(t *testing.T) {
	_, err := representation.NewCylindrical(km(1), km(1), km(1))
	assert.ErrorIs(t, err, quantity.ErrNotAngular)

	_, err = representation.NewCylindrical(km(1), deg(0), quantity.New(1, quantity.Second))
	assert.ErrorIs(t, err, representation.ErrComponentDimension)
}

func TestKindNames(t *testing.T) {
	for _, kind := range []representation.Kind{
		representation.KindCartesian,
		representation.KindSpherical,
		representation.KindUnitSpherical,
		representation.KindPhysicsSpherical,
		representation.KindCylindrical,
	} {
		got, err := representation.KindFromName(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	_, err := representation.KindFromName("bogus")
	assert.ErrorIs(t, err, representation.ErrUnknownKind)

	_, err = representation.FromCartesian(representation.Kind(99), mustCartesian(t, km(1), km(0), km(0)))
	assert.ErrorIs(t, err, representation.ErrUnknownKind)
}

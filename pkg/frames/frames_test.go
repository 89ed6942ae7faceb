package frames_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkleist/astrolabe/pkg/frames"
	"github.com/mkleist/astrolabe/pkg/quantity"
	"github.com/mkleist/astrolabe/pkg/representation"
	"github.com/mkleist/astrolabe/pkg/transform"
)

func deg(v float64) quantity.Quantity { return quantity.New(v, quantity.Degree) }

func kms(v float64) quantity.Quantity { return quantity.New(v, quantity.KilometerPerSecond) }

func direction(t *testing.T, lon, lat float64) *representation.Spherical {
	t.Helper()
	s, err := representation.NewSphericalQ(deg(lon), deg(lat), quantity.New(1, quantity.Kiloparsec))
	require.NoError(t, err)
	return s
}

func TestNorthGalacticPoleMapsToGalacticZenith(t *testing.T) {
	g := frames.NewDefaultGraph()

	// The equatorial direction of the NGP must come out at galactic
	// latitude +90.
	ngp := direction(t, 192.8594812065348, 27.12825118085622)
	out, err := g.TransformByName(transform.Motion{Position: ngp}, "icrs", "galactic")
	require.NoError(t, err)

	z := out.Position.ToCartesian().Z().MustTo(quantity.Kiloparsec)
	assert.InDelta(t, 1, z.Value(), 1e-12)
}

func TestGalacticCenterDirection(t *testing.T) {
	g := frames.NewDefaultGraph()

	// Sgr A* sits within a fraction of a degree of galactic (0, 0).
	sgrA := direction(t, 266.41681663, -29.00782497)
	out, err := g.TransformByName(transform.Motion{Position: sgrA}, "icrs", "galactic")
	require.NoError(t, err)

	gal := out.Position.(*representation.Spherical)
	lon := gal.Lon().Quantity().MustTo(quantity.Degree).Value()
	if lon > 180 {
		lon -= 360
	}
	assert.InDelta(t, 0, lon, 0.1)
	assert.InDelta(t, 0, gal.Lat().Quantity().MustTo(quantity.Degree).Value(), 0.1)
}

func TestGalacticRoundTrip(t *testing.T) {
	g := frames.NewDefaultGraph()
	in := direction(t, 123.4, -56.7)

	mid, err := g.TransformByName(transform.Motion{Position: in}, "icrs", "galactic")
	require.NoError(t, err)
	out, err := g.TransformByName(mid, "galactic", "icrs")
	require.NoError(t, err)

	back := out.Position.(*representation.Spherical)
	assert.True(t, in.Lon().Quantity().AllClose(back.Lon().Quantity(), 1e-9))
	assert.True(t, in.Lat().Quantity().AllClose(back.Lat().Quantity(), 1e-9))
	assert.True(t, in.Distance().AllClose(back.Distance(), 1e-12))
}

func TestLSRVelocityShift(t *testing.T) {
	g := frames.NewDefaultGraph()

	vel, err := representation.NewCartesianOffset(kms(0), kms(0), kms(0))
	require.NoError(t, err)
	in := transform.Motion{Position: direction(t, 10, 20), Velocity: vel}

	out, err := g.TransformByName(in, "icrs", "lsr")
	require.NoError(t, err)
	require.NotNil(t, out.Velocity)

	// A star at rest w.r.t. the barycenter moves with the full solar motion
	// in the LSR.
	want := math.Sqrt(11.1*11.1 + 12.24*12.24 + 7.25*7.25)
	n, err := out.Velocity.Norm(nil)
	require.NoError(t, err)
	assert.InDelta(t, want, n.MustTo(quantity.KilometerPerSecond).Value(), 1e-9)

	// Positions are untouched.
	assert.True(t, in.Position.ToCartesian().X().AllClose(out.Position.ToCartesian().X(), 1e-12))

	back, err := g.TransformByName(out, "lsr", "icrs")
	require.NoError(t, err)
	n, err = back.Velocity.Norm(nil)
	require.NoError(t, err)
	assert.InDelta(t, 0, n.Value(), 1e-12)
}

func TestLSRIgnoresMissingVelocity(t *testing.T) {
	g := frames.NewDefaultGraph()
	out, err := g.TransformByName(transform.Motion{Position: direction(t, 10, 20)}, "icrs", "lsr")
	require.NoError(t, err)
	assert.Nil(t, out.Velocity)
}

func TestCustomVBary(t *testing.T) {
	v, err := representation.NewCartesianOffset(kms(1), kms(0), kms(0))
	require.NoError(t, err)
	lsr := frames.NewLSRWithVBary(v)
	assert.Same(t, v, lsr.VBary())

	g := frames.NewDefaultGraph()
	zero, err := representation.NewCartesianOffset(kms(0), kms(0), kms(0))
	require.NoError(t, err)

	// Passing the custom instance at the endpoint overrides the canonical
	// registered frame.
	out, err := g.Transform(
		transform.Motion{Position: direction(t, 0, 0), Velocity: zero},
		frames.ICRS{}, lsr)
	require.NoError(t, err)
	n, err := out.Velocity.Norm(nil)
	require.NoError(t, err)
	assert.InDelta(t, 1, n.MustTo(quantity.KilometerPerSecond).Value(), 1e-12)
}

func TestGalacticToLSRRoutesThroughICRS(t *testing.T) {
	g := frames.NewDefaultGraph()

	route, err := g.Path("galactic", "lsr")
	require.NoError(t, err)
	assert.Equal(t, []string{"galactic", "icrs", "lsr"}, route)

	vel, err := representation.NewCartesianOffset(kms(0), kms(0), kms(0))
	require.NoError(t, err)
	out, err := g.TransformByName(
		transform.Motion{Position: direction(t, 30, 40), Velocity: vel}, "galactic", "lsr")
	require.NoError(t, err)

	want := math.Sqrt(11.1*11.1 + 12.24*12.24 + 7.25*7.25)
	n, err := out.Velocity.Norm(nil)
	require.NoError(t, err)
	assert.InDelta(t, want, n.MustTo(quantity.KilometerPerSecond).Value(), 1e-9)
}

func TestRotationMatrixIsOrthogonal(t *testing.T) {
	m := frames.ICRSToGalacticMatrix()
	prod := transform.MatMul3(m, frames.GalacticToICRSMatrix())
	id := transform.Identity3()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, id.At(i, j), prod.At(i, j), 1e-15)
		}
	}
}

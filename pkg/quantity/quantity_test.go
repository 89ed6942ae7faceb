package quantity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkleist/astrolabe/pkg/quantity"
)

func TestConversion(t *testing.T) {
	tests := []struct {
		name string
		q    quantity.Quantity
		to   quantity.Unit
		want float64
	}{
		{"km to m", quantity.New(1, quantity.Kilometer), quantity.Meter, 1000},
		{"deg to rad", quantity.New(180, quantity.Degree), quantity.Radian, math.Pi},
		{"arcsec to deg", quantity.New(3600, quantity.Arcsecond), quantity.Degree, 1},
		{"pc to kpc", quantity.New(1000, quantity.Parsec), quantity.Kiloparsec, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.q.To(tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.Value(), 1e-12)
			assert.Equal(t, tt.to, got.Unit())
		})
	}
}

func TestConversionMismatch(t *testing.T) {
	_, err := quantity.New(1, quantity.Kilometer).To(quantity.Degree)
	assert.ErrorIs(t, err, quantity.ErrUnitMismatch)
}

func TestAddConvertsToLeftUnit(t *testing.T) {
	got, err := quantity.New(1, quantity.Kilometer).Add(quantity.New(500, quantity.Meter))
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got.Value(), 1e-12)
	assert.Equal(t, quantity.Kilometer, got.Unit())
}

func TestMulDivCombineUnits(t *testing.T) {
	prod, err := quantity.New(2, quantity.Kilometer).Mul(quantity.New(3, quantity.Second))
	require.NoError(t, err)
	assert.InDelta(t, 6, prod.Value(), 1e-12)
	assert.Equal(t, quantity.Dimension{Length: 1, Time: 1}, prod.Unit().Dim())

	quot, err := prod.Div(quantity.New(3, quantity.Second))
	require.NoError(t, err)
	assert.InDelta(t, 2, quot.Value(), 1e-12)
	assert.Equal(t, quantity.Dimension{Length: 1}, quot.Unit().Dim())
}

func TestBroadcast(t *testing.T) {
	batch := quantity.NewBatch([]float64{1, 2, 3}, quantity.Meter)
	scalar := quantity.New(10, quantity.Meter)

	sum, err := batch.Add(scalar)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 12, 13}, sum.Values())
	assert.False(t, sum.IsScalar())

	_, err = batch.Add(quantity.NewBatch([]float64{1, 2}, quantity.Meter))
	assert.ErrorIs(t, err, quantity.ErrShapeMismatch)
}

func TestReductions(t *testing.T) {
	q := quantity.NewBatch([]float64{1, 2, 3, 6}, quantity.Kilometer)
	assert.InDelta(t, 12, q.Sum().Value(), 1e-12)
	assert.True(t, q.Sum().IsScalar())
	assert.InDelta(t, 3, q.Mean().Value(), 1e-12)
}

func TestSqrt(t *testing.T) {
	sq, err := quantity.New(2, quantity.Kiloparsec).Mul(quantity.New(2, quantity.Kiloparsec))
	require.NoError(t, err)

	root, err := quantity.Sqrt(sq)
	require.NoError(t, err)
	assert.InDelta(t, 2, root.Value(), 1e-12)
	assert.Equal(t, "kpc", root.Unit().Name())

	_, err = quantity.Sqrt(quantity.New(4, quantity.Kilometer))
	assert.ErrorIs(t, err, quantity.ErrUnitMismatch)
}

func TestRadians(t *testing.T) {
	rad, err := quantity.New(90, quantity.Degree).Radians()
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, rad[0], 1e-12)

	_, err = quantity.New(1, quantity.Meter).Radians()
	assert.ErrorIs(t, err, quantity.ErrNotAngular)

	// Proper motions are angle per time, not pure angles.
	_, err = quantity.New(1, quantity.MilliarcsecondPerYear).Radians()
	assert.ErrorIs(t, err, quantity.ErrNotAngular)
}

func TestIndex(t *testing.T) {
	q := quantity.NewBatch([]float64{5, 7}, quantity.Degree)
	el, err := q.Index(1)
	require.NoError(t, err)
	assert.True(t, el.IsScalar())
	assert.Equal(t, 7.0, el.Value())

	_, err = q.Index(2)
	assert.ErrorIs(t, err, quantity.ErrIndex)
}

func TestAllClose(t *testing.T) {
	a := quantity.New(1, quantity.Kilometer)
	assert.True(t, a.AllClose(quantity.New(1000.0001, quantity.Meter), 1e-3))
	assert.False(t, a.AllClose(quantity.New(1001, quantity.Meter), 1e-3))
	assert.False(t, a.AllClose(quantity.New(1, quantity.Second), 1))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		wantVal  float64
		wantUnit quantity.Unit
	}{
		{"10deg", 10, quantity.Degree},
		{"1.5 kpc", 1.5, quantity.Kiloparsec},
		{"-11.1 km/s", -11.1, quantity.KilometerPerSecond},
		{"4AU", 4, quantity.AstronomicalUnit},
		{"2.5e3 mas/yr", 2.5e3, quantity.MilliarcsecondPerYear},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := quantity.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantVal, got.Value())
			assert.Equal(t, tt.wantUnit, got.Unit())
		})
	}

	_, err := quantity.Parse("10 furlongs")
	assert.ErrorIs(t, err, quantity.ErrUnknownUnit)

	_, err = quantity.Parse("deg")
	assert.Error(t, err)
}

func TestDimensionlessUnit(t *testing.T) {
	sum, err := quantity.New(2, quantity.One).Add(quantity.New(1, quantity.One))
	require.NoError(t, err)
	assert.Equal(t, 3.0, sum.Value())

	// Multiplying by a dimensionless factor must convert back losslessly.
	prod, err := quantity.New(3, quantity.Kiloparsec).Mul(quantity.New(2, quantity.One))
	require.NoError(t, err)
	assert.Equal(t, quantity.Dimension{Length: 1}, prod.Unit().Dim())
	back, err := prod.To(quantity.Kiloparsec)
	require.NoError(t, err)
	assert.Equal(t, 6.0, back.Value())

	ratio, err := quantity.New(4, quantity.One).Div(quantity.New(2, quantity.One))
	require.NoError(t, err)
	assert.Equal(t, 2.0, ratio.Value())
	assert.Equal(t, []float64{2}, ratio.SIValues())

	// The zero Unit behaves as the dimensionless unit.
	assert.Equal(t, 1.0, quantity.Unit{}.Scale())
	zero, err := quantity.Quantity{}.Add(quantity.New(5, quantity.One))
	require.NoError(t, err)
	assert.Equal(t, 5.0, zero.Value())
}

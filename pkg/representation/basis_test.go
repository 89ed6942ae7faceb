package representation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkleist/astrolabe/pkg/quantity"
	"github.com/mkleist/astrolabe/pkg/representation"
)

func rad(v float64) quantity.Quantity { return quantity.New(v, quantity.Radian) }

// Each variant's local basis must be orthonormal, and scaleFactor[c] times
// unitVector[c] must equal the derivative of the Cartesian position with
// respect to component c. The derivative is checked against a central finite
// difference, with angles perturbed in radians and lengths in their own unit.
func TestBasisVectorsMatchCoordinateDerivatives(t *testing.T) {
	lon := 40 * math.Pi / 180
	lat := 25 * math.Pi / 180
	theta := 65 * math.Pi / 180

	cases := []struct {
		name  string
		build func(s map[string]float64) (representation.Representation, error)
	}{
		{"cartesian", func(s map[string]float64) (representation.Representation, error) {
			return representation.NewCartesian(kpc(1.1+s["x"]), kpc(-0.7+s["y"]), kpc(0.4+s["z"]))
		}},
		{"spherical", func(s map[string]float64) (representation.Representation, error) {
			return representation.NewSphericalQ(rad(lon+s["lon"]), rad(lat+s["lat"]), kpc(2+s["distance"]))
		}},
		{"unitspherical", func(s map[string]float64) (representation.Representation, error) {
			return representation.NewUnitSphericalQ(rad(lon+s["lon"]), rad(lat+s["lat"]))
		}},
		{"physicsspherical", func(s map[string]float64) (representation.Representation, error) {
			return representation.NewPhysicsSpherical(rad(lon+s["phi"]), rad(theta+s["theta"]), kpc(2+s["r"]))
		}},
		{"cylindrical", func(s map[string]float64) (representation.Representation, error) {
			return representation.NewCylindrical(kpc(1.5+s["rho"]), rad(lon+s["phi"]), kpc(0.8+s["z"]))
		}},
	}

	const h = 1e-6
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base, err := tc.build(nil)
			require.NoError(t, err)
			uv := base.UnitVectors()
			sf := base.ScaleFactors()
			comps := base.Components()
			require.Len(t, uv, len(comps))
			require.Len(t, sf, len(comps))

			for i, a := range comps {
				assert.InDelta(t, 1, uv[a].Norm().Value(), 1e-12, "|e_%s|", a)
				for _, b := range comps[i+1:] {
					dot, err := uv[a].Dot(uv[b])
					require.NoError(t, err)
					assert.InDelta(t, 0, dot.Value(), 1e-12, "e_%s . e_%s", a, b)
				}
			}

			for _, c := range comps {
				plus, err := tc.build(map[string]float64{c: h})
				require.NoError(t, err)
				minus, err := tc.build(map[string]float64{c: -h})
				require.NoError(t, err)
				diff, err := plus.ToCartesian().Sub(minus.ToCartesian())
				require.NoError(t, err)
				got := diff.Scale(1 / (2 * h)).ToCartesian()

				want, err := uv[c].MulQuantity(sf[c])
				require.NoError(t, err)
				assert.InDelta(t, want.X().Value(), got.X().Value(), 1e-6, "d/d%s x", c)
				assert.InDelta(t, want.Y().Value(), got.Y().Value(), 1e-6, "d/d%s y", c)
				assert.InDelta(t, want.Z().Value(), got.Z().Value(), 1e-6, "d/d%s z", c)
			}
		})
	}
}

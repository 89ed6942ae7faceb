package astrolabe_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkleist/astrolabe"
	"github.com/mkleist/astrolabe/pkg/quantity"
	"github.com/mkleist/astrolabe/pkg/representation"
	"github.com/mkleist/astrolabe/pkg/transform"
)

func TestNewHasBuiltinFrames(t *testing.T) {
	sys, err := astrolabe.New()
	require.NoError(t, err)
	assert.Equal(t, []string{"galactic", "icrs", "lsr"}, sys.Frames())
}

func TestSystemTransform(t *testing.T) {
	sys, err := astrolabe.New()
	require.NoError(t, err)

	pos, err := representation.NewSphericalQ(
		quantity.New(192.8594812065348, quantity.Degree),
		quantity.New(27.12825118085622, quantity.Degree),
		quantity.New(1, quantity.Kiloparsec),
	)
	require.NoError(t, err)

	out, err := sys.Transform(transform.Motion{Position: pos}, "icrs", "galactic")
	require.NoError(t, err)
	lat := out.Position.(*representation.Spherical).Lat().Quantity().MustTo(quantity.Degree)
	assert.InDelta(t, 90, lat.Value(), 1e-9)

	_, err = sys.Transform(transform.Motion{Position: pos}, "icrs", "nope")
	assert.ErrorIs(t, err, transform.ErrUnknownFrame)
}

func TestSystemMermaid(t *testing.T) {
	sys, err := astrolabe.New()
	require.NoError(t, err)

	out := sys.Mermaid()
	assert.Contains(t, out, "graph LR")
	assert.Contains(t, out, `icrs(("icrs"))`)
	assert.NotContains(t, out, "classDef route")

	route, err := sys.Path("galactic", "lsr")
	require.NoError(t, err)
	highlighted := sys.Mermaid(route...)
	assert.Contains(t, highlighted, "class galactic route;")
}

func TestWithCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
frames:
  - name: site
transforms:
  - src: icrs
    dst: site
    reversible: true
    affine:
      rotation:
        - axis: z
          angle_deg: 45
`), 0o644))

	sys, err := astrolabe.New(astrolabe.WithCatalog(path))
	require.NoError(t, err)
	assert.Contains(t, sys.Frames(), "site")

	route, err := sys.Path("galactic", "site")
	require.NoError(t, err)
	assert.Equal(t, []string{"galactic", "icrs", "site"}, route)

	_, err = astrolabe.New(astrolabe.WithCatalog(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

func TestGraphAccessAllowsCustomOperators(t *testing.T) {
	sys, err := astrolabe.New()
	require.NoError(t, err)

	op := transform.Func(func(m transform.Motion, src, dst transform.Frame) (transform.Motion, error) {
		return m, nil
	})
	require.NoError(t, sys.Graph().Register(mock("a"), mock("b"), op))
	assert.Contains(t, sys.Frames(), "a")
}

type mock string

func (m mock) Name() string { return string(m) }

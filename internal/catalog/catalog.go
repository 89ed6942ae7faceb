// Package catalog loads frame and transform definitions from YAML files and
// applies them onto a transform graph. Catalogs extend the built-in graph
// with site- or survey-specific frames without writing code.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/mkleist/astrolabe/pkg/quantity"
	"github.com/mkleist/astrolabe/pkg/representation"
	"github.com/mkleist/astrolabe/pkg/transform"
)

// ErrBadCatalog is returned for structurally invalid catalog files.
var ErrBadCatalog = errors.New("invalid catalog")

// File is a parsed catalog.
type File struct {
	Frames     []FrameSpec     `mapstructure:"frames"`
	Transforms []TransformSpec `mapstructure:"transforms"`
}

// FrameSpec declares a frame by name.
type FrameSpec struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

// TransformSpec declares a directed affine edge. Reversible edges also
// register the inverted parameters on the opposite direction.
type TransformSpec struct {
	Src        string     `mapstructure:"src"`
	Dst        string     `mapstructure:"dst"`
	Reversible bool       `mapstructure:"reversible"`
	Affine     AffineSpec `mapstructure:"affine"`
}

// AffineSpec describes affine parameters: a chain of axis rotations applied
// left to right, then optional position and velocity offsets.
type AffineSpec struct {
	Rotation          []RotationStep `mapstructure:"rotation"`
	PositionOffsetKm  []float64      `mapstructure:"position_offset_km"`
	VelocityOffsetKms []float64      `mapstructure:"velocity_offset_kms"`
}

// RotationStep is one rotation about a principal axis.
type RotationStep struct {
	Axis     string  `mapstructure:"axis"`
	AngleDeg float64 `mapstructure:"angle_deg"`
}

// Load reads and parses a catalog file.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	f, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes catalog YAML. Scalars are decoded weakly, so "23.5" and 23.5
// both work for an angle.
func Parse(raw []byte) (*File, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCatalog, err)
	}
	var f File
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &f,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(tree); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCatalog, err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	for _, t := range f.Transforms {
		if t.Src == "" || t.Dst == "" {
			return fmt.Errorf("%w: transform needs src and dst", ErrBadCatalog)
		}
		if t.Src == t.Dst {
			return fmt.Errorf("%w: transform %s onto itself", ErrBadCatalog, t.Src)
		}
		if n := len(t.Affine.PositionOffsetKm); n != 0 && n != 3 {
			return fmt.Errorf("%w: %s->%s position offset needs 3 components, got %d", ErrBadCatalog, t.Src, t.Dst, n)
		}
		if n := len(t.Affine.VelocityOffsetKms); n != 0 && n != 3 {
			return fmt.Errorf("%w: %s->%s velocity offset needs 3 components, got %d", ErrBadCatalog, t.Src, t.Dst, n)
		}
		for _, r := range t.Affine.Rotation {
			switch strings.ToLower(r.Axis) {
			case "x", "y", "z":
			default:
				return fmt.Errorf("%w: rotation axis %q", ErrBadCatalog, r.Axis)
			}
		}
	}
	return nil
}

// Named is a frame declared only by name, the shape catalog frames take.
type Named struct {
	FrameName   string
	Description string
}

// Name returns the frame's name.
func (n Named) Name() string { return n.FrameName }

// Apply registers the catalog's frames and transforms onto g. Existing
// canonical frames (such as the built-ins) are reused when a transform
// references them.
func (f *File) Apply(g *transform.Graph) error {
	for _, fs := range f.Frames {
		if fs.Name == "" {
			return fmt.Errorf("%w: frame needs a name", ErrBadCatalog)
		}
		if _, ok := g.Frame(fs.Name); !ok {
			g.RegisterFrame(Named{FrameName: fs.Name, Description: fs.Description})
		}
	}
	for _, t := range f.Transforms {
		params, err := t.Affine.Params()
		if err != nil {
			return fmt.Errorf("%s->%s: %w", t.Src, t.Dst, err)
		}
		src := frameFor(g, t.Src)
		dst := frameFor(g, t.Dst)
		if err := g.Register(src, dst, transform.StaticAffine(params)); err != nil {
			return err
		}
		if t.Reversible {
			inv, err := params.Inverse()
			if err != nil {
				return fmt.Errorf("%s->%s inverse: %w", t.Src, t.Dst, err)
			}
			if err := g.Register(dst, src, transform.StaticAffine(inv)); err != nil {
				return err
			}
		}
	}
	return nil
}

func frameFor(g *transform.Graph, name string) transform.Frame {
	if fr, ok := g.Frame(name); ok {
		return fr
	}
	return Named{FrameName: name}
}

// Params builds the affine parameters this entry describes.
func (a AffineSpec) Params() (transform.AffineParams, error) {
	var p transform.AffineParams
	if len(a.Rotation) > 0 {
		ms := make([]*mat.Dense, len(a.Rotation))
		for i, r := range a.Rotation {
			m, ok := transform.RotationAxis(strings.ToLower(r.Axis), unit.AngleFromDeg(r.AngleDeg))
			if !ok {
				return transform.AffineParams{}, fmt.Errorf("%w: rotation axis %q", ErrBadCatalog, r.Axis)
			}
			ms[i] = m
		}
		p.Matrix = transform.MatMul3(ms...)
	}
	if len(a.PositionOffsetKm) == 3 {
		c, err := representation.NewCartesian(
			quantity.New(a.PositionOffsetKm[0], quantity.Kilometer),
			quantity.New(a.PositionOffsetKm[1], quantity.Kilometer),
			quantity.New(a.PositionOffsetKm[2], quantity.Kilometer),
		)
		if err != nil {
			return transform.AffineParams{}, err
		}
		p.PositionOffset = c
	}
	if len(a.VelocityOffsetKms) == 3 {
		o, err := representation.NewCartesianOffset(
			quantity.New(a.VelocityOffsetKms[0], quantity.KilometerPerSecond),
			quantity.New(a.VelocityOffsetKms[1], quantity.KilometerPerSecond),
			quantity.New(a.VelocityOffsetKms[2], quantity.KilometerPerSecond),
		)
		if err != nil {
			return transform.AffineParams{}, err
		}
		p.VelocityOffset = o
	}
	return p, nil
}

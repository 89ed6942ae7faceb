package frames

import (
	"fmt"
	"sync"

	"github.com/mkleist/astrolabe/pkg/quantity"
	"github.com/mkleist/astrolabe/pkg/representation"
	"github.com/mkleist/astrolabe/pkg/transform"
)

// ICRS is the International Celestial Reference System: a barycentric
// equatorial frame.
type ICRS struct{}

// Name returns "icrs".
func (ICRS) Name() string { return "icrs" }

// Galactic is the IAU 1958 galactic coordinate frame at its J2000 ICRS
// orientation.
type Galactic struct{}

// Name returns "galactic".
func (Galactic) Name() string { return "galactic" }

// LSR is the Local Standard of Rest: axis-aligned and co-spatial with ICRS,
// moving with the mean local circular velocity. The frame is parameterized
// by the barycentric velocity relative to the LSR, expressed in Galactic
// axes.
type LSR struct {
	vbary *representation.CartesianOffset
}

// NewLSR returns an LSR frame with the Schönrich et al. 2010 solar motion.
func NewLSR() LSR { return LSR{} }

// NewLSRWithVBary returns an LSR frame with a custom barycentric velocity in
// Galactic axes.
func NewLSRWithVBary(v *representation.CartesianOffset) LSR { return LSR{vbary: v} }

// Name returns "lsr".
func (LSR) Name() string { return "lsr" }

// VBary returns the barycentric velocity relative to the LSR in Galactic
// axes.
func (f LSR) VBary() *representation.CartesianOffset {
	if f.vbary != nil {
		return f.vbary
	}
	return Schoenrich2010()
}

var (
	schoenrichOnce sync.Once
	schoenrichV    *representation.CartesianOffset
)

// Schoenrich2010 returns the solar motion of Schönrich, Binney & Dehnen
// (2010) as the barycentric velocity relative to the LSR, in Galactic axes.
func Schoenrich2010() *representation.CartesianOffset {
	schoenrichOnce.Do(func() {
		v, err := representation.NewCartesianOffset(
			quantity.New(-11.1, quantity.KilometerPerSecond),
			quantity.New(12.24, quantity.KilometerPerSecond),
			quantity.New(7.25, quantity.KilometerPerSecond),
		)
		if err != nil {
			panic(err) // fixed constants
		}
		schoenrichV = v
	})
	return schoenrichV
}

// icrsToLSR leaves positions alone and shifts velocities by the barycentric
// motion, rotated from Galactic into ICRS axes.
func icrsToLSR(_, dst transform.Frame) (transform.AffineParams, error) {
	l, ok := dst.(LSR)
	if !ok {
		return transform.AffineParams{}, fmt.Errorf("icrs->lsr: destination is %T, want LSR", dst)
	}
	v, err := l.VBary().MatMul(GalacticToICRSMatrix())
	if err != nil {
		return transform.AffineParams{}, err
	}
	return transform.AffineParams{VelocityOffset: v}, nil
}

// lsrToICRS applies the opposite velocity shift.
func lsrToICRS(src, _ transform.Frame) (transform.AffineParams, error) {
	l, ok := src.(LSR)
	if !ok {
		return transform.AffineParams{}, fmt.Errorf("lsr->icrs: source is %T, want LSR", src)
	}
	v, err := l.VBary().MatMul(GalacticToICRSMatrix())
	if err != nil {
		return transform.AffineParams{}, err
	}
	return transform.AffineParams{VelocityOffset: v.Neg().(*representation.CartesianOffset)}, nil
}

// NewDefaultGraph returns a transform graph wired with the built-in frames:
// icrs <-> galactic by the fixed J2000 rotation and icrs <-> lsr by the
// barycentric velocity shift. Galactic to LSR routes through ICRS.
func NewDefaultGraph(opts ...transform.Option) *transform.Graph {
	g := transform.New(opts...)
	icrs, gal, lsr := ICRS{}, Galactic{}, NewLSR()

	m := ICRSToGalacticMatrix()
	mustRegister(g, icrs, gal, transform.StaticAffine(transform.AffineParams{Matrix: m}))
	mustRegister(g, gal, icrs, transform.StaticAffine(transform.AffineParams{Matrix: transform.Transpose3(m)}))
	mustRegister(g, icrs, lsr, transform.NewAffine(icrsToLSR))
	mustRegister(g, lsr, icrs, transform.NewAffine(lsrToICRS))
	return g
}

func mustRegister(g *transform.Graph, src, dst transform.Frame, op transform.Operator) {
	if err := g.Register(src, dst, op); err != nil {
		panic(err) // distinct built-in names
	}
}

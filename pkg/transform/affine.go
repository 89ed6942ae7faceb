package transform

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/mkleist/astrolabe/pkg/representation"
)

// AffineParams describes an affine map: rotate by Matrix, then add
// PositionOffset to the position and VelocityOffset to the velocity. Nil
// fields are identity.
type AffineParams struct {
	Matrix         *mat.Dense
	PositionOffset *representation.Cartesian
	VelocityOffset *representation.CartesianOffset
}

// Inverse returns the parameters that undo p: the inverted matrix and the
// offsets rotated into the source frame and negated.
func (p AffineParams) Inverse() (AffineParams, error) {
	var out AffineParams
	if p.Matrix != nil {
		var inv mat.Dense
		if err := inv.Inverse(p.Matrix); err != nil {
			return AffineParams{}, fmt.Errorf("%w: %v", ErrSingularMatrix, err)
		}
		out.Matrix = &inv
	}
	if p.PositionOffset != nil {
		neg := p.PositionOffset.Scale(-1).(*representation.Cartesian)
		if out.Matrix != nil {
			var err error
			if neg, err = neg.MatMul(out.Matrix); err != nil {
				return AffineParams{}, err
			}
		}
		out.PositionOffset = neg
	}
	if p.VelocityOffset != nil {
		neg := p.VelocityOffset.Scale(-1).(*representation.CartesianOffset)
		if out.Matrix != nil {
			var err error
			if neg, err = neg.MatMul(out.Matrix); err != nil {
				return AffineParams{}, err
			}
		}
		out.VelocityOffset = neg
	}
	return out, nil
}

// AffineFunc computes affine parameters from the edge's endpoint frames at
// transform time.
type AffineFunc func(src, dst Frame) (AffineParams, error)

// Affine is an Operator applying an affine map to a motion. The position is
// rotated and offset in Cartesian space and converted back to its original
// kind; the velocity, when present, is rotated and offset likewise. A
// velocity offset on a motion without velocity is ignored.
type Affine struct {
	kind string
	fn   AffineFunc
}

// NewAffine builds an operator with lazily computed parameters.
func NewAffine(fn AffineFunc) *Affine {
	return &Affine{kind: "affine", fn: fn}
}

// StaticAffine builds an operator with fixed parameters.
func StaticAffine(p AffineParams) *Affine {
	return &Affine{kind: "static", fn: func(Frame, Frame) (AffineParams, error) { return p, nil }}
}

// Kind reports "affine" for lazy operators and "static" for fixed ones.
func (a *Affine) Kind() string { return a.kind }

// Params resolves the operator's parameters for the given endpoints.
func (a *Affine) Params(src, dst Frame) (AffineParams, error) { return a.fn(src, dst) }

// Apply maps the motion from src to dst.
func (a *Affine) Apply(m Motion, src, dst Frame) (Motion, error) {
	if m.Position == nil {
		return Motion{}, ErrNoPosition
	}
	p, err := a.fn(src, dst)
	if err != nil {
		return Motion{}, err
	}
	c := m.Position.ToCartesian()
	if p.Matrix != nil {
		if c, err = c.MatMul(p.Matrix); err != nil {
			return Motion{}, err
		}
	}
	if p.PositionOffset != nil {
		sum, err := c.Add(p.PositionOffset)
		if err != nil {
			return Motion{}, err
		}
		c = sum.(*representation.Cartesian)
	}
	pos, err := representation.RepresentAs(c, m.Position.Kind())
	if err != nil {
		return Motion{}, err
	}
	vel := m.Velocity
	if vel != nil {
		if p.Matrix != nil {
			if vel, err = vel.MatMul(p.Matrix); err != nil {
				return Motion{}, err
			}
		}
		if p.VelocityOffset != nil {
			sum, err := vel.Add(p.VelocityOffset)
			if err != nil {
				return Motion{}, err
			}
			vel = sum.(*representation.CartesianOffset)
		}
	}
	return Motion{Position: pos, Velocity: vel}, nil
}

package transform

import (
	"math"

	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/mat"
)

// Identity3 returns a fresh 3x3 identity matrix.
func Identity3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// RotationX returns the passive rotation about the x axis: it rotates the
// coordinate axes by a, so components transform the opposite way.
func RotationX(a unit.Angle) *mat.Dense {
	s, c := math.Sincos(a.Rad())
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	})
}

// RotationY returns the passive rotation about the y axis.
func RotationY(a unit.Angle) *mat.Dense {
	s, c := math.Sincos(a.Rad())
	return mat.NewDense(3, 3, []float64{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	})
}

// RotationZ returns the passive rotation about the z axis.
func RotationZ(a unit.Angle) *mat.Dense {
	s, c := math.Sincos(a.Rad())
	return mat.NewDense(3, 3, []float64{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	})
}

// RotationAxis returns the passive rotation about a named axis, one of
// "x", "y" or "z".
func RotationAxis(axis string, a unit.Angle) (*mat.Dense, bool) {
	switch axis {
	case "x":
		return RotationX(a), true
	case "y":
		return RotationY(a), true
	case "z":
		return RotationZ(a), true
	}
	return nil, false
}

// MatMul3 multiplies 3x3 matrices left to right: MatMul3(a, b, c) = a*b*c.
func MatMul3(ms ...*mat.Dense) *mat.Dense {
	out := Identity3()
	for _, m := range ms {
		var tmp mat.Dense
		tmp.Mul(out, m)
		out = &tmp
	}
	return out
}

// Transpose3 returns a dense copy of the transpose; for pure rotations this
// is the inverse.
func Transpose3(m *mat.Dense) *mat.Dense {
	return mat.DenseCopyOf(m.T())
}

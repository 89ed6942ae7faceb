package frames

import (
	"sync"

	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/mat"

	"github.com/mkleist/astrolabe/pkg/transform"
)

// J2000 orientation of the Galactic frame relative to ICRS: the equatorial
// position of the north galactic pole and the galactic longitude of the
// ascending node of the galactic plane.
const (
	ngpRAJ2000Deg  = 192.8594812065348
	ngpDecJ2000Deg = 27.12825118085622
	lon0J2000Deg   = 122.9319185680026
)

var (
	icrsToGalacticOnce sync.Once
	icrsToGalacticMat  *mat.Dense
)

// ICRSToGalacticMatrix returns the rotation taking ICRS components to
// Galactic components: spin onto the node, tilt the pole, then set the zero
// of galactic longitude.
func ICRSToGalacticMatrix() *mat.Dense {
	icrsToGalacticOnce.Do(func() {
		icrsToGalacticMat = transform.MatMul3(
			transform.RotationZ(unit.AngleFromDeg(180-lon0J2000Deg)),
			transform.RotationY(unit.AngleFromDeg(90-ngpDecJ2000Deg)),
			transform.RotationZ(unit.AngleFromDeg(ngpRAJ2000Deg)),
		)
	})
	return icrsToGalacticMat
}

// GalacticToICRSMatrix returns the inverse rotation, the transpose.
func GalacticToICRSMatrix() *mat.Dense {
	return transform.Transpose3(ICRSToGalacticMatrix())
}

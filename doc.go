/*
Package astrolabe is a typed algebra for astronomical coordinates: unit-aware
quantities, interconvertible coordinate representations, differential offsets
and a directed graph of reference-frame transforms.

The pieces live in focused packages:

  - pkg/quantity: scalar and batch values tagged with units
  - pkg/angle: wrapped longitudes and range-checked latitudes
  - pkg/representation: Cartesian, Spherical, UnitSpherical,
    PhysicsSpherical and Cylindrical positions plus their offsets
  - pkg/transform: the frame graph and affine operators
  - pkg/frames: the built-in ICRS, Galactic and LSR frames

This root package ties them together behind System, which owns a graph wired
with the built-in frames and optional YAML catalogs:

	sys, err := astrolabe.New(astrolabe.WithCatalog("frames.yaml"))
	if err != nil {
		log.Fatal(err)
	}
	out, err := sys.Transform(motion, "icrs", "galactic")
*/
package astrolabe

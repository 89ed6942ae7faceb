/*
Package representation implements the coordinate representation algebra: a
closed set of point representations (Cartesian, Spherical, UnitSpherical,
PhysicsSpherical, Cylindrical) and the matching family of differential
offsets anchored at a base point.

Every representation converts losslessly to and from Cartesian, which acts as
the single conversion hub: converting between two non-Cartesian variants
always pivots through Cartesian unless a spherical-family fast path applies.
Arithmetic never mutates its operands; every operation returns a new value.

Offsets live in the tangent space of a base point. Converting an offset to a
Cartesian displacement multiplies each differential component by the base
point's scale factor and unit vector for that coordinate and sums the terms;
projecting a Cartesian displacement back divides the dot product with each
unit vector by the corresponding scale factor. A UnitSpherical offset cannot
carry radial motion, so its projection discards any component along the
base's own radial direction. That loss is part of the contract.
*/
package representation

/*
Package transform routes positions and velocities between reference frames
over a directed graph of registered operators.

Frames are graph nodes keyed by name; each edge carries an Operator that maps
a Motion (position plus optional velocity) from its source frame into its
destination frame. Multi-hop conversions find the cheapest path with Dijkstra
over uniform edge costs, then compose the operators along it. Registering an
edge that already exists replaces its operator, so graphs can be rewired at
runtime. All graph mutations and lookups are safe for concurrent use.

The workhorse operator is Affine: rotate by a 3x3 matrix, then add a position
offset and, when the motion carries a velocity, a velocity offset. Operator
parameters may be computed lazily from the endpoint frames, which lets an
edge depend on frame attributes without capturing them at registration time.
*/
package transform

/*
Package frames provides the built-in celestial reference frames and a default
transform graph connecting them.

ICRS is the barycentric equatorial frame. Galactic is related to it by a
fixed J2000 rotation. LSR, the Local Standard of Rest, shares axes and
origin with ICRS but moves relative to the solar system barycenter; its
transforms shift velocities by the barycentric motion (Schönrich et al. 2010
by default) and leave positions alone.
*/
package frames

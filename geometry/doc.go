// Package geometry implements the plane-geometry primitives and
// constructions needed by the competitive-programming geometry problems
// this module was extracted from: points and vectors over any signed
// numeric type, lines, circles (including Welzl's randomised minimum
// enclosing circle), half-planes, and polygons built from half-plane
// intersection, clipping, and line splitting.
//
// Equality for integer-typed points is exact; equality for float64-typed
// points and for any derived floating quantity (line coincidence, circle
// tangency) uses numeric.DefaultEpsilon. No function in this package
// panics on degenerate input (colinear points, zero-radius circles,
// empty half-plane intersections) — degenerate cases are reported
// through documented zero values, booleans, or an error, never a panic.
package geometry

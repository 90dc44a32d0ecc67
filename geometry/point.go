package geometry

import (
	"math"

	"github.com/arlov/algokit/numeric"
)

// Point is a coordinate pair over any signed numeric type T.
type Point[T numeric.Number] struct {
	X, Y T
}

// NewPoint constructs a Point from raw coordinates.
func NewPoint[T numeric.Number](x, y T) Point[T] { return Point[T]{X: x, Y: y} }

// Equal compares two points: exact when all four coordinates are whole
// numbers (always the case for integer T), tolerance-based
// (numeric.DefaultEpsilon) otherwise.
func (p Point[T]) Equal(q Point[T]) bool {
	if isIntegral(p.X) && isIntegral(p.Y) && isIntegral(q.X) && isIntegral(q.Y) {
		return p.X == q.X && p.Y == q.Y
	}

	return numeric.FloatEqual(float64(p.X), float64(q.X), numeric.DefaultEpsilon) &&
		numeric.FloatEqual(float64(p.Y), float64(q.Y), numeric.DefaultEpsilon)
}

// isIntegral reports whether v has no fractional component; used to
// pick exact vs. tolerance-based comparison without a separate type tag.
func isIntegral[T numeric.Number](v T) bool {
	f := float64(v)

	return f == math.Trunc(f)
}

// Vector is a displacement (x, y) over T, supporting the arithmetic the
// geometry engine needs: scalar multiply, addition, 90-degree rotation,
// squared length, length, dot and cross products.
type Vector[T numeric.Number] struct {
	X, Y T
}

// NewVector builds a Vector from raw components.
func NewVector[T numeric.Number](x, y T) Vector[T] { return Vector[T]{X: x, Y: y} }

// VectorFromPoints builds the displacement from a to b.
func VectorFromPoints[T numeric.Number](a, b Point[T]) Vector[T] {
	return Vector[T]{X: b.X - a.X, Y: b.Y - a.Y}
}

// Add returns v+w.
func (v Vector[T]) Add(w Vector[T]) Vector[T] { return Vector[T]{X: v.X + w.X, Y: v.Y + w.Y} }

// Sub returns v-w.
func (v Vector[T]) Sub(w Vector[T]) Vector[T] { return Vector[T]{X: v.X - w.X, Y: v.Y - w.Y} }

// Scale returns v scaled by k.
func (v Vector[T]) Scale(k T) Vector[T] { return Vector[T]{X: v.X * k, Y: v.Y * k} }

// Rotate90 returns v rotated 90 degrees counter-clockwise: (x,y) -> (-y,x).
func (v Vector[T]) Rotate90() Vector[T] { return Vector[T]{X: -v.Y, Y: v.X} }

// RotateNeg90 returns v rotated 90 degrees clockwise: (x,y) -> (y,-x).
func (v Vector[T]) RotateNeg90() Vector[T] { return Vector[T]{X: v.Y, Y: -v.X} }

// Len2 returns the squared length of v (exact for integer T).
func (v Vector[T]) Len2() T { return v.X*v.X + v.Y*v.Y }

// Len returns the Euclidean length of v.
func (v Vector[T]) Len() float64 { return math.Sqrt(float64(v.Len2())) }

// Dot returns the dot product v.w.
func (v Vector[T]) Dot(w Vector[T]) T { return v.X*w.X + v.Y*w.Y }

// Cross returns the 2D cross product (z-component) v x w.
func (v Vector[T]) Cross(w Vector[T]) T { return v.X*w.Y - v.Y*w.X }

// Translate moves p by v.
func (p Point[T]) Translate(v Vector[T]) Point[T] { return Point[T]{X: p.X + v.X, Y: p.Y + v.Y} }

package geometry

import (
	"github.com/arlov/algokit/numeric"
)

// Line represents a·x + b·y + c = 0 with (a,b) != (0,0).
type Line[T numeric.Number] struct {
	A, B, C T
}

// NewLine validates (a,b) != (0,0) and returns the line a*x+b*y+c=0.
func NewLine[T numeric.Number](a, b, c T) (Line[T], error) {
	if a == 0 && b == 0 {
		return Line[T]{}, ErrDegenerateLine
	}

	return Line[T]{A: a, B: b, C: c}, nil
}

// LineThroughPoints builds the line passing through p and q.
// p and q must be distinct; callers that cannot guarantee this should
// check via Point.Equal first (DegenerateGeometry, not an error here —
// the resulting line is simply the zero line, which NewLine rejects by
// construction if used, but this helper never calls NewLine so a
// degenerate pair yields Line[T]{} silently, matching spec.md's
// DegenerateGeometry contract).
func LineThroughPoints[T numeric.Number](p, q Point[T]) Line[T] {
	a := q.Y - p.Y
	b := p.X - q.X
	c := -(a*p.X + b*p.Y)

	return Line[T]{A: a, B: b, C: c}
}

// LineRelation enumerates the three outcomes of Line.Intersect.
type LineRelation int

const (
	// LineDisjoint means the lines are parallel and distinct.
	LineDisjoint LineRelation = iota
	// LinePoint means the lines cross at exactly one point.
	LinePoint
	// LineCoincident means the lines are the same line.
	LineCoincident
)

// Parallel reports whether l and m have proportional normal vectors.
func (l Line[T]) Parallel(m Line[T]) bool {
	return float64(l.A)*float64(m.B)-float64(l.B)*float64(m.A) == 0
}

// coincident reports whether l and m are the same line, i.e. every
// coefficient pair is proportional (cross-ratio match, spec.md §3).
func (l Line[T]) coincident(m Line[T]) bool {
	cross := func(x1, y1, x2, y2 float64) bool {
		return numeric.FloatEqual(x1*y2, x2*y1, numeric.DefaultEpsilon)
	}

	return cross(float64(l.A), float64(m.B), float64(m.A), float64(l.B)) &&
		cross(float64(l.A), float64(m.C), float64(m.A), float64(l.C)) &&
		cross(float64(l.B), float64(m.C), float64(m.B), float64(l.C))
}

// Intersect classifies the intersection of l and m and, for the
// single-point case, returns that point (as float64 coordinates, since
// intersections are not in general representable in T).
func (l Line[T]) Intersect(m Line[T]) (LineRelation, Point[float64]) {
	if l.Parallel(m) {
		if l.coincident(m) {
			return LineCoincident, Point[float64]{}
		}

		return LineDisjoint, Point[float64]{}
	}
	a1, b1, c1 := float64(l.A), float64(l.B), float64(l.C)
	a2, b2, c2 := float64(m.A), float64(m.B), float64(m.C)
	det := a1*b2 - a2*b1
	x := (b1*c2 - b2*c1) / det
	y := (a2*c1 - a1*c2) / det

	return LinePoint, Point[float64]{X: x, Y: y}
}

// Horizontal reports whether l is of the form y = const (a == 0).
func (l Line[T]) Horizontal() bool { return l.A == 0 }

// Vertical reports whether l is of the form x = const (b == 0).
func (l Line[T]) Vertical() bool { return l.B == 0 }

// Slope returns the line's slope (-a/b) and true, or false if the line
// is vertical (slope undefined).
func (l Line[T]) Slope() (float64, bool) {
	if l.Vertical() {
		return 0, false
	}

	return -float64(l.A) / float64(l.B), true
}

// Intercept returns the line's y-intercept (-c/b) and true, or false if
// the line is vertical.
func (l Line[T]) Intercept() (float64, bool) {
	if l.Vertical() {
		return 0, false
	}

	return -float64(l.C) / float64(l.B), true
}

// YAt returns the y-value of l at the given x, or an error if l is
// vertical (no unique y-value exists).
func (l Line[T]) YAt(x float64) (float64, error) {
	if l.Vertical() {
		return 0, ErrVerticalLine
	}

	return (-float64(l.C) - float64(l.A)*x) / float64(l.B), nil
}

// Normal returns the line's normal vector (a, b).
func (l Line[T]) Normal() Vector[T] { return Vector[T]{X: l.A, Y: l.B} }

// Direction returns a vector along the line, perpendicular to Normal.
func (l Line[T]) Direction() Vector[T] { return Vector[T]{X: -l.B, Y: l.A} }

// SignedDistanceNumerator returns a*p.X + b*p.Y + c, whose sign
// classifies which side of l the point p lies on (used by HalfPlane).
func (l Line[T]) SignedDistanceNumerator(p Point[T]) T {
	return l.A*p.X + l.B*p.Y + l.C
}

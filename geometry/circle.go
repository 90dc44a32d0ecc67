package geometry

import (
	"math"
	"math/rand"

	"github.com/arlov/algokit/numeric"
)

// Circle is a centre plus radius over T.
type Circle[T numeric.Number] struct {
	Center Point[T]
	Radius T
}

// NewCircle builds a circle from a centre and radius.
func NewCircle[T numeric.Number](center Point[T], radius T) Circle[T] {
	return Circle[T]{Center: center, Radius: radius}
}

// Contains reports whether p lies within or on the boundary of c.
func (c Circle[T]) Contains(p Point[T]) bool {
	d2 := VectorFromPoints(c.Center, p).Len2()
	r2 := c.Radius * c.Radius

	return float64(d2) <= float64(r2)+numeric.DefaultEpsilon
}

// CircleRelation enumerates the four outcomes of Circle.Intersect.
type CircleRelation int

const (
	// CircleDisjoint means the circles share no point.
	CircleDisjoint CircleRelation = iota
	// CircleTangent means the circles touch at exactly one point.
	CircleTangent
	// CircleTwoPoints means the circles cross at exactly two points.
	CircleTwoPoints
	// CircleCoincident means the circles are identical.
	CircleCoincident
)

// Intersect classifies the intersection of c and d (spec.md §4.8) and
// returns the touch point (CircleTangent) or the two crossing points
// (CircleTwoPoints, first then second by the perpendicular-offset sign).
func (c Circle[T]) Intersect(d Circle[T]) (CircleRelation, [2]Point[float64]) {
	if c.Center.Equal(d.Center) && numeric.FloatEqual(float64(c.Radius), float64(d.Radius), numeric.DefaultEpsilon) {
		return CircleCoincident, [2]Point[float64]{}
	}

	dv := VectorFromPoints(c.Center, d.Center)
	d2 := float64(dv.Len2())
	r0, r1 := float64(c.Radius), float64(d.Radius)

	sumR := r0 + r1
	diffR := r0 - r1
	if d2 > sumR*sumR+numeric.DefaultEpsilon {
		return CircleDisjoint, [2]Point[float64]{}
	}
	if d2 < diffR*diffR-numeric.DefaultEpsilon {
		return CircleDisjoint, [2]Point[float64]{}
	}

	dist := math.Sqrt(d2)
	if numeric.FloatEqual(d2, sumR*sumR, numeric.DefaultEpsilon) || numeric.FloatEqual(d2, diffR*diffR, numeric.DefaultEpsilon) {
		// Tangent: the touch point lies r0 from c.Center on the line of
		// centres, toward d.Center unless c sits inside the larger d.
		ratio := r0 / dist
		if r0 < r1 && !numeric.FloatEqual(d2, sumR*sumR, numeric.DefaultEpsilon) {
			ratio = -ratio
		}
		p := Point[float64]{
			X: float64(c.Center.X) + float64(dv.X)*ratio,
			Y: float64(c.Center.Y) + float64(dv.Y)*ratio,
		}

		return CircleTangent, [2]Point[float64]{p, p}
	}

	oh := (r0*r0 - r1*r1 + d2) / (2 * dist)
	hp2 := r0*r0 - oh*oh
	if hp2 < 0 {
		hp2 = 0
	}
	hp := math.Sqrt(hp2)

	ux, uy := float64(dv.X)/dist, float64(dv.Y)/dist // unit vector c->d
	hx, hy := float64(c.Center.X)+oh*ux, float64(c.Center.Y)+oh*uy
	// perpendicular to (ux,uy) is (-uy,ux)
	p1 := Point[float64]{X: hx - hp*uy, Y: hy + hp*ux}
	p2 := Point[float64]{X: hx + hp*uy, Y: hy - hp*ux}

	return CircleTwoPoints, [2]Point[float64]{p1, p2}
}

// circumscribe returns the unique circle through three non-colinear
// points, or (Circle{}, false) if they are colinear (DegenerateGeometry).
func circumscribe(a, b, c Point[float64]) (Circle[float64], bool) {
	ax, ay := a.X-c.X, a.Y-c.Y
	bx, by := b.X-c.X, b.Y-c.Y
	d := 2 * (ax*by - ay*bx)
	if math.Abs(d) < numeric.DefaultEpsilon {
		return Circle[float64]{}, false
	}
	ux := (by*(ax*ax+ay*ay) - ay*(bx*bx+by*by)) / d
	uy := (ax*(bx*bx+by*by) - bx*(ax*ax+ay*ay)) / d
	center := Point[float64]{X: ux + c.X, Y: uy + c.Y}
	radius := VectorFromPoints(center, a).Len()

	return Circle[float64]{Center: center, Radius: radius}, true
}

// circleFromTwo returns the smallest circle with a and b on its
// boundary (diameter ab).
func circleFromTwo(a, b Point[float64]) Circle[float64] {
	center := Point[float64]{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	radius := VectorFromPoints(center, a).Len()

	return Circle[float64]{Center: center, Radius: radius}
}

func containsFloat(c Circle[float64], p Point[float64]) bool {
	return VectorFromPoints(c.Center, p).Len() <= c.Radius+numeric.DefaultEpsilon
}

// MinEnclosingCircle computes the minimum enclosing circle of pts using
// Welzl's randomised incremental algorithm (spec.md §4.8). Returns
// ErrEmptyPointSet for an empty input. Any valid smallest circle may be
// returned when the minimum circle is not unique (collinear/degenerate
// inputs can have more than one certificate of minimality).
//
// Expected O(n) time; the randomisation is seeded from math/rand's
// package-level source, matching the spec's "shuffle the input points"
// step without requiring callers to plumb an RNG through every call.
func MinEnclosingCircle[T numeric.Number](pts []Point[T]) (Circle[float64], error) {
	if len(pts) == 0 {
		return Circle[float64]{}, ErrEmptyPointSet
	}
	fpts := make([]Point[float64], len(pts))
	for i, p := range pts {
		fpts[i] = Point[float64]{X: float64(p.X), Y: float64(p.Y)}
	}
	rand.Shuffle(len(fpts), func(i, j int) { fpts[i], fpts[j] = fpts[j], fpts[i] })

	if len(fpts) == 1 {
		return Circle[float64]{Center: fpts[0], Radius: 0}, nil
	}

	c := circleFromTwo(fpts[0], fpts[1])
	for i := 2; i < len(fpts); i++ {
		if containsFloat(c, fpts[i]) {
			continue
		}
		c = minCircleWith1(fpts[:i], fpts[i])
	}

	return c, nil
}

// minCircleWith1 finds the minimum circle enclosing pts with q fixed on
// the boundary.
func minCircleWith1(pts []Point[float64], q Point[float64]) Circle[float64] {
	c := circleFromTwo(q, pts[0])
	for i := 1; i < len(pts); i++ {
		if containsFloat(c, pts[i]) {
			continue
		}
		c = minCircleWith2(pts[:i], q, pts[i])
	}

	return c
}

// minCircleWith2 finds the minimum circle enclosing pts with q1 and q2
// both fixed on the boundary.
func minCircleWith2(pts []Point[float64], q1, q2 Point[float64]) Circle[float64] {
	c := circleFromTwo(q1, q2)
	for _, p := range pts {
		if containsFloat(c, p) {
			continue
		}
		if circum, ok := circumscribe(q1, q2, p); ok {
			c = circum
		}
	}

	return c
}

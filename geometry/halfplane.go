package geometry

import (
	"math"
	"sort"

	"github.com/arlov/algokit/numeric"
)

// Sign selects which side of a HalfPlane's boundary line is "inside".
type Sign int

const (
	// Positive means a·x+b·y+c >= 0 is inside.
	Positive Sign = iota
	// Negative means a·x+b·y+c <= 0 is inside.
	Negative
)

// HalfPlane is a Line plus a Sign and a WithBorder flag (spec.md §3).
type HalfPlane[T numeric.Number] struct {
	Boundary   Line[T]
	Side       Sign
	WithBorder bool
}

// NewHalfPlane builds a half-plane from a boundary line and side.
func NewHalfPlane[T numeric.Number](l Line[T], side Sign, withBorder bool) HalfPlane[T] {
	return HalfPlane[T]{Boundary: l, Side: side, WithBorder: withBorder}
}

// Contains reports whether p lies inside hp (respecting WithBorder).
func (hp HalfPlane[T]) Contains(p Point[T]) bool {
	v := float64(hp.Boundary.SignedDistanceNumerator(p))
	if hp.Side == Negative {
		v = -v
	}
	if hp.WithBorder {
		return v >= -numeric.DefaultEpsilon
	}

	return v > numeric.DefaultEpsilon
}

// normalAngle returns the angle of the normal pointing into the inside
// region, used for sorting half-planes during intersection (spec.md §4.8).
func (hp HalfPlane[T]) normalAngle() float64 {
	n := hp.Boundary.Normal()
	a, b := float64(n.X), float64(n.Y)
	if hp.Side == Negative {
		a, b = -a, -b
	}

	return math.Atan2(b, a)
}

// Upward reports whether hp's inside region extends toward +y.
func (hp HalfPlane[T]) Upward() bool {
	n := hp.Boundary.Normal()
	b := float64(n.Y)
	if hp.Side == Negative {
		b = -b
	}

	return b > 0
}

// Downward reports whether hp's inside region extends toward -y.
func (hp HalfPlane[T]) Downward() bool { return !hp.Upward() && !hp.Boundary.Vertical() }

// Leftward reports whether hp's inside region extends toward -x, for a
// vertical boundary.
func (hp HalfPlane[T]) Leftward() bool {
	n := hp.Boundary.Normal()
	a := float64(n.X)
	if hp.Side == Negative {
		a = -a
	}

	return a < 0
}

// Rightward reports whether hp's inside region extends toward +x, for a
// vertical boundary.
func (hp HalfPlane[T]) Rightward() bool { return hp.Boundary.Vertical() && !hp.Leftward() }

// ContainsHalfPlane reports whether every point satisfying other also
// satisfies hp, which holds exactly when the two boundaries are
// parallel, face the same direction, and hp's boundary is not strictly
// outside other's.
func (hp HalfPlane[T]) ContainsHalfPlane(other HalfPlane[T]) bool {
	if !hp.Boundary.Parallel(other.Boundary) {
		return false
	}
	if numeric.FloatCompare(hp.normalAngle(), other.normalAngle(), 1e-9) != 0 {
		return false
	}
	// Same direction: hp contains other iff a point on other's boundary
	// (here the one closest to the origin) is inside hp too.
	n := other.Boundary.Normal()
	na, nb := float64(n.X), float64(n.Y)
	k := -float64(other.Boundary.C) / (na*na + nb*nb)
	probe := Point[float64]{X: na * k, Y: nb * k}
	v := float64(hp.Boundary.A)*probe.X + float64(hp.Boundary.B)*probe.Y + float64(hp.Boundary.C)
	if hp.Side == Negative {
		v = -v
	}

	return v >= -numeric.DefaultEpsilon
}

// ContainsIntersection reports whether hp contains every point in the
// intersection of a and b (used while pruning redundant half-planes
// during IntersectHalfPlanes).
func (hp HalfPlane[T]) ContainsIntersection(a, b HalfPlane[T]) bool {
	rel, p := a.Boundary.Intersect(b.Boundary)
	if rel != LinePoint {
		return true // no single witness point to violate containment
	}

	return hp.Contains(Point[T]{X: T(p.X), Y: T(p.Y)})
}

// IntersectHalfPlanes computes the convex polygon formed by the
// intersection of hps (spec.md §4.8): sort by normal angle, drop
// half-planes dominated by a parallel neighbour, then scan with a deque
// dropping half-planes whose removal doesn't shrink the intersection
// ("bad triples"), and finally emit vertices as consecutive boundary
// intersections. Returns ErrEmptyHalfPlaneSet for an empty input, and an
// empty Polygon (no error) when the intersection is empty — a
// DegenerateGeometry outcome per spec.md §7.
func IntersectHalfPlanes[T numeric.Number](hps []HalfPlane[T]) (Polygon[float64], error) {
	if len(hps) == 0 {
		return Polygon[float64]{}, ErrEmptyHalfPlaneSet
	}

	ordered := make([]HalfPlane[T], len(hps))
	copy(ordered, hps)
	originDepth := func(hp HalfPlane[T]) float64 {
		v := float64(hp.Boundary.C) / math.Hypot(float64(hp.Boundary.A), float64(hp.Boundary.B))
		if hp.Side == Negative {
			v = -v
		}

		return v
	}
	sort.Slice(ordered, func(i, j int) bool {
		ai, aj := ordered[i].normalAngle(), ordered[j].normalAngle()
		if numeric.FloatCompare(ai, aj, 1e-9) != 0 {
			return ai < aj
		}
		// Parallel, same direction: keep the more restrictive one first
		// so the subsequent dedup pass can drop the looser duplicate.
		// originDepth is the signed distance of the origin into the
		// half-plane; the smaller it is, the more restrictive the half-plane.
		return originDepth(ordered[i]) < originDepth(ordered[j])
	})

	// Drop exact angle duplicates, keeping the most restrictive (first
	// sorted, per the tiebreak above).
	dedup := ordered[:0:0]
	for i := 0; i < len(ordered); i++ {
		if len(dedup) > 0 && numeric.FloatCompare(dedup[len(dedup)-1].normalAngle(), ordered[i].normalAngle(), 1e-9) == 0 {
			continue
		}
		dedup = append(dedup, ordered[i])
	}

	deque := make([]HalfPlane[T], 0, len(dedup))
	for _, hp := range dedup {
		for len(deque) >= 2 && !deque[len(deque)-2].ContainsIntersection(deque[len(deque)-1], hp) {
			deque = deque[:len(deque)-1]
		}
		deque = append(deque, hp)
	}
	for len(deque) >= 3 && !deque[len(deque)-2].ContainsIntersection(deque[len(deque)-1], deque[0]) {
		deque = deque[:len(deque)-1]
	}
	for len(deque) >= 3 && !deque[1].ContainsIntersection(deque[0], deque[len(deque)-1]) {
		deque = deque[1:]
	}

	if len(deque) < 3 {
		return Polygon[float64]{}, nil
	}

	verts := make([]Point[float64], 0, len(deque))
	for i := range deque {
		a := deque[i]
		b := deque[(i+1)%len(deque)]
		rel, p := a.Boundary.Intersect(b.Boundary)
		if rel != LinePoint {
			return Polygon[float64]{}, nil
		}
		verts = append(verts, p)
	}

	return Polygon[float64]{Vertices: verts}, nil
}

package numeric

import "golang.org/x/exp/constraints"

// Number is the constraint satisfied by every coordinate type accepted
// by the generic geometry engine: signed integers and floating point.
// Unsigned types are excluded because geometry computes differences
// that may go negative (vectors, cross products, signed areas).
type Number interface {
	constraints.Signed | constraints.Float
}

// DefaultEpsilon is the absolute tolerance used to compare derived
// floating-point quantities (spec: Point<T> equality for floating T).
const DefaultEpsilon = 1e-6

// FloatEqual reports whether a and b are within eps of each other.
// Use DefaultEpsilon unless a caller has a documented reason to widen it.
func FloatEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}

	return d <= eps
}

// FloatCompare returns -1, 0, or 1 comparing a and b within eps,
// treating values closer than eps as equal.
func FloatCompare(a, b, eps float64) int {
	if FloatEqual(a, b, eps) {
		return 0
	}
	if a < b {
		return -1
	}

	return 1
}

// Pair is an ordered (key, tiebreak) tuple for sorting values by a
// primary key while keeping ties in a caller-chosen, deterministic
// secondary order.
type Pair[K Number] struct {
	Key      K
	Tiebreak int
}

// PairLess orders Pairs by Key then Tiebreak, ascending.
func PairLess[K Number](a, b Pair[K]) bool {
	if a.Key != b.Key {
		return a.Key < b.Key
	}

	return a.Tiebreak < b.Tiebreak
}

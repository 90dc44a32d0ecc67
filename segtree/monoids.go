package segtree

import "math"

// MinQuery is the QueryMonoid[int64] returning the smaller of two
// values, identity +MaxInt64.
type MinQuery struct{}

// Combine returns the smaller of a and b.
func (MinQuery) Combine(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

// Identity returns math.MaxInt64.
func (MinQuery) Identity() int64 { return math.MaxInt64 }

// AddUpdate is the UpdateMonoid[int64] for range-add: Apply shifts a
// min-aggregate by a constant delta regardless of leaf count, and
// assigning a constant v to count leaves makes the min exactly v.
type AddUpdate struct{}

// Combine sums two pending deltas.
func (AddUpdate) Combine(a, b int64) int64 { return a + b }

// Apply adds delta to value (count is irrelevant for a min aggregate:
// shifting every leaf by delta shifts the min by delta too).
func (AddUpdate) Apply(value, delta int64, _ int) int64 { return value + delta }

// ApplyAssign returns v: the min of count copies of v is v.
func (AddUpdate) ApplyAssign(v int64, _ int) int64 { return v }

// Identity is the additive no-op, 0.
func (AddUpdate) Identity() int64 { return 0 }

// SumQuery is the QueryMonoid[int64] returning the sum of two values.
type SumQuery struct{}

// Combine returns a+b.
func (SumQuery) Combine(a, b int64) int64 { return a + b }

// Identity returns 0.
func (SumQuery) Identity() int64 { return 0 }

// SumAddUpdate is the UpdateMonoid[int64] for range-add over a sum
// aggregate: adding delta to count leaves shifts the sum by delta*count.
type SumAddUpdate struct{}

// Combine sums two pending deltas.
func (SumAddUpdate) Combine(a, b int64) int64 { return a + b }

// Apply adds delta*count to the sum aggregate.
func (SumAddUpdate) Apply(value, delta int64, count int) int64 { return value + delta*int64(count) }

// ApplyAssign returns v*count: the sum of count copies of v.
func (SumAddUpdate) ApplyAssign(v int64, count int) int64 { return v * int64(count) }

// Identity is the additive no-op, 0.
func (SumAddUpdate) Identity() int64 { return 0 }

package segtree

// QueryMonoid combines two query results and supplies the identity
// element (e.g. +Inf for min, 0 for sum) used to pad the tree to a
// power-of-two size.
type QueryMonoid[T any] interface {
	Combine(a, b T) T
	Identity() T
}

// UpdateMonoid combines two pending additive range updates, applies an
// additive update to an existing aggregate over count leaves, and
// computes the aggregate produced by assigning one constant to count
// leaves — the three operations spec.md §4.6's push-down rules need to
// keep "add" and "set" semantics correct for any query monoid (additive
// aggregates like sum scale with count; idempotent ones like min do
// not).
type UpdateMonoid[T any] interface {
	// Combine composes two pending additive deltas into one.
	Combine(a, b T) T
	// Apply adds delta to value, which aggregates count leaves.
	Apply(value T, delta T, count int) T
	// ApplyAssign returns the aggregate of count leaves all assigned
	// the constant v.
	ApplyAssign(v T, count int) T
	// Identity is the additive no-op update.
	Identity() T
}

// Package numeric provides small, dependency-light primitives: a numeric
// type constraint, modular arithmetic over int64, tolerance-based float
// comparison, and ordered tuple comparison helpers for deterministic
// tie-breaking. Within algokit, the geometry engine builds on the
// constraint and the float comparisons.
//
// Nothing here owns state; every function is pure and safe for
// concurrent use.
package numeric

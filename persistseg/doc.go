// Package persistseg implements a persistent segment tree over
// coordinate-compressed values, answering k-th order statistic queries
// on an arbitrary range (spec.md §4.7). Each prefix of the input array
// gets its own immutable root; nodes are append-only in a growable pool
// so earlier versions are never mutated.
package persistseg

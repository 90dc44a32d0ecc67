// Package segtree implements a generic segment tree over an associative
// query monoid (e.g. min) and an associative, commutative update monoid
// (e.g. addition), with lazy propagation that lets range assignment
// ("set") dominate any pending range addition ("add") — spec.md §4.6.
//
// The tree is stored as a complete binary tree in a slice, sized to the
// next power of two and padded with the query monoid's identity, the
// layout every array-backed segment tree in the competitive-programming
// style uses.
package segtree

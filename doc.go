// Package algokit is your in-memory toolbox for the algorithms that
// show up over and over in competitive programming and systems work:
// maximum flow, string indexing, range queries, and computational
// geometry.
//
// 🚀 What is algokit?
//
//	A modern, generics-friendly, low-dependency collection bringing
//	together:
//
//	  • Flow: Dinic max flow, two min-cost-flow variants, Karger min-cut
//	  • Strings: suffix arrays, suffix trees, FFT-accelerated matching
//	  • Intervals: lazy segment trees, persistent segment trees
//	  • Geometry: half-plane intersection, polygon clipping, Welzl's
//	    minimum enclosing circle
//
// ✨ Why choose algokit?
//
//   - Index-based graphs    — edges refer to each other by adjacency
//     index, never by pointer, so growing a network never invalidates
//     a held reference
//   - Generic where it pays off — segtree is generic over any element
//     type with caller-supplied monoids; geometry is generic over any
//     numeric.Number (signed integers and floats)
//   - Cancellable            — every flow algorithm accepts a
//     context.Context, matching how production services need to
//     bound algorithmic work
//
// Under the hood, everything is organized into nine subpackages:
//
//	numeric/      — shared numeric constraints and comparison helpers
//	flow/         — maximum flow, min-cost flow, min-cut
//	reductions/   — assignment, evacuation, scheduling, disjoint paths
//	              as instances of flow
//	suffixarray/  — prefix-doubling suffix arrays + Kasai's LCP
//	suffixtree/   — Ukkonen's online suffix tree
//	fft/          — Cooley-Tukey FFT, convolution, fuzzy matching
//	segtree/      — generic lazy segment tree (assignment dominance)
//	persistseg/   — persistent segment tree, k-th order statistics
//	geometry/     — points, lines, circles, half-planes, polygons
package algokit

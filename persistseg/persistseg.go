package persistseg

import "sort"

// node is a persistent segment-tree node over the compressed-coordinate
// index range it covers (implicit from its position during descent).
// left and right are indices into PersistentTree.pool, or -1 for a node
// with no such child (only possible at the coordinate-range leaves).
type node struct {
	left, right int
	count       int
}

// PersistentTree answers k-th order statistic queries on any range
// [l, r] of the original array via per-prefix roots over compressed
// coordinates (spec.md §4.7).
type PersistentTree struct {
	coords []int64 // sorted distinct values, coords[i] is compressed index i
	pool   []node  // append-only node arena
	roots  []int   // roots[i] = root of the tree after processing i elements
}

// New builds a persistent tree over values: coordinates are compressed,
// and roots[0..len(values)] are constructed incrementally.
func New(values []int64) *PersistentTree {
	coords := append([]int64(nil), values...)
	sort.Slice(coords, func(i, j int) bool { return coords[i] < coords[j] })
	coords = dedup(coords)

	t := &PersistentTree{coords: coords}
	t.pool = append(t.pool, node{left: -1, right: -1, count: 0}) // index 0: zero-count placeholder, not linked into any version
	emptyRoot := t.build(0, len(coords)-1)
	t.roots = append(t.roots, emptyRoot)

	for _, v := range values {
		ci := t.compress(v)
		newRoot := t.insert(t.roots[len(t.roots)-1], 0, len(coords)-1, ci)
		t.roots = append(t.roots, newRoot)
	}

	return t
}

func dedup(sorted []int64) []int64 {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

func (t *PersistentTree) compress(v int64) int {
	return sort.Search(len(t.coords), func(i int) bool { return t.coords[i] >= v })
}

// build constructs the all-zero tree over coordinate range [lo, hi],
// allocating one new node for every range it visits.
func (t *PersistentTree) build(lo, hi int) int {
	if lo == hi {
		t.pool = append(t.pool, node{left: -1, right: -1, count: 0})

		return len(t.pool) - 1
	}
	mid := (lo + hi) / 2
	left := t.build(lo, mid)
	right := t.build(mid+1, hi)
	t.pool = append(t.pool, node{left: left, right: right, count: 0})

	return len(t.pool) - 1
}

// insert returns the index of a new root equal to the tree at prev with
// compressed coordinate pos incremented by one, allocating only the
// O(log n) nodes on the path to pos.
func (t *PersistentTree) insert(prev, lo, hi, pos int) int {
	if lo == hi {
		t.pool = append(t.pool, node{left: -1, right: -1, count: t.pool[prev].count + 1})

		return len(t.pool) - 1
	}
	mid := (lo + hi) / 2
	prevNode := t.pool[prev]
	if pos <= mid {
		newLeft := t.insert(prevNode.left, lo, mid, pos)
		t.pool = append(t.pool, node{left: newLeft, right: prevNode.right, count: prevNode.count + 1})
	} else {
		newRight := t.insert(prevNode.right, mid+1, hi, pos)
		t.pool = append(t.pool, node{left: prevNode.left, right: newRight, count: prevNode.count + 1})
	}

	return len(t.pool) - 1
}

// RootSum returns the element count stored at roots[version] (spec.md
// §4.7's monotonicity invariant: RootSum(i) == i).
func (t *PersistentTree) RootSum(version int) int64 {
	return int64(t.pool[t.roots[version]].count)
}

// KthSmallest returns the k-th smallest (1-indexed) value among the
// original array's elements at positions [l, r] (0-indexed, inclusive),
// and true, or (0, false) if k is out of range for that window
// (spec.md §4.7 NoSolution case).
func (t *PersistentTree) KthSmallest(l, r, k int) (int64, bool) {
	if l < 0 || r >= len(t.roots)-1 || l > r || k < 1 {
		return 0, false
	}
	left, right := t.roots[l], t.roots[r+1]
	total := t.pool[right].count - t.pool[left].count
	if k > total {
		return 0, false
	}

	lo, hi := 0, len(t.coords)-1
	for lo < hi {
		mid := (lo + hi) / 2
		leftCount := t.pool[t.pool[right].left].count - t.pool[t.pool[left].left].count
		if leftCount >= k {
			right, left = t.pool[right].left, t.pool[left].left
			hi = mid
		} else {
			k -= leftCount
			right, left = t.pool[right].right, t.pool[left].right
			lo = mid + 1
		}
	}

	return t.coords[lo], true
}

package segtree

// Tree is a generic segment tree over a power-of-two-sized array,
// supporting range query, range add, and range assignment with lazy
// propagation where assignment dominates any pending addition
// (spec.md §4.6).
type Tree[T any] struct {
	n, size    int
	query      QueryMonoid[T]
	update     UpdateMonoid[T]
	value      []T
	pending    []T // additive delta, or the assigned constant when assigned[i]
	assigned   []bool
	hasPending []bool
}

// New builds a segment tree over values using the given query and
// update monoids. Positions n..size-1 (size is the next power of two
// >= len(values)) are padded with the query monoid's identity.
func New[T any](values []T, query QueryMonoid[T], update UpdateMonoid[T]) *Tree[T] {
	n := len(values)
	size := 1
	for size < n {
		size <<= 1
	}
	if size == 0 {
		size = 1
	}

	t := &Tree[T]{n: n, size: size, query: query, update: update}
	t.value = make([]T, 2*size)
	t.pending = make([]T, 2*size)
	t.assigned = make([]bool, 2*size)
	t.hasPending = make([]bool, 2*size)
	for i := range t.pending {
		t.pending[i] = update.Identity()
	}
	t.build(1, 0, size-1, values)

	return t
}

func (t *Tree[T]) build(node, l, r int, values []T) {
	if l == r {
		if l < len(values) {
			t.value[node] = values[l]
		} else {
			t.value[node] = t.query.Identity()
		}

		return
	}
	mid := (l + r) / 2
	t.build(2*node, l, mid, values)
	t.build(2*node+1, mid+1, r, values)
	t.value[node] = t.query.Combine(t.value[2*node], t.value[2*node+1])
}

func (t *Tree[T]) applyAssign(node, count int, v T) {
	t.value[node] = t.update.ApplyAssign(v, count)
	t.assigned[node] = true
	t.hasPending[node] = true
	t.pending[node] = v
}

func (t *Tree[T]) applyAdd(node, count int, delta T) {
	if t.assigned[node] {
		// Adding to an already-assigned node just shifts the constant:
		// pending[node] holds the scalar constant here, so a count-1
		// Apply gives the new per-leaf constant.
		newConst := t.update.Apply(t.pending[node], delta, 1)
		t.pending[node] = newConst
		t.value[node] = t.update.ApplyAssign(newConst, count)

		return
	}
	t.value[node] = t.update.Apply(t.value[node], delta, count)
	if t.hasPending[node] {
		t.pending[node] = t.update.Combine(t.pending[node], delta)
	} else {
		t.pending[node] = delta
		t.hasPending[node] = true
	}
}

func (t *Tree[T]) pushDown(node, l, r int) {
	if l == r || (!t.assigned[node] && !t.hasPending[node]) {
		return
	}
	mid := (l + r) / 2
	leftCount, rightCount := mid-l+1, r-mid

	if t.assigned[node] {
		t.applyAssign(2*node, leftCount, t.pending[node])
		t.applyAssign(2*node+1, rightCount, t.pending[node])
	} else {
		t.applyAdd(2*node, leftCount, t.pending[node])
		t.applyAdd(2*node+1, rightCount, t.pending[node])
	}
	t.assigned[node] = false
	t.hasPending[node] = false
	t.pending[node] = t.update.Identity()
}

func (t *Tree[T]) checkRange(l, r int) {
	if l < 0 || r >= t.n || l > r {
		panic("segtree: range out of bounds")
	}
}

// Query returns the query-monoid combination of elements in [l, r].
func (t *Tree[T]) Query(l, r int) T {
	t.checkRange(l, r)

	return t.query2(1, 0, t.size-1, l, r)
}

func (t *Tree[T]) query2(node, l, r, ql, qr int) T {
	if qr < l || r < ql {
		return t.query.Identity()
	}
	if ql <= l && r <= qr {
		return t.value[node]
	}
	t.pushDown(node, l, r)
	mid := (l + r) / 2

	return t.query.Combine(t.query2(2*node, l, mid, ql, qr), t.query2(2*node+1, mid+1, r, ql, qr))
}

// Add applies +v to every element in [l, r].
func (t *Tree[T]) Add(l, r int, v T) {
	t.checkRange(l, r)
	t.add2(1, 0, t.size-1, l, r, v)
}

func (t *Tree[T]) add2(node, l, r, ql, qr int, v T) {
	if qr < l || r < ql {
		return
	}
	if ql <= l && r <= qr {
		t.applyAdd(node, r-l+1, v)

		return
	}
	t.pushDown(node, l, r)
	mid := (l + r) / 2
	t.add2(2*node, l, mid, ql, qr, v)
	t.add2(2*node+1, mid+1, r, ql, qr, v)
	t.value[node] = t.query.Combine(t.value[2*node], t.value[2*node+1])
}

// Set assigns every element in [l, r] to v.
func (t *Tree[T]) Set(l, r int, v T) {
	t.checkRange(l, r)
	t.set2(1, 0, t.size-1, l, r, v)
}

func (t *Tree[T]) set2(node, l, r, ql, qr int, v T) {
	if qr < l || r < ql {
		return
	}
	if ql <= l && r <= qr {
		t.applyAssign(node, r-l+1, v)

		return
	}
	t.pushDown(node, l, r)
	mid := (l + r) / 2
	t.set2(2*node, l, mid, ql, qr, v)
	t.set2(2*node+1, mid+1, r, ql, qr, v)
	t.value[node] = t.query.Combine(t.value[2*node], t.value[2*node+1])
}

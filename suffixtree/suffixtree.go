package suffixtree

// terminator is appended once, on finalization, to force every suffix
// to end at an explicit leaf; chosen smaller than any real input byte.
const terminator = byte(0)

// node is a suffix-tree node. The edge leading into it from its parent
// spans text[start:end+1]; leaves share the tree's leafEnd counter via
// isLeaf so every leaf edge grows automatically as characters arrive.
type node struct {
	children   map[byte]*node
	start      int
	end        int // meaningful only when !isLeaf
	isLeaf     bool
	suffixLink *node
	leafCount  int // populated by Tree.countLeaves after finalization
}

func (n *node) edgeEnd(leafEnd int) int {
	if n.isLeaf {
		return leafEnd
	}

	return n.end
}

func (n *node) edgeLen(leafEnd int) int { return n.edgeEnd(leafEnd) - n.start + 1 }

// Tree is an online-constructed suffix tree over a growing text.
type Tree struct {
	text []byte
	root *node

	activeNode *node
	activeEdge int // index into text of the edge's first character
	activeLen  int
	remainder  int
	leafEnd    int
	lastNew    *node

	finalized bool
}

// New returns an empty suffix tree, ready for Extend.
func New() *Tree {
	root := &node{children: make(map[byte]*node), start: -1, end: -1}
	root.suffixLink = root

	return &Tree{root: root, activeNode: root, leafEnd: -1}
}

// Extend appends s to the tree's text, updating the online construction
// one character at a time. Returns ErrFinalized if the tree has already
// been finalized by Count or SuffixArray.
func (t *Tree) Extend(s string) error {
	if t.finalized {
		return ErrFinalized
	}
	for i := 0; i < len(s); i++ {
		t.extendOne(s[i])
	}

	return nil
}

func (t *Tree) extendOne(c byte) {
	t.text = append(t.text, c)
	pos := len(t.text) - 1
	t.leafEnd = pos
	t.remainder++
	t.lastNew = nil

	for t.remainder > 0 {
		if t.activeLen == 0 {
			t.activeEdge = pos
		}
		edgeChar := t.text[t.activeEdge]
		child, ok := t.activeNode.children[edgeChar]
		if !ok {
			leaf := &node{children: make(map[byte]*node), start: pos, isLeaf: true}
			t.activeNode.children[edgeChar] = leaf
			if t.lastNew != nil {
				t.lastNew.suffixLink = t.activeNode
				t.lastNew = nil
			}
		} else {
			edgeLen := child.edgeLen(t.leafEnd)
			if t.activeLen >= edgeLen {
				t.activeEdge += edgeLen
				t.activeLen -= edgeLen
				t.activeNode = child
				continue
			}
			if t.text[child.start+t.activeLen] == c {
				if t.lastNew != nil && t.activeNode != t.root {
					t.lastNew.suffixLink = t.activeNode
					t.lastNew = nil
				}
				t.activeLen++
				break
			}
			splitEnd := child.start + t.activeLen - 1
			split := &node{children: make(map[byte]*node), start: child.start, end: splitEnd, suffixLink: t.root}
			t.activeNode.children[edgeChar] = split
			leaf := &node{children: make(map[byte]*node), start: pos, isLeaf: true}
			split.children[c] = leaf
			child.start += t.activeLen
			split.children[t.text[child.start]] = child
			if t.lastNew != nil {
				t.lastNew.suffixLink = split
			}
			t.lastNew = split
		}

		t.remainder--
		if t.activeNode == t.root && t.activeLen > 0 {
			t.activeLen--
			t.activeEdge = pos - t.remainder + 1
		} else if t.activeNode != t.root {
			t.activeNode = t.activeNode.suffixLink
		}
	}
}

// walk descends from root matching pattern edge-by-edge; returns the
// node reached and the offset into that node's incoming edge where the
// match ended, or ok=false on mismatch or exhausted input.
func (t *Tree) walk(pattern string) (n *node, edgeOffset int, ok bool) {
	cur := t.root
	i := 0
	for i < len(pattern) {
		child, has := cur.children[pattern[i]]
		if !has {
			return nil, 0, false
		}
		edgeLen := child.edgeLen(t.leafEnd)
		j := 0
		for j < edgeLen && i < len(pattern) {
			if t.text[child.start+j] != pattern[i] {
				return nil, 0, false
			}
			i++
			j++
		}
		if j == edgeLen {
			cur = child
		} else {
			return child, j, true
		}
	}

	return cur, 0, true
}

// Contains reports whether pattern occurs as a substring of the text
// extended so far. Works whether or not the tree has been finalized.
func (t *Tree) Contains(pattern string) bool {
	if pattern == "" {
		return true
	}
	_, _, ok := t.walk(pattern)

	return ok
}

// finalize appends the terminator (once) and runs the post-order DFS
// that populates every node's leafCount (spec.md §4.4).
func (t *Tree) finalize() {
	if t.finalized {
		return
	}
	t.extendOne(terminator)
	t.finalized = true
	countLeaves(t.root)
}

func countLeaves(n *node) int {
	if len(n.children) == 0 {
		n.leafCount = 1

		return 1
	}
	total := 0
	for _, c := range n.children {
		total += countLeaves(c)
	}
	n.leafCount = total

	return total
}

// Count returns the number of occurrences of pattern in the text,
// finalizing the tree on first call. An empty pattern occurs once per
// suffix, i.e. len(text).
func (t *Tree) Count(pattern string) int {
	t.finalize()
	if pattern == "" {
		return len(t.text) - 1 // exclude the terminator's own empty suffix
	}
	n, _, ok := t.walk(pattern)
	if !ok {
		return 0
	}

	return n.leafCount
}

// SuffixArray extracts the sorted suffix array of the text by DFS,
// visiting children in character order (spec.md §4.4), finalizing the
// tree on first call.
func (t *Tree) SuffixArray() []int {
	t.finalize()
	n := len(t.text) // includes the terminator
	var sa []int
	var dfs func(nd *node, depth int)
	dfs = func(nd *node, depth int) {
		if len(nd.children) == 0 {
			sa = append(sa, n-depth)

			return
		}
		chars := make([]byte, 0, len(nd.children))
		for ch := range nd.children {
			chars = append(chars, ch)
		}
		for i := 1; i < len(chars); i++ {
			for j := i; j > 0 && chars[j-1] > chars[j]; j-- {
				chars[j-1], chars[j] = chars[j], chars[j-1]
			}
		}
		for _, ch := range chars {
			child := nd.children[ch]
			dfs(child, depth+child.edgeLen(t.leafEnd))
		}
	}
	dfs(t.root, 0)

	out := make([]int, 0, len(sa))
	for _, p := range sa {
		if p < n-1 { // drop the terminator's own suffix
			out = append(out, p)
		}
	}

	return out
}

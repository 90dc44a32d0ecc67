// Package suffixtree implements Ukkonen's online suffix-tree
// construction (spec.md §4.4): characters are fed one at a time via
// Extend, maintaining an active point (node, length-on-edge) so the
// tree is always the correct suffix tree of the text seen so far.
//
// Leaf edges carry no fixed end; they track a tree-wide "current end"
// so every existing leaf automatically grows as new characters arrive,
// matching the classic Ukkonen trick described in spec.md's data model.
//
// Count and SuffixArray require every suffix to end at an explicit
// leaf, which only holds once a terminator smaller than every real
// character has been appended; both methods finalize the tree on first
// use (appending the terminator once) and the tree becomes read-only
// afterward. Contains never requires finalization, so the online
// membership tester (spec.md §6) can interleave Extend and Contains
// freely.
package suffixtree

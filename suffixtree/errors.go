package suffixtree

import "errors"

// ErrFinalized indicates Extend was called after the tree was finalized
// by a prior Count or SuffixArray call.
var ErrFinalized = errors.New("suffixtree: tree is finalized, no further Extend allowed")

package suffixarray

import "strings"

// Search binary-searches for pattern among the suffixes, returning the
// starting position of a matching suffix and true, or (0, false) if
// pattern does not occur in the original text (spec.md §4.3, O(|p|
// log n)). When pattern occurs more than once, an arbitrary matching
// position is returned — the spec only guarantees existence.
func (sa *SuffixArray) Search(pattern string) (int, bool) {
	if pattern == "" {
		return 0, true
	}
	lo, hi := 0, len(sa.suffixes)
	for lo < hi {
		mid := (lo + hi) / 2
		if sa.suffixAt(mid) < pattern {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == len(sa.suffixes) {
		return 0, false
	}
	if strings.HasPrefix(sa.suffixAt(lo), pattern) {
		return sa.suffixes[lo], true
	}

	return 0, false
}

// suffixAt returns the suffix of the original text starting at
// suffixes[i], truncated to at most len(pattern)-comparable length by
// the caller's use of strings.Compare semantics (full suffix is fine:
// Go's string comparison is prefix-consistent).
func (sa *SuffixArray) suffixAt(i int) string {
	return sa.text[sa.suffixes[i]:]
}

// DistinctSubstrings returns the number of distinct substrings of the
// original text, computed as n*(n+1)/2 - sum(LCP) (spec.md §4.3/§8):
// each of the n suffixes contributes (its length) new substrings over
// an empty comparison baseline, and sum(LCP) removes the prefixes it
// shares with its predecessor in suffix-array order.
func (sa *SuffixArray) DistinctSubstrings() int {
	n := len(sa.text)
	total := n * (n + 1) / 2
	for _, l := range sa.lcp {
		total -= l
	}

	return total
}

// DistinctSubstringsAlt computes the same quantity via the alternative
// formula sum(n - suffixes[i] - lcp[i-1]) for i >= 1 plus the first
// suffix's full contribution (n - suffixes[0]); spec.md §8 requires both
// formulas to agree, so this exists primarily to cross-check New's
// result in tests.
func (sa *SuffixArray) DistinctSubstringsAlt() int {
	n := len(sa.text)
	if n == 0 {
		return 0
	}
	total := n - sa.suffixes[0]
	for i := 1; i < len(sa.suffixes); i++ {
		total += n - sa.suffixes[i] - sa.lcp[i-1]
	}

	return total
}

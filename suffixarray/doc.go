// Package suffixarray builds a suffix array by prefix-doubling with
// counting sort, derives the neighbour-LCP array via Kasai's algorithm,
// and answers substring-location and distinct-substring-count queries
// (spec.md §4.3).
//
// A sentinel byte smaller than every input byte is appended internally
// so every suffix is directly comparable and ends uniquely; Suffixes and
// LCP are both reported with the sentinel's own entry removed.
package suffixarray

package suffixarray

// sentinel is appended to the input before construction; it must sort
// strictly before every byte that can appear in real input (we require
// callers to pass printable text, so byte 0 always qualifies).
const sentinel = byte(0)

// SuffixArray holds the sorted suffix order and neighbour-LCP array of
// a fixed input string (spec.md §3, §4.3).
type SuffixArray struct {
	text      string
	suffixes  []int // suffixes[i] = start index of the i-th suffix in sorted order
	lcp       []int // lcp[i] = LCP(suffixes[i], suffixes[i+1]), length n-1
	rankOfPos []int // inverse permutation: rankOfPos[suffixes[i]] = i
}

// New builds the suffix array and Kasai LCP array of s.
func New(s string) *SuffixArray {
	n := len(s)
	withSentinel := make([]byte, n+1)
	copy(withSentinel, s)
	withSentinel[n] = sentinel

	order := sortCyclicShifts(withSentinel)
	// order[0] is always the sentinel suffix (the lexicographically
	// smallest); drop it to get the n real suffixes.
	suffixes := order[1:]

	rankOfPos := make([]int, n)
	for i, p := range suffixes {
		rankOfPos[p] = i
	}

	return &SuffixArray{
		text:      s,
		suffixes:  suffixes,
		lcp:       kasai(s, suffixes, rankOfPos),
		rankOfPos: rankOfPos,
	}
}

// Suffixes returns the 0-indexed starting positions of every suffix of
// the original string, in sorted order.
func (sa *SuffixArray) Suffixes() []int { return sa.suffixes }

// LCP returns the neighbour-LCP array: LCP()[i] is the length of the
// longest common prefix of Suffixes()[i] and Suffixes()[i+1].
func (sa *SuffixArray) LCP() []int { return sa.lcp }

// sortCyclicShifts sorts the n+1 cyclic rotations of s (s already
// includes the sentinel) via prefix doubling with counting sort at
// every stage (spec.md §4.3).
func sortCyclicShifts(s []byte) []int {
	n := len(s)
	const alphabet = 256

	order := make([]int, n)
	class := make([]int, n)
	cnt := make([]int, alphabet)
	for _, b := range s {
		cnt[b]++
	}
	for i := 1; i < alphabet; i++ {
		cnt[i] += cnt[i-1]
	}
	for i := n - 1; i >= 0; i-- {
		cnt[s[i]]--
		order[cnt[s[i]]] = i
	}
	class[order[0]] = 0
	classes := 1
	for i := 1; i < n; i++ {
		if s[order[i]] != s[order[i-1]] {
			classes++
		}
		class[order[i]] = classes - 1
	}

	newOrder := make([]int, n)
	newClass := make([]int, n)
	for length := 1; length < n; length <<= 1 {
		for i := 0; i < n; i++ {
			shifted := order[i] - length
			if shifted < 0 {
				shifted += n
			}
			newOrder[i] = shifted
		}

		bucketCnt := make([]int, classes)
		for i := 0; i < n; i++ {
			bucketCnt[class[newOrder[i]]]++
		}
		for i := 1; i < classes; i++ {
			bucketCnt[i] += bucketCnt[i-1]
		}
		for i := n - 1; i >= 0; i-- {
			c := class[newOrder[i]]
			bucketCnt[c]--
			order[bucketCnt[c]] = newOrder[i]
		}

		newClass[order[0]] = 0
		classes = 1
		for i := 1; i < n; i++ {
			curFirst, curSecond := class[order[i]], class[(order[i]+length)%n]
			prevFirst, prevSecond := class[order[i-1]], class[(order[i-1]+length)%n]
			if curFirst != prevFirst || curSecond != prevSecond {
				classes++
			}
			newClass[order[i]] = classes - 1
		}
		copy(class, newClass)

		if classes == n {
			break
		}
	}

	return order
}

// kasai computes the neighbour-LCP array in O(n) given the suffix array
// and its inverse permutation (spec.md §4.3: k decreases by at most 1
// between consecutive iterations).
func kasai(s string, suffixes, rankOfPos []int) []int {
	n := len(s)
	if n == 0 {
		return nil
	}
	lcp := make([]int, n-1)
	k := 0
	for i := 0; i < n; i++ {
		if rankOfPos[i] == n-1 {
			k = 0
			continue
		}
		j := suffixes[rankOfPos[i]+1]
		for i+k < n && j+k < n && s[i+k] == s[j+k] {
			k++
		}
		lcp[rankOfPos[i]] = k
		if k > 0 {
			k--
		}
	}

	return lcp
}

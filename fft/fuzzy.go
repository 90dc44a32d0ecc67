package fft

// FuzzyMatch finds every alignment of pattern against text in which each
// pattern character has the same letter in text no more than k
// positions away from where it is aligned, using the FFT-accelerated
// technique of spec.md §4.5: for every alphabet letter sigma, build a
// binary text vector with 1 at any position within distance k of an
// occurrence of sigma, and a binary pattern vector with 1 at sigma's
// exact positions; summing the cross-correlation of these vectors over
// every letter gives, at each alignment, the number of pattern
// characters that land within k of a matching letter in text. An
// alignment matches when that sum equals len(pattern).
//
// Returns the 0-indexed starting offsets in text of every valid
// alignment, in increasing order. An empty pattern or a pattern longer
// than text yields no matches.
func FuzzyMatch(text, pattern string, k int) []int {
	n, m := len(text), len(pattern)
	if m == 0 || m > n {
		return nil
	}

	alphabet := make(map[byte]struct{})
	for i := 0; i < n; i++ {
		alphabet[text[i]] = struct{}{}
	}
	for i := 0; i < m; i++ {
		alphabet[pattern[i]] = struct{}{}
	}

	totals := make([]float64, n-m+1)
	e := NewEngine()
	for sigma := range alphabet {
		textVec := make([]float64, n)
		for i := 0; i < n; i++ {
			if text[i] == sigma {
				lo := i - k
				if lo < 0 {
					lo = 0
				}
				hi := i + k
				if hi > n-1 {
					hi = n - 1
				}
				for j := lo; j <= hi; j++ {
					textVec[j] = 1
				}
			}
		}
		patVec := make([]float64, m)
		for i := 0; i < m; i++ {
			if pattern[i] == sigma {
				patVec[i] = 1
			}
		}

		corr := e.CyclicCorrelate(textVec, patVec)
		for s := range totals {
			totals[s] += corr[s]
		}
	}

	var matches []int
	for s, total := range totals {
		if int(total+0.5) == m {
			matches = append(matches, s)
		}
	}

	return matches
}

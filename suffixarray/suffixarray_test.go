package suffixarray_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlov/algokit/suffixarray"
)

func TestDistinctSubstringsWorkedExamples(t *testing.T) {
	cases := map[string]int{
		"ababb":           11,
		"abacabadabacaba": 85,
		"aaaaa":           5,
	}
	for s, want := range cases {
		sa := suffixarray.New(s)
		require.Equal(t, want, sa.DistinctSubstrings(), "string=%q", s)
		require.Equal(t, want, sa.DistinctSubstringsAlt(), "string=%q", s)
	}
}

func TestSuffixArraySortedOrder(t *testing.T) {
	sa := suffixarray.New("banana")
	suffixes := sa.Suffixes()
	require.Len(t, suffixes, 6)
	// "banana" suffixes sorted: a(5) ana(3) anana(1) banana(0) na(4) nana(2)
	require.Equal(t, []int{5, 3, 1, 0, 4, 2}, suffixes)
}

func TestLCPSumIdentity(t *testing.T) {
	sa := suffixarray.New("mississippi")
	n := len(sa.Suffixes())
	sum := 0
	for _, v := range sa.LCP() {
		sum += v
	}
	require.Equal(t, n*(n+1)/2-sum, sa.DistinctSubstrings())
}

func TestSearchFound(t *testing.T) {
	sa := suffixarray.New("banana")
	pos, ok := sa.Search("ana")
	require.True(t, ok)
	require.Contains(t, []int{1, 3}, pos)
}

func TestSearchNotFound(t *testing.T) {
	sa := suffixarray.New("banana")
	_, ok := sa.Search("xyz")
	require.False(t, ok)
}

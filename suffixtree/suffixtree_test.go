package suffixtree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlov/algokit/suffixarray"
	"github.com/arlov/algokit/suffixtree"
)

func TestContainsBasic(t *testing.T) {
	tr := suffixtree.New()
	require.NoError(t, tr.Extend("banana"))
	require.True(t, tr.Contains("ana"))
	require.True(t, tr.Contains("ban"))
	require.True(t, tr.Contains(""))
	require.False(t, tr.Contains("xyz"))
}

func TestOnlineAppend(t *testing.T) {
	tr := suffixtree.New()
	require.NoError(t, tr.Extend("abc"))
	require.False(t, tr.Contains("cde"))
	require.NoError(t, tr.Extend("de"))
	require.True(t, tr.Contains("cde"))
}

func TestCountOccurrences(t *testing.T) {
	tr := suffixtree.New()
	require.NoError(t, tr.Extend("abababa"))
	require.Equal(t, 3, tr.Count("aba"))
	require.Equal(t, 1, tr.Count("bababa"))
	require.Equal(t, 0, tr.Count("xyz"))
}

func TestExtendAfterFinalizeFails(t *testing.T) {
	tr := suffixtree.New()
	require.NoError(t, tr.Extend("abc"))
	_ = tr.Count("a")
	require.ErrorIs(t, tr.Extend("d"), suffixtree.ErrFinalized)
}

func TestSuffixArrayRoundTrip(t *testing.T) {
	for _, s := range []string{"banana", "mississippi", "abacabadabacaba", "aaaaa"} {
		sa := suffixarray.New(s)
		tr := suffixtree.New()
		require.NoError(t, tr.Extend(s))
		fromTree := tr.SuffixArray()
		require.Equal(t, sa.Suffixes(), fromTree, "string=%q", s)
	}
}

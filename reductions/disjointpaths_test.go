package reductions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlov/algokit/flow"
	"github.com/arlov/algokit/reductions"
)

func TestTwoDisjointPathsFound(t *testing.T) {
	// Two independent chains from 0 to 3: 0-1-3 and 0-2-3.
	n := flow.NewNetwork(4)
	_, _ = n.AddDirectedEdge(0, 1, 1, 0)
	_, _ = n.AddDirectedEdge(1, 3, 1, 0)
	_, _ = n.AddDirectedEdge(0, 2, 1, 0)
	_, _ = n.AddDirectedEdge(2, 3, 1, 0)

	paths, ok, err := reductions.TwoDisjointPaths(n, 0, 3)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, paths, 2)
	for _, p := range paths {
		require.Equal(t, 0, p[0])
		require.Equal(t, 3, p[len(p)-1])
	}
}

func TestTwoDisjointPathsNotFound(t *testing.T) {
	// Single bottleneck edge 1->2 forces any path through it, so only
	// one edge-disjoint path exists from 0 to 3.
	n := flow.NewNetwork(4)
	_, _ = n.AddDirectedEdge(0, 1, 2, 0)
	_, _ = n.AddDirectedEdge(1, 2, 1, 0)
	_, _ = n.AddDirectedEdge(2, 3, 2, 0)

	paths, ok, err := reductions.TwoDisjointPaths(n, 0, 3)
	require.NoError(t, err)
	require.False(t, ok)
	require.Less(t, len(paths), 2)
}

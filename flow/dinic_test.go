package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlov/algokit/flow"
)

func TestMaxFlowDinicClassicExample(t *testing.T) {
	// 0=S,1,2,3=T; edges (0,1,3) (0,2,2) (1,2,5) (1,3,2) (2,3,3)
	n := flow.NewNetwork(4)
	n.Source, n.Sink = 0, 3
	_, err := n.AddDirectedEdge(0, 1, 3, 0)
	require.NoError(t, err)
	_, err = n.AddDirectedEdge(0, 2, 2, 0)
	require.NoError(t, err)
	_, err = n.AddDirectedEdge(1, 2, 5, 0)
	require.NoError(t, err)
	_, err = n.AddDirectedEdge(1, 3, 2, 0)
	require.NoError(t, err)
	_, err = n.AddDirectedEdge(2, 3, 3, 0)
	require.NoError(t, err)

	got, err := n.MaxFlowDinic(context.Background(), flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, int64(5), got)
	assertFlowConservation(t, n)
}

func TestMaxFlowDinicUndirectedMinCutEight(t *testing.T) {
	// spec.md worked example: nodes 1,2,3 (here 0,1,2), source=0,sink=1.
	// Undirected edges (1,2,3) (1,3,5) (3,2,7); max-flow = min-cut = 8,
	// with the cut isolating node 1 alone: crossing edges {1,2} and {1,3}.
	n := flow.NewNetwork(3)
	n.Source, n.Sink = 0, 1
	e12, err := n.AddUndirectedEdge(0, 1, 3)
	require.NoError(t, err)
	e13, err := n.AddUndirectedEdge(0, 2, 5)
	require.NoError(t, err)
	_, err = n.AddUndirectedEdge(2, 1, 7)
	require.NoError(t, err)
	require.NotEqual(t, -1, e12)
	require.NotEqual(t, -1, e13)

	got, err := n.MaxFlowDinic(context.Background(), flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, int64(8), got)
	assertFlowConservation(t, n)
}

func TestMaxFlowDinicNoPath(t *testing.T) {
	n := flow.NewNetwork(2)
	n.Source, n.Sink = 0, 1
	got, err := n.MaxFlowDinic(context.Background(), flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, int64(0), got)
}

func TestMaxFlowDinicContextCancelled(t *testing.T) {
	n := flow.NewNetwork(2)
	n.Source, n.Sink = 0, 1
	_, err := n.AddDirectedEdge(0, 1, 10, 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = n.MaxFlowDinic(ctx, flow.DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
}

// assertFlowConservation checks that, for every node other than
// Source/Sink, total flow in equals total flow out (spec.md §8).
func assertFlowConservation(t *testing.T, n *flow.Network) {
	t.Helper()
	net := make([]int64, n.NodeCount())
	for u := 0; u < n.NodeCount(); u++ {
		for _, e := range n.Adjacency(u) {
			if e.Flow > 0 {
				net[u] -= e.Flow
				net[e.To] += e.Flow
			}
		}
	}
	for v := 0; v < n.NodeCount(); v++ {
		if v == n.Source || v == n.Sink {
			continue
		}
		require.Equal(t, int64(0), net[v], "node %d violates flow conservation", v)
	}
}

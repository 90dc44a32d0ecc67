package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlov/algokit/flow"
)

func TestKargerMinCutSpecExample(t *testing.T) {
	// Same triangle as the Dinic min-cut example: min-cut = 8, isolating
	// node 0 via edges {0-1 (cap3), 0-2 (cap5)}.
	n := flow.NewNetwork(3)
	_, err := n.AddUndirectedEdge(0, 1, 3)
	require.NoError(t, err)
	_, err = n.AddUndirectedEdge(0, 2, 5)
	require.NoError(t, err)
	_, err = n.AddUndirectedEdge(2, 1, 7)
	require.NoError(t, err)

	value, edges, err := flow.KargerMinCut(context.Background(), n, 64)
	require.NoError(t, err)
	require.Equal(t, int64(8), value)
	require.Len(t, edges, 2)
}

func TestKargerMinCutSingleEdge(t *testing.T) {
	n := flow.NewNetwork(2)
	_, err := n.AddUndirectedEdge(0, 1, 7)
	require.NoError(t, err)

	value, edges, err := flow.KargerMinCut(context.Background(), n, 8)
	require.NoError(t, err)
	require.Equal(t, int64(7), value)
	require.Equal(t, []int{1}, edges)
}

func TestKargerMinCutNoEdges(t *testing.T) {
	n := flow.NewNetwork(3)
	value, edges, err := flow.KargerMinCut(context.Background(), n, 4)
	require.NoError(t, err)
	require.Equal(t, int64(0), value)
	require.Nil(t, edges)
}

func TestKargerMinCutContextCancelled(t *testing.T) {
	n := flow.NewNetwork(3)
	_, _ = n.AddUndirectedEdge(0, 1, 3)
	_, _ = n.AddUndirectedEdge(1, 2, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := flow.KargerMinCut(ctx, n, 100)
	require.ErrorIs(t, err, context.Canceled)
}

package reductions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlov/algokit/flow"
	"github.com/arlov/algokit/reductions"
)

func buildEvacuationNetwork() *flow.Network {
	n := flow.NewNetwork(4)
	n.Source, n.Sink = 0, 3
	_, _ = n.AddDirectedEdge(0, 1, 1, 2)
	_, _ = n.AddDirectedEdge(0, 2, 2, 2)
	_, _ = n.AddDirectedEdge(2, 1, 1, 1)
	_, _ = n.AddDirectedEdge(1, 3, 2, 1)
	_, _ = n.AddDirectedEdge(2, 3, 2, 3)

	return n
}

func TestCheckEvacuationOptimalAcceptsTrueOptimum(t *testing.T) {
	n := buildEvacuationNetwork()
	// The optimal plan (spec.md worked example, flow=3 cost=12):
	// edge1 (0->1): 1, edge2 (0->2): 2, edge3 (2->1): 1, edge4 (1->3): 2, edge5 (2->3): 1.
	plan := []int64{1, 2, 1, 2, 1}
	optimal, improved, err := reductions.CheckEvacuationOptimal(n, plan)
	require.NoError(t, err)
	require.True(t, optimal)
	require.Equal(t, int64(0), improved)
}

func TestCheckEvacuationOptimalRejectsSuboptimalPlan(t *testing.T) {
	n := buildEvacuationNetwork()
	// A feasible but costlier plan: route everything through edge5 (cost3)
	// instead of the cheaper 2->1->3 detour.
	plan := []int64{1, 2, 0, 1, 2}
	optimal, improved, err := reductions.CheckEvacuationOptimal(n, plan)
	require.NoError(t, err)
	require.False(t, optimal)
	require.Greater(t, improved, int64(0))
}

func TestCheckEvacuationOptimalRejectsInfeasiblePlan(t *testing.T) {
	n := buildEvacuationNetwork()
	plan := []int64{5, 2, 1, 2, 1} // edge1 capacity is only 1
	_, _, err := reductions.CheckEvacuationOptimal(n, plan)
	require.ErrorIs(t, err, reductions.ErrPlanInfeasible)
}

func TestCheckEvacuationOptimalRejectsWrongLength(t *testing.T) {
	n := buildEvacuationNetwork()
	_, _, err := reductions.CheckEvacuationOptimal(n, []int64{1, 2})
	require.ErrorIs(t, err, reductions.ErrPlanLengthMismatch)
}

package reductions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlov/algokit/reductions"
)

func TestAssignmentClassicThreeByThree(t *testing.T) {
	cost := [][]int64{
		{9, 2, 7},
		{6, 4, 3},
		{5, 8, 1},
	}
	total, assign, err := reductions.Assignment(cost)
	require.NoError(t, err)
	require.Equal(t, int64(9), total) // worker0->task1(2), worker1->task0(6), worker2->task2(1)
	require.Equal(t, []int{1, 0, 2}, assign)

	seen := make(map[int]bool)
	for i, j := range assign {
		require.False(t, seen[j], "task %d assigned twice", j)
		seen[j] = true
		require.GreaterOrEqual(t, j, 0)
		_ = cost[i][j]
	}
	require.Len(t, seen, 3)
}

func TestAssignmentDimensionMismatch(t *testing.T) {
	_, _, err := reductions.Assignment([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, reductions.ErrDimensionMismatch)
}

func TestAssignmentEmpty(t *testing.T) {
	total, assign, err := reductions.Assignment(nil)
	require.NoError(t, err)
	require.Equal(t, int64(0), total)
	require.Nil(t, assign)
}

package persistseg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlov/algokit/persistseg"
)

func TestKthSmallestWorkedExample(t *testing.T) {
	// array [1,5,2,6,3,7,4], spec ranges are 1-indexed: [2..5] -> 0-indexed [1..4]
	pt := persistseg.New([]int64{1, 5, 2, 6, 3, 7, 4})

	v, ok := pt.KthSmallest(1, 4, 3)
	require.True(t, ok)
	require.Equal(t, int64(5), v)

	v, ok = pt.KthSmallest(3, 3, 1)
	require.True(t, ok)
	require.Equal(t, int64(6), v)
}

func TestRootSumMonotonicity(t *testing.T) {
	values := []int64{9, 1, 4, 1, 5, 9, 2, 6}
	pt := persistseg.New(values)
	for i := 0; i <= len(values); i++ {
		require.Equal(t, int64(i), pt.RootSum(i))
	}
}

func TestKthSmallestOutOfRange(t *testing.T) {
	pt := persistseg.New([]int64{3, 1, 2})
	_, ok := pt.KthSmallest(0, 2, 4)
	require.False(t, ok)
}

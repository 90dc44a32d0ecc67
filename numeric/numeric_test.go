package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlov/algokit/numeric"
)

func TestFloatEqual(t *testing.T) {
	require.True(t, numeric.FloatEqual(1.0, 1.0+1e-9, numeric.DefaultEpsilon))
	require.False(t, numeric.FloatEqual(1.0, 1.1, numeric.DefaultEpsilon))
}

func TestFloatCompare(t *testing.T) {
	require.Equal(t, 0, numeric.FloatCompare(2.0, 2.0000001, numeric.DefaultEpsilon))
	require.Equal(t, -1, numeric.FloatCompare(1.0, 2.0, numeric.DefaultEpsilon))
	require.Equal(t, 1, numeric.FloatCompare(2.0, 1.0, numeric.DefaultEpsilon))
}

func TestModularArithmetic(t *testing.T) {
	m := numeric.NewModular(1_000_000_007)
	require.Equal(t, int64(3), m.Add(1_000_000_006, 4))
	require.Equal(t, int64(1_000_000_006), m.Sub(0, 1))
	require.Equal(t, int64(6), m.Mul(2, 3))
	require.Equal(t, int64(8), m.Pow(2, 3))
}

func TestPairLess(t *testing.T) {
	a := numeric.Pair[int]{Key: 1, Tiebreak: 2}
	b := numeric.Pair[int]{Key: 1, Tiebreak: 3}
	require.True(t, numeric.PairLess(a, b))
	require.False(t, numeric.PairLess(b, a))
}

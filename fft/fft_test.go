package fft_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlov/algokit/fft"
)

func TestConvolveSmall(t *testing.T) {
	e := fft.NewEngine()
	// (1 + 2x) * (3 + 4x) = 3 + 10x + 8x^2
	got := e.Convolve([]float64{1, 2}, []float64{3, 4})
	require.InDeltaSlice(t, []float64{3, 10, 8}, got, 1e-6)
}

func TestConvolveIdentity(t *testing.T) {
	e := fft.NewEngine()
	got := e.Convolve([]float64{5, 6, 7}, []float64{1})
	require.InDeltaSlice(t, []float64{5, 6, 7}, got, 1e-6)
}

func TestFuzzyMatchExample(t *testing.T) {
	matches := fft.FuzzyMatch("AGCAATTCAT", "ACAT", 1)
	require.Len(t, matches, 3)
}

func TestFuzzyMatchExactSubstring(t *testing.T) {
	matches := fft.FuzzyMatch("abcabc", "bc", 0)
	require.Equal(t, []int{1, 4}, matches)
}

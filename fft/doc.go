// Package fft implements an iterative Cooley-Tukey fast Fourier
// transform over complex128 samples, plus the derived operations this
// module needs it for: polynomial convolution, cyclic cross-correlation,
// and FFT-accelerated fuzzy substring search with a per-character
// position tolerance.
//
// An Engine caches its bit-reversal permutation per transform size so
// repeated transforms of the same size (as convolution and correlation
// both require, one per operand) do not recompute it — memoisation
// belongs to the engine instance, not to a process-wide cache.
package fft

package fft

import "math"

// Engine runs iterative Cooley-Tukey transforms, caching the
// bit-reversal permutation for the most recently used size.
type Engine struct {
	size int
	rev  []int
}

// NewEngine returns a ready-to-use transform engine.
func NewEngine() *Engine { return &Engine{} }

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

func (e *Engine) bitReversal(n int) []int {
	if e.size == n && e.rev != nil {
		return e.rev
	}
	rev := make([]int, n)
	for i := 1; i < n; i++ {
		rev[i] = rev[i>>1] >> 1
		if i&1 == 1 {
			rev[i] |= n >> 1
		}
	}
	e.size, e.rev = n, rev

	return rev
}

// Transform performs an in-place iterative Cooley-Tukey FFT (or inverse
// if invert is true) on a, whose length must already be a power of two.
func (e *Engine) Transform(a []complex128, invert bool) {
	n := len(a)
	if n <= 1 {
		return
	}
	rev := e.bitReversal(n)
	for i, r := range rev {
		if i < r {
			a[i], a[r] = a[r], a[i]
		}
	}

	for m := 2; m <= n; m <<= 1 {
		ang := 2 * math.Pi / float64(m)
		if invert {
			ang = -ang
		}
		wm := complex(math.Cos(ang), math.Sin(ang))
		for start := 0; start < n; start += m {
			w := complex(1, 0)
			half := m / 2
			for j := 0; j < half; j++ {
				u := a[start+j]
				v := a[start+j+half] * w
				a[start+j] = u + v
				a[start+j+half] = u - v
				w *= wm
			}
		}
	}

	if invert {
		for i := range a {
			a[i] /= complex(float64(n), 0)
		}
	}
}

// padded returns a complex slice of length n (a power of two, >= size),
// containing the real values of src, zero-padded.
func padded(src []float64, n int) []complex128 {
	out := make([]complex128, n)
	for i, v := range src {
		out[i] = complex(v, 0)
	}

	return out
}

// Convolve computes the linear convolution of a and b by zero-padding to
// the next power of two >= len(a)+len(b)-1, transforming, multiplying
// pointwise, inverse-transforming, and rounding to the nearest integer
// (spec.md §4.5 — convolution coefficients here are always integral).
func (e *Engine) Convolve(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	resultLen := len(a) + len(b) - 1
	n := nextPow2(resultLen)

	fa := padded(a, n)
	fb := padded(b, n)
	e.Transform(fa, false)
	e.Transform(fb, false)
	for i := range fa {
		fa[i] *= fb[i]
	}
	e.Transform(fa, true)

	out := make([]float64, resultLen)
	for i := 0; i < resultLen; i++ {
		out[i] = math.Round(real(fa[i]))
	}

	return out
}

// CyclicCorrelate computes, for every alignment s of pattern against a
// window of text starting at s, the cross-correlation
// sum_j text[s+j]*pattern[j] via reverse(pattern) convolved with
// text++text sliced to len(text) entries (spec.md §4.5).
func (e *Engine) CyclicCorrelate(text, pattern []float64) []float64 {
	if len(text) == 0 || len(pattern) == 0 {
		return nil
	}
	revPattern := make([]float64, len(pattern))
	for i, v := range pattern {
		revPattern[len(pattern)-1-i] = v
	}
	doubled := make([]float64, 0, 2*len(text))
	doubled = append(doubled, text...)
	doubled = append(doubled, text...)

	conv := e.Convolve(doubled, revPattern)
	// conv[k] = sum_j doubled[k-j]*revPattern[j], peaking at
	// k = s + len(pattern) - 1 for alignment s, j over revPattern.
	out := make([]float64, len(text))
	offset := len(pattern) - 1
	for s := 0; s < len(text); s++ {
		out[s] = conv[s+offset]
	}

	return out
}

// RealPairTransform transforms two real signals x and y simultaneously
// by packing them into one complex signal z = x + i*y, transforming
// once, and unpacking via conjugate symmetry (spec.md §4.5).
func (e *Engine) RealPairTransform(x, y []float64) (X, Y []complex128) {
	n := len(x)
	z := make([]complex128, n)
	for i := range z {
		z[i] = complex(x[i], y[i])
	}
	e.Transform(z, false)

	X = make([]complex128, n)
	Y = make([]complex128, n)
	for k := 0; k < n; k++ {
		nk := (n - k) % n
		zk, znk := z[k], z[nk]
		X[k] = (zk + cmplxConj(znk)) / 2
		Y[k] = -1i * (zk - cmplxConj(znk)) / 2
	}

	return X, Y
}

func cmplxConj(z complex128) complex128 { return complex(real(z), -imag(z)) }

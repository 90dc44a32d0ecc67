package numeric

// Modular performs int64 arithmetic reduced modulo a fixed positive
// modulus: addition, subtraction, multiplication, and exponentiation,
// each normalised into [0, mod).
type Modular struct {
	mod int64
}

// NewModular builds a Modular reducer for the given positive modulus.
// A non-positive modulus is an InvariantViolation: callers control it
// statically, so this panics rather than returning an error.
func NewModular(mod int64) Modular {
	if mod <= 0 {
		panic("numeric: modulus must be positive")
	}

	return Modular{mod: mod}
}

func (m Modular) norm(a int64) int64 {
	a %= m.mod
	if a < 0 {
		a += m.mod
	}

	return a
}

// Add returns (a+b) mod m.
func (m Modular) Add(a, b int64) int64 { return m.norm(m.norm(a) + m.norm(b)) }

// Sub returns (a-b) mod m.
func (m Modular) Sub(a, b int64) int64 { return m.norm(m.norm(a) - m.norm(b)) }

// Mul returns (a*b) mod m.
func (m Modular) Mul(a, b int64) int64 { return m.norm(m.norm(a) * m.norm(b)) }

// Pow returns (base^exp) mod m via binary exponentiation, exp >= 0.
func (m Modular) Pow(base, exp int64) int64 {
	result := int64(1) % m.mod
	base = m.norm(base)
	for exp > 0 {
		if exp&1 == 1 {
			result = m.Mul(result, base)
		}
		base = m.Mul(base, base)
		exp >>= 1
	}

	return result
}

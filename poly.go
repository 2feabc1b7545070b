package ffrs

// ring is the minimal field interface the polynomial kernel below needs.
// *Field256 and *Field65537 both satisfy it (over byte and uint32
// respectively), so every function here is written once and reused by both
// RS256 and the NTT-RS encoder, instead of the mixin/CRTP-per-field
// composition the originating C++ library uses.
type ring[T comparable] interface {
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Inv(a T) T
	Zero() T
	One() T
}

func (f *Field256) Zero() byte { return 0 }
func (f *Field256) One() byte  { return 1 }

func (f *Field65537) Zero() uint32 { return 0 }
func (f *Field65537) One() uint32  { return 1 }

// PolyMul computes the schoolbook product of a and b, length len(a)+len(b)-1.
func PolyMul[T comparable, F ring[T]](f F, a, b []T) []T {
	r := make([]T, len(a)+len(b)-1)
	for i, av := range a {
		if av == f.Zero() {
			continue
		}
		for j, bv := range b {
			r[i+j] = f.Add(r[i+j], f.Mul(av, bv))
		}
	}
	return r
}

// polyAlign is the shared right-alignment helper used by PolyAdd/PolySub:
// operands of different lengths are treated as having implicit leading
// (high-degree) zero coefficients, mirroring the two-overload add/sub pairs
// in the originating polynomial kernel.
func polyAlign[T comparable](a, b []T) (n, oa, ob int) {
	n = len(a)
	if len(b) > n {
		n = len(b)
	}
	return n, n - len(a), n - len(b)
}

func PolyAdd[T comparable, F ring[T]](f F, a, b []T) []T {
	n, oa, ob := polyAlign(a, b)
	r := make([]T, n)
	var va, vb T
	for i := 0; i < n; i++ {
		if i >= oa {
			va = a[i-oa]
		} else {
			va = f.Zero()
		}
		if i >= ob {
			vb = b[i-ob]
		} else {
			vb = f.Zero()
		}
		r[i] = f.Add(va, vb)
	}
	return r
}

func PolySub[T comparable, F ring[T]](f F, a, b []T) []T {
	n, oa, ob := polyAlign(a, b)
	r := make([]T, n)
	var va, vb T
	for i := 0; i < n; i++ {
		if i >= oa {
			va = a[i-oa]
		} else {
			va = f.Zero()
		}
		if i >= ob {
			vb = b[i-ob]
		} else {
			vb = f.Zero()
		}
		r[i] = f.Sub(va, vb)
	}
	return r
}

// PolyScale multiplies every coefficient of a by the scalar c.
func PolyScale[T comparable, F ring[T]](f F, a []T, c T) []T {
	r := make([]T, len(a))
	for i, v := range a {
		r[i] = f.Mul(v, c)
	}
	return r
}

// PolyShift multiplies a (stored highest-degree-first, fixed length) by X^n,
// keeping the buffer's length fixed: coefficients that would land below
// index 0 (degree too high for the tracked window) are dropped, and the new
// low-degree positions introduced by the shift are zero. Used by
// Berlekamp-Massey, whose working polynomials are fixed-length registers of
// size ecc_len rather than growing buffers.
func PolyShift[T comparable](a []T, n int) []T {
	r := make([]T, len(a))
	for i := 0; i < len(a); i++ {
		src := i + n
		if src < len(a) {
			r[i] = a[src]
		}
	}
	return r
}

// PolyEval evaluates poly (highest-degree-first) at x via Horner's method,
// continuing from seed instead of 0 -- the syndrome engine uses this to
// chain the evaluation of the data block into the evaluation of the
// remainder block without concatenating them.
func PolyEval[T comparable, F ring[T]](f F, poly []T, x T, seed T) T {
	r := seed
	for _, c := range poly {
		r = f.Add(f.Mul(r, x), c)
	}
	return r
}

// ExSynthDiv divides a (highest-degree-first) by b in place via extended
// synthetic division, normalizing by b's leading coefficient so b need not
// be monic. After the call a[:len(a)-len(b)+1] holds the quotient and
// a[len(a)-len(b)+1:] holds the remainder; the quotient slice (a view into
// a, not a copy) is returned.
func ExSynthDiv[T comparable, F ring[T]](f F, a, b []T) []T {
	quotLen := len(a) - len(b) + 1
	invLead := f.Inv(b[0])
	zero := f.Zero()
	for i := 0; i < quotLen; i++ {
		coef := f.Mul(a[i], invLead)
		a[i] = coef
		if coef != zero {
			for j := 1; j < len(b); j++ {
				a[i+j] = f.Sub(a[i+j], f.Mul(coef, b[j]))
			}
		}
	}
	return a[:quotLen]
}

// PolyModXN computes the remainder of (data * X^len(gTail)) mod g, where g
// is monic with gTail holding g's coefficients after the implicit leading
// 1 (highest-degree-first). This is the systematic encoder operation: in
// characteristic 2 the returned slice (length len(gTail)) is the parity
// block appended after data to form a codeword divisible by g.
func PolyModXN[T comparable, F ring[T]](f F, data, gTail []T) []T {
	eccLen := len(gTail)
	rem := make([]T, eccLen)
	zero := f.Zero()
	for _, d := range data {
		factor := f.Add(d, rem[0])
		copy(rem, rem[1:])
		rem[eccLen-1] = zero
		if factor != zero {
			for j := 0; j < eccLen; j++ {
				rem[j] = f.Sub(rem[j], f.Mul(factor, gTail[j]))
			}
		}
	}
	return rem
}

// elemFromInt represents the plain integer i as a field element by adding
// the multiplicative identity to itself i times. For a characteristic-2
// field (Add(x,x) == 0) this is equivalent to, and short-circuited into,
// i&1; for a prime field it is the genuine sum 1+1+...+1 (i times) mod p.
func elemFromInt[T comparable, F ring[T]](f F, i int) T {
	one := f.One()
	zero := f.Zero()
	if f.Add(one, one) == zero {
		if i&1 == 1 {
			return one
		}
		return zero
	}
	acc := zero
	for k := 0; k < i; k++ {
		acc = f.Add(acc, one)
	}
	return acc
}

// PolyDeriv computes the formal derivative of poly (highest-degree-first,
// length size representing degrees [size-1 .. 0]). The result has length
// size-1 and lives in the returned slice (not an alias of poly); term i of
// the input (coefficient of X^i) contributes i*coeff to the X^(i-1) term of
// the output.
func PolyDeriv[T comparable, F ring[T]](f F, poly []T) []T {
	size := len(poly)
	out := make([]T, size-1)
	for i := 1; i < size; i++ {
		out[size-1-i] = f.Mul(poly[size-1-i], elemFromInt[T, F](f, i))
	}
	return out
}

package ffrs

// rootsBasic256 exhaustively searches for roots of the error-locator
// polynomial poly (highest-degree-first): position i is a root if
// poly(Inv(Exp(i))) == 0. It stops once len(poly)-1 roots (the maximum
// possible) have been found, or maxSearch positions have been tried.
func rootsBasic256(f *Field256, poly []byte, maxSearch int) []byte {
	need := len(poly) - 1
	var positions []byte
	for i := 0; i < maxSearch && len(positions) < need; i++ {
		x := f.Inv(f.Exp(i))
		if PolyEval[byte, *Field256](f, poly, x, 0) == 0 {
			positions = append(positions, byte(i))
		}
	}
	return positions
}

// rootsChien256 finds the same roots as rootsBasic256 via incremental
// per-term multiplication instead of a fresh Horner evaluation at each
// position (the Chien search trick): since consecutive search points are a
// fixed ratio apart (x_{i+1} = x_i * Inv(Exp(1))), each term of the
// evaluation can be updated by a single constant multiply per step instead
// of being recomputed from scratch.
func rootsChien256(f *Field256, poly []byte, maxSearch int) []byte {
	n := len(poly)
	need := n - 1
	ratio := f.Inv(f.Exp(1))
	ratioPow := make([]byte, n)
	for j := 0; j < n; j++ {
		ratioPow[j] = f.Pow(ratio, n-1-j)
	}
	term := make([]byte, n)
	copy(term, poly) // x_0 = Inv(Exp(0)) = 1, so term starts equal to poly

	var positions []byte
	for i := 0; i < maxSearch && len(positions) < need; i++ {
		if i > 0 {
			for j := range term {
				term[j] = f.Mul(term[j], ratioPow[j])
			}
		}
		var sum byte
		for _, t := range term {
			sum ^= t
		}
		if sum == 0 {
			positions = append(positions, byte(i))
		}
	}
	return positions
}

// rootsWide256 is the wide-word form: it evaluates poly at up to 8 search
// points packed into one uint64 per Horner pass, scanning each resulting
// lane for zero.
func rootsWide256(f *Field256, poly []byte, maxSearch int) []byte {
	const width = 8
	need := len(poly) - 1
	poly1 := byte(f.Poly1)
	var positions []byte

	for base := 0; base < maxSearch && len(positions) < need; base += width {
		n := width
		if base+n > maxSearch {
			n = maxSearch - base
		}
		var xWide uint64
		for k := 0; k < n; k++ {
			xWide |= uint64(f.Inv(f.Exp(base+k))) << (8 * uint(k))
		}
		result := PolyEvalWide[uint64](poly, xWide, 0, poly1)
		for k := 0; k < n && len(positions) < need; k++ {
			if byte(result>>(8*uint(k))) == 0 {
				positions = append(positions, byte(base+k))
			}
		}
	}
	return positions
}

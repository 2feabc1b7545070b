package ffrs

// syndromes256 computes S_i = data(root_i), continued into the remainder
// block so the decoder never needs to materialize the concatenated
// codeword: t = eval(data, root_i); S_i = eval(rem, root_i, seed=t).
func syndromes256(f *Field256, data, rem []byte, roots []byte) []byte {
	out := make([]byte, len(roots))
	for i, root := range roots {
		t := PolyEval[byte, *Field256](f, data, root, 0)
		out[i] = PolyEval[byte, *Field256](f, rem, root, t)
	}
	return out
}

// syndromesWide256 is the wide-word form of syndromes256: it packs up to 8
// generator roots into the byte lanes of a uint64 and evaluates all of them
// in one pass over data and rem, unpacking the per-lane results at the end.
// Used when eccLen is large enough (>=2 roots) to make the packing worth
// it; syndromes256 and syndromesWide256 must always agree bit-for-bit.
func syndromesWide256(f *Field256, data, rem []byte, roots []byte) []byte {
	const width = 8 // laneWidthBytes[uint64]()
	out := make([]byte, len(roots))
	poly1 := byte(f.Poly1)

	for base := 0; base < len(roots); base += width {
		n := width
		if base+n > len(roots) {
			n = len(roots) - base
		}
		var xWide uint64
		for k := 0; k < n; k++ {
			xWide |= uint64(roots[base+k]) << (8 * uint(k))
		}
		t := PolyEvalWide[uint64](data, xWide, 0, poly1)
		final := PolyEvalWide[uint64](rem, xWide, t, poly1)
		for k := 0; k < n; k++ {
			out[base+k] = byte(final >> (8 * uint(k)))
		}
	}
	return out
}

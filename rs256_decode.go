package ffrs

// berlekampMassey256 finds the shortest linear feedback polynomial
// (error locator, Lambda) that generates the syndrome sequence. The working
// polynomials are fixed-length (eccLen) highest-degree-first registers, not
// growing buffers: errPoly's true degree is tracked separately by the
// returned error count, and only the last (errors+1) entries of the
// returned slice are meaningful (errPoly[eccLen-errors-1:]).
func berlekampMassey256(f *Field256, synds []byte, eccLen int) ([]byte, int) {
	prev := make([]byte, eccLen)
	prev[eccLen-1] = 1
	errPoly := make([]byte, eccLen)
	errPoly[eccLen-1] = 1

	errorsCount := 0
	b := byte(1)
	m := 1

	for n := 0; n < eccLen; n++ {
		d := synds[n]
		for i := 1; i <= errorsCount; i++ {
			d = f.Add(d, f.Mul(errPoly[eccLen-1-i], synds[n-i]))
		}

		if d == 0 {
			m++
			continue
		}

		scaled := PolyScale[byte, *Field256](f, PolyShift(prev, m), f.Div(d, b))
		if 2*errorsCount <= n {
			temp := append([]byte(nil), errPoly...)
			errPoly = PolySub[byte, *Field256](f, errPoly, scaled)
			errorsCount = n + 1 - errorsCount
			prev = temp
			b = d
			m = 1
		} else {
			errPoly = PolySub[byte, *Field256](f, errPoly, scaled)
			m++
		}
	}
	return errPoly, errorsCount
}

// forney256 computes the error magnitudes for errCount located errors.
// errPolyWindow is Lambda(X), highest-degree-first, length errCount+1.
// errPos[i] is the root-search index (not the codeword position) of the
// i-th located error, used here purely to recover Exp(errPos[i]) = the
// error locator value X_i.
func forney256(f *Field256, synds []byte, errPolyWindow []byte, errPos []byte) []byte {
	errCount := len(errPos)

	syndsRev := make([]byte, len(synds))
	for i, v := range synds {
		syndsRev[len(synds)-1-i] = v
	}

	errEval := PolyMul[byte, *Field256](f, syndsRev, errPolyWindow)
	xPoly := make([]byte, len(synds)+1)
	xPoly[0] = 1
	quot := ExSynthDiv[byte, *Field256](f, errEval, xPoly)
	remainder := errEval[len(quot):]

	begin := 0
	for begin < len(remainder) && remainder[begin] == 0 {
		begin++
	}
	omega := remainder[begin:]

	deriv := PolyDeriv[byte, *Field256](f, errPolyWindow)

	mags := make([]byte, errCount)
	for i := 0; i < errCount; i++ {
		xi := f.Exp(int(errPos[i]))
		xiInv := f.Inv(xi)
		n := PolyEval[byte, *Field256](f, omega, xiInv, 0)
		d := PolyEval[byte, *Field256](f, deriv, xiInv, 0)
		mags[i] = f.Mul(xi, f.Div(n, d))
	}
	return mags
}

// decodeRS256 runs the full syndrome-decode pipeline over data+rem,
// correcting up to eccLen/2 errors in place. Returns the number of errors
// corrected (0 if the block was already clean) or ErrUncorrectable.
func decodeRS256(f *Field256, gen *Generator[byte], eccLen int, data, rem []byte,
	syndromeFn func(*Field256, []byte, []byte, []byte) []byte,
	rootsFn func(*Field256, []byte, int) []byte,
) (int, error) {
	synds := syndromeFn(f, data, rem, gen.Roots)
	clean := true
	for _, s := range synds {
		if s != 0 {
			clean = false
			break
		}
	}
	if clean {
		return 0, nil
	}

	errPoly, errorsCount := berlekampMassey256(f, synds, eccLen)
	if errorsCount > eccLen/2 {
		return 0, ErrUncorrectable
	}

	window := errPoly[eccLen-errorsCount-1:]
	n := len(data) + eccLen
	positions := rootsFn(f, window, n)
	if len(positions) != errorsCount {
		return 0, ErrUncorrectable
	}

	mags := forney256(f, synds, window, positions)
	for k, idx := range positions {
		pos := n - 1 - int(idx)
		if pos < 0 || pos >= n {
			return 0, ErrUncorrectable
		}
		if pos < len(data) {
			data[pos] = f.Add(data[pos], mags[k])
		} else {
			rem[pos-len(data)] = f.Add(rem[pos-len(data)], mags[k])
		}
	}
	return errorsCount, nil
}

// decodeErasuresRS256 corrects errors at known positions errIdx (indices
// into the logical data||rem codeword). Unlike decodeRS256 it can correct
// up to eccLen errors (not eccLen/2), since locating the errors is exactly
// the information BM+roots would otherwise have to recover.
func decodeErasuresRS256(f *Field256, eccLen int, data, rem []byte, errIdx []int,
	syndromeFn func(*Field256, []byte, []byte, []byte) []byte,
	roots []byte,
) (int, error) {
	if len(errIdx) > eccLen {
		return 0, ErrTooManyErasures
	}
	synds := syndromeFn(f, data, rem, roots)
	clean := true
	for _, s := range synds {
		if s != 0 {
			clean = false
			break
		}
	}
	if clean {
		return 0, nil
	}

	n := len(data) + eccLen
	errPos := make([]byte, len(errIdx))
	locatorRoots := make([]byte, len(errIdx))
	for i, idx := range errIdx {
		if idx < 0 || idx >= n {
			return 0, ErrDimensionMismatch
		}
		pos := n - 1 - idx
		errPos[i] = byte(pos)
		locatorRoots[i] = f.Exp(pos)
	}

	lambda := buildRootProduct[byte, *Field256](f, locatorRoots, func(root byte) [2]byte {
		return erasureFactor[byte, *Field256](f, root)
	})
	if len(lambda) != len(errIdx)+1 {
		return 0, ErrUncorrectable
	}

	mags := forney256(f, synds, lambda, errPos)
	for k, idx := range errIdx {
		if idx < len(data) {
			data[idx] = f.Add(data[idx], mags[k])
		} else {
			rem[idx-len(data)] = f.Add(rem[idx-len(data)], mags[k])
		}
	}
	return len(errIdx), nil
}

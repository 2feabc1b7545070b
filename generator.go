package ffrs

// buildRootProduct accumulates prod_i factor(roots[i]), one two-coefficient
// (degree-1) factor at a time, highest-degree-first. The generator
// polynomial (§4.D, factor = X - root) and the known-erasure-position
// locator polynomial built during decode (§4.H, factor = 1 - root*X) are
// both an instance of this same accumulation with a different factor shape,
// so both call this one helper instead of duplicating the double-buffered
// polynomial multiply the originating library repeats for each case.
func buildRootProduct[T comparable, F ring[T]](f F, roots []T, factor func(root T) [2]T) []T {
	g := []T{f.One()}
	for _, root := range roots {
		ft := factor(root)
		g = PolyMul[T, F](f, g, ft[:])
	}
	return g
}

// generatorFactor is the (X - root) factor shape used by BuildGenerator.
func generatorFactor[T comparable, F ring[T]](f F, root T) [2]T {
	return [2]T{f.One(), f.Sub(f.Zero(), root)}
}

// erasureFactor is the (1 - root*X) factor shape used by the decoder's
// known-erasure-position locator construction.
func erasureFactor[T comparable, F ring[T]](f F, root T) [2]T {
	return [2]T{f.Sub(f.Zero(), root), f.One()}
}

// Generator holds a Reed-Solomon generator polynomial together with the
// roots it was built from, g(X) = prod_{i=0}^{eccLen-1} (X - Exp(i)).
type Generator[T comparable] struct {
	// Full holds the monic generator, length eccLen+1, highest-degree-first.
	Full []T
	// Tail holds Full[1:], the coefficients actually consumed by the
	// systematic encoders (PolyModXN operates against the tail only, since
	// the implicit leading 1 never contributes to the remainder).
	Tail []T
	// Roots holds Exp(0)..Exp(eccLen-1), reused by the syndrome and roots
	// engines so they don't recompute Field.Exp per call.
	Roots []T
}

// BuildGenerator constructs the length-eccLen generator used by RS256.
func BuildGenerator[T comparable, F ring[T]](f F, eccLen int, expFn func(i int) T) *Generator[T] {
	roots := make([]T, eccLen)
	for i := range roots {
		roots[i] = expFn(i)
	}
	full := buildRootProduct[T, F](f, roots, func(root T) [2]T { return generatorFactor[T, F](f, root) })
	return &Generator[T]{
		Full:  full,
		Tail:  full[1:],
		Roots: roots,
	}
}

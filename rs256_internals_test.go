package ffrs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSyndromesScalarAndWideAgree(t *testing.T) {
	f, err := NewField256(2, 0x1d)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(10))

	for _, eccLen := range []int{1, 2, 8, 16, 17} {
		gen := BuildGenerator[byte, *Field256](f, eccLen, f.Exp)

		data := make([]byte, 100)
		rng.Read(data)
		rem := make([]byte, eccLen)
		rng.Read(rem)

		scalar := syndromes256(f, data, rem, gen.Roots)
		wide := syndromesWide256(f, data, rem, gen.Roots)
		require.Equal(t, scalar, wide, "eccLen=%d", eccLen)
	}
}

func TestRootsSearchVariantsAgree(t *testing.T) {
	f, err := NewField256(2, 0x1d)
	require.NoError(t, err)

	// Lambda(X) = (1 - Exp(3)X)(1 - Exp(9)X): factor (1 - root*X) form,
	// same shape the real error-locator polynomial takes, so the search
	// finds positions 3 and 9.
	roots := []byte{f.Exp(3), f.Exp(9)}
	lambda := buildRootProduct[byte, *Field256](f, roots, func(r byte) [2]byte {
		return erasureFactor[byte, *Field256](f, r)
	})

	n := 64
	basic := rootsBasic256(f, lambda, n)
	chien := rootsChien256(f, lambda, n)
	wide := rootsWide256(f, lambda, n)

	require.ElementsMatch(t, basic, chien)
	require.ElementsMatch(t, basic, wide)
}

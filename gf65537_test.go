package ffrs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestField65537RejectsOutOfRangePrimitive(t *testing.T) {
	_, err := NewField65537(0)
	require.ErrorIs(t, err, ErrInvalidField)

	_, err = NewField65537(fermatPrime)
	require.ErrorIs(t, err, ErrInvalidField)
}

func TestField65537MulModFoldEdgeCase(t *testing.T) {
	f, err := NewField65537(3)
	require.NoError(t, err)

	// 65536 represents -1 mod 65537; (-1)*(-1) = 1, but the raw uint32
	// product 65536*65536 = 2^32 wraps to exactly 0, which would otherwise
	// look like a genuine zero product.
	require.Equal(t, uint32(1), f.mulMod(65536, 65536))
}

func TestField65537AddSubNegRoundTrip(t *testing.T) {
	f, err := NewField65537(3)
	require.NoError(t, err)

	for _, a := range []uint32{0, 1, 2, 32768, 65535, 65536} {
		require.Equal(t, a, f.Sub(f.Add(a, 1234), 1234))
		if a != 0 {
			require.Equal(t, uint32(0), f.Add(a, f.Neg(a)))
		}
	}
}

func TestField65537ExpLogAreInverse(t *testing.T) {
	f, err := NewField65537(3)
	require.NoError(t, err)

	for _, a := range []uint32{1, 2, 3, 256, 65535, 65536} {
		require.Equal(t, a, f.Exp(int(f.Log(a))))
	}
}

func TestField65537MulDivInvRoundTrip(t *testing.T) {
	f, err := NewField65537(3)
	require.NoError(t, err)

	for _, a := range []uint32{1, 2, 3, 17, 256, 65535, 65536} {
		inv := f.Inv(a)
		require.Equal(t, uint32(1), f.Mul(a, inv))
		require.Equal(t, a, f.Div(f.Mul(a, 99), 99))
	}
}

package ffrs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestField256KnownValues(t *testing.T) {
	f, err := NewField256(2, 0x1d)
	require.NoError(t, err)

	require.Equal(t, byte(0x31), f.Mul(0x57, 0x83))
	require.Equal(t, byte(0x8c), f.Inv(0x53))
	require.Equal(t, byte(1), f.Pow(2, 255))
}

func TestField256RejectsHighBitPoly(t *testing.T) {
	_, err := NewField256(2, 0x9d)
	require.ErrorIs(t, err, ErrInvalidField)
}

func TestField256MulDivInvRoundTrip(t *testing.T) {
	f, err := NewField256(2, 0x1d)
	require.NoError(t, err)

	for a := 1; a < 256; a++ {
		inv := f.Inv(byte(a))
		require.Equal(t, byte(1), f.Mul(byte(a), inv), "a=%d", a)
		require.Equal(t, byte(a), f.Div(f.Mul(byte(a), 0x42), 0x42), "a=%d", a)
	}
}

func TestField256AddSubAreXOR(t *testing.T) {
	f, err := NewField256(2, 0x1d)
	require.NoError(t, err)

	for a := 0; a < 256; a++ {
		for _, b := range []byte{0x00, 0x01, 0x7f, 0x80, 0xff} {
			require.Equal(t, byte(a)^b, f.Add(byte(a), b))
			require.Equal(t, byte(a)^b, f.Sub(byte(a), b))
		}
	}
}

func TestField256ExpLogAreInverse(t *testing.T) {
	f, err := NewField256(2, 0x1d)
	require.NoError(t, err)

	for a := 1; a < 256; a++ {
		require.Equal(t, byte(a), f.Exp(int(f.Log(byte(a)))))
	}
}

func TestMulWideLanesAgreesWithScalarMul(t *testing.T) {
	f, err := NewField256(2, 0x1d)
	require.NoError(t, err)
	poly1 := byte(f.Poly1)

	var a, b uint32
	vals := [4]byte{0x00, 0x57, 0x83, 0xff}
	for i, v := range vals {
		a |= uint32(v) << (8 * uint(i))
		b |= uint32(byte(i*37+11)) << (8 * uint(i))
	}
	got := mulWideLanes(a, b, poly1)
	for i := 0; i < 4; i++ {
		wantLane := f.Mul(byte(a>>(8*uint(i))), byte(b>>(8*uint(i))))
		gotLane := byte(got >> (8 * uint(i)))
		require.Equal(t, wantLane, gotLane, "lane %d", i)
	}
}

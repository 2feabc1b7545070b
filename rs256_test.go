package ffrs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRS256RejectsBadEccLen(t *testing.T) {
	_, err := NewRS256(0, 2, 0x1d)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewRS256(255, 2, 0x1d)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRS256EncoderVariantsAgree(t *testing.T) {
	f, err := NewField256(2, 0x1d)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))

	for _, eccLen := range []int{2, 4, 8, 16, 32} {
		gen := BuildGenerator[byte, *Field256](f, eccLen, f.Exp)
		lut := buildLUT256(f, gen.Tail)

		for _, dataLen := range []int{0, 1, eccLen - 1, eccLen, eccLen + 1, 64, 223 - eccLen} {
			if dataLen < 0 {
				continue
			}
			data := make([]byte, dataLen)
			rng.Read(data)

			basic := encodeBasic256(f, data, gen.Tail)
			viaLUT := lut.encode(f, data)
			require.Equal(t, basic, viaLUT, "eccLen=%d dataLen=%d lut mismatch", eccLen, dataLen)

			for _, stride := range []int{1, 4, 8, 16, chooseStride(eccLen)} {
				slicer := buildStrideLUT256(f, lut, stride)
				viaSlice := slicer.encode(data)
				require.Equal(t, basic, viaSlice, "eccLen=%d dataLen=%d stride=%d slicing mismatch", eccLen, dataLen, stride)
			}
		}
	}
}

func TestRS256EncodeDecodeRoundTrip(t *testing.T) {
	rs, err := NewRS256(32, 2, 0x1d)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(2))
	data := make([]byte, 223)
	rng.Read(data)

	ecc, err := rs.Encode(data)
	require.NoError(t, err)
	require.Len(t, ecc, 32)

	t.Run("clean block decodes with zero corrections", func(t *testing.T) {
		d := append([]byte(nil), data...)
		r := append([]byte(nil), ecc...)
		n, err := rs.Decode(d, r)
		require.NoError(t, err)
		require.Equal(t, 0, n)
		require.Equal(t, data, d)
	})

	t.Run("16 flipped bytes are corrected", func(t *testing.T) {
		d := append([]byte(nil), data...)
		r := append([]byte(nil), ecc...)
		positions := rng.Perm(len(d))[:16]
		for _, p := range positions {
			d[p] ^= 0xff
		}
		n, err := rs.Decode(d, r)
		require.NoError(t, err)
		require.Equal(t, 16, n)
		require.Equal(t, data, d)
	})

	t.Run("17 flipped bytes are rejected", func(t *testing.T) {
		d := append([]byte(nil), data...)
		r := append([]byte(nil), ecc...)
		positions := rng.Perm(len(d))[:17]
		for _, p := range positions {
			d[p] ^= 0xff
		}
		_, err := rs.Decode(d, r)
		require.Error(t, err)
	})
}

func TestRS256DecodeErasures(t *testing.T) {
	rs, err := NewRS256(16, 2, 0x1d)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	data := make([]byte, 64)
	rng.Read(data)

	ecc, err := rs.Encode(data)
	require.NoError(t, err)

	d := append([]byte(nil), data...)
	r := append([]byte(nil), ecc...)

	positions := rng.Perm(len(d) + len(r))[:16]
	for _, p := range positions {
		if p < len(d) {
			d[p] ^= 0x5a
		} else {
			r[p-len(d)] ^= 0x5a
		}
	}

	n, err := rs.DecodeErasures(d, r, positions)
	require.NoError(t, err)
	require.Equal(t, 16, n)
	require.Equal(t, data, d)
}

func TestRS256DecodeErasuresTooMany(t *testing.T) {
	rs, err := NewRS256(4, 2, 0x1d)
	require.NoError(t, err)

	data := make([]byte, 16)
	ecc, err := rs.Encode(data)
	require.NoError(t, err)

	_, err = rs.DecodeErasures(data, ecc, []int{0, 1, 2, 3, 4})
	require.ErrorIs(t, err, ErrTooManyErasures)
}

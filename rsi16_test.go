package ffrs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRSi16RejectsBadLayout(t *testing.T) {
	_, err := NewRSi16(255, 16, 3) // not a power of two
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewRSi16(256, 0, 3) // eccLen <= 0
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewRSi16(256, 3, 3) // blockSize not a multiple of eccLen
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRSi16RootOfUnity(t *testing.T) {
	r, err := NewRSi16(256, 16, 3)
	require.NoError(t, err)

	f, err := NewField65537(3)
	require.NoError(t, err)

	require.Equal(t, uint32(1), f.Pow(r.Root(), r.BlockSize()))
}

func TestRSi16EncodeIsDeterministic(t *testing.T) {
	r, err := NewRSi16(256, 16, 3)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(4))
	data := make([]uint32, r.MessageLen())
	for i := range data {
		data[i] = uint32(rng.Intn(fermatPrime))
	}

	ecc1, err := r.Encode(data)
	require.NoError(t, err)
	ecc2, err := r.Encode(data)
	require.NoError(t, err)
	require.Equal(t, ecc1, ecc2)
	require.Len(t, ecc1, 16)
}

func TestRSi16EncodeRejectsWrongLength(t *testing.T) {
	r, err := NewRSi16(256, 16, 3)
	require.NoError(t, err)

	_, err = r.Encode(make([]uint32, r.MessageLen()-1))
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestRSi16EncodeBlocksPadsShortTail(t *testing.T) {
	r, err := NewRSi16(64, 8, 3)
	require.NoError(t, err)

	msgLen := r.MessageLen()
	rng := rand.New(rand.NewSource(5))

	data := make([]uint32, msgLen+msgLen/2)
	for i := range data {
		data[i] = uint32(rng.Intn(fermatPrime))
	}

	eccs, err := r.EncodeBlocks(data)
	require.NoError(t, err)
	require.Len(t, eccs, 2)

	want0, err := r.Encode(data[:msgLen])
	require.NoError(t, err)
	require.Equal(t, want0, eccs[0])

	tail := append([]uint32(nil), data[msgLen:]...)
	for len(tail) < msgLen {
		tail = append(tail, 0)
	}
	want1, err := r.Encode(tail)
	require.NoError(t, err)
	require.Equal(t, want1, eccs[1])
}

func TestRSi16VectorMatchesScalarPerBlock(t *testing.T) {
	r, err := NewRSi16(64, 8, 3)
	require.NoError(t, err)

	for _, lanes := range []int{4, 8, 16} {
		rv, err := NewRSi16Vector(r, lanes)
		require.NoError(t, err)

		rng := rand.New(rand.NewSource(int64(100 + lanes)))
		numBlocks := lanes + lanes/2 + 1 // exercise a full group plus a short tail group
		blocks := make([][]uint32, numBlocks)
		for i := range blocks {
			b := make([]uint32, r.MessageLen())
			for j := range b {
				b[j] = uint32(rng.Intn(fermatPrime))
			}
			blocks[i] = b
		}

		wide, err := rv.EncodeBlocks(blocks)
		require.NoError(t, err)
		require.Len(t, wide, numBlocks)

		for i, b := range blocks {
			scalar, err := r.Encode(b)
			require.NoError(t, err)
			require.Equal(t, scalar, wide[i], "block %d, lanes=%d", i, lanes)
		}
	}
}

func TestNewRSi16VectorRejectsBadLaneWidth(t *testing.T) {
	r, err := NewRSi16(64, 8, 3)
	require.NoError(t, err)

	_, err = NewRSi16Vector(r, 3)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

package ffrs

import (
	"math/bits"

	"github.com/pkg/errors"
)

// RSi16 is a systematic Reed-Solomon encoder over GF(65537) (16-bit
// symbols), built on a number-theoretic transform instead of the
// polynomial long-division LFSR that RS256 uses. blockSize (message +
// parity symbols) must be a power of two dividing evenly by eccLen. Only
// encoding is implemented: the source algorithm this is ported from never
// grew a matching NTT-domain decoder either.
type RSi16 struct {
	field     *Field65537
	blockSize int
	eccLen    int
	root      uint32
	opts      options

	rootsv  []uint32 // root^i, i in [0, blockSize)
	rootsIv []uint32 // (root^-1)^i, i in [0, blockSize)
	rbo     []uint16
	mixv    []uint32
}

// NewRSi16 builds an encoder for the given block/ECC layout over GF(65537)
// generated by primitive. Returns ErrInvalidField if no blockSize-th root
// of unity exists for primitive (it must generate a subgroup whose order
// is a multiple of blockSize; since the group order 65536 is itself a
// power of two, this can only fail when blockSize exceeds 65536).
func NewRSi16(blockSize, eccLen int, primitive uint32, opts ...Option) (*RSi16, error) {
	if blockSize <= 1 || blockSize&(blockSize-1) != 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "blockSize=%d must be a power of two greater than 1", blockSize)
	}
	if eccLen <= 0 || eccLen >= blockSize {
		return nil, errors.Wrapf(ErrInvalidConfig, "eccLen=%d must be in [1,blockSize=%d)", eccLen, blockSize)
	}
	if blockSize%eccLen != 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "blockSize=%d must be a multiple of eccLen=%d", blockSize, eccLen)
	}

	field, err := NewField65537(primitive)
	if err != nil {
		return nil, err
	}
	if blockSize > fermatGroupOrder {
		return nil, errors.Wrapf(ErrInvalidField, "no %d-th root of unity in GF(%d)", blockSize, fermatPrime)
	}

	nbits := bits.TrailingZeros(uint(blockSize))

	// root = primitive^(log(1) / blockSize); log(1) reads back as the group
	// order (see gf65537.go), which is what makes this a blockSize-th root.
	root := field.Exp(int(field.Div(field.Log(1), uint32(blockSize))))
	if root >= 0x8000 {
		root = field.Neg(root)
	}
	if field.Pow(root, blockSize) != 1 {
		return nil, errors.Wrapf(ErrInvalidField, "no %d-th root of unity for primitive=%d", blockSize, primitive)
	}

	rootsv := make([]uint32, blockSize)
	rootsIv := make([]uint32, blockSize)
	rootInv := field.Inv(root)
	for i := 0; i < blockSize; i++ {
		rootsv[i] = field.Pow(root, i)
		rootsIv[i] = field.Pow(rootInv, i)
	}

	rbo := make([]uint16, blockSize)
	for i := 0; i < blockSize; i++ {
		rbo[i] = rbo16(uint16(i)) >> uint(16-nbits)
	}

	mixv := make([]uint32, eccLen)
	w := rootsIv[rbo[blockSize-eccLen]]
	for j := 0; j < eccLen; j++ {
		mixv[j] = field.Neg(field.Div(field.Pow(w, j), uint32(blockSize)))
	}

	return &RSi16{
		field:     field,
		blockSize: blockSize,
		eccLen:    eccLen,
		root:      root,
		opts:      buildOptions(opts),
		rootsv:    rootsv,
		rootsIv:   rootsIv,
		rbo:       rbo,
		mixv:      mixv,
	}, nil
}

// Vector builds the lane-parallel encoder for this codec, selecting the
// SIMD lane width from the options given to NewRSi16 (a CPU feature probe
// by default). When the resolved width is 1, no wrapper is constructed
// and ErrInvalidConfig is returned; callers that land on width 1 should
// just call Encode/EncodeBlocks directly instead.
func (r *RSi16) Vector() (*RSi16Vector, error) {
	width := laneWidthFor(r.opts)
	if width == 1 {
		return nil, errors.Wrap(ErrInvalidConfig, "no SIMD lane width available or selected; use Encode/EncodeBlocks")
	}
	return NewRSi16Vector(r, width)
}

// BlockSize reports the total symbol count (message + parity) per block.
func (r *RSi16) BlockSize() int { return r.blockSize }

// EccLen reports the number of parity symbols produced per block.
func (r *RSi16) EccLen() int { return r.eccLen }

// MessageLen reports the number of message symbols per block.
func (r *RSi16) MessageLen() int { return r.blockSize - r.eccLen }

// Root returns the primitive blockSize-th root of unity this encoder uses.
func (r *RSi16) Root() uint32 { return r.root }

// encodeBlock runs the systematic NTT-RS encode over a full blockSize
// scratch buffer, leaving the eccLen parity symbols in block[:eccLen].
// block[:MessageLen()] must hold the message on entry and
// block[MessageLen():] must be zeroed.
func (r *RSi16) encodeBlock(block []uint32) {
	ctButterfly[uint32, *Field65537](r.field, r.rootsv, block, r.blockSize)

	for j := 0; j < r.eccLen; j++ {
		block[j] = r.field.Mul(block[j], r.mixv[j])
	}
	for j := 1; j < r.blockSize/r.eccLen; j++ {
		copy(block[j*r.eccLen:(j+1)*r.eccLen], block[:r.eccLen])
	}

	gsButterfly[uint32, *Field65537](r.field, r.eccLen, r.rootsIv, block, r.blockSize)
}

// Encode returns the eccLen parity symbols for data, which must hold
// exactly MessageLen() symbols.
func (r *RSi16) Encode(data []uint32) ([]uint32, error) {
	if len(data) != r.MessageLen() {
		return nil, errors.Wrapf(ErrDimensionMismatch, "data len %d != message len %d", len(data), r.MessageLen())
	}
	block := make([]uint32, r.blockSize)
	copy(block, data)
	r.encodeBlock(block)

	ecc := make([]uint32, r.eccLen)
	copy(ecc, block[:r.eccLen])
	return ecc, nil
}

// EncodeBlocks splits data into MessageLen()-sized chunks (the last is
// zero-padded if short) and encodes each independently, returning one
// eccLen-symbol parity slice per chunk in order.
func (r *RSi16) EncodeBlocks(data []uint32) ([][]uint32, error) {
	msgLen := r.MessageLen()
	var out [][]uint32
	for off := 0; off < len(data); off += msgLen {
		end := off + msgLen
		if end > len(data) {
			end = len(data)
		}
		ecc, err := r.Encode(padTo(data[off:end], msgLen))
		if err != nil {
			return nil, err
		}
		out = append(out, ecc)
	}
	return out, nil
}

func padTo(data []uint32, n int) []uint32 {
	if len(data) == n {
		return data
	}
	padded := make([]uint32, n)
	copy(padded, data)
	return padded
}

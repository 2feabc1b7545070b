package ffrs

import "github.com/pkg/errors"

// RS256 is a systematic Reed-Solomon codec over GF(256): up to eccLen/2
// byte errors can be corrected per encoded block, or up to eccLen erasures
// at known positions. A single RS256 value is safe for concurrent use by
// multiple goroutines as long as each call operates on disjoint buffers --
// the codec itself holds no mutable per-call state.
type RS256 struct {
	field  *Field256
	gen    *Generator[byte]
	eccLen int

	strideFn *strideLUT256
}

// NewRS256 builds a codec for the given ECC length over GF(256) generated
// by primitive under the irreducible polynomial poly1 (MSB-excluded form).
// eccLen must leave room for at least one data byte within the field's
// 255-symbol codeword limit.
func NewRS256(eccLen int, primitive byte, poly1 uint16, opts ...Option) (*RS256, error) {
	if eccLen <= 0 || eccLen >= 255 {
		return nil, errors.Wrapf(ErrInvalidConfig, "eccLen=%d must be in [1,255)", eccLen)
	}
	field, err := NewField256(primitive, poly1)
	if err != nil {
		return nil, err
	}
	gen := BuildGenerator[byte, *Field256](field, eccLen, field.Exp)

	o := buildOptions(opts)
	lut := buildLUT256(field, gen.Tail)
	stride := chooseStride(eccLen)
	if o.forceStride != 0 {
		stride = o.forceStride
	}

	return &RS256{
		field:    field,
		gen:      gen,
		eccLen:   eccLen,
		strideFn: buildStrideLUT256(field, lut, stride),
	}, nil
}

// EccLen reports the number of parity bytes this codec produces per block.
func (rs *RS256) EccLen() int { return rs.eccLen }

// MaxDataLen reports the largest data block this codec can encode, given
// GF(256)'s 255-symbol codeword limit.
func (rs *RS256) MaxDataLen() int { return 255 - rs.eccLen }

// Encode returns the eccLen-byte parity block for data, computed with the
// slicing encoder. data must not exceed MaxDataLen().
func (rs *RS256) Encode(data []byte) ([]byte, error) {
	if len(data) > rs.MaxDataLen() {
		return nil, errors.Wrapf(ErrDimensionMismatch, "data len %d exceeds max %d", len(data), rs.MaxDataLen())
	}
	return rs.strideFn.encode(data), nil
}

// EncodeBlocks encodes each block independently, returning one parity
// slice per input block in the same order.
func (rs *RS256) EncodeBlocks(blocks [][]byte) ([][]byte, error) {
	out := make([][]byte, len(blocks))
	for i, b := range blocks {
		ecc, err := rs.Encode(b)
		if err != nil {
			return nil, errors.Wrapf(err, "block %d", i)
		}
		out[i] = ecc
	}
	return out, nil
}

// syndromeDispatch adapts the codec's syndrome-variant choice to the free
// function signature decodeRS256/decodeErasuresRS256 expect.
func (rs *RS256) syndromeDispatch(f *Field256, data, rem, roots []byte) []byte {
	if len(roots) >= 2 {
		return syndromesWide256(f, data, rem, roots)
	}
	return syndromes256(f, data, rem, roots)
}

func (rs *RS256) findRoots(f *Field256, poly []byte, maxSearch int) []byte {
	if len(poly)-1 >= 2 {
		return rootsWide256(f, poly, maxSearch)
	}
	return rootsBasic256(f, poly, maxSearch)
}

// Decode corrects up to rs.EccLen()/2 byte errors in data||rem in place,
// returning the number of errors corrected. rem must hold the eccLen parity
// bytes produced by Encode for the corresponding data (possibly corrupted).
func (rs *RS256) Decode(data, rem []byte) (int, error) {
	if len(rem) != rs.eccLen {
		return 0, errors.Wrapf(ErrDimensionMismatch, "rem len %d != eccLen %d", len(rem), rs.eccLen)
	}
	return decodeRS256(rs.field, rs.gen, rs.eccLen, data, rem, rs.syndromeDispatch, rs.findRoots)
}

// DecodeErasures corrects errors at the known codeword positions errIdx
// (indices into the logical data||rem sequence), in place. Up to
// rs.EccLen() positions may be given, twice as many as Decode can correct
// blindly, since their locations are already known.
func (rs *RS256) DecodeErasures(data, rem []byte, errIdx []int) (int, error) {
	if len(rem) != rs.eccLen {
		return 0, errors.Wrapf(ErrDimensionMismatch, "rem len %d != eccLen %d", len(rem), rs.eccLen)
	}
	return decodeErasuresRS256(rs.field, rs.eccLen, data, rem, errIdx, rs.syndromeDispatch, rs.gen.Roots)
}

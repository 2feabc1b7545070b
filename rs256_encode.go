package ffrs

import "github.com/templexxx/xorsimd"

// encodeBasic computes the systematic RS256 parity for data directly
// against the generator's tail coefficients: the remainder of
// data*X^eccLen mod g(X).
func encodeBasic256(f *Field256, data []byte, gTail []byte) []byte {
	return PolyModXN[byte, *Field256](f, data, gTail)
}

// lut256 precomputes, for every possible input byte value, the full
// eccLen-wide remainder contribution that byte would produce if it were the
// sole nonzero symbol fed into an all-zero LFSR register -- i.e. row v is
// what encodeBasic256 would return for the single-byte message []byte{v}.
type lut256 struct {
	eccLen int
	gTail  []byte
	rows   [256][]byte
}

func buildLUT256(f *Field256, gTail []byte) *lut256 {
	l := &lut256{eccLen: len(gTail), gTail: gTail}
	for v := 0; v < 256; v++ {
		row := make([]byte, l.eccLen)
		factor := byte(v)
		if factor != 0 {
			for j := range row {
				row[j] = f.Mul(factor, gTail[j])
			}
		}
		l.rows[v] = row
	}
	return l
}

// encode runs the classic rotating-register LUT encoder: one table lookup
// and one XOR-fold per input byte.
func (l *lut256) encode(f *Field256, data []byte) []byte {
	eccLen := l.eccLen
	rem := make([]byte, eccLen)
	for _, d := range data {
		pos := rem[0] ^ d
		copy(rem, rem[1:])
		rem[eccLen-1] = 0
		row := l.rows[pos]
		for j := range rem {
			rem[j] ^= row[j]
		}
	}
	return rem
}

// strideLUT256 generalizes lut256 to process `stride` input bytes per
// iteration. rows[k][v] is lut256's row[v] cascaded through k further
// zero-input LFSR steps, so that injecting a byte at position j within a
// stride-wide chunk (counting from the chunk's start) is equivalent to
// looking up rows[stride-1-j][value]. Because the LFSR is linear over
// GF(256), the combined effect of a whole chunk is the XOR of each
// position's row plus the old register shifted left by stride -- one
// multi-source XOR per chunk via xorsimd, instead of stride sequential
// single-byte steps.
type strideLUT256 struct {
	eccLen int
	stride int
	rows   [][256][]byte
}

func buildStrideLUT256(f *Field256, base *lut256, stride int) *strideLUT256 {
	eccLen := base.eccLen
	s := &strideLUT256{eccLen: eccLen, stride: stride}
	s.rows = make([][256][]byte, stride)
	s.rows[0] = base.rows
	for k := 1; k < stride; k++ {
		for v := 0; v < 256; v++ {
			prev := s.rows[k-1][v]
			row := make([]byte, eccLen)
			factor := prev[0]
			copy(row, prev[1:])
			if factor != 0 {
				for j := range row {
					row[j] ^= f.Mul(factor, base.gTail[j])
				}
			}
			s.rows[k][v] = row
		}
	}
	return s
}

func (s *strideLUT256) encode(data []byte) []byte {
	eccLen := s.eccLen
	stride := s.stride
	rem := make([]byte, eccLen)

	i := 0
	for ; i+stride <= len(data); i += stride {
		shifted := make([]byte, eccLen)
		if stride < eccLen {
			copy(shifted, rem[stride:])
		}
		srcs := make([][]byte, 0, stride+1)
		srcs = append(srcs, shifted)
		for j := 0; j < stride; j++ {
			var combined byte
			if j < eccLen {
				combined = rem[j] ^ data[i+j]
			} else {
				combined = data[i+j]
			}
			srcs = append(srcs, s.rows[stride-1-j][combined])
		}
		xorsimd.Encode(rem, srcs)
	}

	for ; i < len(data); i++ {
		pos := rem[0] ^ data[i]
		copy(rem, rem[1:])
		rem[eccLen-1] = 0
		row := s.rows[0][pos]
		for j := range rem {
			rem[j] ^= row[j]
		}
	}
	return rem
}

// chooseStride mirrors the Word/Stride dispatch table of the originating
// slicing encoder (uint32/stride8 for eccLen<=2, uint64/stride16 for
// eccLen<=8, a 16-byte lane/stride16 for eccLen<=16, byte-array/stride=
// eccLen otherwise). The Go port processes byte slices directly rather than
// fixed machine words, so the three small-eccLen tiers collapse to a single
// stride selection; the externally observable boundaries are unchanged.
func chooseStride(eccLen int) int {
	switch {
	case eccLen <= 2:
		return 8
	case eccLen <= 16:
		return 16
	default:
		return eccLen
	}
}

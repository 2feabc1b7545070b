package ffrs

import (
	"unsafe"

	"github.com/pkg/errors"
)

// Field256 implements arithmetic over GF(2^8)/P for a caller-supplied
// irreducible polynomial and primitive element. Addition and subtraction are
// both XOR (characteristic 2); multiplication/division/inverse/power go
// through precomputed exp/log tables built once at construction.
type Field256 struct {
	Primitive byte
	// Poly1 is the irreducible polynomial with its degree-8 bit masked off
	// (bit 7 is always clear). The wide-lane multiply in this file relies on
	// that invariant to fold the reduction term without an extra branch.
	Poly1 uint16

	exp [256]byte
	log [256]byte
}

// NewField256 builds the exp/log tables for GF(2^8) generated by primitive
// under the irreducible polynomial poly1 (MSB-excluded form, e.g. 0x1d for
// the polynomial 0x11d). Returns ErrInvalidField if poly1 has bit 7
// set, which would break the wide-lane reduction trick used by the
// accelerated syndrome/roots paths.
func NewField256(primitive byte, poly1 uint16) (*Field256, error) {
	if poly1&0x80 != 0 {
		return nil, errors.Wrapf(ErrInvalidField, "poly1=%#x must not set bit 7", poly1)
	}
	f := &Field256{Primitive: primitive, Poly1: poly1}
	f.buildTables()
	return f, nil
}

// mulNoLUT is the bit-serial carryless multiply mod Poly1 used only to seed
// the exp/log tables themselves (nothing may use the tables yet).
func (f *Field256) mulNoLUT(a, b byte) byte {
	var r byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			r ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= byte(f.Poly1)
		}
		b >>= 1
	}
	return r
}

// buildTables walks the full multiplicative cycle starting at 1, just like
// generator_roots construction elsewhere in this package: exp[i] holds
// Primitive^i for i in [0,256). Because the loop runs 256 times (not 255),
// it wraps exactly once, overwriting log[1] with 255 -- the group order,
// not the conventional "0". RSi16's root-of-unity search depends on that
// overwrite (see gf65537.go); it is intentional here too, not a bug.
func (f *Field256) buildTables() {
	x := byte(1)
	for i := 0; i < 256; i++ {
		f.exp[i] = x
		f.log[x] = byte(i)
		x = f.mulNoLUT(x, f.Primitive)
	}
}

func (f *Field256) Add(a, b byte) byte { return a ^ b }
func (f *Field256) Sub(a, b byte) byte { return a ^ b }

func (f *Field256) Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	r := int(f.log[a]) + int(f.log[b])
	if r >= 255 {
		r -= 255
	}
	return f.exp[r]
}

func (f *Field256) Div(a, b byte) byte {
	if a == 0 {
		return 0
	}
	r := int(f.log[a]) + 255 - int(f.log[b])
	if r >= 255 {
		r -= 255
	}
	return f.exp[r]
}

func (f *Field256) Inv(a byte) byte {
	return f.exp[255-int(f.log[a])]
}

// Exp returns Primitive^i. i is reduced mod 255 so callers may pass
// exponents outside [0,255) without panicking.
func (f *Field256) Exp(i int) byte {
	i %= 255
	if i < 0 {
		i += 255
	}
	return f.exp[i]
}

func (f *Field256) Log(a byte) byte { return f.log[a] }

// Pow computes a^b via the scaled-log form, not repeated squaring, for
// bit-exact parity with the original table-based implementation.
func (f *Field256) Pow(a byte, b int) byte {
	if a == 0 {
		if b == 0 {
			return 1
		}
		return 0
	}
	e := (int(f.log[a]) * b) % 255
	if e < 0 {
		e += 255
	}
	return f.exp[e]
}

// lane is the set of machine word widths the wide-lane kernels below operate
// over. Go has no native 128-bit integer, so only 32- and 64-bit words are
// supported here.
type lane interface{ ~uint32 | ~uint64 }

func repeatByte[W lane](b byte) W {
	v := uint64(b)
	v |= v << 8
	v |= v << 16
	v |= v << 32
	return W(v)
}

// mulWideLanes multiplies a and b as independent GF(256) values packed one
// per byte lane of a machine word, branch-free, so that it vectorizes
// (auto or otherwise) across the lanes. It is the wide-word analogue of Mul,
// used by the slicing/LUT syndrome and roots engines to evaluate several
// generator roots per Horner step.
func mulWideLanes[W lane](a, b W, poly1 byte) W {
	rep7f := repeatByte[W](0x7f)
	rep80 := repeatByte[W](0x80)
	rep01 := repeatByte[W](0x01)
	polyw := repeatByte[W](poly1)

	var r W
	for i := int(7); i >= 0; i-- {
		m := r & rep80
		m -= m >> 7
		r = ((r & rep7f) << 1) ^ (polyw & m)

		n := (a & (rep01 << uint(i))) >> uint(i)
		n = (n << 8) - n
		r ^= b & n
	}
	return r
}

// laneWidthBytes reports how many GF(256) lanes fit in one wide word of
// type W (4 for uint32, 8 for uint64).
func laneWidthBytes[W lane]() int {
	var w W
	return int(unsafe.Sizeof(w))
}

// PolyEvalWide evaluates poly (highest-degree-first, plain bytes, not
// packed) at up to laneWidthBytes[W]() different points simultaneously, one
// point per byte lane of xWide, continuing from seed. It is the wide-word
// analogue of PolyEval, used to compute several syndromes or probe several
// candidate roots per Horner pass instead of one.
func PolyEvalWide[W lane](poly []byte, xWide W, seed W, poly1 byte) W {
	r := seed
	for _, c := range poly {
		r = mulWideLanes[W](r, xWide, poly1)
		r ^= repeatByte[W](c)
	}
	return r
}

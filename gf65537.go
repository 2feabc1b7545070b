package ffrs

import "github.com/pkg/errors"

// fermatPrime is the modulus 2^16+1 used by the NTT-based codec. 65537 is
// prime and has 65536 = 2^16 as the order of its multiplicative group, which
// is what makes power-of-two block sizes usable as NTT lengths.
const fermatPrime = 65537
const fermatGroupOrder = fermatPrime - 1

// Field65537 implements arithmetic over GF(65537) for a caller-supplied
// primitive root. Elements are represented as uint32 in [0,65536]; 32 bits
// are required (not 16) because 65536 itself needs 17 bits; the largest
// product, 65536^2 = 2^32, is one past the uint32 range (see mulMod).
type Field65537 struct {
	Primitive uint32

	exp []uint32 // length fermatPrime; exp[i] = Primitive^i
	log []uint32 // length fermatPrime; log[a] = discrete log of a
}

// NewField65537 builds the exp/log tables for GF(65537) generated by
// primitive. primitive must generate the full multiplicative group (order
// 65536); since that order is a power of two, this holds exactly when
// primitive^32768 != 1, and ErrInvalidField is returned otherwise.
func NewField65537(primitive uint32) (*Field65537, error) {
	if primitive == 0 || primitive >= fermatPrime {
		return nil, errors.Wrapf(ErrInvalidField, "primitive=%d out of range [1,%d)", primitive, fermatPrime)
	}
	f := &Field65537{
		Primitive: primitive,
		exp:       make([]uint32, fermatPrime),
		log:       make([]uint32, fermatPrime),
	}
	f.buildTables()
	if f.exp[fermatGroupOrder/2] == 1 {
		return nil, errors.Wrapf(ErrInvalidField, "primitive=%d does not generate the multiplicative group", primitive)
	}
	return f, nil
}

// mulMod is the conditional-fold multiply: ordinary product mod 2^32, folded
// into [0, fermatPrime) by subtracting the high half from the low half
// (since 2^16 === -1 mod fermatPrime), with one explicit fixup for the
// single case that wraps the uint32 product itself to zero: 65536*65536 =
// 2^32 === 0 (mod 2^32), which would otherwise look like a genuine product
// of zero even though both operands are nonzero and 65536*65536 === 1
// (mod 65537).
func (f *Field65537) mulMod(a, b uint32) uint32 {
	res := a * b
	if res == 0 && a != 0 && b != 0 {
		return 1
	}
	r := int64(res&0xffff) - int64(res>>16)
	if r < 0 {
		r += fermatPrime
	}
	return uint32(r)
}

func (f *Field65537) addMod(a, b uint32) uint32 {
	r := a + b
	if r >= fermatPrime {
		r -= fermatPrime
	}
	return r
}

func (f *Field65537) subMod(a, b uint32) uint32 {
	r := int64(a) - int64(b)
	if r < 0 {
		r += fermatPrime
	}
	return uint32(r)
}

func (f *Field65537) negMod(a uint32) uint32 { return fermatPrime - a }

// buildTables walks the full 65537-long cycle starting at 1. The loop runs
// fermatPrime (65537) times, not fermatGroupOrder (65536): the extra pass
// wraps x back to 1 and overwrites log[1] with the loop's last index, 65536
// -- the multiplicative group order, not the "expected" 0. That overwrite is
// intentional: RSi16's root-of-unity search reads Log(1) to recover the
// group order via exp(div(log(1), blockSize)), a trick that would break if
// log[1] held the conventional discrete log of one.
func (f *Field65537) buildTables() {
	x := uint32(1)
	for i := 0; i < fermatPrime; i++ {
		f.exp[i] = x
		f.log[x] = uint32(i)
		x = f.mulMod(x, f.Primitive)
	}
}

func (f *Field65537) Add(a, b uint32) uint32 { return f.addMod(a, b) }
func (f *Field65537) Sub(a, b uint32) uint32 { return f.subMod(a, b) }
func (f *Field65537) Neg(a uint32) uint32    { return f.negMod(a) }
func (f *Field65537) Mul(a, b uint32) uint32 { return f.mulMod(a, b) }

func (f *Field65537) Div(a, b uint32) uint32 {
	if a == 0 {
		return 0
	}
	r := int(f.log[a]) + fermatGroupOrder - int(f.log[b])
	if r >= fermatGroupOrder {
		r -= fermatGroupOrder
	}
	return f.exp[r]
}

func (f *Field65537) Inv(a uint32) uint32 {
	return f.exp[fermatGroupOrder-int(f.log[a])]
}

// Exp returns Primitive^i, reducing i mod the group order so out-of-range
// exponents (including the group order itself) don't panic.
func (f *Field65537) Exp(i int) uint32 {
	i %= fermatGroupOrder
	if i < 0 {
		i += fermatGroupOrder
	}
	return f.exp[i]
}

func (f *Field65537) Log(a uint32) uint32 { return f.log[a] }

// Pow computes a^b via the scaled-log form.
func (f *Field65537) Pow(a uint32, b int) uint32 {
	if a == 0 {
		if b == 0 {
			return 1
		}
		return 0
	}
	e := (uint64(f.log[a]) * uint64(uint32(b))) % fermatGroupOrder
	return f.exp[e]
}

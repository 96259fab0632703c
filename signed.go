package bitnum

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// Signed is an integer in two's complement form, treated as an infinite bit
// stream that is eventually constant. A Signed is either a constant stream
// (all zeros == 0, all ones == -1) or an SBits.
//
// The zero value is 0. Signed is a value type; all operations return new
// values and share structure with their operands.
type Signed struct {
	sign Bit
	bits *SBits
}

var (
	SignedZero   = Signed{}
	SignedMinus1 = Signed{sign: B1}
	SignedOne    = Signed{bits: edge1}
)

// Constant returns 0 if sign is B0, or -1 if sign is B1.
func Constant(sign Bit) Signed { return Signed{sign: sign & 1} }

// NonConstant wraps an SBits stream. A nil stream is treated as zero.
func NonConstant(s *SBits) Signed { return Signed{bits: s} }

func SignedFrom64(v int64) Signed {
	m, sign := uint64(v), B0
	if v < 0 {
		m, sign = ^m, B1
	}
	out := Signed{sign: sign}
	for i := bits.Len64(m) - 1; i >= 0; i-- {
		out = Cons(Bit((m>>uint(i))&1)^sign, out)
	}
	return out
}

func SignedFromBigInt(v *big.Int) Signed {
	m, sign := v, B0
	if v.Sign() < 0 {
		m, sign = new(big.Int).Not(v), B1
	}
	out := Signed{sign: sign}
	for i := m.BitLen() - 1; i >= 0; i-- {
		out = Cons(Bit(m.Bit(i))^sign, out)
	}
	return out
}

// SignedFromString creates a Signed from a decimal string.
func SignedFromString(s string) (out Signed, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, fmt.Errorf("bitnum: signed string %q invalid", s)
	}
	return SignedFromBigInt(b), nil
}

// Cons returns 2*rest + lsb.
//
// When rest is constant and lsb matches it, the result is the same constant
// (2*0+0 == 0, 2*-1+1 == -1) and is returned as such, so that every integer
// has exactly one representation. The other two constant cases become
// Edge(B1) == 1 and Edge(B0) == -2.
func Cons(lsb Bit, rest Signed) Signed {
	if rest.bits != nil {
		return Signed{bits: SBitCons(lsb, rest.bits)}
	}
	if lsb == rest.sign {
		return rest
	}
	return Signed{bits: Edge(lsb)}
}

func (z Signed) IsConstant() bool { return z.bits == nil }

func (z Signed) IsZero() bool { return z.bits == nil && z.sign == B0 }

// Bits returns the underlying stream, or nil if z is constant.
func (z Signed) Bits() *SBits { return z.bits }

// SignBit returns the bit that repeats forever at the top of z: B1 if z is
// negative, B0 otherwise.
func (z Signed) SignBit() Bit {
	if z.bits == nil {
		return z.sign
	}
	return z.bits.SignBit()
}

// Sign returns -1, 0 or 1.
func (z Signed) Sign() int {
	if z.SignBit() == B1 {
		return -1
	} else if z.bits == nil {
		return 0
	}
	return 1
}

// Not returns the one's complement of z, -z-1.
func (z Signed) Not() Signed {
	if z.bits == nil {
		return Signed{sign: z.sign.Not()}
	}
	return Signed{bits: z.bits.Not()}
}

// Head returns the least significant bit of z.
func (z Signed) Head() Bit {
	if z.bits == nil {
		return z.sign
	}
	return z.bits.bit
}

// Tail returns z >> 1 (arithmetic shift).
func (z Signed) Tail() Signed {
	switch {
	case z.bits == nil:
		return z
	case z.bits.kind == SEdge:
		return Signed{sign: z.bits.bit.Not()}
	default:
		return Signed{bits: z.bits.rest}
	}
}

// Bit returns the value of the i'th bit of the two's complement
// representation of z.
func (z Signed) Bit(i uint) Bit {
	for ; i > 0 && z.bits != nil; i-- {
		z = z.Tail()
	}
	return z.Head()
}

// BitLen returns the number of bits before the infinitely repeated sign bit.
// For non-negative z this is the same as big.Int.BitLen; for negative z it is
// the bit length of -z-1.
func (z Signed) BitLen() int {
	if z.bits == nil {
		return 0
	}
	return z.bits.BitLen()
}

func (z Signed) Equal(n Signed) bool {
	if z.bits == nil || n.bits == nil {
		return z.bits == n.bits && z.sign == n.sign
	}
	return z.bits.Equal(n.bits)
}

// IntoBigInt copies z into b, allowing you to retain and recycle memory.
func (z Signed) IntoBigInt(b *big.Int) {
	if z.bits == nil {
		if z.sign == B1 {
			b.SetInt64(-1)
		} else {
			b.SetInt64(0)
		}
		return
	}

	sign := z.bits.SignBit()

	// Build the magnitude of z (or of ^z when negative) directly into words,
	// then flip back.
	n := z.bits.BitLen()
	words := b.Bits()
	wn := (n + bits.UintSize - 1) / bits.UintSize
	if cap(words) < wn {
		words = make([]big.Word, wn)
	} else {
		words = words[:wn]
		for i := range words {
			words[i] = 0
		}
	}

	i := 0
	for node := z.bits; node != nil; node = node.rest {
		if node.bit^sign == B1 {
			words[i/bits.UintSize] |= 1 << uint(i%bits.UintSize)
		}
		i++
	}
	b.SetBits(words)
	if sign == B1 {
		b.Not(b)
	}
}

func (z Signed) AsBigInt() *big.Int {
	var v big.Int
	z.IntoBigInt(&v)
	return &v
}

// AsInt64 truncates z to fit in an int64. Values outside the range will
// wrap. See IsInt64() if you want to check before you convert.
func (z Signed) AsInt64() int64 {
	var out uint64
	i := uint(0)
	for node := z.bits; node != nil && i < 64; node = node.rest {
		out |= uint64(node.bit) << i
		i++
	}
	if z.SignBit() == B1 && i < 64 {
		out |= ^uint64(0) << i
	}
	return int64(out)
}

// IsInt64 reports whether z can be represented as an int64.
func (z Signed) IsInt64() bool { return z.BitLen() < 64 }

func (z Signed) String() string {
	if z.IsInt64() {
		return strconv.FormatInt(z.AsInt64(), 10)
	}
	return z.AsBigInt().String()
}

func (z Signed) Format(s fmt.State, c rune) {
	z.AsBigInt().Format(s, c)
}

func (z Signed) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

func (z *Signed) UnmarshalText(bts []byte) (err error) {
	v, err := SignedFromString(string(bts))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

func (z Signed) MarshalJSON() ([]byte, error) {
	return []byte(`"` + z.String() + `"`), nil
}

func (z *Signed) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("bitnum: signed invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := SignedFromString(string(bts))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

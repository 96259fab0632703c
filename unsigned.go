package bitnum

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// Unsigned is a non-negative integer: either zero or a UBits tree. The zero
// value is 0.
//
// Unsigned is a value type; all operations return new values and share
// structure with their operands.
type Unsigned struct {
	bits *UBits
}

var UnsignedZero Unsigned

// Pos wraps a positive tree. A nil tree is treated as zero.
func Pos(b *UBits) Unsigned { return Unsigned{bits: b} }

func UnsignedFrom64(v uint64) (out Unsigned) {
	if v == 0 {
		return out
	}
	acc := oneBits
	for i := bits.Len64(v) - 2; i >= 0; i-- {
		acc = ubit(Bit((v>>uint(i))&1), acc)
	}
	return Unsigned{bits: acc}
}

// UnsignedFromBigInt creates an Unsigned from a big.Int. Negative values
// cannot be represented; they return zero and set accurate to 'false'.
func UnsignedFromBigInt(v *big.Int) (out Unsigned, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	} else if v.Sign() == 0 {
		return out, true
	}

	acc := oneBits
	for i := v.BitLen() - 2; i >= 0; i-- {
		acc = ubit(Bit(v.Bit(i)), acc)
	}
	return Unsigned{bits: acc}, true
}

// UnsignedFromString creates an Unsigned from a decimal string.
func UnsignedFromString(s string) (out Unsigned, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, fmt.Errorf("bitnum: unsigned string %q invalid", s)
	}
	out, accurate := UnsignedFromBigInt(b)
	if !accurate {
		return out, fmt.Errorf("bitnum: unsigned string %q is negative", s)
	}
	return out, nil
}

func (u Unsigned) IsZero() bool { return u.bits == nil }

// Bits returns the underlying tree, or nil if u is zero.
func (u Unsigned) Bits() *UBits { return u.bits }

// BitLen returns the length of the absolute value of u in bits. The bit
// length of 0 is 0.
func (u Unsigned) BitLen() int {
	if u.bits == nil {
		return 0
	}
	return u.bits.BitLen()
}

func (u Unsigned) Inc() Unsigned {
	if u.bits == nil {
		return Unsigned{bits: oneBits}
	}
	return Unsigned{bits: u.bits.Succ()}
}

func (u Unsigned) Equal(n Unsigned) bool {
	if u.bits == nil || n.bits == nil {
		return u.bits == n.bits
	}
	return u.bits.Equal(n.bits)
}

// Cmp compares u to n and returns -1, 0 or 1.
func (u Unsigned) Cmp(n Unsigned) int {
	ul, nl := u.BitLen(), n.BitLen()
	if ul < nl {
		return -1
	} else if ul > nl {
		return 1
	} else if ul == 0 {
		return 0
	}

	// Equal lengths: the most significant differing bit decides, which is the
	// last one seen walking up from the LSB.
	cmp := 0
	for a, b := u.bits, n.bits; a.kind != UOne; a, b = a.rest, b.rest {
		if a.kind != b.kind {
			if a.kind == UBit1 {
				cmp = 1
			} else {
				cmp = -1
			}
		}
	}
	return cmp
}

// IntoBigInt copies u into b, allowing you to retain and recycle memory.
func (u Unsigned) IntoBigInt(b *big.Int) {
	if u.bits == nil {
		b.SetInt64(0)
		return
	}

	n := u.bits.BitLen()
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
	for node := u.bits; ; node = node.rest {
		if node.kind != UBit0 {
			words[i/bits.UintSize] |= 1 << uint(i%bits.UintSize)
		}
		if node.kind == UOne {
			break
		}
		i++
	}
	b.SetBits(words)
}

func (u Unsigned) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsUint64 truncates u to fit in a uint64. See IsUint64() if you want to
// check before you convert.
func (u Unsigned) AsUint64() (out uint64) {
	i := uint(0)
	for node := u.bits; node != nil && i < 64; node = node.rest {
		if node.kind != UBit0 {
			out |= 1 << i
		}
		i++
	}
	return out
}

// IsUint64 reports whether u can be represented as a uint64.
func (u Unsigned) IsUint64() bool { return u.BitLen() <= 64 }

func (u Unsigned) String() string {
	if u.bits == nil {
		return "0"
	}
	if u.IsUint64() {
		return strconv.FormatUint(u.AsUint64(), 10)
	}
	return u.AsBigInt().String()
}

func (u Unsigned) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u Unsigned) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Unsigned) UnmarshalText(bts []byte) (err error) {
	v, err := UnsignedFromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Unsigned) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *Unsigned) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("bitnum: unsigned invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := UnsignedFromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

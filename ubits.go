package bitnum

// UBitsKind identifies which of the three UBits constructors produced a node.
type UBitsKind uint8

const (
	UOne UBitsKind = iota
	UBit0
	UBit1
)

func (k UBitsKind) String() string {
	switch k {
	case UOne:
		return "One"
	case UBit0:
		return "Bit0"
	case UBit1:
		return "Bit1"
	default:
		return "UBitsKind(?)"
	}
}

// UBits is a strictly positive integer stored as a binary tree, least
// significant bit outermost:
//
//	One      == 1
//	Bit0(r)  == 2*r
//	Bit1(r)  == 2*r + 1
//
// UBits nodes are immutable and may be shared freely between values.
type UBits struct {
	kind UBitsKind
	rest *UBits
}

var oneBits = &UBits{kind: UOne}

func One() *UBits { return oneBits }

// Bit0 returns 2*rest. rest must not be nil.
func Bit0(rest *UBits) *UBits { return &UBits{kind: UBit0, rest: rest} }

// Bit1 returns 2*rest+1. rest must not be nil.
func Bit1(rest *UBits) *UBits { return &UBits{kind: UBit1, rest: rest} }

func ubit(b Bit, rest *UBits) *UBits {
	if b == B1 {
		return Bit1(rest)
	}
	return Bit0(rest)
}

func (u *UBits) Kind() UBitsKind { return u.kind }

// Rest returns the node with the least significant bit removed, or nil for
// One.
func (u *UBits) Rest() *UBits { return u.rest }

// Low returns the least significant bit of u.
func (u *UBits) Low() Bit {
	if u.kind == UBit0 {
		return B0
	}
	return B1
}

func (u *UBits) Succ() *UBits {
	switch u.kind {
	case UOne:
		return Bit0(oneBits)
	case UBit0:
		return Bit1(u.rest)
	default:
		return Bit0(u.rest.Succ())
	}
}

// BitLen returns the number of bits needed to write u, including the implicit
// leading One.
func (u *UBits) BitLen() int {
	n := 1
	for ; u.kind != UOne; u = u.rest {
		n++
	}
	return n
}

func (u *UBits) Equal(v *UBits) bool {
	for {
		if u == v {
			return true
		}
		if u.kind != v.kind {
			return false
		}
		if u.kind == UOne {
			return true
		}
		u, v = u.rest, v.rest
	}
}

func (u *UBits) Or(v *UBits) *UBits {
	switch {
	case u.kind == UOne && v.kind == UOne:
		return oneBits
	case u.kind == UOne:
		return Bit1(v.rest)
	case v.kind == UOne:
		return Bit1(u.rest)
	case u.kind == UBit0 && v.kind == UBit0:
		return Bit0(u.rest.Or(v.rest))
	default:
		return Bit1(u.rest.Or(v.rest))
	}
}

func (u *UBits) And(v *UBits) Unsigned {
	switch {
	case u.kind == UOne && v.kind == UOne:
		return Unsigned{bits: oneBits}
	case u.kind == UOne:
		return unsignedLow(v.Low())
	case v.kind == UOne:
		return unsignedLow(u.Low())
	default:
		return consUnsigned(u.Low()&v.Low(), u.rest.And(v.rest))
	}
}

// AndNot returns u &^ v.
func (u *UBits) AndNot(v *UBits) Unsigned {
	switch {
	case u.kind == UOne:
		return unsignedLow(v.Low().Not())
	case v.kind == UOne:
		return Unsigned{bits: Bit0(u.rest)}
	default:
		return consUnsigned(u.Low()&^v.Low(), u.rest.AndNot(v.rest))
	}
}

func (u *UBits) Xor(v *UBits) Unsigned {
	switch {
	case u.kind == UOne && v.kind == UOne:
		return Unsigned{}
	case u.kind == UOne:
		return Unsigned{bits: ubit(v.Low().Not(), v.rest)}
	case v.kind == UOne:
		return Unsigned{bits: ubit(u.Low().Not(), u.rest)}
	default:
		return consUnsigned(u.Low()^v.Low(), u.rest.Xor(v.rest))
	}
}

// unsignedLow returns 1 if b is set, otherwise 0.
func unsignedLow(b Bit) Unsigned {
	if b == B1 {
		return Unsigned{bits: oneBits}
	}
	return Unsigned{}
}

// consUnsigned returns 2*rest + low.
func consUnsigned(low Bit, rest Unsigned) Unsigned {
	if rest.bits == nil {
		return unsignedLow(low)
	}
	return Unsigned{bits: ubit(low, rest.bits)}
}

package bitnum

// Inc returns z + 1.
func (z Signed) Inc() Signed {
	if z.bits == nil && z.sign == B1 {
		return SignedZero
	}
	if z.Head() == B0 {
		return Cons(B1, z.Tail())
	}
	return Cons(B0, z.Tail().Inc())
}

// Dec returns z - 1.
func (z Signed) Dec() Signed {
	if z.bits == nil && z.sign == B0 {
		return SignedMinus1
	}
	if z.Head() == B1 {
		return Cons(B0, z.Tail())
	}
	return Cons(B1, z.Tail().Dec())
}

// Neg returns -z.
func (z Signed) Neg() Signed {
	return z.Not().Inc()
}

func (z Signed) Abs() Signed {
	if z.SignBit() == B1 {
		return z.Neg()
	}
	return z
}

// czadd returns z + carryLow - carryHigh.
func czadd(carryLow, carryHigh Bit, z Signed) Signed {
	switch {
	case carryLow == carryHigh:
		return z
	case carryLow == B1:
		return z.Inc()
	default:
		return z.Dec()
	}
}

// CAdd returns a + b + carry.
//
// Both streams are walked together one bit at a time, as a ripple-carry
// adder. Once either operand is a constant c (0 or -1), the remaining sum is
// the other operand plus carry plus c, which czadd handles without further
// bit-by-bit work.
func CAdd(a, b Signed, carry Bit) Signed {
	if b.bits == nil {
		return czadd(carry, b.sign, a)
	} else if a.bits == nil {
		return czadd(carry, a.sign, b)
	}

	sum, next := fullAdd(a.bits.bit, b.bits.bit, carry)
	return Cons(sum, CAdd(a.Tail(), b.Tail(), next))
}

func (z Signed) Add(n Signed) Signed { return CAdd(z, n, B0) }

func (z Signed) Sub(n Signed) Signed { return CAdd(z, n.Neg(), B0) }

// Mul returns z * n using shift-and-add over the bits of n.
func (z Signed) Mul(n Signed) Signed {
	if n.bits == nil {
		if n.sign == B1 {
			return z.Neg()
		}
		return SignedZero
	}

	acc := Cons(B0, z.Mul(n.Tail()))
	if n.bits.bit == B1 {
		acc = acc.Add(z)
	}
	return acc
}

// Cmp compares z to n and returns -1, 0 or 1.
func (z Signed) Cmp(n Signed) int {
	return z.Sub(n).Sign()
}

// Lsh returns z << n.
func (z Signed) Lsh(n uint) Signed {
	for ; n > 0 && !z.IsZero(); n-- {
		z = Cons(B0, z)
	}
	return z
}

// Rsh returns z >> n (arithmetic shift).
func (z Signed) Rsh(n uint) Signed {
	for ; n > 0 && z.bits != nil; n-- {
		z = z.Tail()
	}
	return z
}

package bitnum

func (u Unsigned) Or(n Unsigned) Unsigned {
	if u.bits == nil {
		return n
	} else if n.bits == nil {
		return u
	}
	return Unsigned{bits: u.bits.Or(n.bits)}
}

func (u Unsigned) And(n Unsigned) Unsigned {
	if u.bits == nil || n.bits == nil {
		return Unsigned{}
	}
	return u.bits.And(n.bits)
}

// AndNot returns u &^ n.
func (u Unsigned) AndNot(n Unsigned) Unsigned {
	if u.bits == nil || n.bits == nil {
		return u
	}
	return u.bits.AndNot(n.bits)
}

func (u Unsigned) Xor(n Unsigned) Unsigned {
	if u.bits == nil {
		return n
	} else if n.bits == nil {
		return u
	}
	return u.bits.Xor(n.bits)
}

// Bit returns the value of the i'th bit of u, where bit 0 is the least
// significant. Bits past the bit length of u are B0.
func (u Unsigned) Bit(i uint) Bit {
	node := u.bits
	for ; node != nil && i > 0; i-- {
		node = node.rest
	}
	if node == nil {
		return B0
	}
	return node.Low()
}

// Lsh returns u << n.
func (u Unsigned) Lsh(n uint) Unsigned {
	if u.bits == nil {
		return u
	}
	out := u.bits
	for ; n > 0; n-- {
		out = Bit0(out)
	}
	return Unsigned{bits: out}
}

// Rsh returns u >> n.
func (u Unsigned) Rsh(n uint) Unsigned {
	out := u.bits
	for ; out != nil && n > 0; n-- {
		out = out.rest
	}
	return Unsigned{bits: out}
}

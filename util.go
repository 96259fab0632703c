package bitnum

type RandSource interface {
	Uint64() uint64
}

// RandUnsigned generates a random Unsigned in the range [0, 1<<n) from an
// external source.
func RandUnsigned(source RandSource, n uint) (out Unsigned) {
	var word uint64
	for i := n; i > 0; i-- {
		if (n-i)%64 == 0 {
			word = source.Uint64()
		}
		out = consUnsigned(Bit(word&1), out)
		word >>= 1
	}
	return out
}

// RandSigned generates a random Signed in the range [-(1<<n), 1<<n) from an
// external source.
func RandSigned(source RandSource, n uint) (out Signed) {
	word := source.Uint64()
	out = Constant(Bit(word & 1))
	word >>= 1
	for i := uint(1); i <= n; i++ {
		if i%64 == 0 {
			word = source.Uint64()
		}
		out = Cons(Bit(word&1), out)
		word >>= 1
	}
	return out
}

func LargerUnsigned(a, b Unsigned) Unsigned {
	if a.Cmp(b) < 0 {
		return b
	}
	return a
}

func SmallerUnsigned(a, b Unsigned) Unsigned {
	if a.Cmp(b) > 0 {
		return b
	}
	return a
}

// DifferenceSigned subtracts the smaller of a and b from the larger.
func DifferenceSigned(a, b Signed) Signed {
	return a.Sub(b).Abs()
}

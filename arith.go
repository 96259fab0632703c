package bitnum

// fullAdd sums three bits, returning the low bit of the sum and the carry.
func fullAdd(a, b, c Bit) (sum, carry Bit) {
	s := a + b + c
	return s & 1, s >> 1
}

package bitnum

// SetBitIter lazily yields the indices of the one bits of an Unsigned in
// strictly increasing order. Call Reset to start again from the least
// significant bit.
//
//	it := u.SetBits()
//	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
//		...
//	}
//
type SetBitIter struct {
	start *UBits
	next  *UBits
	idx   uint
}

// SetBits returns an iterator over the indices of the one bits of u.
func (u Unsigned) SetBits() *SetBitIter {
	return &SetBitIter{start: u.bits, next: u.bits}
}

// Next returns the next set bit index. ok is false once the sequence is
// exhausted.
func (it *SetBitIter) Next() (idx uint, ok bool) {
	for it.next != nil {
		node := it.next
		idx = it.idx
		it.next = node.rest
		it.idx++
		if node.kind != UBit0 {
			return idx, true
		}
	}
	return 0, false
}

func (it *SetBitIter) Reset() {
	it.next = it.start
	it.idx = 0
}

// AppendSetBits appends the indices of the one bits of u to dst.
func (u Unsigned) AppendSetBits(dst []uint) []uint {
	it := u.SetBits()
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		dst = append(dst, idx)
	}
	return dst
}

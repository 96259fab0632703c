package bitnum

// SBitsKind identifies which of the two SBits constructors produced a node.
type SBitsKind uint8

const (
	SEdge SBitsKind = iota
	SBit
)

func (k SBitsKind) String() string {
	switch k {
	case SEdge:
		return "Edge"
	case SBit:
		return "Bit"
	default:
		return "SBitsKind(?)"
	}
}

// SBits is a two's complement bit stream that is not all zeros or all ones,
// stored least significant bit outermost.
//
// Edge(b) is the stream whose bit 0 is b and whose bits 1 and up are all !b,
// so Edge(B1) == 1 and Edge(B0) == -2. Bit(lsb, rest) == 2*rest + lsb.
//
// Neither constructor can produce 0 or -1; those are only represented by a
// constant Signed.
type SBits struct {
	kind SBitsKind
	bit  Bit
	rest *SBits
}

var (
	edge0 = &SBits{kind: SEdge, bit: B0}
	edge1 = &SBits{kind: SEdge, bit: B1}
)

func Edge(b Bit) *SBits {
	if b == B1 {
		return edge1
	}
	return edge0
}

// SBitCons returns 2*rest + lsb. rest must not be nil.
func SBitCons(lsb Bit, rest *SBits) *SBits {
	return &SBits{kind: SBit, bit: lsb, rest: rest}
}

func (s *SBits) Kind() SBitsKind { return s.kind }

// Low returns the least significant bit of s.
func (s *SBits) Low() Bit { return s.bit }

// Rest returns the stream with the least significant bit removed, or nil for
// an Edge.
func (s *SBits) Rest() *SBits { return s.rest }

// SignBit returns the bit repeated forever past the explicit bits of s.
func (s *SBits) SignBit() Bit {
	for s.kind != SEdge {
		s = s.rest
	}
	return s.bit.Not()
}

// Not returns the one's complement of s. The complement of a stream that is
// neither 0 nor -1 is neither 0 nor -1, so the result is still an SBits.
func (s *SBits) Not() *SBits {
	if s.kind == SEdge {
		return Edge(s.bit.Not())
	}
	return SBitCons(s.bit.Not(), s.rest.Not())
}

// BitLen returns the number of explicit bits before the constant tail,
// counting the Edge bit.
func (s *SBits) BitLen() int {
	n := 1
	for ; s.kind != SEdge; s = s.rest {
		n++
	}
	return n
}

func (s *SBits) Equal(n *SBits) bool {
	for {
		if s == n {
			return true
		}
		if s.kind != n.kind || s.bit != n.bit {
			return false
		}
		if s.kind == SEdge {
			return true
		}
		s, n = s.rest, n.rest
	}
}

package bitnum

// Bit is a single binary digit.
type Bit uint8

const (
	B0 Bit = 0
	B1 Bit = 1
)

func BitFromBool(v bool) Bit {
	if v {
		return B1
	}
	return B0
}

// Not toggles b.
func (b Bit) Not() Bit { return b ^ 1 }

func (b Bit) IsSet() bool { return b == B1 }

func (b Bit) String() string {
	if b == B1 {
		return "1"
	}
	return "0"
}

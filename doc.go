/*
Package bitnum provides arbitrary-precision integers stored as immutable
binary trees, one node per bit, least significant bit first.

There are two independent families:

	UBits / Unsigned   positive trees plus zero, with bitwise operations
	SBits / Signed     two's complement streams, with arithmetic

Unsigned and Signed are value types; all operations return new values, and
results share structure with their operands. Nothing is ever mutated, so
values may be read from multiple goroutines without locking.

Simple example:

	a := SignedFrom64(-7)
	b := SignedFrom64(6)
	fmt.Println(a.Mul(b))
	// Output: -42

	u := UnsignedFrom64(11)
	fmt.Println(u.AppendSetBits(nil))
	// Output: [0 1 3]

Unsigned and Signed can be created from a variety of sources:

	UnsignedFrom64(v uint64) Unsigned
	UnsignedFromBigInt(v *big.Int) (out Unsigned, accurate bool)
	UnsignedFromString(s string) (out Unsigned, err error)
	SignedFrom64(v int64) Signed
	SignedFromBigInt(v *big.Int) Signed
	SignedFromString(s string) (out Signed, err error)

Arithmetic is done entirely on the bit trees; big.Int is only used to convert
in and out.

Unsigned and Signed support the following formatting and marshalling
interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package bitnum

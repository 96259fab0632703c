package bitnum

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestFullAdd(t *testing.T) {
	for _, a := range []Bit{B0, B1} {
		for _, b := range []Bit{B0, B1} {
			for _, c := range []Bit{B0, B1} {
				t.Run(fmt.Sprintf("%s+%s+%s", a, b, c), func(t *testing.T) {
					tt := assert.WrapTB(t)
					sum, carry := fullAdd(a, b, c)
					total := int(a) + int(b) + int(c)
					tt.MustEqual(Bit(total&1), sum)
					tt.MustEqual(Bit(total>>1), carry)
				})
			}
		}
	}
}

func TestBitNot(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(B1, B0.Not())
	tt.MustEqual(B0, B1.Not())
	tt.MustEqual(B1, BitFromBool(true))
	tt.MustEqual(B0, BitFromBool(false))
	tt.MustAssert(B1.IsSet())
	tt.MustAssert(!B0.IsSet())
}

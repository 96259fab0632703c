package bitnum

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
)

var (
	fuzzIterations  = fuzzDefaultIterations
	fuzzBits        = fuzzDefaultBits
	fuzzOpsActive   = allFuzzOps
	fuzzTypesActive = allFuzzTypes
	fuzzSeed        int64

	globalRNG *rand.Rand
)

var (
	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigInt64 = new(big.Int).SetInt64(1<<63 - 1)
	minBigInt64 = new(big.Int).SetInt64(-1 << 63)
)

// treeDumper shows the shape of a tree rather than its String() form.
var treeDumper = spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                12,
	DisableMethods:          true,
	DisablePointerAddresses: true,
}

func TestMain(m *testing.M) {
	var ops StringList
	var types StringList

	flag.IntVar(&fuzzIterations, "bitnum.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.IntVar(&fuzzBits, "bitnum.fuzzbits", fuzzBits, "Maximum bit length of fuzzed operands")
	flag.Int64Var(&fuzzSeed, "bitnum.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "bitnum.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Var(&types, "bitnum.fuzztype", "Fuzz type (unsigned, signed) (can pass multiple)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	if len(types) > 0 {
		fuzzTypesActive = nil
		for _, t := range types {
			fuzzTypesActive = append(fuzzTypesActive, fuzzType(t))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("max bitlen:", fuzzBits)

	code := m.Run()
	os.Exit(code)
}

var u64 = UnsignedFrom64
var i64 = SignedFrom64

func bigs(s string) *big.Int {
	v, ok := new(big.Int).SetString(strings.Replace(s, " ", "", -1), 0)
	if !ok {
		panic(fmt.Errorf("bitnum: big string %q invalid", s))
	}
	return v
}

func us(s string) Unsigned {
	return accUnsignedFromBigInt(bigs(s))
}

func ss(s string) Signed {
	return SignedFromBigInt(bigs(s))
}

func accUnsignedFromBigInt(b *big.Int) Unsigned {
	u, acc := UnsignedFromBigInt(b)
	if !acc {
		panic(fmt.Errorf("bitnum: inaccurate conversion to Unsigned in fuzz tester for %s", b))
	}
	return u
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// randomBigUnsigned returns a non-negative big.Int of up to maxBits bits. The
// bit length is chosen first so that small values turn up as often as large
// ones.
func randomBigUnsigned(rng *rand.Rand, maxBits int) *big.Int {
	if rng == nil {
		rng = globalRNG
	}

	var v = new(big.Int)
	bits := rng.Intn(maxBits+1) - 1 // +1 for "0 bits"
	if bits < 0 {
		return v // "-1 bits" == "0"
	}
	v.Rand(rng, new(big.Int).Lsh(big1, uint(bits)))
	v.SetBit(v, bits, 1)
	return v
}

func randomBigSigned(rng *rand.Rand, maxBits int) *big.Int {
	if rng == nil {
		rng = globalRNG
	}
	v := randomBigUnsigned(rng, maxBits)
	if rng.Intn(2) == 1 {
		// Not rather than Neg so that -1 and -(1<<n) are as likely as 0 and
		// (1<<n)-1.
		v.Not(v)
	}
	return v
}

package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	bitnum "github.com/shabbyrobe/go-bitnum"
)

// This is a cheap-and-nasty tool for poking at the shape of the trees built
// by bitnum. It evaluates a single operation, prints the result along with
// its bit stream (most significant bit on the left, repeating sign bits
// faded out), then dumps the raw tree.

const usage = `Bit tree explorer

Usage: <unsigned|signed> <op> <a> [<b>]

Unsigned ops: or and andnot xor lsh rsh bit setbits inc show
Signed ops:   add sub mul neg not inc dec lsh rsh bit tail show`

var (
	explicitBit = color.New(color.FgGreen).SprintFunc()
	edgeBit     = color.New(color.FgYellow, color.Bold).SprintFunc()
	tailBit     = color.New(color.Faint).SprintFunc()
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 4 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	numType, op := os.Args[1], os.Args[2]
	args := os.Args[3:]

	if numType == "unsigned" {
		return runUnsigned(op, args)
	} else if numType == "signed" {
		return runSigned(op, args)
	} else {
		return fmt.Errorf("numtype must be unsigned or signed")
	}
}

func runUnsigned(op string, args []string) error {
	a, err := bitnum.UnsignedFromString(args[0])
	if err != nil {
		return err
	}

	binary := func() (bitnum.Unsigned, error) {
		if len(args) < 2 {
			return bitnum.Unsigned{}, fmt.Errorf("op %q needs two operands", op)
		}
		return bitnum.UnsignedFromString(args[1])
	}
	count := func() (uint, error) {
		if len(args) < 2 {
			return 0, fmt.Errorf("op %q needs a count", op)
		}
		n, err := strconv.ParseUint(args[1], 10, 0)
		return uint(n), err
	}

	var result bitnum.Unsigned

	switch op {
	case "or", "and", "andnot", "xor":
		b, err := binary()
		if err != nil {
			return err
		}
		switch op {
		case "or":
			result = a.Or(b)
		case "and":
			result = a.And(b)
		case "andnot":
			result = a.AndNot(b)
		default:
			result = a.Xor(b)
		}

	case "lsh", "rsh":
		n, err := count()
		if err != nil {
			return err
		}
		if op == "lsh" {
			result = a.Lsh(n)
		} else {
			result = a.Rsh(n)
		}

	case "bit":
		n, err := count()
		if err != nil {
			return err
		}
		fmt.Printf("bit %d of %d == %s\n", n, a, a.Bit(n))
		return nil

	case "setbits":
		fmt.Printf("set bits of %d (%b): %v\n", a, a, a.AppendSetBits(nil))
		return nil

	case "inc":
		result = a.Inc()

	case "show":
		result = a

	default:
		return fmt.Errorf("unknown unsigned op %q", op)
	}

	fmt.Printf("result: %d\n", result)
	fmt.Printf("bits:   %s\n", renderUnsigned(result))
	dumper.Dump(result)
	return nil
}

func runSigned(op string, args []string) error {
	a, err := bitnum.SignedFromString(args[0])
	if err != nil {
		return err
	}

	binary := func() (bitnum.Signed, error) {
		if len(args) < 2 {
			return bitnum.Signed{}, fmt.Errorf("op %q needs two operands", op)
		}
		return bitnum.SignedFromString(args[1])
	}
	count := func() (uint, error) {
		if len(args) < 2 {
			return 0, fmt.Errorf("op %q needs a count", op)
		}
		n, err := strconv.ParseUint(args[1], 10, 0)
		return uint(n), err
	}

	var result bitnum.Signed

	switch op {
	case "add", "sub", "mul":
		b, err := binary()
		if err != nil {
			return err
		}
		switch op {
		case "add":
			result = a.Add(b)
		case "sub":
			result = a.Sub(b)
		default:
			result = a.Mul(b)
		}

	case "lsh", "rsh":
		n, err := count()
		if err != nil {
			return err
		}
		if op == "lsh" {
			result = a.Lsh(n)
		} else {
			result = a.Rsh(n)
		}

	case "bit":
		n, err := count()
		if err != nil {
			return err
		}
		fmt.Printf("bit %d of %d == %s\n", n, a, a.Bit(n))
		return nil

	case "neg":
		result = a.Neg()
	case "not":
		result = a.Not()
	case "inc":
		result = a.Inc()
	case "dec":
		result = a.Dec()
	case "tail":
		result = a.Tail()
	case "show":
		result = a

	default:
		return fmt.Errorf("unknown signed op %q", op)
	}

	fmt.Printf("result: %d\n", result)
	fmt.Printf("bits:   %s\n", renderSigned(result))
	dumper.Dump(result)
	return nil
}

func renderUnsigned(u bitnum.Unsigned) string {
	node := u.Bits()
	if node == nil {
		return tailBit("...0000")
	}

	var parts []string
	for ; node.Kind() != bitnum.UOne; node = node.Rest() {
		parts = append(parts, explicitBit(node.Low().String()))
	}
	parts = append(parts, edgeBit("1"), tailBit("...0000"))
	return joinReversed(parts)
}

func renderSigned(z bitnum.Signed) string {
	sign := z.SignBit().String()
	tail := tailBit("..." + strings.Repeat(sign, 4))

	node := z.Bits()
	if node == nil {
		return tail
	}

	var parts []string
	for ; node.Kind() != bitnum.SEdge; node = node.Rest() {
		parts = append(parts, explicitBit(node.Low().String()))
	}
	parts = append(parts, edgeBit(node.Low().String()), tail)
	return joinReversed(parts)
}

func joinReversed(parts []string) string {
	var sb strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		sb.WriteString(parts[i])
	}
	return sb.String()
}

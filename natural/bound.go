package natural

import (
	"math/big"
	"strconv"
	"strings"
)

// maxPow2 limits the exponents accepted by ParseBound.
const maxPow2 = 1 << 24

// ParseBound evaluates an upper bound expression. An expression is a sum or
// difference of terms, each a decimal number, a 0x prefixed hexadecimal
// number or a power of two written 2^N:
//
//  18446744073709551615
//  0xff
//  2^255-19
//  2^64 - 1
//
// The result is not checked against any width; NewDescriptor does that.
func ParseBound(s string) (*big.Int, error) {
	expr := strings.Join(strings.Fields(s), "")
	if expr == "" {
		return nil, FormatError.New("empty bound")
	}

	total := new(big.Int)
	sign := 1

	for {
		end := strings.IndexAny(expr, "+-")
		if end < 0 {
			end = len(expr)
		}

		x, err := parseTerm(expr[:end])
		if err != nil {
			return nil, err
		}

		if sign < 0 {
			total.Sub(total, x)
		} else {
			total.Add(total, x)
		}

		if end == len(expr) {
			return total, nil
		}

		if expr[end] == '-' {
			sign = -1
		} else {
			sign = 1
		}

		expr = expr[end+1:]
	}
}

func parseTerm(term string) (*big.Int, error) {
	switch {
	case term == "":
		return nil, FormatError.New("missing term")
	case strings.HasPrefix(term, "2^"):
		n, err := strconv.ParseUint(term[2:], 10, 32)
		if err != nil {
			return nil, FormatError.New("invalid exponent in %q", term)
		}

		if n > maxPow2 {
			return nil, FormatError.New("exponent too large in %q", term)
		}

		return new(big.Int).Lsh(big.NewInt(1), uint(n)), nil
	case strings.HasPrefix(term, "0x") || strings.HasPrefix(term, "0X"):
		x, err := parseDigits(term[2:], 16)
		if err != nil {
			return nil, FormatError.Wrap(err)
		}

		return x, nil
	}

	x, err := parseDigits(term, 10)
	if err != nil {
		return nil, FormatError.Wrap(err)
	}

	return x, nil
}

package natural

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/exp/constraints"
)

// FromLiteral converts a native integer into a value of type d.
func FromLiteral[I constraints.Integer](d *Descriptor, x I) (Value, error) {
	if x < 0 {
		return Value{}, FormatError.New("negative literal for %s: %d", d, x)
	}

	return d.checkRange(new(big.Int).SetUint64(uint64(x)))
}

// FromBig converts x into a value of type d. x is copied.
func (d *Descriptor) FromBig(x *big.Int) (Value, error) {
	if x == nil {
		return Value{}, FormatError.New("nil literal for %s", d)
	}

	return d.checkRange(new(big.Int).Set(x))
}

// Parse converts a string of decimal digits into a value of type d.
func (d *Descriptor) Parse(s string) (Value, error) {
	return d.parse(s, 10)
}

// ParseHex converts a string of hexadecimal digits, with or without a 0x
// prefix, into a value of type d.
func (d *Descriptor) ParseHex(s string) (Value, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}

	return d.parse(s, 16)
}

func (d *Descriptor) parse(s string, base int) (Value, error) {
	x, err := parseDigits(s, base)
	if err != nil {
		return Value{}, FormatError.New("%s: %v", d, err)
	}

	return d.checkRange(x)
}

// parseDigits accepts only digits of the given base. big.Int.SetString alone
// would also accept signs, underscores and base prefixes.
func parseDigits(s string, base int) (*big.Int, error) {
	if s == "" {
		return nil, errors.New("empty literal")
	}

	for i := 0; i < len(s); i++ {
		if !isDigit(s[i], base) {
			return nil, fmt.Errorf("invalid character %q in literal %q", s[i], s)
		}
	}

	x, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("invalid literal %q", s)
	}

	return x, nil
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	}

	return false
}

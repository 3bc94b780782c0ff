package natural

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBound(t *testing.T) {
	type TC struct {
		name  string
		input string
		value *big.Int
	}

	tcs := []TC{
		{name: "decimal", input: "200", value: big.NewInt(200)},
		{name: "hex", input: "0xff", value: big.NewInt(255)},
		{name: "hex upper", input: "0XFF", value: big.NewInt(255)},
		{name: "pow2", input: "2^8", value: big.NewInt(256)},
		{name: "size", input: "2^64-1", value: new(big.Int).Sub(pow2(64), big.NewInt(1))},
		{name: "spaced", input: " 2^64 - 1 ", value: new(big.Int).Sub(pow2(64), big.NewInt(1))},
		{name: "felem", input: "2^255-19", value: new(big.Int).Sub(pow2(255), big.NewInt(19))},
		{name: "sum", input: "2^8+0x10-1", value: big.NewInt(271)},
		{name: "max uint64", input: "18446744073709551615", value: new(big.Int).Sub(pow2(64), big.NewInt(1))},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			x, err := ParseBound(tc.input)
			require.NoError(t, err)
			require.Equal(t, 0, tc.value.Cmp(x), x.String())
		})
	}
}

func TestParseBoundErrors(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"-1",
		"2^",
		"2^x",
		"2^-1",
		"2^99999999999",
		"0x",
		"0xzz",
		"12a",
		"2^8-",
		"1++1",
		"3^2",
	}

	for i, input := range inputs {
		t.Run(fmt.Sprintf("[%d]%q", i, input), func(t *testing.T) {
			_, err := ParseBound(input)
			require.Error(t, err)
			require.True(t, FormatError.Has(err), err)
		})
	}
}

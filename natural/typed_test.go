package natural_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bounded/natural"
)

type small struct{}

func (small) Descriptor() *natural.Descriptor { return u200 }

type size struct{}

func (size) Descriptor() *natural.Descriptor { return natural.SizeNat }

type Small = natural.Of[small]

type Size = natural.Of[size]

func TestTyped(t *testing.T) {
	a, err := natural.Lit[small](150)
	require.NoError(t, err)

	b, err := natural.Lit[small](60)
	require.NoError(t, err)

	_, err = a.Add(natural.Checked, b)
	require.True(t, natural.ArithmeticBoundsError.Has(err), err)

	c, err := a.Add(natural.Modular, b)
	require.NoError(t, err)
	require.Equal(t, "10", c.String())

	d, err := a.Sub(natural.Checked, b)
	require.NoError(t, err)
	require.Equal(t, "90", d.String())

	e, err := b.Sub(natural.Modular, a)
	require.NoError(t, err)
	require.Equal(t, "110", e.String())

	_, err = c.Mul(natural.Checked, b)
	require.True(t, natural.ArithmeticBoundsError.Has(err), err)

	f, err := c.Mul(natural.Checked, c)
	require.NoError(t, err)
	require.Equal(t, "100", f.String())

	f, err = c.Mul(natural.Modular, b)
	require.NoError(t, err)
	require.Equal(t, "0", f.String())

	q, err := a.Div(natural.Checked, b)
	require.NoError(t, err)
	require.Equal(t, "2", q.String())

	r, err := a.Rem(natural.Modular, b)
	require.NoError(t, err)
	require.Equal(t, "30", r.String())

	var zero Small
	_, err = a.Div(natural.Checked, zero)
	require.True(t, natural.DivisionByZeroError.Has(err), err)

	require.Equal(t, 1, a.Cmp(b))
	require.Equal(t, -1, b.Cmp(a))
	require.True(t, a.Equal(a))
	require.False(t, a.Equal(b))
}

func TestTypedZero(t *testing.T) {
	var z Size

	require.Equal(t, "0", z.String())
	require.Equal(t, make([]byte, 8), z.Bytes())
	require.True(t, z.Value().Valid())
	require.Same(t, natural.SizeNat, z.Value().Descriptor())

	one, err := natural.Lit[size](1)
	require.NoError(t, err)

	v, err := z.Add(natural.Checked, one)
	require.NoError(t, err)
	require.True(t, v.Equal(one))
}

func TestTypedConstruction(t *testing.T) {
	_, err := natural.Lit[small](200)
	require.True(t, natural.OutOfRangeError.Has(err), err)

	_, err = natural.Lit[small](-1)
	require.True(t, natural.FormatError.Has(err), err)

	p, err := natural.ParseOf[small]("199")
	require.NoError(t, err)
	require.Equal(t, []byte{0xc7}, p.Bytes())

	_, err = natural.ParseOf[small]("x")
	require.True(t, natural.FormatError.Has(err), err)

	b, err := natural.BytesOf[small]([]byte{0xc7})
	require.NoError(t, err)
	require.True(t, b.Equal(p))

	_, err = natural.BytesOf[small]([]byte{0xc9})
	require.True(t, natural.OutOfRangeError.Has(err), err)

	w, err := natural.Wrap[small](lit(u200, 5))
	require.NoError(t, err)
	require.Equal(t, "5", w.String())

	_, err = natural.Wrap[size](lit(u200, 5))
	require.True(t, natural.TypeMismatchError.Has(err), err)

	_, err = natural.Wrap[small](natural.Value{})
	require.True(t, natural.TypeMismatchError.Has(err), err)
}

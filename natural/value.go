package natural

import (
	"math/big"
)

// Value is a bounded natural number. Values are immutable and safe to share.
// The zero Value has no type and every operation on it fails.
type Value struct {
	d *Descriptor
	m *big.Int
}

// Descriptor returns the type of v.
func (v Value) Descriptor() *Descriptor {
	return v.d
}

// Valid reports whether v was produced by this package.
func (v Value) Valid() bool {
	return v.d != nil && v.m != nil
}

// BigInt returns a copy of the magnitude.
func (v Value) BigInt() *big.Int {
	if v.m == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(v.m)
}

// Uint64 returns the magnitude if it fits in a uint64.
func (v Value) Uint64() (uint64, bool) {
	if v.m == nil || !v.m.IsUint64() {
		return 0, false
	}

	return v.m.Uint64(), true
}

// IsZero reports whether v is 0.
func (v Value) IsZero() bool {
	return v.m == nil || v.m.Sign() == 0
}

func (v Value) String() string {
	if v.m == nil {
		return "<invalid>"
	}

	return v.m.String()
}

// Cmp compares the magnitudes of v and w and returns -1, 0 or +1.
func (v Value) Cmp(w Value) (int, error) {
	err := sameType(v, w)
	if err != nil {
		return 0, err
	}

	return v.m.Cmp(w.m), nil
}

// Equal reports whether v and w have the same magnitude.
func (v Value) Equal(w Value) (bool, error) {
	c, err := v.Cmp(w)
	if err != nil {
		return false, err
	}

	return c == 0, nil
}

// Less reports whether v is smaller than w.
func (v Value) Less(w Value) (bool, error) {
	c, err := v.Cmp(w)
	if err != nil {
		return false, err
	}

	return c < 0, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Value) MarshalBinary() (data []byte, err error) {
	if !v.Valid() {
		return nil, TypeMismatchError.New("marshal of untyped value")
	}

	return v.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The receiver must
// already carry its type, e.g. from Descriptor.Zero.
func (v *Value) UnmarshalBinary(data []byte) (err error) {
	if v.d == nil {
		return TypeMismatchError.New("unmarshal into untyped value")
	}

	w, err := v.d.FromBytes(data)
	if err != nil {
		return err
	}

	*v = w

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() (text []byte, err error) {
	if !v.Valid() {
		return nil, TypeMismatchError.New("marshal of untyped value")
	}

	return []byte(v.m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The receiver must
// already carry its type.
func (v *Value) UnmarshalText(text []byte) (err error) {
	if v.d == nil {
		return TypeMismatchError.New("unmarshal into untyped value")
	}

	w, err := v.d.Parse(string(text))
	if err != nil {
		return err
	}

	*v = w

	return nil
}

func sameType(a, b Value) error {
	if !a.Valid() || !b.Valid() {
		return TypeMismatchError.New("untyped operand")
	}

	if !a.d.Equal(b.d) {
		return TypeMismatchError.New("%s and %s are different types", a.d, b.d)
	}

	return nil
}

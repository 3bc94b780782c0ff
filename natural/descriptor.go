package natural

import (
	"fmt"
	"math/big"

	"github.com/calebcase/oops"
)

// Descriptor is the immutable (width, bound) pair of a bounded natural type.
type Descriptor struct {
	name  string
	width int
	bound *big.Int
	max   *big.Int
}

// SizeNat is bounded by the largest unsigned machine word and stored in 8
// bytes.
var SizeNat = MustDescriptor("SizeNat", 8, func() *big.Int {
	u := big.NewInt(1)
	u.Lsh(u, 64)
	u.Sub(u, big.NewInt(1))
	return u
}())

// NewDescriptor returns the descriptor for values in [0, bound) stored in
// width bytes. The name is only used in messages.
func NewDescriptor(name string, width int, bound *big.Int) (d *Descriptor, err error) {
	if width <= 0 {
		return nil, ConfigurationError.New("%s: invalid width: %d", name, width)
	}

	if bound == nil || bound.Sign() <= 0 {
		return nil, ConfigurationError.New("%s: upper bound must be positive: %v", name, bound)
	}

	// The bound itself never needs to be stored so U = 256^width is
	// allowed: the largest value is U - 1.
	if bound.BitLen() > width*8+1 || (bound.BitLen() == width*8+1 && bound.TrailingZeroBits() != uint(width*8)) {
		return nil, ConfigurationError.New(
			"%s: upper bound %s does not fit in %d bytes", name, bound, width,
		)
	}

	d = &Descriptor{
		name:  name,
		width: width,
		bound: new(big.Int).Set(bound),
	}
	d.max = new(big.Int).Sub(d.bound, big.NewInt(1))

	return d, nil
}

// MustDescriptor is NewDescriptor for package level declarations. It panics
// on an invalid definition.
func MustDescriptor(name string, width int, bound *big.Int) *Descriptor {
	d, err := NewDescriptor(name, width, bound)
	if err != nil {
		panic(oops.Trace(err))
	}

	return d
}

// Name returns the type name given at definition.
func (d *Descriptor) Name() string {
	return d.name
}

// Width returns the number of bytes in the canonical representation.
func (d *Descriptor) Width() int {
	return d.width
}

// Bound returns a copy of the exclusive upper bound.
func (d *Descriptor) Bound() *big.Int {
	return new(big.Int).Set(d.bound)
}

func (d *Descriptor) String() string {
	if d == nil {
		return "<nil>"
	}

	if d.name != "" {
		return d.name
	}

	return fmt.Sprintf("natural[%d]<%s", d.width, d.bound)
}

// Equal reports whether d and o describe the same width and bound.
func (d *Descriptor) Equal(o *Descriptor) bool {
	if d == o {
		return true
	}

	if d == nil || o == nil {
		return false
	}

	return d.width == o.width && d.bound.Cmp(o.bound) == 0
}

// Zero returns 0.
func (d *Descriptor) Zero() Value {
	return Value{d: d, m: new(big.Int)}
}

// Max returns U - 1.
func (d *Descriptor) Max() Value {
	return Value{d: d, m: d.max}
}

// Pow2 returns 2^n.
func (d *Descriptor) Pow2(n uint) (Value, error) {
	if n >= uint(d.bound.BitLen()) {
		return Value{}, OutOfRangeError.New("2^%d is not below the upper bound %s of %s", n, d.bound, d)
	}

	x := new(big.Int).Lsh(big.NewInt(1), n)

	return d.checkRange(x)
}

// checkRange wraps x, which must not be shared, after checking it against the
// range.
func (d *Descriptor) checkRange(x *big.Int) (Value, error) {
	if x.Sign() < 0 {
		return Value{}, FormatError.New("negative literal for %s: %s", d, x)
	}

	if x.Cmp(d.bound) >= 0 {
		return Value{}, OutOfRangeError.New("%s is not below the upper bound %s of %s", x, d.bound, d)
	}

	return Value{d: d, m: x}, nil
}

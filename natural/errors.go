package natural

import (
	"fmt"
	"math/big"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error classes.
var (
	// ConfigurationError is a bad descriptor definition.
	ConfigurationError = errs.Class("configuration")

	// OutOfRangeError is a literal or decoded value outside [0, U).
	OutOfRangeError = errs.Class("out of range")

	// FormatError is malformed literal text, a negative literal or a byte
	// buffer of the wrong length.
	FormatError = errs.Class("format")

	// ArithmeticBoundsError is a checked mode overflow or underflow.
	ArithmeticBoundsError = errs.Class("arithmetic bounds")

	// DivisionByZeroError is a division or remainder by zero.
	DivisionByZeroError = errs.Class("division by zero")

	// TypeMismatchError is an operation mixing values of different types.
	TypeMismatchError = errs.Class("type mismatch")
)

// Bound identifies which end of the range was violated.
type Bound int

// Bounds.
const (
	Lower Bound = iota
	Upper
)

func (b Bound) String() string {
	switch b {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	}

	return fmt.Sprintf("Bound(%d)", int(b))
}

// BoundsError describes a checked mode result outside [0, U).
type BoundsError struct {
	Op       Op
	Violated Bound
	Type     *Descriptor
	A        *big.Int
	B        *big.Int
	Result   *big.Int
}

func (e *BoundsError) Error() string {
	switch e.Violated {
	case Lower:
		return fmt.Sprintf(
			"%s underflow in %s: %s %s %s = %s < 0",
			e.Op, e.Type, e.A, e.Op.Symbol(), e.B, e.Result,
		)
	default:
		return fmt.Sprintf(
			"%s overflow in %s: %s %s %s = %s >= %s",
			e.Op, e.Type, e.A, e.Op.Symbol(), e.B, e.Result, e.Type.bound,
		)
	}
}

// AsBoundsError returns the BoundsError carried by err, if any.
func AsBoundsError(err error) (be *BoundsError, ok bool) {
	errs.IsFunc(err, func(err error) bool {
		be, ok = err.(*BoundsError)
		return ok
	})

	return be, ok
}

// Must returns v or panics with a traced err.
func Must(v Value, err error) Value {
	if err != nil {
		panic(oops.Trace(err))
	}

	return v
}

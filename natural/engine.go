package natural

import (
	"fmt"
	"math/big"
)

// Mode selects how out of range results are handled.
type Mode int

// Modes.
const (
	// Checked fails with ArithmeticBoundsError instead of leaving the range.
	Checked Mode = iota

	// Modular reduces results modulo the upper bound.
	Modular
)

func (m Mode) String() string {
	switch m {
	case Checked:
		return "checked"
	case Modular:
		return "modular"
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// Op is an arithmetic operation.
type Op int

// Operations.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpRem
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpRem:
		return "rem"
	}

	return fmt.Sprintf("Op(%d)", int(op))
}

// Symbol returns the infix operator for op.
func (op Op) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpRem:
		return "%"
	}

	return "?"
}

// Add returns a + b.
func (m Mode) Add(a, b Value) (Value, error) {
	return m.Apply(OpAdd, a, b)
}

// Sub returns a - b.
func (m Mode) Sub(a, b Value) (Value, error) {
	return m.Apply(OpSub, a, b)
}

// Mul returns a * b.
func (m Mode) Mul(a, b Value) (Value, error) {
	return m.Apply(OpMul, a, b)
}

// Div returns floor(a / b).
func (m Mode) Div(a, b Value) (Value, error) {
	return m.Apply(OpDiv, a, b)
}

// Rem returns a mod b.
func (m Mode) Rem(a, b Value) (Value, error) {
	return m.Apply(OpRem, a, b)
}

// Apply computes a op b. Operands are never modified.
func (m Mode) Apply(op Op, a, b Value) (Value, error) {
	err := sameType(a, b)
	if err != nil {
		return Value{}, err
	}

	if m != Checked && m != Modular {
		return Value{}, ConfigurationError.New("unknown mode: %s", m)
	}

	d := a.d
	c := new(big.Int)

	switch op {
	case OpAdd:
		c.Add(a.m, b.m)
	case OpSub:
		c.Sub(a.m, b.m)
	case OpMul:
		c.Mul(a.m, b.m)
	case OpDiv, OpRem:
		if b.m.Sign() == 0 {
			return Value{}, DivisionByZeroError.New("%s %s %s in %s", a, op.Symbol(), b, d)
		}

		// Operands are non-negative so truncated and floor division agree.
		if op == OpDiv {
			c.Quo(a.m, b.m)
		} else {
			c.Rem(a.m, b.m)
		}

		// A quotient or remainder never exceeds the dividend. Checked
		// anyway so no out of range value can escape.
		return d.checkResult(op, a, b, c)
	default:
		return Value{}, ConfigurationError.New("unknown operation: %s", op)
	}

	if m == Modular {
		// Mod is Euclidean: the result is in [0, U) even when a - b < 0.
		c.Mod(c, d.bound)

		return Value{d: d, m: c}, nil
	}

	return d.checkResult(op, a, b, c)
}

func (d *Descriptor) checkResult(op Op, a, b Value, c *big.Int) (Value, error) {
	var violated Bound

	switch {
	case c.Sign() < 0:
		violated = Lower
	case c.Cmp(d.bound) >= 0:
		violated = Upper
	default:
		return Value{d: d, m: c}, nil
	}

	return Value{}, ArithmeticBoundsError.Wrap(&BoundsError{
		Op:       op,
		Violated: violated,
		Type:     d,
		A:        a.BigInt(),
		B:        b.BigInt(),
		Result:   c,
	})
}

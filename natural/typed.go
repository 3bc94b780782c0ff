package natural

import (
	"golang.org/x/exp/constraints"
)

// Type names a descriptor at compile time. Implementations are normally
// empty structs whose Descriptor method returns a package level descriptor.
type Type interface {
	Descriptor() *Descriptor
}

// Of is a Value whose type is fixed by T. The zero Of[T] is 0.
type Of[T Type] struct {
	v Value
}

func descriptorOf[T Type]() *Descriptor {
	var t T
	return t.Descriptor()
}

// Lit converts a native integer into an Of[T].
func Lit[T Type, I constraints.Integer](x I) (Of[T], error) {
	v, err := FromLiteral(descriptorOf[T](), x)
	if err != nil {
		return Of[T]{}, err
	}

	return Of[T]{v: v}, nil
}

// ParseOf converts decimal text into an Of[T].
func ParseOf[T Type](s string) (Of[T], error) {
	v, err := descriptorOf[T]().Parse(s)
	if err != nil {
		return Of[T]{}, err
	}

	return Of[T]{v: v}, nil
}

// BytesOf decodes the canonical representation of an Of[T].
func BytesOf[T Type](data []byte) (Of[T], error) {
	v, err := descriptorOf[T]().FromBytes(data)
	if err != nil {
		return Of[T]{}, err
	}

	return Of[T]{v: v}, nil
}

// Wrap converts an untyped value into an Of[T], checking that its descriptor
// matches T.
func Wrap[T Type](v Value) (Of[T], error) {
	d := descriptorOf[T]()

	if !v.Valid() || !v.d.Equal(d) {
		return Of[T]{}, TypeMismatchError.New("%s is not a %s", v.d, d)
	}

	return Of[T]{v: v}, nil
}

// Value returns the untyped value.
func (t Of[T]) Value() Value {
	if !t.v.Valid() {
		return descriptorOf[T]().Zero()
	}

	return t.v
}

func (t Of[T]) String() string {
	return t.Value().String()
}

// Bytes returns the canonical representation.
func (t Of[T]) Bytes() []byte {
	return t.Value().Bytes()
}

// Cmp compares t and o and returns -1, 0 or +1.
func (t Of[T]) Cmp(o Of[T]) int {
	return t.Value().m.Cmp(o.Value().m)
}

// Equal reports whether t and o are equal.
func (t Of[T]) Equal(o Of[T]) bool {
	return t.Cmp(o) == 0
}

// Add returns t + o.
func (t Of[T]) Add(m Mode, o Of[T]) (Of[T], error) {
	return t.apply(m, OpAdd, o)
}

// Sub returns t - o.
func (t Of[T]) Sub(m Mode, o Of[T]) (Of[T], error) {
	return t.apply(m, OpSub, o)
}

// Mul returns t * o.
func (t Of[T]) Mul(m Mode, o Of[T]) (Of[T], error) {
	return t.apply(m, OpMul, o)
}

// Div returns floor(t / o).
func (t Of[T]) Div(m Mode, o Of[T]) (Of[T], error) {
	return t.apply(m, OpDiv, o)
}

// Rem returns t mod o.
func (t Of[T]) Rem(m Mode, o Of[T]) (Of[T], error) {
	return t.apply(m, OpRem, o)
}

func (t Of[T]) apply(m Mode, op Op, o Of[T]) (Of[T], error) {
	v, err := m.Apply(op, t.Value(), o.Value())
	if err != nil {
		return Of[T]{}, err
	}

	return Of[T]{v: v}, nil
}

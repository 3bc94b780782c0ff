// Package natural provides bounded natural numbers with a fixed width byte
// representation.
//
// A bounded natural is an integer in the half-open range [0, U) where the
// upper bound U is chosen by the caller and may be any positive integer that
// fits in the configured number of bytes:
//
//  0 < U <= 256^width
//
// U does not need to be a power of two and does not need to fit in a machine
// word. A Descriptor captures the (width, U) pair for one type and every Value
// of that type points at it.
//
// Representation
//
// The canonical representation of a value is exactly width bytes, big-endian,
// zero padded on the left. There is no length prefix: the width is part of the
// type, not the data.
//
//  | Width | Bound      | Value | Bytes                     |
//  |-------|------------|-------|---------------------------|
//  | 1     | 200        | 199   | C7                        |
//  | 1     | 200        | 201   | (out of range)            |
//  | 2     | 65536      | 1     | 00 01                     |
//  | 8     | 2^64 - 1   | max   | FF FF FF FF FF FF FF FE   |
//  |-------|------------|-------|---------------------------|
//
// Decoding a buffer checks the length first and the bound second. A buffer of
// the right length may still decode to a number at or above U.
//
// Arithmetic
//
// Operations are selected by Mode rather than by type, so the same values can
// be combined with either semantics:
//
//  | Op  | Checked                      | Modular                     |
//  |-----|------------------------------|-----------------------------|
//  | Add | fails if a + b >= U          | (a + b) mod U               |
//  | Sub | fails if a < b               | (a - b) mod U, non-negative |
//  | Mul | fails if a * b >= U          | (a * b) mod U               |
//  | Div | floor(a / b), fails if b = 0 | same as checked             |
//  | Rem | a mod b, fails if b = 0      | same as checked             |
//  |-----|------------------------------|-----------------------------|
//
// Operands must share a descriptor (same width and bound) and every failure is
// returned as an error from one of the classes in errors.go.
//
// Literals
//
// Literal construction is always checked, whatever mode later arithmetic
// uses. Native Go integers, decimal strings, hexadecimal strings and *big.Int
// values are accepted. Negative inputs and malformed text are format errors.
//
// Typed values
//
// Of[T] wraps a Value in a distinct Go type per descriptor so that mixing two
// bounded types is rejected by the compiler instead of at run time:
//
//  type sizeNat struct{}
//
//  func (sizeNat) Descriptor() *natural.Descriptor { return natural.SizeNat }
//
//  type Size = natural.Of[sizeNat]
package natural

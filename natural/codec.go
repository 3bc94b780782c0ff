package natural

import (
	"math/big"
)

// Bytes returns the canonical representation of v: Width bytes, big-endian,
// zero padded on the left. It returns nil for the zero Value.
func (v Value) Bytes() []byte {
	if !v.Valid() {
		return nil
	}

	// Note: big.Int encodes zero as an empty byte array, FillBytes pads it
	// out to the full width.
	return v.m.FillBytes(make([]byte, v.d.width))
}

// FromBytes decodes the canonical representation produced by Bytes.
func (d *Descriptor) FromBytes(data []byte) (Value, error) {
	if len(data) != d.width {
		return Value{}, FormatError.New("%s needs %d bytes, got %d", d, d.width, len(data))
	}

	return d.checkRange(new(big.Int).SetBytes(data))
}

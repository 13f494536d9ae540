package qvarint

import (
	"errors"
)

var (
	ErrValueOutOfRange = errors.New("value exceeds 62-bit varint range")
)

// VarInt holds one wire-format-eligible unsigned integer. The magnitude is
// kept private so that every construction path enforces 0 <= v <= Max;
// a VarInt that exists is always encodable. Values are immutable, Add
// returns a new one.
type VarInt struct {
	v uint64
}

// FromUint8, FromUint16 and FromUint32 cannot fail: 8, 16 and 32-bit
// values are always inside the 62-bit domain.
func FromUint8(n uint8) VarInt {
	return VarInt{uint64(n)}
}

func FromUint16(n uint16) VarInt {
	return VarInt{uint64(n)}
}

func FromUint32(n uint32) VarInt {
	return VarInt{uint64(n)}
}

// FromUint64 validates n against Max. This is a real runtime check, not an
// assertion: an out-of-range magnitude must never be stored.
func FromUint64(n uint64) (VarInt, error) {
	if n > Max {
		return VarInt{}, ErrValueOutOfRange
	}
	return VarInt{n}, nil
}

// FromInt constructs a VarInt from a native length or offset. Negative
// input fails the same range check as an oversized magnitude.
func FromInt(n int) (VarInt, error) {
	if n < 0 {
		return VarInt{}, ErrValueOutOfRange
	}
	return FromUint64(uint64(n))
}

func (v VarInt) Uint64() uint64 {
	return v.v
}

func (v VarInt) Int() int {
	return int(v.v)
}

// Size returns the minimal encoded length in octets, one of 1, 2, 4 or 8.
func (v VarInt) Size() int {
	size, _ := EncodedLen(v.v)
	return size
}

// Add returns v + other, failing with ErrValueOutOfRange when the sum
// leaves the 62-bit domain. The uint64 addition itself cannot wrap since
// both operands are at most 2^62-1.
func (v VarInt) Add(other VarInt) (VarInt, error) {
	return FromUint64(v.v + other.v)
}

// AddLen combines the value with a native byte count for layout
// arithmetic, such as adding a field's encoded length to a buffer offset.
func (v VarInt) AddLen(n int) int {
	return int(v.v) + n
}

// Encode writes the value to s in its minimal length class. It cannot
// fail with ErrOversizedValue, the construction invariant rules that out.
func (v VarInt) Encode(s Sink) error {
	return Encode(v.v, s)
}

// DecodeVarInt reads one value from c. No range check is needed: 62
// usable wire bits cannot exceed Max.
func DecodeVarInt(c Cursor) (VarInt, bool) {
	x, ok := Decode(c)
	if !ok {
		return VarInt{}, false
	}
	return VarInt{x}, true
}

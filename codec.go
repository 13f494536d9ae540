/*
 *                  Variable-Length Integer Encoding (62 bit)
 *
 * This file encodes and decodes unsigned integers up to 2^62-1 into a
 * self-describing variable-length format. The two most significant bits of
 * the first octet select the total encoded length, the remaining bits carry
 * the value in big-endian (network) byte order:
 *
 *  +------+--------+-------------+-----------------------+
 *  | 2Bit | Length | Usable Bits | Range                 |
 *  +------+--------+-------------+-----------------------+
 *  | 00   | 1      | 6           | 0-63                  |
 *  | 01   | 2      | 14          | 0-16383               |
 *  | 10   | 4      | 30          | 0-1073741823          |
 *  | 11   | 8      | 62          | 0-4611686018427387903 |
 *  +------+--------+-------------+-----------------------+
 *
 * A decoder learns the total length from the first octet alone. Because the
 * encoder always picks the smallest class that fits, the value's own bits in
 * the tag position are zero and the tag can be OR'd in without losing data.
 *
 * Encoding example, value 0x1234 (4660):
 *
 * 1. Binary representation: 0001 0010 0011 0100
 * 2. Split into two octets:
 *   - First:  01010010 (01 for the 2-octet class, then the 6 MSBs)
 *   - Second: 00110100 (the remaining 8 bits)
 *
 *  +----------+----------+
 *  | 01010010 | 00110100 |
 *  +----------+----------+
 * Resulting encoded bytes: 0x52 0x34
 *
 * Encode reports ErrInsufficientSpace when the sink cannot hold the minimal
 * encoding and ErrOversizedValue when the value needs more than 62 bits.
 * Decode signals truncated input by absence, not by error: the caller holds
 * the stream context and decides whether more bytes may still arrive.
 */

package qvarint

import (
	"errors"
)

const (
	maxVarInt1 = 63
	maxVarInt2 = 16383
	maxVarInt4 = 1073741823
	maxVarInt8 = 4611686018427387903

	// Max is the largest magnitude this encoding can represent (2^62-1).
	Max uint64 = maxVarInt8
)

var (
	ErrInsufficientSpace = errors.New("insufficient space to encode value")
	ErrOversizedValue    = errors.New("value too large for varint encoding")
)

// EncodedLen returns the minimal number of octets needed to encode x, one
// of 1, 2, 4 or 8. The second return value is false when x exceeds Max.
func EncodedLen(x uint64) (int, bool) {
	switch {
	case x <= maxVarInt1:
		return 1, true
	case x <= maxVarInt2:
		return 2, true
	case x <= maxVarInt4:
		return 4, true
	case x <= maxVarInt8:
		return 8, true
	default:
		return 0, false
	}
}

// Decode reads one variable-length integer from c. It returns false when c
// holds no byte at all or fewer bytes than the first octet's tag announces;
// in that case nothing past the first octet has been consumed. On success
// exactly the encoded length has been consumed.
func Decode(c Cursor) (uint64, bool) {
	if c.Remaining() < 1 {
		return 0, false
	}
	first, err := c.ReadByte()
	if err != nil {
		return 0, false
	}

	var scratch [8]byte
	scratch[0] = first & 0b00111111

	switch first >> 6 {
	case 0b00:
		return uint64(scratch[0]), true
	case 0b01:
		if c.Remaining() < 1 {
			return 0, false
		}
		if _, err := c.Read(scratch[1:2]); err != nil {
			return 0, false
		}
		return getUint16(scratch[:2]), true
	case 0b10:
		if c.Remaining() < 3 {
			return 0, false
		}
		if _, err := c.Read(scratch[1:4]); err != nil {
			return 0, false
		}
		return getUint32(scratch[:4]), true
	default:
		if c.Remaining() < 7 {
			return 0, false
		}
		if _, err := c.Read(scratch[1:8]); err != nil {
			return 0, false
		}
		return getUint64(scratch[:8]), true
	}
}

// Encode writes x to s in the minimal length class. It writes either the
// full encoding or nothing: the capacity check happens before the first
// byte leaves the scratch buffer.
func Encode(x uint64, s Sink) error {
	size, ok := EncodedLen(x)
	if !ok {
		return ErrOversizedValue
	}
	if s.Available() < size {
		return ErrInsufficientSpace
	}

	var scratch [8]byte
	switch size {
	case 1:
		scratch[0] = byte(x)
	case 2:
		putUint16(scratch[:2], x)
		scratch[0] |= 0b01000000
	case 4:
		putUint32(scratch[:4], x)
		scratch[0] |= 0b10000000
	default:
		putUint64(scratch[:8], x)
		scratch[0] |= 0b11000000
	}

	_, err := s.Write(scratch[:size])
	return err
}

func putUint16(b []byte, v uint64) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

func putUint32(b []byte, v uint64) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

func putUint64(b []byte, v uint64) {
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}

func getUint16(b []byte) uint64 {
	return uint64(b[0])<<8 | uint64(b[1])
}

func getUint32(b []byte) uint64 {
	return uint64(b[0])<<24 | uint64(b[1])<<16 | uint64(b[2])<<8 | uint64(b[3])
}

func getUint64(b []byte) uint64 {
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}

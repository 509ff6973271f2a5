// Package wire provides low-level encoding primitives for the netbuf wire format.
package wire

import (
	"errors"
	"math/bits"
)

// Maximum number of bytes for a varint-encoded 64-bit integer.
// Each octet carries 7 value bits, so a 64-bit value needs at most
// ceil(64/7) = 10 octets; the signed form reserves one bit for the sign
// but still fits in 10.
const MaxVarintLen64 = 10

// Errors for varint decoding.
var (
	// ErrVarintTruncated indicates the input ended before a terminating octet.
	ErrVarintTruncated = errors.New("wire: varint truncated")

	// ErrVarintTooLong indicates the encoding did not terminate within 10 octets.
	ErrVarintTooLong = errors.New("wire: varint exceeds maximum length")

	// ErrVarintMalformed indicates a 10-octet encoding whose leading octet
	// fails the canonical-form check.
	ErrVarintMalformed = errors.New("wire: varint is malformed")
)

// UvarintSize returns the number of octets required to encode v.
//
// The encoding packs 7 bits per octet, most-significant group first, and
// always uses the fewest octets possible. The value 0 takes one octet.
func UvarintSize(v uint64) int {
	if v == 0 {
		return 1
	}
	return (bits.Len64(v)-1)/7 + 1
}

// VarintSize returns the number of octets required to encode the signed
// value v. One bit adjacent to the magnitude's most significant bit is
// reserved for the sign, so boundaries fall one bit earlier than for the
// unsigned form (e.g. 0x40 already needs two octets).
func VarintSize(v int64) int {
	u := uint64(v)
	if v < 0 {
		u = ^u
	}
	msb := 0
	if u != 0 {
		msb = bits.Len64(u) - 1
	}
	return (msb+1)/7 + 1
}

// PutUvarint encodes v into dst and returns the number of octets written.
// dst must be at least UvarintSize(v) octets long.
//
// Octets are written right to left: the low 7 bits of the remaining value
// go into each octet, and every octet except the first keeps its
// continuation bit (0x80) set.
func PutUvarint(dst []byte, v uint64) int {
	n := UvarintSize(v)
	for i := n; i > 0; i-- {
		octet := byte(v & 0x7f)
		v >>= 7
		if i != n {
			octet |= 0x80
		}
		dst[i-1] = octet
	}
	return n
}

// PutVarint encodes the signed value v into dst and returns the number of
// octets written. dst must be at least VarintSize(v) octets long.
//
// The mechanics match PutUvarint operating on the two's-complement
// representation; the arithmetic shift preserves the sign bits that the
// size computation reserved room for.
func PutVarint(dst []byte, v int64) int {
	n := VarintSize(v)
	for i := n; i > 0; i-- {
		octet := byte(v & 0x7f)
		v >>= 7
		if i != n {
			octet |= 0x80
		}
		dst[i-1] = octet
	}
	return n
}

// Uvarint decodes an unsigned varint from data and returns the value and
// the number of octets consumed.
//
// Decoding fails with ErrVarintTruncated if data ends before a terminating
// octet, ErrVarintTooLong if no terminator appears within 10 octets, and
// ErrVarintMalformed if a 10-octet encoding does not lead with 0x81 (the
// only canonical leading octet at that length).
func Uvarint(data []byte) (uint64, int, error) {
	var v uint64
	n := 0
	for {
		if n == MaxVarintLen64 {
			return 0, 0, ErrVarintTooLong
		}
		if n >= len(data) {
			return 0, 0, ErrVarintTruncated
		}
		octet := data[n]
		n++
		v = (v << 7) | uint64(octet&0x7f)
		if octet&0x80 == 0 {
			break
		}
	}
	if n == MaxVarintLen64 && data[0] != 0x81 {
		return 0, 0, ErrVarintMalformed
	}
	return v, n, nil
}

// Varint decodes a signed varint from data and returns the value and the
// number of octets consumed.
//
// The accumulator is seeded with all ones or all zeros from the sign bit
// (0x40) of the leading octet, so short encodings sign-extend correctly.
// A 10-octet encoding must lead with 0x80 or 0xFF; anything else at that
// length fails with ErrVarintMalformed.
func Varint(data []byte) (int64, int, error) {
	if len(data) == 0 {
		return 0, 0, ErrVarintTruncated
	}
	var v int64
	if data[0]&0x40 != 0 {
		v = -1
	}
	n := 0
	for {
		if n == MaxVarintLen64 {
			return 0, 0, ErrVarintTooLong
		}
		if n >= len(data) {
			return 0, 0, ErrVarintTruncated
		}
		octet := data[n]
		n++
		v = (v << 7) | int64(octet&0x7f)
		if octet&0x80 == 0 {
			break
		}
	}
	if n == MaxVarintLen64 && data[0] != 0x80 && data[0] != 0xff {
		return 0, 0, ErrVarintMalformed
	}
	return v, n, nil
}

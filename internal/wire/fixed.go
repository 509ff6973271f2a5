package wire

import (
	"encoding/binary"
	"math"
)

// Size constants for fixed-width types.
const (
	Fixed16Size = 2
	Fixed32Size = 4
	Fixed64Size = 8
	Float32Size = 4
	Float64Size = 8
)

// PutUint16 writes a 16-bit value to buf in network byte order (big-endian).
// The buffer must have at least 2 bytes available.
func PutUint16(buf []byte, v uint16) {
	binary.BigEndian.PutUint16(buf, v)
}

// PutUint32 writes a 32-bit value to buf in network byte order.
// The buffer must have at least 4 bytes available.
func PutUint32(buf []byte, v uint32) {
	binary.BigEndian.PutUint32(buf, v)
}

// PutUint64 writes a 64-bit value to buf in network byte order.
// The buffer must have at least 8 bytes available.
func PutUint64(buf []byte, v uint64) {
	binary.BigEndian.PutUint64(buf, v)
}

// Uint16 reads a big-endian 16-bit value from buf.
// The buffer must have at least 2 bytes available.
func Uint16(buf []byte) uint16 {
	return binary.BigEndian.Uint16(buf)
}

// Uint32 reads a big-endian 32-bit value from buf.
// The buffer must have at least 4 bytes available.
func Uint32(buf []byte) uint32 {
	return binary.BigEndian.Uint32(buf)
}

// Uint64 reads a big-endian 64-bit value from buf.
// The buffer must have at least 8 bytes available.
func Uint64(buf []byte) uint64 {
	return binary.BigEndian.Uint64(buf)
}

// Float values travel through their same-width unsigned integer form for
// the byte-order transform. Bit patterns are preserved exactly; no NaN or
// negative-zero normalization is applied.

// PutFloat32 writes an IEEE-754 binary32 value to buf in network byte order.
func PutFloat32(buf []byte, v float32) {
	PutUint32(buf, math.Float32bits(v))
}

// PutFloat64 writes an IEEE-754 binary64 value to buf in network byte order.
func PutFloat64(buf []byte, v float64) {
	PutUint64(buf, math.Float64bits(v))
}

// Float32 reads a big-endian IEEE-754 binary32 value from buf.
func Float32(buf []byte) float32 {
	return math.Float32frombits(Uint32(buf))
}

// Float64 reads a big-endian IEEE-754 binary64 value from buf.
func Float64(buf []byte) float64 {
	return math.Float64frombits(Uint64(buf))
}

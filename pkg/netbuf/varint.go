package netbuf

import (
	"errors"

	"github.com/blockberries/netbuf/internal/wire"
)

// VarintBuffer extends DataBuffer with variable-length integer accessors.
// Values are encoded most significant group first, seven bits per octet,
// with the high bit of every octet but the last set as a continuation
// flag. Signed values reserve a sign bit adjacent to the magnitude's most
// significant bit, so small negative numbers stay short.
type VarintBuffer struct {
	DataBuffer
}

// NewVarint creates a VarintBuffer with no storage.
func NewVarint() *VarintBuffer {
	return &VarintBuffer{}
}

// NewVarintSize creates a VarintBuffer owning a fresh buffer of the given size.
func NewVarintSize(size int) (*VarintBuffer, error) {
	b := &VarintBuffer{}
	if err := b.Allocate(size); err != nil {
		return nil, err
	}
	return b, nil
}

// WrapVarint creates a VarintBuffer borrowing the caller's memory, with
// the given number of leading octets treated as valid data.
func WrapVarint(buf []byte, dataLen int) (*VarintBuffer, error) {
	b := &VarintBuffer{}
	if err := b.SetBuffer(buf, dataLen); err != nil {
		return nil, err
	}
	return b, nil
}

// Clone returns an independent copy with a fresh owned allocation and a
// read position of zero.
func (b *VarintBuffer) Clone() *VarintBuffer {
	return &VarintBuffer{DataBuffer: *b.DataBuffer.Clone()}
}

// UvarintSize returns the number of octets needed to encode v.
func UvarintSize(v uint64) int {
	return wire.UvarintSize(v)
}

// VarintSize returns the number of octets needed to encode v.
func VarintSize(v int64) int {
	return wire.VarintSize(v)
}

// SetUvarint encodes v at the given offset and returns the number of
// octets written. Only the capacity bounds the write; the data length is
// not updated.
func (b *VarintBuffer) SetUvarint(v uint64, offset int) (int, error) {
	n := wire.UvarintSize(v)
	if err := b.checkAccess("SetUvarint", offset, n); err != nil {
		return 0, err
	}
	return wire.PutUvarint(b.buf[offset:offset+n], v), nil
}

// SetVarint encodes v at the given offset and returns the number of
// octets written.
func (b *VarintBuffer) SetVarint(v int64, offset int) (int, error) {
	n := wire.VarintSize(v)
	if err := b.checkAccess("SetVarint", offset, n); err != nil {
		return 0, err
	}
	return wire.PutVarint(b.buf[offset:offset+n], v), nil
}

// GetUvarint decodes an unsigned varint at the given offset, bounded by
// capacity, and returns the value and the number of octets consumed.
// An encoding running past the buffer end wraps ErrOutOfBounds; one that
// is over-long or non-canonical wraps ErrMalformedVarint.
func (b *VarintBuffer) GetUvarint(offset int) (uint64, int, error) {
	if offset < 0 || offset >= len(b.buf) {
		return 0, 0, boundsError("GetUvarint", offset, "access beyond buffer size")
	}
	v, n, err := wire.Uvarint(b.buf[offset:])
	if err != nil {
		return 0, 0, b.wireError("GetUvarint", offset, err)
	}
	return v, n, nil
}

// GetVarint decodes a signed varint at the given offset, bounded by
// capacity, and returns the value and the number of octets consumed.
func (b *VarintBuffer) GetVarint(offset int) (int64, int, error) {
	if offset < 0 || offset >= len(b.buf) {
		return 0, 0, boundsError("GetVarint", offset, "access beyond buffer size")
	}
	v, n, err := wire.Varint(b.buf[offset:])
	if err != nil {
		return 0, 0, b.wireError("GetVarint", offset, err)
	}
	return v, n, nil
}

// wireError maps a decode failure from the wire layer onto the buffer's
// error vocabulary: a truncated encoding is a bounds problem here, the
// rest are malformed input.
func (b *VarintBuffer) wireError(op string, offset int, err error) error {
	if errors.Is(err, wire.ErrVarintTruncated) {
		return boundsError(op, offset, "varint runs past buffer end")
	}
	return NewBufferErrorAt(op, offset, "invalid varint encoding", ErrMalformedVarint)
}

// AppendUvarint encodes v at the data length, advances it, and returns
// the number of octets written.
func (b *VarintBuffer) AppendUvarint(v uint64) (int, error) {
	n, err := b.SetUvarint(v, b.dataLen)
	if err != nil {
		return 0, err
	}
	b.dataLen += n
	return n, nil
}

// AppendVarint encodes v at the data length, advances it, and returns
// the number of octets written.
func (b *VarintBuffer) AppendVarint(v int64) (int, error) {
	n, err := b.SetVarint(v, b.dataLen)
	if err != nil {
		return 0, err
	}
	b.dataLen += n
	return n, nil
}

// decodeUvarint decodes an unsigned varint at the read position without
// moving it, so callers can layer further checks before committing.
func (b *VarintBuffer) decodeUvarint(op string) (uint64, int, error) {
	if b.readPos >= b.dataLen {
		return 0, 0, boundsError(op, b.readPos, "read beyond data length")
	}
	v, n, err := wire.Uvarint(b.buf[b.readPos:b.dataLen])
	if err != nil {
		return 0, 0, b.wireError(op, b.readPos, err)
	}
	return v, n, nil
}

// decodeVarint decodes a signed varint at the read position without
// moving it.
func (b *VarintBuffer) decodeVarint(op string) (int64, int, error) {
	if b.readPos >= b.dataLen {
		return 0, 0, boundsError(op, b.readPos, "read beyond data length")
	}
	v, n, err := wire.Varint(b.buf[b.readPos:b.dataLen])
	if err != nil {
		return 0, 0, b.wireError(op, b.readPos, err)
	}
	return v, n, nil
}

// ReadUvarint decodes an unsigned varint at the read position and
// advances it. The whole encoding must lie within the valid data.
func (b *VarintBuffer) ReadUvarint() (uint64, int, error) {
	v, n, err := b.decodeUvarint("ReadUvarint")
	if err != nil {
		return 0, 0, err
	}
	b.readPos += n
	return v, n, nil
}

// ReadVarint decodes a signed varint at the read position and advances it.
func (b *VarintBuffer) ReadVarint() (int64, int, error) {
	v, n, err := b.decodeVarint("ReadVarint")
	if err != nil {
		return 0, 0, err
	}
	b.readPos += n
	return v, n, nil
}

// narrowUnsigned converts a decoded value to a narrower unsigned width,
// rejecting values that do not fit.
func narrowUnsigned[T uint16 | uint32](op string, v uint64, n int, err error) (T, int, error) {
	if err != nil {
		return 0, 0, err
	}
	if uint64(T(v)) != v {
		return 0, 0, NewBufferError(op, "decoded value exceeds target width", ErrOutOfRange)
	}
	return T(v), n, nil
}

// narrowSigned converts a decoded value to a narrower signed width,
// rejecting values that do not fit.
func narrowSigned[T int16 | int32](op string, v int64, n int, err error) (T, int, error) {
	if err != nil {
		return 0, 0, err
	}
	if int64(T(v)) != v {
		return 0, 0, NewBufferError(op, "decoded value exceeds target width", ErrOutOfRange)
	}
	return T(v), n, nil
}

// GetUvarint16 decodes an unsigned varint at the given offset into a
// 16-bit value, wrapping ErrOutOfRange if it does not fit.
func (b *VarintBuffer) GetUvarint16(offset int) (uint16, int, error) {
	v, n, err := b.GetUvarint(offset)
	return narrowUnsigned[uint16]("GetUvarint16", v, n, err)
}

// GetUvarint32 decodes an unsigned varint at the given offset into a
// 32-bit value, wrapping ErrOutOfRange if it does not fit.
func (b *VarintBuffer) GetUvarint32(offset int) (uint32, int, error) {
	v, n, err := b.GetUvarint(offset)
	return narrowUnsigned[uint32]("GetUvarint32", v, n, err)
}

// GetVarint16 decodes a signed varint at the given offset into a 16-bit
// value, wrapping ErrOutOfRange if it does not fit.
func (b *VarintBuffer) GetVarint16(offset int) (int16, int, error) {
	v, n, err := b.GetVarint(offset)
	return narrowSigned[int16]("GetVarint16", v, n, err)
}

// GetVarint32 decodes a signed varint at the given offset into a 32-bit
// value, wrapping ErrOutOfRange if it does not fit.
func (b *VarintBuffer) GetVarint32(offset int) (int32, int, error) {
	v, n, err := b.GetVarint(offset)
	return narrowSigned[int32]("GetVarint32", v, n, err)
}

// ReadUvarint16 decodes an unsigned varint at the read position into a
// 16-bit value. The read position only advances on full success, so a
// range failure leaves the encoding in place for a wider retry.
func (b *VarintBuffer) ReadUvarint16() (uint16, int, error) {
	u, n, err := b.decodeUvarint("ReadUvarint16")
	v, n, err := narrowUnsigned[uint16]("ReadUvarint16", u, n, err)
	if err != nil {
		return 0, 0, err
	}
	b.readPos += n
	return v, n, nil
}

// ReadUvarint32 decodes an unsigned varint at the read position into a
// 32-bit value. The read position only advances on full success.
func (b *VarintBuffer) ReadUvarint32() (uint32, int, error) {
	u, n, err := b.decodeUvarint("ReadUvarint32")
	v, n, err := narrowUnsigned[uint32]("ReadUvarint32", u, n, err)
	if err != nil {
		return 0, 0, err
	}
	b.readPos += n
	return v, n, nil
}

// ReadVarint16 decodes a signed varint at the read position into a
// 16-bit value. The read position only advances on full success.
func (b *VarintBuffer) ReadVarint16() (int16, int, error) {
	s, n, err := b.decodeVarint("ReadVarint16")
	v, n, err := narrowSigned[int16]("ReadVarint16", s, n, err)
	if err != nil {
		return 0, 0, err
	}
	b.readPos += n
	return v, n, nil
}

// ReadVarint32 decodes a signed varint at the read position into a
// 32-bit value. The read position only advances on full success.
func (b *VarintBuffer) ReadVarint32() (int32, int, error) {
	s, n, err := b.decodeVarint("ReadVarint32")
	v, n, err := narrowSigned[int32]("ReadVarint32", s, n, err)
	if err != nil {
		return 0, 0, err
	}
	b.readPos += n
	return v, n, nil
}

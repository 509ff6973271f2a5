// Package netbuf provides a fixed-capacity byte buffer for serializing and
// deserializing data in network byte order.
//
// A DataBuffer either owns its storage (allocated at construction) or
// borrows caller-supplied memory, which it never frees or reallocates.
// Alongside the capacity it tracks a data length (how many octets are
// valid) and a read position (where sequential reads left off). The four
// access families mirror that model:
//
//   - SetX  places a value at an explicit offset, bounded by capacity only.
//   - GetX  reads a value at an explicit offset, bounded by capacity only.
//   - AppendX writes at the data length and advances it.
//   - ReadX reads at the read position, bounded by the data length, and
//     advances the read position.
//
// Fixed-width integers and floats cross the wire big-endian; floats are
// reinterpreted through their same-width unsigned form for the transform.
// Every out-of-bounds access is reported as an error wrapping
// ErrOutOfBounds; the buffer never grows, truncates, or substitutes values.
package netbuf

import (
	"bytes"

	"github.com/blockberries/netbuf/internal/wire"
)

// DataBuffer is a fixed-capacity octet buffer with network-byte-order
// accessors and independent write (data length) and read cursors.
//
// The zero value has no storage; assign one with Allocate or SetBuffer.
// DataBuffer is not safe for concurrent use.
type DataBuffer struct {
	buf     []byte
	owned   bool
	dataLen int
	readPos int
}

// New creates a DataBuffer with no storage.
func New() *DataBuffer {
	return &DataBuffer{}
}

// NewSize creates a DataBuffer that owns a freshly allocated buffer of the
// given size, with zero data length. A size of zero produces a buffer with
// no storage.
func NewSize(size int) (*DataBuffer, error) {
	b := &DataBuffer{}
	if err := b.Allocate(size); err != nil {
		return nil, err
	}
	return b, nil
}

// Wrap creates a DataBuffer that borrows the caller's memory. The buffer
// capacity is len(buf) and the given data length marks how much of it
// already holds valid data. A nil buf produces a buffer with no storage
// and the data length is ignored.
func Wrap(buf []byte, dataLen int) (*DataBuffer, error) {
	b := &DataBuffer{}
	if err := b.SetBuffer(buf, dataLen); err != nil {
		return nil, err
	}
	return b, nil
}

// WrapAll is shorthand for Wrap(buf, len(buf)): the whole slice is
// treated as valid data.
func WrapAll(buf []byte) (*DataBuffer, error) {
	return Wrap(buf, len(buf))
}

// Allocate replaces any current storage with a freshly allocated, owned
// buffer of the given size, resetting the data length and read position.
// A size of zero leaves the buffer with no storage.
func (b *DataBuffer) Allocate(size int) error {
	if size < 0 {
		return NewBufferError("Allocate", "negative buffer size", ErrAllocation)
	}
	b.clear()
	if size == 0 {
		return nil
	}
	b.buf = make([]byte, size)
	b.owned = true
	return nil
}

// SetBuffer replaces any current storage with the caller's memory, which
// the DataBuffer borrows and will never reallocate. A nil buf clears the
// buffer and the data length argument is ignored. A non-nil empty buf is
// rejected, as is a data length outside [0, len(buf)].
func (b *DataBuffer) SetBuffer(buf []byte, dataLen int) error {
	b.clear()
	if buf == nil {
		return nil
	}
	if len(buf) == 0 || dataLen < 0 || dataLen > len(buf) {
		return NewBufferError("SetBuffer", "zero capacity or data length beyond capacity", ErrInvalidArgument)
	}
	b.buf = buf
	b.dataLen = dataLen
	return nil
}

// clear drops the storage reference and resets all cursors.
func (b *DataBuffer) clear() {
	b.buf = nil
	b.owned = false
	b.dataLen = 0
	b.readPos = 0
}

// Clone returns an independent copy backed by a fresh owned allocation of
// the same capacity, with identical contents and data length. The copy's
// read position starts at zero. Cloning a buffer with no storage yields a
// buffer with no storage.
func (b *DataBuffer) Clone() *DataBuffer {
	c := &DataBuffer{}
	if b.buf == nil {
		return c
	}
	c.buf = make([]byte, len(b.buf))
	copy(c.buf, b.buf)
	c.owned = true
	c.dataLen = b.dataLen
	return c
}

// CopyFrom assigns the other buffer's state to this one. Storage is reused
// only when this buffer owns an allocation of the same capacity; otherwise
// a fresh owned allocation is made. The full capacity content, data length
// and read position are copied.
func (b *DataBuffer) CopyFrom(other *DataBuffer) {
	if b == other {
		return
	}
	if !b.owned || len(b.buf) != len(other.buf) {
		if len(other.buf) == 0 {
			b.clear()
		} else {
			b.buf = make([]byte, len(other.buf))
			b.owned = true
		}
	}
	copy(b.buf, other.buf)
	b.dataLen = other.dataLen
	b.readPos = other.readPos
}

// MoveFrom transfers the other buffer's storage (owned or borrowed),
// capacity, data length and read position to this one, leaving the other
// buffer in the no-storage state. Any storage this buffer held is
// discarded, so moving from an empty buffer empties this one too.
func (b *DataBuffer) MoveFrom(other *DataBuffer) {
	if b == other {
		return
	}
	b.buf = other.buf
	b.owned = other.owned
	b.dataLen = other.dataLen
	b.readPos = other.readPos
	other.clear()
}

// Size returns the total capacity of the underlying buffer.
func (b *DataBuffer) Size() int {
	return len(b.buf)
}

// DataLength returns the number of valid octets in the buffer.
func (b *DataBuffer) DataLength() int {
	return b.dataLen
}

// SetDataLength sets the number of valid octets. It fails if the length
// exceeds the capacity. On success the read position resets to zero.
func (b *DataBuffer) SetDataLength(length int) error {
	if length < 0 || length > len(b.buf) {
		return boundsError("SetDataLength", length, "data length beyond buffer size")
	}
	b.dataLen = length
	b.readPos = 0
	return nil
}

// Empty reports whether the buffer holds no valid data.
func (b *DataBuffer) Empty() bool {
	return b.dataLen == 0
}

// ReadPosition returns the current sequential-read cursor.
func (b *DataBuffer) ReadPosition() int {
	return b.readPos
}

// SetReadPosition moves the sequential-read cursor. Positions beyond the
// data length are rejected.
func (b *DataBuffer) SetReadPosition(position int) error {
	if position < 0 || position > b.dataLen {
		return boundsError("SetReadPosition", position, "read position beyond data length")
	}
	b.readPos = position
	return nil
}

// AdvanceReadPosition moves the read cursor forward by distance octets.
// The unread length is compared rather than readPos+distance, which could
// overflow for huge distances.
func (b *DataBuffer) AdvanceReadPosition(distance int) error {
	if distance < 0 || distance > b.dataLen-b.readPos {
		return boundsError("AdvanceReadPosition", b.readPos, "read position beyond data length")
	}
	b.readPos += distance
	return nil
}

// UnreadLength returns the number of valid octets not yet consumed by
// sequential reads.
func (b *DataBuffer) UnreadLength() int {
	return b.dataLen - b.readPos
}

// Unread returns a view over the octets between the read position and the
// data length. The slice aliases the buffer's storage; it is not a copy.
func (b *DataBuffer) Unread() []byte {
	return b.buf[b.readPos:b.dataLen]
}

// Equal reports whether two buffers hold the same data: identical data
// lengths and identical leading dataLength octets. Capacity, ownership
// and read positions are irrelevant.
func (b *DataBuffer) Equal(other *DataBuffer) bool {
	if b.dataLen != other.dataLen {
		return false
	}
	return bytes.Equal(b.buf[:b.dataLen], other.buf[:other.dataLen])
}

// Byte returns the octet at the given index, bounded by capacity, not
// data length.
func (b *DataBuffer) Byte(index int) (byte, error) {
	if index < 0 || index >= len(b.buf) {
		return 0, boundsError("Byte", index, "index beyond buffer size")
	}
	return b.buf[index], nil
}

// SetByte stores an octet at the given index, bounded by capacity, not
// data length. The data length is not updated.
func (b *DataBuffer) SetByte(index int, value byte) error {
	if index < 0 || index >= len(b.buf) {
		return boundsError("SetByte", index, "index beyond buffer size")
	}
	b.buf[index] = value
	return nil
}

// checkAccess verifies that [offset, offset+size) lies inside the buffer.
func (b *DataBuffer) checkAccess(op string, offset, size int) error {
	if offset < 0 || size > len(b.buf) || offset > len(b.buf)-size {
		return boundsError(op, offset, "access beyond buffer size")
	}
	return nil
}

// Random-access writes. These respect neither the data length nor the
// read position; only the capacity bounds the operation.

// SetBytes copies the value octets into the buffer at the given offset.
// A zero-length value is a no-op.
func (b *DataBuffer) SetBytes(value []byte, offset int) error {
	if len(value) == 0 {
		return nil
	}
	if err := b.checkAccess("SetBytes", offset, len(value)); err != nil {
		return err
	}
	copy(b.buf[offset:], value)
	return nil
}

// SetUint8 stores an 8-bit value at the given offset.
func (b *DataBuffer) SetUint8(value uint8, offset int) error {
	if err := b.checkAccess("SetUint8", offset, 1); err != nil {
		return err
	}
	b.buf[offset] = value
	return nil
}

// SetInt8 stores a signed 8-bit value at the given offset.
func (b *DataBuffer) SetInt8(value int8, offset int) error {
	if err := b.checkAccess("SetInt8", offset, 1); err != nil {
		return err
	}
	b.buf[offset] = byte(value)
	return nil
}

// SetUint16 stores a 16-bit value at the given offset in network byte order.
func (b *DataBuffer) SetUint16(value uint16, offset int) error {
	if err := b.checkAccess("SetUint16", offset, wire.Fixed16Size); err != nil {
		return err
	}
	wire.PutUint16(b.buf[offset:], value)
	return nil
}

// SetInt16 stores a signed 16-bit value at the given offset in network byte order.
func (b *DataBuffer) SetInt16(value int16, offset int) error {
	return b.SetUint16(uint16(value), offset)
}

// SetUint32 stores a 32-bit value at the given offset in network byte order.
func (b *DataBuffer) SetUint32(value uint32, offset int) error {
	if err := b.checkAccess("SetUint32", offset, wire.Fixed32Size); err != nil {
		return err
	}
	wire.PutUint32(b.buf[offset:], value)
	return nil
}

// SetInt32 stores a signed 32-bit value at the given offset in network byte order.
func (b *DataBuffer) SetInt32(value int32, offset int) error {
	return b.SetUint32(uint32(value), offset)
}

// SetUint64 stores a 64-bit value at the given offset in network byte order.
func (b *DataBuffer) SetUint64(value uint64, offset int) error {
	if err := b.checkAccess("SetUint64", offset, wire.Fixed64Size); err != nil {
		return err
	}
	wire.PutUint64(b.buf[offset:], value)
	return nil
}

// SetInt64 stores a signed 64-bit value at the given offset in network byte order.
func (b *DataBuffer) SetInt64(value int64, offset int) error {
	return b.SetUint64(uint64(value), offset)
}

// SetFloat32 stores an IEEE-754 binary32 value at the given offset in
// network byte order.
func (b *DataBuffer) SetFloat32(value float32, offset int) error {
	if err := b.checkAccess("SetFloat32", offset, wire.Float32Size); err != nil {
		return err
	}
	wire.PutFloat32(b.buf[offset:], value)
	return nil
}

// SetFloat64 stores an IEEE-754 binary64 value at the given offset in
// network byte order.
func (b *DataBuffer) SetFloat64(value float64, offset int) error {
	if err := b.checkAccess("SetFloat64", offset, wire.Float64Size); err != nil {
		return err
	}
	wire.PutFloat64(b.buf[offset:], value)
	return nil
}

// Random-access reads, bounded by capacity like the writes.

// GetBytes fills dst with octets from the buffer at the given offset.
// A zero-length dst is a no-op.
func (b *DataBuffer) GetBytes(dst []byte, offset int) error {
	if len(dst) == 0 {
		return nil
	}
	if err := b.checkAccess("GetBytes", offset, len(dst)); err != nil {
		return err
	}
	copy(dst, b.buf[offset:])
	return nil
}

// GetUint8 reads an 8-bit value at the given offset.
func (b *DataBuffer) GetUint8(offset int) (uint8, error) {
	if err := b.checkAccess("GetUint8", offset, 1); err != nil {
		return 0, err
	}
	return b.buf[offset], nil
}

// GetInt8 reads a signed 8-bit value at the given offset.
func (b *DataBuffer) GetInt8(offset int) (int8, error) {
	v, err := b.GetUint8(offset)
	return int8(v), err
}

// GetUint16 reads a big-endian 16-bit value at the given offset.
func (b *DataBuffer) GetUint16(offset int) (uint16, error) {
	if err := b.checkAccess("GetUint16", offset, wire.Fixed16Size); err != nil {
		return 0, err
	}
	return wire.Uint16(b.buf[offset:]), nil
}

// GetInt16 reads a big-endian signed 16-bit value at the given offset.
func (b *DataBuffer) GetInt16(offset int) (int16, error) {
	v, err := b.GetUint16(offset)
	return int16(v), err
}

// GetUint32 reads a big-endian 32-bit value at the given offset.
func (b *DataBuffer) GetUint32(offset int) (uint32, error) {
	if err := b.checkAccess("GetUint32", offset, wire.Fixed32Size); err != nil {
		return 0, err
	}
	return wire.Uint32(b.buf[offset:]), nil
}

// GetInt32 reads a big-endian signed 32-bit value at the given offset.
func (b *DataBuffer) GetInt32(offset int) (int32, error) {
	v, err := b.GetUint32(offset)
	return int32(v), err
}

// GetUint64 reads a big-endian 64-bit value at the given offset.
func (b *DataBuffer) GetUint64(offset int) (uint64, error) {
	if err := b.checkAccess("GetUint64", offset, wire.Fixed64Size); err != nil {
		return 0, err
	}
	return wire.Uint64(b.buf[offset:]), nil
}

// GetInt64 reads a big-endian signed 64-bit value at the given offset.
func (b *DataBuffer) GetInt64(offset int) (int64, error) {
	v, err := b.GetUint64(offset)
	return int64(v), err
}

// GetFloat32 reads a big-endian IEEE-754 binary32 value at the given offset.
func (b *DataBuffer) GetFloat32(offset int) (float32, error) {
	if err := b.checkAccess("GetFloat32", offset, wire.Float32Size); err != nil {
		return 0, err
	}
	return wire.Float32(b.buf[offset:]), nil
}

// GetFloat64 reads a big-endian IEEE-754 binary64 value at the given offset.
func (b *DataBuffer) GetFloat64(offset int) (float64, error) {
	if err := b.checkAccess("GetFloat64", offset, wire.Float64Size); err != nil {
		return 0, err
	}
	return wire.Float64(b.buf[offset:]), nil
}

// Sequential writes. Each append places the value at the data length and
// advances it; capacity still bounds the write.

// AppendBytes appends the value octets at the data length.
func (b *DataBuffer) AppendBytes(value []byte) error {
	if err := b.SetBytes(value, b.dataLen); err != nil {
		return err
	}
	b.dataLen += len(value)
	return nil
}

// AppendUint8 appends an 8-bit value at the data length.
func (b *DataBuffer) AppendUint8(value uint8) error {
	if err := b.SetUint8(value, b.dataLen); err != nil {
		return err
	}
	b.dataLen++
	return nil
}

// AppendInt8 appends a signed 8-bit value at the data length.
func (b *DataBuffer) AppendInt8(value int8) error {
	return b.AppendUint8(uint8(value))
}

// AppendUint16 appends a 16-bit value at the data length in network byte order.
func (b *DataBuffer) AppendUint16(value uint16) error {
	if err := b.SetUint16(value, b.dataLen); err != nil {
		return err
	}
	b.dataLen += wire.Fixed16Size
	return nil
}

// AppendInt16 appends a signed 16-bit value at the data length in network byte order.
func (b *DataBuffer) AppendInt16(value int16) error {
	return b.AppendUint16(uint16(value))
}

// AppendUint32 appends a 32-bit value at the data length in network byte order.
func (b *DataBuffer) AppendUint32(value uint32) error {
	if err := b.SetUint32(value, b.dataLen); err != nil {
		return err
	}
	b.dataLen += wire.Fixed32Size
	return nil
}

// AppendInt32 appends a signed 32-bit value at the data length in network byte order.
func (b *DataBuffer) AppendInt32(value int32) error {
	return b.AppendUint32(uint32(value))
}

// AppendUint64 appends a 64-bit value at the data length in network byte order.
func (b *DataBuffer) AppendUint64(value uint64) error {
	if err := b.SetUint64(value, b.dataLen); err != nil {
		return err
	}
	b.dataLen += wire.Fixed64Size
	return nil
}

// AppendInt64 appends a signed 64-bit value at the data length in network byte order.
func (b *DataBuffer) AppendInt64(value int64) error {
	return b.AppendUint64(uint64(value))
}

// AppendFloat32 appends an IEEE-754 binary32 value at the data length in
// network byte order.
func (b *DataBuffer) AppendFloat32(value float32) error {
	if err := b.SetFloat32(value, b.dataLen); err != nil {
		return err
	}
	b.dataLen += wire.Float32Size
	return nil
}

// AppendFloat64 appends an IEEE-754 binary64 value at the data length in
// network byte order.
func (b *DataBuffer) AppendFloat64(value float64) error {
	if err := b.SetFloat64(value, b.dataLen); err != nil {
		return err
	}
	b.dataLen += wire.Float64Size
	return nil
}

// Sequential reads. Each read is checked against the data length, not
// just the capacity, and advances the read position on success.

// checkUnread verifies that size octets of valid data remain unread.
func (b *DataBuffer) checkUnread(op string, size int) error {
	if size < 0 || b.readPos+size > b.dataLen {
		return boundsError(op, b.readPos, "read beyond data length")
	}
	return nil
}

// ReadBytes fills dst with octets from the read position.
func (b *DataBuffer) ReadBytes(dst []byte) error {
	if err := b.checkUnread("ReadBytes", len(dst)); err != nil {
		return err
	}
	if err := b.GetBytes(dst, b.readPos); err != nil {
		return err
	}
	b.readPos += len(dst)
	return nil
}

// ReadUint8 reads an 8-bit value at the read position.
func (b *DataBuffer) ReadUint8() (uint8, error) {
	if err := b.checkUnread("ReadUint8", 1); err != nil {
		return 0, err
	}
	v, err := b.GetUint8(b.readPos)
	if err != nil {
		return 0, err
	}
	b.readPos++
	return v, nil
}

// ReadInt8 reads a signed 8-bit value at the read position.
func (b *DataBuffer) ReadInt8() (int8, error) {
	v, err := b.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads a big-endian 16-bit value at the read position.
func (b *DataBuffer) ReadUint16() (uint16, error) {
	if err := b.checkUnread("ReadUint16", wire.Fixed16Size); err != nil {
		return 0, err
	}
	v, err := b.GetUint16(b.readPos)
	if err != nil {
		return 0, err
	}
	b.readPos += wire.Fixed16Size
	return v, nil
}

// ReadInt16 reads a big-endian signed 16-bit value at the read position.
func (b *DataBuffer) ReadInt16() (int16, error) {
	v, err := b.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads a big-endian 32-bit value at the read position.
func (b *DataBuffer) ReadUint32() (uint32, error) {
	if err := b.checkUnread("ReadUint32", wire.Fixed32Size); err != nil {
		return 0, err
	}
	v, err := b.GetUint32(b.readPos)
	if err != nil {
		return 0, err
	}
	b.readPos += wire.Fixed32Size
	return v, nil
}

// ReadInt32 reads a big-endian signed 32-bit value at the read position.
func (b *DataBuffer) ReadInt32() (int32, error) {
	v, err := b.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads a big-endian 64-bit value at the read position.
func (b *DataBuffer) ReadUint64() (uint64, error) {
	if err := b.checkUnread("ReadUint64", wire.Fixed64Size); err != nil {
		return 0, err
	}
	v, err := b.GetUint64(b.readPos)
	if err != nil {
		return 0, err
	}
	b.readPos += wire.Fixed64Size
	return v, nil
}

// ReadInt64 reads a big-endian signed 64-bit value at the read position.
func (b *DataBuffer) ReadInt64() (int64, error) {
	v, err := b.ReadUint64()
	return int64(v), err
}

// ReadFloat32 reads a big-endian IEEE-754 binary32 value at the read position.
func (b *DataBuffer) ReadFloat32() (float32, error) {
	if err := b.checkUnread("ReadFloat32", wire.Float32Size); err != nil {
		return 0, err
	}
	v, err := b.GetFloat32(b.readPos)
	if err != nil {
		return 0, err
	}
	b.readPos += wire.Float32Size
	return v, nil
}

// ReadFloat64 reads a big-endian IEEE-754 binary64 value at the read position.
func (b *DataBuffer) ReadFloat64() (float64, error) {
	if err := b.checkUnread("ReadFloat64", wire.Float64Size); err != nil {
		return 0, err
	}
	v, err := b.GetFloat64(b.readPos)
	if err != nil {
		return 0, err
	}
	b.readPos += wire.Float64Size
	return v, nil
}

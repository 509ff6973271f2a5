package netbuf

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
// These can be checked using errors.Is().
var (
	// ErrOutOfBounds indicates a read or write that would touch memory
	// outside the buffer, or a cursor movement past the data length.
	ErrOutOfBounds = errors.New("netbuf: access out of bounds")

	// ErrMalformedVarint indicates a varint that does not terminate within
	// 10 octets or fails the canonical-form check for 10-octet encodings.
	ErrMalformedVarint = errors.New("netbuf: malformed varint")

	// ErrOutOfRange indicates a decoded varint that does not fit the
	// requested narrower integer type.
	ErrOutOfRange = errors.New("netbuf: value out of range")

	// ErrAllocation indicates buffer storage could not be allocated.
	ErrAllocation = errors.New("netbuf: allocation failed")

	// ErrInvalidArgument indicates nonsensical construction parameters.
	ErrInvalidArgument = errors.New("netbuf: invalid argument")
)

// BufferError provides context for a failed buffer operation.
// It implements the error interface and supports error unwrapping,
// so errors.Is() works against the sentinel errors above.
type BufferError struct {
	// Op is the operation that failed, e.g. "SetUint32".
	Op string

	// Offset is the buffer offset involved, or -1 if not applicable.
	Offset int

	// Message describes what went wrong.
	Message string

	// Cause is the underlying sentinel error.
	Cause error
}

// Error returns a formatted error message.
func (e *BufferError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("netbuf: %s at offset %d: %s", e.Op, e.Offset, e.Message)
	}
	return fmt.Sprintf("netbuf: %s: %s", e.Op, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *BufferError) Unwrap() error {
	return e.Cause
}

// NewBufferError creates a BufferError without offset context.
func NewBufferError(op, message string, cause error) *BufferError {
	return &BufferError{Op: op, Offset: -1, Message: message, Cause: cause}
}

// NewBufferErrorAt creates a BufferError with offset context.
func NewBufferErrorAt(op string, offset int, message string, cause error) *BufferError {
	return &BufferError{Op: op, Offset: offset, Message: message, Cause: cause}
}

// boundsError reports an access outside the buffer or data length.
func boundsError(op string, offset int, message string) error {
	return &BufferError{Op: op, Offset: offset, Message: message, Cause: ErrOutOfBounds}
}

package ebml

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSignature is returned when a stream does not start with the
	// EBML magic number.
	ErrBadSignature = errors.New("bad signature")

	// ErrUnexpectedEOF is returned when the stream ends before a declared
	// length has been satisfied.
	ErrUnexpectedEOF = errors.New("unexpected EOF")

	// ErrUnknownSize is returned for the reserved all-ones size encoding.
	// Elements of indeterminate size are not supported.
	ErrUnknownSize = errors.New("unknown-size element not supported")

	// ErrSpanMismatch is returned when the encoded length of a container's
	// children does not match the container's declared size.
	ErrSpanMismatch = errors.New("children overrun declared element size")

	// ErrInvalidString is returned when a string element holds invalid UTF-8.
	ErrInvalidString = errors.New("invalid UTF-8 string")

	// ErrMaxDepth is returned when element nesting exceeds the parser's
	// depth limit.
	ErrMaxDepth = errors.New("element nesting too deep")
)

// ParseError describes a parse failure: the stage that failed, the absolute
// byte offset the parser was at, and the element involved when known.
type ParseError struct {
	Stage  string
	Offset int64
	ID     uint64
	Err    error
}

func (e *ParseError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("ebml: %s at offset %d, element 0x%x: %v", e.Stage, e.Offset, e.ID, e.Err)
	}
	return fmt.Sprintf("ebml: %s at offset %d: %v", e.Stage, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Package errs defines the error taxonomy shared by the codec packages.
//
// The section, nibblepack and vector operations and the chunk envelope checks
// return one of the sentinel errors below, or an InvalidSectionTypeError
// carrying the offending tag byte. Errors from package compress (an unknown
// compression type, or a codec failing) are not sentinels from this package;
// chunk wraps codec failures with fmt.Errorf. Callers match with
// errors.Is / errors.As; errors are returned, never panicked across package
// boundaries.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotEnoughSpace indicates an output buffer (or a payload length
	// field) cannot accommodate the requested write.
	ErrNotEnoughSpace = errors.New("not enough space in output buffer")

	// ErrInputTooShort indicates a decode was attempted on a slice that is
	// empty or shorter than the minimum encoded form.
	ErrInputTooShort = errors.New("input too short to decode")

	// ErrBadLengthField indicates a declared length field disagrees with the
	// input: a section's payload length plus header bytes exceeds the
	// available slice, or a chunk payload does not decompress to the section
	// length recorded in its header.
	ErrBadLengthField = errors.New("declared section length exceeds input")

	// ErrInvalidMagicNumber indicates a chunk envelope does not start with
	// the expected magic number.
	ErrInvalidMagicNumber = errors.New("invalid chunk magic number")

	// ErrChecksumMismatch indicates a chunk payload does not hash to the
	// checksum recorded in its header.
	ErrChecksumMismatch = errors.New("chunk checksum mismatch")
)

// InvalidSectionTypeError reports a section tag byte outside the defined
// enumeration. The offending byte is retained for diagnostics.
type InvalidSectionTypeError struct {
	Type byte
}

func (e *InvalidSectionTypeError) Error() string {
	return fmt.Sprintf("invalid section type 0x%02x", e.Type)
}

// NewInvalidSectionType returns an InvalidSectionTypeError for the given
// tag byte.
func NewInvalidSectionType(b byte) error {
	return &InvalidSectionTypeError{Type: b}
}

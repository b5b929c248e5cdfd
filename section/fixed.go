package section

import (
	"iter"

	"github.com/graydon/compressed-vec/errs"
)

// FixedSection is a section with a fixed number of elements; a compressed
// vector is a concatenation of fixed sections. The set of implementations is
// closed: NullFixedSection, NibblePackU64FixedSection and
// NibblePackU32FixedSection. Values are lightweight descriptors; the section
// bytes themselves are passed alongside.
type FixedSection interface {
	// NumBytes is the total length of the section including the type byte.
	NumBytes() int
	// NumElements is the number of elements the section represents,
	// always FixedLen.
	NumElements() int
}

// NewFixedSection extracts a FixedSection descriptor from a slice whose
// first byte is the section type byte. The slice must contain at least all
// the data in the section.
//
// Returns:
//   - FixedSection: The decoded descriptor
//   - error: errs.ErrInputTooShort on empty input,
//     errs.InvalidSectionTypeError on an unknown tag, or
//     errs.ErrBadLengthField when the declared payload exceeds the slice
func NewFixedSection(data []byte) (FixedSection, error) {
	if len(data) == 0 {
		return nil, errs.ErrInputTooShort
	}

	typ, err := TypeFromByte(data[0])
	if err != nil {
		return nil, err
	}

	switch typ {
	case TypeNull:
		return NullFixedSection{}, nil
	case TypeNibblePackedU64Medium:
		return NewNibblePackU64FixedSection(data)
	case TypeNibblePackedU32Medium:
		return NewNibblePackU32FixedSection(data)
	default:
		return nil, errs.NewInvalidSectionType(data[0])
	}
}

// IsNull reports whether sect is a null section.
func IsNull(sect FixedSection) bool {
	_, ok := sect.(NullFixedSection)
	return ok
}

// NullFixedSection represents 256 null or missing elements. Its binary
// representation consists solely of a TypeNull byte.
type NullFixedSection struct{}

// NumBytes returns 1: the type byte is the whole section.
func (NullFixedSection) NumBytes() int {
	return 1
}

func (NullFixedSection) NumElements() int {
	return FixedLen
}

// WriteNullSection writes the one-byte marker for a null section at offset
// and returns offset+1.
//
// Returns:
//   - int: The offset just past the written byte
//   - error: errs.ErrNotEnoughSpace if offset is outside out
func WriteNullSection(out []byte, offset int) (int, error) {
	if offset < 0 || offset >= len(out) {
		return 0, errs.ErrNotEnoughSpace
	}
	out[offset] = TypeNull.Byte()

	return offset + 1, nil
}

// AllSections returns a lazy iterator over the concatenated fixed sections
// in data. Each step yields the section descriptor and the remaining byte
// slice starting at that section's type byte.
//
// Iteration terminates on the first slice that does not parse as a section:
// an empty remainder, an invalid tag, or a truncated declared payload. This
// makes the iterator tolerant of a trailing empty region in a larger buffer.
func AllSections(data []byte) iter.Seq2[FixedSection, []byte] {
	return func(yield func(FixedSection, []byte) bool) {
		remaining := data
		for {
			sect, err := NewFixedSection(remaining)
			if err != nil {
				return
			}
			if !yield(sect, remaining) {
				return
			}
			remaining = remaining[sect.NumBytes():]
		}
	}
}

// medEncodedLength reads and validates the payload length field shared by
// the medium section layouts.
func medEncodedLength(sectBytes []byte) (uint16, error) {
	if len(sectBytes) < medHeaderSize {
		return 0, errs.ErrInputTooShort
	}

	encodedBytes := engine.Uint16(sectBytes[1:medHeaderSize])
	if int(encodedBytes)+medHeaderSize > len(sectBytes) {
		return 0, errs.ErrBadLengthField
	}

	return encodedBytes, nil
}

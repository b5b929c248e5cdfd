package section

import (
	"iter"

	"github.com/graydon/compressed-vec/errs"
	"github.com/graydon/compressed-vec/nibblepack"
)

// NibblePackU64FixedSection describes a medium fixed section of 256
// nibble-packed u64 elements.
type NibblePackU64FixedSection struct {
	encodedBytes uint16
}

// NewNibblePackU64FixedSection parses the descriptor from a byte slice
// starting at the section type byte. The slice must be at least as large as
// the length field indicates.
func NewNibblePackU64FixedSection(sectBytes []byte) (NibblePackU64FixedSection, error) {
	encodedBytes, err := medEncodedLength(sectBytes)
	if err != nil {
		return NibblePackU64FixedSection{}, err
	}

	return NibblePackU64FixedSection{encodedBytes: encodedBytes}, nil
}

// NumBytes returns the total section length including the 3 prefix bytes.
func (s NibblePackU64FixedSection) NumBytes() int {
	return int(s.encodedBytes) + medHeaderSize
}

func (s NibblePackU64FixedSection) NumElements() int {
	return FixedLen
}

// All returns a lazy sequence of the section's 256 values decoded from
// sectBytes, which must start at the section type byte.
func (s NibblePackU64FixedSection) All(sectBytes []byte) iter.Seq[uint64] {
	return nibblepack.IterU64(sectBytes[medHeaderSize:], FixedLen)
}

// WriteU64Section encodes a medium u64 fixed section at offset, nibble
// packing the values and filling in the length field. The length is written
// last: only after the write succeeds should container metadata be advanced,
// since a partial failure leaves the length field unset.
//
// values must contain exactly FixedLen elements.
//
// Returns:
//   - int: The offset just past the last written byte
//   - error: errs.ErrNotEnoughSpace when the buffer cannot hold the section
//     or the payload exceeds the medium cap
func WriteU64Section(out []byte, offset int, values []uint64) (int, error) {
	if len(values) != FixedLen {
		panic("section: WriteU64Section requires exactly 256 values")
	}
	if offset < 0 || offset >= len(out) {
		return 0, errs.ErrNotEnoughSpace
	}
	out[offset] = TypeNibblePackedU64Medium.Byte()

	off := offset + medHeaderSize
	var err error
	for i := 0; i < FixedLen; i += nibblepack.GroupSize {
		off, err = nibblepack.Pack8((*[8]uint64)(values[i:i+nibblepack.GroupSize]), out, off)
		if err != nil {
			return 0, err
		}
	}

	numBytes := off - offset - medHeaderSize
	if numBytes > MaxSectionPayload {
		return 0, errs.ErrNotEnoughSpace
	}
	engine.PutUint16(out[offset+1:offset+medHeaderSize], uint16(numBytes)) //nolint:gosec

	return off, nil
}

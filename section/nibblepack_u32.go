package section

import (
	"github.com/graydon/compressed-vec/errs"
	"github.com/graydon/compressed-vec/nibblepack"
)

// NibblePackU32FixedSection describes a medium fixed section of 256
// nibble-packed u32 elements. The encode path widens values to u64 and
// reuses the u64 group packer; the decode path narrows through the 8-wide
// u32 sink stride.
type NibblePackU32FixedSection struct {
	encodedBytes uint16
}

// NewNibblePackU32FixedSection parses the descriptor from a byte slice
// starting at the section type byte. The slice must be at least as large as
// the length field indicates.
func NewNibblePackU32FixedSection(sectBytes []byte) (NibblePackU32FixedSection, error) {
	encodedBytes, err := medEncodedLength(sectBytes)
	if err != nil {
		return NibblePackU32FixedSection{}, err
	}

	return NibblePackU32FixedSection{encodedBytes: encodedBytes}, nil
}

// NumBytes returns the total section length including the 3 prefix bytes.
func (s NibblePackU32FixedSection) NumBytes() int {
	return int(s.encodedBytes) + medHeaderSize
}

func (s NibblePackU32FixedSection) NumElements() int {
	return FixedLen
}

// DecodeU32SectionToSink decodes a u32 medium section into sink, 8 values
// per stride, until 256 values have been produced. sectBytes must start at
// the section type byte.
//
// Example materializing the whole section:
//
//	sink := nibblepack.NewU32x256Sink()
//	if err := section.DecodeU32SectionToSink(sectBytes, sink); err != nil {
//	    return err
//	}
//	// sink.Values now holds the 256 decoded values.
func DecodeU32SectionToSink(sectBytes []byte, sink nibblepack.SinkU32) error {
	if len(sectBytes) < medHeaderSize {
		return errs.ErrInputTooShort
	}

	in := sectBytes[medHeaderSize:]
	var err error
	for valuesLeft := FixedLen; valuesLeft > 0; valuesLeft -= nibblepack.GroupSize {
		in, err = nibblepack.Unpack8U32(in, sink)
		if err != nil {
			return err
		}
	}

	return nil
}

// UnpackU32Section materializes a whole u32 medium section into an array.
func UnpackU32Section(sectBytes []byte) ([FixedLen]uint32, error) {
	sink := nibblepack.NewU32x256Sink()
	if err := DecodeU32SectionToSink(sectBytes, sink); err != nil {
		return sink.Values, err
	}

	return sink.Values, nil
}

// WriteU32Section encodes a medium u32 fixed section at offset, widening
// the values to u64 and nibble packing them. As with WriteU64Section the
// length field is written last.
//
// values must contain exactly FixedLen elements.
//
// Returns:
//   - int: The offset just past the last written byte
//   - error: errs.ErrNotEnoughSpace when the buffer cannot hold the section
//     or the payload exceeds the medium cap
func WriteU32Section(out []byte, offset int, values []uint32) (int, error) {
	if len(values) != FixedLen {
		panic("section: WriteU32Section requires exactly 256 values")
	}
	if offset < 0 || offset >= len(out) {
		return 0, errs.ErrNotEnoughSpace
	}
	out[offset] = TypeNibblePackedU32Medium.Byte()

	widened := func(yield func(uint64) bool) {
		for _, v := range values {
			if !yield(uint64(v)) {
				return
			}
		}
	}
	off, err := nibblepack.PackU64(widened, out, offset+medHeaderSize)
	if err != nil {
		return 0, err
	}

	numBytes := off - offset - medHeaderSize
	if numBytes > MaxSectionPayload {
		return 0, errs.ErrNotEnoughSpace
	}
	engine.PutUint16(out[offset+1:offset+medHeaderSize], uint16(numBytes)) //nolint:gosec

	return off, nil
}

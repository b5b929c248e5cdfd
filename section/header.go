package section

import "github.com/graydon/compressed-vec/errs"

// Header is the 5-byte header of a variable-sized section. Sections can
// denote different encodings and be large enough to allow quick skipping
// over elements for faster access.
type Header struct {
	// NumBytes is the number of payload bytes following the header.
	NumBytes uint16
	// NumElements is the number of elements represented in the payload.
	NumElements uint16
	// Type is the payload encoding.
	Type SectionType
}

// WriteToSlice serializes the header into buf at offset.
//
// Returns:
//   - error: errs.ErrNotEnoughSpace if fewer than HeaderSize bytes remain
func (h Header) WriteToSlice(buf []byte, offset int) error {
	if offset < 0 || offset+HeaderSize > len(buf) {
		return errs.ErrNotEnoughSpace
	}

	engine.PutUint16(buf[offset:], h.NumBytes)
	engine.PutUint16(buf[offset+2:], h.NumElements)
	buf[offset+4] = h.Type.Byte()

	return nil
}

// ParseHeader deserializes a header from the start of data.
//
// Returns:
//   - Header: The parsed header
//   - error: errs.ErrInputTooShort if data holds fewer than HeaderSize
//     bytes, or errs.InvalidSectionTypeError on an unknown type byte
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInputTooShort
	}

	typ, err := TypeFromByte(data[4])
	if err != nil {
		return Header{}, err
	}

	return Header{
		NumBytes:    engine.Uint16(data[0:2]),
		NumElements: engine.Uint16(data[2:4]),
		Type:        typ,
	}, nil
}

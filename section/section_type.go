package section

import "github.com/graydon/compressed-vec/errs"

// SectionType is the 1-byte tag identifying a section's payload encoding.
// For fixed sections it is the first (and maybe only) byte of the section;
// for header-based sections it is the byte at offset 4 of the header.
type SectionType uint8

const (
	// TypeNull marks a run of unavailable or null elements.
	TypeNull SectionType = 0
	// TypeNibblePackedU64Medium marks nibble-packed u64s, payload < 64KB.
	TypeNibblePackedU64Medium SectionType = 1
	// TypeNibblePackedU32Medium marks nibble-packed u32s, payload < 64KB.
	TypeNibblePackedU32Medium SectionType = 2
)

// TypeFromByte decodes a SectionType from its wire byte.
//
// Returns:
//   - SectionType: The decoded type
//   - error: errs.InvalidSectionTypeError if b is outside the enumeration
func TypeFromByte(b byte) (SectionType, error) {
	switch SectionType(b) {
	case TypeNull, TypeNibblePackedU64Medium, TypeNibblePackedU32Medium:
		return SectionType(b), nil
	default:
		return 0, errs.NewInvalidSectionType(b)
	}
}

// Byte returns the wire encoding of the type.
func (t SectionType) Byte() byte {
	return byte(t)
}

func (t SectionType) String() string {
	switch t {
	case TypeNull:
		return "Null"
	case TypeNibblePackedU64Medium:
		return "NibblePackedU64Medium"
	case TypeNibblePackedU32Medium:
		return "NibblePackedU32Medium"
	default:
		return "Unknown"
	}
}

package section

import (
	"math"

	"github.com/graydon/compressed-vec/endian"
)

const (
	// HeaderSize is the size of the variable-section header in bytes.
	HeaderSize = 5
	// FixedLen is the number of elements in every fixed section. It is 256
	// so that whole sections line up with 8-wide decode strides.
	// Don't adjust this unless you know what you're doing.
	FixedLen = 256
	// MaxSectionPayload is the payload byte cap of a medium section.
	MaxSectionPayload = math.MaxUint16

	// medHeaderSize is the fixed prefix of a medium section: the type byte
	// plus the 2-byte payload length.
	medHeaderSize = 3
)

// The wire format is fixed little-endian.
var engine = endian.GetLittleEndianEngine()

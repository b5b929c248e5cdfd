// Package section defines the sectioned layout of a compressed binary vector.
//
// A binary vector is a contiguous byte sequence made of one or more sections.
// Each section carries a self-describing header and a payload encoding either
// a run of null elements or a compressed batch of fixed-width unsigned
// integers. Readers can scan and skip sections without decoding them; writers
// can pack heterogeneous encodings into one output buffer.
//
// # Section varieties
//
// There are two varieties of sections. Writer-managed variable-sized sections
// carry a 5-byte header and are produced through Writer; fixed sections
// always represent exactly 256 elements and begin with a single type byte.
//
// # Variable-section header (5 bytes, little-endian)
//
//	Bytes  | Field       | Type   | Description
//	-------|-------------|--------|--------------------------------------
//	0-1    | NumBytes    | uint16 | Payload length following this header
//	2-3    | NumElements | uint16 | Elements represented in the payload
//	4      | Type        | uint8  | SectionType of the payload
//
// # Fixed-section layouts
//
// Every fixed section begins with its SectionType byte; the rest of the
// layout is variant-specific:
//
//	Null:
//	  +0  TypeNull                          (total length 1 byte, 256 implicit nulls)
//
//	NibblePacked u64/u32 medium:
//	  +0  type byte
//	  +1  2-byte LE length L of the encoded payload
//	  +3  nibble-packed encoding of 256 values  (total length 3+L, L <= 65535)
//
// The concatenation of sections IS the vector; there is no outer envelope.
// All multi-byte integers are little-endian.
//
// # Ownership
//
// Sections are borrowed views over an externally owned byte buffer. Decoding
// allocates nothing beyond the caller-supplied sink. A Writer exclusively
// owns its output buffer for its lifetime; the header bytes reserved at the
// start of each section are rewritten in place as the payload grows.
package section

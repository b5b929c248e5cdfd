// Package nibblepack implements the variable-width integer encoding used by
// the medium fixed sections.
//
// Values are packed in groups of 8. Each group starts with a nonzero bitmask
// byte: bit i is set when value i of the group is nonzero. An all-zero group
// costs exactly one byte. A group with any nonzero value adds a layout byte
// packing the retained nibble count minus one in the high nibble and the
// number of dropped trailing zero nibbles in the low nibble, followed by the
// retained nibbles of each nonzero value, low nibble first.
//
// Group layout:
//
//	+0  nonzero bitmask (1 byte)
//	+1  layout byte: (nibbleCount-1)<<4 | trailingZeroNibbles
//	+2  packed nibbles of the nonzero values, two per byte
//
// The nibble window is shared by the whole group: it spans from the smallest
// trailing-zero-nibble count to the largest significant nibble across the
// group's nonzero values, so similar magnitudes pack tightly.
//
// Encoders write at explicit offsets into caller-owned buffers and fail with
// errs.ErrNotEnoughSpace when the buffer cannot hold a group. Decoders read
// forward-only and fail with errs.ErrInputTooShort on truncation; the lazy
// iterator and sink drivers perform no allocation.
package nibblepack

// Package endian provides the byte order engine used by the codec packages.
//
// It combines the ByteOrder and AppendByteOrder interfaces from Go's standard
// encoding/binary package into a single EndianEngine interface, so codec code
// can both write at fixed offsets (section headers rewritten in place) and
// append to growing buffers (chunk envelopes) through one value.
//
// The sectioned vector wire format is fixed little-endian, so
// GetLittleEndianEngine is the only engine the codec needs; there is no
// endianness negotiation and no big-endian variant of the format.
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// This interface is satisfied by binary.LittleEndian from the standard
// library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the byte order of
// the wire format.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

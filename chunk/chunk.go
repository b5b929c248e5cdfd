// Package chunk wraps a compressed vector in an at-rest envelope.
//
// The envelope is a byte format only; it performs no I/O. It records the
// compression applied to the vector's section bytes and an xxHash64
// checksum so corruption is detected before sections are handed to readers.
//
// # Envelope layout (16 bytes, little-endian, payload follows)
//
//	Bytes  | Field         | Type   | Description
//	-------|---------------|--------|----------------------------------
//	0-1    | Magic         | uint16 | 0xEC10, chunk format v1
//	2      | Compression   | uint8  | format.CompressionType of payload
//	3      | Reserved      | uint8  | Must be zero
//	4-7    | SectionLength | uint32 | Uncompressed section byte count
//	8-15   | Checksum      | uint64 | xxHash64 of the section bytes
package chunk

import (
	"fmt"
	"math"

	"github.com/graydon/compressed-vec/compress"
	"github.com/graydon/compressed-vec/endian"
	"github.com/graydon/compressed-vec/errs"
	"github.com/graydon/compressed-vec/format"
	"github.com/graydon/compressed-vec/internal/hash"
	"github.com/graydon/compressed-vec/internal/pool"
)

const (
	// HeaderSize is the fixed envelope header size in bytes.
	HeaderSize = 16
	// MagicV1 identifies version 1 of the chunk format.
	MagicV1 = 0xEC10
)

var engine = endian.GetLittleEndianEngine()

// Header is the fixed-size descriptor at the start of a chunk.
type Header struct {
	Magic         uint16
	Compression   format.CompressionType
	SectionLength uint32
	Checksum      uint64
}

// AppendTo serializes the header onto buf and returns the extended slice.
func (h Header) AppendTo(buf []byte) []byte {
	buf = engine.AppendUint16(buf, h.Magic)
	buf = append(buf, byte(h.Compression), 0)
	buf = engine.AppendUint32(buf, h.SectionLength)
	buf = engine.AppendUint64(buf, h.Checksum)

	return buf
}

// ParseHeader deserializes and validates a chunk header.
//
// Returns:
//   - Header: The parsed header
//   - error: errs.ErrInputTooShort if data holds fewer than HeaderSize
//     bytes, or errs.ErrInvalidMagicNumber on a magic mismatch
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInputTooShort
	}

	h := Header{
		Magic:         engine.Uint16(data[0:2]),
		Compression:   format.CompressionType(data[2]),
		SectionLength: engine.Uint32(data[4:8]),
		Checksum:      engine.Uint64(data[8:16]),
	}
	if h.Magic != MagicV1 {
		return Header{}, errs.ErrInvalidMagicNumber
	}

	return h, nil
}

// Pack wraps a vector's section bytes into a chunk, compressing the payload
// with the given compression type.
//
// Returns:
//   - []byte: The chunk bytes, owned by the caller
//   - error: An error for an unknown compression type or a failed
//     compression
func Pack(sectionBytes []byte, compression format.CompressionType) ([]byte, error) {
	if len(sectionBytes) > math.MaxUint32 {
		return nil, errs.ErrNotEnoughSpace
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(sectionBytes)
	if err != nil {
		return nil, fmt.Errorf("chunk compression failed: %w", err)
	}

	h := Header{
		Magic:         MagicV1,
		Compression:   compression,
		SectionLength: uint32(len(sectionBytes)),
		Checksum:      hash.Sum64(sectionBytes),
	}

	bb := pool.GetChunkBuffer()
	bb.B = h.AppendTo(bb.B)
	bb.B = append(bb.B, compressed...)

	out := make([]byte, bb.Len())
	copy(out, bb.B)
	pool.PutChunkBuffer(bb)

	return out, nil
}

// Unpack validates a chunk and returns its uncompressed section bytes.
//
// Returns:
//   - []byte: The section bytes, owned by the caller
//   - error: errs.ErrInputTooShort, errs.ErrInvalidMagicNumber,
//     errs.ErrBadLengthField when the payload does not decompress to the
//     declared length, or errs.ErrChecksumMismatch on corruption
func Unpack(data []byte) ([]byte, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}

	sectionBytes, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("chunk decompression failed: %w", err)
	}

	if len(sectionBytes) != int(h.SectionLength) {
		return nil, errs.ErrBadLengthField
	}
	if hash.Sum64(sectionBytes) != h.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	return sectionBytes, nil
}

// Package compressedvec provides a compact binary format for vectors of
// unsigned integers.
//
// A vector is a concatenation of self-describing sections. Each section
// represents exactly 256 elements and encodes them either as an implicit
// run of nulls (one byte) or as a nibble-packed batch of fixed-width
// integers with a payload under 64KB. Readers can scan and skip sections
// without decoding them; decoding streams values through caller-supplied
// sinks without heap allocation.
//
// # Basic Usage
//
// Encoding and decoding a vector:
//
//	data, _ := compressedvec.EncodeU64([]uint64{1, 2, 3, 1000})
//
//	values, _ := compressedvec.DecodeU64(data)
//	// values holds the original elements plus zero padding up to a
//	// multiple of 256
//
// Wrapping a vector in a compressed, checksummed chunk for storage:
//
//	packed, _ := compressedvec.PackChunk(data, format.CompressionZstd)
//	restored, _ := compressedvec.UnpackChunk(packed)
//
// # Package Structure
//
// This package provides thin wrappers over the lower-level packages:
//
//   - section: section layouts, the section writer, and fixed-section readers
//   - nibblepack: the integer packing primitives and sink abstractions
//   - vector: appenders and readers aggregating sections into vectors
//   - chunk: the at-rest envelope with compression and checksums
//   - compress: the compression codecs used by chunk
//
// For fine-grained control (streaming appends, custom sinks, section-level
// access), use those packages directly.
package compressedvec

import (
	"slices"

	"github.com/graydon/compressed-vec/chunk"
	"github.com/graydon/compressed-vec/errs"
	"github.com/graydon/compressed-vec/format"
	"github.com/graydon/compressed-vec/vector"
)

// EncodeU64 encodes values into a compressed vector. The final partial
// 256-element batch, if any, is zero-padded.
func EncodeU64(values []uint64) ([]byte, error) {
	appender := vector.NewU64Appender()
	if err := appender.AppendSlice(values); err != nil {
		return nil, err
	}

	return appender.Finish()
}

// EncodeU32 encodes values into a compressed vector. The final partial
// 256-element batch, if any, is zero-padded.
func EncodeU32(values []uint32) ([]byte, error) {
	appender := vector.NewU32Appender()
	if err := appender.AppendSlice(values); err != nil {
		return nil, err
	}

	return appender.Finish()
}

// DecodeU64 materializes every element of a vector, 256 per section. For
// streaming access use vector.NewReader(data).AllU64() instead.
func DecodeU64(data []byte) ([]uint64, error) {
	reader := vector.NewReader(data)
	values := slices.Collect(reader.AllU64())
	if len(values) != reader.NumElements() {
		// The lazy iteration stops early only when a section's payload fails
		// to decode mid-vector.
		return nil, errs.ErrInputTooShort
	}

	return values, nil
}

// DecodeU32 materializes every element of a vector, 256 per section. For
// streaming access use vector.NewReader(data).AllU32() instead.
func DecodeU32(data []byte) ([]uint32, error) {
	reader := vector.NewReader(data)
	values := slices.Collect(reader.AllU32())
	if len(values) != reader.NumElements() {
		return nil, errs.ErrInputTooShort
	}

	return values, nil
}

// PackChunk wraps vector bytes in a compressed, checksummed chunk envelope.
func PackChunk(vectorBytes []byte, compression format.CompressionType) ([]byte, error) {
	return chunk.Pack(vectorBytes, compression)
}

// UnpackChunk validates a chunk envelope and returns the vector bytes.
func UnpackChunk(data []byte) ([]byte, error) {
	return chunk.Unpack(data)
}

// VectorID returns the xxHash64 fingerprint of a vector's bytes.
func VectorID(data []byte) uint64 {
	return vector.ContentID(data)
}

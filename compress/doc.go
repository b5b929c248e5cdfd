// Package compress provides compression codecs for whole-vector payloads.
//
// Nibble packing already exploits the per-value redundancy inside a section;
// these codecs are a second, optional stage applied by the chunk envelope to
// a vector's concatenated section bytes at rest.
//
// The package defines three interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Supported algorithms, selected by format.CompressionType:
//   - None: pass-through (fastest, largest)
//   - Zstd: high ratio, moderate speed; pure-Go backend by default, with a
//     cgo backend selectable via the gozstd build tag
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio
//   - XZ: highest ratio, slowest; for cold archival
//
// All codecs are stateless values safe for concurrent use; pooled encoder
// state is managed internally.
package compress

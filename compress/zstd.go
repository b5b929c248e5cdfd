package compress

// ZstdCompressor provides Zstandard compression for vector payloads. It
// favors compression ratio over speed, which suits cold storage and network
// transmission of chunked vectors.
//
// Two backends exist behind build tags: the default pure-Go implementation
// (klauspost/compress/zstd) and a cgo binding (valyala/gozstd) selected with
// the gozstd build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

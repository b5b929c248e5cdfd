package compressedvec

import (
	"testing"

	"github.com/graydon/compressed-vec/format"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeU64(t *testing.T) {
	values := make([]uint64, 700)
	for i := range values {
		values[i] = uint64(i) * uint64(i)
	}

	data, err := EncodeU64(values)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := DecodeU64(data)
	require.NoError(t, err)
	require.Len(t, decoded, 768, "three 256-element sections")
	require.Equal(t, values, decoded[:700])
	for _, v := range decoded[700:] {
		require.Zero(t, v)
	}
}

func TestEncodeDecodeU32(t *testing.T) {
	values := []uint32{0, 1, 2, 4294967295, 42}

	data, err := EncodeU32(values)
	require.NoError(t, err)

	decoded, err := DecodeU32(data)
	require.NoError(t, err)
	require.Len(t, decoded, 256)
	require.Equal(t, values, decoded[:len(values)])
}

func TestEncodeU64_AllZeros(t *testing.T) {
	data, err := EncodeU64(make([]uint64, 512))
	require.NoError(t, err)
	require.Len(t, data, 2, "all-zero vector encodes as two null bytes")
}

func TestChunkRoundTrip(t *testing.T) {
	values := make([]uint64, 300)
	for i := range values {
		values[i] = uint64(i) % 7
	}

	data, err := EncodeU64(values)
	require.NoError(t, err)

	packed, err := PackChunk(data, format.CompressionZstd)
	require.NoError(t, err)

	restored, err := UnpackChunk(packed)
	require.NoError(t, err)
	require.Equal(t, data, restored)

	decoded, err := DecodeU64(restored)
	require.NoError(t, err)
	require.Equal(t, values, decoded[:300])
}

func TestVectorID(t *testing.T) {
	data1, err := EncodeU64([]uint64{5, 6, 7})
	require.NoError(t, err)
	data2, err := EncodeU64([]uint64{5, 6, 7})
	require.NoError(t, err)
	data3, err := EncodeU64([]uint64{5, 6, 8})
	require.NoError(t, err)

	require.Equal(t, VectorID(data1), VectorID(data2))
	require.NotEqual(t, VectorID(data1), VectorID(data3))
}

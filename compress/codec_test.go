package compress

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/graydon/compressed-vec/format"
	"github.com/stretchr/testify/require"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
	format.CompressionXZ,
}

func compressibleData(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i / 32)
	}

	return data
}

func TestCodecs_RoundTrip(t *testing.T) {
	data := compressibleData(16 * 1024)

	for _, typ := range allTypes {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(data, decompressed))
		})
	}
}

func TestCodecs_RoundTripIncompressible(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]byte, 4096)
	rng.Read(data)

	for _, typ := range allTypes {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(data, decompressed))
		})
	}
}

func TestCodecs_CompressionReducesSize(t *testing.T) {
	data := compressibleData(64 * 1024)

	for _, typ := range allTypes {
		if typ == format.CompressionNone {
			continue
		}
		codec, err := GetCodec(typ)
		require.NoError(t, err)

		compressed, err := codec.Compress(data)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(data), "%s should compress repetitive data", typ)
	}
}

func TestCreateCodec(t *testing.T) {
	for _, typ := range allTypes {
		codec, err := CreateCodec(typ, "chunk")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0xEE), "chunk")
	require.Error(t, err)
	require.Contains(t, err.Error(), "chunk")
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0))
	require.Error(t, err)
}

func TestNoOp_SharesInput(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte{1, 2, 3}

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, compressed)
	require.Same(t, &data[0], &compressed[0], "Compress must return the input's memory")

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
	require.Same(t, &data[0], &decompressed[0], "Decompress must return the input's memory")
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, typ := range allTypes {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestDecompress_CorruptInput(t *testing.T) {
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02}

	for _, typ := range []format.CompressionType{format.CompressionZstd, format.CompressionXZ} {
		codec, err := GetCodec(typ)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, "%s must reject garbage input", typ)
	}
}

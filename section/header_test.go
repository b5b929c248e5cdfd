package section

import (
	"testing"

	"github.com/graydon/compressed-vec/errs"
	"github.com/stretchr/testify/require"
)

func TestHeader_WriteParseRoundTrip(t *testing.T) {
	original := Header{
		NumBytes:    1234,
		NumElements: 256,
		Type:        TypeNibblePackedU64Medium,
	}

	buf := make([]byte, HeaderSize+3)
	require.NoError(t, original.WriteToSlice(buf, 3))

	parsed, err := ParseHeader(buf[3:])
	require.NoError(t, err)
	require.Equal(t, original, parsed)
}

func TestHeader_WireLayout(t *testing.T) {
	h := Header{NumBytes: 0x0102, NumElements: 0x0304, Type: TypeNibblePackedU32Medium}

	buf := make([]byte, HeaderSize)
	require.NoError(t, h.WriteToSlice(buf, 0))

	// Little-endian u16 num_bytes, u16 num_elements, then the type byte.
	require.Equal(t, []byte{0x02, 0x01, 0x04, 0x03, 0x02}, buf)
}

func TestHeader_WriteToSlice_NotEnoughSpace(t *testing.T) {
	h := Header{Type: TypeNull}

	require.ErrorIs(t, h.WriteToSlice(make([]byte, HeaderSize-1), 0), errs.ErrNotEnoughSpace)
	require.ErrorIs(t, h.WriteToSlice(make([]byte, 16), 12), errs.ErrNotEnoughSpace)
	require.ErrorIs(t, h.WriteToSlice(make([]byte, 16), -1), errs.ErrNotEnoughSpace)
}

func TestParseHeader_Errors(t *testing.T) {
	t.Run("Input too short", func(t *testing.T) {
		_, err := ParseHeader([]byte{1, 2, 3})
		require.ErrorIs(t, err, errs.ErrInputTooShort)
	})

	t.Run("Invalid type byte", func(t *testing.T) {
		_, err := ParseHeader([]byte{0, 0, 0, 0, 0xAB})

		var invalidErr *errs.InvalidSectionTypeError
		require.ErrorAs(t, err, &invalidErr)
		require.Equal(t, byte(0xAB), invalidErr.Type)
	})
}

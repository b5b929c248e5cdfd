package section

import (
	"slices"
	"testing"

	"github.com/graydon/compressed-vec/errs"
	"github.com/graydon/compressed-vec/nibblepack"
	"github.com/stretchr/testify/require"
)

func incrementingU64(n int) []uint64 {
	values := make([]uint64, n)
	for i := range values {
		values[i] = uint64(i)
	}

	return values
}

func TestWriteNullSection(t *testing.T) {
	buf := make([]byte, 4)

	off, err := WriteNullSection(buf, 0)
	require.NoError(t, err)
	require.Equal(t, 1, off)

	// Two consecutive null writes produce two independent sections.
	off, err = WriteNullSection(buf, off)
	require.NoError(t, err)
	require.Equal(t, 2, off)

	count := 0
	for sect := range AllSections(buf[:off]) {
		require.True(t, IsNull(sect))
		require.Equal(t, 1, sect.NumBytes())
		require.Equal(t, FixedLen, sect.NumElements())
		count++
	}
	require.Equal(t, 2, count)

	_, err = WriteNullSection(buf, 4)
	require.ErrorIs(t, err, errs.ErrNotEnoughSpace)
}

func TestWriteU64Section_NoRoom(t *testing.T) {
	data := incrementingU64(FixedLen)

	// No room for the 3-byte prefix.
	_, err := WriteU64Section(make([]byte, 2), 0, data)
	require.ErrorIs(t, err, errs.ErrNotEnoughSpace)

	// Needs ~312 bytes to nibble pack the inputs above.
	_, err = WriteU64Section(make([]byte, 100), 0, data)
	require.ErrorIs(t, err, errs.ErrNotEnoughSpace)
}

func TestWriteU64Section_RoundTrip(t *testing.T) {
	data := incrementingU64(FixedLen)
	buf := make([]byte, 1024)

	off, err := WriteU64Section(buf, 0, data)
	require.NoError(t, err)

	// Length field consistency: the little-endian u16 at offset+1 equals
	// new_offset - offset - 3.
	require.Equal(t, uint16(off-3), engine.Uint16(buf[1:3])) //nolint:gosec

	sect, err := NewFixedSection(buf[:off])
	require.NoError(t, err)
	require.Equal(t, off, sect.NumBytes())

	npSect, ok := sect.(NibblePackU64FixedSection)
	require.True(t, ok)
	require.Equal(t, data, slices.Collect(npSect.All(buf[:off])))
}

func TestWriteU64Section_RequiresFixedLen(t *testing.T) {
	require.Panics(t, func() {
		_, _ = WriteU64Section(make([]byte, 1024), 0, incrementingU64(100))
	})
}

func TestFixedSectionIterator_WriteAndRead(t *testing.T) {
	buf := make([]byte, 1024)
	data := incrementingU64(FixedLen)

	off, err := WriteNullSection(buf, 0)
	require.NoError(t, err)
	require.Equal(t, 1, off)

	off, err = WriteU64Section(buf, off, data)
	require.NoError(t, err)

	// Iterate only over the slice of written data, no more.
	type item struct {
		sect  FixedSection
		bytes []byte
	}
	var sections []item
	for sect, sectBytes := range AllSections(buf[:off]) {
		sections = append(sections, item{sect, sectBytes})
	}

	require.Len(t, sections, 2)

	require.True(t, IsNull(sections[0].sect))
	require.Equal(t, 1, sections[0].sect.NumBytes())

	npSect, ok := sections[1].sect.(NibblePackU64FixedSection)
	require.True(t, ok)
	require.LessOrEqual(t, npSect.NumBytes(), len(sections[1].bytes))
	require.Equal(t, data, slices.Collect(npSect.All(sections[1].bytes)))
}

func TestFixedSectionIterator_Conservation(t *testing.T) {
	buf := make([]byte, 4096)
	u64data := incrementingU64(FixedLen)
	u32data := make([]uint32, FixedLen)
	for i := range u32data {
		u32data[i] = uint32(i) * 3
	}

	off := 0
	var err error
	off, err = WriteU64Section(buf, off, u64data)
	require.NoError(t, err)
	off, err = WriteNullSection(buf, off)
	require.NoError(t, err)
	off, err = WriteU32Section(buf, off, u32data)
	require.NoError(t, err)
	off, err = WriteNullSection(buf, off)
	require.NoError(t, err)

	// One item per written section; section lengths sum to the bytes written.
	count, total := 0, 0
	for sect := range AllSections(buf[:off]) {
		count++
		total += sect.NumBytes()
	}
	require.Equal(t, 4, count)
	require.Equal(t, off, total)
}

func TestFixedSectionIterator_ToleratesTrailingGarbage(t *testing.T) {
	buf := make([]byte, 64)
	off, err := WriteNullSection(buf, 0)
	require.NoError(t, err)
	buf[off] = 0x77 // invalid tag right after the section

	count := 0
	for range AllSections(buf) {
		count++
	}
	require.Equal(t, 1, count, "iteration stops at the first undecodable byte")
}

func TestNewFixedSection_Errors(t *testing.T) {
	t.Run("Empty input", func(t *testing.T) {
		_, err := NewFixedSection(nil)
		require.ErrorIs(t, err, errs.ErrInputTooShort)
	})

	t.Run("Invalid tag", func(t *testing.T) {
		_, err := NewFixedSection([]byte{0x7F, 0, 0})

		var invalidErr *errs.InvalidSectionTypeError
		require.ErrorAs(t, err, &invalidErr)
		require.Equal(t, byte(0x7F), invalidErr.Type)
	})

	t.Run("Declared length exceeds slice", func(t *testing.T) {
		// Tag + length field claiming 100 payload bytes in a 5-byte slice.
		sectBytes := []byte{TypeNibblePackedU64Medium.Byte(), 100, 0, 0, 0}
		_, err := NewFixedSection(sectBytes)
		require.ErrorIs(t, err, errs.ErrBadLengthField)

		sectBytes[0] = TypeNibblePackedU32Medium.Byte()
		_, err = NewFixedSection(sectBytes)
		require.ErrorIs(t, err, errs.ErrBadLengthField)
	})

	t.Run("Truncated medium prefix", func(t *testing.T) {
		_, err := NewFixedSection([]byte{TypeNibblePackedU64Medium.Byte(), 4})
		require.ErrorIs(t, err, errs.ErrInputTooShort)
	})
}

func TestWriteU32Section_WriteAndDecode(t *testing.T) {
	buf := make([]byte, 1024)
	data := make([]uint32, FixedLen)
	for i := range data {
		data[i] = uint32(i)
	}

	off, err := WriteU32Section(buf, 0, data)
	require.NoError(t, err)

	values, err := UnpackU32Section(buf[:off])
	require.NoError(t, err)
	require.Equal(t, data, values[:])
}

func TestWriteU32Section_NoRoom(t *testing.T) {
	data := make([]uint32, FixedLen)
	for i := range data {
		data[i] = uint32(i) + 100000
	}

	_, err := WriteU32Section(make([]byte, 2), 0, data)
	require.ErrorIs(t, err, errs.ErrNotEnoughSpace)

	_, err = WriteU32Section(make([]byte, 64), 0, data)
	require.ErrorIs(t, err, errs.ErrNotEnoughSpace)
}

func TestDecodeU32SectionToSink_CustomSink(t *testing.T) {
	buf := make([]byte, 1024)
	data := make([]uint32, FixedLen)
	for i := range data {
		data[i] = uint32(i) * 7
	}

	off, err := WriteU32Section(buf, 0, data)
	require.NoError(t, err)

	var sum uint64
	sink := &summingSinkU32{total: &sum}
	require.NoError(t, DecodeU32SectionToSink(buf[:off], sink))

	var want uint64
	for _, v := range data {
		want += uint64(v)
	}
	require.Equal(t, want, sum)
}

// summingSinkU32 exercises the sink abstraction with a non-materializing
// consumer.
type summingSinkU32 struct {
	total *uint64
}

func (s *summingSinkU32) Process8(values *[8]uint32) {
	for _, v := range values {
		*s.total += uint64(v)
	}
}

var _ nibblepack.SinkU32 = (*summingSinkU32)(nil)

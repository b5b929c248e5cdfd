package vector

import (
	"github.com/graydon/compressed-vec/internal/pool"
	"github.com/graydon/compressed-vec/section"
)

// Worst-case encoded size of one medium section: the 3 prefix bytes plus 32
// groups of 2 control bytes and 64 nibble bytes.
const maxEncodedSectionSize = 3 + 32*(2+64)

// U64Appender builds a compressed vector of uint64 values.
//
// Values accumulate in a 256-element batch; each full batch is encoded as
// one fixed section. The zero value is not usable — construct with
// NewU64Appender.
type U64Appender struct {
	buf     *pool.ByteBuffer
	batch   [section.FixedLen]uint64
	pending int
	count   int
}

// NewU64Appender creates an appender backed by a pooled output buffer.
func NewU64Appender() *U64Appender {
	return &U64Appender{buf: pool.GetVectorBuffer()}
}

// Append adds a single value.
//
// Panics if Finish has already been called.
func (a *U64Appender) Append(v uint64) error {
	if a.buf == nil {
		panic("appender already finished - cannot append after Finish()")
	}

	a.batch[a.pending] = v
	a.pending++
	a.count++
	if a.pending == section.FixedLen {
		return a.flush()
	}

	return nil
}

// AppendSlice adds all values in order.
func (a *U64Appender) AppendSlice(values []uint64) error {
	for _, v := range values {
		if err := a.Append(v); err != nil {
			return err
		}
	}

	return nil
}

// NumElements returns the number of values appended so far.
func (a *U64Appender) NumElements() int {
	return a.count
}

// flush encodes the current batch as one fixed section. All-zero batches
// become a one-byte null section.
func (a *U64Appender) flush() error {
	start := a.buf.Len()

	if allZeroU64(a.batch[:]) {
		a.buf.ExtendOrGrow(1)
		if _, err := section.WriteNullSection(a.buf.B, start); err != nil {
			return err
		}
		a.pending = 0

		return nil
	}

	a.buf.ExtendOrGrow(maxEncodedSectionSize)
	newOff, err := section.WriteU64Section(a.buf.B, start, a.batch[:])
	if err != nil {
		return err
	}
	a.buf.SetLength(newOff)
	a.pending = 0

	return nil
}

// Finish encodes any partial final batch (zero-padded to 256 elements) and
// returns the vector bytes. The appender cannot be used afterwards.
func (a *U64Appender) Finish() ([]byte, error) {
	if a.buf == nil {
		panic("appender already finished")
	}

	if a.pending > 0 {
		for i := a.pending; i < section.FixedLen; i++ {
			a.batch[i] = 0
		}
		if err := a.flush(); err != nil {
			return nil, err
		}
	}

	out := make([]byte, a.buf.Len())
	copy(out, a.buf.B)
	pool.PutVectorBuffer(a.buf)
	a.buf = nil

	return out, nil
}

// U32Appender builds a compressed vector of uint32 values. It mirrors
// U64Appender with u32 medium sections.
type U32Appender struct {
	buf     *pool.ByteBuffer
	batch   [section.FixedLen]uint32
	pending int
	count   int
}

// NewU32Appender creates an appender backed by a pooled output buffer.
func NewU32Appender() *U32Appender {
	return &U32Appender{buf: pool.GetVectorBuffer()}
}

// Append adds a single value.
//
// Panics if Finish has already been called.
func (a *U32Appender) Append(v uint32) error {
	if a.buf == nil {
		panic("appender already finished - cannot append after Finish()")
	}

	a.batch[a.pending] = v
	a.pending++
	a.count++
	if a.pending == section.FixedLen {
		return a.flush()
	}

	return nil
}

// AppendSlice adds all values in order.
func (a *U32Appender) AppendSlice(values []uint32) error {
	for _, v := range values {
		if err := a.Append(v); err != nil {
			return err
		}
	}

	return nil
}

// NumElements returns the number of values appended so far.
func (a *U32Appender) NumElements() int {
	return a.count
}

func (a *U32Appender) flush() error {
	start := a.buf.Len()

	if allZeroU32(a.batch[:]) {
		a.buf.ExtendOrGrow(1)
		if _, err := section.WriteNullSection(a.buf.B, start); err != nil {
			return err
		}
		a.pending = 0

		return nil
	}

	a.buf.ExtendOrGrow(maxEncodedSectionSize)
	newOff, err := section.WriteU32Section(a.buf.B, start, a.batch[:])
	if err != nil {
		return err
	}
	a.buf.SetLength(newOff)
	a.pending = 0

	return nil
}

// Finish encodes any partial final batch (zero-padded to 256 elements) and
// returns the vector bytes. The appender cannot be used afterwards.
func (a *U32Appender) Finish() ([]byte, error) {
	if a.buf == nil {
		panic("appender already finished")
	}

	if a.pending > 0 {
		for i := a.pending; i < section.FixedLen; i++ {
			a.batch[i] = 0
		}
		if err := a.flush(); err != nil {
			return nil, err
		}
	}

	out := make([]byte, a.buf.Len())
	copy(out, a.buf.B)
	pool.PutVectorBuffer(a.buf)
	a.buf = nil

	return out, nil
}

func allZeroU64(values []uint64) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}

	return true
}

func allZeroU32(values []uint32) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}

	return true
}

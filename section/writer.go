package section

import (
	"errors"

	"github.com/graydon/compressed-vec/errs"
)

// FillFunc fills in a section's payload. It receives the writable window of
// the current section and the number of elements the section can still hold,
// and reports how many bytes and elements it wrote. Returning
// errs.ErrNotEnoughSpace asks the writer to roll over to a fresh section;
// any other error is propagated unchanged.
type FillFunc func(dst []byte, elementsLeft int) (bytesWritten int, elementsWritten int, err error)

// Writer streams variable-sized sections into a fixed output buffer. It
// manages rollover from one section to the next when the current section
// cannot accommodate a write. The main API is Add64KB, which uses a FillFunc
// to fill in section contents without copying.
//
// Example adding 8 0xFF bytes, failing if there isn't enough space:
//
//	buf := make([]byte, 1024)
//	writer := section.NewWriter(buf, 256)
//	bytes, elements, err := writer.Add64KB(section.TypeNull, func(dst []byte, _ int) (int, int, error) {
//	    if len(dst) < 8 {
//	        return 0, 0, errs.ErrNotEnoughSpace
//	    }
//	    for i := 0; i < 8; i++ {
//	        dst[i] = 0xFF
//	    }
//	    return 8, 8, nil
//	})
type Writer struct {
	buf                []byte // full capacity to write into
	curPos             int    // next free byte; 0 means no section initialized
	curHeaderPos       int    // buffer position of the current section header
	maxElementsPerSect uint16
	curHeader          Header
}

// NewWriter creates a writer over buf. A single section holds at most
// maxElementsPerSect elements.
func NewWriter(buf []byte, maxElementsPerSect uint16) *Writer {
	return &Writer{
		buf:                buf,
		maxElementsPerSect: maxElementsPerSect,
		curHeader:          Header{Type: TypeNull},
	}
}

// CurPos returns the current write position within the buffer. The bytes
// below CurPos are the sealed output produced so far.
func (w *Writer) CurPos() int {
	return w.curPos
}

func (w *Writer) initNewSection(sectType SectionType) error {
	w.curHeader = Header{Type: sectType}
	w.curHeaderPos = w.curPos
	if err := w.curHeader.WriteToSlice(w.buf, w.curHeaderPos); err != nil {
		return err
	}
	w.curPos += HeaderSize

	return nil
}

// Add64KB adds elements to the current section by handing fill a writable
// window bounded by both the section's remaining payload budget (65535 bytes
// minus what the section already holds) and the remaining output buffer.
//
// If fill reports errs.ErrNotEnoughSpace, the writer seals the current
// section, opens a fresh one of sectType, and retries exactly once; a second
// refusal — or failure to write the fresh header — is surfaced as
// errs.ErrNotEnoughSpace. Other fill errors are propagated without mutating
// writer state.
//
// Returns:
//   - int: Bytes written by fill
//   - int: Elements written by fill
//   - error: errs.ErrNotEnoughSpace or a fill error
func (w *Writer) Add64KB(sectType SectionType, fill FillFunc) (int, int, error) {
	// Buffer empty / no section initialized: open one now.
	if w.curPos == 0 {
		if err := w.initNewSection(sectType); err != nil {
			return 0, 0, err
		}
	}

	rolledOver := false
	for {
		elementsLeft := int(w.maxElementsPerSect) - int(w.curHeader.NumElements)
		// Smaller of what the section payload cap allows vs what remains in
		// the output buffer.
		bytesLeft := min(MaxSectionPayload-int(w.curHeader.NumBytes), len(w.buf)-w.curPos)

		bytesWritten, elementsWritten, err := fill(w.buf[w.curPos:w.curPos+bytesLeft], elementsLeft)
		switch {
		case err == nil:
			if elementsWritten > elementsLeft {
				panic("section: fill wrote more elements than budgeted")
			}
			w.curHeader.NumBytes += uint16(bytesWritten)       //nolint:gosec
			w.curHeader.NumElements += uint16(elementsWritten) //nolint:gosec
			w.curPos += bytesWritten

			// The header rewrite touches exactly its own 5 bytes.
			if err := w.curHeader.WriteToSlice(w.buf, w.curHeaderPos); err != nil {
				return 0, 0, err
			}

			return bytesWritten, elementsWritten, nil

		case errors.Is(err, errs.ErrNotEnoughSpace):
			if rolledOver {
				// The fill refused the fresh section too; surface it rather
				// than rolling over again.
				return 0, 0, errs.ErrNotEnoughSpace
			}
			if err := w.initNewSection(sectType); err != nil {
				return 0, 0, err
			}
			rolledOver = true

		default:
			return 0, 0, err
		}
	}
}

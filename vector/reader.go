package vector

import (
	"iter"

	"github.com/graydon/compressed-vec/internal/hash"
	"github.com/graydon/compressed-vec/section"
)

// Reader provides lazy access to the values of a compressed vector. It
// borrows the vector bytes immutably; a Reader is safe to share across
// goroutines.
type Reader struct {
	data []byte
}

// NewReader wraps the given vector bytes.
func NewReader(data []byte) Reader {
	return Reader{data: data}
}

// Bytes returns the underlying vector bytes.
func (r Reader) Bytes() []byte {
	return r.data
}

// Sections iterates the vector's fixed sections.
func (r Reader) Sections() iter.Seq2[section.FixedSection, []byte] {
	return section.AllSections(r.data)
}

// NumSections counts the decodable sections in the vector.
func (r Reader) NumSections() int {
	count := 0
	for range r.Sections() {
		count++
	}

	return count
}

// NumElements returns the total element count: 256 per section.
func (r Reader) NumElements() int {
	total := 0
	for sect := range r.Sections() {
		total += sect.NumElements()
	}

	return total
}

// ContentID returns the xxHash64 fingerprint of the vector bytes, a cheap
// identity for deduplication across column chunks.
func (r Reader) ContentID() uint64 {
	return ContentID(r.data)
}

// AllU64 returns a lazy sequence of every value in the vector, widened to
// uint64. Null sections yield 256 zeros. Iteration stops early on a
// malformed section.
func (r Reader) AllU64() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for sect, sectBytes := range r.Sections() {
			switch s := sect.(type) {
			case section.NullFixedSection:
				for i := 0; i < section.FixedLen; i++ {
					if !yield(0) {
						return
					}
				}
			case section.NibblePackU64FixedSection:
				for v := range s.All(sectBytes) {
					if !yield(v) {
						return
					}
				}
			case section.NibblePackU32FixedSection:
				values, err := section.UnpackU32Section(sectBytes)
				if err != nil {
					return
				}
				for _, v := range values {
					if !yield(uint64(v)) {
						return
					}
				}
			}
		}
	}
}

// AllU32 returns a lazy sequence of every value in the vector, truncated to
// uint32. Null sections yield 256 zeros. Iteration stops early on a
// malformed section.
func (r Reader) AllU32() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for sect, sectBytes := range r.Sections() {
			switch s := sect.(type) {
			case section.NullFixedSection:
				for i := 0; i < section.FixedLen; i++ {
					if !yield(0) {
						return
					}
				}
			case section.NibblePackU64FixedSection:
				for v := range s.All(sectBytes) {
					if !yield(uint32(v)) {
						return
					}
				}
			case section.NibblePackU32FixedSection:
				values, err := section.UnpackU32Section(sectBytes)
				if err != nil {
					return
				}
				for _, v := range values {
					if !yield(v) {
						return
					}
				}
			}
		}
	}
}

// ContentID returns the xxHash64 fingerprint of raw vector bytes.
func ContentID(data []byte) uint64 {
	return hash.Sum64(data)
}

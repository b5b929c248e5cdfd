package nibblepack

import (
	"iter"
	"math/bits"

	"github.com/graydon/compressed-vec/errs"
)

// GroupSize is the number of values encoded per nibble-packed group.
const GroupSize = 8

// MaxGroupBytes is the worst-case encoded size of one group: two control
// bytes plus 8 values of 16 nibbles each.
const MaxGroupBytes = 2 + GroupSize*8

// Pack8 encodes one group of 8 values into out starting at offset and
// returns the offset just past the encoded group.
//
// Returns errs.ErrNotEnoughSpace if the group does not fit in out.
func Pack8(values *[8]uint64, out []byte, offset int) (int, error) {
	if offset >= len(out) {
		return 0, errs.ErrNotEnoughSpace
	}

	var nonzeroMask byte
	for i, v := range values {
		if v != 0 {
			nonzeroMask |= 1 << i
		}
	}
	out[offset] = nonzeroMask
	offset++

	if nonzeroMask == 0 {
		return offset, nil
	}

	// The nibble window is shared by the group: it must cover every nonzero
	// value, so take the minimum leading and trailing zero-nibble counts.
	minTrailing, minLeading := 16, 16
	for _, v := range values {
		if v == 0 {
			continue
		}
		if tz := bits.TrailingZeros64(v) / 4; tz < minTrailing {
			minTrailing = tz
		}
		if lz := bits.LeadingZeros64(v) / 4; lz < minLeading {
			minLeading = lz
		}
	}
	numNibbles := 16 - minLeading - minTrailing

	totalNibbles := bits.OnesCount8(nonzeroMask) * numNibbles
	numBytes := (totalNibbles + 1) / 2
	if offset+1+numBytes > len(out) {
		return 0, errs.ErrNotEnoughSpace
	}

	out[offset] = byte((numNibbles-1)<<4 | minTrailing)
	offset++

	// Low nibble of each output byte is assigned first, so every byte is
	// fully written without pre-clearing the region.
	nibbleIndex := 0
	for i, v := range values {
		if nonzeroMask&(1<<i) == 0 {
			continue
		}
		v >>= uint(minTrailing * 4)
		for n := 0; n < numNibbles; n++ {
			pos := offset + nibbleIndex/2
			nib := byte(v & 0x0F)
			if nibbleIndex%2 == 0 {
				out[pos] = nib
			} else {
				out[pos] |= nib << 4
			}
			v >>= 4
			nibbleIndex++
		}
	}

	return offset + numBytes, nil
}

// PackU64 encodes a sequence of values in groups of 8, zero-padding the
// final partial group, and returns the offset just past the last group.
//
// Returns errs.ErrNotEnoughSpace as soon as a group does not fit in out.
func PackU64(values iter.Seq[uint64], out []byte, offset int) (int, error) {
	var group [8]uint64
	var err error
	n := 0
	for v := range values {
		group[n] = v
		n++
		if n == GroupSize {
			offset, err = Pack8(&group, out, offset)
			if err != nil {
				return 0, err
			}
			n = 0
		}
	}
	if n > 0 {
		for i := n; i < GroupSize; i++ {
			group[i] = 0
		}
		offset, err = Pack8(&group, out, offset)
		if err != nil {
			return 0, err
		}
	}

	return offset, nil
}

// PackU64Slice encodes a slice of values in groups of 8, zero-padding the
// final partial group, and returns the offset just past the last group.
func PackU64Slice(values []uint64, out []byte, offset int) (int, error) {
	var err error
	for len(values) >= GroupSize {
		offset, err = Pack8((*[8]uint64)(values[:GroupSize]), out, offset)
		if err != nil {
			return 0, err
		}
		values = values[GroupSize:]
	}
	if len(values) > 0 {
		var group [8]uint64
		copy(group[:], values)
		offset, err = Pack8(&group, out, offset)
		if err != nil {
			return 0, err
		}
	}

	return offset, nil
}

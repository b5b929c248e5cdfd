package nibblepack

import (
	"iter"
	"math/bits"

	"github.com/graydon/compressed-vec/errs"
)

// unpack8 decodes one group from in into values and returns the remaining
// input. Positions whose bitmask bit is clear decode to zero.
func unpack8(in []byte, values *[8]uint64) ([]byte, error) {
	*values = [8]uint64{}

	if len(in) < 1 {
		return nil, errs.ErrInputTooShort
	}
	nonzeroMask := in[0]
	if nonzeroMask == 0 {
		return in[1:], nil
	}

	if len(in) < 2 {
		return nil, errs.ErrInputTooShort
	}
	layout := in[1]
	numNibbles := int(layout>>4) + 1
	trailing := uint(layout&0x0F) * 4

	count := bits.OnesCount8(nonzeroMask)
	numBytes := (count*numNibbles + 1) / 2
	if len(in) < 2+numBytes {
		return nil, errs.ErrInputTooShort
	}

	data := in[2:]
	nibbleIndex := 0
	for i := 0; i < GroupSize; i++ {
		if nonzeroMask&(1<<i) == 0 {
			continue
		}
		var v uint64
		for n := 0; n < numNibbles; n++ {
			b := data[nibbleIndex/2]
			var nib uint64
			if nibbleIndex%2 == 0 {
				nib = uint64(b & 0x0F)
			} else {
				nib = uint64(b >> 4)
			}
			v |= nib << (4 * n)
			nibbleIndex++
		}
		values[i] = v << trailing
	}

	return in[2+numBytes:], nil
}

// Unpack8 decodes one group from in, emits its 8 values into sink, and
// returns the remaining input.
//
// Returns errs.ErrInputTooShort if in is truncated mid-group.
func Unpack8(in []byte, sink Sink) ([]byte, error) {
	var group [8]uint64
	rest, err := unpack8(in, &group)
	if err != nil {
		return nil, err
	}
	sink.Process8(&group)

	return rest, nil
}

// Unpack8U32 decodes one group from in, truncates the 8 values to uint32,
// emits them into sink, and returns the remaining input.
//
// This is the 8-wide decode stride driven by the u32 medium section decoder.
func Unpack8U32(in []byte, sink SinkU32) ([]byte, error) {
	var group [8]uint64
	rest, err := unpack8(in, &group)
	if err != nil {
		return nil, err
	}

	var out [8]uint32
	for i, v := range group {
		out[i] = uint32(v)
	}
	sink.Process8(&out)

	return rest, nil
}

// IterU64 returns a lazy sequence of up to numValues values decoded from
// encoded. Iteration stops early if the input is truncated; callers that
// need to distinguish truncation from completion should count the yielded
// values.
func IterU64(encoded []byte, numValues int) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		in := encoded
		remaining := numValues
		for remaining > 0 {
			var group [8]uint64
			rest, err := unpack8(in, &group)
			if err != nil {
				return
			}
			in = rest

			n := min(GroupSize, remaining)
			for i := 0; i < n; i++ {
				if !yield(group[i]) {
					return
				}
			}
			remaining -= n
		}
	}
}

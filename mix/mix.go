// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"encoding/binary"
	"fmt"

	"github.com/ik5/hitmix/wav"
)

const (
	minInt16 = -32768
	maxInt16 = 32767
)

// Add mixes insert into base at the given byte offset, in place,
// saturating at the sample range instead of wrapping. An insert reaching
// past the end of the base is mixed only for its in-bounds prefix; an
// offset at or past the end mixes nothing. The sample layout is taken
// from the base format, and the insert payload must already match it.
//
// It returns the number of samples that were clamped.
func Add(base, insert *wav.Buffer, position int) (int, error) {
	if position < 0 || position >= len(base.Data) {
		return 0, nil
	}

	switch base.Format.BitsPerSample {
	case 16:
		return add16(base.Data, insert.Data, position), nil
	case 8:
		return add8(base.Data, insert.Data, position), nil
	default:
		return 0, fmt.Errorf("%d-bit base: %w", base.Format.BitsPerSample, ErrUnsupportedBitDepth)
	}
}

// add16 sums little-endian signed 16-bit samples with clamping.
func add16(base, insert []byte, pos int) int {
	clipped := 0
	for i := 0; i+1 < len(insert) && pos+i+1 < len(base); i += 2 {
		a := int(int16(binary.LittleEndian.Uint16(base[pos+i:])))
		b := int(int16(binary.LittleEndian.Uint16(insert[i:])))

		sum := a + b
		if sum > maxInt16 {
			sum = maxInt16
			clipped++
		} else if sum < minInt16 {
			sum = minInt16
			clipped++
		}

		binary.LittleEndian.PutUint16(base[pos+i:], uint16(int16(sum)))
	}
	return clipped
}

// add8 sums unsigned 8-bit samples around the 128 bias, so adding a
// silent sample (128) leaves the base byte unchanged.
func add8(base, insert []byte, pos int) int {
	clipped := 0
	for i := 0; i < len(insert) && pos+i < len(base); i++ {
		sum := int(base[pos+i]) + int(insert[i]) - 128
		if sum > 255 {
			sum = 255
			clipped++
		} else if sum < 0 {
			sum = 0
			clipped++
		}

		base[pos+i] = byte(sum)
	}
	return clipped
}

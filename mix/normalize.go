// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ik5/hitmix/wav"
)

// Normalize converts b into the target format: mono to stereo by
// duplication, nearest-sample rate conversion, and 8-bit unsigned to
// 16-bit signed widening. A buffer already in the target format is
// returned as is, without copying.
//
// Lossy directions are refused: no stereo to mono downmix and no 16 to 8
// bit reduction. The mixing engine works at 16-bit stereo and anything
// below that widens cleanly, so the narrowing paths have no use here.
func Normalize(b *wav.Buffer, target wav.Format) (*wav.Buffer, error) {
	if b.Format == target {
		return b, nil
	}

	src := b.Format
	if err := checkConvertible(src, target); err != nil {
		return nil, err
	}

	srcFrames := b.Frames()
	outFrames := srcFrames
	resample := src.SampleRate != target.SampleRate
	if resample {
		outFrames = int(float64(srcFrames) * float64(target.SampleRate) / float64(src.SampleRate))
	}

	var (
		srcBlock = src.BlockAlign()
		dstBlock = target.BlockAlign()
		srcBytes = src.BitsPerSample / 8
		dstBytes = target.BitsPerSample / 8
		ratio    = float64(src.SampleRate) / float64(target.SampleRate)
		widen    = src.BitsPerSample == 8 && target.BitsPerSample == 16
		out      = make([]byte, outFrames*dstBlock)
	)

	for i := 0; i < outFrames; i++ {
		srcFrame := i
		if resample {
			// Nearest source frame, no interpolation
			srcFrame = int(math.Round(float64(i) * ratio))
			if srcFrame >= srcFrames {
				srcFrame = srcFrames - 1
			}
		}

		frame := b.Data[srcFrame*srcBlock:]
		for c := 0; c < target.Channels; c++ {
			sc := c
			if sc >= src.Channels {
				// Mono source feeds every output channel
				sc = src.Channels - 1
			}

			di := i*dstBlock + c*dstBytes
			if widen {
				v := (int16(frame[sc*srcBytes]) - 128) * 256
				binary.LittleEndian.PutUint16(out[di:], uint16(v))
				continue
			}
			copy(out[di:di+dstBytes], frame[sc*srcBytes:sc*srcBytes+srcBytes])
		}
	}

	return &wav.Buffer{Format: target, Data: out}, nil
}

// checkConvertible rejects source/target pairs Normalize cannot handle.
func checkConvertible(src, target wav.Format) error {
	if src.BitsPerSample != 8 && src.BitsPerSample != 16 {
		return fmt.Errorf("source is %d-bit: %w", src.BitsPerSample, ErrUnsupportedBitDepth)
	}
	if target.BitsPerSample != 8 && target.BitsPerSample != 16 {
		return fmt.Errorf("target is %d-bit: %w", target.BitsPerSample, ErrUnsupportedBitDepth)
	}
	if src.BitsPerSample > target.BitsPerSample {
		return fmt.Errorf("%d-bit to %d-bit reduction: %w",
			src.BitsPerSample, target.BitsPerSample, ErrUnsupportedBitDepth)
	}
	if src.Channels != 1 && src.Channels != 2 {
		return fmt.Errorf("source has %d channels: %w", src.Channels, ErrUnsupportedChannels)
	}
	if target.Channels != 1 && target.Channels != 2 {
		return fmt.Errorf("target has %d channels: %w", target.Channels, ErrUnsupportedChannels)
	}
	if src.Channels > target.Channels {
		return fmt.Errorf("%d to %d channel downmix: %w",
			src.Channels, target.Channels, ErrUnsupportedChannels)
	}
	if src.SampleRate <= 0 || target.SampleRate <= 0 {
		return fmt.Errorf("sample rate %d to %d: %w",
			src.SampleRate, target.SampleRate, ErrUnsupportedRate)
	}
	return nil
}

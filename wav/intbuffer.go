// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"

	goaudio "github.com/go-audio/audio"
)

// IntBuffer converts the payload into a go-audio IntBuffer so buffers can
// feed go-audio encoders and effects. 16-bit samples map to their signed
// values; 8-bit samples stay unsigned with the usual 128 bias, matching
// the go-audio WAV convention. Other depths are not supported.
func (b *Buffer) IntBuffer() (*goaudio.IntBuffer, error) {
	out := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: b.Format.Channels,
			SampleRate:  b.Format.SampleRate,
		},
		SourceBitDepth: b.Format.BitsPerSample,
	}

	switch b.Format.BitsPerSample {
	case 8:
		out.Data = make([]int, len(b.Data))
		for i, v := range b.Data {
			out.Data[i] = int(v)
		}
	case 16:
		n := len(b.Data) / 2
		out.Data = make([]int, n)
		for i := 0; i < n; i++ {
			out.Data[i] = int(int16(binary.LittleEndian.Uint16(b.Data[2*i:])))
		}
	default:
		return nil, ErrUnsupportedBits
	}

	return out, nil
}

// FromIntBuffer converts a go-audio IntBuffer into a Buffer with the given
// bit depth. src must be non-nil with its Format set; sample values are
// truncated to the target depth.
func FromIntBuffer(src *goaudio.IntBuffer, bitsPerSample int) (*Buffer, error) {
	f := Format{
		SampleRate:    src.Format.SampleRate,
		BitsPerSample: bitsPerSample,
		Channels:      src.Format.NumChannels,
	}

	switch bitsPerSample {
	case 8:
		data := make([]byte, len(src.Data))
		for i, v := range src.Data {
			data[i] = byte(v)
		}
		return &Buffer{Format: f, Data: data}, nil
	case 16:
		data := make([]byte, len(src.Data)*2)
		for i, v := range src.Data {
			binary.LittleEndian.PutUint16(data[2*i:], uint16(int16(v)))
		}
		return &Buffer{Format: f, Data: data}, nil
	default:
		return nil, ErrUnsupportedBits
	}
}

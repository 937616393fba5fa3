// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds small PCM fixtures shared by tests across the
// module.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// Clip generates an interleaved PCM payload. waveform returns the sample
// value for a frame and channel: signed values for 16-bit, unsigned byte
// values for 8-bit.
func Clip(sampleRate, channels, bitsPerSample, frames int, waveform func(frame, channel int) int) []byte {
	bytesPerSample := bitsPerSample / 8
	out := make([]byte, frames*channels*bytesPerSample)

	for frame := 0; frame < frames; frame++ {
		for ch := 0; ch < channels; ch++ {
			v := waveform(frame, ch)
			idx := (frame*channels + ch) * bytesPerSample

			switch bitsPerSample {
			case 8:
				out[idx] = byte(v)
			default:
				binary.LittleEndian.PutUint16(out[idx:], uint16(int16(v)))
			}
		}
	}

	return out
}

// SilentClip generates frames of digital silence: zeros for 16-bit, the
// 128 bias for 8-bit.
func SilentClip(sampleRate, channels, bitsPerSample, frames int) []byte {
	silence := 0
	if bitsPerSample == 8 {
		silence = 128
	}
	return Clip(sampleRate, channels, bitsPerSample, frames, func(frame, channel int) int {
		return silence
	})
}

// ConstClip generates frames holding a constant sample value on every
// channel.
func ConstClip(sampleRate, channels, bitsPerSample, frames, value int) []byte {
	return Clip(sampleRate, channels, bitsPerSample, frames, func(frame, channel int) int {
		return value
	})
}

// SineClip generates a sine wave at the given frequency and peak
// amplitude, duplicated across channels. For 8-bit output the wave is
// centered on the 128 bias.
func SineClip(sampleRate, channels, bitsPerSample, frames int, frequency float64, peak int) []byte {
	center := 0
	if bitsPerSample == 8 {
		center = 128
	}
	return Clip(sampleRate, channels, bitsPerSample, frames, func(frame, channel int) int {
		t := float64(frame) / float64(sampleRate)
		return center + int(math.Round(float64(peak)*math.Sin(2*math.Pi*frequency*t)))
	})
}

// PCM16 converts samples to their little-endian byte form.
func PCM16(samples ...int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// Int16s decodes a little-endian 16-bit payload back into sample values.
func Int16s(payload []byte) []int16 {
	out := make([]int16, len(payload)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(payload[2*i:]))
	}
	return out
}

// WavBytes assembles a complete minimal RIFF/WAVE file around a payload.
// The header is built here by hand so codec tests validate against an
// independently constructed file.
func WavBytes(sampleRate, channels, bitsPerSample int, payload []byte) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := uint16(numChannels) * uint16(bits/8)
	dataSize := uint32(len(payload))

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(payload)

	return buf.Bytes()
}

// WriteWav writes a complete WAV file under the test temp directory and
// returns its path.
func WriteWav(tb testing.TB, name string, sampleRate, channels, bitsPerSample int, payload []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, WavBytes(sampleRate, channels, bitsPerSample, payload), 0o600); err != nil {
		tb.Fatalf("writing %s: %v", name, err)
	}
	return path
}

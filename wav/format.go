// SPDX-License-Identifier: EPL-2.0

package wav

// Canonical mixing format: CD-rate stereo 16-bit PCM.
const (
	CanonicalRate     = 44100
	CanonicalBits     = 16
	CanonicalChannels = 2
)

// Format describes the layout of a PCM stream: sample rate in Hz, bit
// depth, and interleaved channel count. The zero value is not a usable
// format; fill all three fields or use Canonical.
type Format struct {
	SampleRate    int
	BitsPerSample int
	Channels      int
}

// Canonical returns the default mixing format, 44.1kHz 16-bit stereo.
func Canonical() Format {
	return Format{
		SampleRate:    CanonicalRate,
		BitsPerSample: CanonicalBits,
		Channels:      CanonicalChannels,
	}
}

// BlockAlign returns the byte size of one frame, meaning one sample for
// every channel.
func (f Format) BlockAlign() int {
	return f.Channels * f.BitsPerSample / 8
}

// ByteRate returns the number of payload bytes per second of audio.
func (f Format) ByteRate() int {
	return f.SampleRate * f.BlockAlign()
}

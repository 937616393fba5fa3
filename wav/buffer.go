package wav

import "time"

// Buffer is decoded PCM audio: a format descriptor plus the raw
// little-endian payload of the data chunk. Decode always returns a buffer
// owning its bytes, so callers may mutate Data freely.
type Buffer struct {
	Format Format
	Data   []byte
}

// Frames returns the number of whole frames held in the buffer.
func (b *Buffer) Frames() int {
	align := b.Format.BlockAlign()
	if align <= 0 {
		return 0
	}
	return len(b.Data) / align
}

// Duration returns the playback length of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.Format.SampleRate <= 0 {
		return 0
	}
	seconds := float64(b.Frames()) / float64(b.Format.SampleRate)
	return time.Duration(seconds * float64(time.Second))
}

// Clone returns a deep copy sharing no bytes with b.
func (b *Buffer) Clone() *Buffer {
	data := make([]byte, len(b.Data))
	copy(data, b.Data)
	return &Buffer{Format: b.Format, Data: data}
}

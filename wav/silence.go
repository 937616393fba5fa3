package wav

import "math"

// NewSilent returns a buffer of zero bytes spanning the given duration in
// f. The frame count is rounded up, so the buffer is never shorter than
// requested.
func NewSilent(seconds float64, f Format) (*Buffer, error) {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return nil, ErrInvalidDuration
	}

	frames := int(math.Ceil(seconds * float64(f.SampleRate)))
	return &Buffer{
		Format: f,
		Data:   make([]byte, frames*f.BlockAlign()),
	}, nil
}

package wav

import "errors"

var (
	ErrNotWave         = errors.New("missing RIFF/WAVE signature")
	ErrNoFmtChunk      = errors.New("no fmt chunk before data")
	ErrNoDataChunk     = errors.New("no data chunk found")
	ErrNotPCM          = errors.New("format tag is not integer PCM")
	ErrBadFmtChunk     = errors.New("malformed fmt chunk")
	ErrTruncatedData   = errors.New("data chunk shorter than declared")
	ErrUnsupportedBits = errors.New("unsupported bits per sample")
	ErrInvalidDuration = errors.New("duration must be positive")
)

package mix

import (
	"math"
	"sort"

	"github.com/ik5/hitmix/wav"
)

// Insert is one clip placement: a millisecond offset from the start of
// the base track plus the source file to mix in. Position is the derived
// byte offset into the base payload; Schedule fills it and overwrites any
// caller-set value.
type Insert struct {
	TimeMs   float64
	Path     string
	Position int
}

// Schedule maps inserts onto byte positions within a base payload of
// baseLen bytes in format f. Positions are frame-aligned and clamped to
// [0, baseLen]. The result is a copy sorted ascending by TimeMs; equal
// timestamps keep their input order, and each one is mixed separately.
func Schedule(f wav.Format, baseLen int, inserts []Insert) []Insert {
	out := make([]Insert, len(inserts))
	copy(out, inserts)

	block := f.BlockAlign()
	for i := range out {
		out[i].Position = position(out[i].TimeMs, f.SampleRate, block, baseLen)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].TimeMs < out[j].TimeMs })
	return out
}

// position converts a millisecond offset to a clamped, frame-aligned byte
// offset.
func position(ms float64, rate, block, baseLen int) int {
	if block <= 0 {
		return 0
	}

	pos := int(math.Floor(ms*float64(rate)/1000)) * block
	if pos < 0 {
		pos = 0
	}
	if pos > baseLen {
		pos = baseLen
	}

	// baseLen itself may not be frame-aligned; never land mid-frame
	return pos - pos%block
}

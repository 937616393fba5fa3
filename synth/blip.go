// SPDX-License-Identifier: EPL-2.0

// Package synth generates short percussive clips for callers that ship no
// hit-sound sample of their own.
package synth

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/ik5/hitmix/wav"
)

var (
	// ErrUnsupportedFormat is returned when the requested format cannot
	// hold a synthesized clip.
	ErrUnsupportedFormat = errors.New("unsupported synthesis format")

	// ErrInvalidFrequency is returned when the requested frequency is
	// not a positive finite number.
	ErrInvalidFrequency = errors.New("frequency must be positive")
)

// DefaultDuration and DefaultFrequency shape the stock hit sound
// returned by DefaultHit.
const (
	DefaultDuration  = 0.06
	DefaultFrequency = 1150.0
)

const (
	attackSeconds = 0.005
	decayRate     = 6.9 // about -60dB by the end of the clip
	amplitude     = 0.6
	harmonicGain  = 0.18
)

// Blip synthesizes a short percussive tone: a cosine attack so the clip
// starts without a click, an exponential decay, a slight downward pitch
// glide, and a quiet second harmonic for warmth. Channels carry the same
// signal, so a mono blip normalized to stereo equals a stereo blip.
//
// Only 16-bit mono or stereo formats are supported. seconds and freqHz
// must be positive.
func Blip(f wav.Format, seconds, freqHz float64) (*wav.Buffer, error) {
	switch {
	case f.BitsPerSample != 16:
		return nil, fmt.Errorf("%d bits per sample: %w", f.BitsPerSample, ErrUnsupportedFormat)
	case f.Channels != 1 && f.Channels != 2:
		return nil, fmt.Errorf("%d channels: %w", f.Channels, ErrUnsupportedFormat)
	case f.SampleRate <= 0:
		return nil, fmt.Errorf("sample rate %d: %w", f.SampleRate, ErrUnsupportedFormat)
	}
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return nil, fmt.Errorf("%v seconds: %w", seconds, wav.ErrInvalidDuration)
	}
	if freqHz <= 0 || math.IsNaN(freqHz) || math.IsInf(freqHz, 0) {
		return nil, fmt.Errorf("%v Hz: %w", freqHz, ErrInvalidFrequency)
	}

	frames := int(math.Ceil(seconds * float64(f.SampleRate)))
	data := make([]byte, frames*f.BlockAlign())

	attackFrames := int(math.Min(attackSeconds, seconds*0.2) * float64(f.SampleRate))
	startFreq := freqHz * 1.03
	endFreq := freqHz * 0.92

	phase := 0.0
	for i := 0; i < frames; i++ {
		t := 0.0
		if frames > 1 {
			t = float64(i) / float64(frames-1)
		}

		env := math.Exp(-decayRate * t)
		if i < attackFrames {
			env *= 0.5 - 0.5*math.Cos(math.Pi*float64(i)/float64(attackFrames))
		}

		// Glide in the log domain so the bend sounds even.
		freq := startFreq * math.Pow(endFreq/startFreq, t)
		phase += 2 * math.Pi * freq / float64(f.SampleRate)

		s := (math.Sin(phase) + harmonicGain*math.Sin(2*phase)) * env * amplitude
		v := sampleToInt16(s)
		for ch := 0; ch < f.Channels; ch++ {
			binary.LittleEndian.PutUint16(data[(i*f.Channels+ch)*2:], uint16(v))
		}
	}

	return &wav.Buffer{Format: f, Data: data}, nil
}

// DefaultHit synthesizes the stock hit sound in the canonical mixing
// format. Each call returns a fresh buffer the caller may mutate.
func DefaultHit() *wav.Buffer {
	buf, err := Blip(wav.Canonical(), DefaultDuration, DefaultFrequency)
	if err != nil {
		// The canonical format and constant arguments cannot fail.
		panic(err)
	}
	return buf
}

func sampleToInt16(s float64) int16 {
	switch {
	case s > 1:
		s = 1
	case s < -1:
		s = -1
	}
	return int16(s * 32767)
}

// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/ik5/hitmix/internal/audiotest"
	"github.com/ik5/hitmix/wav"
)

func TestBlip_Length(t *testing.T) {
	t.Parallel()

	buf, err := Blip(wav.Canonical(), DefaultDuration, DefaultFrequency)
	if err != nil {
		t.Fatalf("Blip() error = %v", err)
	}

	if got := buf.Frames(); got != 2646 {
		t.Errorf("Frames() = %d, want 2646 (60ms at 44.1kHz)", got)
	}
	if got := len(buf.Data); got != 2646*4 {
		t.Errorf("len(Data) = %d, want %d", got, 2646*4)
	}
}

func TestBlip_RateScalesLength(t *testing.T) {
	t.Parallel()

	f := wav.Format{SampleRate: 22050, BitsPerSample: 16, Channels: 1}
	buf, err := Blip(f, DefaultDuration, DefaultFrequency)
	if err != nil {
		t.Fatalf("Blip() error = %v", err)
	}

	if got := buf.Frames(); got != 1323 {
		t.Errorf("Frames() = %d, want 1323", got)
	}
}

func TestBlip_StartsSilent(t *testing.T) {
	t.Parallel()

	f := wav.Format{SampleRate: 44100, BitsPerSample: 16, Channels: 1}
	buf, err := Blip(f, DefaultDuration, DefaultFrequency)
	if err != nil {
		t.Fatalf("Blip() error = %v", err)
	}

	samples := audiotest.Int16s(buf.Data)
	if samples[0] != 0 {
		t.Errorf("first sample = %d, want 0", samples[0])
	}
	if got := abs(samples[1]); got > 100 {
		t.Errorf("second sample magnitude = %d, want attack-faded (<= 100)", got)
	}
}

func TestBlip_DecaysToSilence(t *testing.T) {
	t.Parallel()

	f := wav.Format{SampleRate: 44100, BitsPerSample: 16, Channels: 1}
	buf, err := Blip(f, DefaultDuration, DefaultFrequency)
	if err != nil {
		t.Fatalf("Blip() error = %v", err)
	}

	samples := audiotest.Int16s(buf.Data)
	if got := abs(samples[len(samples)-1]); got > 64 {
		t.Errorf("final sample magnitude = %d, want decayed (<= 64)", got)
	}
}

func TestBlip_LoudButNotClipping(t *testing.T) {
	t.Parallel()

	f := wav.Format{SampleRate: 44100, BitsPerSample: 16, Channels: 1}
	buf, err := Blip(f, DefaultDuration, DefaultFrequency)
	if err != nil {
		t.Fatalf("Blip() error = %v", err)
	}

	peak := int16(0)
	for _, s := range audiotest.Int16s(buf.Data) {
		if a := abs(s); a > peak {
			peak = a
		}
	}

	if peak < 5000 {
		t.Errorf("peak = %d, want an audible clip (>= 5000)", peak)
	}
	if peak > 30000 {
		t.Errorf("peak = %d, want headroom below full scale (<= 30000)", peak)
	}
}

func TestBlip_MonoMatchesStereo(t *testing.T) {
	t.Parallel()

	mono, err := Blip(wav.Format{SampleRate: 44100, BitsPerSample: 16, Channels: 1},
		DefaultDuration, DefaultFrequency)
	if err != nil {
		t.Fatalf("Blip(mono) error = %v", err)
	}
	stereo, err := Blip(wav.Format{SampleRate: 44100, BitsPerSample: 16, Channels: 2},
		DefaultDuration, DefaultFrequency)
	if err != nil {
		t.Fatalf("Blip(stereo) error = %v", err)
	}

	monoSamples := audiotest.Int16s(mono.Data)
	stereoSamples := audiotest.Int16s(stereo.Data)
	if len(stereoSamples) != 2*len(monoSamples) {
		t.Fatalf("stereo samples = %d, want %d", len(stereoSamples), 2*len(monoSamples))
	}

	for i, want := range monoSamples {
		if stereoSamples[2*i] != want || stereoSamples[2*i+1] != want {
			t.Fatalf("frame %d = (%d, %d), want (%d, %d)",
				i, stereoSamples[2*i], stereoSamples[2*i+1], want, want)
		}
	}
}

func TestBlip_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format wav.Format
	}{
		{
			name:   "8Bit",
			format: wav.Format{SampleRate: 44100, BitsPerSample: 8, Channels: 1},
		},
		{
			name:   "24Bit",
			format: wav.Format{SampleRate: 44100, BitsPerSample: 24, Channels: 2},
		},
		{
			name:   "ZeroChannels",
			format: wav.Format{SampleRate: 44100, BitsPerSample: 16, Channels: 0},
		},
		{
			name:   "ThreeChannels",
			format: wav.Format{SampleRate: 44100, BitsPerSample: 16, Channels: 3},
		},
		{
			name:   "ZeroRate",
			format: wav.Format{SampleRate: 0, BitsPerSample: 16, Channels: 1},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Blip(tt.format, DefaultDuration, DefaultFrequency)
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("Blip() error = %v, want ErrUnsupportedFormat", err)
			}
		})
	}
}

func TestBlip_InvalidDuration(t *testing.T) {
	t.Parallel()

	for _, seconds := range []float64{0, -0.5, math.NaN()} {
		_, err := Blip(wav.Canonical(), seconds, DefaultFrequency)
		if !errors.Is(err, wav.ErrInvalidDuration) {
			t.Errorf("Blip(seconds=%v) error = %v, want ErrInvalidDuration", seconds, err)
		}
	}
}

func TestBlip_InvalidFrequency(t *testing.T) {
	t.Parallel()

	for _, freq := range []float64{0, -100, math.NaN()} {
		_, err := Blip(wav.Canonical(), DefaultDuration, freq)
		if !errors.Is(err, ErrInvalidFrequency) {
			t.Errorf("Blip(freq=%v) error = %v, want ErrInvalidFrequency", freq, err)
		}
	}
}

func TestDefaultHit(t *testing.T) {
	t.Parallel()

	first := DefaultHit()
	second := DefaultHit()

	if first.Format != wav.Canonical() {
		t.Errorf("format = %+v, want canonical", first.Format)
	}
	if got := first.Frames(); got != 2646 {
		t.Errorf("Frames() = %d, want 2646", got)
	}
	if &first.Data[0] == &second.Data[0] {
		t.Fatal("DefaultHit() returned a shared buffer")
	}
	if !bytes.Equal(first.Data, second.Data) {
		t.Error("DefaultHit() is not deterministic")
	}
}

func abs(s int16) int16 {
	if s < 0 {
		return -s
	}
	return s
}

func BenchmarkBlip(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := Blip(wav.Canonical(), DefaultDuration, DefaultFrequency); err != nil {
			b.Fatal(err)
		}
	}
}

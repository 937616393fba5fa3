// SPDX-License-Identifier: EPL-2.0

// Package hitmix synthesizes the hit-sound track of a rhythm-game level:
// it places a short WAV clip at every note timestamp on a silent base and
// sums the overlaps additively, writing one PCM WAV file.
//
// # Quick Start
//
// Export builds a full track from a clip and the note timestamps in
// milliseconds:
//
//	times := []float64{0, 490.5, 981, 1471.5}
//	err := hitmix.Export("hit.wav", times, "hitsounds.wav")
//
// The earliest note is shifted to time zero and the track runs one
// second past the last note. The base is silent 44.1kHz 16-bit stereo;
// the clip is normalized to that format before mixing.
//
// # Mixing Into an Existing Base
//
// MixAudio mixes arbitrary inserts into a base WAV of your own. Each
// insert names a source file and a timestamp; sources are decoded once
// per distinct path and converted to the base format:
//
//	inserts := []mix.Insert{
//		{TimeMs: 0, Path: "kick.wav"},
//		{TimeMs: 125, Path: "snare.wav"},
//		{TimeMs: 250, Path: "kick.wav"},
//	}
//	err := hitmix.MixAudio("base.wav", inserts, "out.wav")
//
// # Options
//
// A Merger carries options across calls. Workers above one mixes
// non-overlapping inserts concurrently, and OnWarning downgrades insert
// normalization failures from errors to callbacks:
//
//	m := hitmix.New(hitmix.Options{
//		Workers:   4,
//		OnWarning: func(err error) { log.Println(err) },
//	})
//	err := m.Export("hit.wav", times, "hitsounds.wav")
//	stats := m.Stats()
//
// # Clipping
//
// Overlapping inserts add sample by sample and saturate at the integer
// bounds rather than wrap. Stats reports how many samples clipped; a
// nonzero count means the source clip is too hot for the densest chord
// in the level.
//
// # Subpackages
//
// The wav package decodes and encodes PCM WAV files, mix holds the
// normalization, scheduling and summing stages, and synth generates a
// percussive default clip for callers that ship no sample of their own.
package hitmix

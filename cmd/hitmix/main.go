// SPDX-License-Identifier: EPL-2.0

// Command hitmix builds a rhythm-game hit-sound track: it places a short
// WAV clip at every note timestamp on a silent base and writes one PCM
// WAV file.
//
// Timestamps come either from a plain text file with one millisecond
// value per line ("#" starts a comment):
//
//	hitmix -hit kick.wav -times notes.txt -out hitsounds.wav
//
// or from a YAML job file, which overrides the other input flags:
//
//	hitmix -job level.yaml
//
// When -hit is absent a stock hit sound is synthesized into a temporary
// file and used instead.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ik5/hitmix"
	"github.com/ik5/hitmix/wav"
)

func main() {
	os.Exit(run())
}

func run() int {
	hit := flag.String("hit", "", "hit-sound WAV path (synthesized when empty)")
	timesPath := flag.String("times", "", "text file with one note timestamp in milliseconds per line")
	jobPath := flag.String("job", "", "YAML job file, overrides the other input flags")
	out := flag.String("out", "hitsounds.wav", "output WAV path")
	workers := flag.Int("workers", 1, "concurrent mixing workers")
	rate := flag.Int("rate", wav.CanonicalRate, "base sample rate in Hz")
	bits := flag.Int("bits", wav.CanonicalBits, "base bits per sample")
	channels := flag.Int("channels", wav.CanonicalChannels, "base channel count")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	var job *jobSpec
	if *jobPath != "" {
		loaded, err := loadJob(*jobPath)
		if err != nil {
			slog.Error("loading job", "err", err)
			return 1
		}
		job = loaded
	} else {
		if *timesPath == "" {
			fmt.Fprintln(os.Stderr, "hitmix: either -job or -times is required")
			flag.Usage()
			return 2
		}
		notes, err := readTimes(*timesPath)
		if err != nil {
			slog.Error("reading timestamps", "err", err)
			return 1
		}
		job = &jobSpec{
			HitSound: *hit,
			Output:   *out,
			NotesMs:  notes,
			Workers:  *workers,
			Rate:     *rate,
			Bits:     *bits,
			Channels: *channels,
		}
		job.applyDefaults()
		if err := job.validate(); err != nil {
			slog.Error("invalid job", "err", err)
			return 1
		}
	}

	if job.HitSound == "" {
		path, cleanup, err := writeDefaultHit()
		if err != nil {
			slog.Error("synthesizing default hit sound", "err", err)
			return 1
		}
		defer cleanup()
		job.HitSound = path
		slog.Debug("synthesized default hit sound", "path", path)
	}

	m := hitmix.New(hitmix.Options{
		Format:  wav.Format{SampleRate: job.Rate, BitsPerSample: job.Bits, Channels: job.Channels},
		Workers: job.Workers,
		OnWarning: func(err error) {
			slog.Warn("insert left in source format", "err", err)
		},
	})

	if err := m.Export(job.HitSound, job.NotesMs, job.Output); err != nil {
		slog.Error("export failed", "err", err)
		return 1
	}

	stats := m.Stats()
	if stats.SamplesClipped > 0 {
		slog.Warn("mix saturated", "samples_clipped", stats.SamplesClipped)
	}
	slog.Info("track written",
		"output", job.Output,
		"notes", len(job.NotesMs),
		"sources_decoded", stats.SourceDecodes,
		"cache_hits", stats.CacheHits,
	)
	return 0
}

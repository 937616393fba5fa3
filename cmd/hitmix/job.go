// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ik5/hitmix/synth"
	"github.com/ik5/hitmix/wav"
)

// jobSpec describes one export run. It is filled either from a YAML job
// file or from command-line flags.
type jobSpec struct {
	HitSound string    `yaml:"hit_sound"`
	Output   string    `yaml:"output"`
	NotesMs  []float64 `yaml:"notes_ms"`
	Workers  int       `yaml:"workers"`
	Rate     int       `yaml:"rate"`
	Bits     int       `yaml:"bits"`
	Channels int       `yaml:"channels"`
}

// loadJob reads a YAML job file, fills in defaults, and validates it.
// Unknown keys are rejected so typos do not silently fall back to
// defaults.
func loadJob(path string) (*jobSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening job %q: %w", path, err)
	}
	defer f.Close()

	job := &jobSpec{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(job); err != nil {
		return nil, fmt.Errorf("parsing job %q: %w", path, err)
	}

	job.applyDefaults()
	if err := job.validate(); err != nil {
		return nil, fmt.Errorf("job %q: %w", path, err)
	}
	return job, nil
}

func (j *jobSpec) applyDefaults() {
	if j.Output == "" {
		j.Output = "hitsounds.wav"
	}
	if j.Rate == 0 {
		j.Rate = wav.CanonicalRate
	}
	if j.Bits == 0 {
		j.Bits = wav.CanonicalBits
	}
	if j.Channels == 0 {
		j.Channels = wav.CanonicalChannels
	}
}

func (j *jobSpec) validate() error {
	var errs []error

	if len(j.NotesMs) == 0 {
		errs = append(errs, errors.New("notes_ms lists no timestamps"))
	}
	if j.Rate <= 0 {
		errs = append(errs, fmt.Errorf("rate %d must be positive", j.Rate))
	}
	if j.Bits != 8 && j.Bits != 16 {
		errs = append(errs, fmt.Errorf("bits %d is not supported; valid values: 8, 16", j.Bits))
	}
	if j.Channels != 1 && j.Channels != 2 {
		errs = append(errs, fmt.Errorf("channels %d is not supported; valid values: 1, 2", j.Channels))
	}
	if j.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d must not be negative", j.Workers))
	}

	return errors.Join(errs...)
}

// readTimes parses a timestamp file: one millisecond value per line,
// blank lines and "#" comment lines skipped.
func readTimes(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var times []float64
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ms, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, lineNo, err)
		}
		times = append(times, ms)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	return times, nil
}

// writeDefaultHit synthesizes the stock hit sound into a temporary WAV
// file. The returned cleanup removes it.
func writeDefaultHit() (string, func(), error) {
	f, err := os.CreateTemp("", "hitmix-hit-*.wav")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp hit sound: %w", err)
	}
	path := f.Name()
	f.Close()

	clip := synth.DefaultHit()
	if err := wav.EncodeFile(path, clip.Format, clip.Data); err != nil {
		os.Remove(path)
		return "", nil, err
	}

	return path, func() { os.Remove(path) }, nil
}

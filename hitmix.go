// SPDX-License-Identifier: EPL-2.0

package hitmix

import (
	"fmt"
	"math"
	"os"

	"github.com/ik5/hitmix/mix"
	"github.com/ik5/hitmix/wav"
)

// tailSeconds pads the track past the final note so its hit sound is not
// cut off.
const tailSeconds = 1.0

// Options configures a Merger. The zero value mixes sequentially in the
// canonical 44.1kHz 16-bit stereo format and fails hard when an insert
// cannot be normalized.
type Options struct {
	// Format is the mixing format used by Export and CreateSilentWav.
	// The zero value means wav.Canonical().
	Format wav.Format

	// OnWarning, when set, downgrades insert normalization failures to
	// warnings: the callback receives the error and the source-format
	// bytes are mixed as they are. That path is lossy and timing drifts
	// when sample rates differ. Decode and I/O failures stay fatal
	// either way.
	OnWarning func(error)

	// Workers above one mixes non-overlapping inserts concurrently.
	Workers int
}

// Stats reports what the most recent export or mix call did.
type Stats struct {
	SourceDecodes  int   // distinct source files decoded and normalized
	CacheHits      int   // insert loads served from the per-call cache
	InsertsMixed   int   // inserts applied to the base
	SamplesClipped int64 // samples saturated while mixing
}

// Merger builds hit-sound tracks: it places a short sample at every note
// timestamp of a level and sums the overlaps additively. The zero-value
// options are ready to use; a Merger must not be shared between
// goroutines.
type Merger struct {
	opts  Options
	stats Stats
}

// New returns a Merger with the given options.
func New(opts Options) *Merger {
	return &Merger{opts: opts}
}

// Stats returns the counters collected by the most recent Export, mix or
// buffer call.
func (m *Merger) Stats() Stats { return m.stats }

func (m *Merger) format() wav.Format {
	if m.opts.Format == (wav.Format{}) {
		return wav.Canonical()
	}
	return m.opts.Format
}

// Export builds the hit-sound track for a level. The earliest note is
// shifted to zero, a silent base running one second past the last note
// is created in the platform temp directory, the clip at hitSoundPath is
// mixed in at every note offset, and the result is written to
// outputPath. The temporary base is removed on every exit path.
func (m *Merger) Export(hitSoundPath string, noteTimesMs []float64, outputPath string) error {
	m.stats = Stats{}

	if len(noteTimesMs) == 0 {
		return ErrNoNotes
	}

	minMs := noteTimesMs[0]
	maxMs := noteTimesMs[0]
	for _, ts := range noteTimesMs[1:] {
		minMs = math.Min(minMs, ts)
		maxMs = math.Max(maxMs, ts)
	}

	tmp, err := os.CreateTemp("", "hitmix-*.wav")
	if err != nil {
		return fmt.Errorf("creating temp base: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	seconds := (maxMs-minMs)/1000 + tailSeconds
	if err := m.createSilentWav(tmpPath, seconds, m.format()); err != nil {
		return err
	}

	inserts := make([]mix.Insert, len(noteTimesMs))
	for i, ts := range noteTimesMs {
		inserts[i] = mix.Insert{TimeMs: ts - minMs, Path: hitSoundPath}
	}

	return m.mixAudio(tmpPath, inserts, outputPath)
}

// MixAudio decodes the base WAV at basePath, mixes every insert into it
// at its timestamp, and writes the result to outputPath. Insert sources
// are normalized to the base format and decoded once per distinct path.
func (m *Merger) MixAudio(basePath string, inserts []mix.Insert, outputPath string) error {
	m.stats = Stats{}
	return m.mixAudio(basePath, inserts, outputPath)
}

// MixAudioBytes is MixAudio for a base WAV already held in memory.
func (m *Merger) MixAudioBytes(baseWav []byte, inserts []mix.Insert, outputPath string) error {
	m.stats = Stats{}

	base, err := wav.DecodeBytes(baseWav)
	if err != nil {
		return err
	}
	return m.mixBuffer(base, inserts, outputPath)
}

// MixBuffer is MixAudio for an already decoded base. The base buffer is
// mutated in place.
func (m *Merger) MixBuffer(base *wav.Buffer, inserts []mix.Insert, outputPath string) error {
	m.stats = Stats{}
	return m.mixBuffer(base, inserts, outputPath)
}

// CreateSilentWav writes a WAV file holding only silence at path. A zero
// format means the configured mixing format.
func (m *Merger) CreateSilentWav(path string, seconds float64, f wav.Format) error {
	if f == (wav.Format{}) {
		f = m.format()
	}
	return m.createSilentWav(path, seconds, f)
}

func (m *Merger) mixAudio(basePath string, inserts []mix.Insert, outputPath string) error {
	base, err := wav.DecodeFile(basePath)
	if err != nil {
		return err
	}
	return m.mixBuffer(base, inserts, outputPath)
}

func (m *Merger) mixBuffer(base *wav.Buffer, inserts []mix.Insert, outputPath string) error {
	scheduled := mix.Schedule(base.Format, len(base.Data), inserts)
	cache := mix.NewSourceCache(base.Format, m.opts.OnWarning)

	clipped, err := mix.AddAll(base, scheduled, cache.Load, m.opts.Workers)
	m.stats.SourceDecodes = cache.Decodes()
	m.stats.CacheHits = cache.Hits()
	m.stats.SamplesClipped = clipped
	if err != nil {
		return err
	}
	m.stats.InsertsMixed = len(scheduled)

	return wav.EncodeFile(outputPath, base.Format, base.Data)
}

func (m *Merger) createSilentWav(path string, seconds float64, f wav.Format) error {
	buf, err := wav.NewSilent(seconds, f)
	if err != nil {
		return err
	}
	return wav.EncodeFile(path, f, buf.Data)
}

// Export builds a hit-sound track with default options. See
// Merger.Export.
func Export(hitSoundPath string, noteTimesMs []float64, outputPath string) error {
	return New(Options{}).Export(hitSoundPath, noteTimesMs, outputPath)
}

// MixAudio mixes inserts into the base WAV at basePath with default
// options. See Merger.MixAudio.
func MixAudio(basePath string, inserts []mix.Insert, outputPath string) error {
	return New(Options{}).MixAudio(basePath, inserts, outputPath)
}

// CreateSilentWav writes seconds of silence at path. A zero format means
// the canonical mixing format.
func CreateSilentWav(path string, seconds float64, f wav.Format) error {
	return New(Options{}).CreateSilentWav(path, seconds, f)
}

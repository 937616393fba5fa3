package mix

import (
	"fmt"

	"github.com/ik5/hitmix/wav"
)

// SourceCache decodes and normalizes clip sources at most once per
// distinct path. A cache is scoped to a single mixing run; holding one
// across runs would serve stale audio after a source file is rewritten.
//
// A SourceCache is not safe for concurrent use. AddAll loads every
// source before starting its goroutines, so the cache is only ever
// touched from one goroutine.
type SourceCache struct {
	target  wav.Format
	warn    func(error)
	entries map[string]*wav.Buffer
	decodes int
	hits    int
}

// NewSourceCache returns a cache that normalizes loaded sources to
// target. When warn is non-nil, normalization failures turn into
// warnings: the callback receives the error and the source-format bytes
// are kept for mixing as they are. That path is lossy, and timing drifts
// when the rates differ. Decode and I/O failures are always hard errors.
func NewSourceCache(target wav.Format, warn func(error)) *SourceCache {
	return &SourceCache{
		target:  target,
		warn:    warn,
		entries: make(map[string]*wav.Buffer),
	}
}

// Load returns the normalized buffer for path, decoding it on first use.
func (c *SourceCache) Load(path string) (*wav.Buffer, error) {
	if buf, ok := c.entries[path]; ok {
		c.hits++
		return buf, nil
	}

	src, err := wav.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	c.decodes++

	buf, err := Normalize(src, c.target)
	if err != nil {
		if c.warn == nil {
			return nil, fmt.Errorf("normalizing %s: %w", path, err)
		}
		c.warn(fmt.Errorf("normalizing %s: %w", path, err))
		buf = src
	}

	c.entries[path] = buf
	return buf, nil
}

// Decodes returns how many distinct sources have been read from disk.
func (c *SourceCache) Decodes() int { return c.decodes }

// Hits returns how many loads were answered from memory.
func (c *SourceCache) Hits() int { return c.hits }

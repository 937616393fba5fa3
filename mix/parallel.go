// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/hitmix/wav"
)

// span is the byte range [start, end) one insert writes in the base.
type span struct {
	insert Insert
	start  int
	end    int
}

// AddAll mixes every scheduled insert into base, loading sources through
// load (normally SourceCache.Load). With workers of one or less the
// inserts run sequentially in schedule order. With more workers they are
// partitioned into waves of pairwise-disjoint byte ranges: waves run one
// after another, inserts inside a wave run concurrently.
//
// Clipping inside overlap regions can resolve in a different insert
// order than the sequential path, but every insert is still applied
// exactly once and no two goroutines write the same byte.
//
// It returns the total number of clamped samples.
func AddAll(base *wav.Buffer, scheduled []Insert, load func(string) (*wav.Buffer, error), workers int) (int64, error) {
	if workers <= 1 {
		var clipped int64
		for _, ins := range scheduled {
			buf, err := load(ins.Path)
			if err != nil {
				return clipped, err
			}

			n, err := Add(base, buf, ins.Position)
			if err != nil {
				return clipped, err
			}
			clipped += int64(n)
		}
		return clipped, nil
	}

	return addParallel(base, scheduled, load, workers)
}

func addParallel(base *wav.Buffer, scheduled []Insert, load func(string) (*wav.Buffer, error), workers int) (int64, error) {
	// Load everything up front: goroutines must never touch the loader.
	buffers := make(map[string]*wav.Buffer)
	for _, ins := range scheduled {
		buf, err := load(ins.Path)
		if err != nil {
			return 0, err
		}
		buffers[ins.Path] = buf
	}

	var clipped atomic.Int64
	length := func(path string) int { return len(buffers[path].Data) }

	for _, wave := range waves(scheduled, length) {
		g := new(errgroup.Group)
		g.SetLimit(workers)

		for _, s := range wave {
			s := s
			g.Go(func() error {
				n, err := Add(base, buffers[s.insert.Path], s.start)
				clipped.Add(int64(n))
				return err
			})
		}

		if err := g.Wait(); err != nil {
			return clipped.Load(), err
		}
	}

	return clipped.Load(), nil
}

// waves groups scheduled inserts so that byte ranges within one group are
// pairwise disjoint. Inserts arrive sorted by time, hence by position;
// each goes to the first group whose rightmost end does not reach into
// it, or opens a new group.
func waves(scheduled []Insert, length func(path string) int) [][]span {
	var (
		groups  [][]span
		lastEnd []int
	)

	for _, ins := range scheduled {
		s := span{
			insert: ins,
			start:  ins.Position,
			end:    ins.Position + length(ins.Path),
		}

		placed := false
		for g := range groups {
			if lastEnd[g] <= s.start {
				groups[g] = append(groups[g], s)
				lastEnd[g] = s.end
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []span{s})
			lastEnd = append(lastEnd, s.end)
		}
	}

	return groups
}

// SPDX-License-Identifier: EPL-2.0

// Package mix places short PCM clips into a base track by additive,
// saturating mixing.
//
// The pipeline has four stages, each usable on its own:
//
//   - Normalize converts a decoded clip to the mixing format: mono to
//     stereo duplication, nearest-sample rate conversion, 8 to 16 bit
//     widening.
//   - Schedule turns millisecond timestamps into frame-aligned byte
//     offsets within the base payload.
//   - Add sums one clip into the base in place, clamping at the sample
//     range instead of wrapping.
//   - AddAll drives the whole insert list, sequentially or in
//     non-overlapping waves of goroutines.
//
// SourceCache sits in front of the decode step so a clip repeated at many
// timestamps is read and normalized only once.
//
// # Clipping
//
// Mixing is purely additive. Overlapping inserts are expected to clip
// when their sum exceeds the sample range; Add reports how many samples
// were clamped so callers can surface the count. There is no automatic
// gain reduction.
//
// # Concurrency
//
// AddAll with workers > 1 partitions the scheduled inserts into waves of
// pairwise-disjoint byte ranges. Waves run in order; inserts inside one
// wave run concurrently, so no two goroutines ever write the same byte.
// Overlapping inserts land in different waves and still sum additively.
package mix

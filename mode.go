// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package movingavg

import "math"

// Mode returns the most frequent value accepted so far, as a float64.
//
// Degenerate cases:
//   - No values accepted: returns 0.
//   - Every distinct value seen exactly once: nothing repeats, so there is no
//     meaningful mode; returns the running mean.
//   - Mode tracking disabled (see Options): returns the running mean.
//
// When several values tie for the highest frequency, the tied value closest
// to the running mean wins; among values equally distant from the mean, the
// smallest wins, making the result deterministic.
//
// Mode is computed on demand from the frequency table; it is a pure query and
// repeated calls without an intervening Add return the same value. Distinct
// values are keyed by their exact float64 representation, so for example
// int64 values above 2^53 that round to the same float count as one value.
func (m *Moving[T]) Mode() float64 {
	if len(m.freq) == 0 {
		// Not tracking, or nothing added yet (mean is 0 in the latter case).
		return m.mean
	}
	var maxCount uint64
	for _, n := range m.freq {
		if n > maxCount {
			maxCount = n
		}
	}
	if maxCount == 1 {
		return m.mean
	}
	best := math.Inf(1)
	bestDist := math.Inf(1)
	for v, n := range m.freq {
		if n != maxCount {
			continue
		}
		if d := math.Abs(v - m.mean); d < bestDist || (d == bestDist && v < best) {
			best, bestDist = v, d
		}
	}
	return best
}

// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package movingavg

import "cmp"

// Cmp orders two accumulators by their running means. It returns -1 if m's
// mean is lower than other's, 0 if they are equal, and +1 if it is higher.
func (m *Moving[T]) Cmp(other *Moving[T]) int {
	return cmp.Compare(m.mean, other.mean)
}

// Compare orders an accumulator's running mean against a raw numeric value,
// which need not be of the accumulator's own kind: an accumulator over uint64
// can be compared against the literal 15 or 15.0 directly. It returns -1 if
// the mean is lower than the value, 0 if they are equal, and +1 if it is
// higher.
func Compare[T Value, V Value](m *Moving[T], value V) int {
	return cmp.Compare(m.mean, float64(value))
}

// Equal reports whether the accumulator's running mean equals the given raw
// numeric value. Shorthand for Compare(m, value) == 0.
func Equal[T Value, V Value](m *Moving[T], value V) bool {
	return m.mean == float64(value)
}

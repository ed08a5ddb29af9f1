// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package movingavg

import "github.com/cockroachdb/errors"

// ErrNegativeValueToUnsignedType is returned by AddWithResult when a negative
// value reaches an accumulator instantiated over an unsigned kind. The
// accumulator is not mutated.
//
// Go's unsigned integer types cannot hold a negative value, so a direct call
// cannot trigger this; the guard covers conversion paths that are looser than
// the type system (and keeps the error kind in the taxonomy for them).
// Callers that need negative values should instantiate over a signed kind.
var ErrNegativeValueToUnsignedType = errors.New("movingavg: negative value added to unsigned kind")

// ErrThresholdReached is returned by AddWithResult when the updated mean is
// at or above the configured threshold. The triggering value has already been
// committed: Count, Mean, and Mode all reflect it.
var ErrThresholdReached = errors.New("movingavg: mean reached threshold")

// Reserved error kinds for bounded-accumulator variants. The floating-point
// running-mean recurrence never materializes a raw sum, so it cannot trigger
// any of these; they are declared so a future variant with bounded integer
// state reports exhaustion through the same taxonomy.
var (
	// ErrOverflow signals that an internal accumulator value overflowed.
	ErrOverflow = errors.New("movingavg: accumulator overflow")

	// ErrUnderflow signals that an internal accumulator value underflowed.
	ErrUnderflow = errors.New("movingavg: accumulator underflow")

	// ErrCountOverflow signals that the observation count overflowed.
	ErrCountOverflow = errors.New("movingavg: count overflow")
)

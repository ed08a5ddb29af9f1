// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package movingavg provides an incremental statistics accumulator for a
// stream of numeric values: a running arithmetic mean, a running count, an
// optional mode (most frequent value), and an optional early-termination
// threshold on the mean.
//
// The accumulator never retains or re-sums the value stream; the mean is
// updated in place using Welford's recurrence, so arbitrarily long streams of
// arbitrarily large values are accumulated without overflow.
package movingavg

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/michael-jaquier/moving-average/internal/invariants"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/exp/constraints"
)

// Value is the constraint satisfied by every numeric kind a Moving can
// accumulate: any signed integer, unsigned integer, or floating-point type.
type Value interface {
	constraints.Integer | constraints.Float
}

// Moving accumulates a stream of values of a single numeric kind T. It
// maintains the running arithmetic mean and count of the values, and
// (unless disabled) a frequency table of distinct values for Mode queries.
//
// The mean is maintained incrementally:
//
//	mean += (value - mean) / count
//
// which is Welford's mean recurrence. It is numerically stable over long
// streams and never materializes a raw sum, so adding math.MaxUint64 any
// number of times cannot overflow.
//
// A Moving has a single logical owner. Methods that mutate it (Add,
// AddWithResult) must not be called concurrently; callers that share an
// accumulator across goroutines must serialize access externally. Accessors
// (Mean, Mode, Count, Stats) do not mutate.
type Moving[T Value] struct {
	count     uint64
	mean      float64
	freq      map[float64]uint64
	threshold float64
	hist      prometheus.Histogram
}

// New returns an empty accumulator: count 0, mean 0, mode tracking enabled,
// no threshold.
func New[T Value]() *Moving[T] {
	return NewWithOptions[T](Options{})
}

// NewWithThreshold returns an empty accumulator whose AddWithResult reports
// ErrThresholdReached once the running mean reaches or exceeds threshold.
//
// The threshold is used verbatim and is not validated; a threshold at or
// below zero makes every added value report ErrThresholdReached as soon as
// the mean is at or above it.
func NewWithThreshold[T Value](threshold float64) *Moving[T] {
	m := NewWithOptions[T](Options{})
	m.threshold = threshold
	return m
}

// NewWithOptions returns an empty accumulator configured by opts.
func NewWithOptions[T Value](opts Options) *Moving[T] {
	opts.EnsureDefaults()
	m := &Moving[T]{
		threshold: opts.Threshold,
		hist:      opts.SampleHistogram,
	}
	if !opts.DisableModeTracking {
		m.freq = make(map[float64]uint64)
	}
	return m
}

// AddWithResult accepts a value into the accumulator and returns the updated
// running mean.
//
// If T is an unsigned kind and the value converts to a negative float,
// AddWithResult returns ErrNegativeValueToUnsignedType and the accumulator is
// not mutated. Go's unsigned types cannot hold negative values, so this guard
// is only reachable through conversion paths looser than a direct call; see
// ErrNegativeValueToUnsignedType.
//
// If the updated mean is at or above the configured threshold, AddWithResult
// returns the updated mean together with ErrThresholdReached. The value has
// already been committed at that point: Count, Mean, and the mode table all
// reflect it. The error is a signal that the boundary was crossed, not a
// rejection.
func (m *Moving[T]) AddWithResult(value T) (float64, error) {
	vf := float64(value)
	if vf < 0 && isUnsigned[T]() {
		return 0, ErrNegativeValueToUnsignedType
	}
	if m.freq != nil {
		m.freq[vf]++
	}
	m.count++
	m.mean += (vf - m.mean) / float64(m.count)
	if m.hist != nil {
		m.hist.Observe(vf)
	}
	if invariants.Sometimes(20) {
		m.checkInvariants()
	}
	if m.mean >= m.threshold {
		return m.mean, ErrThresholdReached
	}
	return m.mean, nil
}

// Add accepts a value into the accumulator, discarding the updated mean and
// any threshold or validation signal. Callers that need those use
// AddWithResult.
func (m *Moving[T]) Add(value T) {
	_, _ = m.AddWithResult(value)
}

// Mean returns the running arithmetic mean of all accepted values, or 0 if
// no values have been accepted.
func (m *Moving[T]) Mean() float64 {
	return m.mean
}

// Count returns the number of accepted values.
func (m *Moving[T]) Count() uint64 {
	return m.count
}

// String renders the current mean in its default decimal representation.
func (m *Moving[T]) String() string {
	return redact.StringWithoutMarkers(m)
}

// SafeFormat implements redact.SafeFormatter.
func (m *Moving[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%v", m.mean)
}

// isUnsigned reports whether T is an unsigned integer kind.
func isUnsigned[T Value]() bool {
	var zero T
	return zero-1 > zero
}

func (m *Moving[T]) checkInvariants() {
	if m.freq == nil {
		return
	}
	var total uint64
	for _, n := range m.freq {
		total += n
	}
	if total != m.count {
		panic(errors.AssertionFailedf(
			"frequency table total %d diverged from count %d", total, m.count))
	}
}

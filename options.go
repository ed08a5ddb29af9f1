// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package movingavg

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
)

// Options configures a Moving accumulator. The zero value is a valid
// configuration: mode tracking on, no threshold, no histogram.
type Options struct {
	// Threshold is the mean value at or above which AddWithResult reports
	// ErrThresholdReached. Zero means no threshold. To set a threshold of
	// exactly zero (or a negative one), use NewWithThreshold.
	Threshold float64

	// DisableModeTracking skips allocation and maintenance of the per-value
	// frequency table. With mode tracking disabled, Mode returns the running
	// mean.
	DisableModeTracking bool

	// SampleHistogram, if set, observes every accepted value. This is the
	// hook for exporting the value distribution; the accumulator itself
	// keeps no distribution beyond the mode frequency table. Rejected values
	// (see ErrNegativeValueToUnsignedType) are not observed.
	SampleHistogram prometheus.Histogram
}

// EnsureDefaults sets the default values for the options that were not
// explicitly set.
func (o *Options) EnsureDefaults() {
	if o.Threshold == 0 {
		o.Threshold = math.MaxFloat64
	}
}

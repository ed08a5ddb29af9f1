// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package movingavg

import (
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/redact"
)

// Stats is a point-in-time snapshot of an accumulator.
type Stats struct {
	// Count is the number of accepted values.
	Count uint64
	// Mean is the running arithmetic mean of the accepted values.
	Mean float64
	// Mode is the most frequent accepted value; see (*Moving).Mode for the
	// degenerate and tie-break semantics.
	Mode float64
}

// Stats returns a snapshot of the accumulator's current aggregates.
func (m *Moving[T]) Stats() Stats {
	return Stats{
		Count: m.count,
		Mean:  m.mean,
		Mode:  m.Mode(),
	}
}

func (s Stats) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter.
func (s Stats) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("n=%s mean=%v mode=%v", crhumanize.Count(s.Count, crhumanize.Compact), s.Mean, s.Mode)
}

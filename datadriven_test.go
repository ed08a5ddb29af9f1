// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package movingavg

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

func TestDataDriven(t *testing.T) {
	var m *Moving[float64]
	datadriven.RunTest(t, "testdata/moving", func(t *testing.T, td *datadriven.TestData) string {
		parseValues := func() []float64 {
			vals := make([]float64, 0, len(td.CmdArgs))
			for _, arg := range td.CmdArgs {
				v, err := strconv.ParseFloat(arg.Key, 64)
				if err != nil {
					td.Fatalf(t, "cannot parse value %q: %v", arg.Key, err)
				}
				vals = append(vals, v)
			}
			return vals
		}
		switch td.Cmd {
		case "init":
			var opts Options
			if arg, ok := td.Arg("threshold"); ok {
				v, err := strconv.ParseFloat(arg.Vals[0], 64)
				if err != nil {
					td.Fatalf(t, "cannot parse threshold %q: %v", arg.Vals[0], err)
				}
				opts.Threshold = v
			}
			opts.DisableModeTracking = td.HasArg("no-mode")
			m = NewWithOptions[float64](opts)
			return ""

		case "add":
			for _, v := range parseValues() {
				m.Add(v)
			}
			return ""

		case "add-with-result":
			var buf strings.Builder
			for _, v := range parseValues() {
				mean, err := m.AddWithResult(v)
				if err != nil {
					fmt.Fprintf(&buf, "mean=%v (%v)\n", mean, err)
				} else {
					fmt.Fprintf(&buf, "mean=%v\n", mean)
				}
			}
			return buf.String()

		case "mean":
			return fmt.Sprintf("%v\n", m.Mean())

		case "mode":
			return fmt.Sprintf("%v\n", m.Mode())

		case "count":
			return fmt.Sprintf("%d\n", m.Count())

		case "stats":
			return m.Stats().String() + "\n"

		default:
			td.Fatalf(t, "unknown command %q", td.Cmd)
			return ""
		}
	})
}

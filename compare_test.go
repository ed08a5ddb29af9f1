// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package movingavg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCmp(t *testing.T) {
	m1 := New[int]()
	m2 := New[int]()
	m1.Add(10)
	m2.Add(20)
	require.Equal(t, -1, m1.Cmp(m2))
	require.Equal(t, 1, m2.Cmp(m1))
	require.Equal(t, 0, m1.Cmp(m1))

	m1.Add(30) // mean 20
	require.Equal(t, 0, m1.Cmp(m2))
}

func TestCompareRawValues(t *testing.T) {
	m := New[uint]()
	m.Add(10)
	m.Add(20)

	// The literal's kind need not match the accumulator's.
	require.Equal(t, 0, Compare(m, 15))
	require.Equal(t, 0, Compare(m, 15.0))
	require.Equal(t, -1, Compare(m, uint8(16)))
	require.Equal(t, 1, Compare(m, int64(14)))

	require.True(t, Equal(m, 15))
	require.True(t, Equal(m, float32(15.0)))
	require.False(t, Equal(m, 14))
}

func TestCompareFloatKind(t *testing.T) {
	m := New[float32]()
	m.Add(10.0)
	m.Add(20.0)
	require.True(t, Equal(m, 15.0))
	require.Equal(t, -1, Compare(m, 1<<20))
}

func TestCompareEmpty(t *testing.T) {
	m := New[int]()
	require.True(t, Equal(m, 0))
	require.Equal(t, -1, Compare(m, 1))
}

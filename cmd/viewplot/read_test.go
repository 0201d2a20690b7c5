// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRows(t *testing.T) {
	rows, err := readRows(strings.NewReader("# header\n1 2,3\n\n  4\t5 NaN  \n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []float64{1, 2, 3}, rows[0])
	assert.Equal(t, 4.0, rows[1][0])
	assert.True(t, math.IsNaN(rows[1][2]))

	_, err = readRows(strings.NewReader("1 2\n3 x\n"))
	assert.ErrorIs(t, err, ErrParse)
	assert.ErrorContains(t, err, "line 2 field 2")

	_, err = readRows(strings.NewReader("# nothing\n"))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestColumns(t *testing.T) {
	cols, err := columns([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 3, 5}, {2, 4, 6}}, cols)

	_, err = columns([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrRagged)
}

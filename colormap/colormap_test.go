// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	lut := Gray()
	tests := []struct {
		f    float64
		want int
	}{
		{math.NaN(), NoData},
		{-0.5, 0},
		{0, 0},
		{1.0 / 3, 85},
		{2.0 / 3, 170},
		{0.999, 255},
		{1, 255},
		{12, 255},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, lut.Index(tt.f), "f=%g", tt.f)
	}
}

func TestAt(t *testing.T) {
	lut := Gray()
	assert.Equal(t, color.RGBA{}, lut.At(NoData))
	assert.Equal(t, color.RGBA{}, lut.At(Size))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, lut.At(128))
	assert.Equal(t, lut.NoData, lut.Map(math.NaN()))
}

func TestFromStops(t *testing.T) {
	_, err := FromStops(Stop{0, color.Black})
	assert.ErrorIs(t, err, ErrStops)

	lut, err := FromStops(Stop{1, color.White}, Stop{0, color.Black})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, lut.Colors[0])
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, lut.Colors[Size-1])
	mid := lut.Colors[Size/2]
	assert.Greater(t, mid.R, uint8(0))
	assert.Less(t, mid.R, uint8(255))

	lut, err = FromStops(Stop{0.25, color.Black}, Stop{0.75, color.White})
	require.NoError(t, err)
	assert.Equal(t, lut.Colors[0], lut.Colors[60])
	assert.Equal(t, lut.Colors[Size-1], lut.Colors[200])
}

func TestNamed(t *testing.T) {
	_, err := Named("NoSuchMap")
	assert.ErrorIs(t, err, ErrUnknownMap)
	assert.Equal(t, "Gray", MustNamed("NoSuchMap").Name)

	names := Available()
	require.NotEmpty(t, names)
	lut, err := Named(names[0])
	require.NoError(t, err)
	assert.Equal(t, names[0], lut.Name)

	lut, err = Named("")
	require.NoError(t, err)
	assert.Equal(t, DefaultName, lut.Name)
}

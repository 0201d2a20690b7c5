// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorbar

import (
	"image/color"
	"testing"

	"cogentcore.org/viewplot/cartesian"
	"cogentcore.org/viewplot/colormap"
	"cogentcore.org/viewplot/data"
	"cogentcore.org/viewplot/views/density"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharesDensityZ(t *testing.T) {
	g, err := data.NewGridRows([][]float64{{-3, 0}, {2, 7}})
	require.NoError(t, err)
	dv := density.New()
	dv.SetMatrix(g)
	cb := New()
	require.NoError(t, cartesian.ConnectAxisMarkers(dv.View, cartesian.Z, cb.View, cartesian.Meta))
	cb.SetLUT(dv.LUT())
	a, b := cb.ViewInterval(cartesian.Meta).Range()
	assert.Equal(t, -3.0, a)
	assert.Equal(t, 7.0, b)

	n := 0
	cb.Changed().Connect(func() { n++ })
	dv.SetSymmetricZ(true)
	assert.Equal(t, 1, n)
	a, b = cb.ViewInterval(cartesian.Meta).Range()
	assert.Equal(t, -7.0, a)
	assert.Equal(t, 7.0, b)
}

func TestRender(t *testing.T) {
	cb := New().SetLUT(colormap.Gray())
	img := cb.Render(BarWidth, 256)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(0, 255))

	img = cb.Render(cb.Width(), 100)
	assert.Equal(t, uint8(255), img.RGBAAt(BarWidth, 50).A, "axis line")
	_, _, ok := cb.PreferredRange(cartesian.Meta)
	assert.False(t, ok)
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"image/color"
	"math"
	"testing"

	"cogentcore.org/viewplot/cartesian"
	"cogentcore.org/viewplot/colormap"
	"cogentcore.org/viewplot/data"
	"cogentcore.org/viewplot/events"
	"cogentcore.org/viewplot/views/gesture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rangeOf(t *testing.T, dv *View, axis cartesian.Axis) [2]float64 {
	iv := dv.ViewInterval(axis)
	require.NotNil(t, iv)
	a, b := iv.Range()
	return [2]float64{a, b}
}

func counted(dv *View) *int {
	n := new(int)
	dv.Changed().Connect(func() { *n++ })
	return n
}

func newGrid(t *testing.T, rows [][]float64) *data.Grid {
	g, err := data.NewGridRows(rows)
	require.NoError(t, err)
	return g
}

func TestZMapping(t *testing.T) {
	dv := New()
	dv.SetMatrix(newGrid(t, [][]float64{{1, 2}, {3, 4}}))
	assert.Equal(t, [2]float64{1, 4}, rangeOf(t, dv, cartesian.Z))

	// row 0 of the matrix is the bottom row of the image
	assert.Equal(t, 0, dv.IndexAt(0, 1))
	assert.Equal(t, 85, dv.IndexAt(1, 1))
	assert.Equal(t, 170, dv.IndexAt(0, 0))
	assert.Equal(t, 255, dv.IndexAt(1, 0))
	assert.Equal(t, colormap.NoData, dv.IndexAt(2, 0))

	for _, v := range []float64{1, 2, 3, 4} {
		want := int(math.Round((v - 1) / 3 * 255))
		assert.Contains(t, []int{dv.IndexAt(0, 0), dv.IndexAt(1, 0), dv.IndexAt(0, 1), dv.IndexAt(1, 1)}, want)
	}
}

func TestZIntervalChangeRebuilds(t *testing.T) {
	dv := New()
	dv.SetMatrix(newGrid(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, dv.ViewInterval(cartesian.Z).Set(0, 2))
	assert.Equal(t, 128, dv.IndexAt(0, 1))
	assert.Equal(t, 255, dv.IndexAt(1, 1))
	assert.Equal(t, 255, dv.IndexAt(0, 0))

	require.NoError(t, dv.ViewInterval(cartesian.Z).Set(2, 3))
	assert.Equal(t, 0, dv.IndexAt(0, 1))
}

func TestNaNIsNoData(t *testing.T) {
	dv := New()
	dv.SetLUT(colormap.Gray())
	dv.SetMatrix(newGrid(t, [][]float64{{math.NaN(), 2}, {3, 4}}))
	assert.Equal(t, [2]float64{2, 4}, rangeOf(t, dv, cartesian.Z))
	assert.Equal(t, colormap.NoData, dv.IndexAt(0, 1))
	assert.Equal(t, color.RGBA{}, dv.Pixels().RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, dv.Pixels().RGBAAt(1, 0))
}

func TestPreferredRangeGeometry(t *testing.T) {
	dv := New()
	_, _, ok := dv.PreferredRange(cartesian.X)
	assert.False(t, ok)
	assert.Equal(t, [2]float64{0, 1}, rangeOf(t, dv, cartesian.X))

	require.NoError(t, dv.SetGeometry(0, 2, 5, -1))
	dv.SetMatrix(data.NewGrid(3, 5))
	a, b, ok := dv.PreferredRange(cartesian.X)
	assert.True(t, ok)
	assert.Equal(t, [2]float64{0, 10}, [2]float64{a, b})
	assert.Equal(t, [2]float64{0, 10}, rangeOf(t, dv, cartesian.X))
	assert.Equal(t, [2]float64{5, 2}, rangeOf(t, dv, cartesian.Y))

	assert.ErrorIs(t, dv.SetGeometry(0, 0, 0, 1), ErrGeometry)
	assert.ErrorIs(t, dv.SetGeometry(math.NaN(), 1, 0, 1), ErrGeometry)
}

func TestGeometryStepSignSetsDirection(t *testing.T) {
	dv := New().SetMatrix(data.NewGrid(2, 2))
	require.NoError(t, dv.SetGeometry(0, -1, 0, 1))
	assert.Equal(t, [2]float64{0, -2}, rangeOf(t, dv, cartesian.X))
	assert.Equal(t, [2]float64{0, 2}, rangeOf(t, dv, cartesian.Y))

	require.NoError(t, dv.SetGeometry(0, 1, 0, -1))
	assert.Equal(t, [2]float64{0, 2}, rangeOf(t, dv, cartesian.X))
	assert.Equal(t, [2]float64{0, -2}, rangeOf(t, dv, cartesian.Y))
}

func TestSymmetricZ(t *testing.T) {
	dv := New()
	dv.SetMatrix(newGrid(t, [][]float64{{-3, 0}, {2, 7}}))
	assert.Equal(t, [2]float64{-3, 7}, rangeOf(t, dv, cartesian.Z))
	dv.SetSymmetricZ(true)
	a, b, ok := dv.PreferredRange(cartesian.Z)
	assert.True(t, ok)
	assert.Equal(t, -7.0, a)
	assert.Equal(t, 7.0, b)
	assert.Equal(t, [2]float64{-7, 7}, rangeOf(t, dv, cartesian.Z))
}

func TestPreserveAspect(t *testing.T) {
	dv := New()
	dv.SetMatrix(data.NewGrid(2, 4))
	dv.SetViewport(100, 100)
	dv.SetPreserveAspect(true)
	assert.Equal(t, [2]float64{0, 4}, rangeOf(t, dv, cartesian.X))
	assert.Equal(t, [2]float64{-1, 3}, rangeOf(t, dv, cartesian.Y))
}

func TestShapeChangeReallocates(t *testing.T) {
	g := newGrid(t, [][]float64{{1, 2}, {3, 4}})
	dv := New()
	dv.SetMatrix(g)
	n := counted(dv)
	require.NoError(t, g.SetValues(3, 2, []float64{1, 2, 3, 4, 5, 6}))
	assert.Equal(t, 1, *n)
	assert.Equal(t, 2, dv.Pixels().Bounds().Dx())
	assert.Equal(t, 3, dv.Pixels().Bounds().Dy())
	assert.Equal(t, [2]float64{0, 3}, rangeOf(t, dv, cartesian.Y))
	assert.Equal(t, [2]float64{1, 6}, rangeOf(t, dv, cartesian.Z))
	assert.Equal(t, 255, dv.IndexAt(1, 0))

	dv.SetMatrix(nil)
	assert.Nil(t, dv.Pixels())
	assert.Equal(t, 0, g.Changed().Len())
}

func TestRender(t *testing.T) {
	dv := New()
	dv.SetLUT(colormap.Gray())
	dv.SetMatrix(newGrid(t, [][]float64{{1, 2}, {3, 4}}))
	img := dv.Render(4, 4)
	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}
	assert.Equal(t, black, img.RGBAAt(0, 3))
	assert.Equal(t, black, img.RGBAAt(1, 2))
	assert.Equal(t, white, img.RGBAAt(3, 0))
	assert.Equal(t, white, img.RGBAAt(2, 1))

	// zoomed to the bottom left cell
	require.NoError(t, dv.ViewInterval(cartesian.X).Set(0, 1))
	require.NoError(t, dv.ViewInterval(cartesian.Y).Set(0, 1))
	img = dv.Render(4, 4)
	assert.Equal(t, black, img.RGBAAt(3, 0))

	require.NoError(t, dv.ViewInterval(cartesian.X).Set(1, 1))
	img = dv.Render(4, 4)
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 3))
}

// gridView returns a view of a 10x10 grid showing [0,10] on X and Y.
func gridView(t *testing.T) *View {
	dv := New()
	dv.SetMatrix(data.NewGrid(10, 10))
	require.Equal(t, [2]float64{0, 10}, rangeOf(t, dv, cartesian.X))
	require.Equal(t, [2]float64{0, 10}, rangeOf(t, dv, cartesian.Y))
	return dv
}

func TestScrollZoom(t *testing.T) {
	dv := gridView(t)
	n := counted(dv)
	dv.HandleEvent(events.NewScroll(events.ScrollUp, 0.5, 0.5, 0))
	assert.Equal(t, [2]float64{1, 9}, rangeOf(t, dv, cartesian.X))
	assert.Equal(t, [2]float64{1, 9}, rangeOf(t, dv, cartesian.Y))
	assert.Equal(t, 1, *n)
	assert.True(t, dv.ViewInterval(cartesian.X).IgnorePreferredRange())
	assert.True(t, dv.ViewInterval(cartesian.Y).IgnorePreferredRange())
	assert.False(t, dv.ViewInterval(cartesian.Z).IgnorePreferredRange())

	dv.HandleEvent(events.NewScroll(events.ScrollDown, 0, 0, 0))
	assert.InDelta(t, 1, rangeOf(t, dv, cartesian.X)[0], 1e-12)
	assert.InDelta(t, 11, rangeOf(t, dv, cartesian.X)[1], 1e-12)

	// data changes no longer refit a manually positioned axis
	dv.DataChanged()
	assert.InDelta(t, 11, rangeOf(t, dv, cartesian.X)[1], 1e-12)
}

func TestZoomClick(t *testing.T) {
	dv := gridView(t)
	dv.SetZooming(true)
	n := counted(dv)
	dv.HandleEvent(events.NewPress(events.Left, 0.5, 0.5, 0))
	assert.Equal(t, gesture.ZoomDragging, dv.Gestures().State())
	dv.HandleEvent(events.NewRelease(events.Left, 0.5, 0.5, 0))
	assert.Equal(t, gesture.Idle, dv.Gestures().State())
	assert.Equal(t, [2]float64{1, 9}, rangeOf(t, dv, cartesian.X))
	assert.Equal(t, 1, *n)

	dv.HandleEvent(events.NewPress(events.Right, 0.5, 0.5, 0))
	dv.HandleEvent(events.NewRelease(events.Right, 0.5, 0.5, 0))
	assert.InDelta(t, 0, rangeOf(t, dv, cartesian.X)[0], 1e-12)
	assert.InDelta(t, 10, rangeOf(t, dv, cartesian.X)[1], 1e-12)
	assert.False(t, dv.Frozen())
}

func TestZoomDrag(t *testing.T) {
	dv := gridView(t)
	dv.SetZooming(true)
	n := counted(dv)
	dv.HandleEvent(events.NewPress(events.Left, 0.6, 0.4, 0))
	dv.HandleEvent(events.NewMotion(0.4, 0.3, 0))
	start, end, ok := dv.Gestures().DragRect()
	assert.True(t, ok)
	assert.Equal(t, float32(0.6), start.X)
	assert.Equal(t, float32(0.4), end.X)
	dv.HandleEvent(events.NewRelease(events.Left, 0.2, 0.2, 0))
	assert.InDelta(t, 2, rangeOf(t, dv, cartesian.X)[0], 1e-6)
	assert.InDelta(t, 6, rangeOf(t, dv, cartesian.X)[1], 1e-6)
	assert.InDelta(t, 2, rangeOf(t, dv, cartesian.Y)[0], 1e-6)
	assert.InDelta(t, 4, rangeOf(t, dv, cartesian.Y)[1], 1e-6)
	// one redraw for the rubber band, one for the zoom
	assert.Equal(t, 2, *n)
}

func TestPanDrag(t *testing.T) {
	dv := gridView(t)
	dv.SetPanning(true)
	n := counted(dv)
	dv.HandleEvent(events.NewPress(events.Left, 0.5, 0.5, 0))
	assert.Equal(t, gesture.PanDragging, dv.Gestures().State())
	assert.False(t, dv.Frozen())
	dv.HandleEvent(events.NewMotion(0.75, 0.5, 0))
	assert.InDelta(t, -2.5, rangeOf(t, dv, cartesian.X)[0], 1e-6)
	assert.Equal(t, 1, *n)
	dv.HandleEvent(events.NewMotion(0.75, 0.25, 0))
	assert.InDelta(t, 2.5, rangeOf(t, dv, cartesian.Y)[0], 1e-6)
	assert.Equal(t, 2, *n)
	dv.HandleEvent(events.NewRelease(events.Left, 0.75, 0.25, 0))
	assert.Equal(t, 2, *n)
	assert.Equal(t, gesture.Idle, dv.Gestures().State())
	assert.True(t, dv.ViewInterval(cartesian.X).IgnorePreferredRange())
}

func TestShiftClickRecenters(t *testing.T) {
	dv := gridView(t)
	dv.SetPanning(true)
	dv.HandleEvent(events.NewPress(events.Left, 0.8, 0.5, events.Shift))
	assert.Equal(t, gesture.Idle, dv.Gestures().State())
	assert.InDelta(t, 3, rangeOf(t, dv, cartesian.X)[0], 1e-6)
	assert.InDelta(t, 13, rangeOf(t, dv, cartesian.X)[1], 1e-6)
	assert.InDelta(t, 0, rangeOf(t, dv, cartesian.Y)[0], 1e-6)
}

func TestFocusOutCancels(t *testing.T) {
	dv := gridView(t)
	dv.SetZooming(true)
	dv.HandleEvent(events.NewPress(events.Left, 0.2, 0.2, 0))
	dv.HandleEvent(events.NewMotion(0.6, 0.6, 0))
	dv.HandleEvent(events.NewFocusOut())
	assert.Equal(t, gesture.Idle, dv.Gestures().State())
	assert.False(t, dv.Frozen())
	assert.Equal(t, [2]float64{0, 10}, rangeOf(t, dv, cartesian.X))

	// a late release does nothing
	dv.HandleEvent(events.NewRelease(events.Left, 0.6, 0.6, 0))
	assert.Equal(t, [2]float64{0, 10}, rangeOf(t, dv, cartesian.X))

	dv.SetZooming(false)
	dv.SetPanning(true)
	dv.HandleEvent(events.NewPress(events.Left, 0.5, 0.5, 0))
	dv.HandleEvent(events.NewMotion(0.6, 0.5, 0))
	dv.HandleEvent(events.NewFocusOut())
	assert.False(t, dv.Frozen())
	assert.InDelta(t, -1, rangeOf(t, dv, cartesian.X)[0], 1e-6)
}

func TestPressDuringDragCancels(t *testing.T) {
	dv := gridView(t)
	dv.SetZooming(true)
	dv.HandleEvent(events.NewPress(events.Left, 0.2, 0.2, 0))
	dv.HandleEvent(events.NewPress(events.Left, 0.6, 0.6, 0))
	assert.Equal(t, gesture.Idle, dv.Gestures().State())
	assert.False(t, dv.Frozen())
	assert.Equal(t, [2]float64{0, 10}, rangeOf(t, dv, cartesian.X))
}

func TestStatus(t *testing.T) {
	dv := New()
	dv.SetMatrix(newGrid(t, [][]float64{{1, 2}, {3, 4}}))
	var status string
	dv.SetStatusSink(func(s string) { status = s })
	dv.HandleEvent(events.NewMotion(0.25, 0.75, 0))
	assert.Equal(t, "x=0.5 y=1.5 z=3", status)
	dv.HandleEvent(events.NewMotion(0.25, 1.5, 0))
	assert.Equal(t, "x=0.5 y=3 z=NaN", status)
}

func TestClose(t *testing.T) {
	g := data.NewGrid(2, 2)
	dv := New()
	dv.SetMatrix(g)
	iv := dv.ViewInterval(cartesian.X)
	dv.Close()
	assert.Equal(t, 0, g.Changed().Len())
	assert.Equal(t, 0, iv.Holders())
	assert.Nil(t, dv.ViewInterval(cartesian.X))
}

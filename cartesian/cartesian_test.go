// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cartesian

import (
	"testing"

	"cogentcore.org/viewplot/markers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridRanger reports the preferred range of a density-like grid:
// origin + count*step on X and Y, and fixed data bounds on Z.
type gridRanger struct {
	xmin, dx   float64
	cols       int
	ymin, dy   float64
	rows       int
	zmin, zmax float64
	hasData    bool
	calls      int
}

func (gr *gridRanger) PreferredRange(axis Axis) (a, b float64, ok bool) {
	gr.calls++
	if !gr.hasData {
		return 0, 0, false
	}
	switch axis {
	case X:
		return gr.xmin, gr.xmin + float64(gr.cols)*gr.dx, true
	case Y:
		return gr.ymin, gr.ymin + float64(gr.rows)*gr.dy, true
	case Z:
		return gr.zmin, gr.zmax, true
	}
	return 0, 0, false
}

func counted(cv *View) *int {
	n := new(int)
	cv.Changed().Connect(func() { *n++ })
	return n
}

func rangeOf(t *testing.T, cv *View, axis Axis) [2]float64 {
	iv := cv.ViewInterval(axis)
	require.NotNil(t, iv)
	a, b := iv.Range()
	return [2]float64{a, b}
}

func TestAxisNames(t *testing.T) {
	for a := range NumAxes {
		got, err := ParseAxis(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := ParseAxis("W")
	assert.ErrorIs(t, err, ErrInvalidAxis)
	assert.Equal(t, "Axis(9)", Axis(9).String())
}

func TestPreferredRangeNegotiation(t *testing.T) {
	gr := &gridRanger{xmin: 0, dx: 2, cols: 5, hasData: true}
	cv := New(gr)
	require.NoError(t, cv.AddViewInterval(X))
	assert.Equal(t, [2]float64{0, 10}, rangeOf(t, cv, X))
}

func TestPreferredRangeNotOK(t *testing.T) {
	cv := New(&gridRanger{})
	require.NoError(t, cv.AddViewInterval(Y))
	assert.Equal(t, [2]float64{0, 1}, rangeOf(t, cv, Y))

	cv = New(nil)
	require.NoError(t, cv.AddViewInterval(Meta))
	assert.Equal(t, [2]float64{0, 1}, rangeOf(t, cv, Meta))
}

func TestAddViewIntervalErrors(t *testing.T) {
	cv := New(nil)
	require.NoError(t, cv.AddViewInterval(X))
	assert.ErrorIs(t, cv.AddViewInterval(X), ErrSlotOccupied)
	assert.ErrorIs(t, cv.AddViewInterval(Axis(-1)), ErrInvalidAxis)
	assert.ErrorIs(t, cv.AddViewInterval(NumAxes), ErrInvalidAxis)
	assert.Nil(t, cv.ViewInterval(Y))
	assert.Nil(t, cv.ViewInterval(NumAxes))
	assert.ErrorIs(t, cv.SetPreferredView(Y), ErrNoInterval)
}

func TestIntervalChangeNotifiesOnce(t *testing.T) {
	cv := New(nil)
	require.NoError(t, cv.AddViewInterval(X))
	n := counted(cv)
	require.NoError(t, cv.ViewInterval(X).Translate(3))
	assert.Equal(t, 1, *n)
}

func TestSharedAxisPropagation(t *testing.T) {
	c1 := New(nil)
	c2 := New(nil)
	require.NoError(t, c1.AddViewInterval(X))
	require.NoError(t, c2.AddViewInterval(Meta))
	old := c2.ViewInterval(Meta)

	require.NoError(t, ConnectViewIntervals(c1, X, c2, Meta))
	assert.Same(t, c1.ViewInterval(X), c2.ViewInterval(Meta))
	assert.Equal(t, 2, c1.ViewInterval(X).Holders())

	// the replaced interval no longer reaches c2
	assert.Equal(t, 0, old.Changed().Len())
	assert.Equal(t, 0, old.PreferredRangeRequest().Len())

	n1, n2 := counted(c1), counted(c2)
	require.NoError(t, c2.ViewInterval(Meta).Translate(1))
	assert.Equal(t, 1, *n1)
	assert.Equal(t, 1, *n2)

	require.NoError(t, old.Translate(1))
	assert.Equal(t, 1, *n2)
}

func TestConnectViewIntervalsNoop(t *testing.T) {
	c1 := New(nil)
	require.NoError(t, c1.AddViewInterval(X))
	n := counted(c1)
	require.NoError(t, ConnectViewIntervals(c1, X, c1, X))
	assert.Equal(t, 0, *n)
	assert.Equal(t, 1, c1.ViewInterval(X).Holders())

	c2 := New(nil)
	require.NoError(t, ConnectViewIntervals(c1, X, c2, X))
	n2 := counted(c2)
	require.NoError(t, ConnectViewIntervals(c1, X, c2, X))
	assert.Equal(t, 0, *n2)
	assert.Equal(t, 2, c1.ViewInterval(X).Holders())

	assert.ErrorIs(t, ConnectViewIntervals(c1, Y, c2, Y), ErrNoInterval)
	assert.ErrorIs(t, ConnectViewIntervals(nil, X, c2, Y), ErrNilView)
	assert.ErrorIs(t, ConnectViewIntervals(c1, X, c2, Axis(7)), ErrInvalidAxis)
}

func TestSharedAxisUnion(t *testing.T) {
	g1 := &gridRanger{xmin: 0, dx: 1, cols: 4, hasData: true}
	g2 := &gridRanger{xmin: -2, dx: 1, cols: 3, hasData: true}
	c1, c2 := New(g1), New(g2)
	require.NoError(t, c1.AddViewInterval(X))
	require.NoError(t, c2.AddViewInterval(X))
	require.NoError(t, ConnectViewIntervals(c1, X, c2, X))
	c2.DataChanged()
	assert.Equal(t, [2]float64{-2, 4}, rangeOf(t, c1, X))
}

func TestDataChangedRefits(t *testing.T) {
	gr := &gridRanger{xmin: 0, dx: 1, cols: 4, ymin: 0, dy: 1, rows: 2, hasData: true}
	cv := New(gr)
	require.NoError(t, cv.AddViewInterval(X))
	require.NoError(t, cv.AddViewInterval(Y))
	n := counted(cv)

	gr.cols = 8
	gr.rows = 3
	cv.DataChanged()
	assert.Equal(t, [2]float64{0, 8}, rangeOf(t, cv, X))
	assert.Equal(t, [2]float64{0, 3}, rangeOf(t, cv, Y))
	assert.Equal(t, 1, *n, "data change, X and Y refits coalesce")
}

func TestIgnorePreferredRange(t *testing.T) {
	gr := &gridRanger{xmin: 0, dx: 1, cols: 4, hasData: true}
	cv := New(gr)
	require.NoError(t, cv.AddViewInterval(X))
	iv := cv.ViewInterval(X)

	require.NoError(t, iv.Translate(10))
	iv.SetIgnorePreferredRange(true)
	cv.DataChanged()
	assert.Equal(t, [2]float64{10, 14}, rangeOf(t, cv, X))

	// explicit request overrides, but keeps the manual flag
	require.NoError(t, cv.SetPreferredView(X))
	assert.Equal(t, [2]float64{0, 4}, rangeOf(t, cv, X))
	assert.True(t, iv.IgnorePreferredRange())

	require.NoError(t, iv.Translate(10))
	iv.SetIgnorePreferredRange(false)
	cv.DataChanged()
	assert.Equal(t, [2]float64{0, 4}, rangeOf(t, cv, X))
}

func TestForcePreferredView(t *testing.T) {
	gr := &gridRanger{xmin: 0, dx: 1, cols: 4, hasData: true}
	cv := New(gr)
	require.NoError(t, cv.AddViewInterval(X))
	require.NoError(t, cv.ForcePreferredView(X, true))
	assert.True(t, cv.ForcedPreferred(X))
	n := counted(cv)

	iv := cv.ViewInterval(X)
	iv.SetIgnorePreferredRange(true)
	require.NoError(t, iv.Set(100, 200))
	assert.Equal(t, [2]float64{0, 4}, rangeOf(t, cv, X), "forced axis snaps back")
	assert.Equal(t, 1, *n)

	require.NoError(t, cv.ForcePreferredView(X, false))
	require.NoError(t, iv.Set(100, 200))
	assert.Equal(t, [2]float64{100, 200}, rangeOf(t, cv, X))
	assert.ErrorIs(t, cv.ForcePreferredView(Axis(12), true), ErrInvalidAxis)
}

// visibleRanger prefers a Y range that depends on the current X range,
// like a line plot fitting Y to the visible points.
type visibleRanger struct {
	cv *View
}

func (vr *visibleRanger) PreferredRange(axis Axis) (a, b float64, ok bool) {
	switch axis {
	case X:
		return 0, 10, true
	case Y:
		x := vr.cv.ViewInterval(X)
		if x == nil {
			return 0, 0, false
		}
		return 0, x.Hi() * 2, true
	}
	return 0, 0, false
}

func TestForcedAxesFlushedOnce(t *testing.T) {
	vr := &visibleRanger{}
	cv := New(vr)
	vr.cv = cv
	require.NoError(t, cv.AddViewInterval(X))
	require.NoError(t, cv.AddViewInterval(Y))
	require.NoError(t, cv.ForcePreferredView(Y, true))
	assert.Equal(t, [2]float64{0, 20}, rangeOf(t, cv, Y))

	n := counted(cv)
	ny := 0
	cv.ViewInterval(Y).Changed().Connect(func() { ny++ })

	cv.Freeze()
	require.NoError(t, cv.ViewInterval(X).Set(0, 3))
	require.NoError(t, cv.ViewInterval(X).Set(0, 4))
	assert.Equal(t, 0, ny, "forced refit is deferred to the end of the operation")
	cv.Thaw()
	assert.Equal(t, [2]float64{0, 8}, rangeOf(t, cv, Y))
	assert.Equal(t, 1, ny)
	assert.Equal(t, 1, *n)
}

func TestAxisMarkers(t *testing.T) {
	cv := New(nil)
	require.NoError(t, cv.AddViewInterval(X))
	assert.Nil(t, cv.AxisMarkers(X))
	require.NoError(t, cv.SetAxisMarkerType(X, markers.Scalar))
	assert.Equal(t, markers.Scalar, cv.AxisMarkerType(X))
	ticks := cv.AxisMarkers(X)
	require.NotEmpty(t, ticks)
	for i := 1; i < len(ticks); i++ {
		assert.Less(t, ticks[i-1].Position, ticks[i].Position)
	}

	n := counted(cv)
	require.NoError(t, cv.ViewInterval(X).Set(0, 1000))
	assert.Equal(t, 1, *n)
	last := cv.AxisMarkers(X)
	assert.Greater(t, last[len(last)-1].Position, 100.0)

	assert.ErrorIs(t, cv.AddAxisMarkers(X), ErrSlotOccupied)
	require.NoError(t, cv.AddAxisMarkers(Y))
	assert.Empty(t, cv.AxisMarkers(Y), "no interval on Y yet")
}

func TestConnectAxisMarkers(t *testing.T) {
	main := New(&gridRanger{xmin: 0, dx: 1, cols: 50, hasData: true})
	require.NoError(t, main.AddViewInterval(X))
	require.NoError(t, main.SetAxisMarkerType(X, markers.Scalar))

	axis := New(nil)
	require.NoError(t, axis.AddViewInterval(Meta))
	require.NoError(t, axis.AddAxisMarkers(Meta))
	n := counted(axis)

	require.NoError(t, ConnectAxisMarkers(main, X, axis, Meta))
	assert.Equal(t, 1, *n, "connecting is one operation on the target")
	assert.Same(t, main.Markers(X), axis.Markers(Meta))
	assert.Same(t, main.ViewInterval(X), axis.ViewInterval(Meta))
	assert.Equal(t, markers.Scalar, axis.AxisMarkerType(Meta))
	assert.Equal(t, main.AxisMarkers(X), axis.AxisMarkers(Meta))

	// markers are created on the source on demand
	other := New(nil)
	require.NoError(t, other.AddViewInterval(Y))
	require.NoError(t, ConnectAxisMarkers(other, Y, axis, Meta))
	assert.NotNil(t, other.Markers(Y))
	assert.Same(t, other.Markers(Y), axis.Markers(Meta))
	assert.Equal(t, 1, main.ViewInterval(X).Holders())
}

func TestClose(t *testing.T) {
	c1, c2 := New(nil), New(nil)
	require.NoError(t, c1.AddViewInterval(X))
	require.NoError(t, c1.AddAxisMarkers(X))
	require.NoError(t, ConnectAxisMarkers(c1, X, c2, X))
	iv := c1.ViewInterval(X)
	mk := c1.Markers(X)

	c2.Close()
	assert.Nil(t, c2.ViewInterval(X))
	assert.Equal(t, 1, iv.Holders())
	assert.Equal(t, 1, iv.Changed().Len())

	c1.Close()
	assert.Equal(t, 0, iv.Holders())
	assert.Equal(t, 0, iv.Changed().Len())
	assert.Equal(t, 0, mk.Changed().Len())
}

func TestSharedMarkersNotifyOnce(t *testing.T) {
	c1 := New(nil)
	require.NoError(t, c1.AddViewInterval(X))
	require.NoError(t, c1.SetAxisMarkerType(X, markers.Scalar))
	c2 := New(nil)
	require.NoError(t, ConnectAxisMarkers(c1, X, c2, Meta))
	n1, n2 := counted(c1), counted(c2)
	require.NoError(t, c1.ViewInterval(X).Set(0, 100))
	assert.Equal(t, 1, *n1)
	assert.Equal(t, 1, *n2)

	// a marker change alone still redraws every holder
	c1.Markers(X).SetWant(10)
	require.NoError(t, c1.SetAxisMarkerType(X, markers.Integer))
	assert.Equal(t, 2, *n2)
}

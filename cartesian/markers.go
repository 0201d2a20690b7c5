// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cartesian

import (
	"fmt"
	"math"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/viewplot/markers"
)

// AddAxisMarkers creates axis markers on the given axis.
func (cv *View) AddAxisMarkers(axis Axis) error {
	if err := checkAxis(axis); err != nil {
		return err
	}
	if cv.slots[axis].mk != nil {
		return fmt.Errorf("AddAxisMarkers %v: %w", axis, ErrSlotOccupied)
	}
	return cv.SetAxisMarkerType(axis, cv.slots[axis].mkType)
}

// SetAxisMarkerType sets the marker type of the axis, creating its
// markers if needed, and recomputes them. Markers shared with other
// views change type for all of them.
func (cv *View) SetAxisMarkerType(axis Axis, typ markers.Type) error {
	if err := checkAxis(axis); err != nil {
		return err
	}
	s := &cv.slots[axis]
	if s.mk == nil {
		cv.bindMarkers(axis, markers.New())
	}
	s.mkType = typ
	t0, t1 := math.NaN(), math.NaN()
	if s.iv != nil {
		t0, t1 = s.iv.Range()
	}
	s.mk.PopulateGeneric(typ, t0, t1)
	return nil
}

// AxisMarkerType returns the marker type of the axis.
func (cv *View) AxisMarkerType(axis Axis) markers.Type {
	if !axis.IsValid() {
		return markers.None
	}
	if mk := cv.slots[axis].mk; mk != nil {
		return mk.Type()
	}
	return cv.slots[axis].mkType
}

// Markers returns the markers on the given axis, or nil.
func (cv *View) Markers(axis Axis) *markers.Markers {
	if !axis.IsValid() {
		return nil
	}
	return cv.slots[axis].mk
}

// AxisMarkers returns the ticks on the given axis, sorted by position.
func (cv *View) AxisMarkers(axis Axis) []markers.Tick {
	mk := cv.Markers(axis)
	if mk == nil {
		return nil
	}
	return mk.Sort()
}

func (cv *View) bindMarkers(axis Axis, mk *markers.Markers) {
	s := &cv.slots[axis]
	mk.Ref()
	s.mk = mk
	s.mkConns.Connect(mk.Changed(), func() {
		// a change of the interval itself is handled by intervalChanged
		if s.iv != nil && s.iv.Emitting() {
			return
		}
		cv.RequestChanged()
	})
}

func (cv *View) unbindMarkers(axis Axis) {
	s := &cv.slots[axis]
	s.mkConns.Close()
	if s.mk != nil {
		s.mk.Unref()
		s.mk = nil
	}
}

// updateMarkers recomputes the markers of the axis from its interval.
func (cv *View) updateMarkers(axis Axis) {
	s := &cv.slots[axis]
	if s.mk == nil || s.iv == nil {
		return
	}
	t0, t1 := s.iv.Range()
	s.mk.PopulateGeneric(s.mk.Type(), t0, t1)
}

// ConnectAxisMarkers makes view c2 share both the view interval and the
// axis markers of c1 on axis a1 at its own axis a2, as one operation on
// c2. Markers are created on c1 if it has none yet.
func ConnectAxisMarkers(c1 *View, a1 Axis, c2 *View, a2 Axis) error {
	if c1 == nil || c2 == nil {
		return ErrNilView
	}
	if err := errors.Join(checkAxis(a1), checkAxis(a2)); err != nil {
		return err
	}
	if c1 == c2 && a1 == a2 {
		return nil
	}
	c2.Freeze()
	defer c2.Thaw()
	if err := ConnectViewIntervals(c1, a1, c2, a2); err != nil {
		return err
	}
	if c1.slots[a1].mk == nil {
		c1.SetAxisMarkerType(a1, c1.slots[a1].mkType)
	}
	src := c1.slots[a1].mk
	s := &c2.slots[a2]
	s.mkType = src.Type()
	if s.mk != src {
		c2.unbindMarkers(a2)
		c2.bindMarkers(a2, src)
	}
	c2.updateMarkers(a2)
	c2.RequestChanged()
	return nil
}

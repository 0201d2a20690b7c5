// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cartesian provides [View], an element view with a fixed set of
// axis slots. Each slot holds a view interval and axis markers that can
// be shared with other views, so that an X axis strip, a Y axis strip and
// any number of plot panes all track one logical range.
//
// A concrete view contributes only a [PreferredRanger]: the range that
// would best display its current data on each axis.
package cartesian

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/viewplot/element"
	"cogentcore.org/viewplot/interval"
	"cogentcore.org/viewplot/markers"
	"cogentcore.org/viewplot/signal"
)

// Programmer errors reported by [View] methods.
var (
	ErrInvalidAxis  = errors.New("cartesian: invalid axis")
	ErrSlotOccupied = errors.New("cartesian: axis slot already occupied")
	ErrNoInterval   = errors.New("cartesian: axis has no view interval")
	ErrNilView      = errors.New("cartesian: nil view")
)

// PreferredRanger is implemented by concrete views to report the range
// that would best display their current data on the given axis.
// ok is false if the view has no preference.
type PreferredRanger interface {
	PreferredRange(axis Axis) (a, b float64, ok bool)
}

// Host is any view built on a cartesian View.
type Host interface {
	Cart() *View
}

// maxFlushPasses bounds the refitting of forced axes at the end of
// an operation.
const maxFlushPasses = 8

// slot is the state for one axis.
type slot struct {
	iv *interval.Interval

	// ivConns are our connections on iv; changedConn is the one
	// on iv.Changed, blocked while re-requesting a forced range.
	ivConns     signal.Connections
	changedConn signal.Connection

	// force makes the axis snap to the preferred range on every change.
	force bool

	mk      *markers.Markers
	mkConns signal.Connections
	mkType  markers.Type
}

// View is an element view with axis slots. Use [New] to make one.
type View struct {
	element.View

	ranger PreferredRanger
	slots  [NumAxes]slot

	// dirty is the set of forced axes to refit when the
	// current operation ends (at the final thaw).
	dirty [NumAxes]bool
}

// New returns a new view whose preferred ranges are reported by pr,
// which may be nil for a view without data.
func New(pr PreferredRanger) *View {
	cv := &View{ranger: pr}
	cv.SetHooks(element.Hooks{Thaw: cv.thawed})
	return cv
}

// Cart returns the view itself, satisfying [Host] for views embedding it.
func (cv *View) Cart() *View {
	return cv
}

func checkAxis(axis Axis) error {
	if !axis.IsValid() {
		return fmt.Errorf("axis %v: %w", axis, ErrInvalidAxis)
	}
	return nil
}

// AddViewInterval creates a new view interval on the given axis, owned
// by this view, and immediately requests its preferred range.
func (cv *View) AddViewInterval(axis Axis) error {
	if err := checkAxis(axis); err != nil {
		return err
	}
	if cv.slots[axis].iv != nil {
		return fmt.Errorf("AddViewInterval %v: %w", axis, ErrSlotOccupied)
	}
	iv := interval.New()
	cv.bindInterval(axis, iv)
	iv.RequestPreferredRange()
	return nil
}

// ViewInterval returns the view interval on the given axis,
// or nil if there is none.
func (cv *View) ViewInterval(axis Axis) *interval.Interval {
	if !axis.IsValid() {
		return nil
	}
	return cv.slots[axis].iv
}

// Intervals calls fun for each axis with a view interval.
func (cv *View) Intervals(fun func(axis Axis, iv *interval.Interval)) {
	for a := range NumAxes {
		if iv := cv.slots[a].iv; iv != nil {
			fun(a, iv)
		}
	}
}

func (cv *View) bindInterval(axis Axis, iv *interval.Interval) {
	s := &cv.slots[axis]
	iv.Ref()
	s.iv = iv
	s.changedConn = s.ivConns.Connect(iv.Changed(), func() { cv.intervalChanged(axis) })
	s.ivConns.Connect(iv.PreferredRangeRequest(), func() { cv.preferredRequested(axis) })
}

// unbindInterval disconnects our handlers before releasing the interval.
func (cv *View) unbindInterval(axis Axis) {
	s := &cv.slots[axis]
	s.ivConns.Close()
	s.changedConn = signal.Connection{}
	if s.iv != nil {
		s.iv.Unref()
		s.iv = nil
	}
}

// intervalChanged handles a change of the interval on axis.
func (cv *View) intervalChanged(axis Axis) {
	s := &cv.slots[axis]
	cv.Freeze()
	if s.force {
		s.changedConn.Block()
		s.iv.RequestPreferredRange()
		s.changedConn.Unblock()
	} else if cv.anyForced() {
		for a := range NumAxes {
			if cv.slots[a].force && cv.slots[a].iv != nil {
				cv.dirty[a] = true
			}
		}
	}
	cv.updateMarkers(axis)
	cv.RequestChanged()
	cv.Thaw()
}

// preferredRequested answers a preferred range request on axis.
func (cv *View) preferredRequested(axis Axis) {
	s := &cv.slots[axis]
	if s.iv == nil || cv.ranger == nil {
		return
	}
	if s.iv.IgnorePreferredRange() && !s.force {
		return
	}
	a, b, ok := cv.ranger.PreferredRange(axis)
	if !ok {
		return
	}
	if err := s.iv.GrowTo(a, b); err != nil {
		slog.Debug("cartesian: invalid preferred range", "view", cv.Name, "axis", axis, "err", err)
	}
}

func (cv *View) anyForced() bool {
	for a := range NumAxes {
		if cv.slots[a].force {
			return true
		}
	}
	return false
}

// thawed is the thaw hook: at the end of the outermost operation it
// refits the forced axes collected in the dirty set, while the view is
// still frozen so that everything coalesces into one notification.
func (cv *View) thawed(final bool) {
	if !final {
		return
	}
	for range maxFlushPasses {
		flushed := false
		for a := range NumAxes {
			if !cv.dirty[a] {
				continue
			}
			cv.dirty[a] = false
			flushed = true
			if iv := cv.slots[a].iv; iv != nil {
				iv.RequestPreferredRange()
			}
		}
		if !flushed {
			return
		}
	}
	slog.Warn("cartesian: forced axes did not settle", "view", cv.Name)
	cv.dirty = [NumAxes]bool{}
}

// ConnectViewIntervals makes view c2 share the view interval of c1 on
// axis a1 at its own axis a2, replacing (and releasing) the interval
// c2 had there. It does nothing if both ends are the same slot.
func ConnectViewIntervals(c1 *View, a1 Axis, c2 *View, a2 Axis) error {
	if c1 == nil || c2 == nil {
		return ErrNilView
	}
	if err := errors.Join(checkAxis(a1), checkAxis(a2)); err != nil {
		return err
	}
	if c1 == c2 && a1 == a2 {
		return nil
	}
	src := c1.slots[a1].iv
	if src == nil {
		return fmt.Errorf("ConnectViewIntervals source %v: %w", a1, ErrNoInterval)
	}
	if c2.slots[a2].iv == src {
		return nil
	}
	c2.Freeze()
	c2.unbindInterval(a2)
	c2.bindInterval(a2, src)
	c2.updateMarkers(a2)
	c2.RequestChanged()
	c2.Thaw()
	return nil
}

// SetPreferredView requests the preferred range on the given axis,
// even if the interval is currently marked to ignore it.
func (cv *View) SetPreferredView(axis Axis) error {
	if err := checkAxis(axis); err != nil {
		return err
	}
	iv := cv.slots[axis].iv
	if iv == nil {
		return fmt.Errorf("SetPreferredView %v: %w", axis, ErrNoInterval)
	}
	ign := iv.IgnorePreferredRange()
	iv.SetIgnorePreferredRange(false)
	iv.RequestPreferredRange()
	iv.SetIgnorePreferredRange(ign)
	return nil
}

// SetPreferredViewAll calls [View.SetPreferredView] on every axis
// with an interval, as one operation.
func (cv *View) SetPreferredViewAll() {
	cv.Freeze()
	cv.Intervals(func(axis Axis, iv *interval.Interval) {
		cv.SetPreferredView(axis)
	})
	cv.Thaw()
}

// ForcePreferredView sets whether the axis snaps back to the preferred
// range on every change, rather than only when data changes and the user
// has not positioned it. Turning it on snaps the axis immediately.
func (cv *View) ForcePreferredView(axis Axis, on bool) error {
	if err := checkAxis(axis); err != nil {
		return err
	}
	s := &cv.slots[axis]
	s.force = on
	if on && s.iv != nil {
		s.iv.RequestPreferredRange()
	}
	return nil
}

// ForcedPreferred returns whether the axis is forced to its preferred range.
func (cv *View) ForcedPreferred(axis Axis) bool {
	return axis.IsValid() && cv.slots[axis].force
}

// DataChanged is called by the concrete view when its bound data changed:
// in one operation it re-requests the preferred range on every axis and
// requests a redraw.
func (cv *View) DataChanged() {
	cv.Freeze()
	cv.Intervals(func(axis Axis, iv *interval.Interval) {
		iv.RequestPreferredRange()
	})
	cv.RequestChanged()
	cv.Thaw()
}

// Close releases every axis slot, disconnecting all handlers.
func (cv *View) Close() {
	for a := range NumAxes {
		cv.unbindMarkers(a)
		cv.unbindInterval(a)
	}
}

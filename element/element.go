// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package element provides [View], the base of every drawable view:
// a reference counted freeze / thaw gate that coalesces change
// notifications, zoom and pan mode flags, and a status text sink.
//
// Concrete views embed a View (directly or through a cartesian.View)
// and call [View.RequestChanged] whenever their rendering is stale.
package element

import (
	"log/slog"

	"cogentcore.org/viewplot/signal"
)

// Drawable is the capability shared by all views: change notification
// with freeze / thaw batching.
type Drawable interface {
	// Freeze suspends change notifications. Freezes nest.
	Freeze()

	// Thaw undoes one Freeze, emitting one pending change
	// notification when the last freeze is undone.
	Thaw()

	// RequestChanged emits the change notification now,
	// or once the view is thawed if it is frozen.
	RequestChanged()

	// Changed is emitted when the view needs to be redrawn.
	Changed() *signal.Signal

	// Frozen returns whether the view is currently frozen.
	Frozen() bool
}

// Moder is a view with zoom and pan modes.
type Moder interface {
	SetZooming(on bool)
	SetPanning(on bool)
}

// Hooks are optional functions called by [View] on freeze and thaw,
// letting a concrete view pause and resume expensive work.
type Hooks struct {
	// Freeze is called after the freeze depth is incremented.
	Freeze func()

	// Thaw is called before the freeze depth is decremented.
	// final is true when this thaw will bring the depth to zero:
	// changes requested from within the hook are still coalesced
	// into the single notification emitted at the end of the thaw.
	Thaw func(final bool)
}

// View is the base drawable view. The zero value is ready to use.
type View struct {
	// Name is used in log messages.
	Name string

	freeze  int
	pending bool
	zooming bool
	panning bool

	hooks  Hooks
	status func(string)

	changed signal.Signal
}

// SetHooks sets the freeze / thaw hooks.
func (ev *View) SetHooks(h Hooks) {
	ev.hooks = h
}

// Changed is emitted when the view needs to be redrawn.
func (ev *View) Changed() *signal.Signal {
	return &ev.changed
}

// Freeze increments the freeze depth.
func (ev *View) Freeze() {
	ev.freeze++
	if ev.hooks.Freeze != nil {
		ev.hooks.Freeze()
	}
}

// Thaw decrements the freeze depth; it does nothing if the view is not
// frozen. When the depth returns to zero and a change was requested
// while frozen, exactly one change notification is emitted.
func (ev *View) Thaw() {
	if ev.freeze == 0 {
		slog.Debug("element: thaw without freeze", "view", ev.Name)
		return
	}
	if ev.hooks.Thaw != nil {
		ev.hooks.Thaw(ev.freeze == 1)
	}
	ev.freeze--
	if ev.freeze == 0 && ev.pending {
		ev.pending = false
		ev.changed.Emit()
	}
}

// FreezeDepth returns the current freeze depth.
func (ev *View) FreezeDepth() int {
	return ev.freeze
}

// Frozen returns whether the freeze depth is above zero.
func (ev *View) Frozen() bool {
	return ev.freeze > 0
}

// Pending returns whether a change is waiting for the final thaw.
func (ev *View) Pending() bool {
	return ev.pending
}

// RequestChanged emits the change notification immediately if the view
// is not frozen, and otherwise marks it pending.
func (ev *View) RequestChanged() {
	if ev.freeze > 0 {
		ev.pending = true
		return
	}
	ev.changed.Emit()
}

// SetZooming sets the zoom mode flag.
func (ev *View) SetZooming(on bool) {
	ev.zooming = on
}

// Zooming returns whether zoom mode is on.
func (ev *View) Zooming() bool {
	return ev.zooming
}

// SetPanning sets the pan mode flag.
func (ev *View) SetPanning(on bool) {
	ev.panning = on
}

// Panning returns whether pan mode is on.
func (ev *View) Panning() bool {
	return ev.panning
}

// SetStatusSink sets the function receiving status text, typically a
// status bar label. nil removes it.
func (ev *View) SetStatusSink(sink func(string)) {
	ev.status = sink
}

// SetStatus sends status text to the sink, or logs it at debug level
// when there is no sink.
func (ev *View) SetStatus(s string) {
	if ev.status == nil {
		slog.Debug("element: status", "view", ev.Name, "status", s)
		return
	}
	ev.status(s)
}

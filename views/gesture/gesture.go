// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gesture provides the zoom and pan pointer gestures shared by
// the interactive views, operating on the X and Y view intervals of a
// cartesian view.
package gesture

import (
	"log/slog"
	"math"
	"strconv"

	"cogentcore.org/core/math32"
	"cogentcore.org/viewplot/cartesian"
	"cogentcore.org/viewplot/events"
	"cogentcore.org/viewplot/interval"
)

// States are the states of the gesture machine.
type States int32

const (
	Idle States = iota
	ZoomDragging
	PanDragging
)

func (st States) String() string {
	switch st {
	case Idle:
		return "Idle"
	case ZoomDragging:
		return "ZoomDragging"
	case PanDragging:
		return "PanDragging"
	}
	return "States(" + strconv.Itoa(int(st)) + ")"
}

const (
	// ZoomIn is the rescale factor for a left click or scroll up.
	ZoomIn = 0.8

	// ZoomOut is the rescale factor for a right click or scroll down.
	ZoomOut = 1.25

	// ClickSlop is the largest pointer movement, as a fraction of the
	// view, for a zoom press and release to count as a click.
	ClickSlop = 0.01
)

// Controller runs the gesture state machine for one view.
// Events are delivered through [Controller.HandleEvent]; additional
// listeners added to Listeners run before the built-in ones and can
// mark events handled to override them.
type Controller struct {
	// Listeners receive every event passed to HandleEvent.
	Listeners events.Listeners

	// Status, if set, formats the status text for the pointer at the
	// given data position, shown on every motion event.
	Status func(x, y float64) string

	cv     *cartesian.View
	state  States
	button events.Buttons

	// start is the press position, last the latest motion position,
	// both as view fractions.
	start math32.Vector2
	last  math32.Vector2
}

// New returns a controller for the X and Y axes of cv.
func New(cv *cartesian.View) *Controller {
	g := &Controller{cv: cv}
	g.Listeners.Add(events.Press, g.press)
	g.Listeners.Add(events.Release, g.release)
	g.Listeners.Add(events.Motion, g.motion)
	g.Listeners.Add(events.Scroll, g.scroll)
	g.Listeners.Add(events.FocusOut, g.focusOut)
	return g
}

// HandleEvent delivers an event to the listeners.
func (g *Controller) HandleEvent(ev *events.Event) {
	g.Listeners.Call(ev)
}

// State returns the current gesture state.
func (g *Controller) State() States {
	return g.state
}

// DragRect returns the zoom rectangle being dragged as view fractions,
// with ok false when no zoom drag is in progress.
func (g *Controller) DragRect() (start, end math32.Vector2, ok bool) {
	if g.state != ZoomDragging {
		return
	}
	return g.start, g.last, true
}

func (g *Controller) setState(st States) {
	slog.Debug("gesture: state", "view", g.cv.Name, "from", g.state, "to", st)
	g.state = st
}

// intervals returns the X and Y intervals, either of which may be nil.
func (g *Controller) intervals() (x, y *interval.Interval) {
	return g.cv.ViewInterval(cartesian.X), g.cv.ViewInterval(cartesian.Y)
}

// manual marks the X and Y intervals as user positioned.
func (g *Controller) manual() {
	x, y := g.intervals()
	for _, iv := range []*interval.Interval{x, y} {
		if iv != nil {
			iv.SetIgnorePreferredRange(true)
		}
	}
}

// each calls fun with each existing X and Y interval and the pointer
// fraction along it.
func (g *Controller) each(pos math32.Vector2, fun func(iv *interval.Interval, f float64) error) {
	x, y := g.intervals()
	if x != nil {
		if err := fun(x, float64(pos.X)); err != nil {
			slog.Debug("gesture: x interval", "view", g.cv.Name, "err", err)
		}
	}
	if y != nil {
		if err := fun(y, float64(pos.Y)); err != nil {
			slog.Debug("gesture: y interval", "view", g.cv.Name, "err", err)
		}
	}
}

// rescale zooms X and Y by factor around the pointer.
func (g *Controller) rescale(pos math32.Vector2, factor float64) {
	g.cv.Freeze()
	g.manual()
	g.each(pos, func(iv *interval.Interval, f float64) error {
		return iv.RescaleAroundPoint(iv.Unconv(f), factor)
	})
	g.cv.Thaw()
}

func (g *Controller) press(ev *events.Event) {
	if g.state != Idle {
		g.cancel()
		ev.SetHandled()
		return
	}
	switch {
	case ev.Mods.Has(events.Shift):
		g.cv.Freeze()
		g.manual()
		g.each(ev.Pos, func(iv *interval.Interval, f float64) error {
			return iv.RecenterAroundPoint(iv.Unconv(f))
		})
		g.cv.Thaw()
	case g.cv.Zooming():
		g.button = ev.Button
		g.start, g.last = ev.Pos, ev.Pos
		g.setState(ZoomDragging)
	case g.cv.Panning():
		g.button = ev.Button
		g.start, g.last = ev.Pos, ev.Pos
		g.setState(PanDragging)
	default:
		return
	}
	ev.SetHandled()
}

func (g *Controller) release(ev *events.Event) {
	if g.state == Idle {
		return
	}
	g.cv.Freeze()
	defer g.cv.Thaw()
	switch g.state {
	case ZoomDragging:
		g.last = ev.Pos
		// the drag rectangle goes away
		g.cv.RequestChanged()
		if isClick(g.start, g.last) {
			switch g.button {
			case events.Left:
				g.rescale(ev.Pos, ZoomIn)
			case events.Right:
				g.rescale(ev.Pos, ZoomOut)
			}
		} else {
			g.zoomTo(g.start, g.last)
		}
	case PanDragging:
		g.pan(ev.Pos)
	}
	g.end()
	ev.SetHandled()
}

func (g *Controller) motion(ev *events.Event) {
	if g.Status != nil {
		x, y := g.intervals()
		dx, dy := math.NaN(), math.NaN()
		if x != nil {
			dx = x.Unconv(float64(ev.Pos.X))
		}
		if y != nil {
			dy = y.Unconv(float64(ev.Pos.Y))
		}
		g.cv.SetStatus(g.Status(dx, dy))
	}
	if g.state == Idle {
		return
	}
	// each motion is one redraw
	g.cv.Freeze()
	switch g.state {
	case ZoomDragging:
		g.last = ev.Pos
		g.cv.RequestChanged()
	case PanDragging:
		g.pan(ev.Pos)
	}
	g.cv.Thaw()
	ev.SetHandled()
}

func (g *Controller) scroll(ev *events.Event) {
	switch ev.Scroll {
	case events.ScrollUp:
		g.rescale(ev.Pos, ZoomIn)
	case events.ScrollDown:
		g.rescale(ev.Pos, ZoomOut)
	}
	ev.SetHandled()
}

func (g *Controller) focusOut(ev *events.Event) {
	if g.state != Idle {
		g.cancel()
	}
}

// pan translates X and Y so the data under the pointer follows it.
func (g *Controller) pan(pos math32.Vector2) {
	delta := g.last.Sub(pos)
	g.last = pos
	if delta == (math32.Vector2{}) {
		return
	}
	g.manual()
	g.each(delta, func(iv *interval.Interval, f float64) error {
		return iv.Translate(f * iv.Width())
	})
}

// zoomTo sets X and Y to the rectangle between two view fractions,
// keeping the orientation of each interval.
func (g *Controller) zoomTo(a, b math32.Vector2) {
	g.manual()
	x, y := g.intervals()
	setSpan := func(iv *interval.Interval, fa, fb float64) {
		if iv == nil || fa == fb {
			return
		}
		va, vb := iv.Unconv(math.Min(fa, fb)), iv.Unconv(math.Max(fa, fb))
		if err := iv.Set(va, vb); err != nil {
			slog.Debug("gesture: zoom", "view", g.cv.Name, "err", err)
		}
	}
	setSpan(x, float64(a.X), float64(b.X))
	setSpan(y, float64(a.Y), float64(b.Y))
}

// cancel abandons a drag in progress: a zoom drag is discarded and
// a pan keeps the translation applied so far.
func (g *Controller) cancel() {
	slog.Debug("gesture: cancel", "view", g.cv.Name, "state", g.state)
	if g.state == ZoomDragging {
		g.cv.RequestChanged()
	}
	g.end()
}

// end returns to Idle.
func (g *Controller) end() {
	g.setState(Idle)
	g.button = events.NoButton
}

func isClick(a, b math32.Vector2) bool {
	d := a.Sub(b)
	return math32.Abs(d.X) <= ClickSlop && math32.Abs(d.Y) <= ClickSlop
}

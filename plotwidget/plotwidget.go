// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotwidget provides [Widget], which composes data views with
// four axis strips around them, a legend, a color bar for density
// views, a zoom / pan / autoscale toolbar and an optional redraw rate cap.
package plotwidget

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"slices"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/viewplot/cartesian"
	"cogentcore.org/viewplot/colormap"
	"cogentcore.org/viewplot/config"
	"cogentcore.org/viewplot/element"
	"cogentcore.org/viewplot/events"
	"cogentcore.org/viewplot/interval"
	"cogentcore.org/viewplot/markers"
	"cogentcore.org/viewplot/signal"
	"cogentcore.org/viewplot/views/axisview"
	"cogentcore.org/viewplot/views/colorbar"
	"cogentcore.org/viewplot/views/density"
	"cogentcore.org/viewplot/views/legend"
	"cogentcore.org/viewplot/views/raster"
	"cogentcore.org/viewplot/views/scatter"
)

// Compass is a side of the plot.
type Compass = axisview.Sides

const (
	North = axisview.North
	South = axisview.South
	East  = axisview.East
	West  = axisview.West
)

// Pad is the space in pixels around the legend and color bar.
const Pad = 8

// child is a view owned or hosted by the widget.
type child interface {
	element.Drawable
	element.Moder
}

// Renderer is a view that can draw itself.
type Renderer interface {
	Render(w, h int) *image.RGBA
}

// EventHandler is a view that handles pointer events.
type EventHandler interface {
	HandleEvent(ev *events.Event)
}

type labeler interface {
	Label() string
	Color() color.RGBA
}

type lutHolder interface {
	LUT() *colormap.LUT
}

type viewporter interface {
	SetViewport(w, h int)
}

// Widget is a plot: data views drawn on top of each other in the main
// area, sharing X and Y intervals, with axes on all four sides.
// Changed is emitted once whenever any part needs redrawing.
type Widget struct {
	element.View

	// Background fills the rendered image.
	Background color.RGBA

	axes     [axisview.SidesN]*axisview.View
	views    []cartesian.Host
	main     *cartesian.View
	legend   *legend.View
	colorbar *colorbar.View
	kids     []child
	conns    signal.Connections
	toolbar  []*Action
	opts     *config.Options

	// frozen is the depth of FreezeAll.
	frozen int

	// redraw rate cap
	throttled bool
	period    time.Duration
	lastTick  time.Time
}

// New returns a widget with four axis views and no data views.
func New() *Widget {
	w := &Widget{Background: color.RGBA{255, 255, 255, 255}, opts: config.New()}
	w.Name = "plot"
	for s := range axisview.SidesN {
		av := axisview.New(s)
		w.axes[s] = av
		w.addChild(av)
	}
	// labels once, on the bottom and left
	w.axes[North].ShowLabels = false
	w.axes[East].ShowLabels = false
	w.legend = legend.New()
	w.addChild(w.legend)
	w.makeToolbar()
	return w
}

func (w *Widget) addChild(d child) {
	w.kids = append(w.kids, d)
	w.conns.Connect(d.Changed(), w.RequestChanged)
	for range w.frozen {
		d.Freeze()
	}
	d.SetZooming(w.toolbar != nil && w.Zooming())
	d.SetPanning(w.toolbar != nil && w.Panning())
}

func (w *Widget) children() []child {
	return w.kids
}

// Axis returns the axis view on the given side.
func (w *Widget) Axis(side Compass) *axisview.View {
	return w.axes[side]
}

// Legend returns the legend.
func (w *Widget) Legend() *legend.View {
	return w.legend
}

// ColorBar returns the color bar, created when the first view has a Z
// axis and a color table, or nil.
func (w *Widget) ColorBar() *colorbar.View {
	return w.colorbar
}

// Main returns the cartesian view of the first data view, or nil.
func (w *Widget) Main() *cartesian.View {
	return w.main
}

// Views returns the data views in the order added.
func (w *Widget) Views() []cartesian.Host {
	return w.views
}

// Options returns the current options.
func (w *Widget) Options() *config.Options {
	return w.opts
}

// AddView adds a data view. The first view becomes the main view: its X
// interval and markers are shared with the north and south axes, and Y
// with the east and west ones. Later views share the X and Y intervals
// of the main view. A view with a label is added to the legend.
// All of this is one operation on every child.
func (w *Widget) AddView(v cartesian.Host) error {
	if v == nil || v.Cart() == nil {
		return cartesian.ErrNilView
	}
	if slices.Contains(w.views, v) {
		return nil
	}
	cv := v.Cart()
	if w.main == nil && (cv.ViewInterval(cartesian.X) == nil || cv.ViewInterval(cartesian.Y) == nil) {
		return fmt.Errorf("AddView %s: %w", cv.Name, cartesian.ErrNoInterval)
	}
	w.FreezeAll()
	defer w.ThawAll()
	w.views = append(w.views, v)
	w.addChild(cv)
	var errs []error
	if w.main == nil {
		w.main = cv
		errs = append(errs, w.bindAxes(v))
	} else {
		errs = append(errs,
			cartesian.ConnectViewIntervals(w.main, cartesian.X, cv, cartesian.X),
			cartesian.ConnectViewIntervals(w.main, cartesian.Y, cv, cartesian.Y))
		cv.DataChanged()
	}
	w.applyView(v)
	if lb, ok := v.(labeler); ok && lb.Label() != "" {
		w.legend.Add(lb.Label(), lb.Color())
	}
	return errors.Log(errors.Join(errs...))
}

// bindAxes shares the axes of the main view with the axis views,
// and its Z axis with a new color bar.
func (w *Widget) bindAxes(v cartesian.Host) error {
	mv := w.main
	var errs []error
	markerType := func(axis cartesian.Axis) {
		if mv.AxisMarkerType(axis) != markers.None {
			return
		}
		typ, ok := w.opts.MarkerType(axis)
		if !ok {
			typ = markers.Scalar
		}
		errs = append(errs, mv.SetAxisMarkerType(axis, typ))
	}
	markerType(cartesian.X)
	markerType(cartesian.Y)
	for _, s := range []Compass{South, North} {
		errs = append(errs, cartesian.ConnectAxisMarkers(mv, cartesian.X, w.axes[s].View, cartesian.Meta))
	}
	for _, s := range []Compass{West, East} {
		errs = append(errs, cartesian.ConnectAxisMarkers(mv, cartesian.Y, w.axes[s].View, cartesian.Meta))
	}
	lh, ok := v.(lutHolder)
	if !ok || mv.ViewInterval(cartesian.Z) == nil {
		return errors.Join(errs...)
	}
	w.colorbar = colorbar.New()
	w.addChild(w.colorbar)
	markerType(cartesian.Z)
	errs = append(errs, cartesian.ConnectAxisMarkers(mv, cartesian.Z, w.colorbar.View, cartesian.Meta))
	w.colorbar.SetLUT(lh.LUT())
	return errors.Join(errs...)
}

// applyView applies the current options to a data view.
func (w *Widget) applyView(v cartesian.Host) {
	o := w.opts
	cv := v.Cart()
	cv.Intervals(func(axis cartesian.Axis, iv *interval.Interval) {
		iv.SetIgnorePreferredRange(o.IgnorePreferredRange)
		errors.Log(cv.ForcePreferredView(axis, o.Forced(axis)))
		if typ, ok := o.MarkerType(axis); ok && cv.Markers(axis) != nil {
			errors.Log(cv.SetAxisMarkerType(axis, typ))
		}
	})
	switch vv := v.(type) {
	case *density.View:
		vv.SetSymmetricZ(o.SymmetricZ)
		vv.SetPreserveAspect(o.PreserveAspect)
		lut := colormap.MustNamed(o.ColorMap)
		vv.SetLUT(lut)
		if w.colorbar != nil && cv == w.main {
			w.colorbar.SetLUT(lut)
		}
	case *scatter.View:
		st := vv.Style()
		st.Line.Width = o.Line.Width
		st.Line.Show = o.Line.Show
		st.Dots.Size = o.Dots.Size
		st.Dots.Show = o.Dots.Show
		vv.SetStyle(st)
	}
}

// ApplyOptions validates and applies options to the widget and all of
// its views. The widget keeps a copy.
func (w *Widget) ApplyOptions(o *config.Options) error {
	if err := o.Validate(); err != nil {
		return err
	}
	w.opts = o.Clone()
	w.FreezeAll()
	for _, v := range w.views {
		w.applyView(v)
	}
	w.setModes(o.Zooming, o.Panning)
	w.ThawAll()
	w.SetMaxFrameRate(o.MaxFrameRate)
	return nil
}

// FreezeAll freezes every child view.
func (w *Widget) FreezeAll() {
	w.frozen++
	for _, d := range w.children() {
		d.Freeze()
	}
}

// ThawAll thaws every child view, emitting at most one Changed for the
// widget.
func (w *Widget) ThawAll() {
	if w.frozen == 0 {
		return
	}
	w.frozen--
	w.Freeze()
	for _, d := range w.children() {
		d.Thaw()
	}
	w.Thaw()
}

// Autoscale clears the manual positioning of every interval and fits
// all axes to the data now.
func (w *Widget) Autoscale() {
	w.FreezeAll()
	for _, v := range w.views {
		v.Cart().Intervals(func(axis cartesian.Axis, iv *interval.Interval) {
			iv.SetIgnorePreferredRange(false)
		})
	}
	for _, v := range w.views {
		v.Cart().DataChanged()
	}
	w.ThawAll()
}

// SetMaxFrameRate caps redraws to hz per second: all children stay
// frozen, and [Widget.Tick] releases their accumulated changes at most
// once per period. hz <= 0 removes the cap.
func (w *Widget) SetMaxFrameRate(hz float64) {
	if hz > 0 {
		w.period = time.Duration(float64(time.Second) / hz)
		if !w.throttled {
			w.throttled = true
			w.lastTick = time.Time{}
			w.FreezeAll()
		}
		slog.Debug("plotwidget: frame rate cap", "plot", w.Name, "period", w.period)
		return
	}
	if w.throttled {
		w.throttled = false
		w.period = 0
		w.ThawAll()
		slog.Debug("plotwidget: frame rate cap off", "plot", w.Name)
	}
}

// MaxFrameRate returns the redraw cap, 0 if none.
func (w *Widget) MaxFrameRate() float64 {
	if !w.throttled || w.period <= 0 {
		return 0
	}
	return float64(time.Second) / float64(w.period)
}

// Tick is called by the host event loop with the current time. With a
// frame rate cap, once per period it thaws and refreezes all children,
// emitting a single Changed if anything changed since the last release.
// It returns whether a release happened.
func (w *Widget) Tick(now time.Time) bool {
	if !w.throttled {
		return false
	}
	if !w.lastTick.IsZero() && now.Sub(w.lastTick) < w.period {
		return false
	}
	w.lastTick = now
	w.ThawAll()
	w.FreezeAll()
	return true
}

// HandleEvent delivers a pointer event, with its position in the main
// area, to the main view.
func (w *Widget) HandleEvent(ev *events.Event) {
	if len(w.views) == 0 {
		return
	}
	if eh, ok := w.views[0].(EventHandler); ok {
		eh.HandleEvent(ev)
	}
}

// Layout is the placement of the parts of a rendered widget.
type Layout struct {
	Main, North, South, East, West, ColorBar, Legend image.Rectangle
}

// Layout returns the placement of the parts for a w x h image.
func (w *Widget) Layout(width, height int) Layout {
	var l Layout
	top := w.axes[North].Thickness()
	bottom := w.axes[South].Thickness()
	left := w.axes[West].Thickness()
	right := w.axes[East].Thickness()
	cbw := 0
	if w.colorbar != nil {
		cbw = Pad + w.colorbar.Width()
	}
	// not image.Rect, which would swap the corners of a too small image
	l.Main = image.Rectangle{Min: image.Pt(left, top), Max: image.Pt(width-right-cbw, height-bottom)}
	if l.Main.Empty() {
		l.Main = image.Rectangle{}
		return l
	}
	l.North = image.Rect(l.Main.Min.X, 0, l.Main.Max.X, top)
	l.South = image.Rect(l.Main.Min.X, l.Main.Max.Y, l.Main.Max.X, height)
	l.West = image.Rect(0, l.Main.Min.Y, left, l.Main.Max.Y)
	l.East = image.Rect(l.Main.Max.X, l.Main.Min.Y, l.Main.Max.X+right, l.Main.Max.Y)
	if w.colorbar != nil {
		l.ColorBar = image.Rect(l.East.Max.X+Pad, l.Main.Min.Y, width, l.Main.Max.Y)
	}
	if sz := w.legend.Size(); w.legend.Len() > 0 {
		lr := image.Rectangle{Max: sz}.Add(image.Pt(l.Main.Max.X-Pad-sz.X, l.Main.Min.Y+Pad))
		l.Legend = lr.Intersect(l.Main)
	}
	return l
}

// Render returns a w x h image of the whole plot.
func (w *Widget) Render(width, height int) *image.RGBA {
	cv := raster.New(width, height)
	cv.Rect(cv.Image.Bounds(), w.Background)
	l := w.Layout(width, height)
	if l.Main.Empty() {
		return cv.Image
	}
	msz := l.Main.Size()
	for _, v := range w.views {
		if vp, ok := v.(viewporter); ok {
			vp.SetViewport(msz.X, msz.Y)
		}
	}
	for _, v := range w.views {
		if r, ok := v.(Renderer); ok {
			raster.Compose(cv.Image, r.Render(msz.X, msz.Y), l.Main.Min)
		}
	}
	type part struct {
		r    image.Rectangle
		view Renderer
	}
	parts := []part{
		{l.North, w.axes[North]}, {l.South, w.axes[South]},
		{l.East, w.axes[East]}, {l.West, w.axes[West]},
		{l.Legend, w.legend},
	}
	if w.colorbar != nil {
		parts = append(parts, part{l.ColorBar, w.colorbar})
	}
	for _, p := range parts {
		if p.r.Empty() {
			continue
		}
		raster.Compose(cv.Image, p.view.Render(p.r.Dx(), p.r.Dy()), p.r.Min)
	}
	return cv.Image
}

// Close disconnects the widget from its views and releases the axes.
// The data views themselves are left to their owner.
func (w *Widget) Close() {
	w.SetMaxFrameRate(0)
	w.conns.Close()
	for _, av := range w.axes {
		av.Close()
	}
	if w.colorbar != nil {
		w.colorbar.Close()
	}
}

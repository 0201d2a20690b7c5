// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scatter provides a view that draws y against x vectors as a
// line, dots, or both.
package scatter

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/viewplot/cartesian"
	"cogentcore.org/viewplot/data"
	"cogentcore.org/viewplot/events"
	"cogentcore.org/viewplot/signal"
	"cogentcore.org/viewplot/views/gesture"
	"cogentcore.org/viewplot/views/raster"
)

// View is a scatter / line plot of a y vector against an x vector,
// or against the value index when there is no x vector.
type View struct {
	*cartesian.View

	x, y      data.Vector
	dataConns signal.Connections

	style Style

	gestures *gesture.Controller
}

// New returns a new view with X and Y view intervals and default style.
func New() *View {
	sv := &View{}
	sv.View = cartesian.New(sv)
	sv.Name = "scatter"
	sv.style.Defaults()
	sv.AddViewInterval(cartesian.X)
	sv.AddViewInterval(cartesian.Y)
	sv.gestures = gesture.New(sv.View)
	sv.gestures.Status = func(x, y float64) string {
		return fmt.Sprintf("x=%.4g y=%.4g", x, y)
	}
	return sv
}

// SetData binds the x and y vectors; x may be nil to plot y against
// its index. Either vector changing refits the axes and redraws.
func (sv *View) SetData(x, y data.Vector) *View {
	sv.dataConns.Close()
	sv.x, sv.y = x, y
	for _, v := range []data.Vector{x, y} {
		if v != nil {
			sv.dataConns.Connect(v.Changed(), sv.DataChanged)
		}
	}
	sv.DataChanged()
	return sv
}

// Data returns the bound vectors.
func (sv *View) Data() (x, y data.Vector) {
	return sv.x, sv.y
}

// Style returns a copy of the current style.
func (sv *View) Style() Style {
	return sv.style
}

// SetStyle sets the style and redraws.
func (sv *View) SetStyle(st Style) *View {
	sv.style = st
	sv.RequestChanged()
	return sv
}

// SetLabel sets the label.
func (sv *View) SetLabel(label string) *View {
	sv.style.Label = label
	sv.RequestChanged()
	return sv
}

// Label returns the label.
func (sv *View) Label() string {
	return sv.style.Label
}

// SetColor sets the line and dot color.
func (sv *View) SetColor(c color.RGBA) *View {
	sv.style.Color = c
	sv.RequestChanged()
	return sv
}

// Color returns the line and dot color.
func (sv *View) Color() color.RGBA {
	return sv.style.Color
}

// SetLineWidth sets the line width in pixels.
func (sv *View) SetLineWidth(w float32) *View {
	sv.style.Line.Width = w
	sv.RequestChanged()
	return sv
}

// SetShowLine sets whether the line is drawn.
func (sv *View) SetShowLine(show bool) *View {
	sv.style.Line.Show = show
	sv.RequestChanged()
	return sv
}

// SetDotSize sets the dot diameter in pixels.
func (sv *View) SetDotSize(size float32) *View {
	sv.style.Dots.Size = size
	sv.RequestChanged()
	return sv
}

// SetShowDots sets whether dots are drawn.
func (sv *View) SetShowDots(show bool) *View {
	sv.style.Dots.Show = show
	sv.RequestChanged()
	return sv
}

// Len returns the number of points.
func (sv *View) Len() int {
	if sv.y == nil {
		return 0
	}
	n := sv.y.Len()
	if sv.x != nil {
		n = min(n, sv.x.Len())
	}
	return n
}

// Point returns point i.
func (sv *View) Point(i int) (x, y float64) {
	y = sv.y.Float1D(i)
	if sv.x == nil {
		return float64(i), y
	}
	return sv.x.Float1D(i), y
}

// PreferredRange returns the x data range on X, and on Y the range of
// the y values whose x lies in the current X interval. A range of a
// single value is padded to a unit width.
func (sv *View) PreferredRange(axis cartesian.Axis) (a, b float64, ok bool) {
	n := sv.Len()
	if n == 0 {
		return 0, 0, false
	}
	var r minmax.F64
	r.SetInfinity()
	switch axis {
	case cartesian.X:
		for i := range n {
			x, y := sv.Point(i)
			if finite(x) && finite(y) {
				r.FitValInRange(x)
			}
		}
	case cartesian.Y:
		xi := sv.ViewInterval(cartesian.X)
		for i := range n {
			x, y := sv.Point(i)
			if !finite(x) || !finite(y) || (xi != nil && !xi.Contains(x)) {
				continue
			}
			r.FitValInRange(y)
		}
	default:
		return 0, 0, false
	}
	if !r.IsValid() {
		return 0, 0, false
	}
	if r.Min == r.Max {
		return r.Min - 0.5, r.Max + 0.5, true
	}
	return r.Min, r.Max, true
}

// Render returns a w x h image of the points in the current X and Y
// intervals.
func (sv *View) Render(w, h int) *image.RGBA {
	cv := raster.New(w, h)
	xi, yi := sv.ViewInterval(cartesian.X), sv.ViewInterval(cartesian.Y)
	n := sv.Len()
	if n == 0 || xi == nil || yi == nil {
		return cv.Image
	}
	fw, fh := float64(w), float64(h)
	pts := make([]math32.Vector2, n)
	for i := range n {
		x, y := sv.Point(i)
		if !finite(x) || !finite(y) {
			pts[i] = math32.Vec2(math32.NaN(), math32.NaN())
			continue
		}
		pts[i] = math32.Vec2(float32(xi.Conv(x)*fw), float32((1-yi.Conv(y))*fh))
	}
	st := &sv.style
	if st.Line.Show {
		cv.Polyline(pts, st.Line.Width, st.Color)
	}
	if st.Dots.Show {
		cv.Dots(pts, st.Dots.Size, st.Color)
	}
	return cv.Image
}

// HandleEvent processes a pointer event: scroll zoom, zoom and pan
// gestures, and status reporting.
func (sv *View) HandleEvent(ev *events.Event) {
	sv.gestures.HandleEvent(ev)
}

// Gestures returns the gesture controller.
func (sv *View) Gestures() *gesture.Controller {
	return sv.gestures
}

// Close unbinds the data and releases all axis slots.
func (sv *View) Close() {
	sv.dataConns.Close()
	sv.x, sv.y = nil, nil
	sv.View.Close()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

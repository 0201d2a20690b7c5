// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorbar provides a view showing a color lookup table across
// an interval, usually the Z interval of a density view shared on its
// Meta axis.
package colorbar

import (
	"image"
	"image/color"

	"cogentcore.org/viewplot/cartesian"
	"cogentcore.org/viewplot/colormap"
	"cogentcore.org/viewplot/markers"
	"cogentcore.org/viewplot/views/axisview"
	"cogentcore.org/viewplot/views/raster"
)

// BarWidth is the width of the color strip in pixels.
const BarWidth = 16

// View is a vertical color bar with ticks and labels on its right.
type View struct {
	*cartesian.View

	lut *colormap.LUT

	// Color is used for the ticks and labels.
	Color color.RGBA
}

// New returns a color bar with a Meta interval, scalar markers and the
// default color map.
func New() *View {
	cb := &View{lut: colormap.MustNamed(""), Color: color.RGBA{0, 0, 0, 255}}
	cb.View = cartesian.New(cb)
	cb.Name = "colorbar"
	cb.AddViewInterval(cartesian.Meta)
	cb.SetAxisMarkerType(cartesian.Meta, markers.Scalar)
	return cb
}

// SetLUT sets the color lookup table, normally the one of the density
// view whose Z interval is shown.
func (cb *View) SetLUT(lut *colormap.LUT) *View {
	if lut == nil {
		lut = colormap.Gray()
	}
	cb.lut = lut
	cb.RequestChanged()
	return cb
}

// LUT returns the color lookup table.
func (cb *View) LUT() *colormap.LUT {
	return cb.lut
}

// PreferredRange always reports no preference.
func (cb *View) PreferredRange(axis cartesian.Axis) (a, b float64, ok bool) {
	return 0, 0, false
}

// Width returns the width needed for the bar and its labels.
func (cb *View) Width() int {
	wd := 0
	for _, t := range cb.AxisMarkers(cartesian.Meta) {
		if t.Major {
			wd = max(wd, raster.TextWidth(t.Label))
		}
	}
	return BarWidth + axisview.MajorLen + 3 + wd
}

// Render returns a w x h image: the bar runs from the start of the
// interval at the bottom to its end at the top.
func (cb *View) Render(w, h int) *image.RGBA {
	cv := raster.New(w, h)
	bw := min(w, BarWidth)
	for py := range h {
		f := 1 - (float64(py)+0.5)/float64(h)
		cv.Rect(image.Rect(0, py, bw, py+1), cb.lut.Map(f))
	}
	if w > bw {
		r := image.Rect(bw, 0, w, h)
		axisview.DrawTicks(cv, r, axisview.East, cb.ViewInterval(cartesian.Meta), cb.AxisMarkers(cartesian.Meta), true, cb.Color)
	}
	return cv.Image
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axisview provides a view that draws the ticks and labels of
// an axis along one side of a plot. It has no data of its own: its
// Meta axis shares the interval and markers of another view's axis.
package axisview

import (
	"image"
	"image/color"
	"strconv"

	"cogentcore.org/core/math32"
	"cogentcore.org/viewplot/cartesian"
	"cogentcore.org/viewplot/interval"
	"cogentcore.org/viewplot/markers"
	"cogentcore.org/viewplot/views/raster"
)

// Sides are the sides of a plot an axis can be drawn on.
type Sides int32

const (
	North Sides = iota
	South
	East
	West
	SidesN
)

var sideNames = [...]string{"North", "South", "East", "West"}

func (sd Sides) String() string {
	if sd < 0 || sd >= SidesN {
		return "Sides(" + strconv.Itoa(int(sd)) + ")"
	}
	return sideNames[sd]
}

// Horizontal returns whether an axis on this side runs left to right.
func (sd Sides) Horizontal() bool {
	return sd == North || sd == South
}

const (
	// MajorLen and MinorLen are the tick lengths in pixels.
	MajorLen = 6
	MinorLen = 3

	// labelGap is the space between a tick and its label.
	labelGap = 2
)

// View is an axis strip.
type View struct {
	*cartesian.View

	side Sides

	// Color is used for the axis line, ticks and labels.
	Color color.RGBA

	// ShowLabels draws the labels of major ticks.
	ShowLabels bool
}

// New returns an axis view for the given side with a Meta interval and
// scalar markers.
func New(side Sides) *View {
	av := &View{side: side, Color: color.RGBA{0, 0, 0, 255}, ShowLabels: true}
	av.View = cartesian.New(av)
	av.Name = "axis " + side.String()
	av.AddViewInterval(cartesian.Meta)
	av.SetAxisMarkerType(cartesian.Meta, markers.Scalar)
	return av
}

// Side returns the side the axis is drawn on.
func (av *View) Side() Sides {
	return av.side
}

// PreferredRange always reports no preference: an axis shows
// whatever range its data view negotiates.
func (av *View) PreferredRange(axis cartesian.Axis) (a, b float64, ok bool) {
	return 0, 0, false
}

// Thickness returns the size in pixels across the axis needed to draw
// the ticks and labels: a height for North and South, a width otherwise.
func (av *View) Thickness() int {
	n := MajorLen + 1
	if !av.ShowLabels {
		return n
	}
	if av.side.Horizontal() {
		asc, desc := raster.TextHeight()
		return n + labelGap + asc + desc
	}
	wd := 0
	for _, t := range av.AxisMarkers(cartesian.Meta) {
		if t.Major {
			wd = max(wd, raster.TextWidth(t.Label))
		}
	}
	return n + labelGap + wd
}

// Render returns a w x h image of the axis.
func (av *View) Render(w, h int) *image.RGBA {
	cv := raster.New(w, h)
	DrawTicks(cv, cv.Image.Bounds(), av.side, av.ViewInterval(cartesian.Meta), av.AxisMarkers(cartesian.Meta), av.ShowLabels, av.Color)
	return cv.Image
}

// DrawTicks draws an axis line along the inner edge of r, the edge
// facing the plot, with the ticks of iv pointing away from the plot.
func DrawTicks(cv *raster.Canvas, r image.Rectangle, side Sides, iv *interval.Interval, ticks []markers.Tick, labels bool, c color.Color) {
	if iv == nil || r.Empty() {
		return
	}
	x0, y0 := float32(r.Min.X), float32(r.Min.Y)
	x1, y1 := float32(r.Max.X), float32(r.Max.Y)
	// inner edge position, centered on the edge pixel
	var edge float32
	switch side {
	case South:
		edge = y0 + 0.5
		cv.Line(math32.Vec2(x0, edge), math32.Vec2(x1, edge), 1, c)
	case North:
		edge = y1 - 0.5
		cv.Line(math32.Vec2(x0, edge), math32.Vec2(x1, edge), 1, c)
	case East:
		edge = x0 + 0.5
		cv.Line(math32.Vec2(edge, y0), math32.Vec2(edge, y1), 1, c)
	case West:
		edge = x1 - 0.5
		cv.Line(math32.Vec2(edge, y0), math32.Vec2(edge, y1), 1, c)
	}
	asc, desc := raster.TextHeight()
	for _, t := range ticks {
		f := iv.Conv(t.Position)
		if f < 0 || f > 1 {
			continue
		}
		ln := float32(MinorLen)
		if t.Major {
			ln = MajorLen
		}
		tw := raster.TextWidth(t.Label)
		showLabel := labels && t.Major && t.Label != ""
		if side.Horizontal() {
			px := x0 + float32(f)*(x1-x0)
			lx := clamp(int(px)-tw/2, r.Min.X, r.Max.X-tw)
			if side == South {
				cv.Line(math32.Vec2(px, edge), math32.Vec2(px, edge+ln), 1, c)
				if showLabel {
					cv.Text(lx, r.Min.Y+MajorLen+1+labelGap+asc, t.Label, c)
				}
			} else {
				cv.Line(math32.Vec2(px, edge), math32.Vec2(px, edge-ln), 1, c)
				if showLabel {
					cv.Text(lx, r.Max.Y-MajorLen-1-labelGap-desc, t.Label, c)
				}
			}
			continue
		}
		py := y1 - float32(f)*(y1-y0)
		ly := clamp(int(py)+asc/2, r.Min.Y+asc, r.Max.Y-desc)
		if side == East {
			cv.Line(math32.Vec2(edge, py), math32.Vec2(edge+ln, py), 1, c)
			if showLabel {
				cv.Text(r.Min.X+MajorLen+1+labelGap, ly, t.Label, c)
			}
		} else {
			cv.Line(math32.Vec2(edge, py), math32.Vec2(edge-ln, py), 1, c)
			if showLabel {
				cv.Text(r.Max.X-MajorLen-1-labelGap-tw, ly, t.Label, c)
			}
		}
	}
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster has the drawing primitives used by the views to render
// into an [image.RGBA]: anti-aliased lines, polylines and dots rasterized
// with x/image/vector, filled rectangles, and basic font text.
package raster

import (
	"image"
	"image/color"

	"cogentcore.org/core/math32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Face is the font face used for all labels.
var Face font.Face = basicfont.Face7x13

// dotSides is the number of polygon sides used to draw a dot.
const dotSides = 16

// Canvas draws onto an image, reusing one rasterizer.
type Canvas struct {
	Image *image.RGBA
	ras   *vector.Rasterizer
}

// New returns a canvas over a new transparent w x h image.
func New(w, h int) *Canvas {
	return NewOn(image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))))
}

// NewOn returns a canvas drawing onto img.
func NewOn(img *image.RGBA) *Canvas {
	sz := img.Bounds().Size()
	return &Canvas{Image: img, ras: vector.NewRasterizer(sz.X, sz.Y)}
}

// Size returns the image size.
func (cv *Canvas) Size() image.Point {
	return cv.Image.Bounds().Size()
}

func (cv *Canvas) reset() {
	sz := cv.Size()
	cv.ras.Reset(sz.X, sz.Y)
}

func (cv *Canvas) fill(c color.Color) {
	cv.ras.Draw(cv.Image, cv.Image.Bounds(), image.NewUniform(c), image.Point{})
}

// quad adds a closed four point polygon, always with the same winding
// so that overlapping polygons do not cancel.
func (cv *Canvas) quad(p [4]math32.Vector2) {
	area := float32(0)
	for i := range 4 {
		j := (i + 1) % 4
		area += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	if area < 0 {
		p[1], p[3] = p[3], p[1]
	}
	cv.ras.MoveTo(p[0].X, p[0].Y)
	for _, q := range p[1:] {
		cv.ras.LineTo(q.X, q.Y)
	}
	cv.ras.ClosePath()
}

// segment adds a line of the given width from a to b.
func (cv *Canvas) segment(a, b math32.Vector2, width float32) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	n := math32.Vec2(-d.Y, d.X).MulScalar(0.5 * width / l)
	cv.quad([4]math32.Vector2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

// Line draws a line of the given width between two points.
func (cv *Canvas) Line(a, b math32.Vector2, width float32, c color.Color) {
	cv.Polyline([]math32.Vector2{a, b}, width, c)
}

// Polyline draws connected line segments through the points. A point
// with a NaN coordinate breaks the line.
func (cv *Canvas) Polyline(pts []math32.Vector2, width float32, c color.Color) {
	if width <= 0 {
		return
	}
	cv.reset()
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if isNaN(a) || isNaN(b) {
			continue
		}
		cv.segment(a, b, width)
	}
	cv.fill(c)
}

// Dots draws a filled circle of the given diameter at each point,
// skipping points with a NaN coordinate.
func (cv *Canvas) Dots(pts []math32.Vector2, size float32, c color.Color) {
	if size <= 0 {
		return
	}
	cv.reset()
	r := 0.5 * size
	for _, p := range pts {
		if isNaN(p) {
			continue
		}
		for i := range dotSides {
			th := 2 * math32.Pi * float32(i) / dotSides
			x := p.X + r*math32.Cos(th)
			y := p.Y + r*math32.Sin(th)
			if i == 0 {
				cv.ras.MoveTo(x, y)
			} else {
				cv.ras.LineTo(x, y)
			}
		}
		cv.ras.ClosePath()
	}
	cv.fill(c)
}

// Rect fills a rectangle.
func (cv *Canvas) Rect(r image.Rectangle, c color.Color) {
	draw.Draw(cv.Image, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// Text draws s with its baseline starting at (x, y).
func (cv *Canvas) Text(x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  cv.Image,
		Src:  image.NewUniform(c),
		Face: Face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// TextWidth returns the width of s in pixels.
func TextWidth(s string) int {
	return font.MeasureString(Face, s).Ceil()
}

// TextHeight returns the ascent and descent of the label font.
func TextHeight() (ascent, descent int) {
	m := Face.Metrics()
	return m.Ascent.Ceil(), m.Descent.Ceil()
}

// Compose draws src onto dst with its top left corner at pt.
func Compose(dst *image.RGBA, src image.Image, pt image.Point) {
	r := image.Rectangle{Min: pt, Max: pt.Add(src.Bounds().Size())}
	draw.Draw(dst, r, src, src.Bounds().Min, draw.Over)
}

func isNaN(p math32.Vector2) bool {
	return math32.IsNaN(p.X) || math32.IsNaN(p.Y)
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package density provides a view that draws a matrix as a grid of
// colored cells, with the value of each cell mapped through the Z view
// interval onto a color lookup table.
package density

import (
	"fmt"
	"image"
	"math"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/viewplot/cartesian"
	"cogentcore.org/viewplot/colormap"
	"cogentcore.org/viewplot/data"
	"cogentcore.org/viewplot/events"
	"cogentcore.org/viewplot/signal"
	"cogentcore.org/viewplot/views/gesture"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// ErrGeometry is returned for a non-finite or zero-step geometry.
var ErrGeometry = errors.New("density: invalid geometry")

// View is a density plot of a bound matrix. Matrix column c spans
// [xmin + c*dx, xmin + (c+1)*dx] on X, and row r likewise on Y, with
// row 0 drawn at the bottom.
type View struct {
	*cartesian.View

	matrix    data.Matrix
	dataConns signal.Connections

	xmin, dx, ymin, dy float64

	symmetricZ     bool
	preserveAspect bool

	// viewport size in pixels, for preserving the aspect ratio.
	vpw, vph int

	lut *colormap.LUT

	// pixel cache, cols x rows, with the LUT index of each pixel.
	index      []int
	pixels     *image.RGBA
	rows, cols int
	stale      bool
	builtZ     [2]float64
	builtLUT   *colormap.LUT

	gestures *gesture.Controller
}

// New returns a new density view with X, Y and Z view intervals,
// unit cell geometry and the default color map.
func New() *View {
	dv := &View{dx: 1, dy: 1, stale: true}
	dv.View = cartesian.New(dv)
	dv.Name = "density"
	dv.lut = colormap.MustNamed("")
	for _, ax := range []cartesian.Axis{cartesian.X, cartesian.Y, cartesian.Z} {
		dv.AddViewInterval(ax)
	}
	dv.gestures = gesture.New(dv.View)
	dv.gestures.Status = dv.status
	return dv
}

// SetMatrix binds the matrix to draw, replacing any previous one.
// nil unbinds.
func (dv *View) SetMatrix(m data.Matrix) *View {
	dv.dataConns.Close()
	dv.matrix = m
	if m != nil {
		dv.dataConns.Connect(m.Changed(), dv.matrixChanged)
	}
	dv.matrixChanged()
	return dv
}

// Matrix returns the bound matrix.
func (dv *View) Matrix() data.Matrix {
	return dv.matrix
}

func (dv *View) matrixChanged() {
	dv.stale = true
	dv.DataChanged()
}

// SetGeometry sets the data coordinates of the matrix: column c starts
// at xmin + c*dx and row r at ymin + r*dy. A negative step flips the axis.
func (dv *View) SetGeometry(xmin, dx, ymin, dy float64) error {
	for _, v := range []float64{xmin, dx, ymin, dy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("density.SetGeometry(%g, %g, %g, %g): %w", xmin, dx, ymin, dy, ErrGeometry)
		}
	}
	if dx == 0 || dy == 0 {
		return fmt.Errorf("density.SetGeometry: zero step (%g, %g): %w", dx, dy, ErrGeometry)
	}
	dv.xmin, dv.dx, dv.ymin, dv.dy = xmin, dx, ymin, dy
	dv.DataChanged()
	return nil
}

// Geometry returns the parameters set by [View.SetGeometry].
func (dv *View) Geometry() (xmin, dx, ymin, dy float64) {
	return dv.xmin, dv.dx, dv.ymin, dv.dy
}

// SetSymmetricZ sets whether the preferred Z range is symmetric
// around zero.
func (dv *View) SetSymmetricZ(on bool) *View {
	dv.symmetricZ = on
	dv.DataChanged()
	return dv
}

// SymmetricZ returns whether the preferred Z range is symmetric.
func (dv *View) SymmetricZ() bool {
	return dv.symmetricZ
}

// SetPreserveAspect sets whether the preferred X and Y ranges are widened
// so that one data unit spans the same number of pixels on both axes.
func (dv *View) SetPreserveAspect(on bool) *View {
	dv.preserveAspect = on
	dv.DataChanged()
	return dv
}

// PreserveAspect returns whether the aspect ratio is preserved.
func (dv *View) PreserveAspect() bool {
	return dv.preserveAspect
}

// SetViewport sets the display size in pixels used to preserve the
// aspect ratio.
func (dv *View) SetViewport(w, h int) {
	if w == dv.vpw && h == dv.vph {
		return
	}
	dv.vpw, dv.vph = w, h
	if dv.preserveAspect {
		dv.DataChanged()
	}
}

// SetLUT sets the color lookup table.
func (dv *View) SetLUT(lut *colormap.LUT) *View {
	if lut == nil {
		lut = colormap.Gray()
	}
	dv.lut = lut
	dv.RequestChanged()
	return dv
}

// LUT returns the color lookup table.
func (dv *View) LUT() *colormap.LUT {
	return dv.lut
}

// shape returns the matrix shape, zero without a matrix.
func (dv *View) shape() (rows, cols int) {
	if dv.matrix == nil {
		return 0, 0
	}
	return dv.matrix.Rows(), dv.matrix.Cols()
}

// PreferredRange returns the extent of the matrix on X and Y, and the
// data range on Z. It reports no preference without data.
func (dv *View) PreferredRange(axis cartesian.Axis) (a, b float64, ok bool) {
	rows, cols := dv.shape()
	if rows == 0 || cols == 0 {
		return 0, 0, false
	}
	switch axis {
	case cartesian.X, cartesian.Y:
		x0, x1 := dv.xmin, dv.xmin+float64(cols)*dv.dx
		y0, y1 := dv.ymin, dv.ymin+float64(rows)*dv.dy
		if dv.preserveAspect {
			x0, x1, y0, y1 = dv.fitAspect(x0, x1, y0, y1)
		}
		if axis == cartesian.X {
			return x0, x1, true
		}
		return y0, y1, true
	case cartesian.Z:
		lo, hi, ok := dv.matrix.Range()
		if !ok {
			return 0, 0, false
		}
		if dv.symmetricZ {
			m := max(math.Abs(lo), math.Abs(hi))
			return -m, m, true
		}
		return lo, hi, true
	}
	return 0, 0, false
}

// fitAspect widens the X or Y extent, around its center, so that the data
// units per pixel are equal on both axes in the current viewport.
func (dv *View) fitAspect(x0, x1, y0, y1 float64) (float64, float64, float64, float64) {
	if dv.vpw <= 0 || dv.vph <= 0 {
		return x0, x1, y0, y1
	}
	ux := math.Abs(x1-x0) / float64(dv.vpw)
	uy := math.Abs(y1-y0) / float64(dv.vph)
	widen := func(a, b, w float64) (float64, float64) {
		c := 0.5 * (a + b)
		if b < a {
			w = -w
		}
		return c - 0.5*w, c + 0.5*w
	}
	if ux > uy {
		y0, y1 = widen(y0, y1, ux*float64(dv.vph))
	} else if uy > ux {
		x0, x1 = widen(x0, x1, uy*float64(dv.vpw))
	}
	return x0, x1, y0, y1
}

// ensure brings the pixel cache up to date with the matrix, the Z range
// and the color table, reallocating it when the matrix shape changed.
func (dv *View) ensure() {
	rows, cols := dv.shape()
	if rows != dv.rows || cols != dv.cols {
		dv.rows, dv.cols = rows, cols
		dv.index = make([]int, rows*cols)
		dv.pixels = nil
		if rows > 0 && cols > 0 {
			dv.pixels = image.NewRGBA(image.Rect(0, 0, cols, rows))
		}
		dv.stale = true
	}
	zi := dv.ViewInterval(cartesian.Z)
	var z [2]float64
	if zi != nil {
		z[0], z[1] = zi.Range()
	}
	if !dv.stale && z == dv.builtZ && dv.lut == dv.builtLUT {
		return
	}
	dv.stale = false
	dv.builtZ = z
	dv.builtLUT = dv.lut
	if dv.pixels == nil {
		return
	}
	for r := range rows {
		py := rows - 1 - r
		for c := range cols {
			f := math.NaN()
			if zi != nil {
				f = zi.Conv(dv.matrix.At(r, c))
			}
			idx := dv.lut.Index(f)
			dv.index[py*cols+c] = idx
			dv.pixels.SetRGBA(c, py, dv.lut.At(idx))
		}
	}
}

// IndexAt returns the color table index of the cache pixel at (x, y),
// where y = 0 is the top row of the image (the last matrix row).
// It returns [colormap.NoData] outside the matrix.
func (dv *View) IndexAt(x, y int) int {
	dv.ensure()
	if x < 0 || y < 0 || x >= dv.cols || y >= dv.rows {
		return colormap.NoData
	}
	return dv.index[y*dv.cols+x]
}

// Pixels returns the pixel cache, one pixel per matrix cell, or nil
// without data.
func (dv *View) Pixels() *image.RGBA {
	dv.ensure()
	return dv.pixels
}

// ValueAt returns the matrix value of the cell containing the data
// point (x, y), or NaN outside the matrix.
func (dv *View) ValueAt(x, y float64) float64 {
	rows, cols := dv.shape()
	c := int(math.Floor((x - dv.xmin) / dv.dx))
	r := int(math.Floor((y - dv.ymin) / dv.dy))
	if c < 0 || r < 0 || c >= cols || r >= rows {
		return math.NaN()
	}
	return dv.matrix.At(r, c)
}

// Render returns a w x h image of the cells visible in the current X and
// Y intervals. Without data, or with a zero-width X or Y interval, the
// image is blank.
func (dv *View) Render(w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	dv.ensure()
	xi, yi := dv.ViewInterval(cartesian.X), dv.ViewInterval(cartesian.Y)
	if dv.pixels == nil || xi == nil || yi == nil || xi.IsDegenerate() || yi.IsDegenerate() || w <= 0 || h <= 0 {
		return dst
	}
	// source pixel (sx, sy) is at data x = xmin + sx*dx,
	// y = ymin + (rows - sy)*dy.
	fw, fh := float64(w), float64(h)
	tx, ty := xi.Width(), yi.Width()
	x0, _ := xi.Range()
	y0, _ := yi.Range()
	s2d := f64.Aff3{
		dv.dx * fw / tx, 0, (dv.xmin - x0) * fw / tx,
		0, dv.dy * fh / ty, fh - (dv.ymin+float64(dv.rows)*dv.dy-y0)*fh/ty,
	}
	draw.NearestNeighbor.Transform(dst, s2d, dv.pixels, dv.pixels.Bounds(), draw.Over, nil)
	return dst
}

// HandleEvent processes a pointer event: zoom and pan gestures, scroll
// zoom, shift-click recentering, and status reporting.
func (dv *View) HandleEvent(ev *events.Event) {
	dv.gestures.HandleEvent(ev)
}

// Gestures returns the gesture controller.
func (dv *View) Gestures() *gesture.Controller {
	return dv.gestures
}

func (dv *View) status(x, y float64) string {
	return fmt.Sprintf("x=%.4g y=%.4g z=%.4g", x, y, dv.ValueAt(x, y))
}

// Close unbinds the matrix and releases all axis slots.
func (dv *View) Close() {
	dv.dataConns.Close()
	dv.matrix = nil
	dv.View.Close()
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"image/color"
)

// Style contains the styling properties of a scatter / line view.
type Style struct {

	// Label is the name shown for this data, for example in a legend.
	Label string

	// Color is used for both the line and the dots.
	Color color.RGBA

	// Line has style properties for drawing lines.
	Line LineStyle

	// Dots has style properties for drawing points.
	Dots DotStyle
}

// NewStyle returns a new Style with defaults applied.
func NewStyle() *Style {
	st := &Style{}
	st.Defaults()
	return st
}

func (st *Style) Defaults() {
	st.Color = color.RGBA{0, 0, 0, 255}
	st.Line.Defaults()
	st.Dots.Defaults()
}

// LineStyle has style properties for line drawing.
type LineStyle struct {

	// Show draws the line connecting the points.
	Show bool

	// Width of the line in pixels.
	Width float32
}

func (ls *LineStyle) Defaults() {
	ls.Show = true
	ls.Width = 1
}

// DotStyle has style properties for drawing points.
type DotStyle struct {

	// Show draws a dot at each point.
	Show bool

	// Size is the diameter of the dots in pixels.
	Size float32
}

func (ds *DotStyle) Defaults() {
	ds.Show = false
	ds.Size = 4
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package legend provides a view listing labelled color swatches.
package legend

import (
	"image"
	"image/color"
	"slices"

	"cogentcore.org/viewplot/element"
	"cogentcore.org/viewplot/views/raster"
)

const (
	// Swatch is the size of a color swatch in pixels.
	Swatch = 10

	// Pad is the space around and between entries.
	Pad = 4
)

// Entry is one legend entry.
type Entry struct {
	Label string
	Color color.RGBA
}

// View is a legend. It has no axes.
type View struct {
	element.View

	entries []Entry

	// TextColor is used for the labels.
	TextColor color.RGBA

	// Background fills the legend box; transparent by default.
	Background color.RGBA
}

// New returns an empty legend.
func New() *View {
	return &View{View: element.View{Name: "legend"}, TextColor: color.RGBA{0, 0, 0, 255}}
}

// Add appends an entry, or updates the color of an existing entry
// with the same label.
func (lv *View) Add(label string, c color.RGBA) *View {
	if i := lv.find(label); i >= 0 {
		if lv.entries[i].Color == c {
			return lv
		}
		lv.entries[i].Color = c
	} else {
		lv.entries = append(lv.entries, Entry{Label: label, Color: c})
	}
	lv.RequestChanged()
	return lv
}

// Remove removes the entry with the given label, returning false if
// there is none.
func (lv *View) Remove(label string) bool {
	i := lv.find(label)
	if i < 0 {
		return false
	}
	lv.entries = slices.Delete(lv.entries, i, i+1)
	lv.RequestChanged()
	return true
}

// Entries returns the entries in order.
func (lv *View) Entries() []Entry {
	return lv.entries
}

// Len returns the number of entries.
func (lv *View) Len() int {
	return len(lv.entries)
}

func (lv *View) find(label string) int {
	return slices.IndexFunc(lv.entries, func(e Entry) bool { return e.Label == label })
}

func rowHeight() int {
	asc, desc := raster.TextHeight()
	return max(Swatch, asc+desc)
}

// Size returns the size needed to draw all entries.
func (lv *View) Size() image.Point {
	if len(lv.entries) == 0 {
		return image.Point{}
	}
	wd := 0
	for _, e := range lv.entries {
		wd = max(wd, raster.TextWidth(e.Label))
	}
	n := len(lv.entries)
	return image.Pt(Pad+Swatch+Pad+wd+Pad, Pad+n*rowHeight()+(n-1)*Pad+Pad)
}

// Render returns a w x h image with the entries from the top left.
func (lv *View) Render(w, h int) *image.RGBA {
	cv := raster.New(w, h)
	if lv.Background.A > 0 {
		cv.Rect(cv.Image.Bounds(), lv.Background)
	}
	asc, _ := raster.TextHeight()
	rh := rowHeight()
	y := Pad
	for _, e := range lv.entries {
		sy := y + (rh-Swatch)/2
		cv.Rect(image.Rect(Pad, sy, Pad+Swatch, sy+Swatch), e.Color)
		cv.Text(Pad+Swatch+Pad, y+(rh+asc)/2-1, e.Label, lv.TextColor)
		y += rh + Pad
	}
	return cv.Image
}

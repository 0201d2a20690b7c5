// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides [LUT], a 256 entry color lookup table used to
// map normalized values onto colors, built from a named Cogent Core color
// map or from a list of color stops.
package colormap

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"cogentcore.org/core/base/errors"
	ccmap "cogentcore.org/core/colors/colormap"
	"github.com/lucasb-eyer/go-colorful"
)

// Size is the number of entries in a [LUT].
const Size = 256

// NoData is the index returned by [LUT.Index] for a missing value.
const NoData = -1

// DefaultName is the named map used when none is given.
const DefaultName = "ColdHot"

// ErrUnknownMap is returned by [Named] for a name that is not available.
var ErrUnknownMap = errors.New("colormap: unknown color map")

// ErrStops is returned by [FromStops] without at least two stops.
var ErrStops = errors.New("colormap: at least two stops required")

// LUT is a color lookup table.
type LUT struct {
	// Name is the name of the source map, if any.
	Name string

	// Colors are the table entries.
	Colors [Size]color.RGBA

	// NoData is the color used for missing (NaN) values.
	NoData color.RGBA
}

// Stop is one color stop for [FromStops], at a position in [0,1].
type Stop struct {
	Pos   float64
	Color color.Color
}

// Named returns a table sampled from the Cogent Core color map with the
// given name. An empty name uses [DefaultName].
func Named(name string) (*LUT, error) {
	if name == "" {
		name = DefaultName
	}
	cm, ok := ccmap.AvailableMaps[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownMap)
	}
	lut := &LUT{Name: name}
	for i := range Size {
		lut.Colors[i] = cm.Map(float32(i) / (Size - 1))
	}
	return lut, nil
}

// MustNamed is like [Named], logging the error and returning [Gray]
// for an unknown name.
func MustNamed(name string) *LUT {
	lut, err := Named(name)
	if errors.Log(err) != nil {
		return Gray()
	}
	return lut
}

// Available returns the sorted names accepted by [Named].
func Available() []string {
	names := make([]string, 0, len(ccmap.AvailableMaps))
	for nm := range ccmap.AvailableMaps {
		names = append(names, nm)
	}
	sort.Strings(names)
	return names
}

// FromStops returns a table interpolating between the given stops in
// Lab space. Stops are sorted by position; values outside the first and
// last stop take their colors.
func FromStops(stops ...Stop) (*LUT, error) {
	if len(stops) < 2 {
		return nil, ErrStops
	}
	st := make([]Stop, len(stops))
	copy(st, stops)
	sort.SliceStable(st, func(i, j int) bool { return st[i].Pos < st[j].Pos })
	cs := make([]colorful.Color, len(st))
	for i, s := range st {
		cs[i], _ = colorful.MakeColor(s.Color)
	}
	lut := &LUT{}
	j := 0
	for i := range Size {
		p := float64(i) / (Size - 1)
		for j < len(st)-2 && p > st[j+1].Pos {
			j++
		}
		var c colorful.Color
		switch {
		case p <= st[0].Pos:
			c = cs[0]
		case p >= st[len(st)-1].Pos:
			c = cs[len(cs)-1]
		default:
			w := st[j+1].Pos - st[j].Pos
			t := 0.0
			if w > 0 {
				t = (p - st[j].Pos) / w
			}
			c = cs[j].BlendLab(cs[j+1], t).Clamped()
		}
		r, g, b := c.RGB255()
		lut.Colors[i] = color.RGBA{r, g, b, 0xff}
	}
	return lut, nil
}

// Gray returns a black to white table.
func Gray() *LUT {
	lut := &LUT{Name: "Gray"}
	for i := range Size {
		lut.Colors[i] = color.RGBA{uint8(i), uint8(i), uint8(i), 0xff}
	}
	return lut
}

// Index returns the table index for a normalized value: NaN gives
// [NoData], values below 0 and at or above 1 are clamped.
func (lut *LUT) Index(f float64) int {
	switch {
	case math.IsNaN(f):
		return NoData
	case f < 0:
		return 0
	case f >= 1:
		return Size - 1
	}
	return int(math.Round(f * (Size - 1)))
}

// At returns the color at the given index, with [NoData] (or any
// out of range index) giving the no-data color.
func (lut *LUT) At(i int) color.RGBA {
	if i < 0 || i >= Size {
		return lut.NoData
	}
	return lut.Colors[i]
}

// Map returns the color for a normalized value.
func (lut *LUT) Map(f float64) color.RGBA {
	return lut.At(lut.Index(f))
}

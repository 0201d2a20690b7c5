// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markers computes axis tick marks and labels ([Markers]) from
// an axis range and a marker [Type] policy.
package markers

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/viewplot/signal"
)

// ErrUnknownType is returned when parsing an unknown marker type name.
var ErrUnknownType = errors.New("markers: unknown marker type")

// Type is the tick policy for an axis.
type Type int32

const (
	// None produces no ticks.
	None Type = iota

	// Scalar produces "nice" linear ticks.
	Scalar

	// Integer produces linear ticks at integer positions only.
	Integer

	// Date interprets positions as Unix seconds and
	// produces calendar aligned ticks.
	Date

	TypesN
)

var typeNames = [...]string{"None", "Scalar", "Integer", "Date"}

func (tp Type) String() string {
	if tp < 0 || tp >= TypesN {
		return "Type(" + strconv.Itoa(int(tp)) + ")"
	}
	return typeNames[tp]
}

// ParseType returns the type with the given name, ignoring case.
func ParseType(s string) (Type, error) {
	for i, nm := range typeNames {
		if strings.EqualFold(nm, s) {
			return Type(i), nil
		}
	}
	return None, fmt.Errorf("%q: %w", s, ErrUnknownType)
}

// Tick is one axis tick mark.
type Tick struct {
	// Position is the value on the axis.
	Position float64

	// Label is the text shown for major ticks, empty for minor ones.
	Label string

	// Major is true for labelled ticks.
	Major bool
}

// DefaultWant is the default target number of major ticks.
const DefaultWant = 5

// Markers is the set of ticks for one axis. It is recomputed only when
// its owner calls [Markers.PopulateGeneric].
type Markers struct {
	typ   Type
	ticks []Tick
	want  int

	holders int
	changed signal.Signal
}

// New returns empty markers of type None.
func New() *Markers {
	return &Markers{want: DefaultWant}
}

// Changed is emitted when a populate call changes the ticks.
func (mk *Markers) Changed() *signal.Signal {
	return &mk.changed
}

// Type returns the type used by the last populate call.
func (mk *Markers) Type() Type {
	return mk.typ
}

// Want returns the target number of major ticks.
func (mk *Markers) Want() int {
	return mk.want
}

// SetWant sets the target number of major ticks (at least 2).
// It takes effect at the next populate call.
func (mk *Markers) SetWant(n int) {
	mk.want = max(n, 2)
}

// Ticks returns the ticks in construction order, which is
// not necessarily sorted. See [Markers.Sort].
func (mk *Markers) Ticks() []Tick {
	return mk.ticks
}

// Sort sorts the ticks by ascending position and returns them.
func (mk *Markers) Sort() []Tick {
	slices.SortStableFunc(mk.ticks, func(a, b Tick) int {
		switch {
		case a.Position < b.Position:
			return -1
		case a.Position > b.Position:
			return 1
		}
		return 0
	})
	return mk.ticks
}

// Majors returns the labelled ticks, sorted.
func (mk *Markers) Majors() []Tick {
	var mj []Tick
	for _, t := range mk.Sort() {
		if t.Major {
			mj = append(mj, t)
		}
	}
	return mj
}

// PopulateGeneric replaces the ticks with a set appropriate for the given
// type covering the range lo..hi, which may be given in either order.
// Changed is emitted only if the type or the ticks differ from before.
func (mk *Markers) PopulateGeneric(typ Type, lo, hi float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	var ticks []Tick
	switch {
	case typ == None:
	case math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0):
	case lo == hi:
		ticks = []Tick{{Position: lo, Label: formatValue(lo, 0), Major: true}}
		if typ == Date {
			ticks[0].Label = formatDate(lo, dateSteps[0].layout)
		}
	case typ == Scalar:
		ticks = scalarTicks(lo, hi, mk.want)
	case typ == Integer:
		ticks = integerTicks(lo, hi, mk.want)
	case typ == Date:
		ticks = dateTicks(lo, hi, mk.want)
	}
	if typ == mk.typ && slices.Equal(ticks, mk.ticks) {
		return
	}
	mk.typ = typ
	mk.ticks = ticks
	mk.changed.Emit()
}

// Ref registers one more holder of the markers.
func (mk *Markers) Ref() {
	mk.holders++
}

// Unref releases one holder, disconnecting all receivers of Changed
// when the last one is released. It returns the remaining holders.
func (mk *Markers) Unref() int {
	if mk.holders == 0 {
		return 0
	}
	mk.holders--
	if mk.holders == 0 {
		mk.changed.DisconnectAll()
	}
	return mk.holders
}

// scalarTicks returns the major ticks of a [Nice] labelling within
// the range, followed by four minor ticks per major interval.
func scalarTicks(lo, hi float64, want int) []Tick {
	lb := Nice(lo, hi, want)
	if lb.Step <= 0 {
		return []Tick{{Position: lo, Label: formatValue(lo, 0), Major: true}}
	}
	tol := lb.Step * 1e-9
	prec := precision(lb.Step)
	var ticks []Tick
	for _, v := range lb.Values {
		if v < lo-tol || v > hi+tol {
			continue
		}
		v = snap(v, lb.Step)
		ticks = append(ticks, Tick{Position: v, Label: formatValue(v, prec), Major: true})
	}
	minor := lb.Step / 5
	first := math.Ceil((lo-tol)/minor) * minor
	for i := 0; i < 10*max(want, 2)*5; i++ {
		v := first + float64(i)*minor
		if v > hi+tol {
			break
		}
		if onGrid(v, lb.Step) {
			continue
		}
		ticks = append(ticks, Tick{Position: snap(v, minor)})
	}
	return ticks
}

// integerTicks is like scalarTicks with integer steps and positions.
func integerTicks(lo, hi float64, want int) []Tick {
	step := 1.0
	if hi-lo >= float64(want) {
		step = math.Max(1, math.Ceil(Nice(lo, hi, want).Step))
	}
	var ticks []Tick
	limit := 10 * max(want, 2)
	first := math.Ceil(lo/step) * step
	for i := 0; i < limit; i++ {
		v := first + float64(i)*step
		if v > hi {
			break
		}
		ticks = append(ticks, Tick{Position: v, Label: formatValue(v, 0), Major: true})
	}
	if step > 1 && step <= 10 {
		first = math.Ceil(lo)
		for i := 0; i < limit*10; i++ {
			v := first + float64(i)
			if v > hi {
				break
			}
			if !onGrid(v, step) {
				ticks = append(ticks, Tick{Position: v})
			}
		}
	}
	return ticks
}

// onGrid returns whether v is a multiple of step, within tolerance.
func onGrid(v, step float64) bool {
	r := v / step
	return math.Abs(r-math.Round(r)) < 1e-6
}

// snap rounds v to the nearest multiple of step,
// removing accumulated floating point error (and -0).
func snap(v, step float64) float64 {
	s := math.Round(v/step) * step
	if s == 0 {
		return 0
	}
	return s
}

// precision returns the number of decimal places needed to
// show multiples of step exactly.
func precision(step float64) int {
	step = math.Abs(step)
	for p := 0; p < 16; p++ {
		s := step * math.Pow10(p)
		if math.Abs(s-math.Round(s)) < 1e-6*s {
			return p
		}
	}
	return 16
}

// formatValue formats a tick value with the given number of decimals,
// switching to exponent notation for very large or small magnitudes.
func formatValue(v float64, prec int) string {
	if v == 0 {
		return "0"
	}
	if av := math.Abs(v); av >= 1e7 || av < 1e-5 || prec > 6 {
		return strconv.FormatFloat(v, 'g', 6, 64)
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

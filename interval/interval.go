// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interval provides [Interval], the mutable numeric axis range
// shared between views. It supports pan / zoom primitives, conversion
// to and from a normalized [0,1] axis fraction, and "preferred range"
// negotiation, where the views showing data on the axis are asked which
// range would best display it.
package interval

import (
	"fmt"
	"math"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/viewplot/signal"
)

var (
	ErrNonFinite = errors.New("interval: bound is NaN or infinite")
	ErrBadFactor = errors.New("interval: scale factor must be finite and > 0")
)

// Interval is a range [t0, t1] on one axis. The bounds may be in either
// order: t1 < t0 displays the axis flipped. Every mutation that actually
// changes the range emits [Interval.Changed] synchronously.
type Interval struct {
	t0, t1 float64

	// ignorePreferred marks the range as manually positioned.
	ignorePreferred bool

	// negotiating is the depth of RequestPreferredRange calls,
	// during which GrowTo accumulates into pending.
	negotiating int
	pending     minmax.F64

	// ascending and descending record the order of the
	// non-degenerate ranges offered during a negotiation.
	ascending, descending bool

	holders int

	// emitting is the depth of changed emissions in progress.
	emitting int

	changed signal.Signal
	request signal.Signal
}

// New returns a new interval covering [0, 1].
func New() *Interval {
	return &Interval{t0: 0, t1: 1}
}

// Changed is emitted after every change of the range.
func (iv *Interval) Changed() *signal.Signal {
	return &iv.changed
}

// PreferredRangeRequest is emitted by [Interval.RequestPreferredRange].
// Receivers respond by calling [Interval.GrowTo] with the range they
// would like the axis to show.
func (iv *Interval) PreferredRangeRequest() *signal.Signal {
	return &iv.request
}

// Range returns the current bounds, in their stored order.
func (iv *Interval) Range() (t0, t1 float64) {
	return iv.t0, iv.t1
}

// Lo returns the smaller bound.
func (iv *Interval) Lo() float64 {
	return min(iv.t0, iv.t1)
}

// Hi returns the larger bound.
func (iv *Interval) Hi() float64 {
	return max(iv.t0, iv.t1)
}

// Width returns t1 - t0, which is negative for a flipped axis.
func (iv *Interval) Width() float64 {
	return iv.t1 - iv.t0
}

// IsDegenerate returns true for a zero-width interval.
func (iv *Interval) IsDegenerate() bool {
	return iv.t0 == iv.t1
}

// Contains returns whether x lies within the interval, inclusive.
func (iv *Interval) Contains(x float64) bool {
	return x >= iv.Lo() && x <= iv.Hi()
}

func (iv *Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.t0, iv.t1)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// set stores the bounds and emits changed if they differ.
func (iv *Interval) set(a, b float64) {
	if a == iv.t0 && b == iv.t1 {
		return
	}
	iv.t0, iv.t1 = a, b
	iv.emitting++
	iv.changed.Emit()
	iv.emitting--
}

// Emitting returns whether [Interval.Changed] is being emitted.
func (iv *Interval) Emitting() bool {
	return iv.emitting > 0
}

// Set sets the range to [a, b], preserving the order of a and b.
// It does nothing if the range is already [a, b].
func (iv *Interval) Set(a, b float64) error {
	if !finite(a, b) {
		return fmt.Errorf("Interval.Set(%g, %g): %w", a, b, ErrNonFinite)
	}
	iv.set(a, b)
	return nil
}

// Translate shifts both bounds by delta.
func (iv *Interval) Translate(delta float64) error {
	if !finite(delta) {
		return fmt.Errorf("Interval.Translate(%g): %w", delta, ErrNonFinite)
	}
	iv.set(iv.t0+delta, iv.t1+delta)
	return nil
}

// RescaleAroundPoint scales the width of the interval by factor, keeping
// x at the same axis fraction. factor < 1 zooms in, factor > 1 zooms out.
func (iv *Interval) RescaleAroundPoint(x, factor float64) error {
	if !finite(x) {
		return fmt.Errorf("Interval.RescaleAroundPoint(%g): %w", x, ErrNonFinite)
	}
	if !finite(factor) || factor <= 0 {
		return fmt.Errorf("Interval.RescaleAroundPoint factor %g: %w", factor, ErrBadFactor)
	}
	iv.set(x+(iv.t0-x)*factor, x+(iv.t1-x)*factor)
	return nil
}

// RecenterAroundPoint translates the interval so that x is its midpoint.
func (iv *Interval) RecenterAroundPoint(x float64) error {
	if !finite(x) {
		return fmt.Errorf("Interval.RecenterAroundPoint(%g): %w", x, ErrNonFinite)
	}
	half := 0.5 * (iv.t1 - iv.t0)
	iv.set(x-half, x+half)
	return nil
}

// GrowTo expands the interval to the union of its range and
// [min(a,b), max(a,b)]. It never shrinks the interval and keeps its
// orientation. During a preferred range negotiation the union is
// accumulated into the negotiated range instead; see
// [Interval.RequestPreferredRange].
func (iv *Interval) GrowTo(a, b float64) error {
	if !finite(a, b) {
		return fmt.Errorf("Interval.GrowTo(%g, %g): %w", a, b, ErrNonFinite)
	}
	if iv.negotiating > 0 {
		iv.pending.FitValInRange(a)
		iv.pending.FitValInRange(b)
		switch {
		case a < b:
			iv.ascending = true
		case a > b:
			iv.descending = true
		}
		return nil
	}
	lo := min(iv.Lo(), a, b)
	hi := max(iv.Hi(), a, b)
	if iv.t1 < iv.t0 {
		iv.set(hi, lo)
	} else {
		iv.set(lo, hi)
	}
	return nil
}

// RequestPreferredRange asks every receiver of
// [Interval.PreferredRangeRequest] for the range it prefers.
// The signal is always emitted; receivers decide whether to respond,
// typically checking [Interval.IgnorePreferredRange]. The union of all
// responses then replaces the range, so several views sharing the axis
// each get their data in view. When all non-degenerate responses agree
// on an order the result takes it; mixed or only degenerate responses
// keep the current orientation.
// Without any response the range is left unchanged.
func (iv *Interval) RequestPreferredRange() {
	if iv.negotiating == 0 {
		iv.pending.SetInfinity()
		iv.ascending, iv.descending = false, false
	}
	iv.negotiating++
	iv.request.Emit()
	iv.negotiating--
	if iv.negotiating > 0 || !iv.pending.IsValid() {
		return
	}
	lo, hi := iv.pending.Min, iv.pending.Max
	iv.pending.SetInfinity()
	flip := iv.t1 < iv.t0
	switch {
	case iv.descending && !iv.ascending:
		flip = true
	case iv.ascending && !iv.descending:
		flip = false
	}
	if flip {
		lo, hi = hi, lo
	}
	iv.set(lo, hi)
}

// Negotiating returns whether a preferred range request is in progress.
func (iv *Interval) Negotiating() bool {
	return iv.negotiating > 0
}

// SetIgnorePreferredRange marks the interval as manually positioned
// (panned or zoomed by the user), so that automatic fitting to new data
// must not override it.
func (iv *Interval) SetIgnorePreferredRange(ignore bool) {
	iv.ignorePreferred = ignore
}

// IgnorePreferredRange returns whether the interval is manually positioned.
func (iv *Interval) IgnorePreferredRange() bool {
	return iv.ignorePreferred
}

// Conv converts a value to its fraction along the axis: t0 maps to 0 and
// t1 to 1. For a zero-width interval it returns 0 below the bound, 1
// above it and 0.5 at it. A NaN value returns NaN.
func (iv *Interval) Conv(x float64) float64 {
	w := iv.t1 - iv.t0
	if w == 0 {
		switch {
		case math.IsNaN(x):
			return math.NaN()
		case x < iv.t0:
			return 0
		case x > iv.t0:
			return 1
		}
		return 0.5
	}
	return (x - iv.t0) / w
}

// Unconv converts an axis fraction back to a value, the inverse of
// [Interval.Conv]. A zero-width interval returns t0.
func (iv *Interval) Unconv(f float64) float64 {
	w := iv.t1 - iv.t0
	if w == 0 {
		return iv.t0
	}
	return iv.t0 + f*w
}

// Ref registers one more holder of the interval.
func (iv *Interval) Ref() {
	iv.holders++
}

// Unref releases one holder. When the last holder is released, every
// remaining receiver of both signals is disconnected. It returns the
// number of remaining holders.
func (iv *Interval) Unref() int {
	if iv.holders == 0 {
		return 0
	}
	iv.holders--
	if iv.holders == 0 {
		iv.changed.DisconnectAll()
		iv.request.DisconnectAll()
	}
	return iv.holders
}

// Holders returns the number of registered holders.
func (iv *Interval) Holders() int {
	return iv.holders
}

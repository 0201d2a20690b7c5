// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"math"

	"cogentcore.org/viewplot/signal"
)

// Value is a settable [Scalar].
type Value struct {
	value   float64
	changed signal.Signal
}

// NewValue returns a new scalar with the given value.
func NewValue(v float64) *Value {
	return &Value{value: v}
}

func (vl *Value) Value() float64          { return vl.value }
func (vl *Value) Changed() *signal.Signal { return &vl.changed }

// Set sets the value, emitting changed only if it differs.
// NaN is considered equal to NaN.
func (vl *Value) Set(v float64) {
	if v == vl.value || (math.IsNaN(v) && math.IsNaN(vl.value)) {
		return
	}
	vl.value = v
	vl.changed.Emit()
}

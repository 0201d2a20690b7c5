// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"slices"
	"strconv"

	"cogentcore.org/viewplot/signal"
)

// Floats is a settable [Vector] of float64 values.
type Floats struct {
	values  []float64
	changed signal.Signal
}

// NewFloats returns a new vector holding a copy of the given values.
func NewFloats(vals ...float64) *Floats {
	return &Floats{values: slices.Clone(vals)}
}

func (fl *Floats) Len() int                { return len(fl.values) }
func (fl *Floats) Float1D(i int) float64   { return fl.values[i] }
func (fl *Floats) Values() []float64       { return fl.values }
func (fl *Floats) Changed() *signal.Signal { return &fl.changed }

func (fl *Floats) String1D(i int) string {
	return strconv.FormatFloat(fl.values[i], 'g', -1, 64)
}

func (fl *Floats) Range() (min, max float64, ok bool) {
	return sliceRange(fl.values)
}

// SetValues replaces all of the values with a copy of vals.
func (fl *Floats) SetValues(vals []float64) {
	fl.values = slices.Clone(vals)
	fl.changed.Emit()
}

// SetAt sets the value at index i.
func (fl *Floats) SetAt(i int, v float64) error {
	if i < 0 || i >= len(fl.values) {
		return fmt.Errorf("Floats.SetAt %d of %d: %w", i, len(fl.values), ErrIndex)
	}
	fl.values[i] = v
	fl.changed.Emit()
	return nil
}

// Append adds values to the end.
func (fl *Floats) Append(vals ...float64) {
	if len(vals) == 0 {
		return
	}
	fl.values = append(fl.values, vals...)
	fl.changed.Emit()
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package data provides the observable data cells that views bind to:
// vectors, matrices and scalars that emit a "changed" signal whenever
// their values change, plus ring buffers and generated axis vectors.
//
// Consumers never mutate a cell they are bound to; they read the current
// values and shape in response to the changed signal.
package data

import (
	"math"
	"strconv"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/viewplot/signal"
)

var (
	ErrInfinity = errors.New("data: infinite data point")
	ErrNoData   = errors.New("data: no data points")
	ErrShape    = errors.New("data: values do not match shape")
	ErrIndex    = errors.New("data: index out of range")
)

// Valuer is the basic read interface for a sequence of values,
// supporting either float64 or string representations.
type Valuer interface {
	// Len returns the number of values.
	Len() int

	// Float1D(i int) returns float64 value at given index.
	Float1D(i int) float64

	// String1D(i int) returns string value at given index.
	String1D(i int) string
}

// Vector is an observable one dimensional data cell.
type Vector interface {
	Valuer

	// Values returns the cached flat value buffer.
	// It must be treated as read-only and is only valid
	// until the next change.
	Values() []float64

	// Range returns the min and max of the finite values.
	Range() (min, max float64, ok bool)

	// Changed is emitted after every change in values or length.
	Changed() *signal.Signal
}

// Matrix is an observable two dimensional data cell, in row-major order.
type Matrix interface {
	Rows() int
	Cols() int
	At(row, col int) float64

	// Values returns the cached row-major value buffer (read-only).
	Values() []float64

	// Range returns the min and max of the finite values.
	Range() (min, max float64, ok bool)

	// Changed is emitted after every change in values or shape.
	Changed() *signal.Signal
}

// Scalar is an observable single value.
type Scalar interface {
	Value() float64
	Changed() *signal.Signal
}

// CheckFloats returns an error if any of the arguments are Infinity.
// or if there are no non-NaN data points available.
func CheckFloats(fs ...float64) error {
	n := 0
	for _, f := range fs {
		switch {
		case math.IsNaN(f):
		case math.IsInf(f, 0):
			return ErrInfinity
		default:
			n++
		}
	}
	if n == 0 {
		return ErrNoData
	}
	return nil
}

// Range returns the min and max of the finite values in data.
// ok is false if there are none.
func Range(data Valuer) (min, max float64, ok bool) {
	var rng minmax.F64
	rng.SetInfinity()
	n := 0
	for i := 0; i < data.Len(); i++ {
		v := data.Float1D(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		rng.FitValInRange(v)
		n++
	}
	if n == 0 {
		return 0, 0, false
	}
	return rng.Min, rng.Max, true
}

// sliceRange is [Range] on a plain slice.
func sliceRange(vs []float64) (min, max float64, ok bool) {
	return Range(Values(vs))
}

// Values provides a minimal implementation of the Valuer interface
// using a slice of float64.
type Values []float64

func (vs Values) Len() int {
	return len(vs)
}

func (vs Values) Float1D(i int) float64 {
	return vs[i]
}

func (vs Values) String1D(i int) string {
	return strconv.FormatFloat(vs[i], 'g', -1, 64)
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"math"
	"strconv"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/viewplot/signal"
	"github.com/aclements/go-moremath/vec"
)

// ErrInterval is returned for a non-positive or non-finite sample interval.
var ErrInterval = errors.New("data: sample interval must be finite and > 0")

// LinearRange is a generated [Vector] of evenly spaced values,
// typically used as the X axis for a vector of samples.
type LinearRange struct {
	values  []float64
	changed signal.Signal
}

// NewLinearRange returns n evenly spaced values from lo to hi inclusive.
func NewLinearRange(lo, hi float64, n int) *LinearRange {
	lr := &LinearRange{}
	lr.values = linspace(lo, hi, n)
	return lr
}

func linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	return vec.Linspace(lo, hi, n)
}

func (lr *LinearRange) Len() int                { return len(lr.values) }
func (lr *LinearRange) Float1D(i int) float64   { return lr.values[i] }
func (lr *LinearRange) Values() []float64       { return lr.values }
func (lr *LinearRange) Changed() *signal.Signal { return &lr.changed }

func (lr *LinearRange) String1D(i int) string {
	return strconv.FormatFloat(lr.values[i], 'g', -1, 64)
}

func (lr *LinearRange) Range() (min, max float64, ok bool) {
	return sliceRange(lr.values)
}

// SetBounds regenerates n evenly spaced values from lo to hi inclusive.
func (lr *LinearRange) SetBounds(lo, hi float64, n int) {
	lr.values = linspace(lo, hi, n)
	lr.changed.Emit()
}

// SetStep regenerates n values start + i*step.
func (lr *LinearRange) SetStep(start, step float64, n int) {
	lr.values = make([]float64, max(n, 0))
	for i := range lr.values {
		lr.values[i] = start + float64(i)*step
	}
	lr.changed.Emit()
}

// FFTAxis is a generated [Vector] holding the frequency of each bin of
// a real FFT of a source vector: for n source samples taken every dt,
// it has n/2+1 values k/(n*dt). It follows the source length and only
// emits changed when the frequencies actually change.
type FFTAxis struct {
	src     Vector
	dt      float64
	n       int
	values  []float64
	conns   signal.Connections
	changed signal.Signal
}

// NewFFTAxis returns the frequency axis for src sampled every dt.
// An invalid dt falls back to 1 and the error is logged.
func NewFFTAxis(src Vector, dt float64) *FFTAxis {
	fa := &FFTAxis{src: src, dt: 1, n: -1}
	if err := checkInterval(dt); err != nil {
		errors.Log(err)
	} else {
		fa.dt = dt
	}
	if src != nil {
		fa.conns.Connect(src.Changed(), fa.update)
	}
	fa.update()
	return fa
}

func checkInterval(dt float64) error {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("FFTAxis interval %g: %w", dt, ErrInterval)
	}
	return nil
}

func (fa *FFTAxis) Len() int                { return len(fa.values) }
func (fa *FFTAxis) Float1D(i int) float64   { return fa.values[i] }
func (fa *FFTAxis) Values() []float64       { return fa.values }
func (fa *FFTAxis) Changed() *signal.Signal { return &fa.changed }
func (fa *FFTAxis) Interval() float64       { return fa.dt }

func (fa *FFTAxis) String1D(i int) string {
	return strconv.FormatFloat(fa.values[i], 'g', -1, 64)
}

func (fa *FFTAxis) Range() (min, max float64, ok bool) {
	return sliceRange(fa.values)
}

// SetInterval sets the sample interval.
func (fa *FFTAxis) SetInterval(dt float64) error {
	if err := checkInterval(dt); err != nil {
		return err
	}
	if dt == fa.dt {
		return nil
	}
	fa.dt = dt
	fa.n = -1
	fa.update()
	return nil
}

// Close stops following the source vector.
func (fa *FFTAxis) Close() {
	fa.conns.Close()
}

func (fa *FFTAxis) update() {
	n := 0
	if fa.src != nil {
		n = fa.src.Len()
	}
	if n == fa.n {
		return
	}
	fa.n = n
	fa.values = fa.values[:0]
	if n > 0 {
		scale := 1 / (float64(n) * fa.dt)
		for k := 0; k <= n/2; k++ {
			fa.values = append(fa.values, float64(k)*scale)
		}
	}
	fa.changed.Emit()
}

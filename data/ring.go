// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"strconv"

	"cogentcore.org/viewplot/signal"
)

// Ring is a fixed-capacity ring buffer [Vector]: once full, each
// pushed value overwrites the oldest one. Index 0 is always the
// oldest value still held.
type Ring struct {
	buf   []float64
	start int
	n     int

	// flat is the chronological copy returned by Values,
	// rebuilt lazily after a change.
	flat  []float64
	dirty bool

	changed signal.Signal
}

// NewRing returns an empty ring buffer holding at most capacity
// values (at least 1).
func NewRing(capacity int) *Ring {
	return &Ring{buf: make([]float64, max(capacity, 1))}
}

func (rb *Ring) Len() int                { return rb.n }
func (rb *Ring) Capacity() int           { return len(rb.buf) }
func (rb *Ring) Changed() *signal.Signal { return &rb.changed }

func (rb *Ring) Float1D(i int) float64 {
	return rb.buf[(rb.start+i)%len(rb.buf)]
}

func (rb *Ring) String1D(i int) string {
	return strconv.FormatFloat(rb.Float1D(i), 'g', -1, 64)
}

func (rb *Ring) Values() []float64 {
	if rb.dirty || len(rb.flat) != rb.n {
		rb.flat = rb.flat[:0]
		for i := range rb.n {
			rb.flat = append(rb.flat, rb.Float1D(i))
		}
		rb.dirty = false
	}
	return rb.flat
}

func (rb *Ring) Range() (min, max float64, ok bool) {
	return Range(rb)
}

// Push appends values, dropping the oldest once the capacity is
// reached. One changed signal is emitted per call.
func (rb *Ring) Push(vals ...float64) {
	if len(vals) == 0 {
		return
	}
	c := len(rb.buf)
	for _, v := range vals {
		if rb.n < c {
			rb.buf[(rb.start+rb.n)%c] = v
			rb.n++
			continue
		}
		rb.buf[rb.start] = v
		rb.start = (rb.start + 1) % c
	}
	rb.dirty = true
	rb.changed.Emit()
}

// SetCapacity changes the capacity, keeping the newest values.
func (rb *Ring) SetCapacity(capacity int) {
	capacity = max(capacity, 1)
	if capacity == len(rb.buf) {
		return
	}
	keep := min(rb.n, capacity)
	nb := make([]float64, capacity)
	for i := range keep {
		nb[i] = rb.Float1D(rb.n - keep + i)
	}
	rb.buf, rb.start, rb.n = nb, 0, keep
	rb.dirty = true
	rb.changed.Emit()
}

// Clear removes all values.
func (rb *Ring) Clear() {
	if rb.n == 0 {
		return
	}
	rb.start, rb.n = 0, 0
	rb.dirty = true
	rb.changed.Emit()
}

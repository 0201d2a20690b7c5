// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"slices"

	"cogentcore.org/viewplot/signal"
)

// Grid is a settable [Matrix]. The shape and the value buffer
// are always replaced together, so they can never disagree.
type Grid struct {
	rows, cols int
	values     []float64
	changed    signal.Signal
}

// NewGrid returns a zero-filled grid of the given shape.
func NewGrid(rows, cols int) *Grid {
	rows, cols = max(rows, 0), max(cols, 0)
	return &Grid{rows: rows, cols: cols, values: make([]float64, rows*cols)}
}

// NewGridRows returns a grid from a slice of rows, which must all
// have the same length.
func NewGridRows(rows [][]float64) (*Grid, error) {
	g := &Grid{}
	nc := 0
	if len(rows) > 0 {
		nc = len(rows[0])
	}
	vals := make([]float64, 0, len(rows)*nc)
	for i, r := range rows {
		if len(r) != nc {
			return nil, fmt.Errorf("NewGridRows: row %d has %d values, expected %d: %w", i, len(r), nc, ErrShape)
		}
		vals = append(vals, r...)
	}
	g.rows, g.cols, g.values = len(rows), nc, vals
	return g, nil
}

func (g *Grid) Rows() int               { return g.rows }
func (g *Grid) Cols() int               { return g.cols }
func (g *Grid) At(row, col int) float64 { return g.values[row*g.cols+col] }
func (g *Grid) Values() []float64       { return g.values }
func (g *Grid) Changed() *signal.Signal { return &g.changed }

func (g *Grid) Range() (min, max float64, ok bool) {
	return sliceRange(g.values)
}

// SetValues replaces the shape and values of the grid in one step.
// If len(vals) != rows*cols the grid is left unchanged and [ErrShape]
// is returned.
func (g *Grid) SetValues(rows, cols int, vals []float64) error {
	if rows < 0 || cols < 0 || len(vals) != rows*cols {
		return fmt.Errorf("Grid.SetValues %dx%d with %d values: %w", rows, cols, len(vals), ErrShape)
	}
	g.rows, g.cols, g.values = rows, cols, slices.Clone(vals)
	g.changed.Emit()
	return nil
}

// SetAt sets one cell.
func (g *Grid) SetAt(row, col int, v float64) error {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return fmt.Errorf("Grid.SetAt (%d, %d) of %dx%d: %w", row, col, g.rows, g.cols, ErrIndex)
	}
	g.values[row*g.cols+col] = v
	g.changed.Emit()
	return nil
}

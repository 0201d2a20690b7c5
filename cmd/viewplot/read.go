// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"cogentcore.org/core/base/errors"
)

var (
	// ErrParse is returned for a field that is not a number.
	ErrParse = errors.New("viewplot: not a number")

	// ErrRagged is returned when rows have different lengths.
	ErrRagged = errors.New("viewplot: rows have different lengths")

	// ErrEmpty is returned for input without any numbers.
	ErrEmpty = errors.New("viewplot: no data")
)

// readRows reads numbers separated by white space or commas, one row per
// line. Blank lines and lines starting with # are skipped.
func readRows(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d field %d %q: %w", line, i+1, f, ErrParse)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	return rows, nil
}

// readFile reads rows from the named file, or from stdin for "-".
func readFile(name string) ([][]float64, error) {
	if name == "-" {
		return readRows(os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := readRows(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return rows, nil
}

// columns returns the columns of rectangular rows.
func columns(rows [][]float64) ([][]float64, error) {
	n := len(rows[0])
	cols := make([][]float64, n)
	for i := range cols {
		cols[i] = make([]float64, len(rows))
	}
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d values, not %d: %w", r+1, len(row), n, ErrRagged)
		}
		for c, v := range row {
			cols[c][r] = v
		}
	}
	return cols, nil
}

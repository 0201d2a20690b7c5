// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cartesian

import (
	"fmt"
	"strconv"
	"strings"
)

// Axis identifies one axis slot of a [View].
type Axis int32

const (
	// X is the horizontal data axis.
	X Axis = iota

	// Y is the vertical data axis.
	Y

	// Z is the value (color) axis.
	Z

	// Meta is used by axis-only views (axis strips, color bars)
	// to display the markers of another view's data axis.
	Meta

	// NumAxes is the number of axis slots.
	NumAxes
)

var axisNames = [...]string{"X", "Y", "Z", "Meta"}

func (ax Axis) String() string {
	if !ax.IsValid() {
		return "Axis(" + strconv.Itoa(int(ax)) + ")"
	}
	return axisNames[ax]
}

// IsValid returns whether ax is one of the defined axes.
func (ax Axis) IsValid() bool {
	return ax >= 0 && ax < NumAxes
}

// ParseAxis returns the axis with the given name, ignoring case.
func ParseAxis(s string) (Axis, error) {
	for i, nm := range axisNames {
		if strings.EqualFold(nm, s) {
			return Axis(i), nil
		}
	}
	return X, fmt.Errorf("%q: %w", s, ErrInvalidAxis)
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pointer input consumed by interactive views.
// The windowing layer translates its native events into [Event] values
// whose positions are already normalized to the view's axis space.
package events

import "strconv"

// Types determines the type of input event.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// Press happens when a pointer button is pressed down.
	// See Event.Button for which.
	Press

	// Release happens when a pointer button is released.
	Release

	// Motion is sent when the pointer moves, with or without
	// a button down.
	Motion

	// Scroll is a scroll wheel step. See Event.Scroll for the direction.
	Scroll

	// FocusOut is sent when the view loses the pointer grab or
	// keyboard focus, so that any gesture in progress can be abandoned.
	FocusOut

	TypesN
)

var typeNames = [...]string{"UnknownType", "Press", "Release", "Motion", "Scroll", "FocusOut"}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "Types(" + strconv.Itoa(int(tp)) + ")"
	}
	return typeNames[tp]
}

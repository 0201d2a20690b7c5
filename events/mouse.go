// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"strings"

	"cogentcore.org/core/math32"
)

// Buttons is a pointer button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

func (bt Buttons) String() string {
	switch bt {
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	}
	return "NoButton"
}

// Modifiers are the modifier keys held down during an event, as bit flags.
type Modifiers int32

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
)

// Has returns whether all of the given modifiers are held.
func (md Modifiers) Has(mods Modifiers) bool {
	return md&mods == mods && mods != 0
}

func (md Modifiers) String() string {
	var s []string
	if md&Shift != 0 {
		s = append(s, "Shift")
	}
	if md&Control != 0 {
		s = append(s, "Control")
	}
	if md&Alt != 0 {
		s = append(s, "Alt")
	}
	return strings.Join(s, "+")
}

// ScrollDirection is the direction of a scroll wheel step.
type ScrollDirection int32

const (
	ScrollUp ScrollDirection = iota
	ScrollDown
)

// Event is one pointer event. Pos is the pointer position as fractions
// of the view along X (left to right) and Y (bottom to top), which map
// directly onto view intervals through Unconv.
type Event struct {
	Type   Types
	Button Buttons
	Mods   Modifiers
	Pos    math32.Vector2
	Scroll ScrollDirection

	handled bool
}

// NewPress returns a button press event at the given axis fractions.
func NewPress(but Buttons, x, y float32, mods Modifiers) *Event {
	return &Event{Type: Press, Button: but, Pos: math32.Vec2(x, y), Mods: mods}
}

// NewRelease returns a button release event.
func NewRelease(but Buttons, x, y float32, mods Modifiers) *Event {
	return &Event{Type: Release, Button: but, Pos: math32.Vec2(x, y), Mods: mods}
}

// NewMotion returns a pointer motion event.
func NewMotion(x, y float32, mods Modifiers) *Event {
	return &Event{Type: Motion, Pos: math32.Vec2(x, y), Mods: mods}
}

// NewScroll returns a scroll wheel event.
func NewScroll(dir ScrollDirection, x, y float32, mods Modifiers) *Event {
	return &Event{Type: Scroll, Scroll: dir, Pos: math32.Vec2(x, y), Mods: mods}
}

// NewFocusOut returns a focus loss event.
func NewFocusOut() *Event {
	return &Event{Type: FocusOut}
}

// SetHandled marks the event as handled, stopping further listeners.
func (ev *Event) SetHandled() {
	ev.handled = true
}

// IsHandled returns whether the event has been handled.
func (ev *Event) IsHandled() bool {
	return ev.handled
}

func (ev *Event) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: (%g, %g), Mods: %v}", ev.Type, ev.Button, ev.Pos.X, ev.Pos.Y, ev.Mods)
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenersReverseOrder(t *testing.T) {
	var ls Listeners
	var got []string
	ls.Add(Press, func(ev *Event) { got = append(got, "first") })
	ls.Add(Press, func(ev *Event) {
		got = append(got, "second")
		ev.SetHandled()
	})
	ls.Add(Release, func(ev *Event) { got = append(got, "release") })

	ls.Call(NewPress(Left, 0.5, 0.5, 0))
	assert.Equal(t, []string{"second"}, got)

	ev := NewRelease(Left, 0, 0, 0)
	ls.Call(ev)
	assert.Equal(t, []string{"second", "release"}, got)
	assert.False(t, ev.IsHandled())

	ev = NewMotion(0, 0, 0)
	ev.SetHandled()
	ls.Call(ev)
	assert.Len(t, got, 2)
}

func TestModifiers(t *testing.T) {
	md := Shift | Alt
	assert.True(t, md.Has(Shift))
	assert.True(t, md.Has(Shift|Alt))
	assert.False(t, md.Has(Control))
	assert.False(t, md.Has(0))
	assert.Equal(t, "Shift+Alt", md.String())
}

func TestEventString(t *testing.T) {
	ev := NewPress(Right, 0.25, 1, Control)
	assert.Equal(t, "Press{Button: Right, Pos: (0.25, 1), Mods: Control}", ev.String())
	assert.Equal(t, "FocusOut", NewFocusOut().Type.String())
	assert.Equal(t, "Types(99)", Types(99).String())
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotwidget

import (
	"fmt"
	"slices"

	"cogentcore.org/core/base/errors"
)

// ErrUnknownAction is returned by [Widget.Activate] for an unknown name.
var ErrUnknownAction = errors.New("plotwidget: unknown toolbar action")

// Action names.
const (
	ActionAutoscale = "autoscale"
	ActionZoom      = "zoom"
	ActionPan       = "pan"
)

// Action is one toolbar button.
type Action struct {
	Name    string
	Tooltip string

	// Toggle actions have an on / off state in Checked.
	Toggle  bool
	Checked bool

	run func()
}

func (w *Widget) makeToolbar() {
	w.toolbar = []*Action{
		{Name: ActionAutoscale, Tooltip: "Fit all axes to the data", run: w.Autoscale},
		{Name: ActionZoom, Tooltip: "Drag to zoom, click to zoom in or out", Toggle: true, run: func() {
			w.SetZooming(!w.action(ActionZoom).Checked)
		}},
		{Name: ActionPan, Tooltip: "Drag to pan", Toggle: true, run: func() {
			w.SetPanning(!w.action(ActionPan).Checked)
		}},
	}
}

// Toolbar returns the toolbar actions.
func (w *Widget) Toolbar() []*Action {
	return w.toolbar
}

func (w *Widget) action(name string) *Action {
	i := slices.IndexFunc(w.toolbar, func(a *Action) bool { return a.Name == name })
	if i < 0 {
		return nil
	}
	return w.toolbar[i]
}

// Activate runs the named toolbar action, as if its button was clicked.
func (w *Widget) Activate(name string) error {
	a := w.action(name)
	if a == nil {
		return fmt.Errorf("%q: %w", name, ErrUnknownAction)
	}
	a.run()
	return nil
}

// SetZooming turns zoom mode on or off for all views.
// Turning it on turns pan mode off.
func (w *Widget) SetZooming(on bool) {
	w.setModes(on, w.Panning() && !on)
}

// SetPanning turns pan mode on or off for all views.
// Turning it on turns zoom mode off.
func (w *Widget) SetPanning(on bool) {
	w.setModes(w.Zooming() && !on, on)
}

func (w *Widget) setModes(zoom, pan bool) {
	w.action(ActionZoom).Checked = zoom
	w.action(ActionPan).Checked = pan
	for _, d := range w.children() {
		d.SetZooming(zoom)
		d.SetPanning(pan)
	}
}

// Zooming returns whether zoom mode is on.
func (w *Widget) Zooming() bool {
	return w.action(ActionZoom).Checked
}

// Panning returns whether pan mode is on.
func (w *Widget) Panning() bool {
	return w.action(ActionPan).Checked
}

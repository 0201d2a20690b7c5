// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the [Options] that configure a plot widget
// and its views, loaded from TOML or YAML files.
package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/viewplot/cartesian"
	"cogentcore.org/viewplot/markers"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrFormat  = errors.New("config: unsupported file format")
	ErrInvalid = errors.New("config: invalid options")
)

// Options is the configuration of a plot widget and its views.
type Options struct {

	// IgnorePreferredRange starts every axis as manually positioned,
	// so that data changes do not refit it.
	IgnorePreferredRange bool `toml:"ignore_preferred_range" yaml:"ignore_preferred_range"`

	// ForcePreferred lists, by axis name (X, Y, Z), the axes that
	// always snap back to the preferred range.
	ForcePreferred map[string]bool `toml:"force_preferred,omitempty" yaml:"force_preferred,omitempty"`

	// MarkerTypes sets, by axis name, the marker type:
	// None, Scalar, Integer or Date.
	MarkerTypes map[string]string `toml:"marker_types,omitempty" yaml:"marker_types,omitempty"`

	// Zooming starts with zoom mode on.
	Zooming bool `toml:"zooming" yaml:"zooming"`

	// Panning starts with pan mode on.
	Panning bool `toml:"panning" yaml:"panning"`

	// SymmetricZ makes density Z ranges symmetric around zero.
	SymmetricZ bool `toml:"symmetric_z" yaml:"symmetric_z"`

	// PreserveAspect keeps density cells square on screen.
	PreserveAspect bool `toml:"preserve_aspect" yaml:"preserve_aspect"`

	// Line is the line style of scatter views.
	Line LineOptions `toml:"line" yaml:"line"`

	// Dots is the dot style of scatter views.
	Dots DotOptions `toml:"dots" yaml:"dots"`

	// ColorMap is the name of the density color map.
	ColorMap string `toml:"color_map" yaml:"color_map" default:"ColdHot"`

	// MaxFrameRate caps redraws per second; 0 means no cap.
	MaxFrameRate float64 `toml:"max_frame_rate" yaml:"max_frame_rate"`

	// Width and Height are the rendered image size in pixels.
	Width  int `toml:"width" yaml:"width" default:"640"`
	Height int `toml:"height" yaml:"height" default:"480"`
}

// LineOptions are scatter line options.
type LineOptions struct {
	Width float32 `toml:"width" yaml:"width" default:"1"`
	Show  bool    `toml:"show" yaml:"show" default:"true"`
}

// DotOptions are scatter dot options.
type DotOptions struct {
	Size float32 `toml:"size" yaml:"size" default:"4"`
	Show bool    `toml:"show" yaml:"show"`
}

// New returns new options with defaults applied.
func New() *Options {
	o := &Options{}
	o.Defaults()
	return o
}

// Defaults sets the fields from their default tags.
func (o *Options) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(o))
}

// Load reads options from a .toml, .yaml or .yml file,
// on top of the defaults, and validates them.
func Load(filename string) (*Options, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}
	o := New()
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(b, o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		return nil, fmt.Errorf("config %s: %q: %w", filename, ext, ErrFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filename, err)
	}
	return o, o.Validate()
}

// Save writes the options to a .toml, .yaml or .yml file.
func (o *Options) Save(filename string) error {
	var b []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		b, err = toml.Marshal(o)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(o)
	default:
		return fmt.Errorf("config %s: %q: %w", filename, ext, ErrFormat)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// Clone returns a deep copy of the options.
func (o *Options) Clone() *Options {
	c := &Options{}
	errors.Log(copier.CopyWithOption(c, o, copier.Option{DeepCopy: true}))
	// copier makes empty maps from nil ones
	if o.ForcePreferred == nil {
		c.ForcePreferred = nil
	}
	if o.MarkerTypes == nil {
		c.MarkerTypes = nil
	}
	return c
}

// Validate checks the options, returning all problems joined.
func (o *Options) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid))
	}
	if o.Width <= 0 || o.Height <= 0 {
		bad("size %dx%d must be positive", o.Width, o.Height)
	}
	if o.MaxFrameRate < 0 {
		bad("max_frame_rate %g must not be negative", o.MaxFrameRate)
	}
	if o.Zooming && o.Panning {
		bad("zooming and panning are exclusive")
	}
	if o.Line.Width < 0 || o.Dots.Size < 0 {
		bad("line width %g and dot size %g must not be negative", o.Line.Width, o.Dots.Size)
	}
	// axis names match without case, so "x" and "X" are the same axis
	axisNames := func(field string, names []string) {
		seen := map[cartesian.Axis]string{}
		for _, name := range names {
			ax, err := cartesian.ParseAxis(name)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if prev, ok := seen[ax]; ok {
				bad("%s names %q and %q are both axis %v", field, prev, name, ax)
				continue
			}
			seen[ax] = name
		}
	}
	axisNames("force_preferred", slices.Sorted(maps.Keys(o.ForcePreferred)))
	axisNames("marker_types", slices.Sorted(maps.Keys(o.MarkerTypes)))
	for _, typ := range o.MarkerTypes {
		if _, err := markers.ParseType(typ); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Forced returns whether the axis is forced to its preferred range.
func (o *Options) Forced(axis cartesian.Axis) bool {
	for _, name := range slices.Sorted(maps.Keys(o.ForcePreferred)) {
		if ax, err := cartesian.ParseAxis(name); err == nil && ax == axis {
			return o.ForcePreferred[name]
		}
	}
	return false
}

// MarkerType returns the configured marker type of the axis,
// with ok false if there is none.
func (o *Options) MarkerType(axis cartesian.Axis) (typ markers.Type, ok bool) {
	for _, name := range slices.Sorted(maps.Keys(o.MarkerTypes)) {
		ax, err := cartesian.ParseAxis(name)
		if err != nil || ax != axis {
			continue
		}
		typ, err = markers.ParseType(o.MarkerTypes[name])
		return typ, err == nil
	}
	return markers.None, false
}

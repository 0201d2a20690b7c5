// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markers

import (
	"math"
	"time"
)

// dateStep is one candidate spacing for date ticks: either a fixed
// duration or a number of calendar months.
type dateStep struct {
	dur    time.Duration
	months int
	layout string
}

// approx returns the approximate step length in seconds.
func (ds dateStep) approx() float64 {
	if ds.months > 0 {
		return float64(ds.months) * 30.436875 * 86400
	}
	return ds.dur.Seconds()
}

const (
	day  = 24 * time.Hour
	week = 7 * day
)

// dateSteps are the candidate date tick spacings, finest first.
var dateSteps = []dateStep{
	{dur: time.Second, layout: "15:04:05"},
	{dur: 2 * time.Second, layout: "15:04:05"},
	{dur: 5 * time.Second, layout: "15:04:05"},
	{dur: 10 * time.Second, layout: "15:04:05"},
	{dur: 15 * time.Second, layout: "15:04:05"},
	{dur: 30 * time.Second, layout: "15:04:05"},
	{dur: time.Minute, layout: "15:04"},
	{dur: 2 * time.Minute, layout: "15:04"},
	{dur: 5 * time.Minute, layout: "15:04"},
	{dur: 10 * time.Minute, layout: "15:04"},
	{dur: 15 * time.Minute, layout: "15:04"},
	{dur: 30 * time.Minute, layout: "15:04"},
	{dur: time.Hour, layout: "Jan 2 15:04"},
	{dur: 2 * time.Hour, layout: "Jan 2 15:04"},
	{dur: 3 * time.Hour, layout: "Jan 2 15:04"},
	{dur: 6 * time.Hour, layout: "Jan 2 15:04"},
	{dur: 12 * time.Hour, layout: "Jan 2 15:04"},
	{dur: day, layout: "Jan 2"},
	{dur: 2 * day, layout: "Jan 2"},
	{dur: week, layout: "Jan 2"},
	{months: 1, layout: "Jan 2006"},
	{months: 2, layout: "Jan 2006"},
	{months: 3, layout: "Jan 2006"},
	{months: 6, layout: "Jan 2006"},
	{months: 12, layout: "2006"},
	{months: 24, layout: "2006"},
	{months: 60, layout: "2006"},
	{months: 120, layout: "2006"},
	{months: 240, layout: "2006"},
	{months: 600, layout: "2006"},
	{months: 1200, layout: "2006"},
}

func formatDate(sec float64, layout string) string {
	return toTime(sec).Format(layout)
}

func toTime(sec float64) time.Time {
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*1e9)).UTC()
}

func fromTime(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

// dateTicks returns calendar aligned ticks for Unix second positions.
// Ranges shorter than a few seconds fall back to scalar ticks.
func dateTicks(lo, hi float64, want int) []Tick {
	span := hi - lo
	if span < 2 {
		return scalarTicks(lo, hi, want)
	}
	idx := len(dateSteps) - 1
	for i, ds := range dateSteps {
		if span/ds.approx() <= float64(want) {
			idx = i
			break
		}
	}
	major := dateSteps[idx]
	ticks := stepTimes(lo, hi, major, 4*want, true)
	if idx > 0 {
		for _, t := range stepTimes(lo, hi, dateSteps[idx-1], 20*want, false) {
			if !hasPosition(ticks, t.Position) {
				ticks = append(ticks, t)
			}
		}
	}
	return ticks
}

func hasPosition(ticks []Tick, pos float64) bool {
	for _, t := range ticks {
		if t.Position == pos {
			return true
		}
	}
	return false
}

// stepTimes returns the aligned times of the given step within [lo, hi],
// at most limit of them.
func stepTimes(lo, hi float64, ds dateStep, limit int, major bool) []Tick {
	var ticks []Tick
	add := func(t time.Time) {
		tk := Tick{Position: fromTime(t), Major: major}
		if major {
			tk.Label = t.Format(ds.layout)
		}
		ticks = append(ticks, tk)
	}
	if ds.months == 0 {
		step := ds.dur.Seconds()
		first := math.Ceil(lo/step) * step
		for i := 0; i < limit; i++ {
			v := first + float64(i)*step
			if v > hi {
				break
			}
			add(toTime(v))
		}
		return ticks
	}
	start := toTime(lo)
	// months since year 0, rounded up to a multiple of the step
	m := start.Year()*12 + int(start.Month()) - 1
	t := time.Date(m/12, time.Month(m%12+1), 1, 0, 0, 0, 0, time.UTC)
	if fromTime(t) < lo {
		m++
	}
	if r := m % ds.months; r != 0 {
		m += ds.months - r
	}
	for i := 0; i < limit; i++ {
		mm := m + i*ds.months
		t := time.Date(mm/12, time.Month(mm%12+1), 1, 0, 0, 0, 0, time.UTC)
		if fromTime(t) > hi {
			break
		}
		add(t)
	}
	return ticks
}

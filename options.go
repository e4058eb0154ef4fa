// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepicker

import (
	"log/slog"
	"time"

	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/locale"
	"cloudeng.io/datepicker/overlay"
)

// Clock is used to determine the current date.
type Clock interface {
	Now() time.Time
}

// ClockFunc allows a function to be used as a Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock is the Clock used by default.
var SystemClock = ClockFunc(time.Now)

// Option represents an option to New.
type Option func(o *options)

type options struct {
	label       string
	constraints dates.Constraints
	inline      bool
	clock       Clock
	localizer   *locale.Localizer
	logger      *slog.Logger
	overlays    *overlay.Manager
	value       any
}

// WithLabel sets the label displayed alongside the picker.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithMin sets the earliest date that may be selected.
func WithMin(cd dates.CalendarDate) Option {
	return func(o *options) {
		o.constraints.Min = cd
	}
}

// WithMax sets the latest date that may be selected.
func WithMax(cd dates.CalendarDate) Option {
	return func(o *options) {
		o.constraints.Max = cd
	}
}

// WithDisabled adds to the set of dates that may not be selected.
func WithDisabled(cds ...dates.CalendarDate) Option {
	return func(o *options) {
		o.constraints.Disabled = append(o.constraints.Disabled, cds...)
	}
}

// WithDisabledWeekdays adds to the set of weekdays that may not be
// selected.
func WithDisabledWeekdays(wds ...time.Weekday) Option {
	return func(o *options) {
		o.constraints.DisabledWeekdays = append(o.constraints.DisabledWeekdays, wds...)
	}
}

// WithConstraints replaces all of the selection constraints.
func WithConstraints(c dates.Constraints) Option {
	return func(o *options) {
		o.constraints = c
	}
}

// WithInline requests that the grid is always displayed rather than
// presented as a popover.
func WithInline(inline bool) Option {
	return func(o *options) {
		o.inline = inline
	}
}

// WithClock sets the clock used to determine today's date.
func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithLocalizer sets the localizer used for display strings, English
// is used by default.
func WithLocalizer(l *locale.Localizer) Option {
	return func(o *options) {
		o.localizer = l
	}
}

// WithLogger sets the logger used by the picker, by default nothing
// is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithOverlays registers the picker's popover with the specified
// overlay manager. Inline pickers are never registered.
func WithOverlays(m *overlay.Manager) Option {
	return func(o *options) {
		o.overlays = m
	}
}

// WithValue sets the initial value of the picker, it accepts the same
// values as SetValue.
func WithValue(v any) Option {
	return func(o *options) {
		o.value = v
	}
}

var englishLocalizer = locale.Must("en")

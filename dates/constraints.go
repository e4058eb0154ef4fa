// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"cloudeng.io/errors"
)

// Constraints represents the dates that may not be selected: those before
// Min, those after Max, the specific dates in Disabled and any date that
// falls on one of DisabledWeekdays. Zero values for Min and Max mean that
// no bound is set. The checks are independent of each other.
type Constraints struct {
	Min              CalendarDate     // If set, dates before Min are disabled.
	Max              CalendarDate     // If set, dates after Max are disabled.
	Disabled         CalendarDateList // Dates that are always disabled.
	DisabledWeekdays []time.Weekday   // Days of the week that are always disabled.
}

func (dc Constraints) String() string {
	var out []string
	if !dc.Min.IsZero() {
		out = append(out, "on or after "+dc.Min.String())
	}
	if !dc.Max.IsZero() {
		out = append(out, "on or before "+dc.Max.String())
	}
	if len(dc.Disabled) > 0 {
		out = append(out, "excluding dates: "+dc.Disabled.String())
	}
	if len(dc.DisabledWeekdays) > 0 {
		names := make([]string, len(dc.DisabledWeekdays))
		for i, wd := range dc.DisabledWeekdays {
			names[i] = wd.String()
		}
		out = append(out, "excluding weekdays: "+strings.Join(names, ", "))
	}
	if len(out) == 0 {
		return "any date"
	}
	return strings.Join(out, ": ")
}

// IsDisabled returns true if the given date may not be selected.
func (dc Constraints) IsDisabled(cd CalendarDate) bool {
	if !dc.Min.IsZero() && cd.Before(dc.Min) {
		return true
	}
	if !dc.Max.IsZero() && cd.After(dc.Max) {
		return true
	}
	if dc.Disabled.Contains(cd) {
		return true
	}
	if len(dc.DisabledWeekdays) > 0 && slices.Contains(dc.DisabledWeekdays, cd.Weekday()) {
		return true
	}
	return false
}

// Include returns true if the given date satisfies the constraints.
// An empty set of Constraints will return true, ie. include all dates.
func (dc Constraints) Include(cd CalendarDate) bool {
	return !dc.IsDisabled(cd)
}

// IncludeTime is like Include but for the calendar day of the supplied time.
func (dc Constraints) IncludeTime(when time.Time) bool {
	return dc.Include(CalendarDateFromTime(when))
}

// Empty returns true if no constraints are set.
func (dc Constraints) Empty() bool {
	return dc.Min.IsZero() && dc.Max.IsZero() && len(dc.Disabled) == 0 && len(dc.DisabledWeekdays) == 0
}

// Validate returns an error if any of the constraints refer to invalid
// dates or if Min is after Max.
func (dc Constraints) Validate() error {
	errs := &errors.M{}
	if !dc.Min.IsZero() && !dc.Min.Valid() {
		errs.Append(fmt.Errorf("min: %v: %w", dc.Min, ErrInvalidDate))
	}
	if !dc.Max.IsZero() && !dc.Max.Valid() {
		errs.Append(fmt.Errorf("max: %v: %w", dc.Max, ErrInvalidDate))
	}
	if !dc.Min.IsZero() && !dc.Max.IsZero() && dc.Min.After(dc.Max) {
		errs.Append(fmt.Errorf("min %v is after max %v", dc.Min, dc.Max))
	}
	for _, d := range dc.Disabled {
		if !d.Valid() {
			errs.Append(fmt.Errorf("disabled: %v: %w", d, ErrInvalidDate))
		}
	}
	for _, wd := range dc.DisabledWeekdays {
		if wd < time.Sunday || wd > time.Saturday {
			errs.Append(fmt.Errorf("disabled weekday: %d: %w", wd, ErrInvalidDate))
		}
	}
	return errs.Err()
}

var weekdays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// ParseWeekday parses a weekday name of the form "Sun" to "Sat" or any
// longer prefix of "Sunday" to "Saturday" in either lower or upper case.
func ParseWeekday(val string) (time.Weekday, error) {
	lc := strings.ToLower(strings.TrimSpace(val))
	if len(lc) >= 2 {
		for i, wd := range weekdays {
			if strings.HasPrefix(wd, lc) {
				return time.Weekday(i), nil
			}
		}
	}
	return 0, fmt.Errorf("invalid weekday: %q: %w", val, ErrInvalidDate)
}

// ParseWeekdays parses a comma separated list of weekday names.
func ParseWeekdays(val string) ([]time.Weekday, error) {
	if len(strings.TrimSpace(val)) == 0 {
		return nil, nil
	}
	parts := strings.Split(val, ",")
	wds := make([]time.Weekday, 0, len(parts))
	for _, p := range parts {
		wd, err := ParseWeekday(p)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(wds, wd) {
			wds = append(wds, wd)
		}
	}
	return wds, nil
}

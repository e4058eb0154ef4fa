// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// CalendarDate represents a date with a year, month and day. The zero
// value is used to indicate that no date is set.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// NewCalendarDate returns a CalendarDate for the specified year, month
// and day. No validation is performed.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// CalendarDateFromTime returns the calendar day of t in t's own location.
// Any time of day is discarded so that two times on the same calendar day
// yield equal CalendarDates.
func CalendarDateFromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: Month(m), Day: d}
}

// IsZero returns true if the date is not set.
func (cd CalendarDate) IsZero() bool {
	return cd == CalendarDate{}
}

// Valid returns true if the date refers to an existing calendar day.
func (cd CalendarDate) Valid() bool {
	return cd.Year > 0 && cd.Month.Valid() && cd.Day >= 1 && cd.Day <= DaysInMonth(cd.Year, cd.Month)
}

func (cd CalendarDate) ordinal() int {
	return cd.Year*10000 + int(cd.Month)*100 + cd.Day
}

// Compare returns -1, 0 or +1 depending on whether cd is before, the same
// day as, or after o.
func (cd CalendarDate) Compare(o CalendarDate) int {
	a, b := cd.ordinal(), o.ordinal()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal returns true if cd and o are the same calendar day.
func (cd CalendarDate) Equal(o CalendarDate) bool {
	return cd == o
}

// Before returns true if cd is strictly before o.
func (cd CalendarDate) Before(o CalendarDate) bool {
	return cd.ordinal() < o.ordinal()
}

// After returns true if cd is strictly after o.
func (cd CalendarDate) After(o CalendarDate) bool {
	return cd.ordinal() > o.ordinal()
}

// YearMonth returns the month that contains cd.
func (cd CalendarDate) YearMonth() YearMonth {
	return YearMonth{Year: cd.Year, Month: cd.Month}
}

// Time returns midnight at the start of cd in the specified location.
func (cd CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, 0, 0, 0, 0, loc)
}

// Weekday returns the day of the week for cd.
func (cd CalendarDate) Weekday() time.Weekday {
	return cd.Time(time.UTC).Weekday()
}

// Tomorrow returns the following calendar day, rolling over month and
// year boundaries. Dates with an invalid month are returned unchanged.
func (cd CalendarDate) Tomorrow() CalendarDate {
	if !cd.Month.Valid() {
		return cd
	}
	if cd.Day < DaysInMonth(cd.Year, cd.Month) {
		cd.Day++
		return cd
	}
	if cd.Month == 12 {
		return CalendarDate{Year: cd.Year + 1, Month: 1, Day: 1}
	}
	return CalendarDate{Year: cd.Year, Month: cd.Month + 1, Day: 1}
}

// Yesterday returns the previous calendar day, rolling over month and
// year boundaries. Dates with an invalid month are returned unchanged.
func (cd CalendarDate) Yesterday() CalendarDate {
	if !cd.Month.Valid() {
		return cd
	}
	if cd.Day > 1 {
		cd.Day--
		return cd
	}
	if cd.Month == 1 {
		return CalendarDate{Year: cd.Year - 1, Month: 12, Day: 31}
	}
	return CalendarDate{Year: cd.Year, Month: cd.Month - 1, Day: DaysInMonth(cd.Year, cd.Month-1)}
}

// AddDays returns the date n days after (or before for negative n) cd.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDateFromTime(cd.Time(time.UTC).AddDate(0, 0, n))
}

// String returns the date in ISO 8601 format, ie. 2006-01-02.
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}

const expectedCalendarDateFormats = "2006-01-02, 01/02/2006, Jan-02-2006 or RFC3339"

// ParseCalendarDate parses a date in one of the formats '2006-01-02',
// '01/02/2006', 'Jan-02-2006' or an RFC3339 timestamp. Timestamps are
// truncated to their calendar day in the timestamp's own location.
func ParseCalendarDate(val string) (CalendarDate, error) {
	var cd CalendarDate
	err := cd.Parse(val)
	return cd, err
}

// Parse parses a date as per ParseCalendarDate.
func (cd *CalendarDate) Parse(val string) error {
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected %s: %w", expectedCalendarDateFormats, ErrInvalidDate)
	}
	if len(val) > 10 && (val[10] == 'T' || val[10] == 't') {
		t, err := time.Parse(time.RFC3339, val)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q, expected %s: %w", val, expectedCalendarDateFormats, ErrInvalidDate)
		}
		*cd = CalendarDateFromTime(t)
		return nil
	}
	var parts []string
	var yearFirst, named bool
	switch {
	case strings.Contains(val, "/"):
		parts = strings.Split(val, "/")
	case strings.Count(val, "-") == 2 && len(val) > 0 && val[0] >= '0' && val[0] <= '9':
		parts = strings.Split(val, "-")
		yearFirst = true
	case strings.Contains(val, "-"):
		parts = strings.Split(val, "-")
		named = true
	}
	if len(parts) != 3 {
		return fmt.Errorf("invalid date %q, expected %s: %w", val, expectedCalendarDateFormats, ErrInvalidDate)
	}
	ys, ms, ds := parts[2], parts[0], parts[1]
	if yearFirst {
		ys, ms, ds = parts[0], parts[1], parts[2]
	}
	year, err := parseYear(ys)
	if err != nil {
		return err
	}
	var month Month
	if named {
		month, err = ParseMonth(ms)
	} else {
		month, err = ParseNumericMonth(ms)
	}
	if err != nil {
		return err
	}
	day, err := parseDay(year, month, ds)
	if err != nil {
		return err
	}
	*cd = CalendarDate{Year: year, Month: month, Day: day}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (cd CalendarDate) MarshalText() ([]byte, error) {
	if cd.IsZero() {
		return []byte{}, nil
	}
	return []byte(cd.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value
// results in the zero CalendarDate.
func (cd *CalendarDate) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*cd = CalendarDate{}
		return nil
	}
	return cd.Parse(string(text))
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (cd *CalendarDate) UnmarshalYAML(node *yaml.Node) error {
	return cd.UnmarshalText([]byte(node.Value))
}

// CalendarDateList is a list of CalendarDates.
type CalendarDateList []CalendarDate

// Parse a comma separated list of CalendarDates.
func (cdl *CalendarDateList) Parse(val string) error {
	if len(strings.TrimSpace(val)) == 0 {
		*cdl = nil
		return nil
	}
	parts := strings.Split(val, ",")
	l := make(CalendarDateList, 0, len(parts))
	for _, part := range parts {
		var cd CalendarDate
		if err := cd.Parse(part); err != nil {
			return err
		}
		l = append(l, cd)
	}
	*cdl = l
	return nil
}

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Contains returns true if d is the same calendar day as any member
// of the list.
func (cdl CalendarDateList) Contains(d CalendarDate) bool {
	for _, cd := range cdl {
		if cd == d {
			return true
		}
	}
	return false
}

// Sort sorts the list into chronological order.
func (cdl CalendarDateList) Sort() {
	slices.SortFunc(cdl, CalendarDate.Compare)
}

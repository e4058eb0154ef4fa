// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dates

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// YearMonth represents a month of a specific year, typically the month
// being displayed by a calendar.
type YearMonth struct {
	Year  int
	Month Month
}

// NewYearMonth returns a YearMonth for the specified year and month.
func NewYearMonth(year int, month Month) YearMonth {
	return YearMonth{Year: year, Month: month}
}

// YearMonthOf returns the month containing t in t's own location.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: Month(t.Month())}
}

// IsZero returns true if ym is not set.
func (ym YearMonth) IsZero() bool {
	return ym == YearMonth{}
}

// AddMonths returns the month n months after (or before for negative n)
// ym, rolling over year boundaries in either direction.
func (ym YearMonth) AddMonths(n int) YearMonth {
	idx := ym.Year*12 + int(ym.Month) - 1 + n
	year, month := idx/12, idx%12
	if month < 0 {
		month += 12
		year--
	}
	return YearMonth{Year: year, Month: Month(month + 1)}
}

// Next returns the following month.
func (ym YearMonth) Next() YearMonth {
	return ym.AddMonths(1)
}

// Prev returns the preceding month.
func (ym YearMonth) Prev() YearMonth {
	return ym.AddMonths(-1)
}

// Days returns the number of days in the month.
func (ym YearMonth) Days() int {
	return DaysInMonth(ym.Year, ym.Month)
}

// First returns the first day of the month.
func (ym YearMonth) First() CalendarDate {
	return CalendarDate{Year: ym.Year, Month: ym.Month, Day: 1}
}

// Last returns the last day of the month.
func (ym YearMonth) Last() CalendarDate {
	return CalendarDate{Year: ym.Year, Month: ym.Month, Day: ym.Days()}
}

// FirstWeekday returns the day of the week of the first day of the
// month, with Sunday as 0 and Saturday as 6.
func (ym YearMonth) FirstWeekday() int {
	return int(ym.First().Weekday())
}

// Contains returns true if cd falls within the month.
func (ym YearMonth) Contains(cd CalendarDate) bool {
	return cd.Year == ym.Year && cd.Month == ym.Month
}

// Compare returns -1, 0 or +1 depending on whether ym is before, the same
// as, or after o.
func (ym YearMonth) Compare(o YearMonth) int {
	a, b := ym.Year*12+int(ym.Month), o.Year*12+int(o.Month)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// String returns the month in the form 2006-01.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

const expectedYearMonthFormats = "2006-01, 01/2006 or Jan-2006"

// ParseYearMonth parses a month of a year in formats '2006-01',
// '01/2006' or 'Jan-2006'.
func ParseYearMonth(val string) (YearMonth, error) {
	var ym YearMonth
	err := ym.Parse(val)
	return ym, err
}

// Parse parses a month as per ParseYearMonth.
func (ym *YearMonth) Parse(val string) error {
	val = strings.TrimSpace(val)
	var ys, ms string
	var named bool
	switch {
	case strings.Contains(val, "/"):
		parts := strings.Split(val, "/")
		if len(parts) != 2 {
			return fmt.Errorf("invalid month %q, expected %s: %w", val, expectedYearMonthFormats, ErrInvalidDate)
		}
		ms, ys = parts[0], parts[1]
	case strings.Contains(val, "-"):
		parts := strings.Split(val, "-")
		if len(parts) != 2 {
			return fmt.Errorf("invalid month %q, expected %s: %w", val, expectedYearMonthFormats, ErrInvalidDate)
		}
		if len(parts[0]) == 4 {
			ys, ms = parts[0], parts[1]
		} else {
			ms, ys = parts[0], parts[1]
			named = true
		}
	default:
		return fmt.Errorf("invalid month %q, expected %s: %w", val, expectedYearMonthFormats, ErrInvalidDate)
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
	*ym = YearMonth{Year: year, Month: month}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (ym YearMonth) MarshalText() ([]byte, error) {
	return []byte(ym.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ym *YearMonth) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*ym = YearMonth{}
		return nil
	}
	return ym.Parse(string(text))
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (ym *YearMonth) UnmarshalYAML(node *yaml.Node) error {
	return ym.UnmarshalText([]byte(node.Value))
}

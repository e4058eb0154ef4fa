// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package grid generates the fixed six week calendar grid displayed by a
// date picker for a given month.
//
// A Grid always contains 42 days in chronological order: the trailing days
// of the previous month needed to start the first week on a Sunday, every
// day of the viewed month, and then as many days of the following month as
// are required to complete six full weeks. The number of rows is therefore
// the same for every month, regardless of its length or the weekday it
// starts on.
package grid

import (
	"fmt"
	"iter"
	"strings"

	"cloudeng.io/datepicker/dates"
)

const (
	// Columns is the number of days in a week.
	Columns = 7
	// Rows is the number of weeks displayed.
	Rows = 6
	// Size is the number of days in a Grid.
	Size = Rows * Columns
)

// Day represents a single cell of a Grid.
type Day struct {
	Date          dates.CalendarDate
	DayOfMonth    int
	InViewedMonth bool // false for days borrowed from adjacent months.
	Today         bool
	Selected      bool
	Disabled      bool
}

func (d Day) String() string {
	var flags []string
	if !d.InViewedMonth {
		flags = append(flags, "fill")
	}
	if d.Today {
		flags = append(flags, "today")
	}
	if d.Selected {
		flags = append(flags, "selected")
	}
	if d.Disabled {
		flags = append(flags, "disabled")
	}
	if len(flags) == 0 {
		return d.Date.String()
	}
	return fmt.Sprintf("%v (%s)", d.Date, strings.Join(flags, ","))
}

// Params represents the inputs to Generate. A zero Selected date means that
// no date is selected.
type Params struct {
	Month       dates.YearMonth
	Selected    dates.CalendarDate
	Today       dates.CalendarDate
	Constraints dates.Constraints
}

// Grid represents the days displayed for a month.
type Grid [Size]Day

// Generate returns the Grid for the supplied parameters. It is a pure
// function of its inputs.
func Generate(p Params) Grid {
	var g Grid
	n := 0
	emit := func(cd dates.CalendarDate, inMonth bool) {
		g[n] = Day{
			Date:          cd,
			DayOfMonth:    cd.Day,
			InViewedMonth: inMonth,
			Today:         cd == p.Today,
			Selected:      !p.Selected.IsZero() && cd == p.Selected,
			Disabled:      p.Constraints.IsDisabled(cd),
		}
		n++
	}

	prev := p.Month.Prev()
	lead, prevDays := p.Month.FirstWeekday(), prev.Days()
	for day := prevDays - lead + 1; day <= prevDays; day++ {
		emit(dates.NewCalendarDate(prev.Year, prev.Month, day), false)
	}
	for day := 1; day <= p.Month.Days(); day++ {
		emit(dates.NewCalendarDate(p.Month.Year, p.Month.Month, day), true)
	}
	next := p.Month.Next()
	for day := 1; n < Size; day++ {
		emit(dates.NewCalendarDate(next.Year, next.Month, day), false)
	}
	return g
}

// Weeks returns the grid as six rows of seven days, each row starting on
// a Sunday.
func (g *Grid) Weeks() [Rows][Columns]Day {
	var w [Rows][Columns]Day
	for i, d := range g {
		w[i/Columns][i%Columns] = d
	}
	return w
}

// Index returns the index of the specified date within the grid, or -1
// if it is not displayed.
func (g *Grid) Index(cd dates.CalendarDate) int {
	if cd.Before(g[0].Date) || cd.After(g[Size-1].Date) {
		return -1
	}
	for i := range g {
		if g[i].Date == cd {
			return i
		}
	}
	return -1
}

// Lookup returns the Day for the specified date if it is displayed.
func (g *Grid) Lookup(cd dates.CalendarDate) (Day, bool) {
	i := g.Index(cd)
	if i < 0 {
		return Day{}, false
	}
	return g[i], true
}

// At returns the Day at the specified row and column.
func (g *Grid) At(row, col int) (Day, bool) {
	if row < 0 || row >= Rows || col < 0 || col >= Columns {
		return Day{}, false
	}
	return g[row*Columns+col], true
}

// Days returns an iterator over all of the days in the grid.
func (g *Grid) Days() iter.Seq2[int, Day] {
	return func(yield func(int, Day) bool) {
		for i, d := range g {
			if !yield(i, d) {
				return
			}
		}
	}
}

// InMonth returns an iterator over the days that belong to the viewed month.
func (g *Grid) InMonth() iter.Seq[Day] {
	return func(yield func(Day) bool) {
		for _, d := range g {
			if d.InViewedMonth && !yield(d) {
				return
			}
		}
	}
}

// First returns the first date displayed, a Sunday.
func (g *Grid) First() dates.CalendarDate { return g[0].Date }

// Last returns the last date displayed, a Saturday.
func (g *Grid) Last() dates.CalendarDate { return g[Size-1].Date }

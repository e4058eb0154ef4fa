// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepicker

import (
	"fmt"
	"log/slog"
	"time"

	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/grid"
	"cloudeng.io/datepicker/locale"
	"cloudeng.io/datepicker/overlay"
)

// Direction specifies how Navigate changes the viewed month.
type Direction int

const (
	Previous Direction = iota
	Next
	Today
)

func (d Direction) String() string {
	switch d {
	case Previous:
		return "previous"
	case Next:
		return "next"
	case Today:
		return "today"
	}
	return "unknown"
}

// Picker represents the state of a single date picker control.
type Picker struct {
	opts     options
	viewed   dates.YearMonth
	selected dates.CalendarDate
	grid     grid.Grid
	open     bool
	disabled bool
	handle   overlay.Handle

	onValueChanged func(any)
	onInteracted   func()
	listeners      []func(dates.CalendarDate)
}

// New returns a new Picker. The viewed month is that of the initial
// value if one is supplied via WithValue and is valid, or the current
// month otherwise.
func New(opts ...Option) *Picker {
	p := &Picker{}
	for _, fn := range opts {
		fn(&p.opts)
	}
	if p.opts.clock == nil {
		p.opts.clock = SystemClock
	}
	if p.opts.localizer == nil {
		p.opts.localizer = englishLocalizer
	}
	if p.opts.logger == nil {
		p.opts.logger = slog.New(slog.DiscardHandler)
	}
	p.viewed = p.Today().YearMonth()
	if p.opts.value != nil {
		p.SetValue(p.opts.value)
	}
	if p.opts.overlays != nil && !p.opts.inline {
		p.handle = p.opts.overlays.Register(p)
	}
	p.regenerate()
	return p
}

// Today returns today's date according to the picker's clock, in the
// clock's location.
func (p *Picker) Today() dates.CalendarDate {
	return dates.CalendarDateFromTime(p.opts.clock.Now())
}

func (p *Picker) regenerate() {
	p.grid = grid.Generate(grid.Params{
		Month:       p.viewed,
		Selected:    p.selected,
		Today:       p.Today(),
		Constraints: p.opts.constraints,
	})
}

// Grid returns the grid for the viewed month.
func (p *Picker) Grid() grid.Grid {
	return p.grid
}

// Viewed returns the month currently being viewed.
func (p *Picker) Viewed() dates.YearMonth {
	return p.viewed
}

// Selected returns the selected date, if any.
func (p *Picker) Selected() (dates.CalendarDate, bool) {
	return p.selected, !p.selected.IsZero()
}

// Constraints returns the constraints that determine which dates may be
// selected.
func (p *Picker) Constraints() dates.Constraints {
	return p.opts.constraints
}

// SetConstraints replaces the picker's constraints. The current selection
// is retained even if it is no longer selectable.
func (p *Picker) SetConstraints(c dates.Constraints) {
	p.opts.constraints = c
	p.regenerate()
}

// IsDateDisabled returns true if the specified date may not be selected.
func (p *Picker) IsDateDisabled(cd dates.CalendarDate) bool {
	return p.opts.constraints.IsDisabled(cd)
}

// Select selects the specified day. It returns false, and leaves the
// picker unchanged, if the day is disabled or if the picker itself is
// disabled. Selecting a day that belongs to an adjacent month does not
// change the viewed month.
func (p *Picker) Select(day grid.Day) bool {
	if p.disabled || day.Disabled || p.IsDateDisabled(day.Date) || !day.Date.Valid() {
		p.opts.logger.Debug("datepicker: selection ignored", "date", day.Date, "picker_disabled", p.disabled)
		return false
	}
	p.selected = day.Date
	if p.onValueChanged != nil {
		p.onValueChanged(p.selected)
	}
	if p.onInteracted != nil {
		p.onInteracted()
	}
	for _, fn := range p.listeners {
		fn(p.selected)
	}
	if !p.opts.inline {
		p.open = false
	}
	p.regenerate()
	p.opts.logger.Debug("datepicker: selected", "date", p.selected)
	return true
}

// SelectDate is like Select but for a date rather than a grid cell.
func (p *Picker) SelectDate(cd dates.CalendarDate) bool {
	return p.Select(grid.Day{
		Date:       cd,
		DayOfMonth: cd.Day,
		Disabled:   p.IsDateDisabled(cd),
	})
}

// Navigate changes the viewed month. The selected date is unaffected.
func (p *Picker) Navigate(d Direction) {
	if p.disabled {
		return
	}
	switch d {
	case Previous:
		p.viewed = p.viewed.Prev()
	case Next:
		p.viewed = p.viewed.Next()
	case Today:
		p.viewed = p.Today().YearMonth()
	default:
		return
	}
	p.regenerate()
}

// ShowMonth sets the viewed month.
func (p *Picker) ShowMonth(ym dates.YearMonth) {
	if p.disabled || !ym.Month.Valid() {
		return
	}
	p.viewed = ym
	p.regenerate()
}

// SetValue implements form.Control. It accepts a dates.CalendarDate,
// *dates.CalendarDate, time.Time or a string in any of the formats
// accepted by dates.ParseCalendarDate. A valid value becomes the
// selected date and its month the viewed month. Missing, empty or
// unparsable values are ignored. Neither the value changed callback nor
// any listeners are invoked.
func (p *Picker) SetValue(v any) {
	cd, ok := p.dateFromValue(v)
	if !ok {
		return
	}
	p.selected = cd
	p.viewed = cd.YearMonth()
	p.regenerate()
}

// Value implements form.Control. It returns the selected date or nil if
// no date is selected.
func (p *Picker) Value() any {
	if p.selected.IsZero() {
		return nil
	}
	return p.selected
}

// Clear implements form.Clearer. It removes the selection without
// changing the viewed month or invoking any callbacks.
func (p *Picker) Clear() {
	if p.selected.IsZero() {
		return
	}
	p.selected = dates.CalendarDate{}
	p.regenerate()
}

func (p *Picker) dateFromValue(v any) (dates.CalendarDate, bool) {
	var cd dates.CalendarDate
	switch tv := v.(type) {
	case nil:
		return cd, false
	case dates.CalendarDate:
		cd = tv
	case *dates.CalendarDate:
		if tv == nil {
			return cd, false
		}
		cd = *tv
	case time.Time:
		if tv.IsZero() {
			return cd, false
		}
		cd = dates.CalendarDateFromTime(tv)
	case *time.Time:
		if tv == nil || tv.IsZero() {
			return cd, false
		}
		cd = dates.CalendarDateFromTime(*tv)
	case string:
		if len(tv) == 0 {
			return cd, false
		}
		if err := cd.Parse(tv); err != nil {
			p.opts.logger.Debug("datepicker: ignoring unparsable value", "value", tv, "error", err)
			return cd, false
		}
	default:
		p.opts.logger.Debug("datepicker: ignoring value of unsupported type", "type", fmt.Sprintf("%T", v))
		return cd, false
	}
	if cd.IsZero() || !cd.Valid() {
		return cd, false
	}
	return cd, true
}

// OnValueChanged implements form.Control.
func (p *Picker) OnValueChanged(fn func(any)) {
	p.onValueChanged = fn
}

// OnInteracted implements form.Control.
func (p *Picker) OnInteracted(fn func()) {
	p.onInteracted = fn
}

// SetDisabled implements form.Disabler. A disabled picker ignores
// selection and navigation and its popover is closed.
func (p *Picker) SetDisabled(disabled bool) {
	p.disabled = disabled
	if disabled && !p.opts.inline {
		p.open = false
	}
}

// Disabled returns true if the picker is disabled.
func (p *Picker) Disabled() bool {
	return p.disabled
}

// OnDateSelected registers a function to be called every time a date
// is selected.
func (p *Picker) OnDateSelected(fn func(dates.CalendarDate)) {
	p.listeners = append(p.listeners, fn)
}

// Inline returns true for pickers that are always displayed.
func (p *Picker) Inline() bool {
	return p.opts.inline
}

// IsOpen returns true if the grid is displayed. Inline pickers are
// always open.
func (p *Picker) IsOpen() bool {
	return p.opts.inline || p.open
}

// Open displays the popover and closes any other overlays registered
// with the same overlay manager.
func (p *Picker) Open() {
	if p.opts.inline || p.disabled || p.open {
		return
	}
	p.open = true
	if p.handle != 0 {
		p.opts.overlays.Activate(p.handle)
	}
}

// Close hides the popover, it implements overlay.Overlay.
func (p *Picker) Close() {
	p.open = false
}

// Toggle opens a closed popover and closes an open one.
func (p *Picker) Toggle() {
	if p.open {
		p.Close()
		return
	}
	p.Open()
}

// Handle returns the overlay handle for the picker's popover, it is zero
// if the picker is not registered with an overlay manager.
func (p *Picker) Handle() overlay.Handle {
	return p.handle
}

// Dispose releases any resources held by the picker: it is deregistered
// from its overlay manager and all callbacks are dropped.
func (p *Picker) Dispose() {
	if p.handle != 0 {
		p.opts.overlays.Deregister(p.handle)
		p.handle = 0
	}
	p.listeners = nil
	p.onValueChanged = nil
	p.onInteracted = nil
}

// Localizer returns the localizer used for display strings.
func (p *Picker) Localizer() *locale.Localizer {
	return p.opts.localizer
}

// Label returns the picker's label, or a localized prompt if no label
// was specified.
func (p *Picker) Label() string {
	if len(p.opts.label) > 0 {
		return p.opts.label
	}
	return p.opts.localizer.Message(locale.SelectDate)
}

// Header returns the localized "Month YYYY" header for the viewed month.
func (p *Picker) Header() string {
	return p.opts.localizer.MonthHeader(p.viewed)
}

// DisplayValue returns the localized long form of the selected date or
// a placeholder if no date is selected.
func (p *Picker) DisplayValue() string {
	return p.opts.localizer.DisplayValue(p.selected)
}

// WeekdayLabels returns the localized weekday labels, starting with Sunday.
func (p *Picker) WeekdayLabels() []string {
	return p.opts.localizer.WeekdayLabels()
}

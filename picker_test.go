// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datepicker_test

import (
	"testing"
	"time"

	"cloudeng.io/datepicker"
	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/grid"
	"cloudeng.io/datepicker/locale"
	"cloudeng.io/datepicker/overlay"
)

func ncd(y, m, d int) dates.CalendarDate {
	return dates.NewCalendarDate(y, dates.Month(m), d)
}

func fixedClock(y, m, d int) datepicker.Clock {
	return datepicker.ClockFunc(func() time.Time {
		return time.Date(y, time.Month(m), d, 15, 30, 0, 0, time.UTC)
	})
}

type recorder struct {
	values     []any
	interacted int
	selected   []dates.CalendarDate
}

func (r *recorder) attach(p *datepicker.Picker) {
	p.OnValueChanged(func(v any) { r.values = append(r.values, v) })
	p.OnInteracted(func() { r.interacted++ })
	p.OnDateSelected(func(cd dates.CalendarDate) { r.selected = append(r.selected, cd) })
}

func TestDefaults(t *testing.T) {
	p := datepicker.New(datepicker.WithClock(fixedClock(2024, 2, 10)))
	if got, want := p.Viewed(), dates.NewYearMonth(2024, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, ok := p.Selected(); ok {
		t.Errorf("unexpected selection")
	}
	if got, want := p.DisplayValue(), "No date selected"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.Header(), "February 2024"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.Label(), "Select a date"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(p.WeekdayLabels()), 7; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	g := p.Grid()
	d, ok := g.Lookup(ncd(2024, 2, 10))
	if !ok || !d.Today {
		t.Errorf("today is not marked: %v %v", d, ok)
	}
	if p.IsOpen() {
		t.Errorf("popover should be closed")
	}

	p = datepicker.New(datepicker.WithLabel("Start"), datepicker.WithClock(fixedClock(2024, 2, 10)))
	if got, want := p.Label(), "Start"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSelect(t *testing.T) {
	p := datepicker.New(
		datepicker.WithClock(fixedClock(2024, 2, 10)),
		datepicker.WithMin(ncd(2024, 2, 5)),
		datepicker.WithMax(ncd(2024, 2, 25)),
		datepicker.WithDisabled(ncd(2024, 2, 20)),
	)
	var r recorder
	r.attach(p)
	p.Open()

	g := p.Grid()
	for _, cd := range []dates.CalendarDate{
		ncd(2024, 2, 4), ncd(2024, 2, 20), ncd(2024, 2, 26), ncd(2024, 1, 31),
	} {
		day, ok := g.Lookup(cd)
		if !ok {
			t.Fatalf("%v: not in grid", cd)
		}
		if p.Select(day) {
			t.Errorf("%v: disabled day was selected", cd)
		}
	}
	if len(r.values) != 0 || r.interacted != 0 || len(r.selected) != 0 {
		t.Errorf("unexpected events: %+v", r)
	}
	if _, ok := p.Selected(); ok {
		t.Errorf("unexpected selection")
	}
	if !p.IsOpen() {
		t.Errorf("popover should still be open")
	}

	day, _ := g.Lookup(ncd(2024, 2, 14))
	if !p.Select(day) {
		t.Fatalf("failed to select %v", day)
	}
	if got, want := len(r.values), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := r.values[0], any(ncd(2024, 2, 14)); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := r.interacted, 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(r.selected), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if p.IsOpen() {
		t.Errorf("popover should be closed after selection")
	}
	if got, want := p.DisplayValue(), "February 14, 2024"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	g = p.Grid()
	sel, _ := g.Lookup(ncd(2024, 2, 14))
	if !sel.Selected {
		t.Errorf("grid was not regenerated")
	}

	// The boundaries themselves are selectable.
	for _, cd := range []dates.CalendarDate{ncd(2024, 2, 5), ncd(2024, 2, 25)} {
		if !p.SelectDate(cd) {
			t.Errorf("%v: failed to select", cd)
		}
	}
	if p.SelectDate(ncd(2024, 2, 20)) {
		t.Errorf("disabled date was selected")
	}
	if got, want := len(r.selected), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSelectFillDay(t *testing.T) {
	p := datepicker.New(datepicker.WithClock(fixedClock(2024, 2, 10)))
	g := p.Grid()
	day, _ := g.Lookup(ncd(2024, 3, 2))
	if day.InViewedMonth {
		t.Fatalf("%v should be a fill day", day)
	}
	if !p.Select(day) {
		t.Fatalf("failed to select %v", day)
	}
	if got, want := p.Viewed(), dates.NewYearMonth(2024, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInline(t *testing.T) {
	p := datepicker.New(datepicker.WithInline(true), datepicker.WithClock(fixedClock(2024, 2, 10)))
	if !p.IsOpen() {
		t.Errorf("inline picker should be open")
	}
	p.SelectDate(ncd(2024, 2, 12))
	p.Close()
	if !p.IsOpen() {
		t.Errorf("inline picker should remain open")
	}
}

func TestNavigate(t *testing.T) {
	p := datepicker.New(
		datepicker.WithClock(fixedClock(2024, 2, 10)),
		datepicker.WithValue(ncd(2023, 11, 3)),
	)
	if got, want := p.Viewed(), dates.NewYearMonth(2023, 11); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for i := 0; i < 12; i++ {
		p.Navigate(datepicker.Next)
	}
	if got, want := p.Viewed(), dates.NewYearMonth(2024, 11); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	p.Navigate(datepicker.Next)
	p.Navigate(datepicker.Next)
	if got, want := p.Viewed(), dates.NewYearMonth(2025, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	p.Navigate(datepicker.Previous)
	if got, want := p.Viewed(), dates.NewYearMonth(2024, 12); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	p.Navigate(datepicker.Today)
	if got, want := p.Viewed(), dates.NewYearMonth(2024, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.Header(), "February 2024"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if cd, ok := p.Selected(); !ok || cd != ncd(2023, 11, 3) {
		t.Errorf("navigation changed the selection: %v %v", cd, ok)
	}
	p.ShowMonth(dates.NewYearMonth(1999, 12))
	if got, want := p.Viewed(), dates.NewYearMonth(1999, 12); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	p.ShowMonth(dates.YearMonth{Year: 2000, Month: 13})
	if got, want := p.Viewed(), dates.NewYearMonth(1999, 12); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSetValue(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	valid := ncd(2022, 7, 4)
	for i, tc := range []struct {
		value any
		want  dates.CalendarDate
	}{
		{valid, valid},
		{&valid, valid},
		{"2022-07-04", valid},
		{"07/04/2022", valid},
		{"Jul-04-2022", valid},
		{time.Date(2022, 7, 4, 23, 30, 0, 0, loc), valid},
		{time.Date(2022, 7, 4, 0, 0, 0, 0, time.UTC), valid},
	} {
		p := datepicker.New(datepicker.WithClock(fixedClock(2024, 2, 10)))
		var r recorder
		r.attach(p)
		p.SetValue(tc.value)
		cd, ok := p.Selected()
		if !ok || cd != tc.want {
			t.Errorf("%v: got %v, want %v", i, cd, tc.want)
		}
		if got, want := p.Viewed(), tc.want.YearMonth(); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if len(r.values) != 0 || len(r.selected) != 0 {
			t.Errorf("%v: pushed values should not generate events", i)
		}
	}

	var nilDate *dates.CalendarDate
	for i, value := range []any{
		nil, "", "not a date", "2022-02-30", time.Time{}, nilDate, dates.CalendarDate{}, 42,
	} {
		p := datepicker.New(
			datepicker.WithClock(fixedClock(2024, 2, 10)),
			datepicker.WithValue(valid),
		)
		p.SetValue(value)
		cd, ok := p.Selected()
		if !ok || cd != valid {
			t.Errorf("%v: %v: got %v, want %v", i, value, cd, valid)
		}
		if got, want := p.Viewed(), valid.YearMonth(); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestValueAndClear(t *testing.T) {
	p := datepicker.New(datepicker.WithClock(fixedClock(2024, 2, 10)))
	defer p.Dispose()
	if v := p.Value(); v != nil {
		t.Errorf("got %v, want nil", v)
	}
	var r recorder
	r.attach(p)
	p.SetValue("2022-07-04")
	if got, want := p.Value(), any(ncd(2022, 7, 4)); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	p.Clear()
	if _, ok := p.Selected(); ok {
		t.Errorf("selection was not cleared")
	}
	if v := p.Value(); v != nil {
		t.Errorf("got %v, want nil", v)
	}
	if got, want := p.Viewed(), dates.NewYearMonth(2022, 7); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	g := p.Grid()
	for _, d := range g.Days() {
		if d.Selected {
			t.Errorf("%v: still marked as selected", d)
		}
	}
	if len(r.values) != 0 || len(r.selected) != 0 {
		t.Errorf("clearing should not generate events")
	}
}

func TestDisabledPicker(t *testing.T) {
	p := datepicker.New(datepicker.WithClock(fixedClock(2024, 2, 10)))
	var r recorder
	r.attach(p)
	p.Open()
	p.SetDisabled(true)
	if !p.Disabled() || p.IsOpen() {
		t.Errorf("disabled picker should be closed")
	}
	if p.SelectDate(ncd(2024, 2, 12)) {
		t.Errorf("disabled picker accepted a selection")
	}
	p.Navigate(datepicker.Next)
	if got, want := p.Viewed(), dates.NewYearMonth(2024, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	p.Open()
	if p.IsOpen() {
		t.Errorf("disabled picker was opened")
	}
	// Values can still be pushed into a disabled picker.
	p.SetValue("2024-03-01")
	if cd, _ := p.Selected(); cd != ncd(2024, 3, 1) {
		t.Errorf("got %v", cd)
	}
	p.SetDisabled(false)
	if !p.SelectDate(ncd(2024, 2, 12)) {
		t.Errorf("enabled picker rejected a selection")
	}
	if got, want := len(r.selected), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSetConstraints(t *testing.T) {
	p := datepicker.New(datepicker.WithClock(fixedClock(2024, 2, 10)))
	p.SetConstraints(dates.Constraints{DisabledWeekdays: []time.Weekday{time.Saturday, time.Sunday}})
	g := p.Grid()
	for d := range g.InMonth() {
		wd := d.Date.Weekday()
		if got, want := d.Disabled, wd == time.Saturday || wd == time.Sunday; got != want {
			t.Errorf("%v: got %v, want %v", d, got, want)
		}
	}
	if p.SelectDate(ncd(2024, 2, 10)) {
		t.Errorf("weekend day was selected")
	}
}

func TestOverlays(t *testing.T) {
	m := overlay.NewManager()
	clock := datepicker.WithClock(fixedClock(2024, 2, 10))
	a := datepicker.New(clock, datepicker.WithOverlays(m))
	b := datepicker.New(clock, datepicker.WithOverlays(m))
	c := datepicker.New(clock, datepicker.WithOverlays(m), datepicker.WithInline(true))
	if got, want := m.Len(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if c.Handle() != 0 {
		t.Errorf("inline pickers should not be registered")
	}
	a.Open()
	b.Open()
	if a.IsOpen() || !b.IsOpen() {
		t.Errorf("opening b should close a: a: %v, b: %v", a.IsOpen(), b.IsOpen())
	}
	a.Toggle()
	if !a.IsOpen() || b.IsOpen() {
		t.Errorf("opening a should close b: a: %v, b: %v", a.IsOpen(), b.IsOpen())
	}
	m.OutsideClick(a.Handle())
	if !a.IsOpen() {
		t.Errorf("clicking inside a should leave it open")
	}
	m.OutsideClick(0)
	if a.IsOpen() {
		t.Errorf("clicking outside should close a")
	}
	a.Toggle()
	a.Toggle()
	if a.IsOpen() {
		t.Errorf("toggle twice should leave a closed")
	}

	var r recorder
	r.attach(a)
	a.Dispose()
	b.Dispose()
	if got, want := m.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	a.SelectDate(ncd(2024, 2, 12))
	if len(r.selected) != 0 || len(r.values) != 0 {
		t.Errorf("disposed picker generated events")
	}
}

func TestLocalized(t *testing.T) {
	p := datepicker.New(
		datepicker.WithClock(fixedClock(2024, 2, 10)),
		datepicker.WithLocalizer(locale.Must("fr")),
	)
	if got, want := p.DisplayValue(), "Aucune date sélectionnée"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if p.Localizer().Locale() != "fr" {
		t.Errorf("got %v", p.Localizer().Locale())
	}
}

func TestIdempotentGrid(t *testing.T) {
	p := datepicker.New(datepicker.WithClock(fixedClock(2024, 2, 10)), datepicker.WithValue("2024-02-14"))
	a := p.Grid()
	p.Navigate(datepicker.Next)
	p.Navigate(datepicker.Previous)
	b := p.Grid()
	if a != b {
		t.Errorf("grids differ")
	}
	want := grid.Generate(grid.Params{
		Month:    dates.NewYearMonth(2024, 2),
		Selected: ncd(2024, 2, 14),
		Today:    ncd(2024, 2, 10),
	})
	if a != want {
		t.Errorf("grid does not match a directly generated grid")
	}
}

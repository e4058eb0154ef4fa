// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tui_test

import (
	"strings"
	"testing"
	"time"

	"cloudeng.io/datepicker"
	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/overlay"
	"cloudeng.io/datepicker/tui"
	tea "github.com/charmbracelet/bubbletea"
)

func ncd(y, m, d int) dates.CalendarDate {
	return dates.NewCalendarDate(y, dates.Month(m), d)
}

func newPicker(opts ...datepicker.Option) *datepicker.Picker {
	clock := datepicker.ClockFunc(func() time.Time {
		return time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
	})
	return datepicker.New(append([]datepicker.Option{datepicker.WithClock(clock)}, opts...)...)
}

func update(t *testing.T, m tui.Model, msg tea.Msg) (tui.Model, tea.Cmd) {
	t.Helper()
	nm, cmd := m.Update(msg)
	um, ok := nm.(tui.Model)
	if !ok {
		t.Fatalf("unexpected model type: %T", nm)
	}
	return um, cmd
}

func keyMsg(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestKeyboardNavigation(t *testing.T) {
	m := tui.New(newPicker(datepicker.WithInline(true)))
	if got, want := m.Cursor(), ncd(2024, 2, 10); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}

	m, _ = update(t, m, keyMsg(tea.KeyRight))
	if got, want := m.Cursor(), ncd(2024, 2, 11); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	m, _ = update(t, m, keyMsg(tea.KeyUp))
	if got, want := m.Cursor(), ncd(2024, 2, 4); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Moving the cursor out of the viewed month changes the month.
	m, _ = update(t, m, keyMsg(tea.KeyUp))
	if got, want := m.Cursor(), ncd(2024, 1, 28); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := m.Picker().Viewed(), dates.NewYearMonth(2024, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	m, _ = update(t, m, keyMsg(tea.KeyDown))
	m, _ = update(t, m, keyMsg(tea.KeyLeft))
	if got, want := m.Cursor(), ncd(2024, 2, 3); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := m.Picker().Viewed(), dates.NewYearMonth(2024, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	m, _ = update(t, m, runeMsg(']'))
	if got, want := m.Picker().Viewed(), dates.NewYearMonth(2024, 3); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := m.Cursor(), ncd(2024, 3, 3); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	m, _ = update(t, m, keyMsg(tea.KeyPgUp))
	m, _ = update(t, m, keyMsg(tea.KeyPgUp))
	if got, want := m.Picker().Viewed(), dates.NewYearMonth(2024, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	m, _ = update(t, m, runeMsg('t'))
	if got, want := m.Picker().Viewed(), dates.NewYearMonth(2024, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := m.Cursor(), ncd(2024, 2, 10); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCursorClamp(t *testing.T) {
	m := tui.New(newPicker(datepicker.WithInline(true), datepicker.WithValue("2024-01-31")))
	if got, want := m.Cursor(), ncd(2024, 1, 31); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	m, _ = update(t, m, runeMsg(']'))
	if got, want := m.Cursor(), ncd(2024, 2, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestKeyboardSelect(t *testing.T) {
	p := newPicker(datepicker.WithDisabled(ncd(2024, 2, 11)))
	m := tui.New(p, tui.WithQuitOnSelect(true))
	if p.IsOpen() {
		t.Fatalf("popover should be closed")
	}

	// Navigation keys are ignored while closed.
	m, _ = update(t, m, keyMsg(tea.KeyRight))
	if got, want := m.Cursor(), ncd(2024, 2, 10); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	m, _ = update(t, m, keyMsg(tea.KeySpace))
	if !p.IsOpen() {
		t.Fatalf("popover should be open")
	}

	// Disabled days cannot be selected.
	m, _ = update(t, m, keyMsg(tea.KeyRight))
	m, cmd := update(t, m, keyMsg(tea.KeyEnter))
	if cmd != nil {
		t.Errorf("unexpected command for a disabled day")
	}
	if _, ok := m.Selected(); ok {
		t.Errorf("disabled day was selected")
	}

	m, _ = update(t, m, keyMsg(tea.KeyRight))
	m, cmd = update(t, m, keyMsg(tea.KeyEnter))
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg := cmd()
	sel, ok := msg.(tui.SelectedMsg)
	if !ok {
		t.Fatalf("unexpected message: %T", msg)
	}
	if got, want := sel.Date, ncd(2024, 2, 12); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if p.IsOpen() {
		t.Errorf("popover should close after selection")
	}
	m, cmd = update(t, m, sel)
	if cmd == nil || !m.Quitting() {
		t.Errorf("expected to quit after selection")
	}
	if cd, ok := m.Selected(); !ok || cd != ncd(2024, 2, 12) {
		t.Errorf("got %v %v", cd, ok)
	}
}

func TestQuitAndClose(t *testing.T) {
	p := newPicker()
	m := tui.New(p)
	m, _ = update(t, m, keyMsg(tea.KeyEnter))
	if !p.IsOpen() {
		t.Fatalf("popover should be open")
	}
	m, _ = update(t, m, keyMsg(tea.KeyEsc))
	if p.IsOpen() {
		t.Errorf("popover should be closed")
	}
	m, cmd := update(t, m, runeMsg('q'))
	if cmd == nil || !m.Quitting() {
		t.Errorf("expected to quit")
	}
	m = tui.New(p)
	m, cmd = update(t, m, keyMsg(tea.KeyCtrlC))
	if cmd == nil || !m.Quitting() {
		t.Errorf("expected to quit")
	}
}

func TestMouse(t *testing.T) {
	om := overlay.NewManager()
	p := newPicker(datepicker.WithOverlays(om))
	other := newPicker(datepicker.WithOverlays(om))
	m := tui.New(p, tui.WithOverlays(om))

	// Clicking the title opens the popover.
	m, _ = update(t, m, click(2, 0))
	if !p.IsOpen() {
		t.Fatalf("popover should be open")
	}

	// February 1st 2024 is a Thursday, the first row, fifth column.
	day, ok := m.CellAt(4*tui.CellWidth+1, tui.GridTop)
	if !ok || day.Date != ncd(2024, 2, 1) {
		t.Fatalf("got %v %v", day, ok)
	}
	if _, ok := m.CellAt(7*tui.CellWidth, tui.GridTop); ok {
		t.Errorf("expected no cell to the right of the grid")
	}

	// Header arrows change the month.
	m, _ = update(t, m, click(1, 1))
	if got, want := p.Viewed(), dates.NewYearMonth(2024, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	m, _ = update(t, m, click(7*tui.CellWidth-1, 1))
	if got, want := p.Viewed(), dates.NewYearMonth(2024, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	m, cmd := update(t, m, click(4*tui.CellWidth+2, tui.GridTop+2))
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	if got, want := cmd().(tui.SelectedMsg).Date, ncd(2024, 2, 15); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// A click outside of the picker closes every open overlay.
	m, _ = update(t, m, click(0, 0))
	if !p.IsOpen() {
		t.Fatalf("popover should be open")
	}
	other.Open()
	if p.IsOpen() || !other.IsOpen() {
		t.Errorf("opening other should close p: p: %v, other: %v", p.IsOpen(), other.IsOpen())
	}
	p.Open()
	m, _ = update(t, m, click(60, 20))
	if p.IsOpen() || other.IsOpen() {
		t.Errorf("outside click should close all overlays")
	}

	// Other mouse events are ignored.
	m, cmd = update(t, m, tea.MouseMsg{X: 2, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if cmd != nil || p.IsOpen() {
		t.Errorf("release events should be ignored")
	}
}

func TestView(t *testing.T) {
	p := newPicker(datepicker.WithInline(true), datepicker.WithLabel("Due"), datepicker.WithValue("2024-02-14"))
	m := tui.New(p)
	out := m.View()
	for _, want := range []string{"Due: February 14, 2024", "February 2024", "Su", "29"} {
		if !strings.Contains(out, want) {
			t.Errorf("view is missing %q:\n%s", want, out)
		}
	}
	lines := strings.Split(out, "\n")
	if got, want := len(lines) >= tui.GridTop+6, true; got != want {
		t.Fatalf("got %v lines", len(lines))
	}

	closed := tui.New(newPicker())
	if strings.Contains(closed.View(), "February 2024") {
		t.Errorf("closed popover should not render the grid")
	}
}

// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package tui provides a Bubble Tea model that hosts a date picker in a
// terminal. The grid is navigated with a day cursor that follows the
// viewed month and days may be selected with the keyboard or the mouse.
package tui

import (
	"fmt"
	"strings"

	"cloudeng.io/datepicker"
	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/grid"
	"cloudeng.io/datepicker/overlay"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// CellWidth is the number of terminal columns used for each day.
	CellWidth = 4
	// GridTop is the terminal row of the first week of the grid.
	GridTop = 3

	gridWidth = grid.Columns * CellWidth
)

// SelectedMsg is sent when a date is selected.
type SelectedMsg struct {
	Date dates.CalendarDate
}

// Option represents an option to New.
type Option func(m *Model)

// WithKeyMap sets the key bindings.
func WithKeyMap(km KeyMap) Option {
	return func(m *Model) {
		m.keys = km
	}
}

// WithStyles sets the rendering styles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// WithOverlays sets the overlay manager that mouse clicks outside of the
// picker are reported to, it should be the manager that the picker was
// registered with.
func WithOverlays(om *overlay.Manager) Option {
	return func(m *Model) {
		m.overlays = om
	}
}

// WithQuitOnSelect requests that the program exits once a date has
// been selected.
func WithQuitOnSelect(v bool) Option {
	return func(m *Model) {
		m.quitOnSelect = v
	}
}

// Model is a tea.Model that hosts a datepicker.Picker.
type Model struct {
	picker       *datepicker.Picker
	keys         KeyMap
	styles       Styles
	help         help.Model
	overlays     *overlay.Manager
	cursor       dates.CalendarDate
	quitOnSelect bool
	quitting     bool
}

// New returns a new Model for the supplied picker.
func New(p *datepicker.Picker, opts ...Option) Model {
	m := Model{
		picker: p,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		help:   help.New(),
	}
	for _, fn := range opts {
		fn(&m)
	}
	m.cursor = initialCursor(p)
	return m
}

func initialCursor(p *datepicker.Picker) dates.CalendarDate {
	viewed := p.Viewed()
	if cd, ok := p.Selected(); ok && viewed.Contains(cd) {
		return cd
	}
	if today := p.Today(); viewed.Contains(today) {
		return today
	}
	return viewed.First()
}

// Picker returns the hosted picker.
func (m Model) Picker() *datepicker.Picker {
	return m.picker
}

// Cursor returns the date under the cursor.
func (m Model) Cursor() dates.CalendarDate {
	return m.cursor
}

// Selected returns the selected date, if any.
func (m Model) Selected() (dates.CalendarDate, bool) {
	return m.picker.Selected()
}

// Quitting returns true once the user has asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case SelectedMsg:
		if m.quitOnSelect {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if !m.picker.IsOpen() {
		if key.Matches(msg, m.keys.Toggle, m.keys.Select) {
			m.open()
		}
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-grid.Columns)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(grid.Columns)
	case key.Matches(msg, m.keys.PrevMonth):
		m.changeMonth(datepicker.Previous)
	case key.Matches(msg, m.keys.NextMonth):
		m.changeMonth(datepicker.Next)
	case key.Matches(msg, m.keys.Today):
		m.changeMonth(datepicker.Today)
	case key.Matches(msg, m.keys.Select):
		cmd := m.selectDate(m.cursor)
		return m, cmd
	case key.Matches(msg, m.keys.Toggle):
		m.picker.Toggle()
	case key.Matches(msg, m.keys.Close):
		m.picker.Close()
	}
	return m, nil
}

func (m *Model) open() {
	m.picker.Open()
	m.cursor = initialCursor(m.picker)
}

func (m *Model) moveCursor(days int) {
	next := m.cursor.AddDays(days)
	viewed := m.picker.Viewed()
	if !viewed.Contains(next) {
		if next.After(m.cursor) {
			m.picker.Navigate(datepicker.Next)
		} else {
			m.picker.Navigate(datepicker.Previous)
		}
	}
	if m.picker.Viewed().Contains(next) {
		m.cursor = next
	}
}

func (m *Model) changeMonth(d datepicker.Direction) {
	m.picker.Navigate(d)
	viewed := m.picker.Viewed()
	if d == datepicker.Today {
		if today := m.picker.Today(); viewed.Contains(today) {
			m.cursor = today
			return
		}
	}
	if viewed.Contains(m.cursor) {
		return
	}
	m.cursor = dates.NewCalendarDate(viewed.Year, viewed.Month, min(m.cursor.Day, viewed.Days()))
}

func (m *Model) selectDate(cd dates.CalendarDate) tea.Cmd {
	if !m.picker.SelectDate(cd) {
		return nil
	}
	m.cursor = cd
	return func() tea.Msg {
		return SelectedMsg{Date: cd}
	}
}

// CellAt returns the grid cell displayed at the specified terminal
// coordinates, if any.
func (m Model) CellAt(x, y int) (grid.Day, bool) {
	if !m.picker.IsOpen() || x < 0 || x >= gridWidth {
		return grid.Day{}, false
	}
	g := m.picker.Grid()
	return g.At(y-GridTop, x/CellWidth)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y == 0 && msg.X < gridWidth {
		if m.picker.IsOpen() {
			m.picker.Toggle()
		} else {
			m.open()
		}
		return m, nil
	}
	if m.picker.IsOpen() && msg.Y == 1 && msg.X >= 0 && msg.X < gridWidth {
		switch {
		case msg.X < CellWidth:
			m.changeMonth(datepicker.Previous)
		case msg.X >= gridWidth-CellWidth:
			m.changeMonth(datepicker.Next)
		}
		return m, nil
	}
	if day, ok := m.CellAt(msg.X, msg.Y); ok {
		cmd := m.selectDate(day.Date)
		return m, cmd
	}
	if m.overlays != nil {
		m.overlays.OutsideClick(0)
	} else {
		m.picker.Close()
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.picker.Label() + ": " + m.picker.DisplayValue()))
	b.WriteRune('\n')
	if !m.picker.IsOpen() {
		if !m.quitting {
			b.WriteRune('\n')
			b.WriteString(m.help.View(m.keys))
		}
		return b.String()
	}
	header := lipgloss.PlaceHorizontal(gridWidth-2*CellWidth, lipgloss.Center, m.picker.Header())
	b.WriteString(" ‹  ")
	b.WriteString(m.styles.Header.Render(header))
	b.WriteString("  › ")
	b.WriteRune('\n')
	for _, label := range m.picker.WeekdayLabels() {
		b.WriteString(m.styles.Weekday.Render(fmt.Sprintf("%3s ", truncate(label, 3))))
	}
	b.WriteRune('\n')
	g := m.picker.Grid()
	for _, week := range g.Weeks() {
		for _, day := range week {
			b.WriteString(m.renderDay(day))
		}
		b.WriteRune('\n')
	}
	if !m.quitting {
		b.WriteRune('\n')
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

func (m Model) renderDay(day grid.Day) string {
	style := m.styles.Day
	switch {
	case day.Disabled:
		style = m.styles.Disabled
	case day.Selected:
		style = m.styles.Selected
	case day.Today:
		style = m.styles.Today
	case !day.InViewedMonth:
		style = m.styles.Fill
	}
	text := fmt.Sprintf("%3d", day.DayOfMonth)
	if day.Date == m.cursor {
		style = m.styles.Cursor.Inherit(style)
	}
	return style.Render(text) + " "
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}

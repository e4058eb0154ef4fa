// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent   = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	colorMuted    = lipgloss.AdaptiveColor{Light: "#9AA3AF", Dark: "#5B6B84"}
	colorToday    = lipgloss.Color("#2196F3")
	colorDisabled = lipgloss.Color("#E53935")
)

// Styles defines the lipgloss styles used to render a Model. Styles
// must not change the width of the text they render.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Weekday  lipgloss.Style
	Day      lipgloss.Style
	Fill     lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Disabled lipgloss.Style
	Cursor   lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Weekday:  lipgloss.NewStyle().Faint(true),
		Day:      lipgloss.NewStyle(),
		Fill:     lipgloss.NewStyle().Foreground(colorMuted),
		Today:    lipgloss.NewStyle().Foreground(colorToday).Underline(true),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Disabled: lipgloss.NewStyle().Foreground(colorDisabled).Strikethrough(true),
		Cursor:   lipgloss.NewStyle().Reverse(true),
	}
}

// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datepicker provides a date picker control that is independent
// of any particular presentation. A Picker owns the month being viewed,
// the currently selected date and the fixed six week grid of days
// generated for the viewed month (see the grid package). Hosts, such as
// the terminal user interface in the tui package or the HTTP server in the
// web package, render the grid and translate user input into calls to
// Select, Navigate and the popover methods.
//
// Selection is constrained by an optional minimum and maximum date, a
// list of disabled dates and a set of disabled weekdays; a disabled day
// can never be selected. A successful selection is reported to the value
// binding registered via OnValueChanged, marks the control as having been
// interacted with and is delivered exactly once to every OnDateSelected
// listener.
//
// Values are pushed into a Picker by its host via SetValue. The Picker
// implements the form.Control interface so that it can be bound to a
// form.Form.
//
// A Picker is not safe for concurrent use; it is intended to be owned
// by a single host goroutine. The overlay.Manager it may be registered
// with is safe for concurrent use.
package datepicker

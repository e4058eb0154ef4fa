// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package web

import (
	"context"
	"net/http"

	"cloudeng.io/datepicker"
	"cloudeng.io/datepicker/dates"
	"cloudeng.io/logging/ctxlog"
	"github.com/go-json-experiment/json"
)

// DayResponse is the JSON representation of a single grid cell.
type DayResponse struct {
	Date     dates.CalendarDate `json:"date"`
	Day      int                `json:"day"`
	InMonth  bool               `json:"in_month"`
	Today    bool               `json:"today,omitzero"`
	Selected bool               `json:"selected,omitzero"`
	Disabled bool               `json:"disabled,omitzero"`
}

// GridResponse is the JSON response for /api/grid.
type GridResponse struct {
	Month    dates.YearMonth    `json:"month"`
	Header   string             `json:"header"`
	Display  string             `json:"display"`
	Selected dates.CalendarDate `json:"selected,omitzero"`
	Rejected dates.CalendarDate `json:"rejected,omitzero"`
	Weekdays []string           `json:"weekdays"`
	Days     []DayResponse      `json:"days"`
}

// DisabledResponse is the JSON response for /api/disabled.
type DisabledResponse struct {
	Date     dates.CalendarDate `json:"date"`
	Disabled bool               `json:"disabled"`
}

// ErrorResponse is the JSON response used to report errors.
type ErrorResponse struct {
	Message string `json:"message"`
}

func newGridResponse(st state) GridResponse {
	resp := GridResponseFor(st.picker)
	resp.Rejected = st.rejected
	return resp
}

// GridResponseFor returns the GridResponse for the current state of p.
func GridResponseFor(p *datepicker.Picker) GridResponse {
	selected, _ := p.Selected()
	resp := GridResponse{
		Month:    p.Viewed(),
		Header:   p.Header(),
		Display:  p.DisplayValue(),
		Selected: selected,
		Weekdays: p.WeekdayLabels(),
	}
	g := p.Grid()
	resp.Days = make([]DayResponse, 0, len(g))
	for _, d := range g.Days() {
		resp.Days = append(resp.Days, DayResponse{
			Date:     d.Date,
			Day:      d.DayOfMonth,
			InMonth:  d.InViewedMonth,
			Today:    d.Today,
			Selected: d.Selected,
			Disabled: d.Disabled,
		})
	}
	return resp
}

// writeResponse writes resp as JSON, errors are logged since the status
// may already have been written.
func writeResponse(ctx context.Context, w http.ResponseWriter, resp any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.MarshalWrite(w, resp); err != nil {
		ctxlog.Logger(ctx).Error("failed to encode response", "error", err)
	}
}

func writeErrorMsg(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.MarshalWrite(w, ErrorResponse{Message: msg}) //nolint:errcheck
}

// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package web provides an HTTP host for a date picker: a server rendered
// HTML calendar and a JSON API that exposes the same state. Every request
// is served by its own Picker created from the server's options, state is
// carried between requests in the query parameters:
//
//	month     the viewed month, eg. 2024-02
//	selected  the currently selected date, eg. 2024-02-14
//	select    a date to select, subject to the picker's constraints
//	lang      a BCP 47 language tag, overrides Accept-Language
//
// Parameters are decoded into typed structs, a month or select value that
// cannot be parsed results in a 400 response. A selected value that cannot
// be parsed, or that the picker's constraints disable, is ignored.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"cloudeng.io/datepicker"
	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/grid"
	"cloudeng.io/datepicker/locale"
	"cloudeng.io/logging/ctxlog"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/form"
)

//go:embed templates/*.html
var templatesFS embed.FS

var calendarTemplate = template.Must(template.ParseFS(templatesFS, "templates/calendar.html"))

// Option represents an option to NewServer.
type Option func(s *Server)

// WithPickerOptions sets the options used to create the Picker for
// each request.
func WithPickerOptions(opts ...datepicker.Option) Option {
	return func(s *Server) {
		s.pickerOpts = append(s.pickerOpts, opts...)
	}
}

// WithLocaleNegotiation enables choosing the locale for each request
// from its lang query parameter or Accept-Language header.
func WithLocaleNegotiation(v bool) Option {
	return func(s *Server) {
		s.negotiate = v
	}
}

// WithLogger sets the logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// Server hosts date pickers over HTTP.
type Server struct {
	pickerOpts []datepicker.Option
	negotiate  bool
	logger     *slog.Logger
}

// NewServer returns a new Server.
func NewServer(opts ...Option) *Server {
	s := &Server{}
	for _, fn := range opts {
		fn(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// Handler returns the http.Handler for the server's routes.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(s.requestLogger)
	router.Use(middleware.Recoverer)
	router.Get("/", s.calendar)
	router.Route("/api", func(r chi.Router) {
		r.Get("/grid", s.grid)
		r.Get("/disabled", s.disabled)
	})
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n")) //nolint:errcheck
	})
	return router
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := s.logger.With("request_id", middleware.GetReqID(r.Context()))
		ctx := ctxlog.Context(r.Context(), logger)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))
		logger.Info("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "bytes", ww.BytesWritten())
	})
}

// state represents the outcome of applying a request's query parameters
// to a newly created picker.
type state struct {
	picker   *datepicker.Picker
	rejected dates.CalendarDate
	lang     string
}

type queryError struct {
	param string
	err   error
}

func (e *queryError) Error() string {
	return fmt.Sprintf("invalid %v parameter: %v", e.param, e.err)
}

func (e *queryError) Unwrap() error {
	return e.err
}

// calendarQuery represents the query parameters accepted by the calendar
// and grid endpoints.
type calendarQuery struct {
	Month    dates.YearMonth    `form:"month"`
	Selected string             `form:"selected"`
	Select   dates.CalendarDate `form:"select"`
	Lang     string             `form:"lang"`
}

// disabledQuery represents the query parameters accepted by the
// disabled endpoint.
type disabledQuery struct {
	Date dates.CalendarDate `form:"date"`
}

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.RegisterCustomTypeFunc(func(vals []string) (any, error) {
		var ym dates.YearMonth
		if len(strings.TrimSpace(vals[0])) == 0 {
			return ym, nil
		}
		err := ym.Parse(vals[0])
		return ym, err
	}, dates.YearMonth{})
	d.RegisterCustomTypeFunc(func(vals []string) (any, error) {
		var cd dates.CalendarDate
		if len(strings.TrimSpace(vals[0])) == 0 {
			return cd, nil
		}
		err := cd.Parse(vals[0])
		return cd, err
	}, dates.CalendarDate{})
	return d
}

// decodeQuery decodes the request's query parameters into q, the first
// parameter, in name order, that fails to decode is returned as a
// queryError.
func decodeQuery(r *http.Request, q any) error {
	err := queryDecoder.Decode(q, r.URL.Query())
	if err == nil {
		return nil
	}
	var derrs form.DecodeErrors
	if errors.As(err, &derrs) && len(derrs) > 0 {
		names := slices.Sorted(maps.Keys(derrs))
		return &queryError{param: names[0], err: derrs[names[0]]}
	}
	return err
}

func (s *Server) localizer(r *http.Request, lang string) *locale.Localizer {
	if !s.negotiate {
		return nil
	}
	requested := []string{}
	if len(lang) > 0 {
		requested = append(requested, lang)
	}
	if al := r.Header.Get("Accept-Language"); len(al) > 0 {
		requested = append(requested, al)
	}
	if len(requested) == 0 {
		return nil
	}
	l, err := locale.New(requested...)
	if err != nil {
		ctxlog.Logger(r.Context()).Warn("locale negotiation failed", "requested", requested, "error", err)
		return nil
	}
	return l
}

func (s *Server) newState(r *http.Request) (state, error) {
	var q calendarQuery
	if err := decodeQuery(r, &q); err != nil {
		return state{}, err
	}
	logger := ctxlog.Logger(r.Context())
	opts := append([]datepicker.Option{}, s.pickerOpts...)
	opts = append(opts, datepicker.WithLogger(logger))
	if l := s.localizer(r, q.Lang); l != nil {
		opts = append(opts, datepicker.WithLocalizer(l))
	}
	p := datepicker.New(opts...)
	if cd, err := dates.ParseCalendarDate(q.Selected); err == nil && p.IsDateDisabled(cd) {
		logger.Debug("ignoring disabled selected date", "date", cd)
	} else {
		// Unparsable selected values are ignored by the picker.
		p.SetValue(q.Selected)
	}
	if !q.Month.IsZero() {
		p.ShowMonth(q.Month)
	}
	st := state{picker: p, lang: q.Lang}
	if !q.Select.IsZero() && !p.SelectDate(q.Select) {
		st.rejected = q.Select
	}
	return st, nil
}

type cellView struct {
	Day      int
	Class    string
	Href     string
	Disabled bool
}

type calendarView struct {
	Lang       string
	Label      string
	Display    string
	Header     string
	Rejected   string
	Weekdays   []string
	Weeks      [][]cellView
	PrevHref   string
	NextHref   string
	TodayHref  string
	PrevLabel  string
	NextLabel  string
	TodayLabel string
}

func href(month dates.YearMonth, selected dates.CalendarDate, sel dates.CalendarDate, lang string) string {
	q := url.Values{}
	q.Set("month", month.String())
	if !selected.IsZero() {
		q.Set("selected", selected.String())
	}
	if !sel.IsZero() {
		q.Set("select", sel.String())
	}
	if len(lang) > 0 {
		q.Set("lang", lang)
	}
	return "/?" + q.Encode()
}

func cellClass(d grid.Day) string {
	class := "day"
	if !d.InViewedMonth {
		class += " fill"
	}
	if d.Today {
		class += " today"
	}
	if d.Selected {
		class += " selected"
	}
	if d.Disabled {
		class += " disabled"
	}
	return class
}

func newCalendarView(st state) calendarView {
	lang := st.lang
	p := st.picker
	l := p.Localizer()
	selected, _ := p.Selected()
	viewed := p.Viewed()
	cv := calendarView{
		Lang:       l.Locale(),
		Label:      p.Label(),
		Display:    p.DisplayValue(),
		Header:     p.Header(),
		Weekdays:   p.WeekdayLabels(),
		PrevHref:   href(viewed.Prev(), selected, dates.CalendarDate{}, lang),
		NextHref:   href(viewed.Next(), selected, dates.CalendarDate{}, lang),
		TodayHref:  href(p.Today().YearMonth(), selected, dates.CalendarDate{}, lang),
		PrevLabel:  l.Message(locale.PreviousMonth),
		NextLabel:  l.Message(locale.NextMonth),
		TodayLabel: l.Message(locale.Today),
	}
	if !st.rejected.IsZero() {
		cv.Rejected = st.rejected.String()
	}
	g := p.Grid()
	for _, week := range g.Weeks() {
		row := make([]cellView, 0, grid.Columns)
		for _, d := range week {
			row = append(row, cellView{
				Day:      d.DayOfMonth,
				Class:    cellClass(d),
				Href:     href(viewed, selected, d.Date, lang),
				Disabled: d.Disabled,
			})
		}
		cv.Weeks = append(cv.Weeks, row)
	}
	return cv
}

func (s *Server) calendar(w http.ResponseWriter, r *http.Request) {
	st, err := s.newState(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer st.picker.Dispose()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := calendarTemplate.Execute(w, newCalendarView(st)); err != nil {
		ctxlog.Logger(r.Context()).Error("failed to render calendar", "error", err)
	}
}

func (s *Server) grid(w http.ResponseWriter, r *http.Request) {
	st, err := s.newState(r)
	if err != nil {
		writeErrorMsg(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer st.picker.Dispose()
	writeResponse(r.Context(), w, newGridResponse(st))
}

func (s *Server) disabled(w http.ResponseWriter, r *http.Request) {
	var q disabledQuery
	if err := decodeQuery(r, &q); err != nil {
		writeErrorMsg(w, err.Error(), http.StatusBadRequest)
		return
	}
	cd := q.Date
	if cd.IsZero() {
		err := &queryError{param: "date", err: fmt.Errorf("not specified: %w", dates.ErrInvalidDate)}
		writeErrorMsg(w, err.Error(), http.StatusBadRequest)
		return
	}
	p := datepicker.New(s.pickerOpts...)
	defer p.Dispose()
	writeResponse(r.Context(), w, DisabledResponse{Date: cd, Disabled: p.IsDateDisabled(cd)})
}

// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"cloudeng.io/datepicker"
	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/tui"
	"cloudeng.io/datepicker/web"
	"cloudeng.io/errors"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

func runGrid(ctx context.Context, values any, _ []string) error {
	fv := values.(*gridFlags)
	_, sess, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()
	p, err := sess.newPicker(datepicker.WithInline(true))
	if err != nil {
		return err
	}
	defer p.Dispose()
	if err := showMonth(p, fv.Month); err != nil {
		return err
	}
	if fv.JSON {
		return json.MarshalWrite(os.Stdout, web.GridResponseFor(p), jsontext.Multiline(true))
	}
	renderGrid(os.Stdout, p, fv.Fill)
	return nil
}

// renderGrid writes a text rendering of the picker's grid. Today is
// marked with a *, the selected date is bracketed and disabled dates
// are marked with an x.
func renderGrid(w io.Writer, p *datepicker.Picker, fill bool) {
	const width = 28
	header := p.Header()
	pad := max(0, (width-len([]rune(header)))/2)
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", pad), header)
	for _, wd := range p.WeekdayLabels() {
		r := []rune(wd)
		if len(r) > 2 {
			r = r[:2]
		}
		fmt.Fprintf(w, " %2s ", string(r))
	}
	fmt.Fprintln(w)
	g := p.Grid()
	for _, week := range g.Weeks() {
		var line strings.Builder
		for _, d := range week {
			if !d.InViewedMonth && !fill {
				line.WriteString("    ")
				continue
			}
			prefix, suffix := " ", " "
			switch {
			case d.Selected:
				prefix, suffix = "[", "]"
			case d.Today:
				prefix = "*"
			}
			if d.Disabled && !d.Selected {
				suffix = "x"
			}
			fmt.Fprintf(&line, "%s%2d%s", prefix, d.DayOfMonth, suffix)
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
	fmt.Fprintln(w, p.DisplayValue())
}

func runCheck(ctx context.Context, values any, args []string) error {
	fv := values.(*checkFlags)
	_, sess, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()
	p, err := sess.newPicker(datepicker.WithInline(true))
	if err != nil {
		return err
	}
	defer p.Dispose()
	return check(os.Stdout, p, args)
}

// check reports whether each date may be selected, all dates are
// reported before any parse errors are returned.
func check(w io.Writer, p *datepicker.Picker, args []string) error {
	errs := &errors.M{}
	for _, arg := range args {
		cd, err := dates.ParseCalendarDate(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		status := "ok"
		if p.IsDateDisabled(cd) {
			status = "disabled"
		}
		fmt.Fprintf(w, "%v\t%v\n", cd, status)
	}
	return errs.Err()
}

func runPick(ctx context.Context, values any, _ []string) error {
	fv := values.(*pickFlags)
	ctx, sess, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()
	p, err := sess.newPicker()
	if err != nil {
		return err
	}
	defer p.Dispose()
	if err := showMonth(p, fv.Month); err != nil {
		return err
	}
	p.Open()
	model := tui.New(p, tui.WithQuitOnSelect(true))
	prog := tea.NewProgram(model, tea.WithContext(ctx), tea.WithMouseCellMotion())
	final, err := prog.Run()
	if err != nil {
		return err
	}
	if cd, ok := final.(tui.Model).Selected(); ok {
		fmt.Println(cd)
	}
	return nil
}

func runServe(ctx context.Context, values any, _ []string) error {
	ctx, done := signal.NotifyContext(ctx, os.Interrupt)
	defer done()
	fv := values.(*serveFlags)
	ctx, sess, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()
	opts, err := sess.cfg.Picker.Options(nil)
	if err != nil {
		return err
	}
	addr := sess.cfg.Server.Address
	if len(fv.Address) > 0 {
		addr = fv.Address
	}
	srv := web.NewServer(
		web.WithPickerOptions(opts...),
		web.WithLocaleNegotiation(fv.Negotiate),
		web.WithLogger(sess.logger.Logger),
	)
	return web.Serve(ctx, addr, srv.Handler())
}

// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command datepicker displays, queries and hosts date pickers. The picker
// is configured via a YAML file (see --config), environment variables and
// command line flags, in increasing order of precedence.
package main

import (
	"context"
	"fmt"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/datepicker"
	"cloudeng.io/datepicker/config"
	"cloudeng.io/datepicker/dates"
	"cloudeng.io/logging/ctxlog"
)

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	Config           string `subcmd:"config,,'YAML configuration file, see the config package for its format'"`
	Label            string `subcmd:"label,,label displayed alongside the picker"`
	Locale           string `subcmd:"locale,,'BCP 47 language tag, eg. en, fr-CA'"`
	Min              string `subcmd:"min,,earliest selectable date"`
	Max              string `subcmd:"max,,latest selectable date"`
	Disabled         string `subcmd:"disabled,,comma separated list of dates that may not be selected"`
	DisabledWeekdays string `subcmd:"disabled-weekdays,,'comma separated list of weekdays that may not be selected, eg. sat,sun'"`
	Value            string `subcmd:"value,,initially selected date"`
	cmdutil.LoggingFlags
}

type gridFlags struct {
	CommonFlags
	Month string `subcmd:"month,,'month to display, eg. 2024-02, defaults to the month of the selected date or today'"`
	Fill  bool   `subcmd:"fill,false,display the days of the adjacent months"`
	JSON  bool   `subcmd:"json,false,display the grid as JSON"`
}

type checkFlags struct {
	CommonFlags
}

type pickFlags struct {
	CommonFlags
	Month string `subcmd:"month,,'month to display initially, eg. 2024-02'"`
}

type serveFlags struct {
	CommonFlags
	Address   string `subcmd:"address,,'address to listen on, overrides the configuration file'"`
	Negotiate bool   `subcmd:"negotiate-locale,true,choose the locale for each request from its lang parameter or Accept-Language header"`
}

var cmdSet *subcmd.CommandSet

func init() {
	gridCmd := subcmd.NewCommand("grid",
		subcmd.MustRegisterFlagStruct(&gridFlags{}, nil, nil),
		runGrid, subcmd.ExactlyNumArguments(0))
	gridCmd.Document(`display the calendar grid for a month.`)

	checkCmd := subcmd.NewCommand("check",
		subcmd.MustRegisterFlagStruct(&checkFlags{}, nil, nil),
		runCheck, subcmd.AtLeastNArguments(1))
	checkCmd.Document(`report whether each of the supplied dates may be selected.`, "<date>...")

	pickCmd := subcmd.NewCommand("pick",
		subcmd.MustRegisterFlagStruct(&pickFlags{}, nil, nil),
		runPick, subcmd.ExactlyNumArguments(0))
	pickCmd.Document(`interactively pick a date in the terminal, the selected date is printed on exit.`)

	serveCmd := subcmd.NewCommand("serve",
		subcmd.MustRegisterFlagStruct(&serveFlags{}, nil, nil),
		runServe, subcmd.ExactlyNumArguments(0))
	serveCmd.Document(`serve an HTML calendar and JSON API over HTTP.`)

	cmdSet = subcmd.NewCommandSet(gridCmd, checkCmd, pickCmd, serveCmd)
	cmdSet.Document(`display, query and host date pickers.

Dates may be specified as 2006-01-02, 01/02/2006 or Jan-02-2006.`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}

// apply overrides the picker configuration with any flags that were set.
func (cf *CommonFlags) apply(p *config.Picker) error {
	if len(cf.Label) > 0 {
		p.Label = cf.Label
	}
	if len(cf.Locale) > 0 {
		p.Locale = cf.Locale
	}
	for _, f := range []struct {
		name string
		val  string
		dst  *dates.CalendarDate
	}{
		{"min", cf.Min, &p.Min},
		{"max", cf.Max, &p.Max},
		{"value", cf.Value, &p.Value},
	} {
		if len(f.val) == 0 {
			continue
		}
		if err := f.dst.Parse(f.val); err != nil {
			return fmt.Errorf("--%v: %w", f.name, err)
		}
	}
	if len(cf.Disabled) > 0 {
		if err := p.Disabled.Parse(cf.Disabled); err != nil {
			return fmt.Errorf("--disabled: %w", err)
		}
	}
	if len(cf.DisabledWeekdays) > 0 {
		p.DisabledWeekdays = strings.Split(cf.DisabledWeekdays, ",")
	}
	return nil
}

// session represents the configuration and logger shared by all commands.
type session struct {
	cfg    config.Config
	logger *cmdutil.Logger
}

func (s *session) Close() error {
	return s.logger.Close()
}

// setup loads the configuration, applies the command line flags and creates
// the logger. The logging flags are used unless a configuration file is
// specified. The returned context carries the logger.
func (cf *CommonFlags) setup(ctx context.Context) (context.Context, *session, error) {
	cfg, err := config.Load(ctx, cf.Config)
	if err != nil {
		return ctx, nil, err
	}
	if err := cf.apply(&cfg.Picker); err != nil {
		return ctx, nil, err
	}
	if len(cf.Config) == 0 {
		cfg.Logging = cf.LoggingConfig()
	}
	if err := cfg.Validate(); err != nil {
		return ctx, nil, err
	}
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.Context(ctx, logger.Logger), &session{cfg: cfg, logger: logger}, nil
}

func (s *session) newPicker(extra ...datepicker.Option) (*datepicker.Picker, error) {
	opts, err := s.cfg.Picker.Options(s.logger.Logger)
	if err != nil {
		return nil, err
	}
	return datepicker.New(append(opts, extra...)...), nil
}

func showMonth(p *datepicker.Picker, month string) error {
	if len(month) == 0 {
		return nil
	}
	ym, err := dates.ParseYearMonth(month)
	if err != nil {
		return fmt.Errorf("--month: %w", err)
	}
	p.ShowMonth(ym)
	return nil
}

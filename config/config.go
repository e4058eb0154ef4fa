// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package config provides the YAML configuration shared by the date
// picker commands. Configuration is read from a YAML file, strictly, and
// may then be overridden by environment variables:
//
//	DATEPICKER_LOCALE     picker.locale
//	DATEPICKER_INLINE     picker.inline
//	DATEPICKER_ADDRESS    server.address
//	DATEPICKER_LOG_LEVEL  logging.level
package config

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/datepicker"
	"cloudeng.io/datepicker/dates"
	"cloudeng.io/datepicker/locale"
	"cloudeng.io/errors"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Picker represents the configuration of a date picker.
type Picker struct {
	Label            string                 `yaml:"label" cmd:"label displayed alongside the picker"`
	Locale           string                 `yaml:"locale" cmd:"BCP 47 language tag used for month, weekday and message strings"`
	Inline           bool                   `yaml:"inline" cmd:"always display the calendar grid rather than a popover"`
	Min              dates.CalendarDate     `yaml:"min" cmd:"earliest date that may be selected"`
	Max              dates.CalendarDate     `yaml:"max" cmd:"latest date that may be selected"`
	Disabled         dates.CalendarDateList `yaml:"disabled" cmd:"dates that may not be selected"`
	DisabledWeekdays []string               `yaml:"disabled_weekdays" cmd:"weekdays that may not be selected, eg. sat, sun"`
	Value            dates.CalendarDate     `yaml:"value" cmd:"initially selected date"`
}

// Server represents the configuration of the HTTP host.
type Server struct {
	Address string `yaml:"address" validate:"required" cmd:"address to listen on"`
}

// Config represents the complete configuration.
type Config struct {
	Picker  Picker                `yaml:"picker"`
	Logging cmdutil.LoggingConfig `yaml:"logging"`
	Server  Server                `yaml:"server"`
}

// DefaultAddress is the address used by the HTTP host if none is configured.
const DefaultAddress = "localhost:8080"

// Default returns the configuration used when no file is specified.
func Default() Config {
	return Config{
		Logging: cmdutil.LoggingConfig{Format: "text"},
		Server:  Server{Address: DefaultAddress},
	}
}

// Load reads the configuration from the specified file, if filename is
// empty the default configuration is used. Environment variable overrides
// are applied and the result is validated.
func Load(ctx context.Context, filename string) (Config, error) {
	cfg := Default()
	if len(filename) > 0 {
		if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %v: %w", filename, err)
		}
	}
	return finish(cfg)
}

// Parse is like Load but reads the configuration from the supplied YAML.
func Parse(spec []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(spec)) == 0 {
		return finish(cfg)
	}
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	return finish(cfg)
}

func finish(cfg Config) (Config, error) {
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type environment struct {
	Locale   string `env:"DATEPICKER_LOCALE"`
	Inline   string `env:"DATEPICKER_INLINE"`
	Address  string `env:"DATEPICKER_ADDRESS"`
	LogLevel string `env:"DATEPICKER_LOG_LEVEL"`
}

func (c *Config) applyEnv() error {
	var ev environment
	if err := env.Parse(&ev); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	if len(ev.Locale) > 0 {
		c.Picker.Locale = ev.Locale
	}
	if len(ev.Address) > 0 {
		c.Server.Address = ev.Address
	}
	errs := &errors.M{}
	if len(ev.Inline) > 0 {
		inline, err := strconv.ParseBool(ev.Inline)
		if err != nil {
			errs.Append(fmt.Errorf("DATEPICKER_INLINE: %w", err))
		} else {
			c.Picker.Inline = inline
		}
	}
	if len(ev.LogLevel) > 0 {
		level, err := strconv.Atoi(ev.LogLevel)
		if err != nil {
			errs.Append(fmt.Errorf("DATEPICKER_LOG_LEVEL: %w", err))
		} else {
			c.Logging.Level = level
		}
	}
	return errs.Err()
}

// Constraints returns the selection constraints specified by the
// configuration.
func (p Picker) Constraints() (dates.Constraints, error) {
	var weekdays []time.Weekday
	if len(p.DisabledWeekdays) > 0 {
		var err error
		weekdays, err = dates.ParseWeekdays(strings.Join(p.DisabledWeekdays, ","))
		if err != nil {
			return dates.Constraints{}, err
		}
	}
	return dates.Constraints{
		Min:              p.Min,
		Max:              p.Max,
		Disabled:         p.Disabled,
		DisabledWeekdays: weekdays,
	}, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidationMapRules(map[string]string{
		"Level":  "min=0,max=3",
		"Format": "omitempty,oneof=text json",
	}, cmdutil.LoggingConfig{})
	return v
}

// fieldError converts a validation failure into an error that names the
// offending field using its YAML path, eg. logging.level.
func fieldError(fe validator.FieldError) error {
	_, name, _ := strings.Cut(fe.Namespace(), ".")
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%v: not specified", name)
	case "oneof":
		return fmt.Errorf("%v: %q is not one of: %v", name, fe.Value(), fe.Param())
	case "min", "max":
		return fmt.Errorf("%v: %v is out of range 0..3", name, fe.Value())
	}
	return fmt.Errorf("%v: failed %v validation", name, fe.Tag())
}

// Validate returns an error describing every problem with the
// configuration.
func (c Config) Validate() error {
	errs := &errors.M{}
	dc, err := c.Picker.Constraints()
	errs.Append(err)
	if err == nil {
		errs.Append(dc.Validate())
	}
	if !c.Picker.Value.IsZero() && !c.Picker.Value.Valid() {
		errs.Append(fmt.Errorf("invalid initial value: %v", c.Picker.Value))
	}
	if err := validate.Struct(c); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			errs.Append(err)
			return errs.Err()
		}
		for _, fe := range verrs {
			errs.Append(fieldError(fe))
		}
	}
	return errs.Err()
}

// Options returns the date picker options represented by the
// configuration.
func (p Picker) Options(logger *slog.Logger) ([]datepicker.Option, error) {
	dc, err := p.Constraints()
	if err != nil {
		return nil, err
	}
	l, err := locale.New(p.Locale)
	if err != nil {
		return nil, err
	}
	opts := []datepicker.Option{
		datepicker.WithLabel(p.Label),
		datepicker.WithInline(p.Inline),
		datepicker.WithConstraints(dc),
		datepicker.WithLocalizer(l),
	}
	if logger != nil {
		opts = append(opts, datepicker.WithLogger(logger))
	}
	if !p.Value.IsZero() {
		opts = append(opts, datepicker.WithValue(p.Value))
	}
	return opts, nil
}

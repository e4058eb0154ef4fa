// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package locale provides the localized strings displayed by a date picker:
// month headers, long form dates, weekday labels and the small set of
// user interface messages such as the placeholder shown when no date
// is selected.
package locale

import (
	"fmt"
	"time"

	"cloudeng.io/datepicker/dates"
	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
)

// Message identifies a localized user interface string.
type Message string

const (
	NoDateSelected Message = "no-date-selected"
	Today          Message = "today"
	PreviousMonth  Message = "previous-month"
	NextMonth      Message = "next-month"
	SelectDate     Message = "select-date"
)

type supported struct {
	tag        language.Tag
	translator func() locales.Translator
	messages   map[Message]string
}

var supportedLocales = []supported{
	{language.English, en.New, map[Message]string{
		NoDateSelected: "No date selected",
		Today:          "Today",
		PreviousMonth:  "Previous month",
		NextMonth:      "Next month",
		SelectDate:     "Select a date",
	}},
	{language.French, fr.New, map[Message]string{
		NoDateSelected: "Aucune date sélectionnée",
		Today:          "Aujourd'hui",
		PreviousMonth:  "Mois précédent",
		NextMonth:      "Mois suivant",
		SelectDate:     "Choisissez une date",
	}},
	{language.German, de.New, map[Message]string{
		NoDateSelected: "Kein Datum ausgewählt",
		Today:          "Heute",
		PreviousMonth:  "Vorheriger Monat",
		NextMonth:      "Nächster Monat",
		SelectDate:     "Datum auswählen",
	}},
	{language.Spanish, es.New, map[Message]string{
		NoDateSelected: "Ninguna fecha seleccionada",
		Today:          "Hoy",
		PreviousMonth:  "Mes anterior",
		NextMonth:      "Mes siguiente",
		SelectDate:     "Seleccione una fecha",
	}},
}

var matcher language.Matcher

func init() {
	tags := make([]language.Tag, len(supportedLocales))
	for i, s := range supportedLocales {
		tags[i] = s.tag
	}
	matcher = language.NewMatcher(tags)
}

// Supported returns the base language codes of the supported locales.
func Supported() []string {
	codes := make([]string, len(supportedLocales))
	for i, s := range supportedLocales {
		base, _ := s.tag.Base()
		codes[i] = base.String()
	}
	return codes
}

// Localizer provides localized strings for a single locale.
type Localizer struct {
	trans ut.Translator
	tag   language.Tag
}

// New returns a Localizer for the supported locale that best matches
// the requested BCP 47 language tags, for example "fr-CA" or
// "de-DE,en;q=0.5". English is used when nothing matches or when
// no locale is requested. An error is returned only if the messages
// for the chosen locale cannot be registered.
func New(requested ...string) (*Localizer, error) {
	_, idx := language.MatchStrings(matcher, requested...)
	s := supportedLocales[idx]
	fallback := supportedLocales[0].translator()
	chosen := s.translator()
	uni := ut.New(fallback, chosen)
	trans, _ := uni.GetTranslator(chosen.Locale())
	for key, text := range s.messages {
		if err := trans.Add(key, text, false); err != nil {
			return nil, fmt.Errorf("locale %v: %v: %w", chosen.Locale(), key, err)
		}
	}
	return &Localizer{trans: trans, tag: s.tag}, nil
}

// Must is like New but panics on error.
func Must(requested ...string) *Localizer {
	l, err := New(requested...)
	if err != nil {
		panic(err)
	}
	return l
}

// Locale returns the name of the locale in use, eg. "en" or "fr".
func (l *Localizer) Locale() string {
	return l.trans.Locale()
}

// Tag returns the language tag of the locale in use.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Message returns the localized text for the specified message. The
// message identifier itself is returned if it has no translation.
func (l *Localizer) Message(m Message) string {
	s, err := l.trans.T(m)
	if err != nil {
		return string(m)
	}
	return s
}

// MonthName returns the full name of the month.
func (l *Localizer) MonthName(m dates.Month) string {
	return l.trans.MonthWide(time.Month(m))
}

// MonthHeader returns the "Month YYYY" header displayed above a grid.
func (l *Localizer) MonthHeader(ym dates.YearMonth) string {
	return fmt.Sprintf("%s %d", l.MonthName(ym.Month), ym.Year)
}

// FormatDate returns the long form of the date, eg. "February 14, 2024".
func (l *Localizer) FormatDate(cd dates.CalendarDate) string {
	return l.trans.FmtDateLong(cd.Time(time.UTC))
}

// DisplayValue returns the long form of the date or the localized
// placeholder if the date is not set.
func (l *Localizer) DisplayValue(cd dates.CalendarDate) string {
	if cd.IsZero() {
		return l.Message(NoDateSelected)
	}
	return l.FormatDate(cd)
}

// WeekdayLabels returns the abbreviated weekday names starting
// with Sunday.
func (l *Localizer) WeekdayLabels() []string {
	labels := l.trans.WeekdaysShort()
	if len(labels) != 7 {
		labels = l.trans.WeekdaysAbbreviated()
	}
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

package commands

import (
	"strings"
	"time"

	"github.com/klauspost/lctime"

	"github.com/jakechorley/crewsync/pkg/session"
)

const fallbackLocale = "en_US"

// defaultRegions picks a region for bare language tags
var defaultRegions = map[string]string{
	"de": "DE",
	"en": "US",
	"es": "ES",
	"fr": "FR",
	"it": "IT",
	"ja": "JP",
	"nl": "NL",
	"pl": "PL",
	"pt": "BR",
	"ru": "RU",
	"uk": "UA",
	"zh": "CN",
}

// localeFor maps a BCP 47 language tag such as "en" or "de-AT" onto the
// POSIX locale name lctime expects, e.g. "en_US" or "de_AT"
func localeFor(tag string) string {
	parts := strings.Split(strings.ReplaceAll(tag, "_", "-"), "-")
	lang := strings.ToLower(parts[0])
	if lang == "" {
		return fallbackLocale
	}

	region := ""
	if last := parts[len(parts)-1]; len(parts) > 1 && len(last) == 2 {
		region = strings.ToUpper(last)
	}
	if region == "" {
		region = defaultRegions[lang]
	}
	if region == "" {
		return fallbackLocale
	}
	return lang + "_" + region
}

// dateFormatter renders instants in the user's language and timezone
type dateFormatter struct {
	locale string
	loc    *time.Location
}

func newDateFormatter(settings session.Settings) dateFormatter {
	loc, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return dateFormatter{locale: localeFor(settings.Language), loc: loc}
}

func (f dateFormatter) format(layout string, t time.Time) string {
	t = t.In(f.loc)
	s, err := lctime.StrftimeLoc(f.locale, layout, t)
	if err != nil {
		// Unknown locale
		s, _ = lctime.StrftimeLoc(fallbackLocale, layout, t)
	}
	return s
}

func (f dateFormatter) Date(t time.Time) string {
	return f.format("%a %d %b %Y", t)
}

// Day renders a calendar date stored as midnight UTC, ignoring the user's timezone
func (f dateFormatter) Day(t time.Time) string {
	return dateFormatter{locale: f.locale, loc: time.UTC}.Date(t)
}

func (f dateFormatter) Time(t time.Time) string {
	return f.format("%H:%M", t)
}

func (f dateFormatter) DateTime(t time.Time) string {
	return f.format("%a %d %b %Y %H:%M", t)
}

// TimeRange renders "Sat 15 Mar 2025 07:00-10:00", or both full instants when
// the range crosses midnight in the user's timezone
func (f dateFormatter) TimeRange(start, end time.Time) string {
	if f.Date(start) == f.Date(end) {
		return f.DateTime(start) + "-" + f.Time(end)
	}
	return f.DateTime(start) + " - " + f.DateTime(end)
}

// parseDay reads a YYYY-MM-DD date as midnight in loc
func parseDay(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, loc)
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

func staffingColor(assigned, required int) string {
	switch {
	case assigned >= required:
		return colorGreen
	case assigned*2 >= required:
		return colorYellow
	default:
		return colorRed
	}
}

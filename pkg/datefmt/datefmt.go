// Package datefmt renders upstream timestamps the way the dashboard shows them.
package datefmt

import (
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/id_ID"
)

// InvalidDate is rendered for input that cannot be parsed.
const InvalidDate = "Invalid Date"

const (
	LocaleID = "id-ID"
	LocaleEN = "en-US"
)

// Style selects how much of the date is spelled out.
type Style string

const (
	StyleShort  Style = "short"
	StyleMedium Style = "medium"
	StyleLong   Style = "long"
)

// Options controls locale and layout. The zero value renders an id-ID long date in UTC.
type Options struct {
	Locale   string
	Style    Style
	WithTime bool
	Location *time.Location
}

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse accepts ISO-8601 style timestamps. Zone-less values are read in loc.
func Parse(input string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	input = strings.TrimSpace(input)
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, input, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Format renders input according to opts. Only the empty string renders nothing;
// blank or unparseable input renders InvalidDate.
func Format(input string, opts Options) string {
	if input == "" {
		return ""
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	t, ok := Parse(input, loc)
	if !ok {
		return InvalidDate
	}
	return FormatTime(t.In(loc), opts)
}

// FormatTime renders an already parsed time.
func FormatTime(t time.Time, opts Options) string {
	style := opts.Style
	if style == "" {
		style = StyleLong
	}
	if opts.Location != nil {
		t = t.In(opts.Location)
	}

	lf := localeFormats[LocaleID]
	if f, ok := localeFormats[opts.Locale]; ok {
		lf = f
	}
	return lf.format(t, style, opts.WithTime)
}

// localeFormat pairs a CLDR translator with the words joining its date and time parts.
type localeFormat struct {
	tr         locales.Translator
	shortJoin  string
	longerJoin string
}

var localeFormats = map[string]localeFormat{
	LocaleID: {tr: id_ID.New(), shortJoin: ", ", longerJoin: " pukul "},
	LocaleEN: {tr: en_US.New(), shortJoin: ", ", longerJoin: " at "},
}

func (lf localeFormat) format(t time.Time, style Style, withTime bool) string {
	var date string
	switch style {
	case StyleShort:
		date = lf.tr.FmtDateShort(t)
	case StyleMedium:
		date = lf.tr.FmtDateMedium(t)
	default:
		date = lf.tr.FmtDateLong(t)
	}
	if !withTime {
		return date
	}
	if style == StyleShort {
		return date + lf.shortJoin + lf.tr.FmtTimeShort(t)
	}
	return date + lf.longerJoin + lf.tr.FmtTimeShort(t)
}

package datefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatEmptyRendersNothing(t *testing.T) {
	assert.Equal(t, "", Format("", Options{}))
	assert.Equal(t, "", Format("", Options{Locale: LocaleEN}))
}

func TestFormatBlankIsInvalid(t *testing.T) {
	assert.Equal(t, InvalidDate, Format("   ", Options{}))
	assert.Equal(t, InvalidDate, Format("\t", Options{Locale: LocaleEN}))
}

func TestFormatUnknownLocaleFallsBackToIndonesian(t *testing.T) {
	assert.Equal(t, "5 Maret 2024", Format("2024-03-05", Options{Locale: "fr-FR"}))
}

func TestFormatInvalidDate(t *testing.T) {
	assert.Equal(t, InvalidDate, Format("not-a-date", Options{}))
	assert.Equal(t, InvalidDate, Format("2024-13-45", Options{Locale: LocaleEN}))
}

func TestFormatIndonesian(t *testing.T) {
	input := "2024-03-05T14:07:09Z"

	assert.Equal(t, "5 Maret 2024", Format(input, Options{}))
	assert.Equal(t, "5 Mar 2024", Format(input, Options{Style: StyleMedium}))
	assert.Equal(t, "05/03/24", Format(input, Options{Style: StyleShort}))
	assert.Equal(t, "5 Maret 2024 pukul 14.07", Format(input, Options{WithTime: true}))
	assert.Equal(t, "05/03/24, 14.07", Format(input, Options{Style: StyleShort, WithTime: true}))
}

func TestFormatEnglish(t *testing.T) {
	input := "2024-03-05T14:07:09Z"
	opts := Options{Locale: LocaleEN}

	assert.Equal(t, "March 5, 2024", Format(input, opts))
	opts.Style = StyleMedium
	assert.Equal(t, "Mar 5, 2024", Format(input, opts))
	opts.Style = StyleShort
	assert.Equal(t, "3/5/24", Format(input, opts))
	opts.Style = StyleLong
	opts.WithTime = true
	assert.Equal(t, "March 5, 2024 at 2:07 PM", Format(input, opts))
}

func TestFormatConvertsToLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	got := Format("2024-12-31T20:30:00Z", Options{WithTime: true, Location: jakarta})

	assert.Equal(t, "1 Januari 2025 pukul 03.30", got)
}

func TestParseAcceptsCommonLayouts(t *testing.T) {
	for _, input := range []string{
		"2024-03-05",
		"2024-03-05 10:00:00",
		"2024-03-05T10:00:00",
		"2024-03-05T10:00:00.123Z",
		"2024-03-05T10:00:00+07:00",
	} {
		_, ok := Parse(input, nil)
		assert.True(t, ok, input)
	}
}

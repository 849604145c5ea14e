package format

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"

	"github.com/matzehuels/chartaxis/pkg/errors"
)

// DefaultLocale is used when no locale is configured.
var DefaultLocale = language.English

// ParseLocale parses a BCP 47 tag. The empty string yields [DefaultLocale].
// Underscores are accepted in place of hyphens (en_US).
func ParseLocale(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLocale, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, errors.Wrap(errors.ErrCodeInvalidStyle, err, "invalid locale %q", s)
	}
	return tag, nil
}

// calendarNames holds the localized words a date pattern can print.
type calendarNames struct {
	months      [12]string
	shortMonths [12]string
	days        [7]string
	shortDays   [7]string
	am, pm      string
}

// calendarLocales lists the monday locales in matcher order. English comes
// first so it wins when nothing matches.
var calendarLocales, calendarMatcher = newCalendarMatcher()

func newCalendarMatcher() ([]monday.Locale, language.Matcher) {
	locales := []monday.Locale{monday.LocaleEnUS}
	tags := []language.Tag{language.AmericanEnglish}
	for _, l := range monday.ListLocales() {
		if l == monday.LocaleEnUS {
			continue
		}
		tag, err := language.Parse(strings.ReplaceAll(string(l), "_", "-"))
		if err != nil {
			continue
		}
		locales = append(locales, l)
		tags = append(tags, tag)
	}
	return locales, language.NewMatcher(tags)
}

// calendarFor returns the month and day names of the supported locale
// closest to tag.
func calendarFor(tag language.Tag) *calendarNames {
	_, i, _ := calendarMatcher.Match(tag)
	return namesFor(calendarLocales[i])
}

func namesFor(l monday.Locale) *calendarNames {
	var c calendarNames
	for m := 0; m < 12; m++ {
		t := time.Date(2001, time.Month(m+1), 1, 0, 0, 0, 0, time.UTC)
		c.months[m] = monday.Format(t, "January", l)
		c.shortMonths[m] = monday.Format(t, "Jan", l)
	}
	// 2001-01-07 is a Sunday.
	for d := 0; d < 7; d++ {
		t := time.Date(2001, 1, 7+d, 0, 0, 0, 0, time.UTC)
		c.days[d] = monday.Format(t, "Monday", l)
		c.shortDays[d] = monday.Format(t, "Mon", l)
	}
	c.am = monday.Format(time.Date(2001, 1, 1, 9, 0, 0, 0, time.UTC), "PM", l)
	c.pm = monday.Format(time.Date(2001, 1, 1, 21, 0, 0, 0, time.UTC), "PM", l)
	return &c
}

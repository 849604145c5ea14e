package format

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/matzehuels/chartaxis/pkg/errors"
)

// Date formats instant tick labels with a letter pattern.
//
// Pattern letters, repeated to choose a width:
//
//	y     year (yy: two digits)
//	M     month (M, MM numeric; MMM short name; MMMM full name)
//	d     day of month
//	D     day of year
//	E     weekday (EEE short name; EEEE full name)
//	H     hour 0-23
//	h     hour 1-12
//	m     minute
//	s     second
//	S     millisecond
//	a     AM/PM marker
//	z     zone abbreviation
//	Z     zone offset (-0700)
//
// Text in single quotes is copied verbatim and '' is a literal quote. Other
// ASCII letters are rejected; everything else is copied as is.
type Date struct {
	pattern string
	loc     *time.Location
	names   *calendarNames
	writers []dateWriter
}

type dateWriter func(*strings.Builder, time.Time, *calendarNames)

// NewDate compiles pattern for tag and loc. A nil loc means UTC.
func NewDate(pattern string, tag language.Tag, loc *time.Location) (*Date, error) {
	if pattern == "" {
		return nil, errors.New(errors.ErrCodeMissingFormatPattern, "date pattern is empty")
	}
	if loc == nil {
		loc = time.UTC
	}
	writers, err := compileDatePattern(pattern)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "date_pattern %q", pattern)
	}
	return &Date{
		pattern: pattern,
		loc:     loc,
		names:   calendarFor(tag),
		writers: writers,
	}, nil
}

// Pattern returns the pattern the formatter was compiled from.
func (df *Date) Pattern() string { return df.pattern }

// FormatInstant implements axis.DateFormatter.
func (df *Date) FormatInstant(ms int64) string {
	return df.Format(time.UnixMilli(ms))
}

// Format renders t in the formatter's time zone.
func (df *Date) Format(t time.Time) string {
	t = t.In(df.loc)
	var str strings.Builder
	for _, w := range df.writers {
		w(&str, t, df.names)
	}
	return str.String()
}

func compileDatePattern(pattern string) ([]dateWriter, error) {
	var (
		writers []dateWriter
		rs      = []rune(pattern)
	)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case r == '\'':
			lit, n, err := quotedLiteral(rs[i:])
			if err != nil {
				return nil, err
			}
			writers = append(writers, writeLiteral(lit))
			i += n
		case isASCIILetter(r):
			j := i
			for j < len(rs) && rs[j] == r {
				j++
			}
			w, err := fieldWriter(r, j-i)
			if err != nil {
				return nil, err
			}
			writers = append(writers, w)
			i = j
		default:
			writers = append(writers, writeLiteral(string(r)))
			i++
		}
	}
	return writers, nil
}

// quotedLiteral reads a quoted section starting at rs[0] == '\'' and returns
// its text and the number of runes consumed.
func quotedLiteral(rs []rune) (string, int, error) {
	if len(rs) > 1 && rs[1] == '\'' {
		return "'", 2, nil
	}
	var b strings.Builder
	for i := 1; i < len(rs); i++ {
		if rs[i] != '\'' {
			b.WriteRune(rs[i])
			continue
		}
		if i+1 < len(rs) && rs[i+1] == '\'' {
			b.WriteRune('\'')
			i++
			continue
		}
		return b.String(), i + 1, nil
	}
	return "", 0, errors.New(errors.ErrCodeInvalidFormat, "unterminated quote")
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func fieldWriter(letter rune, width int) (dateWriter, error) {
	switch letter {
	case 'y':
		if width == 2 {
			return writeNumber(func(t time.Time) int { return t.Year() % 100 }, 2), nil
		}
		return writeNumber(time.Time.Year, width), nil
	case 'M':
		switch {
		case width >= 4:
			return func(w *strings.Builder, t time.Time, c *calendarNames) {
				w.WriteString(c.months[t.Month()-1])
			}, nil
		case width == 3:
			return func(w *strings.Builder, t time.Time, c *calendarNames) {
				w.WriteString(c.shortMonths[t.Month()-1])
			}, nil
		}
		return writeNumber(func(t time.Time) int { return int(t.Month()) }, width), nil
	case 'd':
		return writeNumber(time.Time.Day, width), nil
	case 'D':
		return writeNumber(time.Time.YearDay, width), nil
	case 'E':
		if width >= 4 {
			return func(w *strings.Builder, t time.Time, c *calendarNames) {
				w.WriteString(c.days[t.Weekday()])
			}, nil
		}
		return func(w *strings.Builder, t time.Time, c *calendarNames) {
			w.WriteString(c.shortDays[t.Weekday()])
		}, nil
	case 'H':
		return writeNumber(time.Time.Hour, width), nil
	case 'h':
		return writeNumber(func(t time.Time) int {
			if h := t.Hour() % 12; h != 0 {
				return h
			}
			return 12
		}, width), nil
	case 'm':
		return writeNumber(time.Time.Minute, width), nil
	case 's':
		return writeNumber(time.Time.Second, width), nil
	case 'S':
		return writeNumber(func(t time.Time) int { return t.Nanosecond() / int(time.Millisecond) }, width), nil
	case 'a':
		return func(w *strings.Builder, t time.Time, c *calendarNames) {
			if t.Hour() < 12 {
				w.WriteString(c.am)
			} else {
				w.WriteString(c.pm)
			}
		}, nil
	case 'z':
		return func(w *strings.Builder, t time.Time, _ *calendarNames) {
			w.WriteString(t.Format("MST"))
		}, nil
	case 'Z':
		return func(w *strings.Builder, t time.Time, _ *calendarNames) {
			w.WriteString(t.Format("-0700"))
		}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown pattern letter %q", letter)
}

func writeNumber(get func(time.Time) int, width int) dateWriter {
	return func(w *strings.Builder, t time.Time, _ *calendarNames) {
		v := get(t)
		if v < 0 {
			w.WriteByte('-')
			v = -v
		}
		s := strconv.Itoa(v)
		for n := len(s); n < width; n++ {
			w.WriteByte('0')
		}
		w.WriteString(s)
	}
}

func writeLiteral(s string) dateWriter {
	return func(w *strings.Builder, _ time.Time, _ *calendarNames) {
		w.WriteString(s)
	}
}

package format

import (
	"time"

	"golang.org/x/text/language"

	"github.com/matzehuels/chartaxis/pkg/axis"
)

// Settings gathers everything needed to build the formatters of one axis.
type Settings struct {
	Locale      language.Tag
	Location    *time.Location
	DatePattern string
	Number      NumberOptions
}

// NewFormatters builds the formatters for an axis. The date formatter is
// only built when a pattern is set; without one the calculator reports the
// missing pattern itself for instant axes.
func NewFormatters(s Settings) (axis.Formatters, error) {
	var out axis.Formatters

	nf, err := NewNumber(s.Locale, s.Number)
	if err != nil {
		return axis.Formatters{}, err
	}
	out.Number = nf

	if s.DatePattern != "" {
		df, err := NewDate(s.DatePattern, s.Locale, s.Location)
		if err != nil {
			return axis.Formatters{}, err
		}
		out.Date = df
	}
	return out, nil
}

// Package style holds the chart style settings read by the axis tick
// calculator and its formatters.
//
// A [Style] is a small value type. It is usually decoded from the [style]
// table of a chart file, completed with [Style.SetDefaults] and checked with
// [Style.Validate] before use:
//
//	[style]
//	tick_space_percentage = 0.9
//	date_pattern = "MMM yyyy"
//	locale = "de-CH"
//	time_zone = "Europe/Zurich"
//	decimal_pattern = "#,##0.0"
package style

import (
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/matzehuels/chartaxis/pkg/axis"
	"github.com/matzehuels/chartaxis/pkg/errors"
	"github.com/matzehuels/chartaxis/pkg/format"
)

const (
	// DefaultTickSpacePercentage leaves 2.5% of the axis empty at each end.
	DefaultTickSpacePercentage = 0.95

	// DefaultLocale is the locale used when none is configured.
	DefaultLocale = "en"

	// DefaultTimeZone is the zone used when none is configured.
	DefaultTimeZone = "UTC"
)

// Style is the read-only configuration consumed by a tick computation.
type Style struct {
	TickSpacePercentage float64 `json:"tick_space_percentage,omitempty" toml:"tick_space_percentage"`
	YAxisLogarithmic    bool    `json:"y_axis_logarithmic,omitempty" toml:"y_axis_logarithmic"`
	DatePattern         string  `json:"date_pattern,omitempty" toml:"date_pattern"`
	Locale              string  `json:"locale,omitempty" toml:"locale"`
	TimeZone            string  `json:"time_zone,omitempty" toml:"time_zone"`

	format.NumberOptions
}

// Default returns a Style with every default applied.
func Default() Style {
	var s Style
	s.SetDefaults()
	return s
}

// SetDefaults fills zero fields with their defaults.
func (s *Style) SetDefaults() {
	if s.TickSpacePercentage == 0 {
		s.TickSpacePercentage = DefaultTickSpacePercentage
	}
	if s.Locale == "" {
		s.Locale = DefaultLocale
	}
	if s.TimeZone == "" {
		s.TimeZone = DefaultTimeZone
	}
}

// Validate checks every field that has a constrained range. Decimal and date
// patterns are checked when the formatters are built.
func (s Style) Validate() error {
	if err := errors.ValidateTickSpacePercentage(s.TickSpacePercentage); err != nil {
		return err
	}
	if err := errors.ValidateLocale(s.Locale); err != nil {
		return err
	}
	return errors.ValidateTimeZone(s.TimeZone)
}

// Tag returns the parsed locale.
func (s Style) Tag() (language.Tag, error) {
	return format.ParseLocale(s.Locale)
}

// Location returns the configured time zone. An empty zone is UTC.
func (s Style) Location() (*time.Location, error) {
	if s.TimeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidStyle, err, "invalid time_zone %q", s.TimeZone)
	}
	return loc, nil
}

// AxisConfig returns the calculator view of the style.
func (s Style) AxisConfig() axis.Config {
	return axis.Config{
		TickSpacePercentage: s.TickSpacePercentage,
		YAxisLogarithmic:    s.YAxisLogarithmic,
		DatePattern:         s.DatePattern,
	}
}

// Formatters builds the number and date formatters for the style.
func (s Style) Formatters() (axis.Formatters, error) {
	tag, err := s.Tag()
	if err != nil {
		return axis.Formatters{}, err
	}
	loc, err := s.Location()
	if err != nil {
		return axis.Formatters{}, err
	}
	return format.NewFormatters(format.Settings{
		Locale:      tag,
		Location:    loc,
		DatePattern: s.DatePattern,
		Number:      s.NumberOptions,
	})
}

// Decode reads a TOML style document. Unknown keys are rejected so that a
// misspelt key does not silently fall back to a default.
func Decode(r io.Reader) (Style, error) {
	var s Style
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Style{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "decode style")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Style{}, errors.New(errors.ErrCodeInvalidStyle, "unknown style key %q", undecoded[0].String())
	}
	return s, nil
}

// LoadFile reads, defaults and validates a TOML style file.
func LoadFile(path string) (Style, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Style{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "style file %s", path)
		}
		return Style{}, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return Style{}, err
	}
	s.SetDefaults()
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

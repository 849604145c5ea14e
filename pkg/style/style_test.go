package style

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/chartaxis/pkg/axis"
	"github.com/matzehuels/chartaxis/pkg/errors"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.TickSpacePercentage != DefaultTickSpacePercentage {
		t.Errorf("TickSpacePercentage = %v, want %v", s.TickSpacePercentage, DefaultTickSpacePercentage)
	}
	if s.Locale != "en" || s.TimeZone != "UTC" {
		t.Errorf("Locale/TimeZone = %q/%q", s.Locale, s.TimeZone)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestSetDefaultsKeepsValues(t *testing.T) {
	s := Style{TickSpacePercentage: 0.5, Locale: "fr", TimeZone: "Local"}
	s.SetDefaults()
	if s.TickSpacePercentage != 0.5 || s.Locale != "fr" || s.TimeZone != "Local" {
		t.Errorf("SetDefaults() overwrote values: %+v", s)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		code  errors.Code
	}{
		{"percentage", Style{TickSpacePercentage: 2}, errors.ErrCodeInvalidStyle},
		{"locale", Style{TickSpacePercentage: 1, Locale: "not a locale!"}, errors.ErrCodeInvalidStyle},
		{"zone", Style{TickSpacePercentage: 1, TimeZone: "Nowhere/Else"}, errors.ErrCodeInvalidStyle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.style.Validate(); !errors.Is(err, tt.code) {
				t.Errorf("Validate() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	doc := `
tick_space_percentage = 0.8
y_axis_logarithmic = true
date_pattern = "MMM yyyy"
locale = "de"
decimal_pattern = "#,##0.0"
y_axis_decimal_pattern = "0.00"
`
	s, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if s.TickSpacePercentage != 0.8 || !s.YAxisLogarithmic || s.DatePattern != "MMM yyyy" || s.Locale != "de" {
		t.Errorf("Decode() = %+v", s)
	}
	if s.DecimalPattern != "#,##0.0" || s.YAxisDecimalPattern != "0.00" {
		t.Errorf("number options = %+v", s.NumberOptions)
	}

	cfg := s.AxisConfig()
	want := axis.Config{TickSpacePercentage: 0.8, YAxisLogarithmic: true, DatePattern: "MMM yyyy"}
	if cfg != want {
		t.Errorf("AxisConfig() = %+v, want %+v", cfg, want)
	}
}

func TestDecodeUnknownKey(t *testing.T) {
	_, err := Decode(strings.NewReader(`tick_spcae_percentage = 0.8`))
	if !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Fatalf("Decode() error = %v, want INVALID_STYLE", err)
	}
	if !strings.Contains(err.Error(), "tick_spcae_percentage") {
		t.Errorf("error %q should name the key", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.toml")
	if err := os.WriteFile(path, []byte("date_pattern = \"yyyy\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if s.DatePattern != "yyyy" || s.TickSpacePercentage != DefaultTickSpacePercentage {
		t.Errorf("LoadFile() = %+v", s)
	}

	_, err = LoadFile(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadFile(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestFormatters(t *testing.T) {
	s := Default()
	s.DatePattern = "yyyy"
	f, err := s.Formatters()
	if err != nil {
		t.Fatalf("Formatters() error = %v", err)
	}
	if f.Number == nil || f.Date == nil {
		t.Errorf("Formatters() = %+v", f)
	}
	if got := f.Date.FormatInstant(0); got != "1970" {
		t.Errorf("FormatInstant(0) = %q", got)
	}

	s.TimeZone = "Nowhere/Else"
	if _, err := s.Formatters(); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("Formatters() error = %v, want INVALID_STYLE", err)
	}
}

package format

import (
	"math"
	"testing"

	"golang.org/x/text/language"

	"github.com/matzehuels/chartaxis/pkg/axis"
	"github.com/matzehuels/chartaxis/pkg/errors"
)

func TestNumberDerivedPattern(t *testing.T) {
	nf, err := NewNumber(language.English, NumberOptions{})
	if err != nil {
		t.Fatalf("NewNumber() error = %v", err)
	}

	tests := []struct {
		name     string
		v        float64
		min, max float64
		want     string
	}{
		{"tens range integers", 3, 0, 10, "3"},
		{"unit range one digit", 0.5, 0, 1, "0.5"},
		{"unit range pads", 1, 0, 1, "1.0"},
		{"hundredths range", 0.025, 0, 0.05, "0.025"},
		{"thousands grouped", 1234, 0, 5000, "1,234"},
		{"negative", -1234, -5000, 0, "-1,234"},
		{"empty range", 7, 7, 7, "7.0"},
		{"tens range keeps fraction", 2.5, 0, 10, "2.5"},
		{"thousands keeps fraction", 1250.5, 0, 1000, "1,250.5"},
		{"unit range extra digits", 1.01, 1, 3, "1.01"},
		{"float noise trimmed", 0.1 + 0.2, 0, 1, "0.3"},
		{"large range scientific", 250000, 0, 1e6, "2.5E5"},
		{"tiny range scientific", 0.000012, 0, 0.00005, "1.2E-5"},
		{"scientific rounds mantissa", 123456, 0, 1e6, "1.235E5"},
		{"scientific zero", 0, 0, 1e6, "0E0"},
		{"not a number", math.NaN(), 0, 1, "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nf.FormatNumber(tt.v, tt.min, tt.max, axis.Horizontal); got != tt.want {
				t.Errorf("FormatNumber(%v, %v, %v) = %q, want %q", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestNumberSharedStyleOnOneAxis(t *testing.T) {
	nf, err := NewNumber(language.English, NumberOptions{})
	if err != nil {
		t.Fatalf("NewNumber() error = %v", err)
	}
	var got []string
	for _, v := range []float64{0, 0.5, 1, 1.5} {
		got = append(got, nf.FormatNumber(v, 0, 1.5, axis.Horizontal))
	}
	want := []string{"0.0", "0.5", "1.0", "1.5"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("labels = %v, want %v", got, want)
			break
		}
	}
}

func TestNumberDistinctCategoriesKeepDistinctLabels(t *testing.T) {
	nf, err := NewNumber(language.English, NumberOptions{})
	if err != nil {
		t.Fatalf("NewNumber() error = %v", err)
	}

	tests := []struct {
		min, max float64
		values   []float64
	}{
		{1, 3, []float64{1.0, 1.01, 2, 3}},
		{0, 10, []float64{2, 2.5, 7.5, 8}},
		{0, 1000, []float64{1250, 1250.5, 1251}},
		{0, 0.5, []float64{0.1, 0.1001, 0.5}},
	}
	for _, tt := range tests {
		seen := make(map[string]float64)
		for _, v := range tt.values {
			label := nf.FormatNumber(v, tt.min, tt.max, axis.Horizontal)
			if prev, ok := seen[label]; ok {
				t.Errorf("range (%v, %v): %v and %v both labelled %q", tt.min, tt.max, prev, v, label)
			}
			seen[label] = v
		}
	}
}

func TestNumberExplicitPatterns(t *testing.T) {
	nf, err := NewNumber(language.English, NumberOptions{
		DecimalPattern:      "0.000",
		XAxisDecimalPattern: "0.0",
	})
	if err != nil {
		t.Fatalf("NewNumber() error = %v", err)
	}
	if got := nf.FormatNumber(1, 0, 100, axis.Horizontal); got != "1.0" {
		t.Errorf("horizontal = %q, want %q", got, "1.0")
	}
	if got := nf.FormatNumber(1, 0, 100, axis.Vertical); got != "1.000" {
		t.Errorf("vertical = %q, want %q", got, "1.000")
	}

	tests := []struct {
		pattern string
		v       float64
		want    string
	}{
		{"#,##0.00", 1234.5, "1,234.50"},
		{"###0.##", 1234.5, "1234.5"},
		{"0.##", 2, "2"},
		{"00", 5, "05"},
		{"0.00E0", 31415.9, "3.14E4"},
	}
	for _, tt := range tests {
		nf, err := NewNumber(language.English, NumberOptions{YAxisDecimalPattern: tt.pattern})
		if err != nil {
			t.Errorf("NewNumber(%q) error = %v", tt.pattern, err)
			continue
		}
		if got := nf.FormatNumber(tt.v, 0, 1, axis.Vertical); got != tt.want {
			t.Errorf("%s: FormatNumber(%v) = %q, want %q", tt.pattern, tt.v, got, tt.want)
		}
	}
}

func TestNumberLocale(t *testing.T) {
	nf, err := NewNumber(language.German, NumberOptions{DecimalPattern: "#,##0.00"})
	if err != nil {
		t.Fatalf("NewNumber() error = %v", err)
	}
	if got := nf.FormatNumber(1234.5, 0, 1, axis.Horizontal); got != "1.234,50" {
		t.Errorf("FormatNumber() = %q, want %q", got, "1.234,50")
	}
}

func TestNumberInvalidPattern(t *testing.T) {
	for _, p := range []string{".00", "0.0x", "0.0E", "0.0E1", "a"} {
		_, err := NewNumber(language.English, NumberOptions{DecimalPattern: p})
		if !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("NewNumber(%q) error = %v, want INVALID_FORMAT", p, err)
		}
	}
}

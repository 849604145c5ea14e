package errors

import (
	"math"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/language"
)

// ValidateTickSpacePercentage checks that the tick band fraction lies in (0, 1].
func ValidateTickSpacePercentage(p float64) error {
	if math.IsNaN(p) || p <= 0 || p > 1 {
		return New(ErrCodeInvalidStyle, "tick_space_percentage must be in (0, 1], got %v", p)
	}
	return nil
}

// ValidateLocale checks that tag is a well-formed BCP 47 language tag.
// The empty string is accepted and means the default locale.
func ValidateLocale(tag string) error {
	if tag == "" {
		return nil
	}
	if _, err := language.Parse(tag); err != nil {
		return Wrap(ErrCodeInvalidStyle, err, "invalid locale %q", tag)
	}
	return nil
}

// ValidateTimeZone checks that zone names a location known to the time
// zone database. The empty string is accepted and means UTC.
func ValidateTimeZone(zone string) error {
	if zone == "" {
		return nil
	}
	if _, err := time.LoadLocation(zone); err != nil {
		return Wrap(ErrCodeInvalidStyle, err, "invalid time_zone %q", zone)
	}
	return nil
}

// ValidateWorkingSpace checks that a pixel extent is a positive, finite number.
func ValidateWorkingSpace(px float64) error {
	if math.IsNaN(px) || math.IsInf(px, 0) || px <= 0 {
		return New(ErrCodeInvalidInput, "working space must be a positive number of pixels, got %v", px)
	}
	return nil
}

// chartExtensions lists the file extensions a chart or style file may use.
var chartExtensions = map[string]bool{
	".toml": true,
	".json": true,
}

// ValidatePath validates a chart or style file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Extension must be .toml or .json
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !chartExtensions[ext] {
		return New(ErrCodeInvalidPath, "unsupported file extension %q (must be .toml or .json)", ext)
	}

	return nil
}

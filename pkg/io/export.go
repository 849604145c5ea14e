package io

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chartaxis/pkg/axis"
	"github.com/matzehuels/chartaxis/pkg/errors"
)

// Format constants for tick exports.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatCSV  = "csv"
)

// Formats lists the supported export formats in display order.
var Formats = []string{FormatJSON, FormatTOML, FormatCSV}

// FormatFor returns the export format implied by a file extension.
func FormatFor(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, f := range Formats {
		if ext == f {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot tell export format of %s (must be one of: %s)", path, strings.Join(Formats, ", "))
}

// Write encodes ticks in the named format and writes them to w.
func Write(t axis.Ticks, format string, w io.Writer) error {
	switch format {
	case FormatJSON:
		return WriteJSON(t, w)
	case FormatTOML:
		return WriteTOML(t, w)
	case FormatCSV:
		return WriteCSV(t, w)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(Formats, ", "))
}

// WriteJSON encodes ticks as indented JSON and writes them to w.
func WriteJSON(t axis.Ticks, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(nonNil(t)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes ticks as a TOML document and writes them to w.
func WriteTOML(t axis.Ticks, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(nonNil(t)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteCSV writes one record per tick, preceded by a header row.
func WriteCSV(t axis.Ticks, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "label", "location"}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	for i, label := range t.Labels {
		rec := []string{
			strconv.Itoa(i),
			label,
			strconv.FormatFloat(t.Locations[i], 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes ticks to a file at path in the format named by its extension.
func Export(t axis.Ticks, path string) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(t, format, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// nonNil keeps empty tick lists encoded as [] instead of null.
func nonNil(t axis.Ticks) axis.Ticks {
	if t.Labels == nil {
		t.Labels = []string{}
	}
	if t.Locations == nil {
		t.Locations = []float64{}
	}
	return t
}

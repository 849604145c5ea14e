package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chartaxis/pkg/axis"
	"github.com/matzehuels/chartaxis/pkg/errors"
)

func sampleTicks() axis.Ticks {
	return axis.Ticks{
		Labels:    []string{"A", "B, C", "D"},
		Locations: []float64{50, 150, 250.5},
		TickSpace: 300,
		Step:      100,
		Max:       9,
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(sampleTicks(), &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var got axis.Ticks
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !slices.Equal(got.Labels, sampleTicks().Labels) || got.TickSpace != 300 {
		t.Errorf("WriteJSON() round trip = %+v", got)
	}
	if !strings.Contains(buf.String(), "\n  \"labels\"") {
		t.Errorf("WriteJSON() should indent output:\n%s", buf.String())
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(axis.Ticks{}, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if strings.Contains(buf.String(), "null") {
		t.Errorf("empty ticks should encode as empty arrays:\n%s", buf.String())
	}
}

func TestWriteTOML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTOML(sampleTicks(), &buf); err != nil {
		t.Fatalf("WriteTOML() error = %v", err)
	}

	var got axis.Ticks
	if _, err := toml.Decode(buf.String(), &got); err != nil {
		t.Fatalf("output is not valid TOML: %v\n%s", err, buf.String())
	}
	if !slices.Equal(got.Locations, sampleTicks().Locations) {
		t.Errorf("WriteTOML() locations = %v", got.Locations)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(sampleTicks(), &buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	want := "index,label,location\n0,A,50\n1,\"B, C\",150\n2,D,250.5\n"
	if buf.String() != want {
		t.Errorf("WriteCSV() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(sampleTicks(), "svg", &bytes.Buffer{})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Write(svg) error = %v, want INVALID_FORMAT", err)
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"ticks.json", FormatJSON, false},
		{"out/ticks.TOML", FormatTOML, false},
		{"ticks.csv", FormatCSV, false},
		{"ticks.svg", "", true},
		{"ticks", "", true},
	}

	for _, tt := range tests {
		got, err := FormatFor(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFor(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFor(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticks.csv")
	if err := Export(sampleTicks(), path); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "index,label,location\n") {
		t.Errorf("Export() wrote %q", data)
	}
}

package chart

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chartaxis/pkg/axis"
	"github.com/matzehuels/chartaxis/pkg/category"
	"github.com/matzehuels/chartaxis/pkg/errors"
	"github.com/matzehuels/chartaxis/pkg/style"
)

// Encoding names a chart file syntax.
type Encoding string

const (
	EncodingTOML Encoding = "toml"
	EncodingJSON Encoding = "json"
)

// Document is the on-disk form of a chart. Categories stay untyped until
// the axis type is known.
type Document struct {
	Title        string           `json:"title,omitempty" toml:"title"`
	Axis         string           `json:"axis,omitempty" toml:"axis"`
	Direction    string           `json:"direction,omitempty" toml:"direction"`
	WorkingSpace float64          `json:"working_space,omitempty" toml:"working_space"`
	Min          *float64         `json:"min,omitempty" toml:"min"`
	Max          *float64         `json:"max,omitempty" toml:"max"`
	Style        style.Style      `json:"style" toml:"style"`
	Series       []SeriesDocument `json:"series" toml:"series"`
}

// SeriesDocument is the on-disk form of a series.
type SeriesDocument struct {
	Name       string    `json:"name" toml:"name"`
	Categories []any     `json:"categories" toml:"categories"`
	Values     []float64 `json:"values,omitempty" toml:"values"`
}

// EncodingFor picks the encoding from a file extension.
func EncodingFor(path string) (Encoding, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return EncodingTOML, nil
	case ".json":
		return EncodingJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidPath, "cannot tell chart encoding of %s (use .toml or .json)", path)
}

// Load reads a chart file. The encoding follows the extension.
func Load(path string) (*Chart, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	enc, err := EncodingFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return Decode(bytes.NewReader(data), enc)
}

// Decode reads a chart document from r and builds the chart.
func Decode(r io.Reader, enc Encoding) (*Chart, error) {
	var doc Document
	switch enc {
	case EncodingTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode chart")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "unknown chart key %q", undecoded[0].String())
		}
	case EncodingJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode chart")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported chart encoding %q", enc)
	}
	return doc.Build()
}

// Build converts the document into a chart, typing every category with the
// document's axis type.
func (d Document) Build() (*Chart, error) {
	kind, err := category.ParseKind(d.Axis)
	if err != nil {
		return nil, err
	}
	dir, err := axis.ParseDirection(d.Direction)
	if err != nil {
		return nil, err
	}

	c := New(kind)
	c.Title = d.Title
	c.Direction = dir
	c.Min, c.Max = d.Min, d.Max
	if d.WorkingSpace != 0 {
		c.WorkingSpace = d.WorkingSpace
	}
	c.Style = d.Style
	c.Style.SetDefaults()

	for i, s := range d.Series {
		name := s.Name
		if name == "" {
			name = "series " + strconv.Itoa(i+1)
		}
		cats, err := category.FromValues(kind, s.Categories)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "series %q", name)
		}
		if err := c.AddSeries(name, cats, s.Values); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Package chart is the chart context a categorical axis is computed from.
//
// A [Chart] owns an ordered set of named series, the axis type shared by
// their categories, the axis direction and pixel extent, and the [style.Style]
// used to build label formatters. [Chart.Ticks] assembles an axis.Request
// from all of that and runs axis.Calculate.
//
// Series keep their insertion order. The first series added is the
// reference list every other series must match.
//
// Charts can be built in code or loaded from TOML or JSON files with [Load]:
//
//	title = "Quarterly revenue"
//	axis = "textual"
//	direction = "horizontal"
//	working_space = 640
//
//	[style]
//	tick_space_percentage = 0.9
//
//	[[series]]
//	name = "2024"
//	categories = ["Q1", "Q2", "Q3", "Q4"]
//	values = [12, 15, 9, 20]
package chart

import (
	"math"

	"github.com/matzehuels/chartaxis/pkg/axis"
	"github.com/matzehuels/chartaxis/pkg/category"
	"github.com/matzehuels/chartaxis/pkg/errors"
	"github.com/matzehuels/chartaxis/pkg/style"
)

// DefaultWorkingSpace is the axis extent in pixels when none is given.
const DefaultWorkingSpace = 640.0

// Series is one named data series plotted against the categorical axis.
type Series struct {
	Name       string
	Categories category.List
	Values     []float64
}

// Chart is the context of one categorical axis.
type Chart struct {
	Title        string
	Kind         category.Kind
	Direction    axis.Direction
	WorkingSpace float64
	Style        style.Style

	// Min and Max override the axis range derived from the data.
	Min, Max *float64

	series []Series
	names  map[string]int
}

// New returns an empty chart whose categories are of kind k.
func New(k category.Kind) *Chart {
	return &Chart{
		Kind:         k,
		WorkingSpace: DefaultWorkingSpace,
		Style:        style.Default(),
		names:        make(map[string]int),
	}
}

// AddSeries appends a series. Names must be unique. Values are optional but,
// when present, must pair up with the categories.
func (c *Chart) AddSeries(name string, categories category.List, values []float64) error {
	if c.names == nil {
		c.names = make(map[string]int)
	}
	if _, ok := c.names[name]; ok {
		return errors.New(errors.ErrCodeInvalidInput, "duplicate series %q", name)
	}
	if len(values) > 0 && len(values) != len(categories) {
		return errors.New(errors.ErrCodeInvalidInput, "series %q has %d categories but %d values", name, len(categories), len(values))
	}
	c.names[name] = len(c.series)
	c.series = append(c.series, Series{
		Name:       name,
		Categories: categories,
		Values:     values,
	})
	return nil
}

// WithStyle returns a copy of c that uses s. The copy shares the series with
// c, so neither should gain series afterwards.
func (c *Chart) WithStyle(s style.Style) *Chart {
	cp := *c
	cp.Style = s
	return &cp
}

// Series returns the series in insertion order.
func (c *Chart) Series() []Series {
	out := make([]Series, len(c.series))
	copy(out, c.series)
	return out
}

// Lookup returns the series with the given name.
func (c *Chart) Lookup(name string) (Series, bool) {
	i, ok := c.names[name]
	if !ok {
		return Series{}, false
	}
	return c.series[i], true
}

// Categories returns the categories of the reference series, or nil for an
// empty chart.
func (c *Chart) Categories() category.List {
	if len(c.series) == 0 {
		return nil
	}
	return c.series[0].Categories
}

// Range returns the raw axis range handed to the calculator. Explicit Min
// and Max win; otherwise Numeric and Instant axes use the extent of the
// reference categories and Textual axes the extent of all series values.
// Without data the range is (0, 0).
func (c *Chart) Range() (float64, float64) {
	lo, hi := c.dataRange()
	if c.Min != nil {
		lo = *c.Min
	}
	if c.Max != nil {
		hi = *c.Max
	}
	return lo, hi
}

func (c *Chart) dataRange() (float64, float64) {
	if c.Kind != category.Textual {
		if lo, hi, ok := c.Categories().Extent(); ok {
			return lo, hi
		}
		return 0, 0
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 0
	}
	return lo, hi
}

// Request builds the calculator input for the chart's own direction and
// working space.
func (c *Chart) Request() (axis.Request, error) {
	return c.RequestAt(c.Direction, c.WorkingSpace)
}

// RequestAt builds the calculator input for an explicit direction and
// working space.
func (c *Chart) RequestAt(dir axis.Direction, workingSpace float64) (axis.Request, error) {
	if err := c.Style.Validate(); err != nil {
		return axis.Request{}, err
	}
	formatters, err := c.Style.Formatters()
	if err != nil {
		return axis.Request{}, err
	}

	series := make([]axis.Series, len(c.series))
	for i, s := range c.series {
		series[i] = axis.Series{Name: s.Name, Categories: s.Categories}
	}
	lo, hi := c.Range()

	return axis.Request{
		Direction:    dir,
		WorkingSpace: workingSpace,
		Min:          lo,
		Max:          hi,
		Kind:         c.Kind,
		Series:       series,
		Config:       c.Style.AxisConfig(),
		Formatters:   formatters,
	}, nil
}

// Ticks computes the tick labels and locations of the chart's axis.
func (c *Chart) Ticks() (axis.Ticks, error) {
	return c.TicksAt(c.Direction, c.WorkingSpace)
}

// TicksAt computes ticks for an explicit direction and working space,
// leaving the chart untouched.
func (c *Chart) TicksAt(dir axis.Direction, workingSpace float64) (axis.Ticks, error) {
	req, err := c.RequestAt(dir, workingSpace)
	if err != nil {
		return axis.Ticks{}, err
	}
	return axis.Calculate(req)
}
